package theme

import (
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func TestGradientEndpoints(t *testing.T) {
	g := Gradient(5, "#ff0000", "#0000ff")
	if len(g) != 5 {
		t.Fatalf("len = %d", len(g))
	}
	first, ok := colorful.MakeColor(g[0])
	if !ok || first.Hex() != "#ff0000" {
		t.Fatalf("first = %v", g[0])
	}
	last, ok := colorful.MakeColor(g[4])
	if !ok || last.Hex() != "#0000ff" {
		t.Fatalf("last = %v", g[4])
	}
}

func TestGradientEdgeCases(t *testing.T) {
	if g := Gradient(0, "#ff0000"); g != nil {
		t.Fatalf("expected nil for n=0")
	}
	if g := Gradient(3, "nope"); g != nil {
		t.Fatalf("expected nil for invalid stops")
	}
	if g := Gradient(3, "#00ff00"); len(g) != 3 {
		t.Fatalf("single stop len = %d", len(g))
	}
}

func TestDefaultCelebrate(t *testing.T) {
	if len(Default().Celebrate) != 12 {
		t.Fatalf("celebrate gradient len = %d", len(Default().Celebrate))
	}
}
