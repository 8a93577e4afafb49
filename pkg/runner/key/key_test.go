package key

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/moodcal/pkg/mood"
)

func TestKeyListsEveryMood(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	k := Key{Out: &buf}
	if err := k.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	out := buf.String()
	for _, o := range mood.Default() {
		if !strings.Contains(out, o.Emoji) || !strings.Contains(out, o.Meaning) {
			t.Fatalf("missing %s in\n%s", o.Kind, out)
		}
	}
}
