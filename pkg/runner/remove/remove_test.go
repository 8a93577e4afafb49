package remove

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/moodcal/pkg/app"
	"tableflip.dev/moodcal/pkg/mood"
	"tableflip.dev/moodcal/pkg/store"
)

func TestRemove(t *testing.T) {
	color.NoColor = true
	st := store.New(store.NewMemorySlot(store.DefaultSlot), nil)
	on := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.Local)
	if err := st.Put("2024-02-29", mood.NewRecord(mood.Sad, "😢", on)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	cal, err := app.New(app.Options{Store: st})
	if err != nil {
		t.Fatalf("app.New: %v", err)
	}

	var buf bytes.Buffer
	r := Remove{Calendar: cal, On: on, Out: &buf}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if _, ok := st.Get("2024-02-29"); ok {
		t.Fatalf("mood still stored")
	}

	buf.Reset()
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("second Do: %v", err)
	}
	if !strings.Contains(buf.String(), "No mood saved for 2024-02-29") {
		t.Fatalf("unexpected output %q", buf.String())
	}
	if cal.Session().IsOpen() {
		t.Fatalf("session left open")
	}
}
