package set

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/moodcal/pkg/app"
	"tableflip.dev/moodcal/pkg/mood"
	"tableflip.dev/moodcal/pkg/store"
)

func newCalendar(t *testing.T) (*app.Calendar, *store.Store) {
	t.Helper()
	color.NoColor = true
	st := store.New(store.NewMemorySlot(store.DefaultSlot), nil)
	cal, err := app.New(app.Options{
		Store: st,
		Now:   func() time.Time { return time.Date(2024, time.March, 15, 8, 0, 0, 0, time.Local) },
	})
	if err != nil {
		t.Fatalf("app.New: %v", err)
	}
	return cal, st
}

func TestSetSavesMood(t *testing.T) {
	cal, st := newCalendar(t)
	var buf bytes.Buffer
	s := Set{
		Calendar: cal,
		On:       time.Date(2024, time.February, 29, 0, 0, 0, 0, time.Local),
		Mood:     "loved",
		Out:      &buf,
	}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	r, ok := st.Get("2024-02-29")
	if !ok || r.Mood != mood.Loved || r.Emoji != "🥰" {
		t.Fatalf("stored %+v, %v", r, ok)
	}
	if !strings.Contains(buf.String(), "February 2024") {
		t.Fatalf("month not printed:\n%s", buf.String())
	}
	if cal.Session().IsOpen() {
		t.Fatalf("session left open")
	}
}

func TestSetUnknownMoodLeavesStore(t *testing.T) {
	cal, st := newCalendar(t)
	s := Set{Calendar: cal, On: time.Now(), Mood: "meh", Out: &bytes.Buffer{}}
	if err := s.Do(context.Background()); !errors.Is(err, mood.ErrUnknown) {
		t.Fatalf("expected ErrUnknown, got %v", err)
	}
	if st.Len() != 0 {
		t.Fatalf("store mutated")
	}
	if cal.Session().IsOpen() {
		t.Fatalf("session left open")
	}
}

func TestSetInteractive(t *testing.T) {
	cal, st := newCalendar(t)
	var label string
	s := Set{
		Calendar:    cal,
		On:          time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local),
		Interactive: true,
		Choose: func(l string, opts []mood.Option) (int, error) {
			label = l
			return 3, nil
		},
		Out: &bytes.Buffer{},
	}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if label != "How was Friday, March 1, 2024" {
		t.Fatalf("label = %q", label)
	}
	if r, _ := st.Get("2024-03-01"); r.Mood != mood.Calm {
		t.Fatalf("stored %+v", r)
	}
}

func TestSetInteractiveAborted(t *testing.T) {
	cal, st := newCalendar(t)
	abort := errors.New("^C")
	s := Set{
		Calendar:    cal,
		On:          time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local),
		Interactive: true,
		Choose:      func(string, []mood.Option) (int, error) { return -1, abort },
		Out:         &bytes.Buffer{},
	}
	if err := s.Do(context.Background()); !errors.Is(err, abort) {
		t.Fatalf("expected abort, got %v", err)
	}
	if st.Len() != 0 {
		t.Fatalf("store mutated")
	}
}
