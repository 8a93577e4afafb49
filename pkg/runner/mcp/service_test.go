package mcp

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableflip.dev/moodcal/pkg/app"
	"tableflip.dev/moodcal/pkg/mood"
	"tableflip.dev/moodcal/pkg/store"
)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	now := func() time.Time { return time.Date(2024, time.February, 10, 9, 0, 0, 0, time.Local) }
	st := store.New(store.NewMemorySlot(store.DefaultSlot), nil)
	cal, err := app.New(app.Options{Store: st, Now: now})
	if err != nil {
		t.Fatalf("app.New: %v", err)
	}
	svc := NewService(cal)
	svc.now = now
	return svc, st
}

func TestServiceSetAndGetMood(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestService(t)

	day, err := svc.SetMood(ctx, "2024-02-29", "calm")
	if err != nil {
		t.Fatalf("SetMood: %v", err)
	}
	if !day.HasMood || day.Mood != "calm" || day.Emoji != "😌" {
		t.Fatalf("unexpected day: %+v", day)
	}
	if day.Timestamp == 0 {
		t.Fatalf("expected timestamp to be set")
	}
	if _, ok := st.Get("2024-02-29"); !ok {
		t.Fatalf("mood not persisted")
	}
	if svc.cal.Session().IsOpen() {
		t.Fatalf("session left open")
	}

	got, err := svc.GetMood(ctx, "2024-02-29")
	if err != nil {
		t.Fatalf("GetMood: %v", err)
	}
	if got.Mood != "calm" {
		t.Fatalf("GetMood = %+v", got)
	}
}

func TestServiceDefaultsToToday(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	day, err := svc.SetMood(ctx, "", "😊")
	if err != nil {
		t.Fatalf("SetMood: %v", err)
	}
	if day.Date != "2024-02-10" || day.Mood != "happy" {
		t.Fatalf("unexpected day: %+v", day)
	}
}

func TestServiceRejectsBadInput(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestService(t)

	if _, err := svc.SetMood(ctx, "2024-02-29", "grumpy"); !errors.Is(err, mood.ErrUnknown) {
		t.Fatalf("expected ErrUnknown, got %v", err)
	}
	if _, err := svc.SetMood(ctx, "29/02/2024", "happy"); err == nil {
		t.Fatalf("expected date parse error")
	}
	if st.Len() != 0 {
		t.Fatalf("store mutated on bad input")
	}
}

func TestServiceDeleteMood(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestService(t)

	day, err := svc.DeleteMood(ctx, "2024-02-01")
	if err != nil {
		t.Fatalf("DeleteMood without mood: %v", err)
	}
	if day.HasMood {
		t.Fatalf("unexpected mood: %+v", day)
	}

	if _, err := svc.SetMood(ctx, "2024-02-01", "tired"); err != nil {
		t.Fatalf("SetMood: %v", err)
	}
	day, err = svc.DeleteMood(ctx, "2024-02-01")
	if err != nil {
		t.Fatalf("DeleteMood: %v", err)
	}
	if day.HasMood || st.Len() != 0 {
		t.Fatalf("mood not deleted: %+v", day)
	}
}

func TestServiceMonth(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	for _, d := range []string{"2024-02-01", "2024-02-02"} {
		if _, err := svc.SetMood(ctx, d, "happy"); err != nil {
			t.Fatalf("SetMood: %v", err)
		}
	}
	if _, err := svc.SetMood(ctx, "2024-03-01", "sad"); err != nil {
		t.Fatalf("SetMood: %v", err)
	}

	m, err := svc.Month(ctx, "2024-02")
	if err != nil {
		t.Fatalf("Month: %v", err)
	}
	if m.Title != "February 2024" || m.Year != 2024 || m.Month != 2 {
		t.Fatalf("unexpected month: %s %d-%d", m.Title, m.Year, m.Month)
	}
	if len(m.Cells) != 42 {
		t.Fatalf("cells = %d", len(m.Cells))
	}
	if m.Counts["happy"] != 2 {
		t.Fatalf("counts = %v", m.Counts)
	}
	if _, ok := m.Counts["sad"]; ok {
		t.Fatalf("March mood counted in February: %v", m.Counts)
	}
	inMonth := 0
	for _, c := range m.Cells {
		if c.InMonth {
			inMonth++
		} else if c.Date != "" || c.Emoji != "" {
			t.Fatalf("adjacent cell carries data: %+v", c)
		}
	}
	if inMonth != 29 {
		t.Fatalf("in-month cells = %d", inMonth)
	}

	if _, err := svc.Month(ctx, "someday"); err == nil {
		t.Fatalf("expected month parse error")
	}
}

func TestServiceMoods(t *testing.T) {
	svc, _ := newTestService(t)
	got := svc.Moods()
	if len(got) != len(mood.Default()) {
		t.Fatalf("moods = %d", len(got))
	}
	if got[0].Mood != "happy" || got[0].Emoji != "😊" {
		t.Fatalf("first mood = %+v", got[0])
	}
}

func TestRunnerRequiresCalendar(t *testing.T) {
	if _, err := (Runner{}).NewServer(); err == nil {
		t.Fatalf("expected error without calendar")
	}
}
