package session

import (
	"errors"
	"testing"
	"time"

	"tableflip.dev/moodcal/pkg/calendar"
	"tableflip.dev/moodcal/pkg/datekey"
	"tableflip.dev/moodcal/pkg/mood"
	"tableflip.dev/moodcal/pkg/store"
)

type note struct {
	msg string
	sev Severity
}

type recorder struct {
	notes     []note
	redraws   int
	floats    int
	celebrate int
}

func (r *recorder) Notify(msg string, sev Severity) { r.notes = append(r.notes, note{msg, sev}) }
func (r *recorder) Redraw()                         { r.redraws++ }
func (r *recorder) FloatingEmojis()                 { r.floats++ }
func (r *recorder) Celebrate()                      { r.celebrate++ }

func (r *recorder) last() note {
	if len(r.notes) == 0 {
		return note{}
	}
	return r.notes[len(r.notes)-1]
}

type failingRepo struct {
	store.Moods
}

func (f failingRepo) Put(datekey.Key, mood.Record) error { return errors.New("disk full") }
func (f failingRepo) Remove(datekey.Key) error           { return errors.New("disk full") }

var (
	day   = datekey.Encode(2024, time.February, 14)
	stamp = time.Date(2024, time.February, 14, 21, 0, 0, 0, time.UTC)
)

func newSession(t *testing.T) (*Session, *store.Store, *recorder) {
	t.Helper()
	st := store.New(store.NewMemorySlot(store.DefaultSlot), nil)
	rec := &recorder{}
	s := New(st,
		WithNotifier(rec),
		WithRenderer(rec),
		WithEffects(rec),
		WithClock(func() time.Time { return stamp }),
	)
	return s, st, rec
}

func TestOpenForEmptyDay(t *testing.T) {
	s, _, rec := newSession(t)
	s.OpenFor(day)
	st := s.State()
	if !st.Open || st.Target != day || st.Pending != nil || st.CanDelete {
		t.Fatalf("unexpected state %+v", st)
	}
	if rec.floats != 1 {
		t.Fatalf("expected floating emoji effect, got %d", rec.floats)
	}
}

func TestSelectReplacesPending(t *testing.T) {
	s, _, _ := newSession(t)
	s.OpenFor(day)
	if err := s.Select(mood.Happy, "😊"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := s.Select(mood.Sad, "😢"); err != nil {
		t.Fatalf("select: %v", err)
	}
	p := s.State().Pending
	if p == nil || p.Mood != mood.Sad || p.Emoji != "😢" {
		t.Fatalf("expected only the second selection, got %+v", p)
	}
}

func TestSelectRequiresOpen(t *testing.T) {
	s, _, _ := newSession(t)
	if err := s.Select(mood.Happy, "😊"); !errors.Is(err, ErrNotOpen) {
		t.Fatalf("expected ErrNotOpen, got %v", err)
	}
	if err := s.Save(); !errors.Is(err, ErrNotOpen) {
		t.Fatalf("expected ErrNotOpen from save, got %v", err)
	}
	if err := s.Delete(); !errors.Is(err, ErrNotOpen) {
		t.Fatalf("expected ErrNotOpen from delete, got %v", err)
	}
}

func TestSaveWithoutSelection(t *testing.T) {
	s, st, rec := newSession(t)
	s.OpenFor(day)
	if err := s.Save(); !errors.Is(err, ErrNoMoodSelected) {
		t.Fatalf("expected ErrNoMoodSelected, got %v", err)
	}
	if !s.IsOpen() || s.State().Target != day {
		t.Fatalf("session should stay open, got %+v", s.State())
	}
	if got := rec.last(); got.sev != Error || got.msg != "Please select a mood first!" {
		t.Fatalf("unexpected notification %+v", got)
	}
	if st.Len() != 0 || rec.redraws != 0 {
		t.Fatalf("store must not change: len=%d redraws=%d", st.Len(), rec.redraws)
	}
}

func TestSaveThenReopen(t *testing.T) {
	s, st, rec := newSession(t)
	s.OpenFor(day)
	_ = s.Select(mood.Loved, "🥰")
	if err := s.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got := s.State(); got.Open || got.Target != "" || got.Pending != nil || got.CanDelete {
		t.Fatalf("closed state must be empty, got %+v", got)
	}
	if rec.redraws != 1 || rec.celebrate != 1 || rec.last().sev != Success {
		t.Fatalf("unexpected collaborator calls %+v", rec)
	}
	r, ok := st.Get(day)
	if !ok || r.Mood != mood.Loved || !r.Timestamp.Equal(stamp) {
		t.Fatalf("unexpected stored record %+v (%v)", r, ok)
	}

	s.OpenFor(day)
	got := s.State()
	if got.Pending == nil || got.Pending.Mood != mood.Loved || got.Pending.Emoji != "🥰" || !got.CanDelete {
		t.Fatalf("unexpected reopened state %+v", got)
	}
}

func TestSaveOverwrites(t *testing.T) {
	s, st, _ := newSession(t)
	for _, o := range []mood.Option{{Kind: mood.Happy, Emoji: "😊"}, {Kind: mood.Angry, Emoji: "😠"}} {
		s.OpenFor(day)
		_ = s.Select(o.Kind, o.Emoji)
		if err := s.Save(); err != nil {
			t.Fatalf("save: %v", err)
		}
	}
	if r, _ := st.Get(day); r.Mood != mood.Angry || st.Len() != 1 {
		t.Fatalf("expected single overwritten record, got %+v (len %d)", r, st.Len())
	}
}

func TestDeleteThenReopen(t *testing.T) {
	s, st, rec := newSession(t)
	s.OpenFor(day)
	_ = s.Select(mood.Calm, "😌")
	_ = s.Save()

	s.OpenFor(day)
	if err := s.Delete(); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if s.IsOpen() {
		t.Fatalf("delete should close the session")
	}
	if got := rec.last(); got.sev != Info {
		t.Fatalf("expected info notification, got %+v", got)
	}

	s.OpenFor(day)
	got := s.State()
	if got.Pending != nil || got.CanDelete {
		t.Fatalf("unexpected state after delete %+v", got)
	}
	g := calendar.Build(2024, time.February, st, stamp)
	i, _ := g.Find(day)
	if g.Cells[i].HasMood {
		t.Fatalf("grid cell still has mood: %+v", g.Cells[i])
	}
}

func TestDeleteWithoutRecordIsNoop(t *testing.T) {
	s, _, rec := newSession(t)
	s.OpenFor(day)
	if err := s.Delete(); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !s.IsOpen() || rec.redraws != 0 || len(rec.notes) != 0 {
		t.Fatalf("expected no-op, got open=%v rec=%+v", s.IsOpen(), rec)
	}
}

func TestCancelDiscardsSelection(t *testing.T) {
	s, st, rec := newSession(t)
	s.OpenFor(day)
	_ = s.Select(mood.Tired, "😴")
	s.Cancel()
	if got := s.State(); got != (State{}) {
		t.Fatalf("expected zero state, got %+v", got)
	}
	if st.Len() != 0 || rec.redraws != 0 {
		t.Fatalf("cancel must not touch the store")
	}
}

func TestOpenForRetargets(t *testing.T) {
	s, _, _ := newSession(t)
	s.OpenFor(day)
	_ = s.Select(mood.Happy, "😊")
	other := datekey.Encode(2024, time.February, 15)
	s.OpenFor(other)
	if got := s.State(); got.Target != other || got.Pending != nil {
		t.Fatalf("expected fresh session on %s, got %+v", other, got)
	}
}

func TestSaveFailureKeepsSessionOpen(t *testing.T) {
	rec := &recorder{}
	s := New(failingRepo{store.Moods{}}, WithNotifier(rec), WithRenderer(rec))
	s.OpenFor(day)
	_ = s.Select(mood.Happy, "😊")
	if err := s.Save(); err == nil {
		t.Fatalf("expected error")
	}
	if !s.IsOpen() || s.State().Pending == nil {
		t.Fatalf("session should stay open with its selection")
	}
	if rec.last().sev != Error || rec.redraws != 0 {
		t.Fatalf("unexpected collaborator calls %+v", rec)
	}
}
