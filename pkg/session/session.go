// Package session tracks the mood edit modal: which day is being edited and
// which mood is pending, through open, select, save, delete and cancel.
package session

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/moodcal/pkg/datekey"
	"tableflip.dev/moodcal/pkg/logging"
	"tableflip.dev/moodcal/pkg/mood"
)

var (
	// ErrNotOpen is returned by operations that need an open session.
	ErrNotOpen = errors.New("session: not open")
	// ErrNoMoodSelected is returned by Save when nothing is pending.
	ErrNoMoodSelected = errors.New("session: no mood selected")
)

// Repository is the mood store the session edits. Put and Remove persist.
type Repository interface {
	Get(key datekey.Key) (mood.Record, bool)
	Put(key datekey.Key, r mood.Record) error
	Remove(key datekey.Key) error
}

// Selection is a mood picked in the modal but not saved yet.
type Selection struct {
	Mood  mood.Kind
	Emoji string
}

// State is a snapshot for the presentation layer to reflect.
type State struct {
	Open      bool
	Target    datekey.Key
	Pending   *Selection
	CanDelete bool
}

// Session is the edit modal state machine. The zero value is not usable; use
// New.
type Session struct {
	repo     Repository
	notifier Notifier
	effects  Effects
	renderer Renderer
	now      func() time.Time
	log      *zap.Logger

	open      bool
	target    datekey.Key
	pending   *Selection
	canDelete bool
}

// Option configures a Session.
type Option func(*Session)

// WithNotifier sets the user notification collaborator.
func WithNotifier(n Notifier) Option {
	return func(s *Session) { s.notifier = n }
}

// WithEffects sets the decorative effects collaborator.
func WithEffects(e Effects) Option {
	return func(s *Session) { s.effects = e }
}

// WithRenderer sets the collaborator asked to redraw after a mutation.
func WithRenderer(r Renderer) Option {
	return func(s *Session) { s.renderer = r }
}

// WithClock overrides time.Now for record timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) { s.log = logging.OrNop(l) }
}

// New returns a closed session editing repo.
func New(repo Repository, opts ...Option) *Session {
	s := &Session{
		repo:     repo,
		notifier: nopNotifier{},
		effects:  NoEffects{},
		renderer: nopRenderer{},
		now:      time.Now,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns a copy of the current state.
func (s *Session) State() State {
	st := State{Open: s.open, Target: s.target, CanDelete: s.canDelete}
	if s.pending != nil {
		p := *s.pending
		st.Pending = &p
	}
	return st
}

// IsOpen reports whether the modal is open.
func (s *Session) IsOpen() bool { return s.open }

// OpenFor opens the session on key, prefilled from any saved record. Opening
// an already open session retargets it.
func (s *Session) OpenFor(key datekey.Key) {
	s.reset()
	s.open = true
	s.target = key
	if r, ok := s.repo.Get(key); ok {
		s.pending = &Selection{Mood: r.Mood, Emoji: r.Emoji}
		s.canDelete = true
	}
	s.log.Debug("session opened", zap.String("date", string(key)), zap.Bool("existing", s.canDelete))
	s.effects.FloatingEmojis()
}

// Select makes kind the single pending mood.
func (s *Session) Select(kind mood.Kind, emoji string) error {
	if !s.open {
		return ErrNotOpen
	}
	s.pending = &Selection{Mood: kind, Emoji: emoji}
	return nil
}

// Save writes the pending mood for the target day and closes. Without a
// pending mood the user is told to pick one and the session stays open.
func (s *Session) Save() error {
	if !s.open {
		return ErrNotOpen
	}
	if s.pending == nil || s.target == "" {
		s.notifier.Notify("Please select a mood first!", Error)
		return ErrNoMoodSelected
	}
	key := s.target
	r := mood.NewRecord(s.pending.Mood, s.pending.Emoji, s.now())
	if err := s.repo.Put(key, r); err != nil {
		s.log.Error("save mood", zap.String("date", string(key)), zap.Error(err))
		s.notifier.Notify(fmt.Sprintf("Could not save mood for %s", key), Error)
		return fmt.Errorf("session: save %s: %w", key, err)
	}
	s.notifier.Notify(fmt.Sprintf("Mood saved for %s! 💕", key), Success)
	s.reset()
	s.renderer.Redraw()
	s.effects.Celebrate()
	return nil
}

// Delete removes the saved mood for the target day and closes. It is a no-op
// when the day has no saved mood.
func (s *Session) Delete() error {
	if !s.open {
		return ErrNotOpen
	}
	if !s.canDelete {
		return nil
	}
	key := s.target
	if err := s.repo.Remove(key); err != nil {
		s.log.Error("delete mood", zap.String("date", string(key)), zap.Error(err))
		s.notifier.Notify(fmt.Sprintf("Could not delete mood for %s", key), Error)
		return fmt.Errorf("session: delete %s: %w", key, err)
	}
	s.notifier.Notify(fmt.Sprintf("Mood deleted for %s", key), Info)
	s.reset()
	s.renderer.Redraw()
	return nil
}

// Cancel closes without touching the store.
func (s *Session) Cancel() {
	s.reset()
}

func (s *Session) reset() {
	s.open = false
	s.target = ""
	s.pending = nil
	s.canDelete = false
}
