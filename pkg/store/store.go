// Package store persists the date-keyed mood map in a single local slot.
package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"go.uber.org/zap"

	"tableflip.dev/moodcal/pkg/datekey"
	"tableflip.dev/moodcal/pkg/logging"
	"tableflip.dev/moodcal/pkg/mood"
)

// Store keeps the in-memory mood map and writes it back to its slot on every
// mutation. It is meant for a single writer.
type Store struct {
	slot  Slot
	moods Moods
	log   *zap.Logger
}

// New loads the slot into a Store.
func New(slot Slot, log *zap.Logger) *Store {
	log = logging.OrNop(log)
	return &Store{slot: slot, moods: Load(slot, log), log: log}
}

// Open builds the slot described by cfg and loads it.
func Open(cfg Config, log *zap.Logger) (*Store, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	slot, err := NewSlot(cfg)
	if err != nil {
		return nil, err
	}
	return New(slot, log), nil
}

// NewSlot returns the slot for the configured backend.
func NewSlot(cfg Config) (Slot, error) {
	switch cfg.Backend() {
	case BackendDiskv:
		return NewDiskvSlot(cfg.BasePath(), cfg.SlotName()), nil
	case BackendSQLite:
		return OpenSQLiteSlot(filepath.Join(cfg.BasePath(), "moodcal.db"), cfg.SlotName())
	case BackendMemory:
		return NewMemorySlot(cfg.SlotName()), nil
	default:
		return nil, fmt.Errorf("store: unknown backend %q", cfg.Backend())
	}
}

// Slot exposes the backing slot.
func (s *Store) Slot() Slot { return s.slot }

// Get returns the record saved for key.
func (s *Store) Get(key datekey.Key) (mood.Record, bool) {
	return s.moods.Get(key)
}

// Lookup is Get under the name calendar.Build expects.
func (s *Store) Lookup(key datekey.Key) (mood.Record, bool) {
	return s.moods.Get(key)
}

// Put stores r for key and persists the whole map. When the write fails the
// map is left as it was.
func (s *Store) Put(key datekey.Key, r mood.Record) error {
	prev, had := s.moods.Get(key)
	s.moods.Set(key, r)
	if err := Save(s.slot, s.moods); err != nil {
		s.restore(key, prev, had)
		return err
	}
	s.log.Debug("mood saved", zap.String("date", string(key)), zap.String("mood", string(r.Mood)))
	return nil
}

// Remove deletes the record for key and persists the whole map. Removing an
// absent key still rewrites the slot.
func (s *Store) Remove(key datekey.Key) error {
	prev, had := s.moods.Get(key)
	s.moods.Remove(key)
	if err := Save(s.slot, s.moods); err != nil {
		s.restore(key, prev, had)
		return err
	}
	s.log.Debug("mood removed", zap.String("date", string(key)))
	return nil
}

func (s *Store) restore(key datekey.Key, prev mood.Record, had bool) {
	if had {
		s.moods.Set(key, prev)
	} else {
		s.moods.Remove(key)
	}
}

// Moods returns a copy of the current map.
func (s *Store) Moods() Moods {
	return s.moods.Clone()
}

// Len is the number of saved days.
func (s *Store) Len() int {
	return len(s.moods)
}

// Reload replaces the in-memory map with the slot contents.
func (s *Store) Reload() {
	s.moods = Load(s.slot, s.log)
}

// Watch streams slot change events when the slot supports it.
func (s *Store) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := s.slot.(watcher)
	if !ok {
		return nil, ErrWatchUnsupported
	}
	return w.Watch(ctx)
}

// Close releases the slot if it holds resources.
func (s *Store) Close() error {
	if c, ok := s.slot.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// ErrWatchUnsupported is returned by Watch for slots without change events.
var ErrWatchUnsupported = errors.New("store: slot does not support watch")
