package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"tableflip.dev/moodcal/pkg/datekey"
	"tableflip.dev/moodcal/pkg/logging"
	"tableflip.dev/moodcal/pkg/mood"
)

// Moods maps a date key to the mood saved for that day.
type Moods map[datekey.Key]mood.Record

// Get returns the record for key.
func (m Moods) Get(key datekey.Key) (mood.Record, bool) {
	r, ok := m[key]
	return r, ok
}

// Set inserts or replaces the record for key.
func (m Moods) Set(key datekey.Key, r mood.Record) {
	m[key] = r
}

// Remove deletes the record for key; absent keys are ignored.
func (m Moods) Remove(key datekey.Key) {
	delete(m, key)
}

// Clone returns an independent copy.
func (m Moods) Clone() Moods {
	out := make(Moods, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Load reads the slot. A missing or malformed payload yields an empty map;
// the cause is logged and never returned.
func Load(slot Slot, log *zap.Logger) Moods {
	log = logging.OrNop(log)
	data, err := slot.Read()
	if err != nil {
		if !errors.Is(err, ErrSlotEmpty) {
			log.Warn("mood slot unreadable, starting empty", zap.String("slot", slot.Name()), zap.Error(err))
		}
		return Moods{}
	}
	m, err := Decode(data)
	if err != nil {
		log.Warn("mood slot malformed, starting empty", zap.String("slot", slot.Name()), zap.Error(err))
		return Moods{}
	}
	return m
}

// Save serializes the whole map and replaces the slot contents.
func Save(slot Slot, m Moods) error {
	data, err := Encode(m)
	if err != nil {
		return err
	}
	if err := slot.Write(data); err != nil {
		return fmt.Errorf("store: write slot %s: %w", slot.Name(), err)
	}
	return nil
}

// Encode renders the map as the JSON slot document.
func Encode(m Moods) ([]byte, error) {
	if m == nil {
		m = Moods{}
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("store: encode moods: %w", err)
	}
	return data, nil
}

// Decode parses a JSON slot document. A JSON null decodes to an empty map.
func Decode(data []byte) (Moods, error) {
	var m Moods
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("store: decode moods: %w", err)
	}
	if m == nil {
		m = Moods{}
	}
	return m, nil
}

// Lookup is Get under the name calendar.Build expects.
func (m Moods) Lookup(key datekey.Key) (mood.Record, bool) {
	return m.Get(key)
}
