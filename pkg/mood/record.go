package mood

import "time"

// Record is the mood saved for one day.
type Record struct {
	Mood      Kind      `json:"mood"`
	Emoji     string    `json:"emoji"`
	Timestamp Timestamp `json:"timestamp"`
}

// NewRecord stamps a selection with the given instant.
func NewRecord(kind Kind, emoji string, at time.Time) Record {
	return Record{Mood: kind, Emoji: emoji, Timestamp: Timestamp{Time: at}}
}

// Equal reports whether two records hold the same mood, glyph and instant
// (millisecond precision, which is what survives persistence).
func (r Record) Equal(o Record) bool {
	return r.Mood == o.Mood && r.Emoji == o.Emoji &&
		r.Timestamp.UnixMilli() == o.Timestamp.UnixMilli()
}
