// Package mood holds the mood catalog and the record saved for a day.
package mood

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknown is returned when a mood cannot be resolved from the catalog.
var ErrUnknown = errors.New("mood: unknown mood")

// Kind identifies a mood.
type Kind string

const (
	Happy   Kind = "happy"
	Excited Kind = "excited"
	Loved   Kind = "loved"
	Calm    Kind = "calm"
	Tired   Kind = "tired"
	Sad     Kind = "sad"
	Anxious Kind = "anxious"
	Angry   Kind = "angry"
)

// Option is one selectable entry of the mood picker.
type Option struct {
	Key     string
	Kind    Kind
	Emoji   string
	Meaning string
}

func (o Option) String() string {
	return o.Emoji
}

// Default returns the mood catalog in picker order.
func Default() []Option {
	return []Option{
		{Key: "1", Kind: Happy, Emoji: "😊", Meaning: "happy"},
		{Key: "2", Kind: Excited, Emoji: "🤩", Meaning: "excited"},
		{Key: "3", Kind: Loved, Emoji: "🥰", Meaning: "loved"},
		{Key: "4", Kind: Calm, Emoji: "😌", Meaning: "calm"},
		{Key: "5", Kind: Tired, Emoji: "😴", Meaning: "tired"},
		{Key: "6", Kind: Sad, Emoji: "😢", Meaning: "sad"},
		{Key: "7", Kind: Anxious, Emoji: "😰", Meaning: "anxious"},
		{Key: "8", Kind: Angry, Emoji: "😠", Meaning: "angry"},
	}
}

// Kinds lists the catalog identifiers in picker order.
func Kinds() []string {
	opts := Default()
	kinds := make([]string, len(opts))
	for i, o := range opts {
		kinds[i] = string(o.Kind)
	}
	return kinds
}

// Lookup finds the catalog option for kind.
func Lookup(kind Kind) (Option, bool) {
	for _, o := range Default() {
		if o.Kind == kind {
			return o, true
		}
	}
	return Option{}, false
}

// Parse resolves a kind name, emoji or shortcut key to a catalog option.
func Parse(s string) (Option, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return Option{}, fmt.Errorf("%w: empty", ErrUnknown)
	}
	for _, o := range Default() {
		if v == string(o.Kind) || v == o.Key || v == o.Emoji {
			return o, nil
		}
	}
	return Option{}, fmt.Errorf("%w: %q", ErrUnknown, s)
}
