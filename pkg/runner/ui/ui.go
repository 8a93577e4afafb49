// Package ui runs the interactive mood calendar.
package ui

import (
	"context"
	"errors"
	"os"

	"github.com/mattn/go-isatty"

	"tableflip.dev/moodcal/pkg/app"
	"tableflip.dev/moodcal/pkg/store"
	teaui "tableflip.dev/moodcal/pkg/tui/app"
)

// ErrNoTerminal is returned when stdin or stdout is not a terminal.
var ErrNoTerminal = errors.New("ui: needs an interactive terminal, try 'moodcal show'")

type UI struct {
	Store   *store.Store
	Options app.Options

	// IsTerminal overrides the TTY check.
	IsTerminal func() bool
}

func (d *UI) Do(ctx context.Context) error {
	if d.Store == nil {
		return errors.New("ui: no store")
	}
	check := d.IsTerminal
	if check == nil {
		check = isTerminal
	}
	if !check() {
		return ErrNoTerminal
	}
	return teaui.Run(ctx, d.Store, d.Options)
}

func isTerminal() bool {
	for _, f := range []*os.File{os.Stdin, os.Stdout} {
		fd := f.Fd()
		if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
			return false
		}
	}
	return true
}
