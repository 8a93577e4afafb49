// Package info reports where moods are stored.
package info

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/moodcal/pkg/store"
)

type Info struct {
	Config store.Config
	Store  *store.Store
	Out    io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("MOODCAL_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "MOODCAL_CONFIG_PATH found on env, using ", override)
	} else {
		_, _ = fmt.Fprintln(out, "MOODCAL_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}
	if n.Store == nil {
		return errors.New("failed to open the mood store")
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("path"), n.Config.BasePath())
	tbl.AddRow(bold.Sprint("backend"), n.Config.Backend())
	tbl.AddRow(bold.Sprint("slot"), n.Store.Slot().Name())
	if p, ok := n.Store.Slot().(interface{ Path() string }); ok {
		tbl.AddRow(bold.Sprint("file"), p.Path())
	}
	tbl.AddRow(bold.Sprint("locale"), n.Config.Locale())
	tbl.AddRow(bold.Sprint("week start"), n.Config.WeekStart().String())
	tbl.AddRow(bold.Sprint("days recorded"), fmt.Sprint(n.Store.Len()))
	_, _ = fmt.Fprintln(out, tbl)
	return nil
}
