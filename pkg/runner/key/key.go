// Package key prints the mood legend.
package key

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/moodcal/pkg/mood"
)

// Key prints the mood catalog with the shortcut key of each mood.
type Key struct {
	Out io.Writer
}

// Do renders the mood key.
func (k *Key) Do(ctx context.Context) error {
	out := k.Out
	if out == nil {
		out = color.Output
	}
	_, _ = fmt.Fprintln(out, "")
	k.Key(ctx, out, mood.Default())
	_, _ = fmt.Fprintln(out, "")
	return nil
}

// Key renders one table row per option.
func (k *Key) Key(_ context.Context, out io.Writer, opts []mood.Option) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Key"), bold.Sprint("Mood"), bold.Sprint("Meaning"))
	for _, o := range opts {
		tbl.AddRow(o.Key, o.Emoji, o.Meaning)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(out, tbl)
}
