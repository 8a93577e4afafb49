// Package set records the mood of a day from the command line.
package set

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"

	"tableflip.dev/moodcal/pkg/app"
	"tableflip.dev/moodcal/pkg/mood"
	"tableflip.dev/moodcal/pkg/printers"
)

// Chooser picks one of opts, returning its index.
type Chooser func(label string, opts []mood.Option) (int, error)

// Set opens the edit session for On, selects Mood and saves it. With
// Interactive set the mood is picked from a list instead.
type Set struct {
	Calendar    *app.Calendar
	On          time.Time
	Mood        string
	Interactive bool
	Choose      Chooser
	Out         io.Writer
}

func (n *Set) Do(ctx context.Context) error {
	if n.Calendar == nil {
		return errors.New("can not set mood, no calendar")
	}

	if err := n.Calendar.OpenDate(n.On); err != nil {
		return err
	}
	defer n.Calendar.Cancel()

	opt, err := n.option()
	if err != nil {
		return err
	}
	if err := n.Calendar.Select(opt); err != nil {
		return err
	}
	if err := n.Calendar.Save(); err != nil {
		return err
	}

	out := n.Out
	if out == nil {
		out = color.Output
	}
	pp := printers.PrettyPrint{Out: out}
	pp.NewLine()
	pp.Month(n.Calendar.Title(), n.Calendar.Header(), n.Calendar.Grid())
	pp.NewLine()
	return nil
}

func (n *Set) option() (mood.Option, error) {
	if !n.Interactive {
		return mood.Parse(n.Mood)
	}
	choose := n.Choose
	if choose == nil {
		choose = Prompt
	}
	opts := mood.Default()
	label := fmt.Sprintf("How was %s", n.Calendar.LongDate(n.Calendar.Session().State().Target))
	i, err := choose(label, opts)
	if err != nil {
		return mood.Option{}, err
	}
	if i < 0 || i >= len(opts) {
		return mood.Option{}, fmt.Errorf("%w: choice %d", mood.ErrUnknown, i)
	}
	return opts[i], nil
}

// Prompt asks on the terminal with a searchable select list.
func Prompt(label string, opts []mood.Option) (int, error) {
	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Emoji }} {{ .Meaning | magenta }}",
		Inactive: "   {{ .Emoji }} {{ .Meaning | faint }}",
		Selected: "➜  {{ .Emoji }} {{ .Meaning | magenta | bold }}",
	}

	searcher := func(input string, index int) bool {
		o := opts[index]
		input = strings.ToLower(strings.TrimSpace(input))
		return strings.Contains(string(o.Kind), input) || o.Key == input
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     label,
		Items:     opts,
		Templates: templates,
		Size:      len(opts),
		Searcher:  searcher,
	}

	i, _, err := prompt.Run()
	return i, err
}
