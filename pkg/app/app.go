// Package app ties the month view, the mood store and the edit session into
// one calendar instance that UIs and CLIs drive.
package app

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/moodcal/pkg/calendar"
	"tableflip.dev/moodcal/pkg/datekey"
	"tableflip.dev/moodcal/pkg/logging"
	"tableflip.dev/moodcal/pkg/mood"
	"tableflip.dev/moodcal/pkg/session"
	"tableflip.dev/moodcal/pkg/store"
)

// ErrNotInMonth is returned when opening a day outside the shown month.
var ErrNotInMonth = errors.New("app: day is not in the current month")

// Options configures a Calendar. Nil collaborators fall back to no-ops.
type Options struct {
	Store     *store.Store
	Notifier  session.Notifier
	Effects   session.Effects
	Renderer  session.Renderer
	Now       func() time.Time
	WeekStart time.Weekday
	Locale    string
	Logger    *zap.Logger
}

// Calendar is one mood calendar: the shown month plus its edit session.
type Calendar struct {
	store     *store.Store
	session   *session.Session
	renderer  session.Renderer
	now       func() time.Time
	view      calendar.View
	weekStart time.Weekday
	locale    string
	log       *zap.Logger
}

// New builds a Calendar showing the current month.
func New(o Options) (*Calendar, error) {
	if o.Store == nil {
		return nil, errors.New("app: no store configured")
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	o.Logger = logging.OrNop(o.Logger)
	if o.Renderer == nil {
		o.Renderer = session.RendererFunc(func() {})
	}
	opts := []session.Option{
		session.WithRenderer(o.Renderer),
		session.WithClock(o.Now),
		session.WithLogger(o.Logger),
	}
	if o.Notifier != nil {
		opts = append(opts, session.WithNotifier(o.Notifier))
	}
	if o.Effects != nil {
		opts = append(opts, session.WithEffects(o.Effects))
	}
	return &Calendar{
		store:     o.Store,
		session:   session.New(o.Store, opts...),
		renderer:  o.Renderer,
		now:       o.Now,
		view:      calendar.ViewOf(o.Now()),
		weekStart: o.WeekStart,
		locale:    o.Locale,
		log:       o.Logger,
	}, nil
}

// View returns the shown month.
func (c *Calendar) View() calendar.View { return c.view }

// SetView jumps to v.
func (c *Calendar) SetView(v calendar.View) {
	c.view = calendar.ViewOf(v.First())
	c.renderer.Redraw()
}

// Next shows the following month.
func (c *Calendar) Next() {
	c.SetView(c.view.Next())
}

// Prev shows the previous month.
func (c *Calendar) Prev() {
	c.SetView(c.view.Prev())
}

// Today shows the current month.
func (c *Calendar) Today() {
	c.SetView(calendar.ViewOf(c.now()))
}

// Grid builds the 42 cells of the shown month.
func (c *Calendar) Grid() calendar.Grid {
	return calendar.Build(c.view.Year, c.view.Month, c.store, c.now(), calendar.WithWeekStart(c.weekStart))
}

// Title is the localized month heading.
func (c *Calendar) Title() string {
	return calendar.Title(c.view, c.locale)
}

// Header is the localized weekday row.
func (c *Calendar) Header() []string {
	return calendar.WeekdayHeader(c.weekStart, c.locale)
}

// LongDate renders key for the modal heading.
func (c *Calendar) LongDate(key datekey.Key) string {
	t, err := key.Time()
	if err != nil {
		return string(key)
	}
	return calendar.LongDate(t, c.locale)
}

// Now reads the calendar clock.
func (c *Calendar) Now() time.Time { return c.now() }

// Session exposes the edit session state machine.
func (c *Calendar) Session() *session.Session { return c.session }

// Store exposes the mood store.
func (c *Calendar) Store() *store.Store { return c.store }

// Open starts editing key, which must be a day of the shown month.
func (c *Calendar) Open(key datekey.Key) error {
	if !c.view.Contains(key) {
		return fmt.Errorf("%w: %s", ErrNotInMonth, key)
	}
	c.session.OpenFor(key)
	return nil
}

// OpenDate shows the month of t and starts editing that day.
func (c *Calendar) OpenDate(t time.Time) error {
	c.view = calendar.ViewOf(t)
	return c.Open(datekey.FromTime(t))
}

// Select picks the pending mood.
func (c *Calendar) Select(o mood.Option) error {
	return c.session.Select(o.Kind, o.Emoji)
}

// Save commits the pending mood.
func (c *Calendar) Save() error { return c.session.Save() }

// Delete removes the saved mood of the edited day.
func (c *Calendar) Delete() error { return c.session.Delete() }

// Cancel closes the session without changes.
func (c *Calendar) Cancel() { c.session.Cancel() }

// Reload re-reads the slot, e.g. after another process wrote it. An open
// session is left alone.
func (c *Calendar) Reload() {
	c.store.Reload()
	c.log.Debug("moods reloaded", zap.Int("days", c.store.Len()))
	c.renderer.Redraw()
}

// Count is one row of a month summary.
type Count struct {
	Option mood.Option
	Days   int
}

// Stats counts moods in the shown month, in catalog order, skipping moods
// with no days.
func (c *Calendar) Stats() []Count {
	tally := c.Grid().Tally()
	out := make([]Count, 0, len(tally))
	for _, o := range mood.Default() {
		if n := tally[o.Kind]; n > 0 {
			out = append(out, Count{Option: o, Days: n})
			delete(tally, o.Kind)
		}
	}
	// Kinds saved by another catalog version.
	rest := make([]string, 0, len(tally))
	for k := range tally {
		rest = append(rest, string(k))
	}
	sort.Strings(rest)
	for _, k := range rest {
		out = append(out, Count{Option: mood.Option{Kind: mood.Kind(k), Meaning: k}, Days: tally[mood.Kind(k)]})
	}
	return out
}
