package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/moodcal/pkg/app"
	"tableflip.dev/moodcal/pkg/calendar"
	"tableflip.dev/moodcal/pkg/datekey"
	"tableflip.dev/moodcal/pkg/mood"
	"tableflip.dev/moodcal/pkg/session"
	"tableflip.dev/moodcal/pkg/store"
)

func init() {
	color.NoColor = true
}

func TestMonthLayout(t *testing.T) {
	moods := store.Moods{
		datekey.Encode(2024, time.February, 14): mood.NewRecord(mood.Loved, "🥰", time.Now()),
	}
	g := calendar.Build(2024, time.February, moods, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.Local))

	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Month("February 2024", calendar.WeekdayHeader(time.Sunday, "en_US"), g)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// title, header, six rows
	if len(lines) != 2+calendar.Rows {
		t.Fatalf("expected %d lines, got %d:\n%s", 2+calendar.Rows, len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "February 2024") {
		t.Fatalf("missing title: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Su") {
		t.Fatalf("unexpected header %q", lines[1])
	}
	if !strings.Contains(buf.String(), "14🥰") {
		t.Fatalf("expected glyph after day 14:\n%s", buf.String())
	}
}

func TestStats(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	happy, _ := mood.Lookup(mood.Happy)
	pp.Stats([]app.Count{{Option: happy, Days: 1}})
	if !strings.Contains(buf.String(), "1 day") {
		t.Fatalf("unexpected stats output %q", buf.String())
	}

	buf.Reset()
	pp.Stats(nil)
	if !strings.Contains(buf.String(), "no moods") {
		t.Fatalf("unexpected empty stats output %q", buf.String())
	}
}

func TestNotifier(t *testing.T) {
	var buf bytes.Buffer
	Notifier{Out: &buf}.Notify("Mood saved", session.Success)
	if buf.String() != "Mood saved\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
