package picker

import (
	"strings"
	"testing"

	"tableflip.dev/moodcal/pkg/mood"
	"tableflip.dev/moodcal/pkg/session"
	"tableflip.dev/moodcal/pkg/tui/theme"
)

func TestPickerClosedRendersNothing(t *testing.T) {
	m := New(theme.Default())
	if got := m.View(); got != "" {
		t.Fatalf("closed picker rendered %q", got)
	}
}

func TestPickerSyncFocusesPending(t *testing.T) {
	m := New(theme.Default())
	m.Sync("Friday, March 1, 2024", session.State{
		Open:      true,
		Target:    "2024-03-01",
		Pending:   &session.Selection{Mood: mood.Tired, Emoji: "😴"},
		CanDelete: true,
	})
	if m.Focused().Kind != mood.Tired {
		t.Fatalf("focused = %s", m.Focused().Kind)
	}
	view := m.View()
	for _, want := range []string{"Friday, March 1, 2024", "delete", "tired", "😠"} {
		if !strings.Contains(view, want) {
			t.Fatalf("missing %q in\n%s", want, view)
		}
	}
}

func TestPickerWithoutRecordHidesDelete(t *testing.T) {
	m := New(theme.Default())
	m.Sync("day", session.State{Open: true, Target: "2024-03-01"})
	view := m.View()
	if strings.Contains(view, "delete") {
		t.Fatalf("delete offered without a record:\n%s", view)
	}
	if !strings.Contains(view, "pick a mood") {
		t.Fatalf("missing prompt:\n%s", view)
	}
}

func TestPickerMoveWraps(t *testing.T) {
	m := New(theme.Default())
	m.Move(-1)
	if m.Focus() != len(m.Options)-1 {
		t.Fatalf("focus = %d", m.Focus())
	}
	m.Move(2)
	if m.Focus() != 1 {
		t.Fatalf("focus = %d", m.Focus())
	}
	if o, ok := m.ByKey("8"); !ok || o.Kind != mood.Angry || m.Focus() != 7 {
		t.Fatalf("ByKey(8) = %v, %v", o, ok)
	}
	if _, ok := m.ByKey("9"); ok {
		t.Fatalf("ByKey(9) should fail")
	}
}
