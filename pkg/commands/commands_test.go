package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	cmd := New()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestSubcommands(t *testing.T) {
	cmd := New()
	want := map[string]bool{}
	for _, name := range []string{"ui", "show", "set", "clear", "key", "info", "mcp", "version", "completion"} {
		want[name] = true
	}
	for _, c := range cmd.Commands() {
		delete(want, c.Name())
	}
	if len(want) != 0 {
		t.Fatalf("missing subcommands: %v", want)
	}
}

func TestKey(t *testing.T) {
	out, err := run(t, "key")
	if err != nil {
		t.Fatalf("key: %v", err)
	}
	if !strings.Contains(out, "😊") || !strings.Contains(out, "angry") {
		t.Fatalf("unexpected key output:\n%s", out)
	}
}

func TestSetShowClear(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MOODCAL_PATH", dir)
	t.Setenv("MOODCAL_BACKEND", "diskv")
	t.Setenv("MOODCAL_CONFIG_PATH", dir)

	out, err := run(t, "set", "excited", "--on", "2024-02-29")
	if err != nil {
		t.Fatalf("set: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Mood saved for 2024-02-29!") {
		t.Fatalf("missing notice:\n%s", out)
	}

	out, err = run(t, "show", "--month", "2024-02", "--json")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	var got struct {
		Days   map[string]json.RawMessage `json:"days"`
		Counts map[string]int             `json:"counts"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("show json: %v\n%s", err, out)
	}
	if _, ok := got.Days["2024-02-29"]; !ok || got.Counts["excited"] != 1 {
		t.Fatalf("unexpected show output:\n%s", out)
	}

	out, err = run(t, "clear", "--on", "2024-02-29")
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if !strings.Contains(out, "Mood deleted for 2024-02-29") {
		t.Fatalf("missing notice:\n%s", out)
	}
}

func TestSetRequiresMood(t *testing.T) {
	t.Setenv("MOODCAL_BACKEND", "memory")
	if _, err := run(t, "set"); err == nil {
		t.Fatalf("expected error without a mood")
	}
}
