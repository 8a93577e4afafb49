package options

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestOnOptionsGetOn(t *testing.T) {
	now := time.Date(2026, time.October, 19, 15, 4, 0, 0, time.Local)

	tests := []struct {
		name string
		on   string
		want time.Time
	}{
		{name: "default today", on: "", want: time.Date(2026, time.October, 19, 0, 0, 0, 0, time.Local)},
		{name: "iso", on: "2024-02-29", want: time.Date(2024, time.February, 29, 0, 0, 0, 0, time.Local)},
		{name: "iso unpadded", on: "2024-2-9", want: time.Date(2024, time.February, 9, 0, 0, 0, 0, time.Local)},
		{name: "short past", on: "3/4", want: time.Date(2026, time.March, 4, 0, 0, 0, 0, time.Local)},
		{name: "short future rolls back", on: "12/25", want: time.Date(2025, time.December, 25, 0, 0, 0, 0, time.Local)},
		{name: "short leap day", on: "2/29", want: time.Date(2024, time.February, 29, 0, 0, 0, 0, time.Local)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := OnOptions{OnString: tt.on}
			got, err := o.GetOn(now)
			if err != nil {
				t.Fatalf("GetOn: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Fatalf("GetOn(%q) = %v, want %v", tt.on, got, tt.want)
			}
		})
	}

	leap := time.Date(2028, time.March, 1, 9, 0, 0, 0, time.Local)
	got, err := (&OnOptions{OnString: "2/29"}).GetOn(leap)
	if err != nil || !got.Equal(time.Date(2028, time.February, 29, 0, 0, 0, 0, time.Local)) {
		t.Fatalf("2/29 in a leap year = %v, %v", got, err)
	}

	if _, err := (&OnOptions{OnString: "yesterday"}).GetOn(now); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestMonthOptionsGetView(t *testing.T) {
	now := time.Date(2026, time.October, 19, 0, 0, 0, 0, time.Local)

	v, err := (&MonthOptions{}).GetView(now)
	if err != nil || v.Year != 2026 || v.Month != time.October {
		t.Fatalf("default view = %+v, %v", v, err)
	}
	v, err = (&MonthOptions{Month: "2024-02"}).GetView(now)
	if err != nil || v.Year != 2024 || v.Month != time.February {
		t.Fatalf("view = %+v, %v", v, err)
	}
	if _, err := (&MonthOptions{Month: "soon"}).GetView(now); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestHandleError(t *testing.T) {
	boom := errors.New("boom")
	if err := (&OutputOptions{}).HandleError(boom); !errors.Is(err, boom) {
		t.Fatalf("plain output should return the error, got %v", err)
	}
	if err := (&OutputOptions{}).HandleError(nil); err != nil {
		t.Fatalf("nil error changed: %v", err)
	}
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := (&OutputOptions{JSON: true}).PrintJSON(&buf, map[string]int{"days": 2}); err != nil {
		t.Fatalf("PrintJSON: %v", err)
	}
	if !strings.Contains(buf.String(), `"days": 2`) {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestWrap(t *testing.T) {
	got := Wrap("record   one mood per day", 10)
	for _, line := range strings.Split(got, "\n") {
		if len(line) > 10 {
			t.Fatalf("line %q longer than 10", line)
		}
	}
	if strings.Join(strings.Fields(got), " ") != "record one mood per day" {
		t.Fatalf("words changed: %q", got)
	}
}
