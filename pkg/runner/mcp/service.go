// Package mcp serves the mood calendar over the Model Context Protocol.
package mcp

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"tableflip.dev/moodcal/pkg/app"
	"tableflip.dev/moodcal/pkg/calendar"
	"tableflip.dev/moodcal/pkg/datekey"
	"tableflip.dev/moodcal/pkg/mood"
)

// Service runs calendar operations for MCP handlers. Handlers may run
// concurrently; the calendar is not safe for that, so calls are serialized.
type Service struct {
	mu  sync.Mutex
	cal *app.Calendar
	now func() time.Time
}

// NewService wraps cal.
func NewService(cal *app.Calendar) *Service {
	return &Service{cal: cal, now: time.Now}
}

// DayDTO is a transport-friendly view of one day.
type DayDTO struct {
	Date      string `json:"date"`
	HasMood   bool   `json:"hasMood"`
	Mood      string `json:"mood,omitempty"`
	Emoji     string `json:"emoji,omitempty"`
	Timestamp int64  `json:"timestamp,omitempty"`
	Saved     string `json:"saved,omitempty"`
}

// CellDTO is one grid cell.
type CellDTO struct {
	Day     int    `json:"day"`
	Date    string `json:"date,omitempty"`
	InMonth bool   `json:"inMonth"`
	IsToday bool   `json:"isToday,omitempty"`
	Emoji   string `json:"emoji,omitempty"`
}

// MonthDTO is the 42-cell grid of a month plus its mood counts.
type MonthDTO struct {
	Title  string         `json:"title"`
	Year   int            `json:"year"`
	Month  int            `json:"month"`
	Header []string       `json:"header"`
	Cells  []CellDTO      `json:"cells"`
	Counts map[string]int `json:"counts"`
}

// MoodDTO is one catalog entry.
type MoodDTO struct {
	Key   string `json:"key"`
	Mood  string `json:"mood"`
	Emoji string `json:"emoji"`
}

// ParseDate reads YYYY-MM-DD, defaulting to today when empty.
func (s *Service) ParseDate(v string) (time.Time, error) {
	if strings.TrimSpace(v) == "" {
		now := s.now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local), nil
	}
	return datekey.Parse(v)
}

// GetMood returns the day at date.
func (s *Service) GetMood(_ context.Context, date string) (DayDTO, error) {
	when, err := s.ParseDate(date)
	if err != nil {
		return DayDTO{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.day(datekey.FromTime(when)), nil
}

// SetMood saves kind for date through the edit session.
func (s *Service) SetMood(_ context.Context, date, kind string) (DayDTO, error) {
	when, err := s.ParseDate(date)
	if err != nil {
		return DayDTO{}, err
	}
	opt, err := mood.Parse(kind)
	if err != nil {
		return DayDTO{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.cal.OpenDate(when); err != nil {
		return DayDTO{}, err
	}
	defer s.cal.Cancel()
	if err := s.cal.Select(opt); err != nil {
		return DayDTO{}, err
	}
	if err := s.cal.Save(); err != nil {
		return DayDTO{}, err
	}
	return s.day(datekey.FromTime(when)), nil
}

// DeleteMood removes the mood saved for date. Days without a mood are left
// as they are.
func (s *Service) DeleteMood(_ context.Context, date string) (DayDTO, error) {
	when, err := s.ParseDate(date)
	if err != nil {
		return DayDTO{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.cal.OpenDate(when); err != nil {
		return DayDTO{}, err
	}
	defer s.cal.Cancel()
	if err := s.cal.Delete(); err != nil {
		return DayDTO{}, err
	}
	return s.day(datekey.FromTime(when)), nil
}

// Month returns the grid for "YYYY-MM"; empty means the current month.
func (s *Service) Month(_ context.Context, month string) (MonthDTO, error) {
	v := calendar.ViewOf(s.now())
	if strings.TrimSpace(month) != "" {
		var ok bool
		v, ok = calendar.ParseMonth(strings.TrimSpace(month))
		if !ok {
			return MonthDTO{}, fmt.Errorf("invalid month %q, want YYYY-MM", month)
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cal.SetView(v)
	g := s.cal.Grid()
	dto := MonthDTO{
		Title:  s.cal.Title(),
		Year:   g.Year,
		Month:  int(g.Month),
		Header: s.cal.Header(),
		Cells:  make([]CellDTO, 0, len(g.Cells)),
		Counts: make(map[string]int),
	}
	for _, c := range g.Cells {
		dto.Cells = append(dto.Cells, CellDTO{
			Day:     c.Day,
			Date:    string(c.Key),
			InMonth: c.InMonth,
			IsToday: c.IsToday,
			Emoji:   c.Glyph,
		})
	}
	for _, c := range s.cal.Stats() {
		dto.Counts[string(c.Option.Kind)] = c.Days
	}
	return dto, nil
}

// Moods lists the catalog.
func (s *Service) Moods() []MoodDTO {
	opts := mood.Default()
	out := make([]MoodDTO, len(opts))
	for i, o := range opts {
		out[i] = MoodDTO{Key: o.Key, Mood: string(o.Kind), Emoji: o.Emoji}
	}
	return out
}

func (s *Service) day(key datekey.Key) DayDTO {
	dto := DayDTO{Date: string(key)}
	r, ok := s.cal.Store().Get(key)
	if !ok {
		return dto
	}
	dto.HasMood = true
	dto.Mood = string(r.Mood)
	dto.Emoji = r.Emoji
	if !r.Timestamp.IsZero() {
		dto.Timestamp = r.Timestamp.UnixMilli()
		dto.Saved = r.Timestamp.String()
	}
	return dto
}
