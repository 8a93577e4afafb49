package store

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	BackendDiskv  = "diskv"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"

	// DefaultSlot is the name of the persistent slot holding the mood map.
	DefaultSlot = "moodData"
)

// Config describes where and how moods are persisted.
type Config interface {
	BasePath() string
	Backend() string
	SlotName() string
	Locale() string
	WeekStart() time.Weekday
	LogLevel() string
}

// LoadConfig reads .moodcal.yaml from ./ or $MOODCAL_CONFIG_PATH, a .env file
// if present, and MOODCAL_* environment overrides.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("path", "~/.moodcal")
	v.SetDefault("backend", BackendDiskv)
	v.SetDefault("slot", DefaultSlot)
	v.SetDefault("locale", "en_US")
	v.SetDefault("week_start", "sunday")
	v.SetDefault("log_level", "warn")
	v.SetConfigName(".moodcal") // .yaml is implicit
	v.SetEnvPrefix("MOODCAL")
	v.AutomaticEnv()

	if override := os.Getenv("MOODCAL_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}
	start, err := ParseWeekday(v.GetString("week_start"))
	if err != nil {
		return nil, err
	}

	return &FileConfig{
		Path:      path,
		Kind:      strings.ToLower(v.GetString("backend")),
		Slot:      v.GetString("slot"),
		Lang:      v.GetString("locale"),
		FirstDay:  start,
		Verbosity: v.GetString("log_level"),
	}, nil
}

// FileConfig is the concrete Config produced by LoadConfig. Tests build it
// directly.
type FileConfig struct {
	Path      string       `json:"path"`
	Kind      string       `json:"backend"`
	Slot      string       `json:"slot"`
	Lang      string       `json:"locale"`
	FirstDay  time.Weekday `json:"week_start"`
	Verbosity string       `json:"log_level"`
}

func (f *FileConfig) BasePath() string { return f.Path }

func (f *FileConfig) Backend() string {
	if f.Kind == "" {
		return BackendDiskv
	}
	return f.Kind
}

func (f *FileConfig) SlotName() string {
	if f.Slot == "" {
		return DefaultSlot
	}
	return f.Slot
}

func (f *FileConfig) Locale() string {
	if f.Lang == "" {
		return "en_US"
	}
	return f.Lang
}

func (f *FileConfig) WeekStart() time.Weekday { return f.FirstDay }

func (f *FileConfig) LogLevel() string { return f.Verbosity }

// ParseWeekday accepts full or three letter English weekday names.
func ParseWeekday(s string) (time.Weekday, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return time.Sunday, nil
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if v == name || v == name[:3] {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("store: unknown week start %q", s)
}
