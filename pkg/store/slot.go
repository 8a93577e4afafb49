package store

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/peterbourgon/diskv/v3"
)

// ErrSlotEmpty is returned by Slot.Read when nothing has been written yet.
var ErrSlotEmpty = errors.New("store: slot empty")

// Slot is a single named value holding the whole serialized mood map.
type Slot interface {
	Name() string
	Read() ([]byte, error)
	Write(data []byte) error
}

// DiskvSlot keeps the slot as one file under a diskv base path.
type DiskvSlot struct {
	d        *diskv.Diskv
	key      string
	basePath string
}

// NewDiskvSlot returns a slot stored at basePath/key.
func NewDiskvSlot(basePath, key string) *DiskvSlot {
	return &DiskvSlot{
		d: diskv.New(diskv.Options{
			BasePath: basePath,
			TempDir:  filepath.Join(basePath, ".tmp"),
			// No cache: reloads after an external write must hit the file.
			CacheSizeMax: 0,
		}),
		key:      key,
		basePath: basePath,
	}
}

func (s *DiskvSlot) Name() string { return s.key }

// Path is the file backing the slot.
func (s *DiskvSlot) Path() string { return filepath.Join(s.basePath, s.key) }

func (s *DiskvSlot) Read() ([]byte, error) {
	if !s.d.Has(s.key) {
		return nil, ErrSlotEmpty
	}
	data, err := s.d.Read(s.key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrSlotEmpty
		}
		return nil, err
	}
	return data, nil
}

func (s *DiskvSlot) Write(data []byte) error {
	return s.d.Write(s.key, data)
}

//go:embed schema.sql
var schema string

// SQLiteSlot keeps the slot as one row of the slots table.
type SQLiteSlot struct {
	db   *sql.DB
	name string
}

// OpenSQLiteSlot opens (creating if needed) the database at path.
func OpenSQLiteSlot(path, name string) (*SQLiteSlot, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("store: ensure sqlite dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("store: open sqlite: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: init schema: %w", err)
	}
	return &SQLiteSlot{db: db, name: name}, nil
}

func (s *SQLiteSlot) Name() string { return s.name }

func (s *SQLiteSlot) Read() ([]byte, error) {
	var data []byte
	err := s.db.QueryRow("SELECT data FROM slots WHERE name = ?", s.name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("store: read slot %s: %w", s.name, err)
	}
	return data, nil
}

func (s *SQLiteSlot) Write(data []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO slots (name, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		s.name, data, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("store: write slot %s: %w", s.name, err)
	}
	return nil
}

// Close closes the database.
func (s *SQLiteSlot) Close() error {
	return s.db.Close()
}

// MemorySlot is a process-local slot.
type MemorySlot struct {
	mu   sync.Mutex
	name string
	data []byte
}

// NewMemorySlot returns an empty in-memory slot.
func NewMemorySlot(name string) *MemorySlot {
	return &MemorySlot{name: name}
}

func (s *MemorySlot) Name() string { return s.name }

func (s *MemorySlot) Read() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return nil, ErrSlotEmpty
	}
	return append([]byte(nil), s.data...), nil
}

func (s *MemorySlot) Write(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append([]byte(nil), data...)
	return nil
}
