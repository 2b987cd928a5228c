// Package history persists the REPL transcript between sessions.
package history

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when Payload format changes
const historySchemaVersion uint16 = 1

// Entry is one evaluated REPL line.
type Entry struct {
	Expr    string
	Value   float64
	OK      bool
	Message string // фиксированное сообщение об ошибке, если OK == false
	When    time.Time
}

// Payload is the on-disk history format.
type Payload struct {
	// Schema version for safe invalidation when format changes
	Schema  uint16
	Entries []Entry
}

// Store хранит историю сессий на диске.
// Thread-safe for concurrent access.
type Store struct {
	mu    sync.Mutex
	path  string
	limit int
}

// Open initializes a store at the standard cache location.
func Open(app string, limit int) (*Store, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{path: filepath.Join(dir, "history.mp"), limit: limit}, nil
}

// OpenAt initializes a store at an explicit file path (tests).
func OpenAt(path string, limit int) *Store {
	return &Store{path: path, limit: limit}
}

// Load reads the persisted entries. A missing file or a payload with an
// unexpected schema yields an empty history, not an error.
func (s *Store) Load() ([]Entry, error) {
	if s == nil {
		return nil, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var payload Payload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, err
	}
	if payload.Schema != historySchemaVersion {
		return nil, nil
	}
	return payload.Entries, nil
}

// Save writes entries, keeping only the newest limit of them.
func (s *Store) Save(entries []Entry) error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.limit > 0 && len(entries) > s.limit {
		entries = entries[len(entries)-s.limit:]
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(s.path), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	payload := Payload{Schema: historySchemaVersion, Entries: entries}
	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), s.path)
}

// Path returns the backing file location.
func (s *Store) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}
