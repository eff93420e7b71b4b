// Package store persists small key-value state (best scores, mute flag)
// between game sessions. All failures are silent: a missing, unreadable or
// corrupt store degrades to zero values and the game stays fully playable.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/tomz197/wellfall/internal/game"
)

// Persisted keys.
const (
	KeyBestCombo = "best_combo"
	KeyMuted     = "muted"
)

// BestPctKey returns the per-tier best-percent key, e.g. "best_pct_normal".
func BestPctKey(d game.Difficulty) string {
	return "best_pct_" + string(d)
}

// Store is a file-backed key-value store. Values are read once at open and
// written through on every change. An empty path keeps the store in memory
// only, which is useful for tests and for hosts without a writable config
// directory.
type Store struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

// Open loads the store at path. Missing or corrupt files yield an empty
// store; Open never fails.
func Open(path string) *Store {
	s := &Store{path: path, values: make(map[string]string)}
	if path == "" {
		return s
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	var values map[string]string
	if err := json.Unmarshal(data, &values); err != nil {
		return s
	}
	s.values = values
	return s
}

// DefaultPath returns the per-user state file location, or "" when no
// config directory is available (the store then stays in memory).
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "wellfall", "state.json")
}

// GetInt returns the integer stored under key. Missing or non-numeric
// values fall back to 0.
func (s *Store) GetInt(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, err := strconv.Atoi(s.values[key])
	if err != nil {
		return 0
	}
	return n
}

// SetInt stores an integer under key and writes the store through.
func (s *Store) SetInt(key string, v int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = strconv.Itoa(v)
	s.save()
}

// GetBool returns the flag stored under key ("1" is true, anything else false).
func (s *Store) GetBool(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[key] == "1"
}

// SetBool stores a flag under key and writes the store through.
func (s *Store) SetBool(key string, v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v {
		s.values[key] = "1"
	} else {
		s.values[key] = "0"
	}
	s.save()
}

// save writes the store to disk. Failures are ignored; the in-memory copy
// stays authoritative for the session. Caller must hold the mutex.
func (s *Store) save() {
	if s.path == "" {
		return
	}
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return
	}
	_ = os.WriteFile(s.path, data, 0o644)
}
