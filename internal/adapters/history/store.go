// Package history persists build records in a flat JSON file.
package history

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"go.trai.ch/rab/internal/core/domain"
	"go.trai.ch/rab/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.HistoryStore = (*Store)(nil)

// Store implements ports.HistoryStore. Records are kept oldest first on disk
// and trimmed to limit per target on every append.
type Store struct {
	path  string
	limit int
	mu    sync.Mutex
}

// NewStore creates a store backed by the file at path. The file is created on
// the first append.
func NewStore(path string) *Store {
	return &Store{path: filepath.Clean(path), limit: domain.HistoryLimit}
}

// WithLimit sets the number of records kept per target.
func (s *Store) WithLimit(n int) *Store {
	s.limit = n
	return s
}

// Append adds record and drops the oldest records of its target beyond the limit.
func (s *Store) Append(record domain.BuildRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return err
	}
	records = append(records, record)
	return s.save(trim(records, record.Target, s.limit))
}

// List returns the records for target, newest first.
func (s *Store) List(target string) ([]domain.BuildRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return nil, err
	}
	out := make([]domain.BuildRecord, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		if target == "" || records[i].Target == target {
			out = append(out, records[i])
		}
	}
	return out, nil
}

// Clear removes the history file.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", s.path)
	}
	return nil
}

func (s *Store) load() ([]domain.BuildRecord, error) {
	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrStoreReadFailed, err.Error()), "path", s.path)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var records []domain.BuildRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrStoreReadFailed, err.Error()), "path", s.path)
	}
	return records, nil
}

func (s *Store) save(records []domain.BuildRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal build history")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", s.path)
	}

	// Replace atomically.
	tmp := s.path + ".tmp"
	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(tmp, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", s.path)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", s.path)
	}
	return nil
}

// trim keeps the newest limit records of target. Other targets are untouched.
func trim(records []domain.BuildRecord, target string, limit int) []domain.BuildRecord {
	if limit <= 0 {
		return records
	}
	count := 0
	for _, r := range records {
		if r.Target == target {
			count++
		}
	}
	drop := count - limit
	if drop <= 0 {
		return records
	}
	return slices.DeleteFunc(records, func(r domain.BuildRecord) bool {
		if r.Target == target && drop > 0 {
			drop--
			return true
		}
		return false
	})
}
