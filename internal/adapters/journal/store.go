// Package journal records every manifest rewrite of a run in a JSON file.
package journal

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/bump/internal/core/domain"
	"go.trai.ch/zerr"
)

// Entry is one persisted change as stored in the journal file.
type Entry struct {
	domain.Change
	// Digest is the xxhash64 of the manifest bytes as written, in hex.
	Digest    string    `json:"digest"`
	Timestamp time.Time `json:"timestamp"`
}

// Store implements ports.Journal using a flat JSON file.
// Entries from earlier runs are kept and new ones appended.
type Store struct {
	path    string
	mu      sync.Mutex
	entries []Entry
	now     func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for entry timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates a journal backed by the file at path, loading any
// existing entries.
func NewStore(path string, opts ...Option) (*Store, error) {
	s := &Store{
		path:    filepath.Clean(path),
		entries: make([]Entry, 0),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.load(); err != nil {
		return nil, zerr.With(err, "path", s.path)
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by the operator
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, domain.ErrJournalReadFailed.Error())
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.entries); err != nil {
		return zerr.Wrap(err, domain.ErrJournalUnmarshalFailed.Error())
	}

	return nil
}

// saveLocked writes all entries. The caller must hold s.mu.
func (s *Store) saveLocked() error {
	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrJournalMarshalFailed.Error())
	}

	if err := os.MkdirAll(filepath.Dir(s.path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrJournalWriteFailed.Error()), "path", s.path)
	}

	//nolint:gosec // Path is cleaned and provided by the operator
	if err := os.WriteFile(s.path, append(data, '\n'), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrJournalWriteFailed.Error()), "path", s.path)
	}

	return nil
}

// Record appends change to the journal and saves the file.
func (s *Store) Record(change domain.Change) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, Entry{
		Change:    change,
		Digest:    Digest(change.Content),
		Timestamp: s.now().UTC(),
	})
	return s.saveLocked()
}

// Entries returns a copy of the recorded entries, oldest first.
func (s *Store) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Digest returns the hex xxhash64 of content.
func Digest(content []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(content))
}

// Noop is a journal that discards every change.
type Noop struct{}

// Record does nothing.
func (Noop) Record(domain.Change) error {
	return nil
}
