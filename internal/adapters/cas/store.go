// Package cas implements the on-disk store for successful configurator runs.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/mbedconf/internal/core/domain"
	"go.trai.ch/mbedconf/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RunStore = (*Store)(nil)

// Store implements ports.RunStore using a flat JSON file keyed by target.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.RunRecord
}

// NewStore creates a new RunStore backed by the file at the given path.
// The file is created lazily on the first Put.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.RunRecord),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", s.path)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "path", s.path)
	}

	return nil
}

func (s *Store) save() error {
	s.mu.RLock()
	data, err := json.MarshalIndent(s.cache, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	if err := os.MkdirAll(filepath.Dir(s.path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "path", filepath.Dir(s.path))
	}

	// Write through a temp file so an interrupted run never leaves a truncated store.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", tmp)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", s.path)
	}

	return nil
}

// Get retrieves the record stored for a target.
func (s *Store) Get(target string) (*domain.RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.cache[target]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

// Put stores the record, replacing any previous record for its target.
func (s *Store) Put(record domain.RunRecord) error {
	s.mu.Lock()
	s.cache[record.Target] = record
	s.mu.Unlock()

	return s.save()
}

var _ ports.RunStoreFactory = (*Factory)(nil)

// Factory opens stores at the default state path beneath a working directory.
type Factory struct{}

// NewFactory creates a new Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// Open returns the store rooted at workingDir.
func (f *Factory) Open(workingDir string) (ports.RunStore, error) {
	return NewStore(filepath.Join(workingDir, domain.DefaultStatePath()))
}
