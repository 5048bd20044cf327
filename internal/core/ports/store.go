package ports

import "go.trai.ch/mbedconf/internal/core/domain"

// RunStore defines the interface for storing successful configurator runs.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type RunStore interface {
	// Get returns the record for target, or nil if none is stored.
	Get(target string) (*domain.RunRecord, error)
	// Put stores the record, replacing any previous record for the same target.
	Put(record domain.RunRecord) error
}

// RunStoreFactory opens the run store rooted at a working directory.
type RunStoreFactory interface {
	Open(workingDir string) (RunStore, error)
}
