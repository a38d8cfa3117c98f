package services

import (
	"context"
	"fmt"
	"log"
	"sync"

	"sling.app/cli/internal/application/ports"
	"sling.app/cli/internal/core/catalog"
)

// CatalogService owns the aggregate application list. One background refresh
// produces it; any number of readers take snapshots. The scan itself runs
// without the lock held — the lock guards only the final wholesale swap, so
// readers observe either the previous list or the complete new one, never a
// partial view.
type CatalogService struct {
	source ports.CatalogSource
	logger *log.Logger

	mu      sync.RWMutex
	records []catalog.Record
}

// NewCatalogService creates a catalog service reading from the given source.
func NewCatalogService(source ports.CatalogSource, logger *log.Logger) *CatalogService {
	return &CatalogService{
		source: source,
		logger: logger,
	}
}

// Refresh scans the descriptor sources and replaces the aggregate list
// wholesale. It blocks until the scan finishes.
func (s *CatalogService) Refresh(ctx context.Context) error {
	records, skipped, err := s.source.Scan(ctx)
	if err != nil {
		return fmt.Errorf("catalog scan failed: %w", err)
	}

	s.mu.Lock()
	s.records = records
	s.mu.Unlock()

	if skipped > 0 {
		s.logger.Printf("catalog refresh: %d records, %d descriptors skipped", len(records), skipped)
	}
	return nil
}

// RefreshAsync runs Refresh on its own goroutine and returns a completion
// channel carrying the scan error (nil on success). The channel is buffered;
// the refresh completes whether or not anyone receives.
func (s *CatalogService) RefreshAsync(ctx context.Context) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- s.Refresh(ctx)
	}()
	return done
}

// Snapshot returns a copy of the current aggregate list. Before the first
// refresh completes this is empty, never nil-dereferencing or partial.
func (s *CatalogService) Snapshot() []catalog.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]catalog.Record, len(s.records))
	copy(out, s.records)
	return out
}

// Size returns the current list length without copying.
func (s *CatalogService) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
