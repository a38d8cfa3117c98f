package services

import (
	"os"
	"sync"

	"golang.org/x/sync/singleflight"

	"sling.app/cli/internal/application/ports"
	"sling.app/cli/internal/core/icon"
)

// IconService resolves icon references to decoded bitmaps with memoization.
// A reference is either a literal filesystem path or a logical name resolved
// through the theme locator. Successful decodes are cached under the original
// reference string; failures are not cached and retry on the next request.
// Concurrent requests for the same reference share a single decode.
type IconService struct {
	locator ports.ThemeLocator
	decoder ports.IconDecoder
	size    int

	flight singleflight.Group

	mu    sync.RWMutex
	cache map[string]*icon.Bitmap
}

// NewIconService creates an icon service resolving at the given nominal
// pixel size.
func NewIconService(locator ports.ThemeLocator, decoder ports.IconDecoder, size int) *IconService {
	return &IconService{
		locator: locator,
		decoder: decoder,
		size:    size,
		cache:   make(map[string]*icon.Bitmap),
	}
}

// Resolve returns the bitmap for the given reference, or nil when no icon
// could be produced. The caller falls back to a placeholder glyph on nil.
func (s *IconService) Resolve(ref string) *icon.Bitmap {
	if ref == "" {
		return nil
	}

	if cached, ok := s.lookup(ref); ok {
		return cached
	}

	// Collapse concurrent resolutions of the same reference onto one
	// decode; late arrivals re-check the cache inside the flight.
	v, _, _ := s.flight.Do(ref, func() (interface{}, error) {
		if cached, ok := s.lookup(ref); ok {
			return cached, nil
		}
		return s.resolve(ref), nil
	})

	bmp, _ := v.(*icon.Bitmap)
	return bmp
}

func (s *IconService) resolve(ref string) *icon.Bitmap {
	path := ref
	if !fileExists(path) {
		located, ok := s.locator.Locate(ref, s.size)
		if !ok {
			return nil
		}
		path = located
	}

	bmp, err := s.decoder.Decode(path)
	if err != nil || bmp == nil {
		return nil
	}

	s.mu.Lock()
	s.cache[ref] = bmp
	s.mu.Unlock()
	return bmp
}

func (s *IconService) lookup(ref string) (*icon.Bitmap, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bmp, ok := s.cache[ref]
	return bmp, ok
}

// CachedCount reports how many references have resolved so far.
func (s *IconService) CachedCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cache)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
