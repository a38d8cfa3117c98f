// Package scanner discovers application descriptors on the filesystem.
package scanner

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"sling.app/cli/internal/core/catalog"
	"sling.app/cli/internal/core/desktop"
)

// FilesystemScanner walks the configured application directories and parses
// every descriptor file it finds. Discovery is best-effort: unreadable files
// and rejected descriptors are counted and skipped, missing directories are
// ignored entirely.
type FilesystemScanner struct {
	dirs    []string
	locales []string
}

// NewFilesystemScanner creates a scanner over the given directories, using
// the locale preference list for localized names.
func NewFilesystemScanner(dirs, locales []string) *FilesystemScanner {
	return &FilesystemScanner{
		dirs:    dirs,
		locales: locales,
	}
}

// Scan implements ports.CatalogSource. Records appear in directory order,
// then walk order within each directory; across directories the first
// occurrence of an application wins insofar as callers treat the list as
// ordered.
func (s *FilesystemScanner) Scan(ctx context.Context) ([]catalog.Record, int, error) {
	var (
		records []catalog.Record
		skipped int
	)

	for _, dir := range s.dirs {
		err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if err != nil || entry.IsDir() {
				return nil
			}
			if !strings.HasSuffix(path, desktop.Extension) {
				return nil
			}

			rec, ok := s.parseFile(path)
			if !ok {
				skipped++
				return nil
			}
			records = append(records, rec)
			return nil
		})
		if err != nil {
			if ctx.Err() != nil {
				return nil, 0, err
			}
			// A missing or unreadable directory is not an error; an empty
			// result is the correct outcome.
			continue
		}
	}

	return records, skipped, nil
}

func (s *FilesystemScanner) parseFile(path string) (catalog.Record, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return catalog.Record{}, false
	}

	rec, err := desktop.ParseEntry(string(data), s.locales)
	if err != nil {
		return catalog.Record{}, false
	}
	return rec, true
}
