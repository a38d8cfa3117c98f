// Package ports defines the interfaces through which the application layer
// reaches external capabilities: descriptor discovery, icon theme lookup,
// bitmap decoding and process spawning. Infrastructure provides the
// implementations; services depend only on these contracts.
package ports

import (
	"context"

	"sling.app/cli/internal/core/catalog"
	"sling.app/cli/internal/core/icon"
)

// CatalogSource produces the full ordered list of valid records from the
// configured descriptor directories. Implementations must treat missing
// directories and unparseable descriptors as skips, not errors.
type CatalogSource interface {
	// Scan walks the sources and returns every valid record plus the number
	// of descriptor files that were skipped (unreadable or rejected).
	Scan(ctx context.Context) (records []catalog.Record, skipped int, err error)
}

// ThemeLocator resolves a logical icon name to a concrete file path at a
// preferred pixel size. It is an opaque capability; the core never walks
// theme indexes itself.
type ThemeLocator interface {
	// Locate returns the path for the named icon, or ok=false when the
	// theme carries no match.
	Locate(name string, size int) (path string, ok bool)
}

// IconDecoder turns an icon file into RGBA8 pixel data.
type IconDecoder interface {
	Decode(path string) (*icon.Bitmap, error)
}

// ProcessLauncher spawns a sanitized command fire-and-forget: only the
// spawn call's own success is reported, never the child's exit status.
type ProcessLauncher interface {
	Launch(command string) error
}
