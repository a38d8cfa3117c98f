package icons

import (
	"fmt"
	"os"
	"path/filepath"
)

// sizeLadder is the fallback order when the preferred size directory has no
// match. Larger sizes come first so downscaling, not upscaling, is the
// common case.
var sizeLadder = []int{128, 256, 48, 96, 32, 24, 16}

var themeExtensions = []string{".png", ".svg", ".xpm"}

// HicolorLocator resolves logical icon names by probing hicolor-style theme
// directories (<dir>/<size>x<size>/apps/<name>.<ext>, scalable SVGs) and
// flat pixmap directories (<dir>/<name>.<ext>). First match wins.
type HicolorLocator struct {
	dirs []string
}

// NewHicolorLocator creates a locator over the given search directories.
func NewHicolorLocator(dirs []string) *HicolorLocator {
	return &HicolorLocator{dirs: dirs}
}

// Locate implements ports.ThemeLocator.
func (l *HicolorLocator) Locate(name string, size int) (string, bool) {
	if name == "" {
		return "", false
	}

	for _, dir := range l.dirs {
		for _, candidate := range candidates(dir, name, size) {
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, true
			}
		}
	}
	return "", false
}

func candidates(dir, name string, size int) []string {
	var out []string

	sizes := append([]int{size}, sizeLadder...)
	for _, s := range sizes {
		bucket := filepath.Join(dir, fmt.Sprintf("%dx%d", s, s), "apps")
		for _, ext := range themeExtensions {
			out = append(out, filepath.Join(bucket, name+ext))
		}
	}
	out = append(out, filepath.Join(dir, "scalable", "apps", name+".svg"))

	// Flat layout, e.g. /usr/share/pixmaps.
	for _, ext := range themeExtensions {
		out = append(out, filepath.Join(dir, name+ext))
	}
	return out
}
