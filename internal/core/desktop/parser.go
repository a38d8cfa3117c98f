package desktop

import (
	"errors"
	"fmt"
	"strings"

	"sling.app/cli/internal/core/catalog"
)

// Extension is the recognized descriptor file extension.
const Extension = ".desktop"

// mainSection is the only descriptor section whose keys are interpreted.
const mainSection = "[Desktop Entry]"

// ErrMissingField indicates a descriptor lacking a required key (Name or
// Exec), or whose Exec reduced to nothing after sanitization. The whole
// descriptor is rejected; partial records are never produced.
var ErrMissingField = errors.New("descriptor missing required field")

// ParseEntry parses the raw text of one descriptor into a launch-ready
// Record. locales is the caller's preference-ordered list used to pick a
// localized Name[<locale>] variant over the bare Name. The Exec value is
// sanitized here, exactly once; the returned record's command never carries
// field codes.
func ParseEntry(text string, locales []string) (catalog.Record, error) {
	var (
		name           string
		localizedNames = make(map[string]string)
		exec           string
		icon           string
		// Keys before any group header are interpreted as if they were in
		// [Desktop Entry]. The freedesktop convention puts the header
		// first, but bare Key=Value descriptors occur in the wild and
		// rejecting them buys nothing.
		inMain = true
	)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			inMain = line == mainSection
			continue
		}
		if !inMain {
			continue
		}

		// Malformed lines are skipped, never fatal.
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch {
		case key == "Name":
			if name == "" {
				name = value
			}
		case strings.HasPrefix(key, "Name[") && strings.HasSuffix(key, "]"):
			locale := key[len("Name[") : len(key)-1]
			if _, seen := localizedNames[locale]; !seen {
				localizedNames[locale] = value
			}
		case key == "Exec":
			if exec == "" {
				exec = value
			}
		case key == "Icon":
			if icon == "" {
				icon = value
			}
		}
	}

	displayName := pickName(name, localizedNames, locales)
	if displayName == "" {
		return catalog.Record{}, fmt.Errorf("%w: Name", ErrMissingField)
	}
	if exec == "" {
		return catalog.Record{}, fmt.Errorf("%w: Exec", ErrMissingField)
	}

	command := SanitizeCommand(exec)
	if command == "" {
		return catalog.Record{}, fmt.Errorf("%w: Exec reduced to empty command", ErrMissingField)
	}

	return catalog.NewRecord(displayName, command, icon)
}

// pickName prefers localized variants in the caller's preference order and
// falls back to the bare Name when none match.
func pickName(bare string, localized map[string]string, locales []string) string {
	for _, locale := range locales {
		if v, ok := localized[locale]; ok && v != "" {
			return v
		}
	}
	return bare
}
