package cli

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"sling.app/cli/internal/core/catalog"
)

type recordSource []catalog.Record

func (s recordSource) String(i int) string { return s[i].Name() }
func (s recordSource) Len() int            { return len(s) }

// filterRecords ranks records against the search term by fuzzy-matching
// their names. An empty term returns the full list in scan order.
func filterRecords(records []catalog.Record, query string) []catalog.Record {
	query = strings.TrimSpace(query)
	if query == "" {
		return records
	}

	matches := fuzzy.FindFrom(query, recordSource(records))
	out := make([]catalog.Record, len(matches))
	for i, m := range matches {
		out[i] = records[m.Index]
	}
	return out
}
