package search

import "strings"

// dedupKey identifies "the same book" across providers: exact case-folded
// title and author, no fuzzy matching.
func dedupKey(r SearchResult) string {
	return strings.ToLower(r.Title) + "|" + strings.ToLower(r.Author)
}

// Merge combines the ranked primary list with the ranked secondary list.
// The primary list seeds the dedup set, so on a collision the primary
// record wins. Duplicates within the primary list itself are dropped too,
// keeping the output unique on (title, author). The result is truncated at
// max entries.
func Merge(primary, secondary []SearchResult, max int) []SearchResult {
	merged := make([]SearchResult, 0, max)
	seen := make(map[string]bool)

	for _, r := range primary {
		if len(merged) >= max {
			break
		}
		key := dedupKey(r)
		if seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, r)
	}

	for _, r := range secondary {
		if len(merged) >= max {
			break
		}
		key := dedupKey(r)
		if seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, r)
	}

	return merged
}
