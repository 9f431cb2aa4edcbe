package search

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	byPattern   = regexp.MustCompile(`(?i)^(.+?)\s+by\s+(.+)$`)
	dashPattern = regexp.MustCompile(`^(.+?)\s*-\s*(.+)$`)
)

// RewriteQuery turns free-text queries with embedded author hints into
// Google's field-scoped syntax.
//
//	"dune by frank herbert" -> "intitle:dune+inauthor:frank herbert"
//	"frank herbert - dune"  -> "inauthor:frank herbert+intitle:dune"
//
// For dash queries the segment with fewer (or equal) words is assumed to be
// the author, and the rewrite only fires when the right segment has at most
// dashAuthorMaxWords words. Anything ambiguous passes through unchanged and
// is left to the provider's own relevance search.
func RewriteQuery(query string, dashAuthorMaxWords int) string {
	if m := byPattern.FindStringSubmatch(query); m != nil {
		return fmt.Sprintf("intitle:%s+inauthor:%s", strings.TrimSpace(m[1]), strings.TrimSpace(m[2]))
	}

	if m := dashPattern.FindStringSubmatch(query); m != nil {
		left := strings.TrimSpace(m[1])
		right := strings.TrimSpace(m[2])
		if wordCount(right) <= dashAuthorMaxWords {
			if wordCount(left) <= wordCount(right) {
				return fmt.Sprintf("inauthor:%s+intitle:%s", left, right)
			}
			return fmt.Sprintf("intitle:%s+inauthor:%s", left, right)
		}
	}

	return query
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}
