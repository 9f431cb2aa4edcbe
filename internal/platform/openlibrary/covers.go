package openlibrary

import "fmt"

// CoverSize is a covers.openlibrary.org size code.
type CoverSize string

const (
	CoverSmall  CoverSize = "S"
	CoverMedium CoverSize = "M"
	CoverLarge  CoverSize = "L"
)

const coversBaseURL = "https://covers.openlibrary.org"

// CoverURLByISBN builds a cover image URL from an ISBN. No request is made;
// the covers service resolves the URL itself (possibly to a 404 image).
// Returns "" for an empty ISBN.
func CoverURLByISBN(isbn string, size CoverSize) string {
	if isbn == "" {
		return ""
	}
	return fmt.Sprintf("%s/b/isbn/%s-%s.jpg", coversBaseURL, isbn, size)
}

// CoverURLByID builds a cover image URL from a numeric cover id as returned
// in search.json's cover_i field. Returns "" for id <= 0.
func CoverURLByID(id int, size CoverSize) string {
	if id <= 0 {
		return ""
	}
	return fmt.Sprintf("%s/b/id/%d-%s.jpg", coversBaseURL, id, size)
}
