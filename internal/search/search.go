package search

// Result source values, surfaced to clients as a provenance badge.
const (
	SourceGoogle      = "google"
	SourceOpenLibrary = "openlibrary"
)

// SearchResult is the canonical, provider-agnostic record every ranking and
// dedup stage operates on. It is immutable after normalization.
type SearchResult struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	Cover         string  `json:"cover"`
	CoverLarge    string  `json:"coverLarge"`
	Genre         string  `json:"genre"`
	Description   string  `json:"description"`
	ISBN          string  `json:"isbn"`
	PublishedDate string  `json:"publishedDate"`
	PageCount     int     `json:"pageCount"`
	Source        string  `json:"source"`
	RatingsCount  int     `json:"ratingsCount"`
	AverageRating float64 `json:"averageRating"`
}

// Config holds the tunable thresholds of the aggregation pipeline. Two
// variants of this logic existed historically (minimum covered results 10 vs
// 12); the defaults follow the richer variant.
type Config struct {
	// MaxResults caps the final output list and the per-provider fetch size.
	MaxResults int
	// MinCoveredResults is the minimum number of with-cover primary results
	// below which the secondary catalog is queried to supplement.
	MinCoveredResults int
	// CoverPadLimit bounds how far the with-cover list is padded with
	// coverless primary results.
	CoverPadLimit int
	// DashAuthorMaxWords is the word-count ceiling for treating the right
	// segment of an "A - B" query as an author name.
	DashAuthorMaxWords int
}

func DefaultConfig() Config {
	return Config{
		MaxResults:         40,
		MinCoveredResults:  12,
		CoverPadLimit:      30,
		DashAuthorMaxWords: 3,
	}
}
