package search

import (
	"context"
	"fmt"
	"log"

	"bookfolio/internal/platform/googlebooks"
	"bookfolio/internal/platform/openlibrary"
)

// GoogleClient is the primary catalog. Its failure aborts the whole search.
type GoogleClient interface {
	Search(ctx context.Context, query string, limit int) (*googlebooks.SearchResponse, error)
}

// OpenLibraryClient is the secondary catalog, queried only to supplement a
// thin primary result set. Its failure is never surfaced to the caller.
type OpenLibraryClient interface {
	Search(ctx context.Context, query string, limit int) (*openlibrary.SearchResponse, error)
}

// Searcher is the entry point of the aggregation pipeline. Service
// implements it; Cache decorates it.
type Searcher interface {
	Search(ctx context.Context, query string) ([]SearchResult, error)
}

// Service aggregates book search results across both catalogs: rewrite the
// query, search Google, normalize and rank, and only when too few covered
// results came back, supplement from Open Library.
type Service struct {
	google  GoogleClient
	openlib OpenLibraryClient
	cfg     Config
}

func NewService(google GoogleClient, openlib OpenLibraryClient, cfg Config) *Service {
	return &Service{
		google:  google,
		openlib: openlib,
		cfg:     cfg,
	}
}

// Search runs the full pipeline for one validated free-text query. The
// returned slice is never nil, so an empty result serializes as [].
func (s *Service) Search(ctx context.Context, query string) ([]SearchResult, error) {
	rewritten := RewriteQuery(query, s.cfg.DashAuthorMaxWords)

	googleRes, err := s.google.Search(ctx, rewritten, s.cfg.MaxResults)
	if err != nil {
		return nil, fmt.Errorf("primary catalog search: %w", err)
	}

	googleResults := make([]SearchResult, 0, len(googleRes.Items))
	for _, item := range googleRes.Items {
		googleResults = append(googleResults, NormalizeVolume(item))
	}

	// Records with covers rank ahead of coverless ones; each partition is
	// ranked internally by the same cascade.
	withCovers, withoutCovers := partitionByCover(googleResults)
	Rank(withCovers, query)
	Rank(withoutCovers, query)

	combined := withCovers
	if len(combined) < s.cfg.CoverPadLimit {
		pad := s.cfg.CoverPadLimit - len(combined)
		if pad > len(withoutCovers) {
			pad = len(withoutCovers)
		}
		combined = append(combined, withoutCovers[:pad]...)
	}

	// Enough covered results means the secondary catalog is skipped
	// entirely. This is a latency and quota optimization, not correctness.
	if len(withCovers) >= s.cfg.MinCoveredResults {
		return Merge(combined, nil, s.cfg.MaxResults), nil
	}

	// The secondary catalog gets the original query: its search syntax has
	// no field scoping.
	openlibRes, err := s.openlib.Search(ctx, query, s.cfg.MaxResults)
	if err != nil {
		log.Printf("openlibrary search failed, serving primary results only: error=%v", err)
		return Merge(combined, nil, s.cfg.MaxResults), nil
	}

	openlibResults := make([]SearchResult, 0, len(openlibRes.Docs))
	for _, doc := range openlibRes.Docs {
		if r, ok := NormalizeDoc(doc); ok {
			openlibResults = append(openlibResults, r)
		}
	}
	Rank(openlibResults, query)

	return Merge(combined, openlibResults, s.cfg.MaxResults), nil
}
