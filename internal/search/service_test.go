package search

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"bookfolio/internal/platform/googlebooks"
	"bookfolio/internal/platform/openlibrary"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockGoogleClient struct {
	mock.Mock
}

func (m *mockGoogleClient) Search(ctx context.Context, query string, limit int) (*googlebooks.SearchResponse, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*googlebooks.SearchResponse), args.Error(1)
}

type mockOpenLibraryClient struct {
	mock.Mock
}

func (m *mockOpenLibraryClient) Search(ctx context.Context, query string, limit int) (*openlibrary.SearchResponse, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*openlibrary.SearchResponse), args.Error(1)
}

func coveredVolume(id, title string, ratings int) googlebooks.Volume {
	return googlebooks.Volume{
		ID: id,
		VolumeInfo: googlebooks.VolumeInfo{
			Title:         title,
			Authors:       []string{"Author " + id},
			ImageLinks:    &googlebooks.ImageLinks{Thumbnail: "http://books.google.com/" + id + "&zoom=1"},
			RatingsCount:  ratings,
			AverageRating: 4.0,
		},
	}
}

func coverlessVolume(id, title string) googlebooks.Volume {
	return googlebooks.Volume{
		ID:         id,
		VolumeInfo: googlebooks.VolumeInfo{Title: title, Authors: []string{"Author " + id}},
	}
}

func coveredVolumes(n int) []googlebooks.Volume {
	out := make([]googlebooks.Volume, n)
	for i := range out {
		out[i] = coveredVolume(fmt.Sprintf("g%d", i), fmt.Sprintf("Google Book %d", i), 100-i)
	}
	return out
}

// The defaults document the chosen variant of the historically ambiguous
// thresholds: 12 covered results skip the secondary catalog, not 10.
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 40, cfg.MaxResults)
	assert.Equal(t, 12, cfg.MinCoveredResults)
	assert.Equal(t, 30, cfg.CoverPadLimit)
	assert.Equal(t, 3, cfg.DashAuthorMaxWords)
}

func TestService_EnoughCoveredResultsSkipsOpenLibrary(t *testing.T) {
	google := &mockGoogleClient{}
	openlib := &mockOpenLibraryClient{}
	svc := NewService(google, openlib, DefaultConfig())

	google.On("Search", mock.Anything, "dune", 40).
		Return(&googlebooks.SearchResponse{Items: coveredVolumes(12)}, nil)

	results, err := svc.Search(context.Background(), "dune")

	require.NoError(t, err)
	assert.Len(t, results, 12)
	openlib.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_ThinResultsSupplementedFromOpenLibrary(t *testing.T) {
	google := &mockGoogleClient{}
	openlib := &mockOpenLibraryClient{}
	svc := NewService(google, openlib, DefaultConfig())

	google.On("Search", mock.Anything, "dune", 40).
		Return(&googlebooks.SearchResponse{Items: []googlebooks.Volume{
			coveredVolume("g1", "Dune", 100),
		}}, nil)
	openlib.On("Search", mock.Anything, "dune", 40).
		Return(&openlibrary.SearchResponse{Docs: []openlibrary.Doc{
			{Key: "/works/OL1W", Title: "Dune Messiah", AuthorNames: []string{"Frank Herbert"}, CoverID: 1},
			{Key: "/works/OL2W", Title: "Coverless", AuthorNames: []string{"Nobody"}},
		}}, nil)

	results, err := svc.Search(context.Background(), "dune")

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, SourceGoogle, results[0].Source)
	assert.Equal(t, "Dune Messiah", results[1].Title)
	assert.Equal(t, SourceOpenLibrary, results[1].Source)
}

func TestService_OpenLibraryGetsOriginalQuery(t *testing.T) {
	google := &mockGoogleClient{}
	openlib := &mockOpenLibraryClient{}
	svc := NewService(google, openlib, DefaultConfig())

	google.On("Search", mock.Anything, "intitle:Dune+inauthor:Frank Herbert", 40).
		Return(&googlebooks.SearchResponse{}, nil)
	openlib.On("Search", mock.Anything, "Dune by Frank Herbert", 40).
		Return(&openlibrary.SearchResponse{}, nil)

	_, err := svc.Search(context.Background(), "Dune by Frank Herbert")

	require.NoError(t, err)
	google.AssertExpectations(t)
	openlib.AssertExpectations(t)
}

func TestService_DuplicateAcrossProvidersKeepsPrimary(t *testing.T) {
	google := &mockGoogleClient{}
	openlib := &mockOpenLibraryClient{}
	svc := NewService(google, openlib, DefaultConfig())

	google.On("Search", mock.Anything, mock.Anything, mock.Anything).
		Return(&googlebooks.SearchResponse{Items: []googlebooks.Volume{
			{ID: "g1", VolumeInfo: googlebooks.VolumeInfo{
				Title:      "Dune",
				Authors:    []string{"Frank Herbert"},
				ImageLinks: &googlebooks.ImageLinks{Thumbnail: "http://books.google.com/g1"},
			}},
		}}, nil)
	openlib.On("Search", mock.Anything, mock.Anything, mock.Anything).
		Return(&openlibrary.SearchResponse{Docs: []openlibrary.Doc{
			{Key: "/works/OL1W", Title: "DUNE", AuthorNames: []string{"FRANK HERBERT"}, CoverID: 1},
		}}, nil)

	results, err := svc.Search(context.Background(), "dune")

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, SourceGoogle, results[0].Source)
}

func TestService_OpenLibraryFailureIsNotFatal(t *testing.T) {
	google := &mockGoogleClient{}
	openlib := &mockOpenLibraryClient{}
	svc := NewService(google, openlib, DefaultConfig())

	google.On("Search", mock.Anything, mock.Anything, mock.Anything).
		Return(&googlebooks.SearchResponse{Items: []googlebooks.Volume{
			coveredVolume("g1", "Dune", 100),
		}}, nil)
	openlib.On("Search", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))

	results, err := svc.Search(context.Background(), "dune")

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Dune", results[0].Title)
}

func TestService_GoogleFailureIsFatal(t *testing.T) {
	google := &mockGoogleClient{}
	openlib := &mockOpenLibraryClient{}
	svc := NewService(google, openlib, DefaultConfig())

	google.On("Search", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("status 503"))

	results, err := svc.Search(context.Background(), "dune")

	require.Error(t, err)
	assert.Nil(t, results)
	openlib.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_NoResultsIsNotAnError(t *testing.T) {
	google := &mockGoogleClient{}
	openlib := &mockOpenLibraryClient{}
	svc := NewService(google, openlib, DefaultConfig())

	google.On("Search", mock.Anything, mock.Anything, mock.Anything).
		Return(&googlebooks.SearchResponse{}, nil)
	openlib.On("Search", mock.Anything, mock.Anything, mock.Anything).
		Return(&openlibrary.SearchResponse{}, nil)

	results, err := svc.Search(context.Background(), "xyzzy-nonexistent-book-42")

	require.NoError(t, err)
	assert.NotNil(t, results, "empty result must serialize as [], not null")
	assert.Empty(t, results)
}

func TestService_CoverlessResultsPadTheList(t *testing.T) {
	google := &mockGoogleClient{}
	openlib := &mockOpenLibraryClient{}
	svc := NewService(google, openlib, DefaultConfig())

	items := []googlebooks.Volume{
		coveredVolume("g1", "Dune", 100),
		coverlessVolume("g2", "Dune Concordance"),
		coverlessVolume("g3", "Dune Encyclopedia"),
	}
	google.On("Search", mock.Anything, mock.Anything, mock.Anything).
		Return(&googlebooks.SearchResponse{Items: items}, nil)
	openlib.On("Search", mock.Anything, mock.Anything, mock.Anything).
		Return(&openlibrary.SearchResponse{}, nil)

	results, err := svc.Search(context.Background(), "dune")

	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "g1", results[0].ID, "covered results rank ahead of coverless ones")
}

func TestService_ExactTitleMatchRanksFirst(t *testing.T) {
	google := &mockGoogleClient{}
	openlib := &mockOpenLibraryClient{}
	svc := NewService(google, openlib, DefaultConfig())

	items := coveredVolumes(11)
	items = append(items, coveredVolume("exact", "Dune", 1))
	google.On("Search", mock.Anything, mock.Anything, mock.Anything).
		Return(&googlebooks.SearchResponse{Items: items}, nil)

	results, err := svc.Search(context.Background(), "dune")

	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "Dune", results[0].Title)
	openlib.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_OutputNeverExceedsMaxResults(t *testing.T) {
	google := &mockGoogleClient{}
	openlib := &mockOpenLibraryClient{}
	svc := NewService(google, openlib, DefaultConfig())

	var docs []openlibrary.Doc
	for i := 0; i < 40; i++ {
		docs = append(docs, openlibrary.Doc{
			Key:         fmt.Sprintf("/works/OL%dW", i),
			Title:       fmt.Sprintf("Open Library Book %d", i),
			AuthorNames: []string{"Author"},
			CoverID:     i + 1,
		})
	}
	google.On("Search", mock.Anything, mock.Anything, mock.Anything).
		Return(&googlebooks.SearchResponse{Items: coveredVolumes(11)}, nil)
	openlib.On("Search", mock.Anything, mock.Anything, mock.Anything).
		Return(&openlibrary.SearchResponse{Docs: docs}, nil)

	results, err := svc.Search(context.Background(), "books")

	require.NoError(t, err)
	assert.Len(t, results, 40)
}
