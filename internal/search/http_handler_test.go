package search

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSearcher struct {
	gotQuery string
	results  []SearchResult
	err      error
}

func (s *stubSearcher) Search(ctx context.Context, query string) ([]SearchResult, error) {
	s.gotQuery = query
	if s.err != nil {
		return nil, s.err
	}
	return s.results, nil
}

func doSearch(t *testing.T, searcher Searcher, target string) *httptest.ResponseRecorder {
	t.Helper()
	handler := NewHTTPHandler(searcher)
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, target, nil)
	handler.Search(w, r)
	return w
}

func TestHTTPHandler_MissingQuery(t *testing.T) {
	w := doSearch(t, &stubSearcher{}, "/api/books/search")

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "q is required", body["error"])
}

func TestHTTPHandler_QueryTooLong(t *testing.T) {
	long := strings.Repeat("a", 201)
	w := doSearch(t, &stubSearcher{}, "/api/books/search?q="+long)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHTTPHandler_WhitespaceOnlyQueryIsRejected(t *testing.T) {
	w := doSearch(t, &stubSearcher{}, "/api/books/search?q=%20%20%20")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHTTPHandler_Success(t *testing.T) {
	searcher := &stubSearcher{results: []SearchResult{
		{ID: "g1", Title: "Dune", Author: "Frank Herbert", Source: SourceGoogle},
	}}

	w := doSearch(t, searcher, "/api/books/search?q=dune")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, "dune", searcher.gotQuery)

	var results []SearchResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "Dune", results[0].Title)
}

func TestHTTPHandler_EmptyResultsIsAnEmptyArray(t *testing.T) {
	w := doSearch(t, &stubSearcher{results: []SearchResult{}}, "/api/books/search?q=xyzzy")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestHTTPHandler_ProviderFailureStaysGeneric(t *testing.T) {
	searcher := &stubSearcher{err: errors.New("googleapis.com returned 503 with key=secret")}

	w := doSearch(t, searcher, "/api/books/search?q=dune")

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Failed to search books. Please try again.", body["error"])
	assert.NotContains(t, w.Body.String(), "503", "upstream detail must not leak")
}
