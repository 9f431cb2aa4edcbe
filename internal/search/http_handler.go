package search

import (
	"log"
	"net/http"
	"strings"

	"bookfolio/internal/httpx"
)

// genericSearchError is the only failure message callers ever see; provider
// error detail stays in the server log.
const genericSearchError = "Failed to search books. Please try again."

type HTTPHandler struct {
	searcher Searcher
}

func NewHTTPHandler(searcher Searcher) *HTTPHandler {
	return &HTTPHandler{searcher: searcher}
}

type searchQuery struct {
	Q string `validate:"required,max=200"`
}

// Search handles GET /api/books/search
// @Summary Search books
// @Description Search both catalogs for books matching a free-text query
// @Tags books
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {array} search.SearchResult
// @Failure 400 {object} httpx.ErrorBody
// @Failure 500 {object} httpx.ErrorBody
// @Router /api/books/search [get]
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	if errs := httpx.ValidateStruct(searchQuery{Q: query}); len(errs) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, errs[0].Message)
		return
	}

	results, err := h.searcher.Search(r.Context(), query)
	if err != nil {
		log.Printf("book search failed: request_id=%s query=%q error=%v", httpx.RequestIDFrom(r), query, err)
		httpx.JSONError(w, http.StatusInternalServerError, genericSearchError)
		return
	}

	httpx.JSON(w, http.StatusOK, results)
}
