package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/site-intel/internal/db"
)

// CrawledPageResponse represents a crawled page response (without raw_html by default)
type CrawledPageResponse struct {
	ID          uuid.UUID `json:"id"`
	URL         string    `json:"url"`
	PageType    *string   `json:"page_type,omitempty"`
	ParsedText  *string   `json:"parsed_text,omitempty"`
	HTTPStatus  *int      `json:"http_status,omitempty"`
	FetchStatus string    `json:"fetch_status"`
	ErrorText   *string   `json:"error_text,omitempty"`
	FetchedAt   string    `json:"fetched_at"`           // ISO 8601 string
	ExpiresAt   *string   `json:"expires_at,omitempty"` // ISO 8601 string
	RawHTML     *string   `json:"raw_html,omitempty"`   // Only included if include_html=true
}

// handleGetCrawledPageByURL retrieves a cached crawled page by its URL
func (s *Server) handleGetCrawledPageByURL(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrStorageUnavailable{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	url := r.URL.Query().Get("url")
	if url == "" {
		s.errorResponse(w, http.StatusBadRequest, "url query parameter is required")
		return
	}

	// Check if HTML should be included
	includeHTML := r.URL.Query().Get("include_html") == "true"

	page, err := s.db.GetCrawledPageByURL(r.Context(), url)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if page == nil {
		s.errorResponse(w, http.StatusNotFound, "Crawled page not found")
		return
	}

	response := convertCrawledPageToResponse(page, includeHTML)
	s.jsonResponse(w, http.StatusOK, response)
}

// convertCrawledPageToResponse converts a db.CrawledPage to CrawledPageResponse
func convertCrawledPageToResponse(page *db.CrawledPage, includeHTML bool) CrawledPageResponse {
	response := CrawledPageResponse{
		ID:          page.ID,
		URL:         page.URL,
		PageType:    page.PageType,
		ParsedText:  page.ParsedText,
		HTTPStatus:  page.HTTPStatus,
		FetchStatus: page.FetchStatus,
		ErrorText:   page.ErrorText,
		FetchedAt:   page.FetchedAt.Format(time.RFC3339),
	}

	if page.ExpiresAt != nil {
		expiresAt := page.ExpiresAt.Format(time.RFC3339)
		response.ExpiresAt = &expiresAt
	}

	// Only include raw_html if explicitly requested
	if includeHTML {
		response.RawHTML = page.RawHTML
	}

	return response
}
