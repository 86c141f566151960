package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/site-intel/internal/crawl"
	"github.com/jonathan/site-intel/internal/types"
)

// AnalyzeRequest is the request body for POST /analyses.
type AnalyzeRequest struct {
	URL        string `json:"url" validate:"required,url"`
	MaxPages   int    `json:"max_pages,omitempty" validate:"omitempty,min=1,max=10"`
	UseBrowser bool   `json:"use_browser,omitempty"`
}

// AnalyzeResponse wraps a finished report with its storage ID when the
// report was persisted.
type AnalyzeResponse struct {
	ID     *uuid.UUID            `json:"id,omitempty"`
	Report *types.AnalysisReport `json:"report"`
}

// handleCreateAnalysis runs a full site analysis and returns the report.
func (s *Server) handleCreateAnalysis(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	analyzer := s.analyzer
	if req.MaxPages > 0 || req.UseBrowser {
		// Per-request crawl settings get a dedicated analyzer that keeps
		// the server-level browser and logging configuration
		analyzer = crawl.New(crawl.Options{
			MaxPages:   req.MaxPages,
			UseBrowser: req.UseBrowser || s.useBrowser,
			Verbose:    s.verbose,
			DB:         s.db,
		})
	}

	report, err := analyzer.Analyze(r.Context(), req.URL)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	response := AnalyzeResponse{Report: report}
	if s.db != nil {
		id, err := s.db.SaveReport(r.Context(), report)
		if err != nil {
			// The analysis succeeded; storage failure only costs the ID
			s.errorResponse(w, http.StatusInternalServerError, "Failed to store report: "+err.Error())
			return
		}
		response.ID = &id
	}

	s.jsonResponse(w, http.StatusCreated, response)
}

// handleGetAnalysis retrieves a stored report by its ID
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrStorageUnavailable{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	idStr := r.PathValue("id")
	reportID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid report ID")
		return
	}

	stored, err := s.db.GetReport(r.Context(), reportID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if stored == nil {
		notFound := &ErrReportNotFound{ReportID: reportID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, stored)
}

// handleListAnalyses lists stored reports for one site, newest first.
// The site is selected with the site_url query parameter.
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrStorageUnavailable{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	siteURL := r.URL.Query().Get("site_url")
	if siteURL == "" {
		s.errorResponse(w, http.StatusBadRequest, "site_url query parameter is required")
		return
	}

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 || parsed > 100 {
			s.errorResponse(w, http.StatusBadRequest, "limit must be an integer between 1 and 100")
			return
		}
		limit = parsed
	}

	reports, err := s.db.ListReports(r.Context(), siteURL, limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"reports": reports,
		"count":   len(reports),
	})
}

// extractValidationErrors formats a validator error for the response body.
func extractValidationErrors(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		if len(validationErrors) > 0 {
			// Return first validation error for simplicity
			ve := validationErrors[0]
			return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
		}
	}
	return "validation error: invalid request"
}
