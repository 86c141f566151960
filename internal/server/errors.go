// Package server provides the HTTP REST API for the site analyzer.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/site-intel/internal/fetch"
)

// ErrReportNotFound indicates a stored report was not found
type ErrReportNotFound struct {
	ReportID uuid.UUID
}

func (e *ErrReportNotFound) Error() string {
	return fmt.Sprintf("report not found: %s", e.ReportID)
}

// ErrStorageUnavailable indicates the server runs without a database
type ErrStorageUnavailable struct{}

func (e *ErrStorageUnavailable) Error() string {
	return "report storage is not configured"
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var fetchErr *fetch.Error
	if errors.As(err, &fetchErr) {
		if fetchErr.Kind == fetch.KindInvalidURL {
			return http.StatusBadRequest
		}
		// Upstream site failures are the remote's fault, not ours
		return http.StatusBadGateway
	}

	switch err.(type) {
	case *ErrReportNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrStorageUnavailable:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
