package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// DefaultPageCacheTTL is how long cached page content is considered fresh.
const DefaultPageCacheTTL = 7 * 24 * time.Hour

// FailureBackoff is how long a URL is skipped after a failed fetch.
const FailureBackoff = 6 * time.Hour

// Fetch status constants for crawled pages
const (
	FetchStatusSuccess = "success"
	FetchStatusFailed  = "failed"
)

// CrawledPage is a cached copy of one fetched page.
type CrawledPage struct {
	ID          uuid.UUID  `json:"id"`
	URL         string     `json:"url"`
	PageType    *string    `json:"page_type,omitempty"`
	RawHTML     *string    `json:"raw_html,omitempty"`
	ParsedText  *string    `json:"parsed_text,omitempty"`
	HTTPStatus  *int       `json:"http_status,omitempty"`
	FetchStatus string     `json:"fetch_status"`
	ErrorText   *string    `json:"error_text,omitempty"`
	FetchedAt   time.Time  `json:"fetched_at"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

// UpsertCrawledPage inserts or refreshes the cache row for a URL.
// The page ID is populated on return.
func (db *DB) UpsertCrawledPage(ctx context.Context, page *CrawledPage) error {
	if page.ID == uuid.Nil {
		page.ID = uuid.New()
	}
	if page.FetchedAt.IsZero() {
		page.FetchedAt = time.Now().UTC()
	}
	err := db.pool.QueryRow(ctx,
		`INSERT INTO crawled_pages (id, url, page_type, raw_html, parsed_text, http_status, fetch_status, error_text, fetched_at, expires_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (url) DO UPDATE SET
		   page_type = EXCLUDED.page_type,
		   raw_html = EXCLUDED.raw_html,
		   parsed_text = EXCLUDED.parsed_text,
		   http_status = EXCLUDED.http_status,
		   fetch_status = EXCLUDED.fetch_status,
		   error_text = EXCLUDED.error_text,
		   fetched_at = EXCLUDED.fetched_at,
		   expires_at = EXCLUDED.expires_at
		 RETURNING id`,
		page.ID, page.URL, page.PageType, page.RawHTML, page.ParsedText,
		page.HTTPStatus, page.FetchStatus, page.ErrorText, page.FetchedAt, page.ExpiresAt,
	).Scan(&page.ID)
	if err != nil {
		return fmt.Errorf("failed to upsert crawled page: %w", err)
	}
	return nil
}

// GetCrawledPageByURL returns the cache row for a URL, or nil when absent.
func (db *DB) GetCrawledPageByURL(ctx context.Context, url string) (*CrawledPage, error) {
	var page CrawledPage
	err := db.pool.QueryRow(ctx,
		`SELECT id, url, page_type, raw_html, parsed_text, http_status, fetch_status, error_text, fetched_at, expires_at
		 FROM crawled_pages WHERE url = $1`,
		url,
	).Scan(&page.ID, &page.URL, &page.PageType, &page.RawHTML, &page.ParsedText,
		&page.HTTPStatus, &page.FetchStatus, &page.ErrorText, &page.FetchedAt, &page.ExpiresAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get crawled page: %w", err)
	}
	return &page, nil
}

// GetFreshCrawledPage returns the cache row for a URL if it was fetched
// successfully within ttl; otherwise nil.
func (db *DB) GetFreshCrawledPage(ctx context.Context, url string, ttl time.Duration) (*CrawledPage, error) {
	page, err := db.GetCrawledPageByURL(ctx, url)
	if err != nil || page == nil {
		return nil, err
	}
	if page.FetchStatus != FetchStatusSuccess {
		return nil, nil
	}
	if page.ExpiresAt != nil && time.Now().After(*page.ExpiresAt) {
		return nil, nil
	}
	if time.Since(page.FetchedAt) > ttl {
		return nil, nil
	}
	return page, nil
}

// RecordFailedFetch stores a failed fetch so repeated attempts back off.
func (db *DB) RecordFailedFetch(ctx context.Context, url string, statusCode int, errMsg string) error {
	page := &CrawledPage{
		URL:         url,
		FetchStatus: FetchStatusFailed,
		ErrorText:   &errMsg,
	}
	if statusCode != 0 {
		page.HTTPStatus = &statusCode
	}
	return db.UpsertCrawledPage(ctx, page)
}

// ShouldSkipURL reports whether a URL recently failed and is still inside
// its backoff window. The reason is human-readable.
func (db *DB) ShouldSkipURL(ctx context.Context, url string) (bool, string, error) {
	page, err := db.GetCrawledPageByURL(ctx, url)
	if err != nil || page == nil {
		return false, "", err
	}
	if page.FetchStatus != FetchStatusFailed {
		return false, "", nil
	}
	if time.Since(page.FetchedAt) < FailureBackoff {
		reason := "recent fetch failure"
		if page.ErrorText != nil {
			reason = *page.ErrorText
		}
		return true, reason, nil
	}
	return false, "", nil
}
