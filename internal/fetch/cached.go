// Package fetch - cached.go provides URL fetching with optional caching.
package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/site-intel/internal/db"
	"github.com/jonathan/site-intel/internal/types"
)

// CachedFetcher wraps URL fetching with database-backed caching.
// A nil database degrades to plain fetching.
type CachedFetcher struct {
	db        *db.DB
	options   *Options
	cacheTTL  time.Duration
	skipCache bool
}

// CachedFetcherConfig holds configuration for the cached fetcher.
type CachedFetcherConfig struct {
	CacheTTL  time.Duration
	SkipCache bool
	Options   *Options
}

// NewCachedFetcher creates a new cached fetcher.
func NewCachedFetcher(database *db.DB, config *CachedFetcherConfig) *CachedFetcher {
	if config == nil {
		config = &CachedFetcherConfig{}
	}
	if config.Options == nil {
		config.Options = DefaultOptions()
	}
	if config.CacheTTL == 0 {
		config.CacheTTL = db.DefaultPageCacheTTL
	}
	return &CachedFetcher{
		db:        database,
		options:   config.Options,
		cacheTTL:  config.CacheTTL,
		skipCache: config.SkipCache,
	}
}

// CachedResult extends Result with cache metadata.
type CachedResult struct {
	*Result
	FromCache bool
	PageID    uuid.UUID
}

// Fetch retrieves a URL, returning cached content when it is within the TTL
// and fetching (then caching) fresh content otherwise. Failed fetches are
// recorded so repeated attempts against a dead URL back off.
func (f *CachedFetcher) Fetch(ctx context.Context, urlStr string, pageType string) (*CachedResult, error) {
	if !f.skipCache && f.db != nil {
		shouldSkip, reason, err := f.db.ShouldSkipURL(ctx, urlStr)
		if err != nil {
			return nil, fmt.Errorf("failed to check skip status: %w", err)
		}
		if shouldSkip {
			return nil, &Error{
				URL:     urlStr,
				Kind:    KindNetwork,
				Message: fmt.Sprintf("URL skipped: %s", reason),
			}
		}

		cached, err := f.db.GetFreshCrawledPage(ctx, urlStr, f.cacheTTL)
		if err != nil {
			return nil, fmt.Errorf("failed to check cache: %w", err)
		}
		if cached != nil {
			return &CachedResult{
				Result: &Result{
					URL:        cached.URL,
					HTML:       derefString(cached.RawHTML),
					Text:       derefString(cached.ParsedText),
					StatusCode: derefInt(cached.HTTPStatus),
				},
				FromCache: true,
				PageID:    cached.ID,
			}, nil
		}
	}

	result, err := URL(ctx, urlStr, f.options)
	if err != nil {
		if f.db != nil {
			statusCode := 0
			if result != nil {
				statusCode = result.StatusCode
			}
			_ = f.db.RecordFailedFetch(ctx, urlStr, statusCode, err.Error())
		}
		return nil, err
	}

	selectors := PageContentSelectors(types.PageType(pageType))
	text, _ := ExtractMainText(result.HTML, selectors, CommonNoiseSelectors()...)
	result.Text = text

	if f.db != nil {
		expires := time.Now().Add(f.cacheTTL)
		page := &db.CrawledPage{
			URL:         urlStr,
			RawHTML:     &result.HTML,
			ParsedText:  &result.Text,
			HTTPStatus:  &result.StatusCode,
			FetchStatus: db.FetchStatusSuccess,
			ExpiresAt:   &expires,
		}
		if pageType != "" {
			page.PageType = &pageType
		}
		if err := f.db.UpsertCrawledPage(ctx, page); err == nil {
			return &CachedResult{
				Result:    result,
				FromCache: false,
				PageID:    page.ID,
			}, nil
		}
		// Cache write failure is not a fetch failure
	}

	return &CachedResult{
		Result:    result,
		FromCache: false,
	}, nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}
