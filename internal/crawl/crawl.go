// Package crawl orchestrates the multi-page analysis pipeline: fetch the
// homepage, discover and prioritize related pages, crawl them sequentially
// with a politeness delay, extract facts per page, and assemble the final
// scored report.
package crawl

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/jonathan/site-intel/internal/classify"
	"github.com/jonathan/site-intel/internal/db"
	"github.com/jonathan/site-intel/internal/discovery"
	"github.com/jonathan/site-intel/internal/extract"
	"github.com/jonathan/site-intel/internal/fetch"
	"github.com/jonathan/site-intel/internal/report"
	"github.com/jonathan/site-intel/internal/types"
)

// DefaultDelay is the inter-request politeness delay. Pages are fetched
// strictly sequentially so the delay is honored between every two requests.
const DefaultDelay = 1 * time.Second

// Options configures an Analyzer.
type Options struct {
	// MaxPages bounds the crawl, homepage included
	MaxPages int
	// Delay is the minimum gap between requests to the target site
	Delay time.Duration
	// Fetch overrides the HTTP fetch options
	Fetch *fetch.Options
	// UseBrowser enables the headless-browser fallback for SPA pages
	UseBrowser bool
	// Verbose enables diagnostic logging
	Verbose bool
	// DB enables the crawled-page cache when non-nil
	DB *db.DB
	// CacheTTL bounds how long cached pages are served; zero means the
	// cache default
	CacheTTL time.Duration
	// SkipCache forces fresh fetches even when DB is set
	SkipCache bool
}

// Analyzer runs site analyses. It is safe for concurrent use: all crawl
// state (visited set, accumulator, errors) is scoped to one Analyze call.
type Analyzer struct {
	opts    Options
	fetcher *fetch.CachedFetcher
}

// New creates an Analyzer.
func New(opts Options) *Analyzer {
	if opts.MaxPages <= 0 {
		opts.MaxPages = discovery.DefaultMaxPages
	}
	if opts.Delay <= 0 {
		opts.Delay = DefaultDelay
	}
	return &Analyzer{
		opts: opts,
		fetcher: fetch.NewCachedFetcher(opts.DB, &fetch.CachedFetcherConfig{
			Options:   opts.Fetch,
			CacheTTL:  opts.CacheTTL,
			SkipCache: opts.SkipCache,
		}),
	}
}

// Analyze crawls a business website starting at siteURL and returns the
// business-intelligence report. Only a homepage fetch failure is fatal;
// any later page failure is recorded in the report's error list and the
// page is skipped.
func (a *Analyzer) Analyze(ctx context.Context, siteURL string) (*types.AnalysisReport, error) {
	started := time.Now()

	homepage, err := normalizeSiteURL(siteURL)
	if err != nil {
		return nil, err
	}

	// Politeness limiter: one immediate token, then one per delay.
	limiter := rate.NewLimiter(rate.Every(a.opts.Delay), 1)
	visited := make(map[string]bool)
	var (
		pagesAnalyzed []string
		crawlErrors   []string
	)
	aggregate := report.NewAggregate()

	// Homepage fetch is the one fatal failure mode.
	_ = limiter.Wait(ctx)
	html, err := a.fetchHTML(ctx, homepage, types.PageTypeHomepage)
	if err != nil {
		return nil, fmt.Errorf("homepage fetch failed: %w", err)
	}
	visited[homepage] = true

	doc, err := extract.Parse(html, homepage)
	if err != nil {
		return nil, fmt.Errorf("homepage parse failed: %w", err)
	}

	extraction := extract.Page(ctx, doc, homepage, types.PageTypeHomepage)
	aggregate.Fold(extraction)
	pagesAnalyzed = append(pagesAnalyzed, homepage)

	// Classification runs on homepage signals: title and meta description
	// are weighted higher than body text by the scorer.
	bodyText := fetch.CleanWhitespace(doc.Find("body").Text())
	classification := classify.Classify(classify.Input{
		URL:   homepage,
		Title: extraction.Title + " " + extraction.MetaDesc,
		Text:  bodyText,
	})
	aggregate.SetClassification(classification.Category, classification.Industry)
	if a.opts.Verbose {
		log.Printf("[VERBOSE] Classified %s as %s (score %d)", homepage, classification.Category, classification.Score)
	}

	targets, err := discovery.Targets(doc, homepage, a.opts.MaxPages)
	if err != nil {
		// Discovery failure degrades to a homepage-only analysis
		crawlErrors = append(crawlErrors, fmt.Sprintf("page discovery failed: %v", err))
		targets = nil
	}
	if a.opts.Verbose {
		log.Printf("[VERBOSE] Discovered %d crawl targets", len(targets))
	}

	for _, target := range targets {
		if visited[target.URL] {
			continue
		}
		visited[target.URL] = true

		if err := limiter.Wait(ctx); err != nil {
			crawlErrors = append(crawlErrors, fmt.Sprintf("crawl canceled before %s: %v", target.URL, err))
			break
		}

		pageHTML, err := a.fetchHTML(ctx, target.URL, target.PageType)
		if err != nil {
			crawlErrors = append(crawlErrors, fmt.Sprintf("failed to fetch %s page %s: %v", target.PageType, target.URL, err))
			continue
		}

		pageDoc, err := extract.Parse(pageHTML, target.URL)
		if err != nil {
			crawlErrors = append(crawlErrors, fmt.Sprintf("failed to parse %s page %s: %v", target.PageType, target.URL, err))
			continue
		}

		aggregate.Fold(extract.Page(ctx, pageDoc, target.URL, target.PageType))
		pagesAnalyzed = append(pagesAnalyzed, target.URL)
		if a.opts.Verbose {
			log.Printf("[VERBOSE] Analyzed %s page: %s", target.PageType, target.URL)
		}
	}

	return report.Assemble(homepage, aggregate, pagesAnalyzed, crawlErrors, started), nil
}

// fetchHTML retrieves one page's markup, falling back to headless browser
// rendering when enabled and the static markup looks like an empty SPA
// shell.
func (a *Analyzer) fetchHTML(ctx context.Context, pageURL string, pageType types.PageType) (string, error) {
	result, err := a.fetcher.Fetch(ctx, pageURL, string(pageType))
	if err != nil {
		return "", err
	}

	html := result.HTML
	if a.opts.UseBrowser && fetch.ShouldUseBrowser(result.Text) {
		rendered, browserErr := fetch.BrowserSimple(ctx, pageURL, a.opts.Verbose)
		if browserErr != nil {
			if a.opts.Verbose {
				log.Printf("[VERBOSE] Browser rendering failed for %s: %v, using HTTP content", pageURL, browserErr)
			}
		} else {
			html = rendered
		}
	}
	return html, nil
}

// normalizeSiteURL validates the site URL and normalizes it the same way
// discovery normalizes link targets, so the visited set and pagesAnalyzed
// agree on one spelling per page.
func normalizeSiteURL(siteURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(siteURL))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", &fetch.Error{
			URL:     siteURL,
			Kind:    fetch.KindInvalidURL,
			Message: "invalid site URL",
			Cause:   err,
		}
	}
	u.Fragment = ""
	return strings.TrimSuffix(u.String(), "/"), nil
}
