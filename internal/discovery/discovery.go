// Package discovery inspects a homepage's navigation links and selects a
// bounded, prioritized set of pages to crawl.
package discovery

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/site-intel/internal/types"
)

// DefaultMaxPages bounds the total crawl cost of one analysis.
const DefaultMaxPages = 6

// MaxPagesLimit is the hard maximum regardless of configuration.
const MaxPagesLimit = 10

// typeKeywords maps anchor/path keywords onto page types. The table is
// checked in this fixed order; the first matching type wins.
var typeKeywords = []struct {
	pageType types.PageType
	keywords []string
}{
	{types.PageTypeAbout, []string{"about", "company", "who we are", "our story", "mission"}},
	{types.PageTypeServices, []string{"service", "offering", "solution", "what we do"}},
	{types.PageTypeContact, []string{"contact", "get in touch", "reach us", "location"}},
	{types.PageTypeProducts, []string{"product", "shop", "store", "catalog"}},
	{types.PageTypeTeam, []string{"team", "people", "staff", "leadership"}},
	{types.PageTypePricing, []string{"pricing", "price", "plans", "rates", "packages"}},
	{types.PageTypeTestimonials, []string{"testimonial", "review", "success stories", "case studies"}},
	{types.PageTypeBlog, []string{"blog", "news", "articles", "insights"}},
}

// Error represents a discovery failure.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("discovery error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("discovery error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Targets discovers crawl targets from the homepage document.
// Only same-host links whose anchor text or path matches a known page type
// are kept; unmatched links are discarded. The homepage itself is always
// the first target. The result is sorted ascending by priority and
// truncated to maxPages.
func Targets(doc *goquery.Document, homepageURL string, maxPages int) ([]types.PageTarget, error) {
	base, err := url.Parse(homepageURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, &Error{
			Message: fmt.Sprintf("invalid homepage URL: %s", homepageURL),
			Cause:   err,
		}
	}

	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	if maxPages > MaxPagesLimit {
		maxPages = MaxPagesLimit
	}

	homepage := normalizeURL(base)

	targets := []types.PageTarget{{
		URL:      homepage,
		PageType: types.PageTypeHomepage,
		Priority: types.PageTypeHomepage.Priority(),
	}}
	seen := map[string]bool{homepage: true}

	doc.Find("nav a[href], header a[href], .menu a[href], .navbar a[href], footer a[href]").Each(func(_ int, a *goquery.Selection) {
		href := a.AttrOr("href", "")
		if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "javascript:") {
			return
		}
		linkURL, err := url.Parse(href)
		if err != nil {
			return
		}
		resolved := base.ResolveReference(linkURL)
		if resolved.Host != base.Host {
			return
		}
		normalized := normalizeURL(resolved)
		if seen[normalized] {
			return
		}

		pageType := ClassifyLink(a.Text(), resolved.Path)
		if pageType == types.PageTypeUnknown {
			return
		}

		seen[normalized] = true
		targets = append(targets, types.PageTarget{
			URL:        normalized,
			PageType:   pageType,
			Priority:   pageType.Priority(),
			Discovered: true,
		})
	})

	sort.SliceStable(targets, func(i, j int) bool {
		return targets[i].Priority < targets[j].Priority
	})

	if len(targets) > maxPages {
		targets = targets[:maxPages]
	}
	return targets, nil
}

// ClassifyLink maps a link's anchor text and URL path onto a page type by
// substring match against the keyword table, checked in fixed order.
// Links matching no type are reported as unknown and discarded by callers.
func ClassifyLink(anchorText, urlPath string) types.PageType {
	anchor := strings.ToLower(strings.TrimSpace(anchorText))
	path := strings.ToLower(urlPath)

	for _, entry := range typeKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(anchor, keyword) || strings.Contains(path, keyword) {
				return entry.pageType
			}
		}
	}
	return types.PageTypeUnknown
}

// normalizeURL strips fragments and trailing slashes so the visited-set
// treats cosmetic variants as one page.
func normalizeURL(u *url.URL) string {
	resolved := *u
	resolved.Fragment = ""
	s := resolved.String()
	return strings.TrimSuffix(s, "/")
}
