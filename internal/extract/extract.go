// Package extract pulls structured business facts out of parsed markup.
//
// Extraction layers several independent heuristics per field: structural
// attribute queries, navigation anchors, heading/paragraph pairs, embedded
// structured data, and regex scans for pattern-shaped values. A page that
// yields nothing for a field produces an empty slice, never an error.
package extract

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/site-intel/internal/dedupe"
	"github.com/jonathan/site-intel/internal/types"
)

// Per-field output caps. Extraction is bounded regardless of page size.
const (
	MaxServices     = 12
	MaxProducts     = 12
	MaxFeatures     = 8
	MaxPricingPlans = 6
	MaxContacts     = 10
	MaxTestimonials = 6
	MaxTeamMembers  = 10
	MaxThemes       = 8
	MaxCTAs         = 5
)

// MinSectionLength filters boilerplate out of section text candidates.
const MinSectionLength = 50

// ParseError indicates the page markup could not be parsed at all.
// Malformed fragments inside an otherwise parseable page are ignored,
// never surfaced.
type ParseError struct {
	URL     string
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return "parse error for " + e.URL + ": " + e.Message + ": " + e.Cause.Error()
	}
	return "parse error for " + e.URL + ": " + e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Parse builds a goquery document from raw markup.
func Parse(html string, pageURL string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &ParseError{URL: pageURL, Message: "failed to parse HTML", Cause: err}
	}
	return doc, nil
}

// Page extracts all supported fact categories from one parsed page.
// Sub-extractors are read-only over the shared document and each one owns a
// distinct output field, so they run concurrently.
func Page(ctx context.Context, doc *goquery.Document, pageURL string, hint types.PageType) *types.PageExtraction {
	extraction := &types.PageExtraction{
		URL:      pageURL,
		PageType: hint,
		Title:    strings.TrimSpace(doc.Find("title").First().Text()),
		MetaDesc: strings.TrimSpace(doc.Find(`meta[name="description"]`).AttrOr("content", "")),
	}
	extraction.SiteName = siteName(doc, extraction.Title)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		extraction.AboutText = SectionText(doc, "about")
		return nil
	})
	g.Go(func() error {
		extraction.Services = Services(doc)
		return nil
	})
	g.Go(func() error {
		extraction.Products = Products(doc)
		return nil
	})
	g.Go(func() error {
		extraction.Pricing = PricingPlans(doc)
		return nil
	})
	g.Go(func() error {
		extraction.Contacts = Contacts(doc)
		return nil
	})
	g.Go(func() error {
		extraction.Testimonials = Testimonials(doc)
		return nil
	})
	g.Go(func() error {
		extraction.Team = TeamMembers(doc)
		return nil
	})
	g.Go(func() error {
		extraction.ContentThemes = ContentThemes(doc)
		return nil
	})
	g.Go(func() error {
		extraction.CallsToAction = CallsToAction(doc)
		return nil
	})
	// Sub-extractors never return errors; the group is used purely for the
	// join point.
	_ = g.Wait()

	return extraction
}

// SectionText finds section content for a keyword using three independent
// signals, taking their union: a heading whose visible text contains the
// keyword, an element whose class attribute contains it, and an element
// whose id attribute contains it. Candidates shorter than MinSectionLength
// are dropped as boilerplate; the longest survivor wins.
func SectionText(doc *goquery.Document, keyword string) string {
	keyword = strings.ToLower(keyword)
	var candidates []string

	// Signal 1: headings containing the keyword; take the section/parent text
	doc.Find("h1, h2, h3").Each(func(_ int, s *goquery.Selection) {
		if !strings.Contains(strings.ToLower(s.Text()), keyword) {
			return
		}
		if text := blockText(s.Parent()); text != "" {
			candidates = append(candidates, text)
		}
	})

	// Signal 2: class attribute containing the keyword
	doc.Find(`[class*="` + keyword + `"]`).Each(func(_ int, s *goquery.Selection) {
		if text := blockText(s); text != "" {
			candidates = append(candidates, text)
		}
	})

	// Signal 3: id attribute containing the keyword
	doc.Find(`[id*="` + keyword + `"]`).Each(func(_ int, s *goquery.Selection) {
		if text := blockText(s); text != "" {
			candidates = append(candidates, text)
		}
	})

	best := ""
	for _, c := range candidates {
		if len(c) >= MinSectionLength && len(c) > len(best) {
			best = c
		}
	}
	return truncate(best, 1200)
}

// siteName resolves the business name from structured data, og:site_name,
// or the segment of the title before a separator, in that order.
func siteName(doc *goquery.Document, title string) string {
	if name := OrganizationName(doc); name != "" {
		return name
	}
	if name := strings.TrimSpace(doc.Find(`meta[property="og:site_name"]`).AttrOr("content", "")); name != "" {
		return name
	}
	for _, sep := range []string{" | ", " - ", " – ", " — "} {
		if idx := strings.Index(title, sep); idx > 0 {
			return strings.TrimSpace(title[:idx])
		}
	}
	return strings.TrimSpace(title)
}

// blockText returns the normalized text of a selection.
func blockText(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}

// truncate bounds a string to max bytes on a rune boundary.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	for i := range runes {
		if len(string(runes[:i+1])) > maxLen {
			return string(runes[:i])
		}
	}
	return s
}

// capStrings bounds a string slice to n entries.
func capStrings(values []string, n int) []string {
	if len(values) > n {
		return values[:n]
	}
	return values
}

// mergeNamed appends candidates to existing with near-duplicate removal and
// a final size cap.
func mergeNamed[T any](existing, candidates []T, name func(T) string, capN int) []T {
	merged := dedupe.MergeFunc(existing, candidates, name)
	if len(merged) > capN {
		merged = merged[:capN]
	}
	return merged
}
