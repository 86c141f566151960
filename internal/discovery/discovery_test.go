package discovery

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/site-intel/internal/types"
)

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

const navHTML = `<html><body><nav>
	<a href="/about">About Us</a>
	<a href="/services">Our Services</a>
	<a href="/contact">Contact Us</a>
	<a href="/pricing">Pricing</a>
	<a href="/team">Meet the Team</a>
	<a href="/blog">Blog</a>
	<a href="/random-page">Something Else</a>
	<a href="https://other-site.com/about">External About</a>
</nav></body></html>`

func TestTargets_PrioritizedAndBounded(t *testing.T) {
	doc := parseDoc(t, navHTML)

	targets, err := Targets(doc, "https://example.com/", 10)
	require.NoError(t, err)

	// Homepage is always first with priority 1.
	assert.Equal(t, "https://example.com", targets[0].URL)
	assert.Equal(t, types.PageTypeHomepage, targets[0].PageType)
	assert.Equal(t, 1, targets[0].Priority)
	assert.False(t, targets[0].Discovered)

	// Unmatched and external links are discarded.
	for _, target := range targets {
		assert.NotContains(t, target.URL, "random-page")
		assert.NotContains(t, target.URL, "other-site.com")
	}

	// Ascending priority order.
	for i := 1; i < len(targets); i++ {
		assert.GreaterOrEqual(t, targets[i].Priority, targets[i-1].Priority)
	}

	pageTypes := make([]types.PageType, 0, len(targets))
	for _, target := range targets {
		pageTypes = append(pageTypes, target.PageType)
	}
	assert.Equal(t, []types.PageType{
		types.PageTypeHomepage,
		types.PageTypeAbout,
		types.PageTypeServices,
		types.PageTypeContact,
		types.PageTypePricing,
		types.PageTypeTeam,
		types.PageTypeBlog,
	}, pageTypes)
}

func TestTargets_Truncation(t *testing.T) {
	doc := parseDoc(t, navHTML)

	targets, err := Targets(doc, "https://example.com", 3)
	require.NoError(t, err)
	require.Len(t, targets, 3)
	assert.Equal(t, types.PageTypeHomepage, targets[0].PageType)
	assert.Equal(t, types.PageTypeAbout, targets[1].PageType)
	assert.Equal(t, types.PageTypeServices, targets[2].PageType)
}

func TestTargets_NoMatchingLinks(t *testing.T) {
	doc := parseDoc(t, `<html><body><nav><a href="/xyz">XYZ</a></nav></body></html>`)

	targets, err := Targets(doc, "https://example.com", 6)
	require.NoError(t, err)
	require.Len(t, targets, 1)
	assert.Equal(t, types.PageTypeHomepage, targets[0].PageType)
}

func TestTargets_DeduplicatesURLVariants(t *testing.T) {
	html := `<html><body><nav>
		<a href="/about">About</a>
		<a href="/about/">About Us</a>
		<a href="/about#history">Our Story</a>
	</nav></body></html>`
	doc := parseDoc(t, html)

	targets, err := Targets(doc, "https://example.com", 6)
	require.NoError(t, err)
	require.Len(t, targets, 2)
	assert.Equal(t, "https://example.com/about", targets[1].URL)
}

func TestTargets_InvalidHomepage(t *testing.T) {
	doc := parseDoc(t, navHTML)

	_, err := Targets(doc, "not a url", 6)
	require.Error(t, err)
	var de *Error
	assert.ErrorAs(t, err, &de)
}

func TestClassifyLink(t *testing.T) {
	tests := []struct {
		anchor string
		path   string
		want   types.PageType
	}{
		{"Contact Us", "/contact", types.PageTypeContact},
		{"About", "/about-us", types.PageTypeAbout},
		{"What We Do", "/what-we-do", types.PageTypeServices},
		{"Plans", "/plans", types.PageTypePricing},
		{"Meet the Team", "/people", types.PageTypeTeam},
		{"Reviews", "/reviews", types.PageTypeTestimonials},
		{"Latest News", "/news", types.PageTypeBlog},
		{"Shop", "/shop", types.PageTypeProducts},
		{"Gallery", "/gallery", types.PageTypeUnknown},
		// Path match works when anchor text is generic
		{"Click here", "/services/web", types.PageTypeServices},
	}

	for _, tt := range tests {
		t.Run(tt.anchor, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyLink(tt.anchor, tt.path))
		})
	}
}

func TestClassifyLink_ContactPriority(t *testing.T) {
	// The documented contract: contact resolves to priority 4.
	pageType := ClassifyLink("Contact Us", "/contact")
	assert.Equal(t, types.PageTypeContact, pageType)
	assert.Equal(t, 4, pageType.Priority())
}
