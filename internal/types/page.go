// Package types provides type definitions for structured data used throughout the site-intel system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// PageType identifies the role a page plays within a business website.
type PageType string

const (
	// PageTypeHomepage is the site root page
	PageTypeHomepage PageType = "homepage"
	// PageTypeAbout is an about/company/story page
	PageTypeAbout PageType = "about"
	// PageTypeServices is a services/offerings page
	PageTypeServices PageType = "services"
	// PageTypeContact is a contact page
	PageTypeContact PageType = "contact"
	// PageTypeProducts is a product listing page
	PageTypeProducts PageType = "products"
	// PageTypePricing is a pricing/plans page
	PageTypePricing PageType = "pricing"
	// PageTypeTeam is a team/people page
	PageTypeTeam PageType = "team"
	// PageTypeTestimonials is a testimonials/reviews page
	PageTypeTestimonials PageType = "testimonials"
	// PageTypeBlog is a blog/news page
	PageTypeBlog PageType = "blog"
	// PageTypeUnknown is an unclassified page
	PageTypeUnknown PageType = "unknown"
)

// Priority returns the crawl priority for the page type.
// Lower values are crawled earlier.
func (p PageType) Priority() int {
	switch p {
	case PageTypeHomepage:
		return 1
	case PageTypeAbout:
		return 2
	case PageTypeServices:
		return 3
	case PageTypeContact:
		return 4
	case PageTypeProducts:
		return 5
	case PageTypePricing:
		return 6
	case PageTypeTeam:
		return 7
	case PageTypeTestimonials:
		return 8
	case PageTypeBlog:
		return 9
	default:
		return 10
	}
}

// PageTarget is a candidate page selected during discovery.
// Targets are immutable once created; the crawl scheduler consumes
// them in priority order but never mutates them.
type PageTarget struct {
	URL        string   `json:"url"`
	PageType   PageType `json:"page_type"`
	Priority   int      `json:"priority"`
	Discovered bool     `json:"discovered"`
}

// ContactKind identifies the channel of a contact method.
type ContactKind string

const (
	// ContactPhone is a telephone number
	ContactPhone ContactKind = "phone"
	// ContactEmail is an email address
	ContactEmail ContactKind = "email"
	// ContactAddress is a physical address
	ContactAddress ContactKind = "address"
)

// ContactMethod is a single way of reaching the business.
type ContactMethod struct {
	Kind  ContactKind `json:"kind"`
	Value string      `json:"value"`
}
