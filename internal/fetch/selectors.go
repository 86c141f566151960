// Package fetch - selectors.go provides page-type aware content selectors.
package fetch

import "github.com/jonathan/site-intel/internal/types"

// DefaultTextSelectors returns standard selectors for general web content.
func DefaultTextSelectors() []string {
	return []string{
		"main",
		"article",
		".content",
		"#content",
		".main-content",
		"#main-content",
	}
}

// PageContentSelectors returns content selectors tuned to a page type.
// Unknown types fall back to the general selectors.
func PageContentSelectors(pageType types.PageType) []string {
	switch pageType {
	case types.PageTypeAbout:
		return append([]string{
			".about", "#about", ".about-us", "#about-us", ".company", ".our-story",
		}, DefaultTextSelectors()...)
	case types.PageTypeServices:
		return append([]string{
			".services", "#services", ".offerings", ".what-we-do",
		}, DefaultTextSelectors()...)
	case types.PageTypeContact:
		return append([]string{
			".contact", "#contact", ".contact-us", "#contact-us", ".get-in-touch",
		}, DefaultTextSelectors()...)
	case types.PageTypeProducts:
		return append([]string{
			".products", "#products", ".shop", ".catalog",
		}, DefaultTextSelectors()...)
	case types.PageTypePricing:
		return append([]string{
			".pricing", "#pricing", ".plans", ".pricing-table",
		}, DefaultTextSelectors()...)
	case types.PageTypeTeam:
		return append([]string{
			".team", "#team", ".our-team", ".people", ".staff",
		}, DefaultTextSelectors()...)
	case types.PageTypeTestimonials:
		return append([]string{
			".testimonials", "#testimonials", ".reviews", ".quotes",
		}, DefaultTextSelectors()...)
	default:
		return DefaultTextSelectors()
	}
}

// CommonNoiseSelectors returns selectors for boilerplate regions that should
// be stripped before text extraction on any page type.
func CommonNoiseSelectors() []string {
	return []string{
		".cookie-consent",
		".gdpr-notice",
		".newsletter-signup",
		".social-share",
		".share-buttons",
		".breadcrumb",
		".breadcrumbs",
		"#sidebar",
		".sidebar",
	}
}
