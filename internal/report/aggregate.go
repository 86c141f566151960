// Package report folds per-page extractions into one deduplicated dataset
// and assembles the final scored analysis report.
package report

import (
	"github.com/jonathan/site-intel/internal/dedupe"
	"github.com/jonathan/site-intel/internal/extract"
	"github.com/jonathan/site-intel/internal/types"
)

// Aggregate is the running multi-page dataset for one analysis.
// It is owned by a single analysis invocation and mutated incrementally as
// each page extraction is folded in.
type Aggregate struct {
	data types.BusinessIntelligence
}

// NewAggregate returns an empty aggregate.
func NewAggregate() *Aggregate {
	return &Aggregate{}
}

// Fold merges one page extraction into the aggregate. List fields pass
// through the near-duplicate filter before appending; scalar fields keep
// the first non-empty value seen, so crawl order decides which page's
// phrasing wins.
func (a *Aggregate) Fold(extraction *types.PageExtraction) {
	if extraction == nil {
		return
	}

	if a.data.BusinessName == "" {
		a.data.BusinessName = extraction.SiteName
	}
	if a.data.Description == "" {
		a.data.Description = extraction.MetaDesc
	}
	if a.data.MissionStatement == "" {
		a.data.MissionStatement = extraction.AboutText
	}

	a.data.Services = mergeCapped(a.data.Services, extraction.Services,
		func(s types.ServiceRecord) string { return s.Name }, extract.MaxServices)
	a.data.Products = mergeCapped(a.data.Products, extraction.Products,
		func(p types.ProductRecord) string { return p.Name }, extract.MaxProducts)
	a.data.Pricing = mergeCapped(a.data.Pricing, extraction.Pricing,
		func(p types.PricingPlan) string { return p.Name }, extract.MaxPricingPlans)
	a.data.Testimonials = mergeCapped(a.data.Testimonials, extraction.Testimonials,
		func(t types.Testimonial) string { return t.Content }, extract.MaxTestimonials)
	a.data.Team = mergeCapped(a.data.Team, extraction.Team,
		func(m types.TeamMember) string { return m.Name }, extract.MaxTeamMembers)

	a.data.Contacts = mergeContacts(a.data.Contacts, extraction.Contacts)

	a.data.ContentThemes = capped(dedupe.MergeNames(a.data.ContentThemes, extraction.ContentThemes...), extract.MaxThemes)
	a.data.CallsToAction = capped(dedupe.MergeNames(a.data.CallsToAction, extraction.CallsToAction...), extract.MaxCTAs)
}

// SetClassification records the winning category and industry label.
func (a *Aggregate) SetClassification(category, industry string) {
	a.data.BusinessCategory = category
	a.data.IndustryLabel = industry
}

// Data returns the current aggregate state.
func (a *Aggregate) Data() types.BusinessIntelligence {
	return a.data
}

func mergeCapped[T any](existing, candidates []T, name func(T) string, capN int) []T {
	merged := dedupe.MergeFunc(existing, candidates, name)
	if len(merged) > capN {
		merged = merged[:capN]
	}
	return merged
}

// mergeContacts deduplicates by exact kind+value, not similarity: two
// different phone numbers are never the same contact however close they
// look.
func mergeContacts(existing, candidates []types.ContactMethod) []types.ContactMethod {
	seen := make(map[string]bool, len(existing))
	for _, c := range existing {
		seen[string(c.Kind)+"|"+c.Value] = true
	}
	for _, c := range candidates {
		key := string(c.Kind) + "|" + c.Value
		if seen[key] || len(existing) >= extract.MaxContacts {
			continue
		}
		seen[key] = true
		existing = append(existing, c)
	}
	return existing
}

func capped(values []string, n int) []string {
	if len(values) > n {
		return values[:n]
	}
	return values
}
