package report

import (
	"math"

	"github.com/jonathan/site-intel/internal/classify"
	"github.com/jonathan/site-intel/internal/types"
)

// ConfidenceBonus is added to completeness to form the confidence score.
// Confidence is a bounded, monotonic function of completeness, never
// independently computed.
const ConfidenceBonus = 15

// ConfidenceCap keeps confidence below 100 to signal that extraction is
// heuristic.
const ConfidenceCap = 95

// Completeness returns the percentage of the expected-field checklist that
// ended up populated, rounded to the nearest integer in [0, 100].
func Completeness(data types.BusinessIntelligence) int {
	checks := []bool{
		data.BusinessName != "",
		data.Description != "",
		data.MissionStatement != "",
		data.BusinessCategory != "" && data.BusinessCategory != classify.FallbackCategory,
		len(data.Services)+len(data.Products) > 0,
		hasContact(data.Contacts, types.ContactPhone),
		hasContact(data.Contacts, types.ContactEmail),
		hasContact(data.Contacts, types.ContactAddress),
		len(data.Testimonials)+len(data.Team) > 0,
		len(data.ContentThemes) > 0,
	}

	populated := 0
	for _, ok := range checks {
		if ok {
			populated++
		}
	}
	return int(math.Round(100 * float64(populated) / float64(len(checks))))
}

// Confidence derives the confidence score from completeness:
// min(completeness + ConfidenceBonus, ConfidenceCap).
func Confidence(completeness int) int {
	return min(completeness+ConfidenceBonus, ConfidenceCap)
}

func hasContact(contacts []types.ContactMethod, kind types.ContactKind) bool {
	for _, c := range contacts {
		if c.Kind == kind {
			return true
		}
	}
	return false
}
