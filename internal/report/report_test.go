package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/site-intel/internal/types"
)

func TestAggregate_FoldDeduplicatesAcrossPages(t *testing.T) {
	aggregate := NewAggregate()

	aggregate.Fold(&types.PageExtraction{
		URL:      "https://example.com",
		Services: []types.ServiceRecord{{Name: "Web Design Services", Description: "from homepage"}},
	})
	aggregate.Fold(&types.PageExtraction{
		URL:      "https://example.com/services",
		Services: []types.ServiceRecord{{Name: "Web design services!!", Description: "from services page"}, {Name: "Hosting"}},
	})

	services := aggregate.Data().Services
	require.Len(t, services, 2)
	// First discovered page's phrasing wins.
	assert.Equal(t, "Web Design Services", services[0].Name)
	assert.Equal(t, "from homepage", services[0].Description)
	assert.Equal(t, "Hosting", services[1].Name)
}

func TestAggregate_FoldIdempotent(t *testing.T) {
	extraction := &types.PageExtraction{
		Services:     []types.ServiceRecord{{Name: "Consulting"}},
		Testimonials: []types.Testimonial{{Content: "Great to work with, highly recommended."}},
		Contacts:     []types.ContactMethod{{Kind: types.ContactEmail, Value: "a@b.co"}},
	}

	aggregate := NewAggregate()
	aggregate.Fold(extraction)
	before := aggregate.Data()
	aggregate.Fold(extraction)
	after := aggregate.Data()

	assert.Len(t, after.Services, len(before.Services))
	assert.Len(t, after.Testimonials, len(before.Testimonials))
	assert.Len(t, after.Contacts, len(before.Contacts))
}

func TestAggregate_ScalarsFirstNonEmptyWins(t *testing.T) {
	aggregate := NewAggregate()
	aggregate.Fold(&types.PageExtraction{SiteName: "", MetaDesc: ""})
	aggregate.Fold(&types.PageExtraction{SiteName: "Acme", MetaDesc: "First description"})
	aggregate.Fold(&types.PageExtraction{SiteName: "Acme Inc", MetaDesc: "Second description"})

	data := aggregate.Data()
	assert.Equal(t, "Acme", data.BusinessName)
	assert.Equal(t, "First description", data.Description)
}

func TestAggregate_ContactsExactValueDedup(t *testing.T) {
	aggregate := NewAggregate()
	aggregate.Fold(&types.PageExtraction{Contacts: []types.ContactMethod{
		{Kind: types.ContactPhone, Value: "+14155551234"},
	}})
	aggregate.Fold(&types.PageExtraction{Contacts: []types.ContactMethod{
		{Kind: types.ContactPhone, Value: "+14155551234"},
		{Kind: types.ContactPhone, Value: "+14155559999"},
	}})

	// Similar-looking but distinct numbers both survive.
	assert.Len(t, aggregate.Data().Contacts, 2)
}

func TestCompleteness_Range(t *testing.T) {
	assert.Equal(t, 0, Completeness(types.BusinessIntelligence{}))

	full := types.BusinessIntelligence{
		BusinessName:     "Acme",
		Description:      "desc",
		MissionStatement: "mission",
		BusinessCategory: "saas",
		Services:         []types.ServiceRecord{{Name: "X"}},
		Contacts: []types.ContactMethod{
			{Kind: types.ContactPhone, Value: "+1"},
			{Kind: types.ContactEmail, Value: "a@b.co"},
			{Kind: types.ContactAddress, Value: "1 Main St"},
		},
		Team:          []types.TeamMember{{Name: "A B"}},
		ContentThemes: []string{"x"},
	}
	assert.Equal(t, 100, Completeness(full))
}

func TestCompleteness_FallbackCategoryNotCounted(t *testing.T) {
	withCategory := Completeness(types.BusinessIntelligence{BusinessCategory: "legal"})
	withFallback := Completeness(types.BusinessIntelligence{BusinessCategory: "general-business"})
	assert.Greater(t, withCategory, withFallback)
}

func TestConfidence_BoundedMonotonic(t *testing.T) {
	assert.Equal(t, 15, Confidence(0))
	assert.Equal(t, 65, Confidence(50))
	assert.Equal(t, 95, Confidence(80))
	assert.Equal(t, 95, Confidence(100))

	for c := 0; c < 100; c++ {
		assert.LessOrEqual(t, Confidence(c), Confidence(c+1))
		assert.LessOrEqual(t, Confidence(c), ConfidenceCap)
	}
}

func TestAssemble_NonNilSlicesAndMetadata(t *testing.T) {
	aggregate := NewAggregate()
	aggregate.SetClassification("agency", "Marketing & Creative Services")
	started := time.Now().Add(-50 * time.Millisecond)

	result := Assemble("https://example.com", aggregate, []string{"https://example.com"}, nil, started)

	assert.Equal(t, "agency", result.BusinessCategory)
	assert.NotNil(t, result.Services)
	assert.NotNil(t, result.Products)
	assert.NotNil(t, result.Pricing)
	assert.NotNil(t, result.Testimonials)
	assert.NotNil(t, result.TeamInfo)
	assert.NotNil(t, result.ContactInfo)
	assert.NotNil(t, result.ContentThemes)
	assert.NotNil(t, result.CallsToAction)
	assert.NotNil(t, result.Metadata.Errors)
	assert.Equal(t, []string{"https://example.com"}, result.Metadata.PagesAnalyzed)
	assert.GreaterOrEqual(t, result.Metadata.ProcessingTimeMs, int64(50))
	assert.False(t, result.Metadata.AnalyzedAt.IsZero())
	assert.GreaterOrEqual(t, result.Metadata.ConfidenceScore, result.Metadata.DataCompleteness)
}
