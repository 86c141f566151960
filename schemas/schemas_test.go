package schemas

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/site-intel/internal/schemas"
	"github.com/jonathan/site-intel/internal/types"
)

func TestReportSchema_ValidJSON(t *testing.T) {
	data, err := os.ReadFile("analysis_report.schema.json")
	require.NoError(t, err, "should be able to read schema file")

	var v interface{}
	err = json.Unmarshal(data, &v)
	assert.NoError(t, err, "schema file should be valid JSON")
}

func TestReportSchema_ValidJSONSchema(t *testing.T) {
	data, err := os.ReadFile("analysis_report.schema.json")
	require.NoError(t, err)

	var schemaObj map[string]interface{}
	err = json.Unmarshal(data, &schemaObj)
	require.NoError(t, err)

	// Check for required JSON Schema fields
	_, hasType := schemaObj["type"]
	_, hasSchema := schemaObj["$schema"]
	_, hasProps := schemaObj["properties"]
	_, hasDefs := schemaObj["$defs"]

	assert.True(t, hasType && hasSchema && hasProps && hasDefs,
		"schema should declare type, $schema, properties, and $defs")
}

func TestReportSchema_AcceptsAssembledReport(t *testing.T) {
	report := &types.AnalysisReport{
		URL:              "https://example.com",
		BusinessName:     "Acme Cloud",
		BusinessCategory: "saas",
		IndustryLabel:    "Software & Technology",
		Description:      "Project management software for modern teams.",
		Services: []types.ServiceRecord{
			{Name: "Task Automation", Description: "Automate recurring work."},
		},
		Products:     []types.ProductRecord{},
		Pricing:      []types.PricingPlan{},
		Testimonials: []types.Testimonial{},
		TeamInfo:     []types.TeamMember{},
		ContactInfo: []types.ContactMethod{
			{Kind: types.ContactEmail, Value: "hello@example.com"},
		},
		ContentThemes: []string{"project management"},
		CallsToAction: []string{"Start Free Trial"},
		Metadata: types.AnalysisMetadata{
			AnalyzedAt:       time.Now().UTC(),
			PagesAnalyzed:    []string{"https://example.com"},
			DataCompleteness: 40,
			ConfidenceScore:  55,
			ProcessingTimeMs: 1200,
			Errors:           []string{},
		},
	}

	err := schemas.ValidateReport(report)
	assert.NoError(t, err)
}

func TestReportSchema_RejectsInvalidReport(t *testing.T) {
	// Missing required metadata and category fields
	invalid := `{"url": "https://example.com"}`

	schemaContent, err := os.ReadFile("analysis_report.schema.json")
	require.NoError(t, err)

	err = schemas.ValidateJSONString(string(schemaContent), invalid)
	require.Error(t, err)

	var validationErr *schemas.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestReportSchema_RejectsUnknownContactKind(t *testing.T) {
	schemaContent, err := os.ReadFile("analysis_report.schema.json")
	require.NoError(t, err)

	doc := `{
		"url": "https://example.com",
		"business_category": "saas",
		"industry_label": "Software & Technology",
		"services": [], "products": [], "pricing": [], "testimonials": [],
		"team_info": [], "content_themes": [], "calls_to_action": [],
		"contact_info": [{"kind": "fax", "value": "+1 415 555 0100"}],
		"metadata": {
			"analyzed_at": "2026-09-01T10:00:00Z",
			"pages_analyzed": ["https://example.com"],
			"data_completeness": 10,
			"confidence_score": 25,
			"processing_time_ms": 900,
			"errors": []
		}
	}`

	err = schemas.ValidateJSONString(string(schemaContent), doc)
	require.Error(t, err)

	var validationErr *schemas.ValidationError
	require.ErrorAs(t, err, &validationErr)
}
