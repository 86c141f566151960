package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/site-intel/internal/types"
)

func TestPrintReportSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := &types.AnalysisReport{
		URL:              "https://example.com",
		BusinessName:     "Acme Cloud",
		BusinessCategory: "saas",
		IndustryLabel:    "Software & Technology",
		Services: []types.ServiceRecord{
			{Name: "Task Automation"},
		},
		Metadata: types.AnalysisMetadata{
			PagesAnalyzed:    []string{"https://example.com", "https://example.com/about"},
			DataCompleteness: 70,
			ConfidenceScore:  85,
		},
	}

	p.PrintReportSummary(report)
	output := buf.String()

	assert.Contains(t, output, "ANALYSIS SUMMARY")
	assert.Contains(t, output, "Acme Cloud")
	assert.Contains(t, output, "saas")
	assert.Contains(t, output, "70%")
	assert.Contains(t, output, "85%")
}

func TestPrintReportSummary_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintReportSummary(nil)

	assert.Empty(t, buf.String())
}

func TestPrintServices(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	services := []types.ServiceRecord{
		{Name: "Task Automation", Description: "Automate recurring work across every project in the workspace."},
		{Name: "Time Tracking"},
		{Name: "Reporting"},
		{Name: "Integrations"},
		{Name: "Onboarding"},
		{Name: "Support"},
	}

	p.PrintServices(services)
	output := buf.String()

	assert.Contains(t, output, "SERVICES")
	assert.Contains(t, output, "Task Automation")
	assert.Contains(t, output, "...", "long descriptions are truncated")
	assert.Contains(t, output, "and 1 more services")
}

func TestPrintServices_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintServices(nil)

	assert.Empty(t, buf.String())
}

func TestPrintContacts(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	contacts := []types.ContactMethod{
		{Kind: types.ContactPhone, Value: "+14155552671"},
		{Kind: types.ContactEmail, Value: "hello@example.com"},
	}

	p.PrintContacts(contacts)
	output := buf.String()

	assert.Contains(t, output, "CONTACT INFO")
	assert.Contains(t, output, "+14155552671")
	assert.Contains(t, output, "hello@example.com")
}

func TestPrintCrawlErrors(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCrawlErrors([]string{"failed to fetch team page https://example.com/team: 500"})
	output := buf.String()

	assert.Contains(t, output, "CRAWL ERRORS")
	assert.Contains(t, output, "Found 1 errors")
}

func TestPrintCrawlErrors_None(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCrawlErrors(nil)

	assert.Contains(t, buf.String(), "NO CRAWL ERRORS")
}
