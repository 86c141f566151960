// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/site-intel/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintReportSummary outputs a human-readable summary of a finished analysis.
func (p *Printer) PrintReportSummary(report *types.AnalysisReport) {
	if report == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Business: %s\n", report.BusinessName))
	sb.WriteString(fmt.Sprintf("Category: %s\n", report.BusinessCategory))
	sb.WriteString(fmt.Sprintf("Industry: %s\n", report.IndustryLabel))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Pages analyzed:  %d\n", len(report.Metadata.PagesAnalyzed)))
	sb.WriteString(fmt.Sprintf("Completeness:    %d%%\n", report.Metadata.DataCompleteness))
	sb.WriteString(fmt.Sprintf("Confidence:      %d%%\n", report.Metadata.ConfidenceScore))
	sb.WriteString(fmt.Sprintf("Services found:  %d\n", len(report.Services)))
	sb.WriteString(fmt.Sprintf("Products found:  %d\n", len(report.Products)))
	sb.WriteString(fmt.Sprintf("Contacts found:  %d", len(report.ContactInfo)))

	p.printBox("ANALYSIS SUMMARY", sb.String())
}

// PrintServices outputs the top extracted services.
func (p *Printer) PrintServices(services []types.ServiceRecord) {
	if len(services) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Extracted %d services:\n\n", len(services)))

	count := min(len(services), maxItemsToShow)
	for i := 0; i < count; i++ {
		service := services[i]
		sb.WriteString(fmt.Sprintf("• %s\n", service.Name))
		if service.Description != "" {
			desc := service.Description
			if len(desc) > 50 {
				desc = desc[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  %s\n", desc))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(services) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more services", len(services)-maxItemsToShow))
	}

	p.printBox("SERVICES", sb.String())
}

// PrintContacts outputs the extracted contact methods.
func (p *Printer) PrintContacts(contacts []types.ContactMethod) {
	if len(contacts) == 0 {
		return
	}

	var sb strings.Builder
	for i, contact := range contacts {
		value := contact.Value
		if len(value) > 45 {
			value = value[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("%-8s %s", contact.Kind, value))
		if i < len(contacts)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("CONTACT INFO", sb.String())
}

// PrintCrawlErrors outputs any non-fatal crawl errors.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintCrawlErrors(errors []string) {
	if len(errors) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO CRAWL ERRORS")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d errors:\n\n", len(errors)))

	for i, e := range errors {
		if len(e) > 50 {
			e = e[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s", e))
		if i < len(errors)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("CRAWL ERRORS", sb.String())
}
