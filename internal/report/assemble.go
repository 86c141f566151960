package report

import (
	"time"

	"github.com/jonathan/site-intel/internal/types"
)

// Assemble produces the final report from the aggregate and crawl
// bookkeeping. The report is not mutated after assembly; every slice field
// is non-nil so consumers see empty values rather than absent ones.
func Assemble(siteURL string, aggregate *Aggregate, pagesAnalyzed []string, crawlErrors []string, started time.Time) *types.AnalysisReport {
	data := aggregate.Data()
	completeness := Completeness(data)

	return &types.AnalysisReport{
		URL:              siteURL,
		BusinessName:     data.BusinessName,
		BusinessCategory: data.BusinessCategory,
		IndustryLabel:    data.IndustryLabel,
		Description:      data.Description,
		MissionStatement: data.MissionStatement,
		Services:         emptyIfNil(data.Services),
		Products:         emptyIfNil(data.Products),
		Pricing:          emptyIfNil(data.Pricing),
		Testimonials:     emptyIfNil(data.Testimonials),
		TeamInfo:         emptyIfNil(data.Team),
		ContactInfo:      emptyIfNil(data.Contacts),
		ContentThemes:    emptyIfNil(data.ContentThemes),
		CallsToAction:    emptyIfNil(data.CallsToAction),
		Metadata: types.AnalysisMetadata{
			AnalyzedAt:       time.Now().UTC(),
			PagesAnalyzed:    emptyIfNil(pagesAnalyzed),
			DataCompleteness: completeness,
			ConfidenceScore:  Confidence(completeness),
			ProcessingTimeMs: time.Since(started).Milliseconds(),
			Errors:           emptyIfNil(crawlErrors),
		},
	}
}

func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
