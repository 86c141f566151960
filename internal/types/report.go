package types

import "time"

// ServiceRecord is a service the business offers.
type ServiceRecord struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Features    []string `json:"features,omitempty"`
	Category    string   `json:"category,omitempty"`
	Pricing     string   `json:"pricing,omitempty"`
}

// ProductRecord is a product the business sells.
type ProductRecord struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       string   `json:"price,omitempty"`
	Images      []string `json:"images,omitempty"`
	Features    []string `json:"features,omitempty"`
}

// PricingPlan is a named pricing tier discovered on the site.
type PricingPlan struct {
	Name     string   `json:"name"`
	Price    string   `json:"price,omitempty"`
	Features []string `json:"features,omitempty"`
}

// Testimonial is a customer quote.
type Testimonial struct {
	Content string `json:"content"`
	Author  string `json:"author,omitempty"`
	Company string `json:"company,omitempty"`
}

// TeamMember is a person listed on the site.
type TeamMember struct {
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
	Bio  string `json:"bio,omitempty"`
}

// PageExtraction is the per-page bag of extracted facts.
// One is produced per successfully fetched page and discarded after
// it is folded into the aggregate.
type PageExtraction struct {
	URL           string          `json:"url"`
	PageType      PageType        `json:"page_type"`
	Title         string          `json:"title,omitempty"`
	SiteName      string          `json:"site_name,omitempty"`
	MetaDesc      string          `json:"meta_description,omitempty"`
	AboutText     string          `json:"about_text,omitempty"`
	Services      []ServiceRecord `json:"services,omitempty"`
	Products      []ProductRecord `json:"products,omitempty"`
	Pricing       []PricingPlan   `json:"pricing,omitempty"`
	Contacts      []ContactMethod `json:"contacts,omitempty"`
	Testimonials  []Testimonial   `json:"testimonials,omitempty"`
	Team          []TeamMember    `json:"team,omitempty"`
	ContentThemes []string        `json:"content_themes,omitempty"`
	CallsToAction []string        `json:"calls_to_action,omitempty"`
}

// BusinessIntelligence is the cumulative, deduplicated union of all
// page extractions plus the winning classification.
type BusinessIntelligence struct {
	BusinessName     string          `json:"business_name,omitempty"`
	BusinessCategory string          `json:"business_category"`
	IndustryLabel    string          `json:"industry_label"`
	Description      string          `json:"description,omitempty"`
	MissionStatement string          `json:"mission_statement,omitempty"`
	Services         []ServiceRecord `json:"services"`
	Products         []ProductRecord `json:"products"`
	Pricing          []PricingPlan   `json:"pricing"`
	Contacts         []ContactMethod `json:"contacts"`
	Testimonials     []Testimonial   `json:"testimonials"`
	Team             []TeamMember    `json:"team"`
	ContentThemes    []string        `json:"content_themes"`
	CallsToAction    []string        `json:"calls_to_action"`
}

// AnalysisMetadata describes how an analysis went.
// It is derived from the finished aggregate and never mutated afterward.
type AnalysisMetadata struct {
	AnalyzedAt       time.Time `json:"analyzed_at"`
	PagesAnalyzed    []string  `json:"pages_analyzed"`
	DataCompleteness int       `json:"data_completeness"`
	ConfidenceScore  int       `json:"confidence_score"`
	ProcessingTimeMs int64     `json:"processing_time_ms"`
	Errors           []string  `json:"errors"`
}

// AnalysisReport is the final output of one analysis.
// Every slice field is non-nil so downstream consumers can treat the
// report as fully populated with empty values rather than absent ones.
type AnalysisReport struct {
	URL              string           `json:"url"`
	BusinessName     string           `json:"business_name,omitempty"`
	BusinessCategory string           `json:"business_category"`
	IndustryLabel    string           `json:"industry_label"`
	Description      string           `json:"description,omitempty"`
	MissionStatement string           `json:"mission_statement,omitempty"`
	Services         []ServiceRecord  `json:"services"`
	Products         []ProductRecord  `json:"products"`
	Pricing          []PricingPlan    `json:"pricing"`
	Testimonials     []Testimonial    `json:"testimonials"`
	TeamInfo         []TeamMember     `json:"team_info"`
	ContactInfo      []ContactMethod  `json:"contact_info"`
	ContentThemes    []string         `json:"content_themes"`
	CallsToAction    []string         `json:"calls_to_action"`
	Metadata         AnalysisMetadata `json:"metadata"`
}
