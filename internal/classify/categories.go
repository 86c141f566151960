// Package classify scores page text against a fixed table of business
// categories using weighted keywords.
package classify

// Category defines one business category and its scoring signals.
// Categories are kept as an ordered slice, not a map: ties are broken by
// registration order, so iteration order must be stable across runs.
type Category struct {
	// Name is the category label returned to callers
	Name string
	// Industry is the human-readable industry for the category
	Industry string
	// Weight is the score added per plain keyword match
	Weight int
	// Keywords are plain body-text signals
	Keywords []string
	// StrongIndicators are phrases weighted higher than plain keywords
	StrongIndicators []string
	// ReferenceDomains are known hosts for the category
	ReferenceDomains []string
	// Exclusions penalize the score when present, guarding against
	// keyword collisions with neighboring categories
	Exclusions []string
}

// Scoring constants per the weighted-keyword algorithm.
const (
	DomainMatchBonus      = 15
	StrongIndicatorWeight = 5
	TitleMatchBonus       = 2
	ExclusionPenalty      = 3
	ScoreThreshold        = 5
	// maxKeywordHits bounds how often one keyword can count, so a single
	// repeated word cannot dominate the score
	maxKeywordHits = 3
)

// FallbackCategory is returned when no category clears the threshold.
const FallbackCategory = "general-business"

// FallbackIndustry is the industry label for the fallback category.
const FallbackIndustry = "General Business"

// Categories returns the fixed, ordered category table.
func Categories() []Category {
	return []Category{
		{
			Name:     "ecommerce",
			Industry: "E-Commerce & Retail",
			Weight:   2,
			Keywords: []string{
				"shop", "cart", "checkout", "store", "buy", "shipping",
				"order", "sale", "retail", "merchandise",
			},
			StrongIndicators: []string{"add to cart", "free shipping", "shop now", "in stock"},
			ReferenceDomains: []string{"shopify.com", "etsy.com", "amazon.com"},
			Exclusions:       []string{"case study", "consulting services"},
		},
		{
			Name:     "saas",
			Industry: "Software & Technology",
			Weight:   2,
			Keywords: []string{
				"software", "platform", "api", "integration", "dashboard",
				"workflow", "automation", "app", "cloud", "analytics",
			},
			StrongIndicators: []string{"free trial", "start for free", "per user", "no credit card"},
			ReferenceDomains: []string{"salesforce.com", "slack.com", "atlassian.com"},
			Exclusions:       []string{"payment processing", "wire transfer"},
		},
		{
			Name:     "restaurant",
			Industry: "Food & Hospitality",
			Weight:   3,
			Keywords: []string{
				"menu", "reservation", "dining", "chef", "cuisine",
				"takeout", "delivery", "brunch", "dinner",
			},
			StrongIndicators: []string{"book a table", "order online", "happy hour"},
			ReferenceDomains: []string{"opentable.com", "doordash.com"},
			Exclusions:       []string{"menu bar", "navigation menu"},
		},
		{
			Name:     "healthcare",
			Industry: "Healthcare & Medical",
			Weight:   3,
			Keywords: []string{
				"patient", "clinic", "doctor", "treatment", "medical",
				"appointment", "dental", "therapy", "wellness",
			},
			StrongIndicators: []string{"book an appointment", "accepting new patients", "insurance accepted"},
			ReferenceDomains: []string{"zocdoc.com", "mayoclinic.org"},
			Exclusions:       []string{"software health", "system health"},
		},
		{
			Name:     "legal",
			Industry: "Legal Services",
			Weight:   3,
			Keywords: []string{
				"law", "attorney", "lawyer", "legal", "litigation",
				"counsel", "paralegal", "injury", "defense",
			},
			StrongIndicators: []string{"free consultation", "no win no fee", "practice areas"},
			ReferenceDomains: []string{"avvo.com", "findlaw.com"},
			Exclusions:       []string{"terms of service", "privacy policy", "legal notice"},
		},
		{
			Name:     "real-estate",
			Industry: "Real Estate",
			Weight:   3,
			Keywords: []string{
				"property", "listing", "realtor", "mortgage", "home",
				"broker", "rent", "lease", "apartment",
			},
			StrongIndicators: []string{"schedule a showing", "open house", "square feet"},
			ReferenceDomains: []string{"zillow.com", "realtor.com"},
			Exclusions:       []string{"home page", "homepage"},
		},
		{
			Name:     "finance",
			Industry: "Financial Services",
			Weight:   2,
			Keywords: []string{
				"investment", "banking", "accounting", "tax", "loan",
				"insurance", "payment", "wealth", "portfolio", "payroll",
			},
			StrongIndicators: []string{"payment processing", "financial planning", "wealth management"},
			ReferenceDomains: []string{"stripe.com", "fidelity.com"},
			Exclusions:       []string{"invest in yourself"},
		},
		{
			Name:     "education",
			Industry: "Education & Training",
			Weight:   2,
			Keywords: []string{
				"course", "learn", "student", "curriculum", "training",
				"certification", "tutor", "lesson", "enroll",
			},
			StrongIndicators: []string{"enroll now", "start learning", "self-paced"},
			ReferenceDomains: []string{"coursera.org", "udemy.com"},
			Exclusions:       []string{"learn more about us"},
		},
		{
			Name:     "fitness",
			Industry: "Health & Fitness",
			Weight:   3,
			Keywords: []string{
				"gym", "workout", "fitness", "yoga", "trainer",
				"membership", "class", "coaching", "nutrition",
			},
			StrongIndicators: []string{"join today", "first class free", "personal training"},
			ReferenceDomains: []string{"classpass.com", "planetfitness.com"},
			Exclusions:       []string{"business class", "class action"},
		},
		{
			Name:     "agency",
			Industry: "Marketing & Creative Services",
			Weight:   2,
			Keywords: []string{
				"agency", "branding", "marketing", "design", "campaign",
				"creative", "seo", "advertising", "content", "studio",
			},
			StrongIndicators: []string{"view our work", "case studies", "get a quote"},
			ReferenceDomains: []string{"dribbble.com", "behance.net"},
			Exclusions:       []string{"design your own", "interior design"},
		},
	}
}

// IndustryFor looks up the industry label for a category name.
func IndustryFor(category string) string {
	for _, c := range Categories() {
		if c.Name == category {
			return c.Industry
		}
	}
	return FallbackIndustry
}
