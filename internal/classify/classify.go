package classify

import (
	"net/url"
	"strings"
)

// Input carries the page signals the classifier scores.
type Input struct {
	// URL is the site URL; its host is matched against reference domains
	URL string
	// Title is the page title plus meta description (higher-signal text)
	Title string
	// Text is the combined visible page text
	Text string
}

// Result is the classification outcome.
type Result struct {
	Category string         `json:"category"`
	Industry string         `json:"industry"`
	Score    int            `json:"score"`
	Scores   map[string]int `json:"scores,omitempty"`
}

// Classify scores the input against every category and returns the best
// one, or the generic fallback when no category clears the threshold.
// The function is deterministic: identical input yields identical output,
// and score ties are won by the first-registered category.
func Classify(input Input) Result {
	host := hostOf(input.URL)
	title := strings.ToLower(input.Title)
	text := strings.ToLower(input.Text)
	combined := title + " " + text

	scores := make(map[string]int)
	best := Result{
		Category: FallbackCategory,
		Industry: FallbackIndustry,
	}

	for _, category := range Categories() {
		score := scoreCategory(category, host, title, combined)
		scores[category.Name] = score
		// Strictly greater: on ties the earlier category keeps the win
		if score > best.Score {
			best = Result{
				Category: category.Name,
				Industry: category.Industry,
				Score:    score,
			}
		}
	}

	if best.Score < ScoreThreshold {
		best.Category = FallbackCategory
		best.Industry = FallbackIndustry
	}
	best.Scores = scores
	return best
}

// scoreCategory computes one category's raw score, clamped to zero.
func scoreCategory(category Category, host, title, combined string) int {
	score := 0

	for _, domain := range category.ReferenceDomains {
		if host == domain || strings.HasSuffix(host, "."+domain) {
			score += DomainMatchBonus
			break
		}
	}

	for _, indicator := range category.StrongIndicators {
		score += countHits(combined, indicator) * StrongIndicatorWeight
	}

	for _, keyword := range category.Keywords {
		hits := countHits(combined, keyword)
		score += hits * category.Weight
		if hits > 0 && strings.Contains(title, keyword) {
			score += TitleMatchBonus
		}
	}

	for _, exclusion := range category.Exclusions {
		score -= countHits(combined, exclusion) * ExclusionPenalty
	}

	// Exclusion penalties never push a score negative
	return max(score, 0)
}

// countHits counts keyword occurrences, capped so one repeated word
// cannot dominate.
func countHits(text, keyword string) int {
	hits := strings.Count(text, keyword)
	return min(hits, maxKeywordHits)
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(u.Host), "www.")
}
