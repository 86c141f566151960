package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/site-intel/internal/types"
)

// minTestimonialLength filters out decorative quotes.
const minTestimonialLength = 20

// Testimonials extracts customer quotes from testimonial-tagged regions and
// blockquotes. Attribution is taken from cite/author-like child elements
// when present.
func Testimonials(doc *goquery.Document) []types.Testimonial {
	var testimonials []types.Testimonial
	seen := make(map[string]bool)

	collect := func(_ int, s *goquery.Selection) {
		if len(testimonials) >= MaxTestimonials {
			return
		}
		content := strings.TrimSpace(s.Find("p, blockquote").First().Text())
		if content == "" {
			content = strings.TrimSpace(s.Text())
		}
		content = blockTextOf(content)
		if len(content) < minTestimonialLength {
			return
		}
		content = truncate(content, 400)
		key := strings.ToLower(content)
		if seen[key] {
			return
		}
		seen[key] = true

		testimonial := types.Testimonial{Content: content}
		if author := strings.TrimSpace(s.Find(`cite, .author, .name, [class*="author"]`).First().Text()); author != "" {
			testimonial.Author = blockTextOf(truncate(author, 80))
		}
		if company := strings.TrimSpace(s.Find(`.company, [class*="company"]`).First().Text()); company != "" {
			testimonial.Company = blockTextOf(truncate(company, 80))
		}
		testimonials = append(testimonials, testimonial)
	}

	doc.Find(`[class*="testimonial"], [class*="review"], [id*="testimonial"]`).Each(collect)
	doc.Find("blockquote").Each(func(i int, s *goquery.Selection) {
		// Skip blockquotes already inside a testimonial region
		if s.ParentsFiltered(`[class*="testimonial"], [class*="review"]`).Length() > 0 {
			return
		}
		collect(i, s)
	})

	return testimonials
}

// TeamMembers extracts people from team-tagged card regions.
func TeamMembers(doc *goquery.Document) []types.TeamMember {
	var members []types.TeamMember
	seen := make(map[string]bool)

	doc.Find(`[class*="team-member"], [class*="team"] [class*="member"], [class*="staff"], [id*="team"] [class*="card"]`).Each(func(_ int, card *goquery.Selection) {
		if len(members) >= MaxTeamMembers {
			return
		}
		name := strings.TrimSpace(card.Find("h3, h4, .name, [class*='name']").First().Text())
		name = blockTextOf(name)
		if !plausiblePersonName(name) {
			return
		}
		key := strings.ToLower(name)
		if seen[key] {
			return
		}
		seen[key] = true

		member := types.TeamMember{Name: name}
		if role := strings.TrimSpace(card.Find(`.role, .title, .position, [class*="role"], [class*="title"], [class*="position"]`).First().Text()); role != "" {
			member.Role = blockTextOf(truncate(role, 80))
		}
		if bio := strings.TrimSpace(card.Find("p").First().Text()); bio != "" && bio != member.Role {
			member.Bio = blockTextOf(truncate(bio, 300))
		}
		members = append(members, member)
	})

	return members
}

// plausiblePersonName requires a short multi-word name without digits.
func plausiblePersonName(name string) bool {
	if len(name) < 4 || len(name) > 60 {
		return false
	}
	if strings.ContainsAny(name, "0123456789@") {
		return false
	}
	return len(strings.Fields(name)) >= 2
}
