package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/site-intel/internal/types"
)

// navStoplist excludes generic navigation items from offering detection.
var navStoplist = map[string]struct{}{
	"home": {}, "about": {}, "about us": {}, "contact": {}, "contact us": {},
	"login": {}, "log in": {}, "sign in": {}, "sign up": {}, "register": {},
	"blog": {}, "news": {}, "careers": {}, "jobs": {}, "faq": {}, "support": {},
	"help": {}, "privacy": {}, "privacy policy": {}, "terms": {}, "search": {},
	"cart": {}, "checkout": {}, "menu": {}, "more": {}, "learn more": {},
	"services": {}, "our services": {}, "products": {}, "pricing": {},
	"solutions": {}, "team": {}, "our team": {}, "testimonials": {},
}

var priceRe = regexp.MustCompile(`[$€£₹]\s?\d[\d,]*(?:\.\d{1,2})?(?:\s?/\s?\w+)?`)

// minDescriptionLength is the floor for a paragraph to count as an
// offering description in the heading/paragraph strategy.
const minDescriptionLength = 40

// Services detects services offered by the business, layering several
// strategies and merging their output with near-duplicate removal:
// attribute-tagged regions, navigation anchors, heading/paragraph pairs,
// and embedded structured data. Earlier strategies win on conflicts.
func Services(doc *goquery.Document) []types.ServiceRecord {
	var services []types.ServiceRecord

	services = mergeNamed(services, taggedRegionServices(doc), serviceName, MaxServices)
	services = mergeNamed(services, navAnchorServices(doc), serviceName, MaxServices)
	services = mergeNamed(services, headingPairServices(doc), serviceName, MaxServices)
	services = mergeNamed(services, structuredDataServices(doc), serviceName, MaxServices)

	return services
}

func serviceName(s types.ServiceRecord) string { return s.Name }

// taggedRegionServices finds regions whose class or id suggests an offering
// list and lifts item headings plus nearby text.
func taggedRegionServices(doc *goquery.Document) []types.ServiceRecord {
	var services []types.ServiceRecord

	doc.Find(`[class*="service"], [class*="offering"], [id*="service"], [class*="what-we-do"]`).Each(func(_ int, region *goquery.Selection) {
		region.Find("h2, h3, h4").Each(func(_ int, heading *goquery.Selection) {
			name := strings.TrimSpace(heading.Text())
			if !plausibleOfferingName(name) {
				return
			}
			svc := types.ServiceRecord{Name: name}
			if desc := strings.TrimSpace(heading.NextFiltered("p").Text()); desc != "" {
				svc.Description = truncate(blockTextOf(desc), 300)
			}
			svc.Features = itemFeatures(heading.Parent())
			if price := priceRe.FindString(heading.Parent().Text()); price != "" {
				svc.Pricing = price
			}
			services = append(services, svc)
		})
	})

	return services
}

// navAnchorServices treats navigation menu entries as offering candidates,
// excluding the generic-item stoplist.
func navAnchorServices(doc *goquery.Document) []types.ServiceRecord {
	var services []types.ServiceRecord

	doc.Find("nav a, .menu a, .navbar a, header ul a").Each(func(_ int, a *goquery.Selection) {
		name := strings.TrimSpace(a.Text())
		if !plausibleOfferingName(name) {
			return
		}
		// Only anchors that point at service-looking paths are candidates
		href := strings.ToLower(a.AttrOr("href", ""))
		if !strings.Contains(href, "service") && !strings.Contains(href, "solution") && !strings.Contains(href, "offering") {
			return
		}
		services = append(services, types.ServiceRecord{Name: name, Category: "navigation"})
	})

	return services
}

// headingPairServices lifts heading/paragraph pairs where a meaningful
// paragraph directly follows a heading.
func headingPairServices(doc *goquery.Document) []types.ServiceRecord {
	var services []types.ServiceRecord

	doc.Find("h2, h3").Each(func(_ int, heading *goquery.Selection) {
		name := strings.TrimSpace(heading.Text())
		if !plausibleOfferingName(name) {
			return
		}
		desc := strings.TrimSpace(heading.NextFiltered("p").Text())
		if len(desc) < minDescriptionLength {
			return
		}
		services = append(services, types.ServiceRecord{
			Name:        name,
			Description: truncate(blockTextOf(desc), 300),
		})
	})

	return services
}

// Products detects products for sale: attribute-tagged product cards plus
// embedded structured data declarations.
func Products(doc *goquery.Document) []types.ProductRecord {
	var products []types.ProductRecord

	doc.Find(`[class*="product"], [id*="product"], [class*="shop-item"]`).Each(func(_ int, card *goquery.Selection) {
		name := strings.TrimSpace(card.Find("h2, h3, h4, .title, .name").First().Text())
		if !plausibleOfferingName(name) {
			return
		}
		product := types.ProductRecord{Name: name}
		if desc := strings.TrimSpace(card.Find("p").First().Text()); desc != "" {
			product.Description = truncate(blockTextOf(desc), 300)
		}
		if price := priceRe.FindString(card.Text()); price != "" {
			product.Price = price
		}
		card.Find("img[src]").Each(func(_ int, img *goquery.Selection) {
			if src := img.AttrOr("src", ""); src != "" && len(product.Images) < 3 {
				product.Images = append(product.Images, src)
			}
		})
		product.Features = itemFeatures(card)
		products = append(products, product)
	})

	products = mergeNamed(nil, products, productName, MaxProducts)
	products = mergeNamed(products, structuredDataProducts(doc), productName, MaxProducts)
	return products
}

func productName(p types.ProductRecord) string { return p.Name }

// PricingPlans extracts named pricing tiers from pricing-tagged regions.
func PricingPlans(doc *goquery.Document) []types.PricingPlan {
	var plans []types.PricingPlan

	doc.Find(`[class*="pricing"], [class*="plan"], [id*="pricing"]`).Each(func(_ int, region *goquery.Selection) {
		region.Find("h2, h3, h4").Each(func(_ int, heading *goquery.Selection) {
			name := strings.TrimSpace(heading.Text())
			if !plausibleOfferingName(name) {
				return
			}
			plan := types.PricingPlan{Name: name}
			if price := priceRe.FindString(heading.Parent().Text()); price != "" {
				plan.Price = price
			}
			plan.Features = itemFeatures(heading.Parent())
			plans = append(plans, plan)
		})
	})

	return mergeNamed(nil, plans, func(p types.PricingPlan) string { return p.Name }, MaxPricingPlans)
}

// itemFeatures collects list items under a container as feature strings.
func itemFeatures(container *goquery.Selection) []string {
	var features []string
	container.Find("li").Each(func(_ int, li *goquery.Selection) {
		text := strings.TrimSpace(li.Text())
		if text == "" || len(text) > 120 || len(features) >= MaxFeatures {
			return
		}
		features = append(features, blockTextOf(text))
	})
	return features
}

// plausibleOfferingName filters out empty, overlong, and stoplisted names.
func plausibleOfferingName(name string) bool {
	if len(name) < 3 || len(name) > 80 {
		return false
	}
	_, stopped := navStoplist[strings.ToLower(strings.TrimSpace(name))]
	return !stopped
}

func blockTextOf(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
