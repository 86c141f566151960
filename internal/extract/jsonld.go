package extract

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/site-intel/internal/types"
)

// structuredDataServices parses embedded JSON-LD blocks and lifts Service
// declarations. Malformed blocks are skipped, never fatal.
func structuredDataServices(doc *goquery.Document) []types.ServiceRecord {
	var services []types.ServiceRecord
	for _, node := range structuredDataNodes(doc) {
		if !typeIs(node, "Service") {
			continue
		}
		name := stringField(node, "name")
		if name == "" {
			continue
		}
		services = append(services, types.ServiceRecord{
			Name:        name,
			Description: truncate(stringField(node, "description"), 300),
			Category:    stringField(node, "serviceType"),
		})
	}
	return services
}

// structuredDataProducts lifts Product declarations from JSON-LD blocks.
func structuredDataProducts(doc *goquery.Document) []types.ProductRecord {
	var products []types.ProductRecord
	for _, node := range structuredDataNodes(doc) {
		if !typeIs(node, "Product") {
			continue
		}
		name := stringField(node, "name")
		if name == "" {
			continue
		}
		product := types.ProductRecord{
			Name:        name,
			Description: truncate(stringField(node, "description"), 300),
		}
		if offers, ok := node["offers"].(map[string]any); ok {
			if price := stringField(offers, "price"); price != "" {
				currency := stringField(offers, "priceCurrency")
				if currency != "" {
					product.Price = currency + " " + price
				} else {
					product.Price = price
				}
			}
		}
		switch img := node["image"].(type) {
		case string:
			product.Images = []string{img}
		case []any:
			for _, v := range img {
				if s, ok := v.(string); ok && len(product.Images) < 3 {
					product.Images = append(product.Images, s)
				}
			}
		}
		products = append(products, product)
	}
	return products
}

// OrganizationName returns the business name declared in JSON-LD
// Organization/LocalBusiness blocks, or empty when none is present.
func OrganizationName(doc *goquery.Document) string {
	for _, node := range structuredDataNodes(doc) {
		if typeIs(node, "Organization") || typeIs(node, "LocalBusiness") {
			if name := stringField(node, "name"); name != "" {
				return name
			}
		}
	}
	return ""
}

// structuredDataNodes collects every JSON-LD object on the page, flattening
// top-level arrays and @graph containers. Blocks that fail to parse are
// ignored.
func structuredDataNodes(doc *goquery.Document) []map[string]any {
	var nodes []map[string]any
	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		raw := strings.TrimSpace(s.Text())
		if raw == "" {
			return
		}
		var decoded any
		if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
			return
		}
		nodes = append(nodes, flattenJSONLD(decoded)...)
	})
	return nodes
}

func flattenJSONLD(decoded any) []map[string]any {
	var nodes []map[string]any
	switch v := decoded.(type) {
	case map[string]any:
		if graph, ok := v["@graph"].([]any); ok {
			for _, g := range graph {
				nodes = append(nodes, flattenJSONLD(g)...)
			}
			return nodes
		}
		nodes = append(nodes, v)
	case []any:
		for _, item := range v {
			nodes = append(nodes, flattenJSONLD(item)...)
		}
	}
	return nodes
}

// typeIs matches the @type field, which may be a string or a string array.
func typeIs(node map[string]any, want string) bool {
	switch t := node["@type"].(type) {
	case string:
		return strings.EqualFold(t, want)
	case []any:
		for _, v := range t {
			if s, ok := v.(string); ok && strings.EqualFold(s, want) {
				return true
			}
		}
	}
	return false
}

// stringField returns a field as a trimmed string, tolerating numbers.
func stringField(node map[string]any, key string) string {
	switch v := node[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strings.TrimSuffix(fmt.Sprintf("%.2f", v), ".00")
	}
	return ""
}
