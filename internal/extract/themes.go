package extract

import (
	"sort"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
)

var themeStopwords = map[string]struct{}{
	"the": {}, "and": {}, "of": {}, "to": {}, "in": {}, "a": {}, "for": {}, "is": {},
	"on": {}, "with": {}, "as": {}, "by": {}, "at": {}, "from": {}, "that": {},
	"this": {}, "it": {}, "an": {}, "be": {}, "or": {}, "are": {}, "was": {},
	"will": {}, "has": {}, "have": {}, "had": {}, "but": {}, "not": {}, "your": {},
	"you": {}, "we": {}, "our": {}, "us": {}, "get": {}, "more": {}, "all": {},
	"how": {}, "why": {}, "what": {}, "can": {}, "now": {}, "new": {},
}

// ContentThemes returns the dominant topic keywords of a page, scored by
// frequency over headings and meta keywords. Headings are used rather than
// full body text since they carry the page's own emphasis.
func ContentThemes(doc *goquery.Document) []string {
	var parts []string
	doc.Find("h1, h2, h3").Each(func(_ int, s *goquery.Selection) {
		parts = append(parts, s.Text())
	})
	if kw := doc.Find(`meta[name="keywords"]`).AttrOr("content", ""); kw != "" {
		parts = append(parts, strings.ReplaceAll(kw, ",", " "))
	}

	freq := map[string]int{}
	tokenBreak := func(r rune) bool { return !unicode.IsLetter(r) && !unicode.IsNumber(r) }
	for _, w := range strings.FieldsFunc(strings.ToLower(strings.Join(parts, " ")), tokenBreak) {
		if len(w) < 3 {
			continue
		}
		if _, stop := themeStopwords[w]; stop {
			continue
		}
		freq[w]++
	}

	type kv struct {
		K string
		V int
	}
	list := make([]kv, 0, len(freq))
	for k, v := range freq {
		list = append(list, kv{k, v})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].V == list[j].V {
			return list[i].K < list[j].K
		}
		return list[i].V > list[j].V
	})

	n := min(len(list), MaxThemes)
	themes := make([]string, 0, n)
	for i := 0; i < n; i++ {
		themes = append(themes, list[i].K)
	}
	return themes
}

// ctaPhrases are verb phrases that mark a call-to-action element.
var ctaPhrases = []string{
	"get started", "contact us", "sign up", "book now", "book a",
	"request a", "free trial", "start free", "buy now", "shop now",
	"get a quote", "schedule a", "subscribe", "join now", "try it",
}

// CallsToAction collects distinct CTA strings from buttons and
// button-styled links.
func CallsToAction(doc *goquery.Document) []string {
	seen := make(map[string]bool)
	var ctas []string

	doc.Find(`a, button, [class*="btn"], [class*="cta"], input[type="submit"]`).Each(func(_ int, s *goquery.Selection) {
		if len(ctas) >= MaxCTAs {
			return
		}
		text := blockText(s)
		if text == "" {
			text = strings.TrimSpace(s.AttrOr("value", ""))
		}
		if len(text) < 4 || len(text) > 40 {
			return
		}
		lower := strings.ToLower(text)
		if !isCTA(lower, s) {
			return
		}
		if seen[lower] {
			return
		}
		seen[lower] = true
		ctas = append(ctas, text)
	})

	return ctas
}

func isCTA(lowerText string, s *goquery.Selection) bool {
	for _, phrase := range ctaPhrases {
		if strings.Contains(lowerText, phrase) {
			return true
		}
	}
	// Button-styled elements with short imperative text also qualify
	class := strings.ToLower(s.AttrOr("class", ""))
	if strings.Contains(class, "cta") {
		return true
	}
	return false
}
