package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/nyaruka/phonenumbers"

	"github.com/jonathan/site-intel/internal/types"
)

var (
	emailRe = regexp.MustCompile(`(?i)\b[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}\b`)
	phoneRe = regexp.MustCompile(`\+?\d[\d\s().\-]{7,18}\d`)
	// Street-address shaped lines, US-centric by necessity
	addressRe = regexp.MustCompile(`\d{1,5}\s+[A-Z][A-Za-z]+\.?\s+(?:[A-Z][A-Za-z]+\.?\s+)?(?:Street|St|Avenue|Ave|Road|Rd|Boulevard|Blvd|Lane|Ln|Drive|Dr|Court|Ct|Way|Place|Pl|Suite|Ste)\b[^,\n]*(?:,\s*[A-Za-z .]+)?`)
)

// DefaultPhoneRegion is assumed when a phone number has no country prefix.
const DefaultPhoneRegion = "US"

// Contacts extracts contact methods from a page: phone-like and email-like
// tokens found by regex over the full text, unioned with explicit tel: and
// mailto: link targets, deduplicated by exact value after normalization.
func Contacts(doc *goquery.Document) []types.ContactMethod {
	text := doc.Find("body").Text()

	seen := make(map[string]bool)
	var contacts []types.ContactMethod

	add := func(kind types.ContactKind, value string) {
		value = strings.TrimSpace(value)
		if value == "" {
			return
		}
		key := string(kind) + "|" + strings.ToLower(value)
		if seen[key] || len(contacts) >= MaxContacts {
			return
		}
		seen[key] = true
		contacts = append(contacts, types.ContactMethod{Kind: kind, Value: value})
	}

	// Explicit link targets first: they are the highest-signal source
	doc.Find(`a[href^="tel:"]`).Each(func(_ int, a *goquery.Selection) {
		raw := strings.TrimPrefix(a.AttrOr("href", ""), "tel:")
		if normalized, ok := NormalizePhone(raw); ok {
			add(types.ContactPhone, normalized)
		}
	})
	doc.Find(`a[href^="mailto:"]`).Each(func(_ int, a *goquery.Selection) {
		raw := strings.TrimPrefix(a.AttrOr("href", ""), "mailto:")
		if at := strings.IndexByte(raw, '?'); at >= 0 {
			raw = raw[:at]
		}
		if emailRe.MatchString(raw) {
			add(types.ContactEmail, strings.ToLower(raw))
		}
	})

	for _, match := range emailRe.FindAllString(text, -1) {
		add(types.ContactEmail, strings.ToLower(match))
	}

	for _, match := range phoneRe.FindAllString(text, -1) {
		if normalized, ok := NormalizePhone(match); ok {
			add(types.ContactPhone, normalized)
		}
	}

	// Address: prefer semantic markup, fall back to a pattern scan
	doc.Find(`address, [class*="address"]`).Each(func(_ int, s *goquery.Selection) {
		candidate := blockText(s)
		if len(candidate) >= 10 && len(candidate) <= 160 {
			add(types.ContactAddress, candidate)
		}
	})
	if match := addressRe.FindString(text); match != "" {
		add(types.ContactAddress, strings.TrimSpace(match))
	}

	return contacts
}

// NormalizePhone validates a phone-like token and formats it E.164.
// Tokens that do not survive validation are rejected rather than kept raw:
// the phone regex is loose and matches things like order numbers.
func NormalizePhone(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	region := DefaultPhoneRegion
	if strings.HasPrefix(raw, "+") {
		region = ""
	}
	number, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return "", false
	}
	if !phonenumbers.IsPossibleNumber(number) || !phonenumbers.IsValidNumber(number) {
		return "", false
	}
	return phonenumbers.Format(number, phonenumbers.E164), true
}
