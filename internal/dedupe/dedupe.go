// Package dedupe provides near-duplicate detection for extracted records.
//
// Records extracted from different pages (or by different heuristics on the
// same page) frequently describe the same real-world entity with slightly
// different phrasing. Two names are treated as duplicates when their
// normalized edit-distance similarity exceeds SimilarityThreshold, or when
// their normalized forms are exactly equal.
package dedupe

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// SimilarityThreshold is the minimum normalized similarity for two names
// to be considered the same entity.
const SimilarityThreshold = 0.8

// Normalize lowercases a name and strips surrounding whitespace and
// trailing punctuation so that cosmetic variants compare equal.
func Normalize(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.TrimRight(s, ".!?,;:")
	return strings.Join(strings.Fields(s), " ")
}

// Similarity returns the normalized edit-distance similarity of two names:
// 1 - levenshtein(a, b) / max(len(a), len(b)), computed over the
// normalized forms. Two empty names are fully similar.
func Similarity(a, b string) float64 {
	na, nb := Normalize(a), Normalize(b)
	maxLen := max(len([]rune(na)), len([]rune(nb)))
	if maxLen == 0 {
		return 1.0
	}
	dist := levenshtein.ComputeDistance(na, nb)
	return 1.0 - float64(dist)/float64(maxLen)
}

// IsDuplicate reports whether two names refer to the same entity.
func IsDuplicate(a, b string) bool {
	na, nb := Normalize(a), Normalize(b)
	if na == nb {
		return true
	}
	return Similarity(a, b) > SimilarityThreshold
}

// MergeNames appends candidate names to existing, skipping near-duplicates.
// The first-seen record wins: a later variant of an already-present name is
// discarded, so crawl order determines which phrasing survives.
func MergeNames(existing []string, candidates ...string) []string {
	for _, c := range candidates {
		if Normalize(c) == "" {
			continue
		}
		if !containsDuplicate(existing, c) {
			existing = append(existing, c)
		}
	}
	return existing
}

// MergeFunc appends candidates to existing using name to extract the
// comparison key, skipping near-duplicates. First-seen records win.
func MergeFunc[T any](existing, candidates []T, name func(T) string) []T {
	for _, c := range candidates {
		if Normalize(name(c)) == "" {
			continue
		}
		dup := false
		for _, e := range existing {
			if IsDuplicate(name(e), name(c)) {
				dup = true
				break
			}
		}
		if !dup {
			existing = append(existing, c)
		}
	}
	return existing
}

func containsDuplicate(names []string, candidate string) bool {
	for _, n := range names {
		if IsDuplicate(n, candidate) {
			return true
		}
	}
	return false
}
