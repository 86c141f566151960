package dedupe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "Web Design", "web design"},
		{"trims punctuation", "Web design services!!", "web design services"},
		{"collapses whitespace", "  Web   Design  ", "web design"},
		{"empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("SEO Audit", "seo audit"))
	assert.Equal(t, 1.0, Similarity("", ""))

	// One character off in a long name stays above the threshold.
	assert.Greater(t, Similarity("Web Development", "Web Developments"), SimilarityThreshold)

	// Unrelated names score low.
	assert.Less(t, Similarity("Accounting", "Web Design"), 0.5)
}

func TestIsDuplicate(t *testing.T) {
	assert.True(t, IsDuplicate("Web Design Services", "Web design services!!"))
	assert.True(t, IsDuplicate("Consulting", "Consulting."))
	assert.False(t, IsDuplicate("Web Design", "Copywriting"))
}

func TestMergeNames_FirstSeenWins(t *testing.T) {
	merged := MergeNames(nil, "Web Design Services")
	merged = MergeNames(merged, "Web design services!!", "Copywriting")

	assert.Equal(t, []string{"Web Design Services", "Copywriting"}, merged)
}

func TestMergeNames_Idempotent(t *testing.T) {
	merged := MergeNames(nil, "SEO Audit", "Copywriting")
	again := MergeNames(merged, "SEO Audit", "Copywriting")

	assert.Len(t, again, 2)
}

func TestMergeNames_SkipsEmpty(t *testing.T) {
	merged := MergeNames(nil, "", "   ", "Branding")
	assert.Equal(t, []string{"Branding"}, merged)
}

func TestMergeFunc(t *testing.T) {
	type record struct{ Name string }

	existing := []record{{Name: "Cloud Hosting"}}
	candidates := []record{
		{Name: "cloud hosting"},
		{Name: "Managed Backups"},
		{Name: ""},
	}

	merged := MergeFunc(existing, candidates, func(r record) string { return r.Name })

	assert.Len(t, merged, 2)
	assert.Equal(t, "Cloud Hosting", merged[0].Name)
	assert.Equal(t, "Managed Backups", merged[1].Name)
}

func TestMergeFunc_SelfMergeDoesNotGrow(t *testing.T) {
	type record struct{ Name string }

	existing := []record{{Name: "Web Design"}, {Name: "SEO"}}
	merged := MergeFunc(existing, existing, func(r record) string { return r.Name })

	assert.Len(t, merged, len(existing))
}
