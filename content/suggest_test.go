package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagegrader/backend/scraper"
)

func sampleFeatures() *scraper.FeatureSet {
	return &scraper.FeatureSet{
		URL:    "https://www.acme-tools.com/coffee",
		Domain: "www.acme-tools.com",
		Title:  "Welcome",

		TitleLength:      7,
		HasTitle:         true,
		WordCount:        300,
		H1Count:          0,
		ImagesWithoutAlt: 2,

		TopKeywords: []scraper.Keyword{
			{Word: "coffee", Count: 5},
			{Word: "grinder", Count: 3},
			{Word: "beans", Count: 2},
		},
	}
}

func TestGenerateProducesFullBundle(t *testing.T) {
	g := NewSuggester()
	s := g.Generate(sampleFeatures())

	require.NotNil(t, s)
	assert.Len(t, s.Title.Suggestions, 3)
	assert.Len(t, s.MetaDescription.Suggestions, 3)
	assert.Len(t, s.H1.Suggestions, 3)
	assert.NotEmpty(t, s.Fixes)
	assert.Equal(t, "coffee", s.Keywords.Primary)
	assert.NotNil(t, s.Schema.Schema)
}

func TestTitleSuggestionsDiagnoseIssues(t *testing.T) {
	g := NewSuggester()
	s := g.Generate(sampleFeatures())

	assert.Equal(t, "Welcome", s.Title.Current)
	assert.Contains(t, s.Title.Issues, "too_short")
	assert.Contains(t, s.Title.Issues, "missing_keyword")

	for _, v := range s.Title.Suggestions {
		assert.LessOrEqual(t, v.Length, maxTitleLength)
		assert.Equal(t, len(v.Content), v.Length)
		assert.NotEmpty(t, v.Reason)
	}

	// Brand is derived from the domain with www and TLD stripped.
	assert.Contains(t, s.Title.Suggestions[0].Content, "Acme Tools")
	assert.Contains(t, s.Title.Suggestions[0].Content, "Coffee")
}

func TestMetaSuggestionsRespectLengthCap(t *testing.T) {
	g := NewSuggester()
	s := g.Generate(sampleFeatures())

	for _, v := range s.MetaDescription.Suggestions {
		assert.LessOrEqual(t, v.Length, maxMetaLength)
		assert.Contains(t, strings.ToLower(v.Content), "coffee")
	}
}

func TestH1SuggestionsFlagMissingAndMultiple(t *testing.T) {
	g := NewSuggester()

	missing := g.Generate(sampleFeatures())
	assert.Equal(t, "missing", missing.H1.Issue)

	f := sampleFeatures()
	f.H1Count = 2
	f.H1Tags = []string{"First", "Second"}
	multiple := g.Generate(f)
	assert.Equal(t, "multiple", multiple.H1.Issue)
	assert.Equal(t, "First", multiple.H1.Current)

	f = sampleFeatures()
	f.H1Count = 1
	f.H1Tags = []string{"Only"}
	proper := g.Generate(f)
	assert.Empty(t, proper.H1.Issue)
}

func TestContentFixes(t *testing.T) {
	g := NewSuggester()
	s := g.Generate(sampleFeatures())

	require.Len(t, s.Fixes, 2)

	assert.Equal(t, "content_length", s.Fixes[0].Type)
	assert.Equal(t, "high", s.Fixes[0].Priority)
	assert.Len(t, s.Fixes[0].SectionsToAdd, 5)

	assert.Equal(t, "image_optimization", s.Fixes[1].Type)
	assert.Equal(t, "Add alt text to 2 images", s.Fixes[1].Suggestion)

	// A long, fully-tagged page needs neither fix.
	f := sampleFeatures()
	f.WordCount = 1200
	f.ImagesWithoutAlt = 0
	assert.Empty(t, g.Generate(f).Fixes)
}

func TestKeywordPlan(t *testing.T) {
	g := NewSuggester()
	s := g.Generate(sampleFeatures())

	assert.Equal(t, "coffee", s.Keywords.Primary)
	assert.Equal(t, 5, s.Keywords.PrimaryCount)
	assert.Equal(t, []string{"grinder", "beans"}, s.Keywords.Secondary)
	assert.Contains(t, s.Keywords.LongTail, "best coffee")
	assert.Contains(t, s.Keywords.LongTail, "how to coffee")

	empty := g.Generate(&scraper.FeatureSet{})
	assert.Empty(t, empty.Keywords.Primary)
	assert.Equal(t, "Add more keyword-rich content", empty.Keywords.Recommendation)
}

func TestSchemaSuggestionPicksType(t *testing.T) {
	g := NewSuggester()

	s := g.Generate(sampleFeatures())
	assert.Equal(t, "WebPage", s.Schema.Type)
	assert.Contains(t, s.Schema.Implementation, "application/ld+json")

	f := sampleFeatures()
	f.VideoCount = 2
	s = g.Generate(f)
	assert.Equal(t, "VideoObject", s.Schema.Type)
}

func TestGenerateDeterministic(t *testing.T) {
	g := NewSuggester()

	first := g.Generate(sampleFeatures())
	second := g.Generate(sampleFeatures())

	assert.Equal(t, first, second)
}

func TestPrimaryKeywordFallbacks(t *testing.T) {
	assert.Equal(t, "coffee", primaryKeyword([]scraper.Keyword{{Word: "coffee", Count: 1}}, ""))
	assert.Equal(t, "espresso", primaryKeyword(nil, "Your Espresso Machines Guide"))
	assert.Equal(t, "your product", primaryKeyword(nil, ""))
}

func TestBrandFromDomain(t *testing.T) {
	assert.Equal(t, "Acme Tools", brandFromDomain("www.acme-tools.com"))
	assert.Equal(t, "Example", brandFromDomain("example.io"))
	assert.Equal(t, "Your Brand", brandFromDomain(""))
}
