// Package content generates optimized SEO content drafts from an analyzed
// page: title and meta variants, heading fixes, keyword plans and
// structured-data snippets, plus platform-specific formatting.
package content

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pagegrader/backend/scraper"
)

const (
	optimalTitleRange = "50-60 characters"
	optimalMetaRange  = "150-160 characters"
	maxTitleLength    = 60
	maxMetaLength     = 160
)

var (
	titleCaser       = cases.Title(language.English)
	titleWordPattern = regexp.MustCompile(`\b[a-zA-Z]{4,}\b`)
	tldPattern       = regexp.MustCompile(`\.(com|org|net|io|co|app|dev|ai).*`)

	titleFallbackStops = map[string]struct{}{
		"with": {}, "your": {}, "this": {}, "that": {}, "from": {},
		"have": {}, "been": {}, "were": {}, "will": {}, "would": {},
	}

	ctas = []string{
		"Get started free →",
		"Learn more today!",
		"Try it now →",
		"Start your journey!",
		"See how it works →",
		"Get your free quote!",
		"Join thousands of users!",
		"Schedule a demo →",
	}

	benefits = []string{
		"better results", "improved performance", "higher rankings",
		"increased traffic", "more conversions", "saved time",
		"reduced costs", "expert solutions", "proven results",
	}
)

// Variant is one generated draft with its rationale.
type Variant struct {
	Content     string `json:"content"`
	Length      int    `json:"length"`
	Reason      string `json:"reason"`
	Improvement string `json:"improvement"`
}

// TitleSuggestion diagnoses the current title and offers replacements.
type TitleSuggestion struct {
	Current       string    `json:"current"`
	CurrentLength int       `json:"current_length"`
	OptimalLength string    `json:"optimal_length"`
	Issues        []string  `json:"issues"`
	Suggestions   []Variant `json:"suggestions"`
}

// MetaSuggestion diagnoses the current meta description and offers
// replacements.
type MetaSuggestion struct {
	Current       string    `json:"current"`
	CurrentLength int       `json:"current_length"`
	OptimalLength string    `json:"optimal_length"`
	Suggestions   []Variant `json:"suggestions"`
}

// H1Suggestion diagnoses the page's H1 structure.
type H1Suggestion struct {
	Current     string   `json:"current,omitempty"`
	Count       int      `json:"count"`
	Issue       string   `json:"issue,omitempty"` // missing, multiple
	Suggestions []string `json:"suggestions"`
}

// Fix is a structural content improvement.
type Fix struct {
	Type          string   `json:"type"`
	Priority      string   `json:"priority"`
	Suggestion    string   `json:"suggestion"`
	SectionsToAdd []string `json:"sections_to_add,omitempty"`
	Example       string   `json:"example,omitempty"`
}

// KeywordPlan recommends primary, secondary and long-tail keywords.
type KeywordPlan struct {
	Primary        string   `json:"primary"`
	PrimaryCount   int      `json:"primary_count"`
	Secondary      []string `json:"secondary"`
	LongTail       []string `json:"long_tail_suggestions"`
	Recommendation string   `json:"recommendation"`
}

// SchemaSuggestion is a ready-to-embed JSON-LD draft.
type SchemaSuggestion struct {
	Type           string         `json:"type"`
	Schema         map[string]any `json:"schema"`
	Implementation string         `json:"implementation"`
}

// Suggestions bundles every generated draft for one page.
type Suggestions struct {
	Title           TitleSuggestion  `json:"title"`
	MetaDescription MetaSuggestion   `json:"meta_description"`
	H1              H1Suggestion     `json:"h1_suggestion"`
	Fixes           []Fix            `json:"content_suggestions"`
	Keywords        KeywordPlan      `json:"keyword_recommendations"`
	Schema          SchemaSuggestion `json:"schema_suggestion"`
}

// Suggester generates content drafts. It is stateless; phrase selection is
// keyed off the primary keyword so identical input yields identical output.
type Suggester struct{}

// NewSuggester creates a Suggester.
func NewSuggester() *Suggester { return &Suggester{} }

// Generate produces the full suggestion bundle for an analyzed page.
func (g *Suggester) Generate(f *scraper.FeatureSet) *Suggestions {
	keyword := primaryKeyword(f.TopKeywords, f.Title)
	brand := brandFromDomain(f.Domain)

	return &Suggestions{
		Title:           g.titleSuggestions(f, keyword, brand),
		MetaDescription: g.metaSuggestions(f, keyword, brand),
		H1:              g.h1Suggestions(f, keyword),
		Fixes:           g.contentFixes(f),
		Keywords:        g.keywordPlan(f.TopKeywords),
		Schema:          g.schemaSuggestion(f, brand),
	}
}

// primaryKeyword picks the top extracted keyword, falling back to the first
// substantial title word.
func primaryKeyword(keywords []scraper.Keyword, title string) string {
	if len(keywords) > 0 {
		return keywords[0].Word
	}

	for _, w := range titleWordPattern.FindAllString(strings.ToLower(title), -1) {
		if _, stop := titleFallbackStops[w]; !stop {
			return w
		}
	}
	return "your product"
}

func brandFromDomain(domain string) string {
	brand := strings.TrimPrefix(domain, "www.")
	brand = tldPattern.ReplaceAllString(brand, "")
	brand = strings.NewReplacer("-", " ", "_", " ").Replace(brand)
	if brand == "" {
		return "Your Brand"
	}
	return titleCaser.String(brand)
}

// pick selects a phrase deterministically from a list, keyed by the
// keyword.
func pick(list []string, keyword string) string {
	return list[len(keyword)%len(list)]
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func (g *Suggester) titleSuggestions(f *scraper.FeatureSet, keyword, brand string) TitleSuggestion {
	issues := []string{}
	if f.TitleLength < 30 {
		issues = append(issues, "too_short")
	} else if f.TitleLength > 60 {
		issues = append(issues, "too_long")
	}
	if !strings.Contains(strings.ToLower(f.Title), strings.ToLower(keyword)) {
		issues = append(issues, "missing_keyword")
	}

	kw := titleCaser.String(keyword)

	first := fmt.Sprintf("%s - Expert Solutions & Results | %s", kw, brand)
	if len(first) > maxTitleLength {
		first = fmt.Sprintf("%s - Best Solutions | %s", kw, brand)
	}
	second := fmt.Sprintf("%s with %s | %s", titleCaser.String(pick(benefits, keyword)), kw, brand)
	third := fmt.Sprintf("Get %s That Works - %s", kw, brand)

	variants := []Variant{
		{
			Content:     truncate(first, maxTitleLength),
			Reason:      "Keyword-first approach for better SEO visibility",
			Improvement: "+15-20% click potential",
		},
		{
			Content:     truncate(second, maxTitleLength),
			Reason:      "Benefit-first approach appeals to user intent",
			Improvement: "+10-15% engagement",
		},
		{
			Content:     truncate(third, maxTitleLength),
			Reason:      "Action-oriented title drives clicks",
			Improvement: "+12% CTR potential",
		},
	}
	for i := range variants {
		variants[i].Length = len(variants[i].Content)
	}

	return TitleSuggestion{
		Current:       f.Title,
		CurrentLength: f.TitleLength,
		OptimalLength: optimalTitleRange,
		Issues:        issues,
		Suggestions:   variants,
	}
}

func (g *Suggester) metaSuggestions(f *scraper.FeatureSet, keyword, brand string) MetaSuggestion {
	cta := pick(ctas, keyword)

	variants := []Variant{
		{
			Content:     truncate(fmt.Sprintf("Discover the best %s solutions that deliver real results. Trusted by thousands of customers. %s", keyword, cta), maxMetaLength),
			Reason:      "Combines social proof with clear call-to-action",
			Improvement: "+20% CTR",
		},
		{
			Content:     truncate(fmt.Sprintf("Looking for %s? %s offers proven solutions for better results. Get started today and see the difference. %s", keyword, brand, cta), maxMetaLength),
			Reason:      "Addresses user intent directly",
			Improvement: "+18% engagement",
		},
		{
			Content:     truncate(fmt.Sprintf("%s's %s helps you achieve your goals faster. Easy to use, powerful results. Join thousands of happy users. %s", brand, keyword, cta), maxMetaLength),
			Reason:      "Highlights benefits and social proof",
			Improvement: "+15% CTR",
		},
	}
	for i := range variants {
		variants[i].Length = len(variants[i].Content)
	}

	return MetaSuggestion{
		Current:       f.MetaDescription,
		CurrentLength: f.MetaDescriptionLength,
		OptimalLength: optimalMetaRange,
		Suggestions:   variants,
	}
}

func (g *Suggester) h1Suggestions(f *scraper.FeatureSet, keyword string) H1Suggestion {
	kw := titleCaser.String(keyword)

	s := H1Suggestion{
		Count: f.H1Count,
		Suggestions: []string{
			fmt.Sprintf("The Complete Guide to %s", kw),
			fmt.Sprintf("Discover %s That Delivers Results", kw),
			fmt.Sprintf("%s: Everything You Need to Know", kw),
		},
	}

	if f.H1Count > 0 {
		s.Current = f.H1Tags[0]
	}
	switch {
	case f.H1Count == 0:
		s.Issue = "missing"
	case f.H1Count > 1:
		s.Issue = "multiple"
	}
	return s
}

func (g *Suggester) contentFixes(f *scraper.FeatureSet) []Fix {
	fixes := []Fix{}

	if f.WordCount < 500 {
		fixes = append(fixes, Fix{
			Type:       "content_length",
			Priority:   "high",
			Suggestion: "Add more content to reach at least 500-1000 words",
			SectionsToAdd: []string{
				"Introduction with keyword context",
				"Benefits and features section",
				"How it works / Step-by-step guide",
				"FAQ section with common questions",
				"Conclusion with clear CTA",
			},
		})
	}

	if f.ImagesWithoutAlt > 0 {
		keyword := "product"
		if len(f.TopKeywords) > 0 {
			keyword = f.TopKeywords[0].Word
		}
		fixes = append(fixes, Fix{
			Type:       "image_optimization",
			Priority:   "medium",
			Suggestion: fmt.Sprintf("Add alt text to %d images", f.ImagesWithoutAlt),
			Example:    fmt.Sprintf("alt=%q", keyword+" - descriptive image caption"),
		})
	}

	return fixes
}

func (g *Suggester) keywordPlan(keywords []scraper.Keyword) KeywordPlan {
	if len(keywords) == 0 {
		return KeywordPlan{
			Secondary:      []string{},
			LongTail:       []string{},
			Recommendation: "Add more keyword-rich content",
		}
	}

	primary := keywords[0]

	secondary := make([]string, 0, 4)
	for _, kw := range keywords[1:] {
		if len(secondary) == 4 {
			break
		}
		secondary = append(secondary, kw.Word)
	}

	return KeywordPlan{
		Primary:      primary.Word,
		PrimaryCount: primary.Count,
		Secondary:    secondary,
		LongTail: []string{
			"best " + primary.Word,
			"how to " + primary.Word,
			primary.Word + " guide",
			primary.Word + " tips",
			primary.Word + " for beginners",
		},
		Recommendation: fmt.Sprintf("Primary keyword %q appears %d times. Consider natural distribution.", primary.Word, primary.Count),
	}
}

func (g *Suggester) schemaSuggestion(f *scraper.FeatureSet, brand string) SchemaSuggestion {
	pageType := "WebPage"
	if f.VideoCount > 0 {
		pageType = "VideoObject"
	}

	name := f.Title
	if name == "" {
		name = brand
	}

	schema := map[string]any{
		"@context":    "https://schema.org",
		"@type":       pageType,
		"name":        name,
		"description": f.MetaDescription,
		"url":         f.URL,
		"publisher": map[string]any{
			"@type": "Organization",
			"name":  brand,
		},
	}

	encoded, _ := json.MarshalIndent(schema, "", "  ")

	return SchemaSuggestion{
		Type:           pageType,
		Schema:         schema,
		Implementation: fmt.Sprintf("<script type=\"application/ld+json\">\n%s\n</script>", encoded),
	}
}
