package scoring

import (
	"fmt"
	"math"
	"sort"
)

const (
	maxSuggestions    = 4
	suggestionGapGate = 20
)

// improvementMultipliers convert a category's score gap into its predicted
// point gain.
var improvementMultipliers = map[Category]float64{
	CategoryTitle:       0.6,
	CategoryMeta:        0.7,
	CategoryContent:     0.5,
	CategoryTechnical:   0.8,
	CategoryPerformance: 0.5,
	CategorySocial:      0.7,
}

var suggestionTemplates = map[Category]string{
	CategoryTitle:       "Optimize title to 50-60 chars with the primary keyword (potential +%d points)",
	CategoryMeta:        "Add a compelling meta description (150-160 chars) (potential +%d points)",
	CategoryContent:     "Improve content depth - aim for 1000+ words with proper heading structure (potential +%d points)",
	CategoryTechnical:   "Fix technical fundamentals (HTTPS, mobile viewport, structured data) (potential +%d points)",
	CategoryPerformance: "Optimize page speed - target under 2 seconds load time (potential +%d points)",
	CategorySocial:      "Add Open Graph and Twitter Card meta tags (potential +%d points)",
}

// RankSuggestions orders categories by improvement potential (100 - score)
// and emits a suggestion for each of the top 4 gaps larger than 20 points.
// The sort is stable; ties keep the fixed category order.
func (e *Engine) RankSuggestions(scores Scores) []Suggestion {
	type gapEntry struct {
		category Category
		gap      int
	}

	gaps := make([]gapEntry, 0, len(Categories))
	for _, cat := range Categories {
		gaps = append(gaps, gapEntry{category: cat, gap: 100 - scores.Get(cat)})
	}
	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].gap > gaps[j].gap
	})

	suggestions := []Suggestion{}
	for _, entry := range gaps[:maxSuggestions] {
		if entry.gap <= suggestionGapGate {
			continue
		}

		priority := "medium"
		switch {
		case entry.gap > 50:
			priority = "critical"
		case entry.gap > 35:
			priority = "high"
		}

		gain := math.Round(float64(entry.gap) * improvementMultipliers[entry.category])
		suggestions = append(suggestions, Suggestion{
			Category:             string(entry.category),
			Suggestion:           fmt.Sprintf(suggestionTemplates[entry.category], int(gain)),
			Priority:             priority,
			PredictedImprovement: gain,
		})
	}

	return suggestions
}
