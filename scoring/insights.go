package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pagegrader/backend/scraper"
)

// Insights narrates the evaluation: one mandatory overall assessment plus
// optional content, technical, keyword and importance statements.
func (e *Engine) Insights(f *scraper.FeatureSet, scores Scores, overall int) []Insight {
	insights := []Insight{overallInsight(overall)}

	if f.WordCount >= 1200 && scores.Content >= 70 {
		insights = append(insights, Insight{
			Type:    "positive",
			Message: fmt.Sprintf("Strong content depth (%d words) correlates with better rankings", f.WordCount),
		})
	} else if f.WordCount < 500 {
		insights = append(insights, Insight{
			Type:    "warning",
			Message: fmt.Sprintf("Thin content (%d words) limits ranking potential", f.WordCount),
		})
	}

	if f.HasHTTPS && f.IsMobileFriendly {
		insights = append(insights, Insight{
			Type:    "positive",
			Message: "Core fundamentals satisfied: HTTPS and mobile viewport are both in place",
		})
	}

	if len(f.TopKeywords) > 0 {
		words := make([]string, 0, 5)
		for i, kw := range f.TopKeywords {
			if i >= 5 {
				break
			}
			words = append(words, kw.Word)
		}
		insights = append(insights, Insight{
			Type:    "info",
			Message: "Detected focus topics: " + strings.Join(words, ", "),
		})
	}

	if factor := topImportanceFactor(e.cfg.Importance); factor != "" {
		insights = append(insights, Insight{
			Type:    "info",
			Message: fmt.Sprintf("%s is the most impactful factor for this page", humanizeFactor(factor)),
		})
	}

	return insights
}

func overallInsight(overall int) Insight {
	switch {
	case overall >= 80:
		return Insight{
			Type:       "positive",
			Message:    fmt.Sprintf("Excellent SEO health (%d/100) - page is well-optimized", overall),
			Confidence: 0.9,
		}
	case overall >= 60:
		return Insight{
			Type:       "neutral",
			Message:    fmt.Sprintf("Good SEO (%d/100) with clear improvement opportunities", overall),
			Confidence: 0.85,
		}
	default:
		return Insight{
			Type:       "warning",
			Message:    fmt.Sprintf("SEO needs attention (%d/100) - significant optimization required", overall),
			Confidence: 0.88,
		}
	}
}

// topImportanceFactor picks the largest importance entry, breaking ties by
// name so the result is deterministic. Returns "" when no importance data
// is configured.
func topImportanceFactor(importance map[string]float64) string {
	if len(importance) == 0 {
		return ""
	}

	names := make([]string, 0, len(importance))
	for name := range importance {
		names = append(names, name)
	}
	sort.Strings(names)

	top := names[0]
	for _, name := range names[1:] {
		if importance[name] > importance[top] {
			top = name
		}
	}
	return top
}

func humanizeFactor(name string) string {
	parts := strings.Split(name, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}
