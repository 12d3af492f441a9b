package scoring

import (
	"fmt"

	"github.com/pagegrader/backend/scraper"
)

// Score thresholds below which each category's checks may fire. A passing
// category emits nothing even when the underlying condition holds.
const (
	titleIssueThreshold       = 50
	metaIssueThreshold        = 50
	contentIssueThreshold     = 60
	technicalIssueThreshold   = 70
	performanceIssueThreshold = 60
	socialIssueThreshold      = 40
)

// DetectIssues flags deficiencies whose category score fell below its
// threshold. Output order follows the fixed category order.
func (e *Engine) DetectIssues(f *scraper.FeatureSet, scores Scores) []Issue {
	issues := []Issue{}

	if scores.Title < titleIssueThreshold {
		if !f.HasTitle {
			issues = append(issues, Issue{
				Type:       "critical",
				Category:   "title",
				Message:    "Missing page title - a critical SEO gap",
				Impact:     "high",
				Confidence: 0.95,
			})
		} else if f.TitleLength < 30 {
			issues = append(issues, Issue{
				Type:       "warning",
				Category:   "title",
				Message:    fmt.Sprintf("Title too short (%d chars) - aim for 50-60 chars", f.TitleLength),
				Impact:     "medium",
				Confidence: 0.85,
			})
		}
	}

	if scores.Meta < metaIssueThreshold && !f.HasMetaDescription {
		issues = append(issues, Issue{
			Type:       "critical",
			Category:   "meta",
			Message:    "Missing meta description - strongly impacts click-through rate",
			Impact:     "high",
			Confidence: 0.92,
		})
	}

	if scores.Content < contentIssueThreshold {
		if f.WordCount < 300 {
			issues = append(issues, Issue{
				Type:       "warning",
				Category:   "content",
				Message:    fmt.Sprintf("Thin content detected (%d words) - aim for 500+ words", f.WordCount),
				Impact:     "medium",
				Confidence: 0.88,
			})
		}
		if !f.HasProperH1 {
			issueType, impact := "warning", "medium"
			if f.H1Count == 0 {
				issueType, impact = "critical", "high"
			}
			issues = append(issues, Issue{
				Type:       issueType,
				Category:   "content",
				Message:    "Heading structure problem - page should have exactly one H1",
				Impact:     impact,
				Confidence: 0.90,
			})
		}
	}

	if scores.Technical < technicalIssueThreshold {
		if !f.HasHTTPS {
			issues = append(issues, Issue{
				Type:       "critical",
				Category:   "technical",
				Message:    "No HTTPS - a critical ranking factor",
				Impact:     "high",
				Confidence: 0.98,
			})
		}
		if !f.IsMobileFriendly {
			issues = append(issues, Issue{
				Type:       "critical",
				Category:   "technical",
				Message:    "Not mobile-friendly - missing responsive viewport configuration",
				Impact:     "high",
				Confidence: 0.94,
			})
		}
	}

	if scores.Performance < performanceIssueThreshold {
		issues = append(issues, Issue{
			Type:       "warning",
			Category:   "performance",
			Message:    fmt.Sprintf("Slow page load (%.2fs) - likely negative ranking impact", f.LoadTime),
			Impact:     "medium",
			Confidence: 0.82,
		})
	}

	if scores.Social < socialIssueThreshold {
		issues = append(issues, Issue{
			Type:       "info",
			Category:   "social",
			Message:    "Missing social meta tags - limits social sharing potential",
			Impact:     "low",
			Confidence: 0.75,
		})
	}

	return issues
}
