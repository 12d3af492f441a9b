package analyzer

import (
	"github.com/pagegrader/backend/content"
	"github.com/pagegrader/backend/scoring"
	"github.com/pagegrader/backend/scraper"
)

// Report is the full result of analyzing one page.
type Report struct {
	URL                string               `json:"url"`
	StatusCode         int                  `json:"status_code"`
	LoadTime           float64              `json:"load_time"`
	Features           *scraper.FeatureSet  `json:"features"`
	Scores             scoring.Scores       `json:"scores"`
	OverallScore       int                  `json:"overall_score"`
	Grade              string               `json:"grade"`
	Issues             []scoring.Issue      `json:"issues"`
	Suggestions        []scoring.Suggestion `json:"suggestions"`
	Insights           []scoring.Insight    `json:"insights"`
	ContentSuggestions *content.Suggestions `json:"content_suggestions,omitempty"`
	FormattedContent   map[string]any       `json:"formatted_content,omitempty"`
	Cached             bool                 `json:"cached"`
}
