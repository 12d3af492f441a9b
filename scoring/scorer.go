package scoring

import (
	"math"

	"github.com/pagegrader/backend/scraper"
)

// Engine scores extracted feature sets. It holds only immutable
// configuration, so a single instance is safe for concurrent use.
type Engine struct {
	cfg *Config
}

// NewEngine creates an Engine with the given configuration, or the default
// configuration when cfg is nil.
func NewEngine(cfg *Config) *Engine {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Engine{cfg: cfg}
}

// Config exposes the engine's immutable configuration.
func (e *Engine) Config() *Config { return e.cfg }

// Evaluate runs the full deterministic scoring pass: category scores,
// overall score and grade, issues, ranked suggestions and insights.
func (e *Engine) Evaluate(f *scraper.FeatureSet) *Evaluation {
	scores := e.ScoreCategories(f)
	overall := e.Overall(scores)

	return &Evaluation{
		Scores:       scores,
		OverallScore: overall,
		Grade:        GradeFor(overall),
		Issues:       e.DetectIssues(f, scores),
		Suggestions:  e.RankSuggestions(scores),
		Insights:     e.Insights(f, scores, overall),
	}
}

// ScoreCategories computes the six category sub-scores from the feature
// set. Every score is clamped to [0,100] before rounding.
func (e *Engine) ScoreCategories(f *scraper.FeatureSet) Scores {
	return Scores{
		Title:       clampRound(titleScore(f)),
		Meta:        clampRound(metaScore(f)),
		Content:     clampRound(contentScore(f)),
		Technical:   clampRound(technicalScore(f)),
		Performance: clampRound(performanceScore(f)),
		Social:      clampRound(socialScore(f)),
	}
}

// Overall combines the category scores with the configured weights and
// rounds to the nearest integer.
func (e *Engine) Overall(s Scores) int {
	w := e.cfg.Weights
	sum := float64(s.Title)*w.Title +
		float64(s.Meta)*w.Meta +
		float64(s.Content)*w.Content +
		float64(s.Technical)*w.Technical +
		float64(s.Performance)*w.Performance +
		float64(s.Social)*w.Social
	return clampRound(sum)
}

func titleScore(f *scraper.FeatureSet) float64 {
	if !f.HasTitle {
		return 0
	}

	score := 30.0
	length := f.TitleLength
	switch {
	case length >= 50 && length <= 60:
		score += 50
	case length >= 40 && length <= 70:
		score += 30
	case length >= 30 && length <= 80:
		score += 15
	}
	if length >= 30 {
		score += 10
	}
	return score
}

func metaScore(f *scraper.FeatureSet) float64 {
	score := 0.0
	if f.HasMetaDescription {
		score += 30
		length := f.MetaDescriptionLength
		switch {
		case length >= 150 && length <= 160:
			score += 40
		case length >= 120 && length <= 180:
			score += 25
		case length >= 100 && length <= 200:
			score += 15
		}
	}
	if f.HasCanonical {
		score += 20
	}
	return score
}

func contentScore(f *scraper.FeatureSet) float64 {
	score := 0.0
	switch {
	case f.WordCount >= 1500:
		score += 25
	case f.WordCount >= 1000:
		score += 20
	case f.WordCount >= 500:
		score += 15
	case f.WordCount >= 300:
		score += 10
	}

	if f.HasProperH1 {
		score += 20
	}
	if f.H2Count >= 2 {
		score += 10
	}

	// ImageAltRatio is a percentage; the formula wants [0,1].
	score += f.ImageAltRatio / 100 * 20
	score += math.Min(f.VocabularyRichness/50*15, 15)
	return score
}

func technicalScore(f *scraper.FeatureSet) float64 {
	score := 0.0
	if f.HasHTTPS {
		score += 25
	}
	if f.IsMobileFriendly {
		score += 25
	}
	if f.HasSchema {
		score += 20
	}
	if f.HasCanonical {
		score += 15
	}
	if f.HasLang {
		score += 10
	}
	return score
}

func performanceScore(f *scraper.FeatureSet) float64 {
	score := 100.0
	switch {
	case f.LoadTime > 5:
		score -= 40
	case f.LoadTime > 3:
		score -= 25
	case f.LoadTime > 2:
		score -= 10
	}

	switch {
	case f.ResponseSizeKB > 3000:
		score -= 20
	case f.ResponseSizeKB > 1500:
		score -= 10
	}
	return score
}

func socialScore(f *scraper.FeatureSet) float64 {
	flags := 0
	for _, present := range []bool{f.HasOGTitle, f.HasOGDescription, f.HasOGImage, f.HasTwitterCard} {
		if present {
			flags++
		}
	}
	return float64(flags) / 4 * 100
}

// GradeFor maps an overall score onto its letter grade band.
func GradeFor(score int) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 85:
		return "A"
	case score >= 80:
		return "A-"
	case score >= 75:
		return "B+"
	case score >= 70:
		return "B"
	case score >= 65:
		return "B-"
	case score >= 60:
		return "C+"
	case score >= 55:
		return "C"
	case score >= 50:
		return "C-"
	case score >= 40:
		return "D"
	default:
		return "F"
	}
}

func clampRound(v float64) int {
	if v < 0 {
		v = 0
	}
	if v > 100 {
		v = 100
	}
	return int(math.Round(v))
}
