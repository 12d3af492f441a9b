package scoring

// Category names one of the six scored SEO dimensions.
type Category string

const (
	CategoryTitle       Category = "title"
	CategoryMeta        Category = "meta"
	CategoryContent     Category = "content"
	CategoryTechnical   Category = "technical"
	CategoryPerformance Category = "performance"
	CategorySocial      Category = "social"
)

// Categories is the fixed evaluation order. Issue emission and suggestion
// tie-breaking both depend on it.
var Categories = []Category{
	CategoryTitle,
	CategoryMeta,
	CategoryContent,
	CategoryTechnical,
	CategoryPerformance,
	CategorySocial,
}

// Scores holds the six category sub-scores, each clamped to [0,100].
type Scores struct {
	Title       int `json:"title"`
	Meta        int `json:"meta"`
	Content     int `json:"content"`
	Technical   int `json:"technical"`
	Performance int `json:"performance"`
	Social      int `json:"social"`
}

// Get returns the sub-score for a category.
func (s Scores) Get(c Category) int {
	switch c {
	case CategoryTitle:
		return s.Title
	case CategoryMeta:
		return s.Meta
	case CategoryContent:
		return s.Content
	case CategoryTechnical:
		return s.Technical
	case CategoryPerformance:
		return s.Performance
	case CategorySocial:
		return s.Social
	}
	return 0
}

// Issue flags a specific deficiency detected on the page.
type Issue struct {
	Type       string  `json:"type"` // critical, warning, info
	Category   string  `json:"category"`
	Message    string  `json:"message"`
	Impact     string  `json:"impact"` // low, medium, high
	Confidence float64 `json:"confidence"`
}

// Suggestion is an actionable improvement derived from a category's score
// gap.
type Suggestion struct {
	Category             string  `json:"category"`
	Suggestion           string  `json:"suggestion"`
	Priority             string  `json:"priority"` // critical, high, medium
	PredictedImprovement float64 `json:"predicted_improvement"`
}

// Insight is a free-text summary statement about the page.
type Insight struct {
	Type       string  `json:"type"` // positive, neutral, warning, info
	Message    string  `json:"message"`
	Confidence float64 `json:"confidence,omitempty"`
}

// Evaluation is the complete output of the scoring engine for one page.
type Evaluation struct {
	Scores       Scores       `json:"scores"`
	OverallScore int          `json:"overall_score"`
	Grade        string       `json:"grade"`
	Issues       []Issue      `json:"issues"`
	Suggestions  []Suggestion `json:"suggestions"`
	Insights     []Insight    `json:"insights"`
}
