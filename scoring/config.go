package scoring

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Weights are the convex combination coefficients for the overall score.
// They must sum to 1.0. Loaded once at startup and never mutated.
type Weights struct {
	Title       float64 `yaml:"title" json:"title"`
	Meta        float64 `yaml:"meta" json:"meta"`
	Content     float64 `yaml:"content" json:"content"`
	Technical   float64 `yaml:"technical" json:"technical"`
	Performance float64 `yaml:"performance" json:"performance"`
	Social      float64 `yaml:"social" json:"social"`
}

// Get returns the weight for a category.
func (w Weights) Get(c Category) float64 {
	switch c {
	case CategoryTitle:
		return w.Title
	case CategoryMeta:
		return w.Meta
	case CategoryContent:
		return w.Content
	case CategoryTechnical:
		return w.Technical
	case CategoryPerformance:
		return w.Performance
	case CategorySocial:
		return w.Social
	}
	return 0
}

func (w Weights) sum() float64 {
	return w.Title + w.Meta + w.Content + w.Technical + w.Performance + w.Social
}

// Config is the immutable scoring configuration: overall weights plus the
// category importance percentages used by the insight narrator.
type Config struct {
	Weights    Weights            `yaml:"weights" json:"weights"`
	Importance map[string]float64 `yaml:"importance" json:"importance"`
}

// DefaultConfig returns the built-in weighting.
func DefaultConfig() *Config {
	return &Config{
		Weights: Weights{
			Title:       0.15,
			Meta:        0.15,
			Content:     0.25,
			Technical:   0.20,
			Performance: 0.15,
			Social:      0.10,
		},
		Importance: map[string]float64{
			"title_optimization": 15,
			"meta_description":   15,
			"content_quality":    25,
			"technical_seo":      20,
			"performance":        15,
			"social_sharing":     10,
		},
	}
}

// LoadConfig reads a YAML weights file, falling back to the defaults when
// path is empty. Weights that do not sum to 1.0 are rejected.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scoring config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse scoring config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid scoring config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if math.Abs(c.Weights.sum()-1.0) > 0.001 {
		return fmt.Errorf("category weights sum to %.3f, want 1.0", c.Weights.sum())
	}
	for _, cat := range Categories {
		if c.Weights.Get(cat) < 0 {
			return fmt.Errorf("negative weight for category %q", cat)
		}
	}
	return nil
}
