package content

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DefaultPlatform is used when a request names no or an unknown platform.
const DefaultPlatform = "wordpress"

// Platforms lists the supported output targets in a fixed order.
var Platforms = []string{"wordpress", "shopify", "github", "html", "markdown"}

// Writer formats generated suggestions into platform-specific payloads.
type Writer struct{}

// NewWriter creates a Writer.
func NewWriter() *Writer { return &Writer{} }

// Supported reports whether the platform has a formatter.
func (w *Writer) Supported(platform string) bool {
	for _, p := range Platforms {
		if p == platform {
			return true
		}
	}
	return false
}

// Format renders the suggestions for one platform. Unknown platforms fall
// back to the default.
func (w *Writer) Format(s *Suggestions, platform string) map[string]any {
	switch platform {
	case "shopify":
		return w.formatShopify(s)
	case "github":
		return w.formatGitHub(s)
	case "html":
		return w.formatHTML(s)
	case "markdown":
		return w.formatMarkdown(s)
	default:
		return w.formatWordPress(s)
	}
}

// FormatAll renders the suggestions for every supported platform.
func (w *Writer) FormatAll(s *Suggestions) map[string]map[string]any {
	out := make(map[string]map[string]any, len(Platforms))
	for _, platform := range Platforms {
		out[platform] = w.Format(s, platform)
	}
	return out
}

func bestTitle(s *Suggestions) string {
	if len(s.Title.Suggestions) > 0 {
		return s.Title.Suggestions[0].Content
	}
	return s.Title.Current
}

func bestMeta(s *Suggestions) string {
	if len(s.MetaDescription.Suggestions) > 0 {
		return s.MetaDescription.Suggestions[0].Content
	}
	return s.MetaDescription.Current
}

func bestH1(s *Suggestions) string {
	if len(s.H1.Suggestions) > 0 {
		return s.H1.Suggestions[0]
	}
	return bestTitle(s)
}

func primaryTopic(s *Suggestions) string {
	if s.Keywords.Primary != "" {
		return s.Keywords.Primary
	}
	return "your topic"
}

func (w *Writer) formatWordPress(s *Suggestions) map[string]any {
	title, meta := bestTitle(s), bestMeta(s)
	return map[string]any{
		"title":   title,
		"excerpt": meta,
		"meta": map[string]string{
			"yoast_wpseo_title":    title,
			"yoast_wpseo_metadesc": meta,
		},
		"content": blogHTML(s),
	}
}

func (w *Writer) formatShopify(s *Suggestions) map[string]any {
	return map[string]any{
		"metafields": []map[string]string{
			{
				"namespace": "seo",
				"key":       "title",
				"value":     bestTitle(s),
				"type":      "single_line_text_field",
			},
			{
				"namespace": "seo",
				"key":       "description",
				"value":     bestMeta(s),
				"type":      "multi_line_text_field",
			},
		},
	}
}

func (w *Writer) formatGitHub(s *Suggestions) map[string]any {
	frontMatter := fmt.Sprintf("---\ntitle: %q\ndescription: %q\n---\n", bestTitle(s), bestMeta(s))
	return map[string]any{
		"front_matter": frontMatter,
		"content":      blogMarkdown(s),
	}
}

func (w *Writer) formatHTML(s *Suggestions) map[string]any {
	title, meta := bestTitle(s), bestMeta(s)

	schema, _ := json.MarshalIndent(s.Schema.Schema, "    ", "  ")

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("    <meta charset=\"UTF-8\">\n")
	b.WriteString("    <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	fmt.Fprintf(&b, "    <title>%s</title>\n", title)
	fmt.Fprintf(&b, "    <meta name=\"description\" content=%q>\n", meta)
	fmt.Fprintf(&b, "    <meta property=\"og:title\" content=%q>\n", title)
	fmt.Fprintf(&b, "    <meta property=\"og:description\" content=%q>\n", meta)
	b.WriteString("    <meta name=\"twitter:card\" content=\"summary_large_image\">\n")
	fmt.Fprintf(&b, "    <meta name=\"twitter:title\" content=%q>\n", title)
	fmt.Fprintf(&b, "    <meta name=\"twitter:description\" content=%q>\n", meta)
	fmt.Fprintf(&b, "    <script type=\"application/ld+json\">\n    %s\n    </script>\n", schema)
	b.WriteString("</head>\n<body>\n")
	fmt.Fprintf(&b, "    <h1>%s</h1>\n", bestH1(s))
	b.WriteString(blogHTML(s))
	b.WriteString("</body>\n</html>")

	return map[string]any{
		"html":             b.String(),
		"title":            title,
		"meta_description": meta,
	}
}

func (w *Writer) formatMarkdown(s *Suggestions) map[string]any {
	title, meta := bestTitle(s), bestMeta(s)
	markdown := fmt.Sprintf("# %s\n\n%s\n\n%s", bestH1(s), meta, blogMarkdown(s))
	return map[string]any{
		"markdown":         markdown,
		"title":            title,
		"meta_description": meta,
	}
}

func blogHTML(s *Suggestions) string {
	topic := primaryTopic(s)
	heading := titleCaser.String(topic)

	return fmt.Sprintf(`<div class="seo-optimized-content">
    <p>Welcome to our comprehensive guide on %[1]s. This article will help you understand everything you need to know.</p>

    <h2>What is %[2]s?</h2>
    <p>Learn the fundamentals and key concepts that make %[1]s essential for your success.</p>

    <h2>Benefits of %[2]s</h2>
    <ul>
        <li>Improved performance and results</li>
        <li>Better user experience</li>
        <li>Increased efficiency</li>
        <li>Cost-effective solutions</li>
    </ul>

    <h2>How to Get Started</h2>
    <p>Follow these simple steps to begin your journey with %[1]s:</p>
    <ol>
        <li>Understand your goals and requirements</li>
        <li>Research and plan your approach</li>
        <li>Implement best practices</li>
        <li>Monitor and optimize continuously</li>
    </ol>

    <h2>Conclusion</h2>
    <p>Start your %[1]s journey today and experience the benefits firsthand. Get in touch with us to learn more!</p>
</div>`, topic, heading)
}

func blogMarkdown(s *Suggestions) string {
	topic := primaryTopic(s)
	heading := titleCaser.String(topic)

	return fmt.Sprintf(`Welcome to our comprehensive guide on %[1]s. This article will help you understand everything you need to know.

## What is %[2]s?

Learn the fundamentals and key concepts that make %[1]s essential for your success.

## Benefits of %[2]s

- Improved performance and results
- Better user experience
- Increased efficiency
- Cost-effective solutions

## How to Get Started

Follow these simple steps to begin your journey with %[1]s:

1. Understand your goals and requirements
2. Research and plan your approach
3. Implement best practices
4. Monitor and optimize continuously

## Conclusion

Start your %[1]s journey today and experience the benefits firsthand. Get in touch with us to learn more!
`, topic, heading)
}
