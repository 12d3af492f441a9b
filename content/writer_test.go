package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSuggestions(t *testing.T) *Suggestions {
	t.Helper()
	return NewSuggester().Generate(sampleFeatures())
}

func TestWriterSupported(t *testing.T) {
	w := NewWriter()

	for _, platform := range Platforms {
		assert.True(t, w.Supported(platform), platform)
	}
	assert.False(t, w.Supported("wix"))
	assert.False(t, w.Supported(""))
}

func TestFormatWordPress(t *testing.T) {
	w := NewWriter()
	s := sampleSuggestions(t)

	out := w.Format(s, "wordpress")

	assert.Equal(t, s.Title.Suggestions[0].Content, out["title"])
	assert.Equal(t, s.MetaDescription.Suggestions[0].Content, out["excerpt"])

	meta, ok := out["meta"].(map[string]string)
	require.True(t, ok)
	assert.Equal(t, s.Title.Suggestions[0].Content, meta["yoast_wpseo_title"])
	assert.Contains(t, out["content"], "<h2>")
}

func TestFormatShopifyMetafields(t *testing.T) {
	w := NewWriter()
	out := w.Format(sampleSuggestions(t), "shopify")

	metafields, ok := out["metafields"].([]map[string]string)
	require.True(t, ok)
	require.Len(t, metafields, 2)
	assert.Equal(t, "title", metafields[0]["key"])
	assert.Equal(t, "description", metafields[1]["key"])
}

func TestFormatGitHubFrontMatter(t *testing.T) {
	w := NewWriter()
	out := w.Format(sampleSuggestions(t), "github")

	frontMatter, ok := out["front_matter"].(string)
	require.True(t, ok)
	assert.Contains(t, frontMatter, "---\ntitle:")
	assert.Contains(t, out["content"], "## ")
}

func TestFormatHTMLDocument(t *testing.T) {
	w := NewWriter()
	s := sampleSuggestions(t)
	out := w.Format(s, "html")

	html, ok := out["html"].(string)
	require.True(t, ok)
	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, "<title>"+s.Title.Suggestions[0].Content+"</title>")
	assert.Contains(t, html, "application/ld+json")
	assert.Contains(t, html, "og:title")
	assert.Contains(t, html, "<h1>")
}

func TestFormatMarkdown(t *testing.T) {
	w := NewWriter()
	out := w.Format(sampleSuggestions(t), "markdown")

	markdown, ok := out["markdown"].(string)
	require.True(t, ok)
	assert.Contains(t, markdown, "# ")
	assert.NotEmpty(t, out["title"])
}

func TestFormatUnknownPlatformFallsBack(t *testing.T) {
	w := NewWriter()
	s := sampleSuggestions(t)

	assert.Equal(t, w.Format(s, "wordpress"), w.Format(s, "something-else"))
}

func TestFormatAllCoversEveryPlatform(t *testing.T) {
	w := NewWriter()
	out := w.FormatAll(sampleSuggestions(t))

	require.Len(t, out, len(Platforms))
	for _, platform := range Platforms {
		assert.Contains(t, out, platform)
	}
}

func TestBestFieldsFallBackToCurrent(t *testing.T) {
	s := &Suggestions{}
	s.Title.Current = "Existing Title"
	s.MetaDescription.Current = "Existing description"

	assert.Equal(t, "Existing Title", bestTitle(s))
	assert.Equal(t, "Existing description", bestMeta(s))
	assert.Equal(t, "Existing Title", bestH1(s))
	assert.Equal(t, "your topic", primaryTopic(s))
}
