package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareWordPress(t *testing.T) {
	p := NewPusher()

	result, err := p.Prepare(&PushRequest{
		Platform: "wordpress",
		Account:  map[string]string{"site_url": "https://blog.example.com"},
		Content:  map[string]string{"title": "New Title", "meta_description": "New description"},
		Target:   map[string]string{"post_id": "42"},
	})
	require.NoError(t, err)

	assert.Equal(t, "prepared", result.Status)
	assert.Equal(t, "https://blog.example.com/wp-json/wp/v2/posts/42", result.APIEndpoint)
	assert.Equal(t, "PUT", result.Method)
	assert.Equal(t, "New Title", result.Payload["title"])

	meta, ok := result.Payload["meta"].(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "New description", meta["_yoast_wpseo_metadesc"])
	assert.Contains(t, result.Note, "Demo mode")
}

func TestPrepareShopifyDefaultsToPage(t *testing.T) {
	p := NewPusher()

	result, err := p.Prepare(&PushRequest{
		Platform: "shopify",
		Account:  map[string]string{"store_url": "https://shop.example.com"},
		Content:  map[string]string{"title": "Shop Title", "meta_description": "Shop description"},
		Target:   map[string]string{"id": "7"},
	})
	require.NoError(t, err)

	assert.Equal(t, "https://shop.example.com/admin/api/2024-01/pages/7.json", result.APIEndpoint)
	assert.Contains(t, result.Payload, "page")
}

func TestPrepareShopifyExplicitResourceType(t *testing.T) {
	p := NewPusher()

	result, err := p.Prepare(&PushRequest{
		Platform: "shopify",
		Account:  map[string]string{"store_url": "https://shop.example.com"},
		Content:  map[string]string{"title": "Product Title"},
		Target:   map[string]string{"id": "9", "type": "product"},
	})
	require.NoError(t, err)

	assert.Equal(t, "https://shop.example.com/admin/api/2024-01/products/9.json", result.APIEndpoint)
	assert.Contains(t, result.Payload, "product")
}

func TestPrepareGitHub(t *testing.T) {
	p := NewPusher()

	result, err := p.Prepare(&PushRequest{
		Platform: "github",
		Account:  map[string]string{"repo": "octocat/site"},
		Content:  map[string]string{"title": "Repo Title", "meta_description": "Repo description"},
		Target:   map[string]string{},
	})
	require.NoError(t, err)

	assert.Equal(t, "https://api.github.com/repos/octocat/site/contents/index.html", result.APIEndpoint)
	assert.Contains(t, result.SEOMetaTags, "<title>Repo Title</title>")
	assert.Contains(t, result.SEOMetaTags, "og:description")
}

func TestPrepareUnknownPlatform(t *testing.T) {
	p := NewPusher()

	_, err := p.Prepare(&PushRequest{Platform: "myspace"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown platform")
}
