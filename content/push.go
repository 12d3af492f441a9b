package content

import (
	"fmt"
)

// PushRequest describes a request to push generated SEO content to a
// connected platform.
type PushRequest struct {
	Platform string            `json:"platform"`
	Account  map[string]string `json:"account"`
	Content  map[string]string `json:"content"`
	Target   map[string]string `json:"target"`
}

// PushResult is the prepared platform payload. Pushing is format-only: the
// payload is returned to the caller instead of being sent anywhere.
type PushResult struct {
	Status      string         `json:"status"`
	APIEndpoint string         `json:"api_endpoint"`
	Method      string         `json:"method"`
	Payload     map[string]any `json:"payload,omitempty"`
	SEOMetaTags string         `json:"seo_meta_tags,omitempty"`
	Note        string         `json:"note"`
}

// Pusher builds platform push payloads from generated content.
type Pusher struct{}

// NewPusher creates a Pusher.
func NewPusher() *Pusher { return &Pusher{} }

// Prepare builds the push payload for the requested platform.
func (p *Pusher) Prepare(req *PushRequest) (*PushResult, error) {
	switch req.Platform {
	case "wordpress":
		return p.prepareWordPress(req), nil
	case "shopify":
		return p.prepareShopify(req), nil
	case "github":
		return p.prepareGitHub(req), nil
	default:
		return nil, fmt.Errorf("unknown platform: %s", req.Platform)
	}
}

func (p *Pusher) prepareWordPress(req *PushRequest) *PushResult {
	title := req.Content["title"]
	meta := req.Content["meta_description"]

	return &PushResult{
		Status:      "prepared",
		APIEndpoint: fmt.Sprintf("%s/wp-json/wp/v2/posts/%s", req.Account["site_url"], req.Target["post_id"]),
		Method:      "PUT",
		Payload: map[string]any{
			"title":   title,
			"excerpt": meta,
			"meta": map[string]string{
				"_yoast_wpseo_title":    title,
				"_yoast_wpseo_metadesc": meta,
			},
		},
		Note: "Demo mode - actual push requires valid WordPress credentials",
	}
}

func (p *Pusher) prepareShopify(req *PushRequest) *PushResult {
	resourceType := req.Target["type"]
	if resourceType == "" {
		resourceType = "page"
	}

	return &PushResult{
		Status:      "prepared",
		APIEndpoint: fmt.Sprintf("%s/admin/api/2024-01/%ss/%s.json", req.Account["store_url"], resourceType, req.Target["id"]),
		Method:      "PUT",
		Payload: map[string]any{
			resourceType: map[string]any{
				"metafields": []map[string]string{
					{
						"namespace": "global",
						"key":       "title_tag",
						"value":     req.Content["title"],
						"type":      "single_line_text_field",
					},
					{
						"namespace": "global",
						"key":       "description_tag",
						"value":     req.Content["meta_description"],
						"type":      "multi_line_text_field",
					},
				},
			},
		},
		Note: "Demo mode - actual push requires valid Shopify credentials",
	}
}

func (p *Pusher) prepareGitHub(req *PushRequest) *PushResult {
	filePath := req.Target["file_path"]
	if filePath == "" {
		filePath = "index.html"
	}

	title := req.Content["title"]
	meta := req.Content["meta_description"]

	metaTags := fmt.Sprintf(`<title>%s</title>
<meta name="description" content=%q>
<meta property="og:title" content=%q>
<meta property="og:description" content=%q>
`, title, meta, title, meta)

	return &PushResult{
		Status:      "prepared",
		APIEndpoint: fmt.Sprintf("https://api.github.com/repos/%s/contents/%s", req.Account["repo"], filePath),
		Method:      "PUT",
		SEOMetaTags: metaTags,
		Note:        "Demo mode - actual push requires valid GitHub token",
	}
}
