package scraper

// Keyword is a token and its occurrence count in the page body.
type Keyword struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// FeatureSet is the flat set of on-page SEO features extracted from a
// single fetched document. Every field has a defined zero value, so a page
// missing any optional markup still produces a complete set.
type FeatureSet struct {
	URL      string  `json:"url"`
	Domain   string  `json:"domain"`
	LoadTime float64 `json:"load_time"`

	Title           string `json:"title"`
	TitleLength     int    `json:"title_length"`
	HasTitle        bool   `json:"has_title"`
	TitleHasKeyword bool   `json:"title_has_keyword"`

	MetaDescription       string `json:"meta_description"`
	MetaDescriptionLength int    `json:"meta_description_length"`
	HasMetaDescription    bool   `json:"has_meta_description"`
	MetaKeywords          string `json:"meta_keywords"`
	HasMetaKeywords       bool   `json:"has_meta_keywords"`

	CanonicalURL string `json:"canonical_url"`
	HasCanonical bool   `json:"has_canonical"`
	URLLength    int    `json:"url_length"`
	HasHTTPS     bool   `json:"url_has_https"`

	HasOGTitle       bool    `json:"has_og_title"`
	HasOGDescription bool    `json:"has_og_description"`
	HasOGImage       bool    `json:"has_og_image"`
	OGScore          float64 `json:"og_score"`
	HasTwitterCard   bool    `json:"has_twitter_card"`

	H1Count     int      `json:"h1_count"`
	H1Tags      []string `json:"h1_tags"`
	H2Count     int      `json:"h2_count"`
	H2Tags      []string `json:"h2_tags"`
	H3Count     int      `json:"h3_count"`
	HasProperH1 bool     `json:"has_proper_h1"`

	TotalImages      int     `json:"total_images"`
	ImagesWithAlt    int     `json:"images_with_alt"`
	ImagesWithoutAlt int     `json:"images_without_alt"`
	ImageAltRatio    float64 `json:"image_alt_ratio"`

	TotalLinks    int     `json:"total_links"`
	InternalLinks int     `json:"internal_links"`
	ExternalLinks int     `json:"external_links"`
	NofollowLinks int     `json:"nofollow_links"`
	LinkRatio     float64 `json:"link_ratio"`

	WordCount          int       `json:"word_count"`
	UniqueWords        int       `json:"unique_words"`
	VocabularyRichness float64   `json:"vocabulary_richness"`
	SentenceCount      int       `json:"sentence_count"`
	AvgSentenceLength  float64   `json:"avg_sentence_length"`
	ParagraphCount     int       `json:"paragraph_count"`
	TopKeywords        []Keyword `json:"top_keywords"`

	IsMobileFriendly bool   `json:"is_mobile_friendly"`
	HasViewport      bool   `json:"has_viewport"`
	HasSchema        bool   `json:"has_schema"`
	RobotsContent    string `json:"robots_content"`
	HasLang          bool   `json:"has_lang"`
	Lang             string `json:"lang"`
	HasFavicon       bool   `json:"has_favicon"`

	VideoCount int `json:"video_count"`
	FormCount  int `json:"form_count"`

	ResponseSize   int     `json:"response_size"`
	ResponseSizeKB float64 `json:"response_size_kb"`
	LoadTimeScore  float64 `json:"load_time_score"`
}
