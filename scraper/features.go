package scraper

import (
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	wordPattern     = regexp.MustCompile(`\b[a-zA-Z]+\b`)
	sentencePattern = regexp.MustCompile(`[.!?]+`)
)

// stopWords are common English function words excluded from keyword
// extraction.
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
	"is": {}, "it": {}, "this": {}, "that": {}, "are": {}, "was": {},
	"be": {}, "has": {}, "have": {}, "had": {}, "do": {}, "does": {},
	"did": {}, "will": {}, "would": {}, "could": {}, "should": {},
	"may": {}, "might": {}, "can": {}, "not": {}, "no": {}, "yes": {},
	"all": {}, "any": {}, "some": {}, "as": {}, "from": {}, "they": {},
	"them": {}, "their": {}, "what": {}, "which": {}, "who": {},
	"whom": {}, "when": {}, "where": {}, "why": {}, "how": {},
	"your": {}, "you": {}, "our": {}, "we": {}, "us": {}, "more": {},
	"get": {}, "about": {},
}

// ExtractFeatures turns a parsed document plus fetch metadata into a
// complete FeatureSet. It never fails: absent markup simply leaves the
// corresponding fields at their zero values.
func ExtractFeatures(doc *goquery.Document, pageURL string, loadTime float64, size int) *FeatureSet {
	domain := ""
	if u, err := url.Parse(pageURL); err == nil {
		domain = u.Host
	}

	f := &FeatureSet{
		URL:      pageURL,
		Domain:   domain,
		LoadTime: loadTime,

		URLLength: len(pageURL),
		HasHTTPS:  strings.HasPrefix(pageURL, "https"),

		ResponseSize:   size,
		ResponseSizeKB: float64(size) / 1024.0,
		LoadTimeScore:  loadTimeScore(loadTime),
	}

	extractHead(doc, f)
	extractHeadings(doc, f)
	extractImages(doc, f)
	extractLinks(doc, f, domain)
	extractText(doc, f)
	extractTechnical(doc, f)

	f.TitleHasKeyword = titleHasKeyword(f.Title, f.TopKeywords)

	return f
}

func loadTimeScore(loadTime float64) float64 {
	score := 100 - loadTime*15
	if score < 0 {
		return 0
	}
	return score
}

func extractHead(doc *goquery.Document, f *FeatureSet) {
	f.Title = strings.TrimSpace(doc.Find("title").First().Text())
	f.TitleLength = len(f.Title)
	f.HasTitle = f.TitleLength > 0

	desc, _ := doc.Find("meta[name='description']").Attr("content")
	f.MetaDescription = strings.TrimSpace(desc)
	f.MetaDescriptionLength = len(f.MetaDescription)
	f.HasMetaDescription = f.MetaDescriptionLength > 0

	kw, _ := doc.Find("meta[name='keywords']").Attr("content")
	f.MetaKeywords = strings.TrimSpace(kw)
	f.HasMetaKeywords = len(f.MetaKeywords) > 0

	canonical, _ := doc.Find("link[rel='canonical']").Attr("href")
	f.CanonicalURL = canonical
	f.HasCanonical = len(canonical) > 0

	f.HasOGTitle = doc.Find("meta[property='og:title']").Length() > 0
	f.HasOGDescription = doc.Find("meta[property='og:description']").Length() > 0
	f.HasOGImage = doc.Find("meta[property='og:image']").Length() > 0
	f.HasTwitterCard = doc.Find("meta[name='twitter:card']").Length() > 0

	ogCount := 0
	for _, present := range []bool{f.HasOGTitle, f.HasOGDescription, f.HasOGImage} {
		if present {
			ogCount++
		}
	}
	f.OGScore = float64(ogCount) / 3 * 100

	f.RobotsContent, _ = doc.Find("meta[name='robots']").Attr("content")
}

func extractHeadings(doc *goquery.Document, f *FeatureSet) {
	doc.Find("h1").Each(func(_ int, s *goquery.Selection) {
		f.H1Tags = append(f.H1Tags, strings.TrimSpace(s.Text()))
	})
	doc.Find("h2").Each(func(_ int, s *goquery.Selection) {
		if len(f.H2Tags) < 5 {
			f.H2Tags = append(f.H2Tags, strings.TrimSpace(s.Text()))
		}
		f.H2Count++
	})
	f.H1Count = len(f.H1Tags)
	f.H3Count = doc.Find("h3").Length()
	f.HasProperH1 = f.H1Count == 1
}

func extractImages(doc *goquery.Document, f *FeatureSet) {
	images := doc.Find("img")
	f.TotalImages = images.Length()

	images.Each(func(_ int, s *goquery.Selection) {
		if alt, _ := s.Attr("alt"); strings.TrimSpace(alt) != "" {
			f.ImagesWithAlt++
		}
	})
	f.ImagesWithoutAlt = f.TotalImages - f.ImagesWithAlt
	f.ImageAltRatio = float64(f.ImagesWithAlt) / float64(maxInt(f.TotalImages, 1)) * 100
}

func extractLinks(doc *goquery.Document, f *FeatureSet, domain string) {
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		f.TotalLinks++

		if rel, _ := s.Attr("rel"); strings.Contains(rel, "nofollow") {
			f.NofollowLinks++
		}

		switch {
		case strings.HasPrefix(href, "/") || (domain != "" && strings.Contains(href, domain)):
			f.InternalLinks++
		case strings.HasPrefix(href, "http"):
			f.ExternalLinks++
		}
	})
	f.LinkRatio = float64(f.InternalLinks) / float64(maxInt(f.ExternalLinks, 1))
}

func extractText(doc *goquery.Document, f *FeatureSet) {
	text := bodyText(doc)

	words := wordPattern.FindAllString(strings.ToLower(text), -1)
	f.WordCount = len(words)

	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		seen[w] = struct{}{}
	}
	f.UniqueWords = len(seen)
	f.VocabularyRichness = float64(f.UniqueWords) / float64(maxInt(f.WordCount, 1)) * 100

	for _, segment := range sentencePattern.Split(text, -1) {
		if strings.TrimSpace(segment) != "" {
			f.SentenceCount++
		}
	}
	f.AvgSentenceLength = float64(f.WordCount) / float64(maxInt(f.SentenceCount, 1))

	f.ParagraphCount = doc.Find("p").Length()
	f.TopKeywords = topKeywords(words, 10)
}

// bodyText extracts visible page text. Script, style and chrome elements
// are removed from a clone of the body so the document itself stays intact
// for the remaining extractors.
func bodyText(doc *goquery.Document) string {
	body := doc.Find("body")
	var text string
	if body.Length() > 0 {
		clone := body.Clone()
		clone.Find("script, style, nav, footer, header").Remove()
		text = clone.Text()
	} else {
		text = doc.Text()
	}
	return strings.Join(strings.Fields(text), " ")
}

func extractTechnical(doc *goquery.Document, f *FeatureSet) {
	viewport := doc.Find("meta[name='viewport']")
	f.HasViewport = viewport.Length() > 0
	if content, _ := viewport.Attr("content"); f.HasViewport {
		f.IsMobileFriendly = strings.Contains(strings.ToLower(content), "width=device-width")
	}

	f.HasSchema = doc.Find("script[type='application/ld+json']").Length() > 0

	f.Lang, _ = doc.Find("html").Attr("lang")
	f.HasLang = len(f.Lang) > 0

	doc.Find("link[rel]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		rel, _ := s.Attr("rel")
		if strings.Contains(strings.ToLower(rel), "icon") {
			f.HasFavicon = true
			return false
		}
		return true
	})

	f.VideoCount = doc.Find("video, iframe").Length()
	f.FormCount = doc.Find("form").Length()
}

// topKeywords counts non-stopword tokens longer than two characters and
// returns the n most frequent. Ties keep first-seen order so the result is
// deterministic for identical input.
func topKeywords(words []string, n int) []Keyword {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0

	for _, w := range words {
		if len(w) <= 2 {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		if _, ok := counts[w]; !ok {
			firstSeen[w] = order
			order++
		}
		counts[w]++
	}

	keywords := make([]Keyword, 0, len(counts))
	for w, c := range counts {
		keywords = append(keywords, Keyword{Word: w, Count: c})
	}
	sort.SliceStable(keywords, func(i, j int) bool {
		if keywords[i].Count != keywords[j].Count {
			return keywords[i].Count > keywords[j].Count
		}
		return firstSeen[keywords[i].Word] < firstSeen[keywords[j].Word]
	})

	if len(keywords) > n {
		keywords = keywords[:n]
	}
	return keywords
}

func titleHasKeyword(title string, keywords []Keyword) bool {
	lower := strings.ToLower(title)
	for i, kw := range keywords {
		if i >= 3 {
			break
		}
		if strings.Contains(lower, kw.Word) {
			return true
		}
	}
	return false
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
