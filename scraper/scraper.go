package scraper

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const userAgent = "SEOGrader/2.0 (+https://github.com/pagegrader/backend)"

// FetchError is returned when a page could not be retrieved. The analysis
// pipeline aborts on it; nothing downstream of the fetch ever fails.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// FetchResult carries the parsed document plus the fetch metadata the
// feature extractor needs.
type FetchResult struct {
	URL        string
	StatusCode int
	Document   *goquery.Document
	LoadTime   float64 // seconds
	Size       int     // response body bytes
}

// Scraper fetches pages over HTTP and parses them into goquery documents.
type Scraper struct {
	client *http.Client
}

// New creates a Scraper with a pooled transport and a hard 15 second
// request timeout.
func New() *Scraper {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
		DisableCompression:  false,
	}

	return &Scraper{
		client: &http.Client{
			Timeout:   15 * time.Second,
			Transport: transport,
		},
	}
}

// NormalizeURL prefixes scheme-less URLs with https.
func NormalizeURL(rawURL string) string {
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return "https://" + rawURL
	}
	return rawURL
}

// Fetch retrieves a page and parses it. Transport errors, timeouts and
// non-2xx statuses all return a *FetchError.
func (s *Scraper) Fetch(ctx context.Context, rawURL string) (*FetchResult, error) {
	url := NormalizeURL(rawURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &FetchError{URL: url, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	loadTime := time.Since(start).Seconds()

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		return nil, &FetchError{URL: url, Err: fmt.Errorf("parse: %w", err)}
	}

	return &FetchResult{
		URL:        url,
		StatusCode: resp.StatusCode,
		Document:   doc,
		LoadTime:   loadTime,
		Size:       buf.Len(),
	}, nil
}
