package analyzer

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagegrader/backend/scraper"
)

const testPage = `<!DOCTYPE html>
<html lang="en">
<head>
<title>Espresso Machines Compared: Finding the Right One</title>
<meta name="description" content="We compared the most popular espresso machines on grind quality, pressure stability and price so you can pick the right one for your kitchen counter.">
<meta name="viewport" content="width=device-width, initial-scale=1">
<meta property="og:title" content="Espresso Machines Compared">
</head>
<body>
<h1>Espresso Machines Compared</h1>
<h2>Pressure</h2>
<h2>Grinders</h2>
<p>Espresso machines vary widely. A good espresso machine holds steady pressure.
Grinders matter as much as the machine for espresso quality.</p>
<img src="machine.jpg" alt="espresso machine">
<a href="/reviews">Reviews</a>
</body>
</html>`

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()

	a, err := New(t.TempDir(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { a.Shutdown() })

	return a
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(testPage))
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestAnalyzePipeline(t *testing.T) {
	a := newTestAnalyzer(t)
	srv := newTestServer(t)

	report, err := a.Analyze(context.Background(), srv.URL, "")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, report.StatusCode)
	assert.False(t, report.Cached)

	require.NotNil(t, report.Features)
	assert.True(t, report.Features.HasTitle)
	assert.True(t, report.Features.HasProperH1)
	assert.True(t, report.Features.IsMobileFriendly)
	assert.Equal(t, "espresso", report.Features.TopKeywords[0].Word)

	assert.Greater(t, report.OverallScore, 0)
	assert.LessOrEqual(t, report.OverallScore, 100)
	assert.NotEmpty(t, report.Grade)
	assert.NotEmpty(t, report.Insights)

	// No platform requested, so no generated content.
	assert.Nil(t, report.ContentSuggestions)
	assert.Nil(t, report.FormattedContent)
}

func TestAnalyzeUsesCache(t *testing.T) {
	a := newTestAnalyzer(t)

	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(testPage))
	}))
	t.Cleanup(srv.Close)

	first, err := a.Analyze(context.Background(), srv.URL, "")
	require.NoError(t, err)
	assert.False(t, first.Cached)
	assert.True(t, a.IsCached(srv.URL))

	second, err := a.Analyze(context.Background(), srv.URL, "")
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.OverallScore, second.OverallScore)

	assert.Equal(t, 1, requests, "cached result should not refetch")

	monthly := a.GetStats().GetCurrentStats()
	assert.Equal(t, 1, monthly.CacheHits)
	assert.Equal(t, 1, monthly.CacheMisses)
	assert.Equal(t, 1, monthly.Analyses)
}

func TestAnalyzeCacheExpiry(t *testing.T) {
	a := newTestAnalyzer(t)
	a.SetCacheTTL(0)
	srv := newTestServer(t)

	_, err := a.Analyze(context.Background(), srv.URL, "")
	require.NoError(t, err)

	assert.False(t, a.IsCached(srv.URL))
}

func TestAnalyzeWithPlatformAttachesContent(t *testing.T) {
	a := newTestAnalyzer(t)
	srv := newTestServer(t)

	report, err := a.Analyze(context.Background(), srv.URL, "html")
	require.NoError(t, err)

	require.NotNil(t, report.ContentSuggestions)
	assert.Equal(t, "espresso", report.ContentSuggestions.Keywords.Primary)
	require.NotNil(t, report.FormattedContent)
	assert.Contains(t, report.FormattedContent, "html")

	// The same cached analysis serves a different platform.
	report2, err := a.Analyze(context.Background(), srv.URL, "markdown")
	require.NoError(t, err)
	assert.True(t, report2.Cached)
	assert.Contains(t, report2.FormattedContent, "markdown")
}

func TestAnalyzeFetchError(t *testing.T) {
	a := newTestAnalyzer(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	t.Cleanup(srv.Close)

	_, err := a.Analyze(context.Background(), srv.URL, "")
	require.Error(t, err)

	var fetchErr *scraper.FetchError
	assert.True(t, errors.As(err, &fetchErr))

	monthly := a.GetStats().GetCurrentStats()
	assert.Equal(t, 1, monthly.FetchErrors)
	assert.Equal(t, 0, monthly.Analyses)
}

func TestGenerateContent(t *testing.T) {
	a := newTestAnalyzer(t)
	srv := newTestServer(t)

	suggestions, formatted, err := a.GenerateContent(context.Background(), srv.URL, "wordpress")
	require.NoError(t, err)

	require.NotNil(t, suggestions)
	assert.Len(t, suggestions.Title.Suggestions, 3)
	assert.Contains(t, formatted, "title")
	assert.Contains(t, formatted, "excerpt")
}

func TestClearCache(t *testing.T) {
	a := newTestAnalyzer(t)
	srv := newTestServer(t)

	_, err := a.Analyze(context.Background(), srv.URL, "")
	require.NoError(t, err)
	require.True(t, a.IsCached(srv.URL))

	a.ClearCache()
	assert.False(t, a.IsCached(srv.URL))
}

func TestGetCacheStats(t *testing.T) {
	a := newTestAnalyzer(t)
	srv := newTestServer(t)

	_, err := a.Analyze(context.Background(), srv.URL, "")
	require.NoError(t, err)

	stats := a.GetCacheStats()
	assert.Equal(t, 1, stats.Entries)
	assert.Equal(t, 1, stats.Misses)
	assert.Equal(t, 1000, stats.MaxEntries)
}
