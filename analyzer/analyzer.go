// Package analyzer ties page fetching, feature extraction, scoring and
// content generation into one pipeline with a result cache.
package analyzer

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/pagegrader/backend/content"
	"github.com/pagegrader/backend/scoring"
	"github.com/pagegrader/backend/scraper"
	"github.com/pagegrader/backend/stats"
)

// Cache entry with expiration
type cacheEntry struct {
	report    *Report
	timestamp time.Time
}

// CacheStats provides statistics about the analyzer's cache
type CacheStats struct {
	Entries     int           `json:"entries"`
	Hits        int           `json:"hits"`
	Misses      int           `json:"misses"`
	TTL         time.Duration `json:"ttl"`
	MaxEntries  int           `json:"maxEntries"`
	LastCleanup time.Time     `json:"lastCleanup"`
}

// Analyzer fetches pages and produces full analysis reports.
type Analyzer struct {
	scraper   *scraper.Scraper
	engine    *scoring.Engine
	suggester *content.Suggester
	writer    *content.Writer

	cache           map[string]cacheEntry
	cacheMutex      sync.RWMutex
	cacheTTL        time.Duration
	maxCacheSize    int
	lastCleanup     time.Time
	cleanupInterval time.Duration
	stopCleanup     chan struct{}

	stats *stats.Storage
}

// New creates an Analyzer backed by a statistics store in dataDir. The
// scoring configuration may be nil to use defaults.
func New(dataDir string, cfg *scoring.Config) (*Analyzer, error) {
	statsStorage, err := stats.NewStorage(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize stats storage: %w", err)
	}

	a := &Analyzer{
		scraper:         scraper.New(),
		engine:          scoring.NewEngine(cfg),
		suggester:       content.NewSuggester(),
		writer:          content.NewWriter(),
		cache:           make(map[string]cacheEntry),
		cacheTTL:        30 * time.Minute,
		maxCacheSize:    1000,
		cleanupInterval: 5 * time.Minute,
		lastCleanup:     time.Now(),
		stopCleanup:     make(chan struct{}),
		stats:           statsStorage,
	}

	go a.periodicCleanup()

	return a, nil
}

// Engine exposes the scoring engine, mainly for the config endpoint.
func (a *Analyzer) Engine() *scoring.Engine {
	return a.engine
}

// GetStats returns the statistics storage instance
func (a *Analyzer) GetStats() *stats.Storage {
	return a.stats
}

// periodicCleanup removes expired cache entries periodically
func (a *Analyzer) periodicCleanup() {
	ticker := time.NewTicker(a.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.cleanup()
		case <-a.stopCleanup:
			return
		}
	}
}

// cleanup removes expired entries and enforces the cache size limit
func (a *Analyzer) cleanup() {
	now := time.Now()

	a.cacheMutex.Lock()
	defer a.cacheMutex.Unlock()

	for key, entry := range a.cache {
		if now.Sub(entry.timestamp) > a.cacheTTL {
			delete(a.cache, key)
		}
	}

	// If still over size limit, remove oldest entries
	if len(a.cache) > a.maxCacheSize {
		entries := make([]struct {
			key       string
			timestamp time.Time
		}, 0, len(a.cache))

		for key, entry := range a.cache {
			entries = append(entries, struct {
				key       string
				timestamp time.Time
			}{key, entry.timestamp})
		}

		sort.Slice(entries, func(i, j int) bool {
			return entries[i].timestamp.Before(entries[j].timestamp)
		})

		for i := 0; i < len(entries)-a.maxCacheSize; i++ {
			delete(a.cache, entries[i].key)
		}
	}

	a.lastCleanup = now
}

// SetMaxCacheSize sets the maximum number of cached reports.
func (a *Analyzer) SetMaxCacheSize(size int) {
	a.cacheMutex.Lock()
	a.maxCacheSize = size
	a.cacheMutex.Unlock()
	a.cleanup()
}

// SetCacheTTL sets the cache TTL.
func (a *Analyzer) SetCacheTTL(ttl time.Duration) {
	a.cacheMutex.Lock()
	defer a.cacheMutex.Unlock()
	a.cacheTTL = ttl
}

// ClearCache drops every cached report.
func (a *Analyzer) ClearCache() {
	a.cacheMutex.Lock()
	defer a.cacheMutex.Unlock()
	a.cache = make(map[string]cacheEntry)
}

// generateCacheKey creates a unique key for the URL
func generateCacheKey(url string) string {
	hash := md5.Sum([]byte(url))
	return hex.EncodeToString(hash[:])
}

// GetCacheStats returns statistics about the cache
func (a *Analyzer) GetCacheStats() CacheStats {
	currentStats := a.stats.GetCurrentStats()

	a.cacheMutex.RLock()
	defer a.cacheMutex.RUnlock()

	return CacheStats{
		Entries:     len(a.cache),
		Hits:        currentStats.CacheHits,
		Misses:      currentStats.CacheMisses,
		TTL:         a.cacheTTL,
		MaxEntries:  a.maxCacheSize,
		LastCleanup: a.lastCleanup,
	}
}

// IsCached reports whether a fresh report for the URL is cached.
func (a *Analyzer) IsCached(url string) bool {
	cacheKey := generateCacheKey(scraper.NormalizeURL(url))
	a.cacheMutex.RLock()
	defer a.cacheMutex.RUnlock()

	entry, found := a.cache[cacheKey]
	return found && time.Since(entry.timestamp) < a.cacheTTL
}

// Analyze fetches the page at rawURL and produces a full report. When
// platform is non-empty the report also carries content suggestions
// formatted for that platform.
func (a *Analyzer) Analyze(ctx context.Context, rawURL string, platform string) (*Report, error) {
	url := scraper.NormalizeURL(rawURL)

	cacheKey := generateCacheKey(url)
	a.cacheMutex.RLock()
	if entry, found := a.cache[cacheKey]; found {
		if time.Since(entry.timestamp) < a.cacheTTL {
			a.cacheMutex.RUnlock()
			a.stats.RecordCacheAccess(1, 0)

			cached := *entry.report
			cached.Cached = true
			a.attachContent(&cached, platform)
			return &cached, nil
		}
	}
	a.cacheMutex.RUnlock()

	a.stats.RecordCacheAccess(0, 1)

	report, err := a.analyze(ctx, url)
	if err != nil {
		a.stats.RecordFetchError()
		return nil, err
	}

	a.stats.RecordAnalysis(report.OverallScore)

	a.cacheMutex.Lock()
	a.cache[cacheKey] = cacheEntry{
		report:    report,
		timestamp: time.Now(),
	}
	a.cacheMutex.Unlock()

	result := *report
	a.attachContent(&result, platform)
	return &result, nil
}

func (a *Analyzer) analyze(ctx context.Context, url string) (*Report, error) {
	result, err := a.scraper.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	features := scraper.ExtractFeatures(result.Document, result.URL, result.LoadTime, result.Size)
	evaluation := a.engine.Evaluate(features)

	return &Report{
		URL:          result.URL,
		StatusCode:   result.StatusCode,
		LoadTime:     result.LoadTime,
		Features:     features,
		Scores:       evaluation.Scores,
		OverallScore: evaluation.OverallScore,
		Grade:        evaluation.Grade,
		Issues:       evaluation.Issues,
		Suggestions:  evaluation.Suggestions,
		Insights:     evaluation.Insights,
	}, nil
}

// attachContent fills the generated-content fields on a report copy. The
// cached report itself never carries them so platform choice stays
// per-request.
func (a *Analyzer) attachContent(report *Report, platform string) {
	if platform == "" {
		report.ContentSuggestions = nil
		report.FormattedContent = nil
		return
	}

	suggestions := a.suggester.Generate(report.Features)
	report.ContentSuggestions = suggestions
	report.FormattedContent = a.writer.Format(suggestions, platform)
}

// GenerateContent produces content suggestions for an already analyzed or
// freshly fetched page without the scoring report.
func (a *Analyzer) GenerateContent(ctx context.Context, rawURL string, platform string) (*content.Suggestions, map[string]any, error) {
	report, err := a.Analyze(ctx, rawURL, "")
	if err != nil {
		return nil, nil, err
	}

	suggestions := a.suggester.Generate(report.Features)
	formatted := a.writer.Format(suggestions, platform)
	return suggestions, formatted, nil
}

// Shutdown stops background work and flushes statistics.
func (a *Analyzer) Shutdown() error {
	if a == nil {
		return nil
	}

	close(a.stopCleanup)

	a.cacheMutex.Lock()
	a.cache = nil
	a.cacheMutex.Unlock()

	if a.stats != nil {
		if err := a.stats.Shutdown(); err != nil {
			return fmt.Errorf("failed to shutdown stats storage: %w", err)
		}
	}

	return nil
}
