package stats

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStorage(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "stats-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	defer os.RemoveAll(tempDir)

	storage, err := NewStorage(tempDir)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}
	defer storage.Shutdown()

	t.Run("RecordAnalysis", func(t *testing.T) {
		storage.RecordAnalysis(80)
		storage.RecordAnalysis(60)
		stats := storage.GetCurrentStats()

		if stats.Analyses != 2 {
			t.Errorf("Expected 2 analyses, got %d", stats.Analyses)
		}
		if stats.ScoreTotal != 140 {
			t.Errorf("Expected score total 140, got %d", stats.ScoreTotal)
		}
		if avg := stats.AverageScore(); avg != 70 {
			t.Errorf("Expected average score 70, got %f", avg)
		}
	})

	t.Run("RecordFetchError", func(t *testing.T) {
		storage.RecordFetchError()
		stats := storage.GetCurrentStats()

		if stats.FetchErrors != 1 {
			t.Errorf("Expected 1 fetch error, got %d", stats.FetchErrors)
		}
	})

	t.Run("RecordCacheAccess", func(t *testing.T) {
		storage.RecordCacheAccess(3, 2)
		stats := storage.GetCurrentStats()

		if stats.CacheHits != 3 {
			t.Errorf("Expected 3 cache hits, got %d", stats.CacheHits)
		}
		if stats.CacheMisses != 2 {
			t.Errorf("Expected 2 cache misses, got %d", stats.CacheMisses)
		}
	})

	t.Run("Persistence", func(t *testing.T) {
		if err := storage.save(); err != nil {
			t.Fatalf("Failed to save: %v", err)
		}

		storage2, err := NewStorage(tempDir)
		if err != nil {
			t.Fatalf("Failed to create second storage: %v", err)
		}
		defer storage2.Shutdown()

		stats := storage2.GetCurrentStats()
		if stats.Analyses != 2 {
			t.Errorf("Expected 2 analyses after reload, got %d", stats.Analyses)
		}
	})

	t.Run("Cleanup", func(t *testing.T) {
		oldMonth := time.Now().AddDate(0, -3, 0).Format("2006-01")
		storage.mutex.Lock()
		storage.stats[oldMonth] = &MonthlyStats{
			Analyses:    100,
			LastUpdated: time.Now().AddDate(0, -3, 0),
		}
		storage.mutex.Unlock()

		storage.Cleanup()

		storage.mutex.RLock()
		_, exists := storage.stats[oldMonth]
		storage.mutex.RUnlock()
		if exists {
			t.Error("Old stats should have been cleaned up")
		}
	})

	t.Run("GetAllMonths", func(t *testing.T) {
		months := storage.GetAllMonths()
		if len(months) == 0 {
			t.Fatal("Expected at least the current month")
		}
		if months[0] != time.Now().Format("2006-01") {
			t.Errorf("Expected newest month first, got %s", months[0])
		}
	})

	t.Run("FileSize", func(t *testing.T) {
		if err := storage.save(); err != nil {
			t.Fatalf("Failed to save: %v", err)
		}

		info, err := os.Stat(filepath.Join(tempDir, "stats.json"))
		if err != nil {
			t.Fatalf("Failed to stat file: %v", err)
		}

		// File should be relatively small (< 1KB for this test data)
		if info.Size() > 1024 {
			t.Errorf("File size too large: %d bytes", info.Size())
		}
	})

	t.Run("ConcurrentAccess", func(t *testing.T) {
		before := storage.GetCurrentStats().Analyses

		done := make(chan bool)
		for i := 0; i < 10; i++ {
			go func() {
				for j := 0; j < 100; j++ {
					storage.RecordAnalysis(50)
					storage.GetCurrentStats()
				}
				done <- true
			}()
		}

		for i := 0; i < 10; i++ {
			<-done
		}

		after := storage.GetCurrentStats().Analyses
		if after-before != 1000 {
			t.Errorf("Expected 1000 recorded analyses, got %d", after-before)
		}
	})
}

func TestGetMonthlyStats(t *testing.T) {
	tempDir := t.TempDir()

	storage, err := NewStorage(tempDir)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}
	defer storage.Shutdown()

	storage.RecordAnalysis(90)

	current := time.Now().Format("2006-01")
	stats, ok := storage.GetMonthlyStats(current)
	if !ok {
		t.Fatalf("Expected stats for %s", current)
	}
	if stats.Analyses != 1 {
		t.Errorf("Expected 1 analysis, got %d", stats.Analyses)
	}

	if _, ok := storage.GetMonthlyStats("1999-01"); ok {
		t.Error("Expected no stats for 1999-01")
	}
}
