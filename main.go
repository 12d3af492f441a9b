package main

import (
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/pagegrader/backend/analyzer"
	"github.com/pagegrader/backend/content"
	"github.com/pagegrader/backend/logging"
	"github.com/pagegrader/backend/middleware"
	"github.com/pagegrader/backend/scoring"
	"github.com/pagegrader/backend/scraper"
)

var (
	pageAnalyzer *analyzer.Analyzer
	pusher       *content.Pusher
	rateLimiter  *middleware.RateLimiter
)

func loadEnv() {
	// Try to load .env.development first (for local development)
	if err := godotenv.Load(".env.development"); err != nil {
		// If .env.development doesn't exist, try regular .env
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, using environment variables")
		}
	}
}

func setupGinMode() {
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)
}

func main() {
	loadEnv()
	setupGinMode()

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	cfg, err := scoring.LoadConfig(os.Getenv("SCORING_CONFIG"))
	if err != nil {
		log.Fatal("Failed to load scoring config:", err)
	}

	pageAnalyzer, err = analyzer.New(dataDir, cfg)
	if err != nil {
		log.Fatal("Failed to initialize analyzer:", err)
	}
	defer pageAnalyzer.Shutdown()

	pusher = content.NewPusher()
	rateLimiter = middleware.NewRateLimiter(2, 5) // 2 requests per second, burst of 5

	stats := logging.Initialize()

	r := gin.Default()

	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RequestID())
	r.Use(rateLimiter.RateLimit())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Request tracking middleware
	r.Use(func(c *gin.Context) {
		start := time.Now()

		stats.TrackVisitor(c.ClientIP())

		c.Next()

		// Only track analysis requests
		if c.Request.URL.Path == "/api/analyze" && c.Request.Method == "POST" {
			latency := float64(time.Since(start).Milliseconds())
			score := -1
			if v, exists := c.Get("overall_score"); exists {
				if s, ok := v.(int); ok {
					score = s
				}
			}
			analyzedURL, _ := c.Get("analyzed_url")
			urlStr, _ := analyzedURL.(string)
			stats.TrackAnalysis(urlStr, latency, score, c.Writer.Status() >= 400)
		}

		// Periodically save statistics
		if stats.GetStatistics()["totalRequests"].(int)%100 == 0 {
			go stats.Save()
		}
	})

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status": "ok",
			})
		})

		api.POST("/analyze", analyzeURL)
		api.POST("/generate", generateContent)
		api.POST("/push", pushContent)

		api.GET("/scoring", func(c *gin.Context) {
			c.JSON(http.StatusOK, pageAnalyzer.Engine().Config())
		})

		api.GET("/statistics", func(c *gin.Context) {
			result := stats.GetStatistics()
			result["monthly"] = pageAnalyzer.GetStats().GetCurrentStats()
			result["cache"] = pageAnalyzer.GetCacheStats()
			c.JSON(http.StatusOK, result)
		})
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8082"
	}

	log.Printf("Server starting on http://localhost:%s\n", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func analyzeURL(c *gin.Context) {
	var request struct {
		URL      string `json:"url" binding:"required"`
		Platform string `json:"platform"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid URL provided",
		})
		return
	}

	c.Set("analyzed_url", request.URL)

	report, err := pageAnalyzer.Analyze(c.Request.Context(), request.URL, request.Platform)
	if err != nil {
		var fetchErr *scraper.FetchError
		if errors.As(err, &fetchErr) {
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Failed to fetch URL: " + fetchErr.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to analyze URL: " + err.Error(),
		})
		return
	}

	c.Set("overall_score", report.OverallScore)
	c.JSON(http.StatusOK, report)
}

func generateContent(c *gin.Context) {
	var request struct {
		URL      string `json:"url" binding:"required"`
		Platform string `json:"platform"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid URL provided",
		})
		return
	}

	platform := request.Platform
	if platform == "" {
		platform = content.DefaultPlatform
	}

	suggestions, formatted, err := pageAnalyzer.GenerateContent(c.Request.Context(), request.URL, platform)
	if err != nil {
		var fetchErr *scraper.FetchError
		if errors.As(err, &fetchErr) {
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Failed to fetch URL: " + fetchErr.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate content: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url":               request.URL,
		"platform":          platform,
		"suggestions":       suggestions,
		"formatted_content": formatted,
	})
}

func pushContent(c *gin.Context) {
	var request content.PushRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid push request",
		})
		return
	}

	result, err := pusher.Prepare(&request)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
