package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"bookfolio/internal/httpx"
	"bookfolio/internal/platform/googlebooks"
	"bookfolio/internal/platform/openlibrary"
	"bookfolio/internal/search"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env.local")

	serverAddress := getEnv("APP_ADDR", ":8080")
	googleAPIKey := os.Getenv("GOOGLE_BOOKS_API_KEY") // optional, raises quota
	userAgent := getEnv("HTTP_USER_AGENT", "bookfolio/1.0 (book search)")
	allowedOrigins := strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"), ",")

	cfg := search.DefaultConfig()
	cfg.MinCoveredResults = getEnvInt("SEARCH_MIN_COVERED_RESULTS", cfg.MinCoveredResults)
	cfg.DashAuthorMaxWords = getEnvInt("SEARCH_DASH_AUTHOR_MAX_WORDS", cfg.DashAuthorMaxWords)

	googleClient := googlebooks.NewClient(googleAPIKey, userAgent, getEnvInt("GOOGLE_BOOKS_RPS", 5), 1)
	openlibClient := openlibrary.NewClient(userAgent, getEnvInt("OPENLIBRARY_RPS", 5), 1)

	var searcher search.Searcher = search.NewService(googleClient, openlibClient, cfg)
	if ttl := getEnvDuration("SEARCH_CACHE_TTL", 0); ttl > 0 {
		searcher = search.NewCache(searcher, ttl)
		log.Printf("search cache enabled ttl=%s", ttl)
	}

	searchHandler := search.NewHTTPHandler(searcher)

	router := http.NewServeMux()
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /api/books/search", searchHandler.Search)

	rateLimit := httpx.NewRateLimitMiddleware(10, 20)

	var handler http.Handler = router
	handler = rateLimit.Middleware(handler)
	handler = httpx.RequestSizeLimitMiddleware(1 << 20)(handler)
	handler = httpx.CORSMiddleware(allowedOrigins)(handler)
	handler = httpx.SecurityHeadersMiddleware(handler)
	handler = httpx.AccessLogMiddleware(handler)
	handler = httpx.RecoveryMiddleware(handler)
	handler = httpx.RequestIDMiddleware(handler)

	httpServer := &http.Server{
		Addr:         serverAddress,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("Starting server on %s", serverAddress)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("invalid value for %s, using default %d", key, def)
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("invalid value for %s, using default %s", key, def)
	}
	return def
}
