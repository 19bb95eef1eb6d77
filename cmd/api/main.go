package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"libratech/internal/assistant"
	"libratech/internal/auth"
	apphttp "libratech/internal/http"
	"libratech/internal/httpx"
	"libratech/internal/ledger"
	"libratech/internal/store"
)

func main() {
	_ = godotenv.Load(".env.local")

	serverAddress := getEnv("APP_ADDR", ":8080")
	jwtSecret := mustGetEnv("JWT_SECRET")
	adminPassword := getEnv("ADMIN_PASSWORD", "admin")
	starterPassword := getEnv("MEMBER_STARTER_PASSWORD", "123456")
	openAIKey := os.Getenv("OPENAI_API_KEY")
	openAIModel := os.Getenv("OPENAI_MODEL")
	corsOrigins := strings.Split(getEnv("CORS_ORIGINS", "http://localhost:5173"), ",")

	adminHash := mustHash(adminPassword)
	starterHash := mustHash(starterPassword)

	st := store.NewSeeded(adminHash, starterHash)
	led := ledger.New(st)
	librarian := assistant.New(openAIKey, openAIModel)

	router := apphttp.NewRouter(apphttp.RouterConfig{
		Store:       st,
		Ledger:      led,
		Librarian:   librarian,
		JWTSecret:   jwtSecret,
		StarterHash: starterHash,
	})

	rateLimit := httpx.NewRateLimitMiddleware(getEnvFloat("RATE_LIMIT_RPS", 20), getEnvInt("RATE_LIMIT_BURST", 40))

	var handler http.Handler = router
	handler = rateLimit.Middleware(handler)
	handler = httpx.RequestSizeLimitMiddleware(int64(getEnvInt("MAX_BODY_BYTES", 1<<20)))(handler)
	handler = httpx.CORSMiddleware(corsOrigins)(handler)
	handler = httpx.SecurityHeadersMiddleware(handler)
	handler = httpx.RecoveryMiddleware(handler)
	handler = httpx.AccessLogMiddleware(handler)
	handler = httpx.RequestIDMiddleware(handler)

	httpServer := &http.Server{
		Addr:         serverAddress,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
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

func mustGetEnv(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	log.Fatalf("missing required environment variable: %s", key)
	return ""
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Fatalf("invalid integer for %s: %s", key, v)
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Fatalf("invalid number for %s: %s", key, v)
	}
	return def
}

func mustHash(password string) string {
	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatalf("cannot hash seed password: %v", err)
	}
	return hash
}
