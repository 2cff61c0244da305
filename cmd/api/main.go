package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"bookshelf/internal/book"
	apphttp "bookshelf/internal/http"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env.local")

	serverAddress := getEnv("APP_ADDR", ":8080")
	corsOrigins := splitAndTrim(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173"))
	rateLimitRPS := getEnvFloat("RATE_LIMIT_RPS", 50)
	rateLimitBurst := getEnvInt("RATE_LIMIT_BURST", 100)

	store := book.NewMemoryStore()
	bookHandler := apphttp.NewBookHandler(store)

	router := http.NewServeMux()

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Handle("/books", apphttp.MethodMux(map[string]http.Handler{
		http.MethodPost: http.HandlerFunc(bookHandler.Create),
		http.MethodGet:  http.HandlerFunc(bookHandler.List),
	}))
	router.Handle("/books/", apphttp.MethodMux(map[string]http.Handler{
		http.MethodGet:    http.HandlerFunc(bookHandler.GetByID),
		http.MethodPut:    http.HandlerFunc(bookHandler.Update),
		http.MethodDelete: http.HandlerFunc(bookHandler.Delete),
	}))

	rateLimit := apphttp.NewRateLimitMiddleware(rateLimitRPS, rateLimitBurst)

	var handler http.Handler = router
	handler = rateLimit.Middleware(handler)
	handler = apphttp.RecoveryMiddleware(handler)
	handler = apphttp.RequestLogger(handler)
	handler = apphttp.CORSMiddleware(corsOrigins)(handler)

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

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("invalid %s=%q, using default %v", key, v, def)
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("invalid %s=%q, using default %v", key, v, def)
	}
	return def
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
