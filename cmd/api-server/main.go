package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"demo-api/internal/api"
	"demo-api/internal/auth"
	"demo-api/internal/cache"
	"demo-api/internal/config"
	"demo-api/internal/core"
	"demo-api/internal/store"
	"demo-api/internal/telemetry"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.NewConfig()
	slog.Info("Starting API server", "port", cfg.HTTPPort)

	// The store resets to the demo seed data on every start.
	svc := core.NewService(store.Seed())

	redisClient, err := cache.NewClient(cfg.RedisAddr, cfg.RateLimitPerIP)
	if err != nil {
		slog.Warn("Redis unavailable, caching and rate limiting disabled", "addr", cfg.RedisAddr, "error", err)
		redisClient = nil
	} else {
		defer redisClient.Close()
		slog.Info("Connected to Redis", "addr", cfg.RedisAddr)
	}

	handler := api.NewHandler(svc, redisClient)
	authMiddleware := auth.NewMiddleware(cfg.JWTSecret)

	mux := http.NewServeMux()
	mux.Handle("GET /metrics", promhttp.Handler())

	apiRoutes := authMiddleware.ValidateToken(handler.RateLimit(handler.Routes()))
	mux.Handle("/api/", telemetry.Middleware(apiRoutes))

	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)
	slog.Info("Server listening", "addr", serverAddr)

	if err := http.ListenAndServe(serverAddr, mux); err != nil {
		slog.Error("Server shutdown error", "error", err)
		os.Exit(1)
	}
}
