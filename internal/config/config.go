package config

import (
	"os"
	"strconv"
)

type Config struct {
	HTTPPort       string
	RedisAddr      string
	JWTSecret      string
	RateLimitPerIP int
}

func NewConfig() *Config {
	return &Config{
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		RateLimitPerIP: getEnvInt("RATE_LIMIT_PER_IP", 120),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
