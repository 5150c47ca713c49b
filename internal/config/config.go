package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/passforge/passforge-go/internal/crypto"
)

type Config struct {
	Port           string
	Env            string
	RateLimitRPS   float64
	RateLimitBurst int
	NameStrategy   string
}

func Load() Config {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 20),
		NameStrategy:   getEnv("NAME_STRATEGY", crypto.StrategyShuffle),
	}

	if cfg.NameStrategy != crypto.StrategyShuffle && cfg.NameStrategy != crypto.StrategyCityWord {
		slog.Error("NAME_STRATEGY must be one of: shuffle, cityword", "value", cfg.NameStrategy)
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		slog.Warn("invalid integer in environment, using fallback", "key", key, "value", v)
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		slog.Warn("invalid number in environment, using fallback", "key", key, "value", v)
	}
	return fallback
}
