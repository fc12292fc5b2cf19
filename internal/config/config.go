package config

import (
	"os"
	"strconv"
	"time"

	applog "fedashop/internal/log"
)

type Config struct {
	Port        string
	StoreDriver string // memory | sqlite
	DBDSN       string
	CartSlots   string // sqlite | redis | memory
	RedisURL    string
	CartSlotTTL time.Duration
	LogFile     string
	LogLevel    string
	RateLimit   int // requests per minute per IP
}

func Load() Config {
	cfg := Config{
		Port:        env("PORT", "8080"),
		StoreDriver: env("STORE_DRIVER", "memory"),
		DBDSN:       env("DB_DSN", "fedashop.db"), // sqlite file in project root
		CartSlots:   env("CART_SLOTS", "sqlite"),
		RedisURL:    env("REDIS_URL", "redis://localhost:6379/0"),
		CartSlotTTL: 30 * 24 * time.Hour,
		LogFile:     os.Getenv("LOG_FILE"),
		LogLevel:    env("LOG_LEVEL", "info"),
		RateLimit:   120,
	}
	if v := os.Getenv("CART_SLOT_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.CartSlotTTL = d
		}
	}
	if v := os.Getenv("RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RateLimit = n
		}
	}

	applog.Event("config.loaded", map[string]any{
		"port": cfg.Port, "store": cfg.StoreDriver, "db_dsn": cfg.DBDSN,
		"cart_slots": cfg.CartSlots, "log_file": cfg.LogFile, "rate_limit": cfg.RateLimit,
	})
	return cfg
}

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
