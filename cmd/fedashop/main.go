package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fedashop/internal/cart"
	"fedashop/internal/config"
	"fedashop/internal/http/handlers"
	applog "fedashop/internal/log"
	"fedashop/internal/metrics"
	"fedashop/internal/repos"
	"fedashop/internal/store"
)

func main() {
	// .env is optional
	_ = godotenv.Load()
	cfg := config.Load()
	applog.SetLevel(cfg.LogLevel)

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			applog.Warn("log.file", err, map[string]any{"path": cfg.LogFile})
		} else {
			applog.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	}

	var db *sqlx.DB
	openDB := func() *sqlx.DB {
		if db == nil {
			var err error
			if db, err = repos.OpenDB(cfg.DBDSN); err != nil {
				applog.Logger().WithError(err).Fatal("db.open")
			}
		}
		return db
	}

	var st store.Storage
	switch cfg.StoreDriver {
	case "sqlite":
		st = repos.NewSQLStore(openDB())
	default:
		st = store.NewMemory(store.Seed(time.Now().UTC())...)
	}

	var slots cart.SlotStore
	switch cfg.CartSlots {
	case "redis":
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		client, err := repos.OpenRedis(ctx, cfg.RedisURL)
		cancel()
		if err != nil {
			applog.Logger().WithError(err).Fatal("redis.open")
		}
		slots = repos.NewGuardedSlots("cart-slots", repos.NewRedisSlots(client, "fedashop", cfg.CartSlotTTL))
	case "memory":
		slots = cart.NewMemorySlots()
	default:
		slots = repos.NewSQLiteSlots(openDB())
	}

	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{Output: applog.Logger().Writer()}))
	app.Use(helmet.New())
	app.Use(metrics.Middleware())
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimit,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			p := c.Path()
			return p == "/healthz" || p == "/metrics"
		},
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.limit.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded, retry soon"})
		},
	}))
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "header:X-Csrf-Token",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   false, // set true behind HTTPS
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Security(c, "csrf.fail", nil)
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "security check failed, refresh and try again"})
		},
	}))

	// ---------- App handlers ----------
	handlers.NewDeps(st, slots).Register(app)

	// Health & metrics
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	applog.Event("server.start", map[string]any{"port": cfg.Port})
	if err := app.Listen(":" + cfg.Port); err != nil {
		applog.Logger().WithError(err).Fatal("server.listen")
	}
}
