package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/avelez-dev/airquality-dashboard/internal/api/http"
	"github.com/avelez-dev/airquality-dashboard/internal/config"
	"github.com/avelez-dev/airquality-dashboard/internal/dashboard"
	"github.com/avelez-dev/airquality-dashboard/internal/dataset"
	"github.com/avelez-dev/airquality-dashboard/internal/live"
	"github.com/avelez-dev/airquality-dashboard/internal/scheduler"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Optional live-reading fetcher.
	var fetcher live.Fetcher
	if cfg.LiveEnabled {
		httpClient := &http.Client{
			Timeout: cfg.HTTPTimeout,
		}
		fetcher = live.NewOpenMeteoFetcher(httpClient)
	}

	// Memoized dataset cache and orchestrating service.
	cache := dataset.NewCache()
	service := dashboard.NewService(cache, cfg.DatasetSize, cfg.DatasetSeed, fetcher)

	// Warm the cache so the first chart request is served from memory.
	if _, err := service.Dataset(); err != nil {
		log.Fatalf("failed to generate dataset: %v", err)
	}

	// Scheduler that rotates the demo seed, when enabled.
	sched := scheduler.New(service, cfg.RotateInterval)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "airquality-dashboard",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "airquality-dashboard",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, service)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
