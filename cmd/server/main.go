package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/ShayaanRahim/GeoPoli-Invest/internal/adapter/news_http"
	"github.com/ShayaanRahim/GeoPoli-Invest/internal/di"
	"github.com/ShayaanRahim/GeoPoli-Invest/internal/infra"
	"github.com/ShayaanRahim/GeoPoli-Invest/internal/infra/config"
	"github.com/ShayaanRahim/GeoPoli-Invest/internal/infra/logger"
)

func main() {
	// 1. Load .env (optional in production)
	_ = godotenv.Load()

	// 2. Load Config
	cfg := config.Load()

	// 3. Initialize Logger
	log := logger.NewWithOTel(cfg.OTel)
	slog.SetDefault(log)

	// 4. Initialize DB
	dbPool, err := infra.NewPostgresDB(context.Background(), cfg.DB.DSN(), infra.PoolConfig{
		MaxConns: cfg.DB.MaxConns,
		MinConns: cfg.DB.MinConns,
	})
	if err != nil {
		log.Error("failed to connect to db", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := infra.EnsureSchema(context.Background(), dbPool); err != nil {
		log.Error("failed to ensure schema", "error", err)
		os.Exit(1)
	}

	// 5. Wire Components
	components, err := di.NewApplicationComponents(cfg, dbPool, log)
	if err != nil {
		log.Error("failed to wire components", "error", err)
		os.Exit(1)
	}

	// 6. Start Worker
	if cfg.Worker.Enabled {
		components.Worker.Start()
		defer func() {
			log.Info("Stopping worker...")
			components.Worker.Stop()
		}()
	}

	// 7. Initialize Echo
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// 8. Register Handlers
	news_http.RegisterRoutes(e, components.Handler, components.RateLimiter)

	// 9. Health Checks
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/readyz", func(c echo.Context) error {
		if err := dbPool.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "db down", "error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ready"})
	})

	// 10. Start Server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		log.Info("Starting server", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal("shutting down the server")
		}
	}()

	// 11. Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal(err)
	}
}
