package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mateshq/mates/internal/auth"
	"github.com/mateshq/mates/internal/config"
	"github.com/mateshq/mates/internal/middleware"
	"github.com/mateshq/mates/internal/service"
	"github.com/mateshq/mates/internal/storage/sqlite"
	"github.com/mateshq/mates/pkg/logging"
)

func main() {
	logging.Setup()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	store, err := sqlite.New(cfg.SQLiteDBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.SQLiteDBPath)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenDuration)
	authenticator := auth.NewPasswordAuthenticator(store)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(middleware.RequestLogger())
	e.Use(middleware.Metrics())

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	public := e.Group("/api/v1")
	private := e.Group("/api/v1", middleware.RequireAuth(jwtManager))

	service.NewAuthService(authenticator, store, jwtManager).RegisterRoutes(public, private)
	service.NewRosterService(store).RegisterRoutes(private)
	service.NewExpenseService(store).RegisterRoutes(private)
	service.NewSummaryService(store).RegisterRoutes(private)

	addr := ":" + cfg.Port
	slog.Info("Server starting", "address", addr)
	if err := e.Start(addr); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
