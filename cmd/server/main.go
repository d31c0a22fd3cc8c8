package main

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"

	"github.com/equip-dashboard/backend/internal/api"
	"github.com/equip-dashboard/backend/internal/config"
	"github.com/equip-dashboard/backend/internal/dataset"
	"github.com/equip-dashboard/backend/internal/logger"
	"github.com/equip-dashboard/backend/internal/metrics"
	"github.com/equip-dashboard/backend/internal/storage"
)

// Version info (set during build)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// .env is optional; real env wins either way.
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	if err := cfg.EnsureDirectories(); err != nil {
		log.WithError(err).Fatal("failed to create data directories")
	}

	if err := logger.Setup(cfg.Logging.Level, cfg.Logging.Directory, cfg.Logging.FileMaxAgeDay); err != nil {
		log.WithError(err).Fatal("failed to set up logging")
	}

	metrics.Init()

	store, err := storage.OpenSnapshotStore(cfg.SnapshotPath())
	if err != nil {
		log.WithError(err).Fatal("failed to open snapshot store")
	}
	defer store.Close()

	mgr := dataset.NewManager(store)
	if err := mgr.Restore(); err != nil {
		// A corrupt snapshot should not keep the server down; the user can
		// simply upload again.
		log.WithError(err).Warn("failed to restore persisted dataset")
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = api.ErrorHandler

	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Skipper: func(c echo.Context) bool {
			if !cfg.Logging.RequestLog {
				return true
			}
			path := c.Request().URL.Path
			return path == "/health" || path == "/metrics"
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	if cfg.Server.EnableCORS {
		origins := strings.Split(cfg.Server.AllowOrigins, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		if len(origins) == 0 || (len(origins) == 1 && origins[0] == "") {
			origins = []string{"*"}
		}
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: origins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
			AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		}))
	}

	api.RegisterRoutes(e, api.NewHandler(mgr, Version))

	s := &http.Server{
		Addr:         cfg.ServerAddr(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	log.WithFields(log.Fields{
		"version": Version,
		"built":   BuildTime,
		"addr":    cfg.ServerAddr(),
		"data":    cfg.Storage.DataDirectory,
	}).Info("equipment inventory server starting")

	if err := e.StartServer(s); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("server stopped")
	}
}
