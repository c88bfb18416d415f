// Package main Tag Cloud API
// @title Tag Cloud API
// @version 1.0
// @description Renders the most frequent words of a plain-text document as an HTML tag cloud.
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"log/slog"
	"net/http"
	"os"

	_ "github.com/DjordjeVuckovic/tag-cloud/docs"
	"github.com/DjordjeVuckovic/tag-cloud/internal/cloud"
	"github.com/DjordjeVuckovic/tag-cloud/internal/config"
	"github.com/DjordjeVuckovic/tag-cloud/internal/router"
	"github.com/DjordjeVuckovic/tag-cloud/internal/server"
	"github.com/DjordjeVuckovic/tag-cloud/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/tag-cloud/pkg/config/env"
	pkgserver "github.com/DjordjeVuckovic/tag-cloud/pkg/server"
	"github.com/labstack/echo/v4"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	if err := env.LoadDotEnv("cmd/tagcloud_api/.env"); err != nil {
		slog.Info("Skipping .env ...", "error", err)
	}

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	settings := config.Default()
	if sCfg.SettingsPath != "" {
		settings, err = config.LoadFromFile(sCfg.SettingsPath)
		if err != nil {
			slog.Error("Failed to load tag cloud settings", "path", sCfg.SettingsPath, "error", err)
			os.Exit(1)
		}
		slog.Info("Loaded tag cloud settings", "path", sCfg.SettingsPath)
	}

	s := server.New(sCfg, pkgserver.NewOkHealthChecker()).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Tag Cloud API is running")
	})

	storer := in_mem.NewInMemStorer(sCfg.CloudTTL)
	builder := cloud.NewBuilder(settings.Tokenizer())

	cloudRouter := router.NewCloudRouter(s.Echo, builder, storer,
		router.WithHTMLOptions(settings.HTMLOptions()),
		router.WithDefaultWords(settings.Words),
	)
	cloudRouter.Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...", "cached_clouds", storer.Len())
	}()

	slog.Info("Starting server", "port", sCfg.Port, "cloud_ttl", sCfg.CloudTTL)
	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
