package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/tag-cloud/internal/cloud"
	"github.com/DjordjeVuckovic/tag-cloud/internal/config"
	"github.com/DjordjeVuckovic/tag-cloud/internal/render"
	"github.com/DjordjeVuckovic/tag-cloud/pkg/config/env"
)

func main() {
	if err := env.LoadDotEnv(".env"); err != nil {
		slog.Debug("Skipping .env ...", "error", err)
	}

	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}
	if cfg.Verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	if err := run(cfg, os.Stdin, os.Stdout); err != nil {
		slog.Error("Failed to generate tag cloud", "error", err)
		os.Exit(1)
	}
}

func run(cfg cliConfig, stdin io.Reader, stdout io.Writer) error {
	settings := config.Default()
	if cfg.SettingsPath != "" {
		s, err := config.LoadFromFile(cfg.SettingsPath)
		if err != nil {
			return fmt.Errorf("load settings: %w", err)
		}
		settings = s
		slog.Info("Loaded tag cloud settings", "path", cfg.SettingsPath)
	}
	if cfg.Words == 0 {
		cfg.Words = settings.Words
	}

	if err := newPrompter(stdin, stdout).fill(&cfg); err != nil {
		return err
	}

	in, err := os.Open(cfg.InPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	tc, err := cloud.NewBuilder(settings.Tokenizer()).Build(cfg.InPath, in, cfg.Words)
	if err != nil {
		return err
	}
	slog.Debug("Built tag cloud", "words", tc.TotalWords, "vocabulary", tc.Vocabulary, "min", tc.MinCount, "max", tc.MaxCount)

	// render fully before touching the output path so failures leave no partial file
	var buf bytes.Buffer
	if err := render.HTML(&buf, tc, settings.HTMLOptions()); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	if err := os.WriteFile(cfg.OutPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	slog.Info("Wrote tag cloud", "path", cfg.OutPath, "words", tc.Size)

	if cfg.JSONPath != "" {
		if err := render.WriteJSON(render.NewReport(tc, cfg.OutPath, settings.HTMLOptions()), cfg.JSONPath); err != nil {
			return err
		}
		slog.Info("Wrote JSON report", "path", cfg.JSONPath)
	}

	if cfg.Summary {
		render.WriteTable(tc, stdout, settings.HTMLOptions())
	}

	return nil
}
