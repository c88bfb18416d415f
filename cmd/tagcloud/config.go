package main

import (
	"flag"
	"io"

	"github.com/DjordjeVuckovic/tag-cloud/pkg/config/env"
)

type cliConfig struct {
	InPath       string
	OutPath      string
	Words        int
	SettingsPath string
	JSONPath     string
	Summary      bool
	Verbose      bool
}

func parseFlags(args []string, output io.Writer) (cliConfig, error) {
	cfg := cliConfig{}

	fs := flag.NewFlagSet("tagcloud", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&cfg.InPath, "in", "", "Path to the input text file (prompted when empty)")
	fs.StringVar(&cfg.OutPath, "out", "", "Path of the HTML file to write (prompted when empty)")
	fs.IntVar(&cfg.Words, "n", 0, "Number of words in the tag cloud (prompted when zero and not set in -config)")
	fs.StringVar(&cfg.SettingsPath, "config", env.String("TAGCLOUD_CONFIG", ""), "Path to tag cloud settings YAML")
	fs.StringVar(&cfg.JSONPath, "json", "", "Optional path for a JSON report of the cloud")
	fs.BoolVar(&cfg.Summary, "summary", true, "Print a summary table to stdout")
	fs.BoolVar(&cfg.Verbose, "v", false, "Enable debug logging")

	if err := fs.Parse(args); err != nil {
		return cliConfig{}, err
	}
	return cfg, nil
}
