package config

import (
	"fmt"
	"os"

	"github.com/DjordjeVuckovic/tag-cloud/internal/apperr"
	"github.com/DjordjeVuckovic/tag-cloud/internal/render"
	"github.com/DjordjeVuckovic/tag-cloud/internal/token"
	"gopkg.in/yaml.v3"
)

func Default() *Settings {
	seps := token.DefaultSeparators
	return &Settings{
		Separators: &seps,
		Stylesheet: render.DefaultStylesheet,
		Font: FontRange{
			Min: render.FontMin,
			Max: render.FontMax,
		},
	}
}

func LoadFromFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings file: %w", err)
	}
	return Parse(data)
}

// Parse reads YAML settings on top of Default. Fields missing from data keep their defaults.
func Parse(data []byte) (*Settings, error) {
	s := Default()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, apperr.NewValidationWrap("parse settings YAML", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Settings) Validate() error {
	if s.Separators == nil || *s.Separators == "" {
		return apperr.NewValidation("separators must not be empty")
	}
	if s.Words < 0 {
		return apperr.NewValidation(fmt.Sprintf("words must not be negative, got %d", s.Words))
	}
	if err := s.HTMLOptions().Validate(); err != nil {
		return err
	}
	return nil
}

// HTMLOptions returns the render options with the same defaults render.HTML applies.
func (s *Settings) HTMLOptions() render.HTMLOptions {
	return render.HTMLOptions{
		Stylesheet: s.Stylesheet,
		FontMin:    s.Font.Min,
		FontMax:    s.Font.Max,
	}.WithDefaults()
}

// Tokenizer builds a word tokenizer with the configured separators and filters.
func (s *Settings) Tokenizer() *token.WordTokenizer {
	opts := []token.WordTokenizerOption{
		token.WithSeparators(token.NewSeparatorSet(*s.Separators)),
	}
	if len(s.Filters.StopWords) > 0 {
		opts = append(opts, token.WithFilters(token.NewStopWords(s.Filters.StopWords)))
	}
	if s.Filters.Stem {
		opts = append(opts, token.WithFilters(token.NewStemmer(false)))
	}
	return token.NewWordTokenizer(opts...)
}
