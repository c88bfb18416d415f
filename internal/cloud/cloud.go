package cloud

import (
	"fmt"
	"io"
	"strings"

	"github.com/DjordjeVuckovic/tag-cloud/internal/apperr"
	"github.com/DjordjeVuckovic/tag-cloud/internal/freq"
	"github.com/DjordjeVuckovic/tag-cloud/internal/token"
)

// Cloud is the result of the whole pipeline, ready to render.
type Cloud struct {
	Name string `json:"name"`
	Size int    `json:"size"`
	// Entries are in alphabetical order.
	Entries []Entry `json:"entries"`
	// Ranked holds the same entries by count descending.
	Ranked     []Entry `json:"-"`
	MinCount   int     `json:"min_count"`
	MaxCount   int     `json:"max_count"`
	TotalWords int     `json:"total_words"`
	Vocabulary int     `json:"vocabulary"`
}

type Builder struct {
	tokenizer token.Tokenizer
}

// NewBuilder returns a Builder reading words through tokenizer, or through a
// default WordTokenizer when tokenizer is nil.
func NewBuilder(tokenizer token.Tokenizer) *Builder {
	if tokenizer == nil {
		tokenizer = token.NewWordTokenizer()
	}
	return &Builder{tokenizer: tokenizer}
}

// Build tokenizes r, counts the words and selects the n most frequent ones.
// name identifies the source in the rendered document.
func (b *Builder) Build(name string, r io.Reader, n int) (*Cloud, error) {
	if n <= 0 {
		return nil, apperr.NewValidation("word count must be positive")
	}

	words, err := b.tokenizer.Words(r)
	if err != nil {
		return nil, fmt.Errorf("tokenize %s: %w", name, err)
	}

	counts := freq.Count(words)
	if counts.Len() == 0 {
		return nil, apperr.NewValidation("input contains no words")
	}

	sel, err := Select(counts, n)
	if err != nil {
		return nil, err
	}

	return &Cloud{
		Name:       name,
		Size:       n,
		Entries:    Alphabetize(sel.Entries),
		Ranked:     sel.Entries,
		MinCount:   sel.MinCount,
		MaxCount:   sel.MaxCount,
		TotalWords: len(words),
		Vocabulary: counts.Len(),
	}, nil
}

func (b *Builder) BuildString(name, text string, n int) (*Cloud, error) {
	return b.Build(name, strings.NewReader(text), n)
}
