package token

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

const maxLineSize = 1024 * 1024

// WordTokenizer splits text into alternating word and separator runs.
// Words are lower-cased before they are emitted.
type WordTokenizer struct {
	separators SeparatorSet
	filters    []Filter
}

type WordTokenizerOption func(*WordTokenizer)

func WithSeparators(set SeparatorSet) WordTokenizerOption {
	return func(t *WordTokenizer) {
		t.separators = set
	}
}

func WithFilters(filters ...Filter) WordTokenizerOption {
	return func(t *WordTokenizer) {
		t.filters = append(t.filters, filters...)
	}
}

func NewWordTokenizer(opts ...WordTokenizerOption) *WordTokenizer {
	t := &WordTokenizer{separators: DefaultSeparatorSet()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *WordTokenizer) Separators() SeparatorSet {
	return t.separators
}

// NextWordOrSeparator returns the maximal substring of text starting at byte offset pos
// whose characters all share the separator membership of the character at pos.
// It panics unless 0 <= pos < len(text).
func (t *WordTokenizer) NextWordOrSeparator(text string, pos int) string {
	if pos < 0 || pos >= len(text) {
		panic(fmt.Sprintf("token: position %d out of range [0,%d)", pos, len(text)))
	}

	first, size := utf8.DecodeRuneInString(text[pos:])
	isSep := t.separators.Contains(first)

	end := pos + size
	for end < len(text) {
		r, n := utf8.DecodeRuneInString(text[end:])
		if t.separators.Contains(r) != isSep {
			break
		}
		end += n
	}

	return text[pos:end]
}

// Tokenize converts a single line into word and separator tokens.
// Example: Input: `The cat, sat.` -> WORD(the) SEPARATOR( ) WORD(cat) SEPARATOR(, ) WORD(sat) SEPARATOR(.)
func (t *WordTokenizer) Tokenize(input string) []Token {
	line := strings.ToLower(input)

	var tokens []Token
	for pos := 0; pos < len(line); {
		run := t.NextWordOrSeparator(line, pos)
		pos += len(run)

		r, _ := utf8.DecodeRuneInString(run)
		if t.separators.Contains(r) {
			tokens = append(tokens, Token{Type: SEPARATOR, Value: run})
			continue
		}
		tokens = append(tokens, Token{Type: WORD, Value: run})
	}

	return tokens
}

// Words reads r line by line and returns every word run in order, after the configured filters.
func (t *WordTokenizer) Words(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var words []string
	for scanner.Scan() {
		for _, tok := range t.Tokenize(scanner.Text()) {
			if tok.IsWord() {
				words = append(words, tok.Value)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan input: %w", err)
	}

	for _, f := range t.filters {
		words = f.Apply(words)
	}

	return words, nil
}

// WordsFromString is Words for in-memory text. It fails on lines longer than 1 MiB.
func (t *WordTokenizer) WordsFromString(text string) ([]string, error) {
	return t.Words(strings.NewReader(text))
}
