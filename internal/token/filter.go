package token

import (
	"strings"

	snowballeng "github.com/kljensen/snowball/english"
)

// StopWords drops every word present in the list. Matching is case-insensitive
// since the tokenizer already lower-cases its output.
type StopWords struct {
	words map[string]struct{}
}

func NewStopWords(words []string) *StopWords {
	sw := &StopWords{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		sw.words[strings.ToLower(w)] = struct{}{}
	}
	return sw
}

func (sw *StopWords) Apply(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if _, ok := sw.words[w]; ok {
			continue
		}
		out = append(out, w)
	}
	return out
}

// Stemmer reduces words to their snowball English stem.
type Stemmer struct {
	stemStopWords bool
}

func NewStemmer(stemStopWords bool) *Stemmer {
	return &Stemmer{stemStopWords: stemStopWords}
}

func (s *Stemmer) Apply(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if stem := snowballeng.Stem(w, s.stemStopWords); stem != "" {
			out = append(out, stem)
		}
	}
	return out
}
