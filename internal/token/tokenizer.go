package token

import "io"

// Tokenizer splits lines into tokens and reads the word sequence of a whole input.
type Tokenizer interface {
	Tokenize(input string) []Token
	Words(r io.Reader) ([]string, error)
}

// Filter transforms the word sequence produced by a tokenizer.
// Implementations must return a new slice and leave the input untouched.
type Filter interface {
	Apply(words []string) []string
}

type FilterFunc func(words []string) []string

func (f FilterFunc) Apply(words []string) []string {
	return f(words)
}
