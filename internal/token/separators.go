package token

import "strings"

// DefaultSeparators are whitespace and the punctuation that delimits words in plain prose.
const DefaultSeparators = "\t\n\r,-.!?[];:/() '"

// SeparatorSet is an immutable set of ASCII or Unicode separator characters.
type SeparatorSet struct {
	chars string
	ascii [128]bool
	other map[rune]struct{}
}

func NewSeparatorSet(chars string) SeparatorSet {
	s := SeparatorSet{chars: chars}
	for _, r := range chars {
		if r < 128 {
			s.ascii[r] = true
			continue
		}
		if s.other == nil {
			s.other = make(map[rune]struct{})
		}
		s.other[r] = struct{}{}
	}
	return s
}

func DefaultSeparatorSet() SeparatorSet {
	return NewSeparatorSet(DefaultSeparators)
}

func (s SeparatorSet) Contains(r rune) bool {
	if r >= 0 && r < 128 {
		return s.ascii[r]
	}
	_, ok := s.other[r]
	return ok
}

// ContainsAny reports whether value holds at least one separator character.
func (s SeparatorSet) ContainsAny(value string) bool {
	return strings.IndexFunc(value, s.Contains) >= 0
}

func (s SeparatorSet) String() string {
	return s.chars
}

func (s SeparatorSet) Empty() bool {
	return s.chars == ""
}
