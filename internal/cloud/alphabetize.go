package cloud

import (
	"cmp"
	"slices"
	"strings"
)

// Alphabetize returns a copy of entries ordered by case-insensitive word.
// Words equal under case folding fall back to byte order.
func Alphabetize(entries []Entry) []Entry {
	out := slices.Clone(entries)
	slices.SortStableFunc(out, byWordFold)
	return out
}

func byWordFold(a, b Entry) int {
	if c := strings.Compare(strings.ToLower(a.Word), strings.ToLower(b.Word)); c != 0 {
		return c
	}
	return cmp.Compare(a.Word, b.Word)
}
