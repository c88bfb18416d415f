package cloud

import (
	"cmp"
	"slices"

	"github.com/DjordjeVuckovic/tag-cloud/internal/apperr"
	"github.com/DjordjeVuckovic/tag-cloud/internal/freq"
)

// Entry is a selected word with its occurrence count.
type Entry = freq.Pair

// Selection holds the N most frequent words, ordered by count descending.
// MinCount and MaxCount are taken from the selected entries only.
type Selection struct {
	Entries  []Entry
	MinCount int
	MaxCount int
}

// Select returns the n highest-count words of m.
// Equal counts are ordered alphabetically so the result is deterministic.
func Select(m freq.Map, n int) (*Selection, error) {
	if n <= 0 {
		return nil, apperr.NewValidation("word count must be positive")
	}
	if n > m.Len() {
		return nil, apperr.NewSize(n, m.Len())
	}

	pairs := m.Pairs()
	slices.SortFunc(pairs, byCountDesc)

	selected := slices.Clone(pairs[:n])

	return &Selection{
		Entries:  selected,
		MaxCount: selected[0].Count,
		MinCount: selected[n-1].Count,
	}, nil
}

func byCountDesc(a, b Entry) int {
	if c := cmp.Compare(b.Count, a.Count); c != 0 {
		return c
	}
	return cmp.Compare(a.Word, b.Word)
}
