package freq

import (
	"testing"

	"github.com/DjordjeVuckovic/tag-cloud/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCount(t *testing.T) {
	words := []string{"the", "cat", "sat", "on", "the", "mat", "the", "cat", "ran"}

	m := Count(words)

	assert.Equal(t, Map{"the": 3, "cat": 2, "sat": 1, "on": 1, "mat": 1, "ran": 1}, m)
	assert.Equal(t, 6, m.Len())
	assert.Equal(t, len(words), m.Total())
}

func TestCount_Empty(t *testing.T) {
	m := Count(nil)

	assert.NotNil(t, m)
	assert.Zero(t, m.Len())
	assert.Zero(t, m.Total())
	assert.Empty(t, m.Pairs())
}

func TestCount_TotalMatchesTokenizer(t *testing.T) {
	texts := []string{
		"",
		"one",
		"A man, a plan, a canal: Panama!",
		"It was the best of times,\nit was the worst of times.\n\n(Dickens)",
	}

	tk := token.NewWordTokenizer()
	for _, text := range texts {
		words, err := tk.WordsFromString(text)
		require.NoError(t, err)
		m := Count(words)
		assert.Equal(t, len(words), m.Total(), "text %q", text)
	}
}

func TestMap_Pairs(t *testing.T) {
	m := Map{"a": 2, "b": 1}

	assert.ElementsMatch(t, []Pair{{Word: "a", Count: 2}, {Word: "b", Count: 1}}, m.Pairs())
}
