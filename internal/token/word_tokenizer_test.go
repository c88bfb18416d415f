package token

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordTokenizer_NextWordOrSeparator(t *testing.T) {
	tk := NewWordTokenizer()

	tests := []struct {
		name string
		text string
		pos  int
		want string
	}{
		{name: "word at start", text: "the cat", pos: 0, want: "the"},
		{name: "separator run", text: "the, cat", pos: 3, want: ", "},
		{name: "word in middle", text: "the, cat", pos: 5, want: "cat"},
		{name: "partial word", text: "the cat", pos: 1, want: "he"},
		{name: "single char", text: "a", pos: 0, want: "a"},
		{name: "separators only", text: " .!? ", pos: 0, want: " .!? "},
		{name: "quote is separator", text: "don't", pos: 3, want: "'"},
		{name: "digits are words", text: "route 66.", pos: 6, want: "66"},
		{name: "multibyte word", text: "café au", pos: 0, want: "café"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tk.NextWordOrSeparator(tt.text, tt.pos))
		})
	}
}

func TestWordTokenizer_NextWordOrSeparator_OutOfRange(t *testing.T) {
	tk := NewWordTokenizer()

	assert.Panics(t, func() { tk.NextWordOrSeparator("abc", 3) })
	assert.Panics(t, func() { tk.NextWordOrSeparator("abc", -1) })
	assert.Panics(t, func() { tk.NextWordOrSeparator("", 0) })
}

func TestWordTokenizer_Tokenize(t *testing.T) {
	tk := NewWordTokenizer()

	tokens := tk.Tokenize("The Cat, sat.")

	expected := []Token{
		{Type: WORD, Value: "the"},
		{Type: SEPARATOR, Value: " "},
		{Type: WORD, Value: "cat"},
		{Type: SEPARATOR, Value: ", "},
		{Type: WORD, Value: "sat"},
		{Type: SEPARATOR, Value: "."},
	}
	assert.Equal(t, expected, tokens)
}

func TestWordTokenizer_Tokenize_RunsRebuildInput(t *testing.T) {
	tk := NewWordTokenizer()
	line := "(hello)  world -- it's [a] test; ok?"

	var sb strings.Builder
	for _, tok := range tk.Tokenize(line) {
		sb.WriteString(tok.Value)
	}

	assert.Equal(t, line, sb.String())
}

func TestWordTokenizer_Words(t *testing.T) {
	t.Run("repeated words", func(t *testing.T) {
		words, err := NewWordTokenizer().Words(strings.NewReader("the cat sat on the mat. the cat ran."))
		require.NoError(t, err)
		assert.Equal(t, []string{"the", "cat", "sat", "on", "the", "mat", "the", "cat", "ran"}, words)
	})

	t.Run("empty lines produce nothing", func(t *testing.T) {
		words, err := NewWordTokenizer().Words(strings.NewReader("\n\n  \n"))
		require.NoError(t, err)
		assert.Empty(t, words)
	})

	t.Run("case folding across lines", func(t *testing.T) {
		words, err := NewWordTokenizer().Words(strings.NewReader("Go\nGO\r\ngo"))
		require.NoError(t, err)
		assert.Equal(t, []string{"go", "go", "go"}, words)
	})

	t.Run("custom separators", func(t *testing.T) {
		tk := NewWordTokenizer(WithSeparators(NewSeparatorSet(" |")))
		words, err := tk.Words(strings.NewReader("a,b|c d"))
		require.NoError(t, err)
		assert.Equal(t, []string{"a,b", "c", "d"}, words)
	})

	t.Run("line too long", func(t *testing.T) {
		_, err := NewWordTokenizer().Words(strings.NewReader(strings.Repeat("x", maxLineSize+1)))
		assert.Error(t, err)
	})
}

func TestWordTokenizer_WordsHaveNoSeparators(t *testing.T) {
	tk := NewWordTokenizer()
	text := "It was the best of times, it was the worst of times;\n(it was) the age-of-wisdom!"

	words, err := tk.WordsFromString(text)
	require.NoError(t, err)
	require.NotEmpty(t, words)

	for _, w := range words {
		assert.NotEmpty(t, w)
		assert.False(t, tk.Separators().ContainsAny(w), "word %q contains a separator", w)
		assert.Equal(t, strings.ToLower(w), w)
	}
}

func TestWordTokenizer_WordsFromString_LineTooLong(t *testing.T) {
	tk := NewWordTokenizer()
	text := "short line\n" + strings.Repeat("y", maxLineSize+1)

	words, err := tk.WordsFromString(text)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "scan input")
	assert.Nil(t, words)
}

func TestWordTokenizer_SatisfiesTokenizer(t *testing.T) {
	var tk Tokenizer = NewWordTokenizer()

	words, err := tk.Words(strings.NewReader("One two, ONE"))

	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "one"}, words)
}

func TestWordTokenizer_Filters(t *testing.T) {
	t.Run("stop words", func(t *testing.T) {
		tk := NewWordTokenizer(WithFilters(NewStopWords([]string{"The", "on"})))
		words, err := tk.WordsFromString("The cat sat on the mat")
		require.NoError(t, err)
		assert.Equal(t, []string{"cat", "sat", "mat"}, words)
	})

	t.Run("stemmer", func(t *testing.T) {
		tk := NewWordTokenizer(WithFilters(NewStemmer(false)))
		words, err := tk.WordsFromString("running runs cats")
		require.NoError(t, err)
		assert.Equal(t, []string{"run", "run", "cat"}, words)
	})

	t.Run("filters run in order", func(t *testing.T) {
		tk := NewWordTokenizer(WithFilters(
			FilterFunc(func(words []string) []string { return append(words, "extra") }),
			NewStopWords([]string{"extra"}),
		))
		words, err := tk.WordsFromString("one")
		require.NoError(t, err)
		assert.Equal(t, []string{"one"}, words)
	})
}

func TestSeparatorSet(t *testing.T) {
	set := DefaultSeparatorSet()

	for _, r := range DefaultSeparators {
		assert.True(t, set.Contains(r), "%q should be a separator", r)
	}
	assert.False(t, set.Contains('a'))
	assert.False(t, set.Contains('é'))
	assert.Equal(t, DefaultSeparators, set.String())

	unicodeSet := NewSeparatorSet("—·")
	assert.True(t, unicodeSet.Contains('—'))
	assert.False(t, unicodeSet.Contains('-'))
	assert.True(t, NewSeparatorSet("").Empty())
}

func TestType_String(t *testing.T) {
	assert.Equal(t, "WORD", WORD.String())
	assert.Equal(t, "SEPARATOR", SEPARATOR.String())
	assert.Equal(t, "UNKNOWN", Type(42).String())
}
