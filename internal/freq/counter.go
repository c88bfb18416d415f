package freq

// Map holds the number of occurrences of every distinct word.
type Map map[string]int

// Pair is a single word with its occurrence count.
type Pair struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Count tallies words, inserting each word with count 1 on first occurrence.
func Count(words []string) Map {
	m := make(Map)
	for _, w := range words {
		m[w]++
	}
	return m
}

// Len is the vocabulary size.
func (m Map) Len() int {
	return len(m)
}

// Total is the sum of all counts, equal to the number of words counted.
func (m Map) Total() int {
	total := 0
	for _, c := range m {
		total += c
	}
	return total
}

// Pairs returns every entry of the map. Order is unspecified.
func (m Map) Pairs() []Pair {
	pairs := make([]Pair, 0, len(m))
	for w, c := range m {
		pairs = append(pairs, Pair{Word: w, Count: c})
	}
	return pairs
}
