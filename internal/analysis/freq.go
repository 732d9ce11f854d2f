// Package analysis holds the offline text tools: word-frequency counting
// and the space-free segmentation ambiguity scan.
package analysis

import (
	"sort"
	"strings"
	"unicode"
)

// WordCount is one entry of a frequency table.
type WordCount struct {
	Word  string
	Count int
}

// Frequencies counts word occurrences in text. Everything that is not a
// letter or whitespace is dropped before splitting, so "toki." and "toki"
// count together. Results are sorted by descending count, ties by word.
func Frequencies(text string) []WordCount {
	var b strings.Builder
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	counts := make(map[string]int)
	for _, w := range strings.Fields(b.String()) {
		counts[w]++
	}
	out := make([]WordCount, 0, len(counts))
	for w, c := range counts {
		out = append(out, WordCount{Word: w, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Word < out[j].Word
	})
	return out
}

// Top returns at most n entries from counts.
func Top(counts []WordCount, n int) []WordCount {
	if n < len(counts) {
		return counts[:n]
	}
	return counts
}
