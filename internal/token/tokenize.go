package token

import "strings"

// CJK Unified Ideographs; each one is a word of its own in space-free text.
const (
	cjkLo = '一'
	cjkHi = '鿿'
)

func isCJK(r rune) bool { return r >= cjkLo && r <= cjkHi }

// Tokenize splits text into ordered tokens. spaceFree selects the scanning
// mode; both modes produce the same token vocabulary downstream (words,
// single punctuation characters, bracketed placeholders).
func Tokenize(text string, spaceFree bool) []string {
	if spaceFree {
		return tokenizeSpaceFree(text)
	}
	return tokenizeWhitespace(text)
}

func tokenizeWhitespace(text string) []string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil
	}
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, splitTrailingPunct(f)...)
	}
	return out
}

func tokenizeSpaceFree(text string) []string {
	var out []string
	runes := []rune(text)
	n := len(runes)
	i := 0
	for i < n {
		r := runes[i]
		if r == '[' {
			j := indexRune(runes, ']', i+1)
			if j == -1 {
				// unterminated bracket: absorb the remainder whole
				out = append(out, string(runes[i:]))
				break
			}
			out = append(out, string(runes[i:j+1]))
			i = j + 1
			continue
		}
		if isCJK(r) {
			out = append(out, string(r))
			i++
			continue
		}
		j := i
		for j < n && runes[j] != '[' && !isCJK(runes[j]) {
			j++
		}
		out = append(out, splitTrailingPunct(string(runes[i:j]))...)
		i = j
	}
	filtered := out[:0]
	for _, t := range out {
		if t != "" {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

func indexRune(runes []rune, want rune, from int) int {
	for i := from; i < len(runes); i++ {
		if runes[i] == want {
			return i
		}
	}
	return -1
}
