// Package token converts pane text to and from ordered token sequences.
// Tokenization branches on whether the pane's language is space-free
// (single-ideograph lexemes, written without inter-word spaces).
package token

import "strings"

// Punctuation characters split off the tail of a word and travel as
// standalone single-character tokens.
const punctuation = ";:.,?!"

// IsPunct reports whether tok is a single punctuation-set character.
func IsPunct(tok string) bool {
	return len(tok) == 1 && strings.ContainsRune(punctuation, rune(tok[0]))
}

func isPunctRune(r rune) bool {
	return strings.ContainsRune(punctuation, r)
}

// IsBracketed reports whether tok is a placeholder of the form "[inner]"
// with a non-empty inner.
func IsBracketed(tok string) bool {
	return len(tok) > 2 && strings.HasPrefix(tok, "[") && strings.HasSuffix(tok, "]")
}

// Bracket wraps a word in the untranslated-placeholder marker.
func Bracket(word string) string { return "[" + word + "]" }

// Interior returns the payload of a bracketed placeholder.
func Interior(tok string) string { return strings.TrimSuffix(strings.TrimPrefix(tok, "["), "]") }

// splitTrailingPunct peels punctuation off the end of a chunk, one character
// at a time, yielding the head (if any) followed by each punctuation
// character in original order. Bracketed placeholders pass through whole.
func splitTrailingPunct(chunk string) []string {
	if chunk == "" {
		return nil
	}
	if IsBracketed(chunk) {
		return []string{chunk}
	}
	runes := []rune(chunk)
	i := len(runes)
	for i > 0 && isPunctRune(runes[i-1]) {
		i--
	}
	out := make([]string, 0, 1+len(runes)-i)
	if i > 0 {
		out = append(out, string(runes[:i]))
	}
	for _, r := range runes[i:] {
		out = append(out, string(r))
	}
	return out
}
