package engine

import (
	"github.com/kalama/transcriber/internal/lexicon"
	"github.com/kalama/transcriber/internal/token"
)

// Mapper performs exact token translation against the active forward index.
// Punctuation maps to itself in every language.
type Mapper struct {
	index lexicon.ForwardIndex
}

// MapExact translates tok from srcLang to dstLang. The second return is
// false when the lexicon has no entry (or an empty cell) for the pair.
func (m Mapper) MapExact(srcLang, dstLang, tok string) (string, bool) {
	if token.IsPunct(tok) {
		return tok, true
	}
	return m.index.Translate(srcLang, tok, dstLang)
}

// HasExactMapping reports whether tok is known at all for lang: punctuation
// always is; otherwise tok must appear as a source key, independent of
// whether every destination carries a value for it.
func (m Mapper) HasExactMapping(lang, tok string) bool {
	if token.IsPunct(tok) {
		return true
	}
	return m.index.Knows(lang, tok)
}

// translateToken applies the bracket policy for a single source token:
// punctuation passes through; a bracketed placeholder's interior is
// translated and unwrapped on success, kept bracketed on failure; a plain
// token is translated or bracketed. Unresolved tokens are surfaced, never
// dropped.
func (m Mapper) translateToken(srcLang, dstLang, tok string) string {
	switch {
	case token.IsPunct(tok):
		return tok
	case token.IsBracketed(tok):
		inner := token.Interior(tok)
		if mapped, ok := m.MapExact(srcLang, dstLang, inner); ok {
			return mapped
		}
		return token.Bracket(inner)
	default:
		if mapped, ok := m.MapExact(srcLang, dstLang, tok); ok {
			return mapped
		}
		return token.Bracket(tok)
	}
}
