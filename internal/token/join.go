package token

import "strings"

// Join renders tokens back to pane text; the designed inverse of Tokenize.
// Space-free languages concatenate with no separator. Otherwise words are
// separated by single spaces and punctuation attaches to the preceding
// token. Text already in canonical form round-trips unchanged.
func Join(tokens []string, spaceFree bool) string {
	if spaceFree {
		return strings.Join(tokens, "")
	}
	var b strings.Builder
	lastWasSpace := true
	for i, tok := range tokens {
		if IsPunct(tok) {
			b.WriteString(tok)
			lastWasSpace = false
			if i != len(tokens)-1 {
				b.WriteString(" ")
				lastWasSpace = true
			}
			continue
		}
		if b.Len() > 0 && !lastWasSpace {
			b.WriteString(" ")
		}
		b.WriteString(tok)
		lastWasSpace = strings.HasSuffix(tok, " ")
	}
	return strings.TrimSpace(b.String())
}
