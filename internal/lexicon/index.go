package lexicon

// ForwardIndex is the exact word lookup: source language -> source word ->
// destination language -> destination word. Cells may be empty strings; an
// empty destination means "no lexeme", which callers treat as unmapped.
type ForwardIndex map[string]map[string]map[string]string

// Translate returns the destination word for (srcLang, word, dstLang).
// The second return is false when any level of the index is missing or the
// stored value is empty.
func (f ForwardIndex) Translate(srcLang, word, dstLang string) (string, bool) {
	entry, ok := f[srcLang][word]
	if !ok {
		return "", false
	}
	out, ok := entry[dstLang]
	if !ok || out == "" {
		return "", false
	}
	return out, true
}

// Knows reports whether word appears as a source key for lang, regardless of
// which destinations carry a value for it.
func (f ForwardIndex) Knows(lang, word string) bool {
	_, ok := f[lang][word]
	return ok
}

// SpaceFreeSet holds the languages written without inter-word spaces.
type SpaceFreeSet map[string]bool

// Has reports whether lang is space-free.
func (s SpaceFreeSet) Has(lang string) bool { return s[lang] }

// BuildIndex scans every row of the table and records, for each non-empty
// cell, the full row as that word's translations. When multiple rows define
// the same source word, later rows win per destination language (table scan
// order; homonym behavior is last-write-wins).
func BuildIndex(t *Table) ForwardIndex {
	forward := make(ForwardIndex, len(t.Header))
	for _, name := range t.Header {
		forward[name] = make(map[string]map[string]string)
	}
	for _, row := range t.Rows {
		for iFrom, langFrom := range t.Header {
			src := row[iFrom]
			if src == "" {
				continue
			}
			entry, ok := forward[langFrom][src]
			if !ok {
				entry = make(map[string]string, len(t.Header))
				forward[langFrom][src] = entry
			}
			for iTo, langTo := range t.Header {
				entry[langTo] = row[iTo]
			}
		}
	}
	return forward
}

// SpaceFreeColumns classifies each language whose every non-empty lexeme is
// exactly one code point. A column with no lexemes at all qualifies too.
func SpaceFreeColumns(t *Table) SpaceFreeSet {
	sf := make(SpaceFreeSet, len(t.Header))
	for j, name := range t.Header {
		allSingle := true
		for _, row := range t.Rows {
			cell := row[j]
			if cell != "" && len([]rune(cell)) != 1 {
				allSingle = false
				break
			}
		}
		if allSingle {
			sf[name] = true
		}
	}
	return sf
}
