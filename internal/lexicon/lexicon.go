package lexicon

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoLanguageSets means no language set was supplied at all. Fatal at
// startup: there is no sensible default lexicon to synthesize.
var ErrNoLanguageSets = errors.New("no language sets available")

// ErrEmptyLexicon means a set parsed to a header but zero usable rows.
var ErrEmptyLexicon = errors.New("lexicon has no data rows")

// Table is a parsed lexicon: an ordered header of language names and the
// aligned lexeme rows. Rows are never mutated after parsing; a language-set
// switch replaces the whole table.
type Table struct {
	Header []string
	Rows   [][]string
}

// ParseTable parses raw CSV text into a Table. The first record is the
// header; blank rows are ignored; short rows are padded so every row aligns
// with the header. Returns ErrEmptyLexicon when no data rows survive.
func ParseTable(text string) (*Table, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	records, err := readAll(r)
	if err != nil {
		return nil, fmt.Errorf("parse lexicon csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyLexicon
	}

	header := make([]string, 0, len(records[0]))
	for _, h := range records[0] {
		header = append(header, strings.TrimSpace(h))
	}

	rows := make([][]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make([]string, len(header))
		blank := true
		for i := range header {
			if i < len(rec) {
				row[i] = strings.TrimSpace(rec[i])
			}
			if row[i] != "" {
				blank = false
			}
		}
		if blank {
			continue
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyLexicon
	}
	return &Table{Header: header, Rows: rows}, nil
}

func readAll(r *csv.Reader) ([][]string, error) {
	var out [][]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
}

// HasLanguage reports whether name is a header column.
func (t *Table) HasLanguage(name string) bool {
	for _, h := range t.Header {
		if h == name {
			return true
		}
	}
	return false
}
