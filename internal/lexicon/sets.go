package lexicon

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Sets is the ordered collection of language sets: display name -> raw CSV
// text. Exactly one set is active at a time; activation is the engine's job.
type Sets struct {
	names []string
	texts map[string]string
}

// NewSets builds a collection from parallel names/texts. Order is preserved.
// Returns ErrNoLanguageSets when empty.
func NewSets(names []string, texts map[string]string) (*Sets, error) {
	if len(names) == 0 {
		return nil, ErrNoLanguageSets
	}
	return &Sets{names: names, texts: texts}, nil
}

// LoadDir discovers language sets from lang_*.csv files under dir, sorted
// case-insensitively by file name. A set's display name is its header line.
// Empty files are skipped. Returns ErrNoLanguageSets when nothing usable is
// found.
func LoadDir(dir string) (*Sets, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "lang_*.csv"))
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	sort.Slice(matches, func(i, j int) bool {
		return strings.ToLower(filepath.Base(matches[i])) < strings.ToLower(filepath.Base(matches[j]))
	})

	s := &Sets{texts: make(map[string]string)}
	for _, path := range matches {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		text := strings.TrimSpace(string(raw))
		if text == "" {
			continue
		}
		name := strings.TrimSpace(strings.SplitN(text, "\n", 2)[0])
		if _, exists := s.texts[name]; !exists {
			s.names = append(s.names, name)
		}
		s.texts[name] = text
	}
	if len(s.names) == 0 {
		return nil, ErrNoLanguageSets
	}
	return s, nil
}

// Names returns the set names in discovery order.
func (s *Sets) Names() []string { return s.names }

// First returns the first set name.
func (s *Sets) First() string { return s.names[0] }

// Text returns the raw CSV for a named set.
func (s *Sets) Text(name string) (string, bool) {
	t, ok := s.texts[name]
	return t, ok
}
