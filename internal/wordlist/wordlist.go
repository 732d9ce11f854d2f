// Package wordlist loads word-metadata files: one TOML file per word with a
// usage category, used by the analysis tools to scope scans to words people
// actually use.
package wordlist

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
)

// Usage orders words from most to least established.
type Usage int

const (
	UsageUnknown Usage = iota
	UsageObscure
	UsageRare
	UsageUncommon
	UsageCommon
	UsageWidespread
	UsageCore
)

var usageNames = map[string]Usage{
	"core":       UsageCore,
	"widespread": UsageWidespread,
	"common":     UsageCommon,
	"uncommon":   UsageUncommon,
	"rare":       UsageRare,
	"obscure":    UsageObscure,
}

func (u Usage) String() string {
	for name, v := range usageNames {
		if v == u {
			return name
		}
	}
	return "unknown"
}

// Word is one lexicon entry with its usage category.
type Word struct {
	Word  string
	Usage Usage
}

type wordFile struct {
	Word          string `toml:"word"`
	UsageCategory string `toml:"usage_category"`
}

// LoadFile reads a single word TOML file.
func LoadFile(path string) (Word, error) {
	var wf wordFile
	if _, err := toml.DecodeFile(path, &wf); err != nil {
		return Word{}, fmt.Errorf("decode %s: %w", path, err)
	}
	if wf.Word == "" {
		return Word{}, fmt.Errorf("decode %s: missing word", path)
	}
	return Word{Word: wf.Word, Usage: usageNames[wf.UsageCategory]}, nil
}

// LoadDir reads every *.toml file under dir and keeps words at or above
// minUsage, sorted by word. Fails when the directory holds no word files.
func LoadDir(dir string, minUsage Usage) ([]Word, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.toml"))
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no word files in %s", dir)
	}
	var words []Word
	for _, path := range matches {
		w, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		if w.Usage >= minUsage {
			words = append(words, w)
		}
	}
	sort.Slice(words, func(i, j int) bool { return words[i].Word < words[j].Word })
	return words, nil
}

// Exists reports whether dir holds any word metadata files.
func Exists(dir string) bool {
	matches, err := filepath.Glob(filepath.Join(dir, "*.toml"))
	return err == nil && len(matches) > 0
}
