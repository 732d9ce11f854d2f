// lexcheck inspects lexicon material from the command line: per-language
// stats for a set, word frequencies of a text file, and the segmentation
// ambiguities a space-free rendering would hit.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/kalama/transcriber/internal/analysis"
	"github.com/kalama/transcriber/internal/lexicon"
	"github.com/kalama/transcriber/internal/wordlist"
)

func main() {
	var (
		dataDir  = flag.String("data", ".", "directory holding lang_*.csv files")
		wordsDir = flag.String("words", "", "directory of per-word TOML metadata")
		textFile = flag.String("freq", "", "text file to run word-frequency analysis on")
		ambigK   = flag.Int("ambig", 0, "scan word concatenations of this length for ambiguity")
		topN     = flag.Int("top", 20, "number of frequency entries to print")
	)
	flag.Parse()

	if *textFile != "" {
		raw, err := os.ReadFile(*textFile)
		if err != nil {
			log.Fatalf("read %s: %v", *textFile, err)
		}
		for _, c := range analysis.Top(analysis.Frequencies(string(raw)), *topN) {
			fmt.Printf("%6d  %s\n", c.Count, c.Word)
		}
		return
	}

	if *ambigK > 0 {
		words := ambiguityWords(*wordsDir, *dataDir)
		for _, amb := range analysis.Ambiguities(words, *ambigK) {
			fmt.Printf("%s:", amb.Joined)
			for _, r := range amb.Readings {
				fmt.Printf("  [%s]", r)
			}
			fmt.Println()
		}
		return
	}

	sets, err := lexicon.LoadDir(*dataDir)
	if err != nil {
		log.Fatalf("load language sets: %v", err)
	}
	for _, name := range sets.Names() {
		text, _ := sets.Text(name)
		table, err := lexicon.ParseTable(text)
		if err != nil {
			fmt.Printf("%s: %v\n", name, err)
			continue
		}
		sf := lexicon.SpaceFreeColumns(table)
		fmt.Printf("%s: %d rows\n", name, len(table.Rows))
		for j, lang := range table.Header {
			filled := 0
			for _, row := range table.Rows {
				if row[j] != "" {
					filled++
				}
			}
			note := ""
			if sf.Has(lang) {
				note = " (space-free)"
			}
			fmt.Printf("  %-24s %d/%d lexemes%s\n", lang, filled, len(table.Rows), note)
		}
	}
}

// ambiguityWords prefers the curated word list; without one it falls back
// to the first whitespace-delimited column of the first language set.
func ambiguityWords(wordsDir, dataDir string) []string {
	if wordsDir != "" {
		list, err := wordlist.LoadDir(wordsDir, wordlist.UsageWidespread)
		if err != nil {
			log.Fatalf("load word list: %v", err)
		}
		out := make([]string, 0, len(list))
		for _, w := range list {
			out = append(out, w.Word)
		}
		return out
	}

	sets, err := lexicon.LoadDir(dataDir)
	if err != nil {
		log.Fatalf("load language sets: %v", err)
	}
	text, _ := sets.Text(sets.First())
	table, err := lexicon.ParseTable(text)
	if err != nil {
		log.Fatalf("parse %s: %v", sets.First(), err)
	}
	sf := lexicon.SpaceFreeColumns(table)
	col := 0
	for j, lang := range table.Header {
		if !sf.Has(lang) {
			col = j
			break
		}
	}
	seen := make(map[string]bool)
	var out []string
	for _, row := range table.Rows {
		if w := row[col]; w != "" && !seen[w] {
			seen[w] = true
			out = append(out, w)
		}
	}
	return out
}
