package lexicon

import "testing"

func mustTable(t *testing.T, text string) *Table {
	t.Helper()
	table, err := ParseTable(text)
	if err != nil {
		t.Fatalf("ParseTable: %v", err)
	}
	return table
}

func TestBuildIndexTranslate(t *testing.T) {
	table := mustTable(t, sampleCSV)
	idx := BuildIndex(table)

	got, ok := idx.Translate("toki pona", "mi", "漢字")
	if !ok || got != "我" {
		t.Fatalf("mi -> 漢字 = %q, %v", got, ok)
	}
	// reverse direction comes from the same rows
	got, ok = idx.Translate("english", "know", "toki pona")
	if !ok || got != "sona" {
		t.Fatalf("know -> toki pona = %q, %v", got, ok)
	}
	// self mapping exists for lookup symmetry
	got, ok = idx.Translate("toki pona", "ni", "toki pona")
	if !ok || got != "ni" {
		t.Fatalf("ni -> ni = %q, %v", got, ok)
	}
}

func TestTranslateEmptyCellIsUnmapped(t *testing.T) {
	table := mustTable(t, sampleCSV)
	idx := BuildIndex(table)

	// row "e,," has no 漢字 lexeme
	if _, ok := idx.Translate("toki pona", "e", "漢字"); ok {
		t.Fatal("empty destination cell must read as unmapped")
	}
	if !idx.Knows("toki pona", "e") {
		t.Fatal("e is still a known source word")
	}
}

func TestTranslateUnknownWord(t *testing.T) {
	idx := BuildIndex(mustTable(t, sampleCSV))
	if _, ok := idx.Translate("toki pona", "xyz", "english"); ok {
		t.Fatal("unknown word must be unmapped")
	}
	if idx.Knows("toki pona", "xyz") {
		t.Fatal("unknown word must not be known")
	}
}

func TestBuildIndexLastRowWins(t *testing.T) {
	table := mustTable(t, "a,b\nword,first\nword,second\n")
	idx := BuildIndex(table)
	got, ok := idx.Translate("a", "word", "b")
	if !ok || got != "second" {
		t.Fatalf("homonym resolution = %q, want last row to win", got)
	}
}

func TestSpaceFreeColumns(t *testing.T) {
	sf := SpaceFreeColumns(mustTable(t, sampleCSV))
	if !sf.Has("漢字") {
		t.Fatal("漢字 column is single code point per lexeme")
	}
	if sf.Has("toki pona") || sf.Has("english") {
		t.Fatal("multi-letter columns are not space-free")
	}
}

func TestSpaceFreeCountsCodePointsNotBytes(t *testing.T) {
	// 我 is three UTF-8 bytes but one code point
	sf := SpaceFreeColumns(mustTable(t, "a,b\nx,我\ny,言\n"))
	if !sf.Has("b") {
		t.Fatal("classification must count code points, not bytes")
	}
}

func TestSpaceFreeEmptyColumnQualifies(t *testing.T) {
	sf := SpaceFreeColumns(mustTable(t, "a,b\nword,\n"))
	if !sf.Has("b") {
		t.Fatal("a column with no lexemes qualifies vacuously")
	}
}
