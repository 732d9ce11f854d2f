package analysis

import (
	"reflect"
	"testing"
)

func TestFrequencies(t *testing.T) {
	got := Frequencies("mi toki. mi sona! mi")
	want := []WordCount{
		{Word: "mi", Count: 3},
		{Word: "sona", Count: 1},
		{Word: "toki", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Frequencies = %v, want %v", got, want)
	}
}

func TestFrequenciesStripsNonLetters(t *testing.T) {
	got := Frequencies("toki! toki? 123 to-ki")
	// punctuation, digits and dashes vanish; "toki" and "toki" merge,
	// "to-ki" collapses to "toki" too
	if len(got) != 1 || got[0] != (WordCount{Word: "toki", Count: 3}) {
		t.Fatalf("Frequencies = %v", got)
	}
}

func TestFrequenciesEmpty(t *testing.T) {
	if got := Frequencies("?! 42"); len(got) != 0 {
		t.Fatalf("Frequencies = %v", got)
	}
}

func TestTop(t *testing.T) {
	counts := []WordCount{{"a", 3}, {"b", 2}, {"c", 1}}
	if got := Top(counts, 2); len(got) != 2 || got[1].Word != "b" {
		t.Fatalf("Top = %v", got)
	}
	if got := Top(counts, 10); len(got) != 3 {
		t.Fatalf("Top = %v", got)
	}
}
