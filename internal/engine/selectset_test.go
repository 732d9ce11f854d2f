package engine

import (
	"errors"
	"testing"

	"github.com/kalama/transcriber/internal/lexicon"
)

const altCSV = `toki pona,english
mi,I
sona,know
ni,this
kama,come
`

func TestSelectSetRebuildsIndex(t *testing.T) {
	e := newTestEngine(t, mainCSV, altCSV)
	src := addPane(t, e, "toki pona")
	dst := addPane(t, e, "english")
	e.SetPaneText(src.ID, "mi kama")

	// kama exists only in the second set
	if dst.Text != "I [kama]" {
		t.Fatalf("before switch: %q", dst.Text)
	}

	if err := e.SelectSet("B"); err != nil {
		t.Fatalf("SelectSet: %v", err)
	}
	if e.ActiveSet() != "B" {
		t.Fatalf("active = %q", e.ActiveSet())
	}
	if dst.Text != "I come" {
		t.Fatalf("after switch: %q", dst.Text)
	}
}

func TestSelectSetRejectsEmptyLexiconKeepingPrior(t *testing.T) {
	e := newTestEngine(t, mainCSV, "a,b\n")
	src := addPane(t, e, "toki pona")
	dst := addPane(t, e, "english")
	e.SetPaneText(src.ID, "mi")

	err := e.SelectSet("B")
	if !errors.Is(err, lexicon.ErrEmptyLexicon) {
		t.Fatalf("err = %v, want ErrEmptyLexicon", err)
	}
	if e.ActiveSet() != "A" {
		t.Fatalf("active set changed to %q", e.ActiveSet())
	}
	// prior index still in force
	e.SetPaneText(src.ID, "mi sona")
	if dst.Text != "I know" {
		t.Fatalf("prior lexicon lost: %q", dst.Text)
	}
}

func TestSelectSetUnknownName(t *testing.T) {
	e := newTestEngine(t, mainCSV)
	if err := e.SelectSet("nope"); err == nil {
		t.Fatal("unknown set must error")
	}
	if e.ActiveSet() != "A" {
		t.Fatalf("active = %q", e.ActiveSet())
	}
}

func TestSelectSetKeepsExactLabelMatches(t *testing.T) {
	e := newTestEngine(t, mainCSV, altCSV)
	tp := addPane(t, e, "toki pona")
	en := addPane(t, e, "english")

	if err := e.SelectSet("B"); err != nil {
		t.Fatalf("SelectSet: %v", err)
	}
	if tp.Lang != "toki pona" || en.Lang != "english" {
		t.Fatalf("languages remapped away: %s / %s", tp.Lang, en.Lang)
	}
}

func TestSelectSetRemapsToClosestLabel(t *testing.T) {
	e := newTestEngine(t, mainCSV, "toki pona,englisch\nmi,Ich\n")
	en := addPane(t, e, "english")

	if err := e.SelectSet("B"); err != nil {
		t.Fatalf("SelectSet: %v", err)
	}
	if en.Lang != "englisch" {
		t.Fatalf("remap = %q, want closest label englisch", en.Lang)
	}
}

func TestSelectSetDropsVanishedLanguageToClosest(t *testing.T) {
	e := newTestEngine(t, mainCSV, altCSV)
	hanzi := addPane(t, e, "漢字")

	// the second set has no 漢字 column at all
	if err := e.SelectSet("B"); err != nil {
		t.Fatalf("SelectSet: %v", err)
	}
	found := false
	for _, l := range e.Languages() {
		if l == hanzi.Lang {
			found = true
		}
	}
	if !found {
		t.Fatalf("pane bound to vanished language %q", hanzi.Lang)
	}
}
