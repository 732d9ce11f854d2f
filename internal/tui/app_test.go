package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kalama/transcriber/internal/config"
	"github.com/kalama/transcriber/internal/engine"
	"github.com/kalama/transcriber/internal/lexicon"
)

const testCSV = `toki pona,漢字,english
mi,我,I
sona,知,know
e,額,(obj)
ni,這,this
`

func newTestApp(t *testing.T, paneCount int) *App {
	t.Helper()
	sets, err := lexicon.NewSets([]string{"test"}, map[string]string{"test": testCSV})
	if err != nil {
		t.Fatalf("NewSets: %v", err)
	}
	eng, err := engine.New(sets)
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	for i := 0; i < paneCount; i++ {
		if _, err := eng.AddPane(); err != nil {
			t.Fatalf("AddPane: %v", err)
		}
	}
	a := New(context.Background(), config.Config{}, eng, nil)
	a.width, a.height = 120, 40
	a.resize()
	return a
}

func press(t *testing.T, a *App, msg tea.Msg) *App {
	t.Helper()
	next, _ := a.Update(msg)
	got, ok := next.(*App)
	if !ok {
		t.Fatalf("Update returned %T, want *App", next)
	}
	return got
}

func typeText(t *testing.T, a *App, input string) *App {
	t.Helper()
	for _, r := range input {
		a = press(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return a
}

func keyNamed(name string) tea.KeyMsg {
	switch name {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+n":
		return tea.KeyMsg{Type: tea.KeyCtrlN}
	case "ctrl+w":
		return tea.KeyMsg{Type: tea.KeyCtrlW}
	case "ctrl+l":
		return tea.KeyMsg{Type: tea.KeyCtrlL}
	case "ctrl+f":
		return tea.KeyMsg{Type: tea.KeyCtrlF}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}

func TestViewShowsLabelsAndSetName(t *testing.T) {
	a := newTestApp(t, 2)
	view := a.View()
	if !strings.Contains(view, "test") {
		t.Fatalf("view missing set name:\n%s", view)
	}
	if !strings.Contains(view, "toki pona") {
		t.Fatalf("view missing first pane label:\n%s", view)
	}
	if !strings.Contains(view, "(space-free)") {
		t.Fatalf("view missing space-free annotation:\n%s", view)
	}
}

func TestTypingPropagatesToOtherPanes(t *testing.T) {
	a := newTestApp(t, 2)
	a = typeText(t, a, "mi sona e ni.")

	panes := a.eng.Panes()
	if panes[0].Text != "mi sona e ni." {
		t.Fatalf("source pane = %q", panes[0].Text)
	}
	if panes[1].Text != "我知額這." {
		t.Fatalf("destination pane = %q", panes[1].Text)
	}
}

func TestTabCommitsUnknownWords(t *testing.T) {
	a := newTestApp(t, 2)
	a = typeText(t, a, "mi xyz.")
	a = press(t, a, keyNamed("tab"))

	panes := a.eng.Panes()
	if panes[0].Text != "mi [xyz]." {
		t.Fatalf("committed pane = %q", panes[0].Text)
	}
	if panes[1].Text != "我[xyz]." {
		t.Fatalf("destination pane = %q", panes[1].Text)
	}
	if a.focusIdx != 1 {
		t.Fatalf("focus = %d, want 1", a.focusIdx)
	}
}

func TestAddPaneStopsAtLanguageCount(t *testing.T) {
	a := newTestApp(t, 3)
	a = press(t, a, keyNamed("ctrl+n"))
	if len(a.views) != 3 {
		t.Fatalf("views = %d, want add rejected at 3 languages", len(a.views))
	}
	if !a.isErr {
		t.Fatal("expected error status when no language is free")
	}
}

func TestClosePaneKeepsLast(t *testing.T) {
	a := newTestApp(t, 2)
	a = press(t, a, keyNamed("ctrl+w"))
	if len(a.views) != 1 {
		t.Fatalf("views = %d, want 1", len(a.views))
	}
	a = press(t, a, keyNamed("ctrl+w"))
	if len(a.views) != 1 {
		t.Fatalf("views = %d, the last pane must survive", len(a.views))
	}
}

func TestCycleLanguageRebinds(t *testing.T) {
	a := newTestApp(t, 2)
	before := a.eng.Panes()[0].Lang
	a = press(t, a, keyNamed("ctrl+l"))
	after := a.eng.Panes()[0].Lang
	if before == after {
		t.Fatalf("language did not change from %q", before)
	}
}

func TestFrequencyOverlayToggles(t *testing.T) {
	a := newTestApp(t, 2)
	a = typeText(t, a, "mi mi sona")
	a = press(t, a, keyNamed("ctrl+f"))
	if !a.showFreq {
		t.Fatal("overlay should be on")
	}
	view := a.View()
	if !strings.Contains(view, "mi") {
		t.Fatalf("overlay missing top word:\n%s", view)
	}
	a = press(t, a, keyNamed("ctrl+f"))
	if a.showFreq {
		t.Fatal("overlay should toggle off")
	}
}
