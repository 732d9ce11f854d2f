// Package tui renders the pane row and funnels every user action into a
// single engine entry point.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"

	"github.com/kalama/transcriber/internal/config"
	"github.com/kalama/transcriber/internal/database"
	"github.com/kalama/transcriber/internal/database/repository"
	"github.com/kalama/transcriber/internal/engine"
)

type paneView struct {
	id string
	ta textarea.Model
}

// App is the bubbletea model for the transcriber.
type App struct {
	ctx      context.Context
	cfg      config.Config
	eng      *engine.Engine
	sessions *repository.SessionRepo // nil disables persistence

	keys     keyMap
	views    []paneView
	focusIdx int
	width    int
	height   int
	status   string
	isErr    bool
	showFreq bool
	quitting bool
}

// New builds the app around an initialized engine. The engine's panes are
// mirrored into one textarea each; the first pane starts focused.
func New(ctx context.Context, cfg config.Config, eng *engine.Engine, sessions *repository.SessionRepo) *App {
	a := &App{
		ctx:      ctx,
		cfg:      cfg,
		eng:      eng,
		sessions: sessions,
		keys:     newKeyMap(),
		width:    100,
		height:   32,
		status:   "Ready",
	}
	a.refresh()
	if len(a.views) > 0 {
		a.setFocus(0)
	}
	return a
}

func newArea() textarea.Model {
	ta := textarea.New()
	ta.Prompt = ""
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	return ta
}

func (a *App) Init() tea.Cmd { return textarea.Blink }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.resize()
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			a.saveSession()
			a.quitting = true
			return a, tea.Quit
		case key.Matches(msg, a.keys.NextPane):
			a.moveFocus(1)
			return a, nil
		case key.Matches(msg, a.keys.PrevPane):
			a.moveFocus(-1)
			return a, nil
		case key.Matches(msg, a.keys.AddPane):
			a.addPane()
			return a, nil
		case key.Matches(msg, a.keys.Close):
			a.closePane()
			return a, nil
		case key.Matches(msg, a.keys.CycleLng):
			a.cycleLanguage()
			return a, nil
		case key.Matches(msg, a.keys.CycleSet):
			a.cycleSet()
			return a, nil
		case key.Matches(msg, a.keys.Freq):
			a.showFreq = !a.showFreq
			a.resize()
			return a, nil
		}
	}

	// everything else belongs to the focused textarea
	if a.focusIdx < 0 || a.focusIdx >= len(a.views) {
		return a, nil
	}
	var cmd tea.Cmd
	a.views[a.focusIdx].ta, cmd = a.views[a.focusIdx].ta.Update(msg)
	if _, isKey := msg.(tea.KeyMsg); isKey {
		a.eng.SetPaneText(a.views[a.focusIdx].id, a.views[a.focusIdx].ta.Value())
		a.refresh()
	}
	return a, cmd
}

// refresh re-aligns the textareas with the engine's pane registry, creating
// and dropping views as panes come and go and pulling rewritten text into
// every unfocused view.
func (a *App) refresh() {
	panes := a.eng.Panes()
	next := make([]paneView, 0, len(panes))
	for _, p := range panes {
		idx := a.viewIndex(p.ID)
		if idx == -1 {
			ta := newArea()
			ta.SetValue(p.Text)
			next = append(next, paneView{id: p.ID, ta: ta})
			continue
		}
		v := a.views[idx]
		if v.ta.Value() != p.Text && !p.Focused {
			v.ta.SetValue(p.Text)
		}
		next = append(next, v)
	}
	a.views = next
	if a.focusIdx >= len(a.views) {
		a.focusIdx = len(a.views) - 1
	}
	a.resize()
}

func (a *App) viewIndex(id string) int {
	for i, v := range a.views {
		if v.id == id {
			return i
		}
	}
	return -1
}

func (a *App) setFocus(idx int) {
	if idx < 0 || idx >= len(a.views) {
		return
	}
	for i := range a.views {
		a.views[i].ta.Blur()
	}
	a.focusIdx = idx
	a.views[idx].ta.Focus()
	a.eng.SetPaneFocus(a.views[idx].id, true)
}

func (a *App) moveFocus(dir int) {
	if len(a.views) == 0 {
		return
	}
	old := a.focusIdx
	next := (a.focusIdx + dir + len(a.views)) % len(a.views)
	var oldID string
	if old >= 0 && old < len(a.views) {
		oldID = a.views[old].id
		// focus loss commits bracket markers and re-propagates
		a.eng.SetPaneFocus(oldID, false)
	}
	a.setFocus(next)
	a.refresh()
	// the committed pane may have been rewritten under the cursor
	if idx := a.viewIndex(oldID); idx != -1 {
		if p, ok := a.eng.Pane(oldID); ok && a.views[idx].ta.Value() != p.Text {
			a.views[idx].ta.SetValue(p.Text)
		}
	}
}

func (a *App) addPane() {
	p, err := a.eng.AddPane()
	if err != nil {
		a.setError(err)
		return
	}
	a.refresh()
	a.setStatus(fmt.Sprintf("added %s", a.eng.DisplayLabel(p.Lang)))
}

func (a *App) closePane() {
	if a.focusIdx < 0 || a.focusIdx >= len(a.views) {
		return
	}
	id := a.views[a.focusIdx].id
	if !a.eng.RemovePane(id) {
		a.setStatus("keeping the last pane")
		return
	}
	a.refresh()
	if a.focusIdx >= len(a.views) {
		a.focusIdx = len(a.views) - 1
	}
	a.setFocus(a.focusIdx)
	a.setStatus("pane closed")
}

func (a *App) cycleLanguage() {
	if a.focusIdx < 0 || a.focusIdx >= len(a.views) {
		return
	}
	id := a.views[a.focusIdx].id
	p, ok := a.eng.Pane(id)
	if !ok {
		return
	}
	langs := a.eng.Languages()
	cur := 0
	for i, l := range langs {
		if l == p.Lang {
			cur = i
			break
		}
	}
	next := langs[(cur+1)%len(langs)]
	if err := a.eng.SetPaneLanguage(id, next); err != nil {
		a.setError(err)
		return
	}
	a.refresh()
	a.setStatus(fmt.Sprintf("pane language: %s", a.eng.DisplayLabel(next)))
}

func (a *App) cycleSet() {
	names := a.eng.SetNames()
	if len(names) < 2 {
		a.setStatus("only one language set")
		return
	}
	cur := 0
	for i, n := range names {
		if n == a.eng.ActiveSet() {
			cur = i
			break
		}
	}
	next := names[(cur+1)%len(names)]
	if err := a.eng.SelectSet(next); err != nil {
		// switch rejected, prior set remains in force
		a.setError(err)
		return
	}
	a.refresh()
	a.setStatus(fmt.Sprintf("language set: %s", next))
}

func (a *App) setStatus(s string) { a.status, a.isErr = s, false }

func (a *App) setError(err error) {
	if err == nil {
		a.status, a.isErr = "", false
		return
	}
	a.status, a.isErr = err.Error(), true
}

func (a *App) saveSession() {
	if a.sessions == nil {
		return
	}
	s := repository.Session{
		ID:        uuid.NewString(),
		SetName:   a.eng.ActiveSet(),
		CreatedAt: database.Now(),
	}
	for i, p := range a.eng.Panes() {
		s.Panes = append(s.Panes, repository.PaneSnapshot{
			Position: i,
			Lang:     p.Lang,
			Body:     p.Text,
			Cursor:   p.Cursor,
		})
	}
	if err := a.sessions.Save(a.ctx, s); err != nil {
		a.setError(err)
		return
	}
	_ = a.sessions.Prune(a.ctx, 10)
}

func (a *App) resize() {
	if len(a.views) == 0 {
		return
	}
	pw := a.paneWidth()
	ph := a.paneHeight()
	for i := range a.views {
		a.views[i].ta.SetWidth(pw - 4)
		a.views[i].ta.SetHeight(ph - 3)
	}
}

func (a *App) paneWidth() int {
	n := len(a.views)
	if n == 0 {
		n = 1
	}
	w := a.width / n
	if w < 24 {
		w = 24
	}
	return w
}

func (a *App) paneHeight() int {
	h := a.height - 4 // header + status
	if a.showFreq {
		h -= freqHeight + 2
	}
	if h < 7 {
		h = 7
	}
	return h
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	header := titleStyle.Render("transcriber") + "  " +
		setNameStyle.Render(a.eng.ActiveSet())

	cols := make([]string, 0, len(a.views))
	for i := range a.views {
		cols = append(cols, a.renderPane(i))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, cols...)

	var b strings.Builder
	b.WriteString(padRight(header, a.width))
	b.WriteString("\n")
	b.WriteString(row)
	b.WriteString("\n")
	if a.showFreq {
		b.WriteString(a.renderFrequencies())
		b.WriteString("\n")
	}
	sty := statusStyle
	if a.isErr {
		sty = errorStyle
	}
	b.WriteString(sty.Render(a.status))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(a.helpLine()))
	return b.String()
}

func (a *App) renderPane(i int) string {
	v := a.views[i]
	p, ok := a.eng.Pane(v.id)
	if !ok {
		return ""
	}
	label := a.eng.DisplayLabel(p.Lang)
	title := paneTitleStyle.Render(label)
	border := paneBorderStyle
	if i == a.focusIdx {
		title = paneFocusTitle.Render(label)
		border = paneFocusBorder
	}
	inner := title + "\n" + v.ta.View()
	return border.Width(a.paneWidth() - 2).Render(inner)
}

func (a *App) helpLine() string {
	parts := make([]string, 0, 8)
	for _, b := range a.keys.ShortHelp() {
		parts = append(parts, b.Help().Key+" "+b.Help().Desc)
	}
	return strings.Join(parts, "  ")
}

func padRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
