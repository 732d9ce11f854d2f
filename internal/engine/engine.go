package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/kalama/transcriber/internal/lexicon"
	"github.com/kalama/transcriber/internal/token"
)

// ErrNoFreeLanguage means every language of the active set is already bound
// to some pane.
var ErrNoFreeLanguage = errors.New("no more languages available")

// ErrUnknownLanguage means a pane was asked to bind a language that is not a
// header column of the active set.
var ErrUnknownLanguage = errors.New("language not in active set")

const spaceFreeSuffix = " (space-free)"

// Engine owns the active lexicon context and the pane registry, and keeps
// every pane rendering the same token sequence in its own language.
type Engine struct {
	sets      *lexicon.Sets
	active    string
	table     *lexicon.Table
	mapper    Mapper
	spaceFree lexicon.SpaceFreeSet
	reg       Registry

	// reentrancy guard: a propagation pass mutates pane text, and the host
	// echoes text-changed events back into SetPaneText. Not a mutex; a
	// multi-threaded host must add its own single-writer discipline.
	updating bool
}

// New activates the first language set of the collection. Fails when the
// collection is empty or the first set has no usable rows.
func New(sets *lexicon.Sets) (*Engine, error) {
	if sets == nil || len(sets.Names()) == 0 {
		return nil, lexicon.ErrNoLanguageSets
	}
	e := &Engine{sets: sets}
	if err := e.SelectSet(sets.First()); err != nil {
		return nil, err
	}
	return e, nil
}

// ActiveSet returns the name of the active language set.
func (e *Engine) ActiveSet() string { return e.active }

// SetNames returns every language set name in collection order.
func (e *Engine) SetNames() []string { return e.sets.Names() }

// Languages returns the active header columns in table order.
func (e *Engine) Languages() []string { return e.table.Header }

// SpaceFree reports whether lang is written without inter-word spaces.
func (e *Engine) SpaceFree(lang string) bool { return e.spaceFree.Has(lang) }

// DisplayLabel is the cosmetic name of a language: the raw name, suffixed
// when the language is space-free. The suffix is never part of lookup keys.
func (e *Engine) DisplayLabel(lang string) string {
	if e.spaceFree.Has(lang) {
		return lang + spaceFreeSuffix
	}
	return lang
}

// Labels returns the display label of every active language in order.
func (e *Engine) Labels() []string {
	out := make([]string, 0, len(e.table.Header))
	for _, h := range e.table.Header {
		out = append(out, e.DisplayLabel(h))
	}
	return out
}

// Panes returns a snapshot of the registry in pane order.
func (e *Engine) Panes() []*Pane { return e.reg.Snapshot() }

// Pane returns the pane with the given id.
func (e *Engine) Pane(id string) (*Pane, bool) { return e.reg.Get(id) }

// Mapper exposes the active token mapper.
func (e *Engine) Mapper() Mapper { return e.mapper }

// SelectSet parses and activates the named set, rebuilding the forward
// index and space-free classification wholesale. An empty lexicon rejects
// the switch and leaves the prior set in force. Pane languages are remapped
// to the closest surviving display label and the panes re-synchronized.
func (e *Engine) SelectSet(name string) error {
	text, ok := e.sets.Text(name)
	if !ok {
		return fmt.Errorf("select set %q: unknown set", name)
	}
	table, err := lexicon.ParseTable(text)
	if err != nil {
		return fmt.Errorf("select set %q: %w", name, err)
	}

	// old labels, computed before the classification is replaced
	oldLabels := make(map[string]string, e.reg.Len())
	for _, p := range e.reg.Snapshot() {
		oldLabels[p.ID] = e.DisplayLabel(p.Lang)
	}

	e.active = name
	e.table = table
	e.mapper = Mapper{index: lexicon.BuildIndex(table)}
	e.spaceFree = lexicon.SpaceFreeColumns(table)

	for _, p := range e.reg.Snapshot() {
		p.Lang = e.closestLanguage(oldLabels[p.ID])
	}
	if src := e.bestSource(); src != nil {
		e.Propagate(src.ID)
	}
	return nil
}

// closestLanguage maps a prior display label onto the new header: an exact
// label match wins, else the smallest levenshtein distance, defaulting to
// the first language.
func (e *Engine) closestLanguage(oldLabel string) string {
	if oldLabel == "" {
		return e.table.Header[0]
	}
	best := e.table.Header[0]
	bestDist := -1
	for _, h := range e.table.Header {
		label := e.DisplayLabel(h)
		if label == oldLabel {
			return h
		}
		d := levenshtein.ComputeDistance(oldLabel, label)
		if bestDist == -1 || d < bestDist {
			best, bestDist = h, d
		}
	}
	return best
}

// AddPane binds a new pane to the first language no other pane uses and
// fills it from the current best source. Distinct panes bind distinct
// languages; once every language is taken the add is rejected.
func (e *Engine) AddPane() (*Pane, error) {
	if e.reg.Len() >= len(e.table.Header) {
		return nil, ErrNoFreeLanguage
	}
	used := make(map[string]bool, e.reg.Len())
	for _, lang := range e.reg.Languages() {
		used[lang] = true
	}
	chosen := e.table.Header[0]
	for _, h := range e.table.Header {
		if !used[h] {
			chosen = h
			break
		}
	}
	p := e.reg.Add(chosen)
	if e.reg.Len() > 1 {
		if src := e.bestSource(); src != nil && src.ID != p.ID {
			e.Propagate(src.ID)
		}
	}
	return p, nil
}

// RemovePane drops a pane and re-synchronizes the remainder from the
// recomputed best source. Unknown ids and the sole remaining pane are
// no-ops.
func (e *Engine) RemovePane(id string) bool {
	if _, ok := e.reg.Remove(id); !ok {
		return false
	}
	if src := e.bestSource(); src != nil {
		e.Propagate(src.ID)
	}
	return true
}

// SetPaneLanguage rebinds a pane and re-synchronizes from the best source.
func (e *Engine) SetPaneLanguage(id, lang string) error {
	p, ok := e.reg.Get(id)
	if !ok {
		return fmt.Errorf("set language: unknown pane %s", id)
	}
	if !e.table.HasLanguage(lang) {
		return fmt.Errorf("set language %q: %w", lang, ErrUnknownLanguage)
	}
	p.Lang = lang
	if src := e.bestSource(); src != nil {
		e.Propagate(src.ID)
	}
	return nil
}

// SetPaneText replaces a pane's text, as delivered by the host's
// text-changed event, and propagates from that pane. Re-entrant calls made
// while a propagation pass is rewriting panes are absorbed by the guard.
func (e *Engine) SetPaneText(id, text string) {
	p, ok := e.reg.Get(id)
	if !ok {
		return
	}
	p.Text = text
	p.Cursor = clampCursor(p.Cursor, text)
	e.Propagate(id)
}

// SetPaneCursor records the host's cursor position for a pane.
func (e *Engine) SetPaneCursor(id string, pos int) {
	if p, ok := e.reg.Get(id); ok {
		p.Cursor = clampCursor(pos, p.Text)
	}
}

// SetPaneFocus moves focus onto a pane, or takes it away. Losing focus
// commits bracket markers into the pane's own buffer and then propagates
// from it.
func (e *Engine) SetPaneFocus(id string, focused bool) {
	p, ok := e.reg.Get(id)
	if !ok {
		return
	}
	if focused {
		e.reg.SetFocus(id)
		return
	}
	if p.Focused {
		p.Focused = false
	}
	e.Commit(id)
	e.Propagate(id)
}

// Commit rewrites every token of the pane's own text that the pane's own
// language has no mapping for into its bracketed form, persisting the
// "unknown" marker into the buffer. Punctuation and already-bracketed
// tokens stay as they are.
func (e *Engine) Commit(id string) {
	if e.updating {
		return
	}
	p, ok := e.reg.Get(id)
	if !ok {
		return
	}
	sf := e.spaceFree.Has(p.Lang)
	tokens := token.Tokenize(p.Text, sf)
	committed := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		switch {
		case token.IsPunct(tok), token.IsBracketed(tok):
			committed = append(committed, tok)
		case !e.mapper.HasExactMapping(p.Lang, tok):
			committed = append(committed, token.Bracket(tok))
		default:
			committed = append(committed, tok)
		}
	}
	text := token.Join(committed, sf)
	if text != p.Text {
		p.Text = text
		p.Cursor = clampCursor(p.Cursor, text)
	}
}

// Propagate recomputes every other pane from the source pane's tokens. The
// pass is skipped entirely while another pass is in flight.
func (e *Engine) Propagate(srcID string) {
	if e.updating {
		return
	}
	e.updating = true
	defer func() { e.updating = false }()

	src, ok := e.reg.Get(srcID)
	if !ok {
		return
	}
	srcTokens := token.Tokenize(src.Text, e.spaceFree.Has(src.Lang))

	for _, dst := range e.reg.Snapshot() {
		if dst.ID == src.ID {
			continue
		}
		out := make([]string, 0, len(srcTokens))
		for _, tok := range srcTokens {
			out = append(out, e.mapper.translateToken(src.Lang, dst.Lang, tok))
		}
		text := token.Join(out, e.spaceFree.Has(dst.Lang))
		if text == dst.Text {
			continue
		}
		prior := dst.Cursor
		dst.Text = text
		if !dst.Focused {
			dst.Cursor = clampCursor(prior, text)
		}
	}
}

// BestSource picks the authoritative pane when no explicit source is named:
// the focused pane, else the first pane with non-empty text, else the first
// pane.
func (e *Engine) BestSource() *Pane { return e.bestSource() }

func (e *Engine) bestSource() *Pane {
	if p := e.reg.Focused(); p != nil {
		return p
	}
	for _, p := range e.reg.Snapshot() {
		if strings.TrimSpace(p.Text) != "" {
			return p
		}
	}
	return e.reg.First()
}

func clampCursor(pos int, text string) int {
	if pos < 0 {
		return 0
	}
	if n := len([]rune(text)); pos > n {
		return n
	}
	return pos
}
