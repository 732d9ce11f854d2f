package engine

import (
	"github.com/google/uuid"
)

// Pane is one live text buffer bound to a single language of the active
// lexicon. The engine owns text and cursor only during propagation; identity
// and focus belong to the registry.
type Pane struct {
	ID      string
	Lang    string
	Text    string
	Cursor  int // rune offset into Text
	Focused bool
}

func newPane(lang string) *Pane {
	return &Pane{ID: uuid.NewString(), Lang: lang}
}

// Registry is the ordered set of live panes. It never drops below one pane.
type Registry struct {
	panes []*Pane
}

// Add appends a pane bound to lang and returns it.
func (r *Registry) Add(lang string) *Pane {
	p := newPane(lang)
	r.panes = append(r.panes, p)
	return p
}

// Remove deletes the pane with the given id. Removing an unknown id or the
// sole remaining pane is a no-op; the second return reports whether a pane
// was actually removed.
func (r *Registry) Remove(id string) (*Pane, bool) {
	if len(r.panes) <= 1 {
		return nil, false
	}
	for i, p := range r.panes {
		if p.ID == id {
			r.panes = append(r.panes[:i], r.panes[i+1:]...)
			return p, true
		}
	}
	return nil, false
}

// Get returns the pane with the given id.
func (r *Registry) Get(id string) (*Pane, bool) {
	for _, p := range r.panes {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// Snapshot returns a copy of the pane list. Propagation iterates over a
// snapshot so panes added or removed mid-pass are not visited inconsistently.
func (r *Registry) Snapshot() []*Pane {
	out := make([]*Pane, len(r.panes))
	copy(out, r.panes)
	return out
}

// Len returns the pane count.
func (r *Registry) Len() int { return len(r.panes) }

// First returns the first pane in registry order.
func (r *Registry) First() *Pane {
	if len(r.panes) == 0 {
		return nil
	}
	return r.panes[0]
}

// SetFocus gives focus to id and takes it from every other pane. Passing an
// unknown id clears focus everywhere.
func (r *Registry) SetFocus(id string) {
	for _, p := range r.panes {
		p.Focused = p.ID == id
	}
}

// Focused returns the pane currently holding focus, if any.
func (r *Registry) Focused() *Pane {
	for _, p := range r.panes {
		if p.Focused {
			return p
		}
	}
	return nil
}

// Languages returns the bound language of every pane in order.
func (r *Registry) Languages() []string {
	out := make([]string, 0, len(r.panes))
	for _, p := range r.panes {
		out = append(out, p.Lang)
	}
	return out
}
