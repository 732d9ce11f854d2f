package repository

import "time"

// Session is one saved snapshot of the pane layout.
type Session struct {
	ID        string
	SetName   string
	CreatedAt time.Time
	Panes     []PaneSnapshot
}

// PaneSnapshot is one pane's saved state, ordered by Position.
type PaneSnapshot struct {
	Position int
	Lang     string
	Body     string
	Cursor   int
}
