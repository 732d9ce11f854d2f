package repository

import (
	"context"
	"database/sql"

	"github.com/kalama/transcriber/internal/database"
)

// SessionRepo handles saved pane-layout snapshots.
type SessionRepo struct {
	db *sql.DB
}

func NewSessionRepo(db *sql.DB) *SessionRepo { return &SessionRepo{db: db} }

// Save stores a snapshot and all its panes in one transaction.
func (r *SessionRepo) Save(ctx context.Context, s Session) error {
	return database.WithTx(r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
		INSERT INTO sessions(id, set_name, created_at) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET set_name=excluded.set_name, created_at=excluded.created_at;
		`, s.ID, s.SetName, s.CreatedAt); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM session_panes WHERE session_id = ?`, s.ID); err != nil {
			return err
		}
		for _, p := range s.Panes {
			if _, err := tx.ExecContext(ctx, `
			INSERT INTO session_panes(session_id, position, lang, body, cursor) VALUES (?, ?, ?, ?, ?)
			`, s.ID, p.Position, p.Lang, p.Body, p.Cursor); err != nil {
				return err
			}
		}
		return nil
	})
}

// Latest returns the most recently saved session, or nil when none exists.
func (r *SessionRepo) Latest(ctx context.Context) (*Session, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, set_name, created_at FROM sessions ORDER BY created_at DESC, id DESC LIMIT 1`)
	var s Session
	if err := row.Scan(&s.ID, &s.SetName, &s.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, `
	SELECT position, lang, body, cursor FROM session_panes WHERE session_id = ? ORDER BY position`, s.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var p PaneSnapshot
		if err := rows.Scan(&p.Position, &p.Lang, &p.Body, &p.Cursor); err != nil {
			return nil, err
		}
		s.Panes = append(s.Panes, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Prune keeps the newest keep sessions and deletes the rest.
func (r *SessionRepo) Prune(ctx context.Context, keep int) error {
	_, err := r.db.ExecContext(ctx, `
	DELETE FROM sessions WHERE id NOT IN (
		SELECT id FROM sessions ORDER BY created_at DESC, id DESC LIMIT ?
	)`, keep)
	return err
}
