package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kalama/transcriber/internal/config"
	"github.com/kalama/transcriber/internal/database"
	"github.com/kalama/transcriber/internal/database/repository"
	"github.com/kalama/transcriber/internal/engine"
	"github.com/kalama/transcriber/internal/lexicon"
	"github.com/kalama/transcriber/internal/tui"
	"github.com/kalama/transcriber/internal/wordlist"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	sets, err := lexicon.LoadDir(cfg.Data.Dir)
	if err != nil {
		if errors.Is(err, lexicon.ErrNoLanguageSets) {
			log.Fatalf("no language CSVs found in %s: add files named like 'lang_*.csv' with a header row", cfg.Data.Dir)
		}
		log.Fatalf("load language sets: %v", err)
	}

	eng, err := engine.New(sets)
	if err != nil {
		log.Fatalf("engine: %v", err)
	}

	if cfg.Data.WordsDir != "" && !wordlist.Exists(cfg.Data.WordsDir) {
		log.Printf("warn: no word metadata found in %s", cfg.Data.WordsDir)
	}

	sessions := openSessions(cfg)

	if !restoreSession(ctx, cfg, eng, sessions) {
		for i := 0; i < cfg.UI.DefaultPanes; i++ {
			if _, err := eng.AddPane(); err != nil {
				break
			}
		}
		if panes := eng.Panes(); len(panes) > 0 && cfg.UI.SeedText != "" {
			eng.SetPaneText(panes[0].ID, cfg.UI.SeedText)
		}
	}

	p := tea.NewProgram(tui.New(ctx, cfg, eng, sessions), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

// openSessions wires the snapshot store. Persistence is optional: a broken
// database disables it rather than blocking the editor.
func openSessions(cfg config.Config) *repository.SessionRepo {
	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Printf("warn: sessions disabled: mkdir db dir: %v", err)
		return nil
	}
	if err := database.RunMigrations(cfg.Database.Path, cfg.Database.Migrations); err != nil {
		log.Printf("warn: sessions disabled: migrate: %v", err)
		return nil
	}
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Printf("warn: sessions disabled: open db: %v", err)
		return nil
	}
	return repository.NewSessionRepo(db)
}

// restoreSession rebuilds the pane layout from the latest snapshot. Returns
// false when there is nothing usable to restore.
func restoreSession(ctx context.Context, cfg config.Config, eng *engine.Engine, sessions *repository.SessionRepo) bool {
	if sessions == nil || !cfg.Session.Restore {
		return false
	}
	s, err := sessions.Latest(ctx)
	if err != nil || s == nil || len(s.Panes) == 0 {
		return false
	}
	if s.SetName != eng.ActiveSet() {
		if err := eng.SelectSet(s.SetName); err != nil {
			return false
		}
	}
	for _, snap := range s.Panes {
		p, err := eng.AddPane()
		if err != nil {
			break
		}
		if err := eng.SetPaneLanguage(p.ID, snap.Lang); err != nil {
			continue
		}
	}
	panes := eng.Panes()
	if len(panes) == 0 {
		return false
	}
	for i, snap := range s.Panes {
		if i >= len(panes) {
			break
		}
		if snap.Body != "" {
			eng.SetPaneText(panes[i].ID, snap.Body)
			break
		}
	}
	for i, snap := range s.Panes {
		if i >= len(panes) {
			break
		}
		eng.SetPaneCursor(panes[i].ID, snap.Cursor)
	}
	return true
}
