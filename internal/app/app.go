package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/tvnav/internal/backend"
	"github.com/atomicstack/tvnav/internal/focus"
	"github.com/atomicstack/tvnav/internal/logging"
	"github.com/atomicstack/tvnav/internal/store"
	"github.com/atomicstack/tvnav/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// catalogDebounce coalesces editor save bursts on the catalogue file.
const catalogDebounce = 250 * time.Millisecond

// Config describes user-provided application options.
type Config struct {
	CatalogPath  string
	DBPath       string
	Screen       string
	Width        int
	Height       int
	ShowFooter   bool
	WatchCatalog bool
	Selector     focus.Selector
	Keys         focus.Bindings
}

// Screens lists the screen names accepted by Config.Screen.
func Screens() []string {
	return ui.ScreenIDs()
}

// KnownScreen reports whether name is a valid start screen.
func KnownScreen(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, id := range Screens() {
		if id == name {
			return true
		}
	}
	return false
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	dbPath := cfg.DBPath
	if dbPath == "" {
		p, err := store.DefaultPath()
		if err != nil {
			return err
		}
		dbPath = p
	}
	db, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			logging.Error(cerr)
		}
	}()

	watcher := backend.NewWatcher(cfg.CatalogPath, backend.Options{
		Watch:    cfg.WatchCatalog,
		Debounce: catalogDebounce,
	})
	defer watcher.Stop()

	model := ui.NewModel(ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Screen:     cfg.Screen,
		Selector:   cfg.Selector,
		Keys:       focus.DefaultKeyMap().With(cfg.Keys),
		Watcher:    watcher,
		Store:      db,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
