package ui

import (
	"testing"

	"github.com/atomicstack/tvnav/internal/backend"
	"github.com/atomicstack/tvnav/internal/catalog"
	"github.com/atomicstack/tvnav/internal/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	db, err := store.Open(store.Memory)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func newTestModel(t *testing.T, opts Options) *Model {
	t.Helper()
	if opts.Width == 0 {
		opts.Width = 100
	}
	if opts.Height == 0 {
		opts.Height = 30
	}
	if opts.Store == nil {
		opts.Store = openTestStore(t)
	}
	return NewModel(opts)
}

// newLoadedHarness returns a harness whose model has the built-in
// catalogue loaded.
func newLoadedHarness(t *testing.T, opts Options) *Harness {
	t.Helper()
	h := NewHarness(newTestModel(t, opts))
	sendCatalog(h, catalog.Default())
	return h
}

func sendCatalog(h *Harness, c catalog.Catalog) {
	h.Send(backendEventMsg{event: backend.Event{Kind: backend.KindCatalog, Data: c}})
}

func expectFocus(t *testing.T, h *Harness, want string) {
	t.Helper()
	if got := h.Model().Focused(); got != want {
		t.Fatalf("expected focus on %q, got %q", want, got)
	}
}

func expectScreen(t *testing.T, h *Harness, want string) {
	t.Helper()
	if got := h.Model().CurrentScreen(); got != want {
		t.Fatalf("expected screen %q, got %q", want, got)
	}
}
