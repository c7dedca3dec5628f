package ui

import (
	"github.com/atomicstack/tvnav/internal/backend"
	"github.com/atomicstack/tvnav/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

// applyBackendEvent stores a new catalogue and re-lays every screen out.
// Elements that vanished from the catalogue are unregistered by the
// relayout, and focus falls back within each screen.
func (m *Model) applyBackendEvent(evt backend.Event) {
	res := m.dispatcher.Handle(evt)
	if res.Err != nil {
		m.backendLastErr = res.Err.Error()
		events.Catalog.Error(backendSource(evt.Kind), res.Err)
		return
	}
	m.backendLastErr = ""
	if !res.CatalogUpdated {
		return
	}
	cat := m.catalog.Catalog()
	events.Catalog.Loaded(backendSource(evt.Kind), len(cat.Apps), len(cat.Products))
	m.relayoutAll()
}

func backendSource(kind backend.Kind) string {
	if kind == backend.KindWatchError {
		return "watch"
	}
	return "catalog"
}
