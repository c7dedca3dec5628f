package ui

import (
	"errors"

	"github.com/atomicstack/tvnav/internal/logging/events"
	uistate "github.com/atomicstack/tvnav/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

var errNoStore = errors.New("storage is unavailable")

// actionResultMsg reports the outcome of a persisted action.
type actionResultMsg struct {
	info string
	err  error
}

// persist runs a store write and converts its outcome into a message. It
// runs off the update loop, so it only touches the store.
func (m *Model) persist(info string, write func() error) tea.Msg {
	if m.store == nil {
		return actionResultMsg{err: errNoStore}
	}
	if err := write(); err != nil {
		return actionResultMsg{err: err}
	}
	return actionResultMsg{info: info}
}

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(actionResultMsg)
	if !ok {
		return nil
	}
	if result.err != nil {
		m.errMsg = result.err.Error()
		m.forceClearInfo()
		events.Action.Error(result.err)
	} else {
		if result.info != "" {
			m.setInfo(result.info)
		}
		events.Action.Success(result.info)
	}
	m.loadPersisted()
	m.relayoutAll()
	return nil
}

const messageHistory = 200

// loadPersisted refreshes the in-memory copies of stored state.
func (m *Model) loadPersisted() {
	if m.store == nil {
		return
	}
	if installed, err := m.store.InstalledApps(); err != nil {
		m.storeError("installed", err)
	} else {
		m.installed = uistate.NewSet(installed)
	}
	if settings, err := m.store.Settings(); err != nil {
		m.storeError("settings", err)
	} else {
		m.settings = uistate.NewSet(settings)
	}
	if cart, err := m.store.Cart(); err != nil {
		m.storeError("cart", err)
	} else {
		m.cart = cart
	}
	if messages, err := m.store.Messages(messageHistory); err != nil {
		m.storeError("messages", err)
	} else {
		m.messages = messages
	}
}

func (m *Model) storeError(op string, err error) {
	events.Store.Error(op, err)
	m.errMsg = err.Error()
}
