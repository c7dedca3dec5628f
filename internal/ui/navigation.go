package ui

import (
	"github.com/atomicstack/tvnav/internal/focus"
	"github.com/atomicstack/tvnav/internal/logging/events"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Frame metrics in cells. The sidebar sits at the left edge, content starts
// to its right below the header.
const (
	defaultWidth  = 100
	defaultHeight = 30
	sidebarWidth  = 16
	contentLeft   = sidebarWidth + 2
	contentTop    = 2
	navSpacing    = 2
)

const navGroup = "nav"

func navID(screen string) string { return "nav-" + screen }

func (m *Model) viewSize() (int, int) {
	w, h := m.width, m.height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

func (m *Model) bottomRows() int {
	rows := 1
	if m.footerVisible() {
		if m.help.ShowAll {
			rows += len(m.keys.FullHelp()[0])
		} else {
			rows++
		}
	}
	return rows
}

func (m *Model) footerVisible() bool {
	return m.showFooter || m.settings.Has(settingHints)
}

// contentSize is the scrollable area right of the sidebar.
func (m *Model) contentSize() (int, int) {
	w, h := m.viewSize()
	cw := w - contentLeft - 1
	ch := h - contentTop - m.bottomRows()
	if cw < 1 {
		cw = 1
	}
	if ch < 1 {
		ch = 1
	}
	return cw, ch
}

func sidebarBox(screen string) (box, bool) {
	for i, id := range screenOrder {
		if id == screen {
			return box{x: 1, y: contentTop + i*navSpacing, w: sidebarWidth - 2, h: 1}, true
		}
	}
	return box{}, false
}

func (m *Model) sidebarElements() []focus.Element {
	out := make([]focus.Element, 0, len(screenOrder))
	for _, id := range screenOrder {
		out = append(out, focus.Element{
			ID:    navID(id),
			Key:   focus.Key{Kind: "nav", Target: id},
			Group: navGroup,
			OnSelect: func(el focus.Element) tea.Cmd {
				m.switchScreen(el.Key.Target)
				return nil
			},
		})
	}
	return out
}

// newScreenScope builds the scope for one screen. It holds the sidebar and
// the screen's content; boxes come from the current layout, shifted by the
// scroll offset.
func (m *Model) newScreenScope(id string) *focus.Scope {
	s := focus.NewScope(id, focus.ScopeOptions{
		Geometry: m.screenGeometry(id),
		Selector: m.selector,
		Anchor:   navID(id),
		OnFocus: func(el focus.Element, _ focus.Rect) {
			m.onScreenFocus(id, el)
		},
	})
	s.RememberGroup(navGroup, false)
	s.SetGroupActive(navGroup, navID(id))
	first, last := navID(screenOrder[0]), navID(screenOrder[len(screenOrder)-1])
	for i, sid := range screenOrder {
		if i > 0 {
			s.Override(navID(sid), focus.Up, navID(screenOrder[i-1]))
		}
		if i < len(screenOrder)-1 {
			s.Override(navID(sid), focus.Down, navID(screenOrder[i+1]))
		}
	}
	s.Override(first, focus.Up, first)
	s.Override(last, focus.Down, last)
	switch id {
	case screenStore:
		s.RememberGroup(tabsGroup, false)
	case screenChat:
		// Send sits beside the draft, which keeps Left and Right for its caret.
		s.Override(draftID, focus.Down, sendID)
		s.Override(sendID, focus.Down, sendID)
	}
	return s
}

func (m *Model) screenGeometry(id string) focus.Geometry {
	return focus.GeometryFunc(func(el focus.Element) (focus.Rect, bool) {
		if el.Group == navGroup {
			b, ok := sidebarBox(el.Key.Target)
			if !ok {
				return focus.Rect{}, false
			}
			return b.rect(0, 0), true
		}
		b, ok := m.layouts[id].box(el.ID)
		if !ok {
			return focus.Rect{}, false
		}
		return b.rect(contentLeft, contentTop-m.pages[id].Viewport.Offset), true
	})
}

// onScreenFocus scrolls content into view and makes Right from the screen's
// sidebar entry return to the last focused content element.
func (m *Model) onScreenFocus(id string, el focus.Element) {
	if el.Group == navGroup {
		return
	}
	m.pages[id].Remember(el.ID)
	if s := m.screens[id]; s != nil {
		s.Override(navID(id), focus.Right, el.ID)
	}
	m.scrollIntoView(id, el.ID)
}

func (m *Model) scrollIntoView(id, elementID string) {
	lay := m.layouts[id]
	b, ok := lay.box(elementID)
	if !ok {
		return
	}
	top, size := b.y, b.h
	// Keep the page heading visible for elements near the top.
	if top <= contentTop {
		size += top
		top = 0
	}
	page := m.pages[id]
	if page.Viewport.EnsureVisible(top, size, lay.height) {
		events.UI.Scroll(id, page.Viewport.Offset)
	}
}

// relayout rebuilds one screen's layout and syncs its scope with it.
func (m *Model) relayout(id string) {
	width, height := m.contentSize()
	var lay *layout
	switch id {
	case screenApps:
		lay = m.layoutApps(width)
	case screenStore:
		lay = m.layoutStore(width)
	case screenChat:
		lay = m.layoutChat(width)
	case screenSettings:
		lay = m.layoutSettings(width)
	default:
		return
	}
	m.layouts[id] = lay
	page := m.pages[id]
	page.Viewport.Resize(height, lay.height)
	scope := m.screens[id]
	scope.Sync(append(m.sidebarElements(), lay.elements()...))
	if id == screenStore {
		m.wireStoreScope(scope)
	}
	if cur, ok := scope.Current(); ok && cur.Group != navGroup {
		m.scrollIntoView(id, cur.ID)
	}
}

func (m *Model) relayoutAll() {
	for _, id := range screenOrder {
		m.relayout(id)
	}
	if m.modal != nil {
		m.modal.resize(m)
	}
}

func (m *Model) switchScreen(id string) {
	next, ok := m.screens[id]
	if !ok || id == m.current {
		return
	}
	events.UI.ScreenSwitch(m.current, id)
	m.nav.Remove(m.activeScreen())
	m.current = id
	m.relayout(id)
	m.nav.Push(next)
	next.SetFocus(navID(id))
}

// handleRootBack runs when no screen or modal claims Back. From content it
// returns focus to the sidebar; from the sidebar it quits.
func (m *Model) handleRootBack() tea.Cmd {
	scope := m.activeScreen()
	if el, ok := scope.Current(); ok && el.Group != navGroup {
		scope.SetFocus(navID(m.current))
		return nil
	}
	return tea.Quit
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if keyMsg.Type == tea.KeyCtrlC {
		return tea.Quit
	}
	m.errMsg = ""
	if handled, cmd := m.nav.HandleKey(keyMsg); handled {
		return cmd
	}
	if el, ok := m.focusedField(); ok {
		return m.updateField(el, keyMsg)
	}
	switch {
	case key.Matches(keyMsg, helpKey):
		m.help.ShowAll = !m.help.ShowAll
		m.relayoutAll()
	case key.Matches(keyMsg, quitKey):
		return tea.Quit
	}
	return nil
}

var (
	helpKey = key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys"))
	quitKey = key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit"))
)
