package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/tvnav/internal/format/canvas"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// View renders the header, the sidebar, the visible part of the current
// screen, the status line and the key hints, with any modal on top.
func (m *Model) View() string {
	w, h := m.viewSize()
	c := canvas.New(w, h)
	c.Put(0, 0, m.header(w))

	screen := m.activeScreen()
	screenFocused := func(id string) bool {
		return m.modal == nil && screen.IsFocused(id)
	}
	for _, id := range screenOrder {
		b, _ := sidebarBox(id)
		c.Put(b.x, b.y, drawItem(screenTitles[id], b.w, id == m.current)(screenFocused(navID(id))))
	}

	cw, ch := m.contentSize()
	content := canvas.New(cw, ch)
	lay := m.layouts[m.current]
	page := m.pages[m.current]
	if lay != nil {
		paint(content, lay, page.Viewport.Offset, screenFocused)
	}
	c.Put(contentLeft, contentTop, content.String())
	if lay != nil && page.Viewport.Offset > 0 {
		c.Put(w-1, contentTop, styles.Indicator.Render("▲"))
	}
	if lay != nil && page.Viewport.Offset+ch < lay.height {
		c.Put(w-1, contentTop+ch-1, styles.Indicator.Render("▼"))
	}

	statusRow := h - m.bottomRows()
	c.Put(0, statusRow, m.statusLine(w))
	if m.footerVisible() {
		m.help.Width = w
		c.Put(0, statusRow+1, styles.Footer.Render(m.help.View(m.keys)))
	}

	if m.modal != nil {
		c.PutCentered(m.modal.view(m.modal.scope.IsFocused))
	}
	return c.String()
}

// paint draws a layout onto c, shifted up by offset rows.
func paint(c *canvas.Canvas, lay *layout, offset int, focused func(string) bool) {
	for _, l := range lay.labels {
		c.Put(l.x, l.y-offset, l.text)
	}
	for _, n := range lay.nodes {
		y := n.box.y - offset
		if y+n.box.h <= 0 || y >= c.Height() {
			continue
		}
		c.Put(n.box.x, y, n.draw(focused(n.el.ID)))
	}
}

func (m *Model) header(width int) string {
	title := "tvnav · " + screenTitles[m.current]
	status := ""
	switch {
	case m.catalog.Err() != nil:
		status = "catalogue error"
	case !m.catalog.Loaded():
		status = "loading…"
	case m.catalog.Revision() > 1:
		status = fmt.Sprintf("catalogue r%d", m.catalog.Revision())
	}
	gap := width - ansi.StringWidth(title) - ansi.StringWidth(status) - 2
	if gap < 1 {
		gap = 1
	}
	line := " " + title + strings.Repeat(" ", gap) + status + " "
	return styles.Header.Render(ansi.Truncate(line, width, ""))
}

func (m *Model) statusLine(width int) string {
	var line string
	switch {
	case m.errMsg != "":
		line = styles.Error.Render("Error: " + m.errMsg)
	case m.currentInfo() != "":
		line = styles.Info.Render(m.currentInfo())
	case m.backendLastErr != "":
		line = styles.Error.Render("Catalogue: " + m.backendLastErr)
	default:
		line = styles.Status.Render(m.focusHint())
	}
	return ansi.Truncate(line, width, "…")
}

// focusHint describes the focused element.
func (m *Model) focusHint() string {
	top := m.nav.Top()
	if top == nil {
		return ""
	}
	el, ok := top.Current()
	if !ok {
		return ""
	}
	switch el.Key.Kind {
	case "product":
		if p, ok := m.catalog.Catalog().Product(el.Key.Target); ok {
			return fmt.Sprintf("%s · %s", p.Name, p.Price())
		}
	case "app", "install", "remove":
		if a, ok := m.lookupApp(el.Key.Target); ok {
			if m.installed.Has(a.ID) {
				return a.Name + " · installed"
			}
			return a.Name
		}
	case "tab":
		return "Browse " + el.Key.Target
	case "nav":
		return screenTitles[el.Key.Target]
	}
	return ""
}

func drawItem(text string, width int, active bool) func(bool) string {
	return func(focused bool) string {
		line := padRight(ansi.Truncate(text, width-2, "…"), width-2)
		switch {
		case focused:
			return styles.FocusedItem.Render(" " + line + " ")
		case active:
			return styles.ActiveItem.Render(" "+line) + " "
		default:
			return styles.Item.Render(" " + line + " ")
		}
	}
}

func drawButton(text string, width int) func(bool) string {
	return func(focused bool) string {
		label := centre(text, width-2)
		if focused {
			return styles.FocusedButton.Render(label)
		}
		return styles.Button.Render(label)
	}
}

func drawDisabled(text string, width int) func(bool) string {
	return func(bool) string {
		return " " + styles.DisabledItem.Render(centre(text, width-2)) + " "
	}
}

func drawTab(text string, width int, active bool) func(bool) string {
	return func(focused bool) string {
		label := centre(text, width)
		switch {
		case focused:
			return styles.FocusedItem.Render(label)
		case active:
			return styles.ActiveItem.Render(label)
		default:
			return styles.Item.Render(label)
		}
	}
}

func drawTile(name, price string, width, height int) func(bool) string {
	return func(focused bool) string {
		// Border and padding take four columns and two rows.
		inner := width - 4
		if inner < 1 {
			inner = 1
		}
		body := padRight(ansi.Truncate(name, inner, "…"), inner) + "\n" +
			padRight(styles.Price.Render(price), inner)
		style := styles.Tile
		if focused {
			style = styles.FocusedTile
		}
		return style.Width(width - 2).Height(height - 2).Render(body)
	}
}

func (m *Model) drawField(input *textinput.Model, width int) func(bool) string {
	return func(focused bool) string {
		line := padRight(ansi.Truncate(input.View(), width, ""), width)
		if focused {
			return styles.FocusedField.Render(line)
		}
		return styles.Field.Render(line)
	}
}

func padRight(s string, width int) string {
	if pad := width - ansi.StringWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

func centre(s string, width int) string {
	s = ansi.Truncate(s, width, "…")
	pad := width - ansi.StringWidth(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.relayoutAll()
	return nil
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}
