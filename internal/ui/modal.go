package ui

import (
	"github.com/atomicstack/tvnav/internal/focus"
	"github.com/atomicstack/tvnav/internal/format/canvas"
	"github.com/atomicstack/tvnav/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const modalMaxWidth = 56

type modalButton struct {
	id       string
	label    string
	disabled bool
	onSelect func() tea.Cmd
}

type modalSpec struct {
	name    string
	title   string
	lines   []string
	buttons []modalButton
	// anchor receives focus when the focused button goes away.
	anchor string
	// focus is the initially focused button; empty means the first enabled.
	focus string
}

// modal is a dialog drawn over the screen. Its scope sits on top of the
// navigator, so the screen beneath receives no keys until it closes.
type modal struct {
	name   string
	spec   modalSpec
	scope  *focus.Scope
	layout *layout
}

func (m *Model) openModal(spec modalSpec) {
	if m.modal != nil {
		m.closeModal()
	}
	md := &modal{name: spec.name, spec: spec}
	md.scope = focus.NewScope("modal:"+spec.name, focus.ScopeOptions{
		Geometry: focus.GeometryFunc(func(el focus.Element) (focus.Rect, bool) {
			b, ok := md.layout.box(el.ID)
			if !ok {
				return focus.Rect{}, false
			}
			return b.rect(0, 0), true
		}),
		Selector: m.selector,
		Anchor:   spec.anchor,
		OnBack: func() tea.Cmd {
			m.closeModal()
			return nil
		},
	})
	m.modal = md
	md.resize(m)
	if spec.focus != "" {
		md.scope.SetFocus(spec.focus)
	}
	m.nav.Push(md.scope)
	events.UI.ModalOpen(spec.name)
}

func (m *Model) closeModal() {
	if m.modal == nil {
		return
	}
	m.nav.Remove(m.modal.scope)
	events.UI.ModalClose(m.modal.name)
	m.modal = nil
}

// resize lays the dialog out for the current view width.
func (md *modal) resize(m *Model) {
	w, _ := m.viewSize()
	width := w - 8
	if width > modalMaxWidth {
		width = modalMaxWidth
	}
	if width < 12 {
		width = 12
	}
	lay := newLayout(width)
	lay.text(0, 0, styles.Title.Render(ansi.Truncate(md.spec.title, width, "…")))
	y := 2
	wrap := lipgloss.NewStyle().Width(width)
	for _, line := range md.spec.lines {
		block := wrap.Render(line)
		lay.text(0, y, block)
		_, h := canvas.Size(block)
		y += h
	}
	y++
	x := 0
	for _, b := range md.spec.buttons {
		bw := ansi.StringWidth(b.label) + 2
		onSelect := b.onSelect
		el := focus.Element{
			ID:       b.id,
			Key:      focus.Key{Kind: "modal", Target: md.name},
			Disabled: b.disabled,
		}
		if onSelect != nil {
			el.OnSelect = func(focus.Element) tea.Cmd { return onSelect() }
		}
		draw := drawButton(b.label, bw)
		if b.disabled {
			draw = drawDisabled(b.label, bw)
		}
		lay.add(el, box{x: x, y: y, w: bw, h: 1}, draw)
		x += bw + 2
	}
	md.layout = lay
	md.scope.Sync(lay.elements())
}

// view renders the dialog with its border.
func (md *modal) view(focused func(string) bool) string {
	c := canvas.New(md.layout.width, md.layout.height)
	paint(c, md.layout, 0, focused)
	return styles.Modal.Render(c.String())
}
