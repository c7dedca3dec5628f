package ui

import (
	"github.com/atomicstack/tvnav/internal/focus"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	searchID = "search"
	draftID  = "draft"
)

func newField(prompt, placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Placeholder = placeholder
	ti.CharLimit = 200
	ti.Cursor.SetMode(cursor.CursorStatic)
	if styles.FieldPrompt != nil {
		ti.PromptStyle = *styles.FieldPrompt
	}
	if styles.Placeholder != nil {
		ti.PlaceholderStyle = *styles.Placeholder
	}
	return ti
}

func (m *Model) field(id string) *textinput.Model {
	switch id {
	case searchID:
		return &m.search
	case draftID:
		return &m.draft
	}
	return nil
}

// focusedField returns the focused element when it is a text field.
func (m *Model) focusedField() (focus.Element, bool) {
	top := m.nav.Top()
	if top == nil {
		return focus.Element{}, false
	}
	el, ok := top.Current()
	if !ok || !el.Text || m.field(el.ID) == nil {
		return focus.Element{}, false
	}
	return el, true
}

// updateField hands a key the navigator declined to the focused field. A
// Back key only gets here when the field's guard claimed it, and clears the
// field.
func (m *Model) updateField(el focus.Element, msg tea.KeyMsg) tea.Cmd {
	input := m.field(el.ID)
	if key.Matches(msg, m.keys.Back) {
		input.Reset()
		m.fieldChanged(el.ID)
		return nil
	}
	var cmd tea.Cmd
	*input, cmd = input.Update(msg)
	m.fieldChanged(el.ID)
	return cmd
}

func (m *Model) fieldChanged(id string) {
	switch id {
	case searchID:
		if m.pages[screenStore].SetFilter(m.search.Value()) {
			m.relayout(screenStore)
		}
	}
}

// syncFields focuses the text input whose element holds focus and blurs the
// others.
func (m *Model) syncFields() tea.Cmd {
	focused := ""
	if el, ok := m.focusedField(); ok {
		focused = el.ID
	}
	var cmds []tea.Cmd
	for _, id := range []string{searchID, draftID} {
		input := m.field(id)
		switch {
		case id == focused && !input.Focused():
			cmds = append(cmds, input.Focus())
		case id != focused && input.Focused():
			input.Blur()
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) draftDirty() bool {
	return m.draft.Value() != ""
}
