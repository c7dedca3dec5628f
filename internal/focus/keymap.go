package focus

import (
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap binds key names to navigation actions.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	// Select activates the focused element. TextSelect is the subset that
	// still means Select while a text field has focus (space must type).
	Select     key.Binding
	TextSelect key.Binding

	// Back always reaches the scope, text field or not. BackOutsideText is
	// only Back when no text field has focus (backspace must edit).
	Back            key.Binding
	BackOutsideText key.Binding
}

// Bindings lists key names per action. Empty lists keep the defaults.
type Bindings struct {
	Up     []string
	Down   []string
	Left   []string
	Right  []string
	Select []string
	Back   []string
}

// DefaultKeyMap returns the arrow-key D-pad mapping.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "right"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " ", "space"),
			key.WithHelp("enter", "select"),
		),
		TextSelect: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "alt+left"),
			key.WithHelp("esc", "back"),
		),
		BackOutsideText: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "back"),
		),
	}
}

// With returns a copy of k with the non-empty lists in b applied. Back keys
// that edit text (backspace, delete, space, single characters) are added to
// BackOutsideText instead, so text fields keep them.
func (k KeyMap) With(b Bindings) KeyMap {
	apply := func(binding *key.Binding, keys []string) {
		if len(keys) == 0 {
			return
		}
		binding.SetKeys(keys...)
	}
	apply(&k.Up, b.Up)
	apply(&k.Down, b.Down)
	apply(&k.Left, b.Left)
	apply(&k.Right, b.Right)
	apply(&k.Select, b.Select)
	if len(b.Back) > 0 {
		var always, outside []string
		for _, name := range b.Back {
			if editsText(name) {
				outside = append(outside, name)
				continue
			}
			always = append(always, name)
		}
		k.Back.SetKeys(always...)
		if len(outside) > 0 {
			keys := append([]string(nil), k.BackOutsideText.Keys()...)
			k.BackOutsideText.SetKeys(append(keys, outside...)...)
		}
	}
	return k
}

func editsText(name string) bool {
	switch name {
	case "backspace", "delete", "ctrl+h", "space", " ":
		return true
	}
	return utf8.RuneCountInString(name) == 1
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Select, k.Back}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Select, k.TextSelect, k.Back, k.BackOutsideText},
	}
}
