package focus

import tea "github.com/charmbracelet/bubbletea"

// Key is the structured identity of an element. Screens switch on Kind and
// read Target instead of encoding both into the element id.
type Key struct {
	Kind   string
	Target string
}

// IsZero reports whether the key carries no information.
func (k Key) IsZero() bool {
	return k.Kind == "" && k.Target == ""
}

// Element is a focusable entry in a Scope.
type Element struct {
	// ID is unique within a scope.
	ID  string
	Key Key
	// Disabled elements stay registered but are never focused by navigation.
	Disabled bool
	// Group names a set of elements that share a group policy or a group
	// override, such as a tab strip.
	Group string
	// Row and Col are zero-based layout hints used by GridGeometry.
	Row int
	Col int
	// Text marks a single-line text field. While it has focus, horizontal
	// arrows and printable keys belong to the field.
	Text bool
	// GuardBack, when set on a text field, is consulted before Back is
	// routed to the scope. Returning true hands the key to the field
	// instead, which lets a screen protect an unsaved draft.
	GuardBack func() bool
	// OnSelect runs when Select is pressed while the element has focus.
	OnSelect func(Element) tea.Cmd
}

func (e Element) focusable() bool {
	return e.ID != "" && !e.Disabled
}
