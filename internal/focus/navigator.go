package focus

import (
	"fmt"

	"github.com/atomicstack/tvnav/internal/logging/events"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Navigator owns the stack of scopes and routes key presses to the top one.
//
// A single Navigator replaces per-screen key listeners: a key is resolved
// exactly once, and a scope pushed on top (a modal) suspends everything
// beneath it until it is popped.
type Navigator struct {
	keys   KeyMap
	scopes []*Scope
}

// NewNavigator returns an empty navigator using keys.
func NewNavigator(keys KeyMap) *Navigator {
	return &Navigator{keys: keys}
}

// Keys returns the active key map.
func (n *Navigator) Keys() KeyMap { return n.keys }

// SetKeys replaces the key map.
func (n *Navigator) SetKeys(keys KeyMap) { n.keys = keys }

// Push makes s the active scope. A scope already on the stack is moved to
// the top.
func (n *Navigator) Push(s *Scope) {
	if s == nil {
		return
	}
	n.detach(s)
	n.scopes = append(n.scopes, s)
	events.Scope.Push(s.Name(), len(n.scopes))
}

// Pop removes and returns the top scope. The base scope is never popped.
func (n *Navigator) Pop() *Scope {
	if len(n.scopes) <= 1 {
		return nil
	}
	top := n.scopes[len(n.scopes)-1]
	n.scopes = n.scopes[:len(n.scopes)-1]
	events.Scope.Pop(top.Name(), len(n.scopes))
	return top
}

// Remove drops s from anywhere above the base of the stack.
func (n *Navigator) Remove(s *Scope) bool {
	if s == nil || len(n.scopes) <= 1 || n.scopes[0] == s {
		return false
	}
	if !n.detach(s) {
		return false
	}
	events.Scope.Pop(s.Name(), len(n.scopes))
	return true
}

// Reset replaces the whole stack with base.
func (n *Navigator) Reset(base *Scope) {
	for i := len(n.scopes) - 1; i >= 0; i-- {
		events.Scope.Pop(n.scopes[i].Name(), i)
	}
	n.scopes = n.scopes[:0]
	if base != nil {
		n.Push(base)
	}
}

// Top returns the active scope.
func (n *Navigator) Top() *Scope {
	if len(n.scopes) == 0 {
		return nil
	}
	return n.scopes[len(n.scopes)-1]
}

// Base returns the bottom scope.
func (n *Navigator) Base() *Scope {
	if len(n.scopes) == 0 {
		return nil
	}
	return n.scopes[0]
}

// Depth returns the number of stacked scopes.
func (n *Navigator) Depth() int { return len(n.scopes) }

// Find returns the stacked scope with the given name.
func (n *Navigator) Find(name string) *Scope {
	for i := len(n.scopes) - 1; i >= 0; i-- {
		if n.scopes[i].Name() == name {
			return n.scopes[i]
		}
	}
	return nil
}

// Resolve maps a key press to an action for the current top scope.
//
// Back is checked first and applies inside text fields unless the field's
// GuardBack claims it. Inside a text field only vertical movement and
// TextSelect are navigation, and printable keys always type, even when
// bound to Up or Down.
func (n *Navigator) Resolve(msg tea.KeyMsg) (Action, Direction) {
	var cur Element
	var focused bool
	if top := n.Top(); top != nil {
		cur, focused = top.Current()
	}
	inText := focused && cur.Text
	switch {
	case key.Matches(msg, n.keys.Back):
		if inText && cur.GuardBack != nil && cur.GuardBack() {
			return ActionNone, 0
		}
		return ActionBack, 0
	case !inText && key.Matches(msg, n.keys.BackOutsideText):
		return ActionBack, 0
	case inText && typed(msg):
		return ActionNone, 0
	case key.Matches(msg, n.keys.Up):
		return ActionMove, Up
	case key.Matches(msg, n.keys.Down):
		return ActionMove, Down
	case inText:
		if key.Matches(msg, n.keys.TextSelect) {
			return ActionSelect, 0
		}
		return ActionNone, 0
	case key.Matches(msg, n.keys.Left):
		return ActionMove, Left
	case key.Matches(msg, n.keys.Right):
		return ActionMove, Right
	case key.Matches(msg, n.keys.Select):
		return ActionSelect, 0
	}
	return ActionNone, 0
}

func typed(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace
}

// HandleKey resolves and performs msg. handled is true for every key that
// maps to an action, including moves that saturate, so callers stop
// propagating it; unhandled keys belong to whatever has focus.
func (n *Navigator) HandleKey(msg tea.KeyMsg) (handled bool, cmd tea.Cmd) {
	top := n.Top()
	if top == nil {
		return false, nil
	}
	action, dir := n.Resolve(msg)
	switch action {
	case ActionMove:
		top.Move(dir)
		return true, nil
	case ActionSelect:
		return true, n.Select()
	case ActionBack:
		return true, n.Back()
	}
	return false, nil
}

// Move moves focus in the top scope.
func (n *Navigator) Move(dir Direction) bool {
	top := n.Top()
	if top == nil {
		return false
	}
	return top.Move(dir)
}

// Select activates the focused element of the top scope. A panicking
// activation is recovered and logged so one bad handler cannot take the
// remote control away from the whole screen.
func (n *Navigator) Select() (cmd tea.Cmd) {
	top := n.Top()
	if top == nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			events.Focus.Panic(top.Name(), "select", fmt.Sprint(r))
			cmd = nil
		}
	}()
	return top.Select()
}

// Back offers the Back action to each scope from the top down and runs the
// first handler found. With no handler anywhere it does nothing.
func (n *Navigator) Back() (cmd tea.Cmd) {
	var current *Scope
	defer func() {
		if r := recover(); r != nil {
			name := ""
			if current != nil {
				name = current.Name()
			}
			events.Focus.Panic(name, "back", fmt.Sprint(r))
			cmd = nil
		}
	}()
	for i := len(n.scopes) - 1; i >= 0; i-- {
		current = n.scopes[i]
		if c, ok := current.Back(); ok {
			return c
		}
	}
	events.Focus.BackUnhandled(len(n.scopes))
	return nil
}

func (n *Navigator) detach(s *Scope) bool {
	for i, existing := range n.scopes {
		if existing == s {
			n.scopes = append(n.scopes[:i], n.scopes[i+1:]...)
			return true
		}
	}
	return false
}
