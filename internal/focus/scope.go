package focus

import (
	"github.com/atomicstack/tvnav/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// ScopeOptions configures a Scope.
type ScopeOptions struct {
	// Geometry resolves element boxes. A scope without geometry can still
	// focus elements by id but cannot move spatially.
	Geometry Geometry
	// Selector tunes spatial scoring. The zero value means DefaultSelector.
	Selector Selector
	// Anchor is the preferred fallback when the focused element goes away,
	// for example a "back" button.
	Anchor string
	// OnBack handles the Back action. A nil handler lets Back bubble to the
	// scope below.
	OnBack func() tea.Cmd
	// OnFocus runs after every focus change with the new element and its
	// current box (zero when the geometry has none). Screens use it to
	// scroll the element into view.
	OnFocus func(el Element, r Rect)
}

// Scope is an isolated navigation context: one screen or one modal.
type Scope struct {
	name      string
	registry  *Registry
	current   string
	geometry  Geometry
	selector  Selector
	anchor    string
	onBack    func() tea.Cmd
	onFocus   func(Element, Rect)
	overrides overrides
	groups    map[string]*groupPolicy
}

// NewScope creates an empty scope.
func NewScope(name string, opts ScopeOptions) *Scope {
	sel := opts.Selector
	if sel == (Selector{}) {
		sel = DefaultSelector()
	}
	return &Scope{
		name:     name,
		registry: NewRegistry(),
		geometry: opts.Geometry,
		selector: sel,
		anchor:   opts.Anchor,
		onBack:   opts.OnBack,
		onFocus:  opts.OnFocus,
		groups:   make(map[string]*groupPolicy),
	}
}

// Name returns the scope name used in traces.
func (s *Scope) Name() string { return s.name }

// Registry exposes the scope's elements for read access.
func (s *Scope) Registry() *Registry { return s.registry }

// SetGeometry replaces the geometry provider.
func (s *Scope) SetGeometry(g Geometry) { s.geometry = g }

// SetSelector replaces the spatial scoring parameters.
func (s *Scope) SetSelector(sel Selector) { s.selector = sel }

// SetBackHandler replaces the Back handler. nil lets Back bubble.
func (s *Scope) SetBackHandler(fn func() tea.Cmd) { s.onBack = fn }

// Register adds or replaces an element. When nothing is focused the first
// focusable element in registration order receives focus.
func (s *Scope) Register(el Element) {
	if el.ID == "" {
		return
	}
	replaced := s.registry.Register(el)
	events.Focus.Register(s.name, el.ID, replaced)
	switch {
	case s.current == "":
		s.focusFirst()
	case el.ID == s.current && !el.focusable():
		s.fallback(el.ID)
	}
}

// Unregister removes an element. When it held focus, focus falls back to
// the anchor, then the first remaining enabled element, then the first
// remaining element.
func (s *Scope) Unregister(id string) bool {
	if !s.registry.Unregister(id) {
		return false
	}
	if id == s.current {
		s.fallback(id)
	}
	return true
}

// Sync makes the registry match elements: every element is registered and
// any registered id not present in elements is removed.
func (s *Scope) Sync(elements []Element) {
	keep := make(map[string]struct{}, len(elements))
	for _, el := range elements {
		keep[el.ID] = struct{}{}
		s.Register(el)
	}
	for _, id := range s.registry.IDs() {
		if _, ok := keep[id]; !ok {
			s.Unregister(id)
		}
	}
}

// Clear removes every element and drops focus.
func (s *Scope) Clear() {
	for _, id := range s.registry.IDs() {
		s.registry.Unregister(id)
	}
	s.current = ""
}

// Current returns the focused element.
func (s *Scope) Current() (Element, bool) {
	if s.current == "" {
		return Element{}, false
	}
	return s.registry.Get(s.current)
}

// CurrentID returns the id of the focused element, or "".
func (s *Scope) CurrentID() string { return s.current }

// IsFocused reports whether id holds focus.
func (s *Scope) IsFocused(id string) bool {
	return id != "" && s.current == id
}

// SetFocus focuses id. Unknown or disabled ids are rejected and the prior
// focus is kept.
func (s *Scope) SetFocus(id string) bool {
	el, ok := s.registry.Get(id)
	if !ok || !el.focusable() {
		events.Focus.Reject(s.name, id)
		return false
	}
	s.focus(el)
	return true
}

// Override registers an explicit rule: moving dir from the element from
// goes to to. An empty to removes the rule.
func (s *Scope) Override(from string, dir Direction, to string) {
	s.overrides.set(from, dir, to)
}

// OverrideGroup registers a rule for every member of group. Id rules take
// precedence over group rules.
func (s *Scope) OverrideGroup(group string, dir Direction, to string) {
	s.overrides.setGroup(group, dir, to)
}

// RememberGroup makes group a remembering group: any move that enters it
// from outside lands on its active member. With trackFocus the active
// member follows focus; otherwise only SetGroupActive changes it.
func (s *Scope) RememberGroup(group string, trackFocus bool) {
	if group == "" {
		return
	}
	p, ok := s.groups[group]
	if !ok {
		p = &groupPolicy{}
		s.groups[group] = p
	}
	p.trackFocus = trackFocus
}

// SetGroupActive records the active member of a remembering group.
func (s *Scope) SetGroupActive(group, id string) {
	if p, ok := s.groups[group]; ok {
		p.active = id
	}
}

// GroupActive returns the member a move into group would land on.
func (s *Scope) GroupActive(group string) (Element, bool) {
	p, ok := s.groups[group]
	if !ok {
		return Element{}, false
	}
	if p.active != "" {
		if el, ok := s.available(p.active); ok && el.Group == group {
			return el, true
		}
	}
	for _, el := range s.registry.Elements() {
		if el.Group != group {
			continue
		}
		if _, ok := s.available(el.ID); ok {
			return el, true
		}
	}
	return Element{}, false
}

// Move shifts focus in dir and reports whether focus changed. An empty
// registry, an element without geometry, and a saturated edge are no-ops.
func (s *Scope) Move(dir Direction) bool {
	cur, ok := s.Current()
	if !ok {
		return false
	}
	target, ok := s.next(cur, dir)
	if !ok || target.ID == cur.ID {
		events.Focus.Saturate(s.name, cur.ID, dir.String())
		return false
	}
	s.focus(target)
	events.Focus.Move(s.name, cur.ID, target.ID, dir.String())
	return true
}

// Select runs the focused element's OnSelect. With nothing focused it does
// nothing.
func (s *Scope) Select() tea.Cmd {
	el, ok := s.Current()
	if !ok {
		return nil
	}
	events.Focus.Select(s.name, el.ID, el.Key.Kind, el.Key.Target)
	if el.OnSelect == nil || el.Disabled {
		return nil
	}
	return el.OnSelect(el)
}

// Back runs the scope's back handler. ok is false when the scope has none.
func (s *Scope) Back() (tea.Cmd, bool) {
	if s.onBack == nil {
		return nil, false
	}
	events.Focus.Back(s.name)
	return s.onBack(), true
}

// Bounds returns the current box of a registered element.
func (s *Scope) Bounds(id string) (Rect, bool) {
	el, ok := s.registry.Get(id)
	if !ok {
		return Rect{}, false
	}
	return s.bounds(el)
}

func (s *Scope) next(cur Element, dir Direction) (Element, bool) {
	if to, ok := s.overrides.lookup(cur, dir); ok {
		if el, ok := s.available(to); ok {
			return s.enterGroup(cur, el), true
		}
	}
	from, ok := s.bounds(cur)
	if !ok {
		return Element{}, false
	}
	candidates := make([]Candidate, 0, s.registry.Len())
	for _, el := range s.registry.Elements() {
		if el.ID == cur.ID || !el.focusable() {
			continue
		}
		r, ok := s.bounds(el)
		if !ok {
			continue
		}
		candidates = append(candidates, Candidate{ID: el.ID, Center: r.Center()})
	}
	id, ok := s.selector.Best(from.Center(), dir, candidates)
	if !ok {
		return Element{}, false
	}
	el, _ := s.registry.Get(id)
	return s.enterGroup(cur, el), true
}

// enterGroup redirects a move that crosses into a remembering group.
func (s *Scope) enterGroup(from, to Element) Element {
	if to.Group == "" || to.Group == from.Group {
		return to
	}
	if active, ok := s.GroupActive(to.Group); ok {
		return active
	}
	return to
}

func (s *Scope) available(id string) (Element, bool) {
	el, ok := s.registry.Get(id)
	if !ok || !el.focusable() {
		return Element{}, false
	}
	if _, ok := s.bounds(el); !ok {
		return Element{}, false
	}
	return el, true
}

func (s *Scope) bounds(el Element) (Rect, bool) {
	if s.geometry == nil {
		return Rect{}, false
	}
	r, ok := s.geometry.Bounds(el)
	if !ok || r.Empty() {
		return Rect{}, false
	}
	return r, true
}

func (s *Scope) focus(el Element) {
	if s.current == el.ID {
		return
	}
	s.current = el.ID
	if p, ok := s.groups[el.Group]; ok && p.trackFocus {
		p.active = el.ID
	}
	events.Focus.Set(s.name, el.ID)
	if s.onFocus != nil {
		r, _ := s.bounds(el)
		s.onFocus(el, r)
	}
}

func (s *Scope) focusFirst() {
	for _, el := range s.registry.Elements() {
		if el.focusable() {
			s.focus(el)
			return
		}
	}
}

func (s *Scope) fallback(removed string) {
	s.current = ""
	if s.anchor != "" && s.anchor != removed {
		if el, ok := s.registry.Get(s.anchor); ok && el.focusable() {
			s.focus(el)
			events.Focus.Fallback(s.name, removed, el.ID)
			return
		}
	}
	elements := s.registry.Elements()
	for _, el := range elements {
		if el.focusable() {
			s.focus(el)
			events.Focus.Fallback(s.name, removed, el.ID)
			return
		}
	}
	if len(elements) > 0 {
		s.focus(elements[0])
		events.Focus.Fallback(s.name, removed, elements[0].ID)
		return
	}
	events.Focus.Fallback(s.name, removed, "")
}
