package state

import "sort"

// Set is a set of ids, used for installed apps and settings toggles.
type Set map[string]struct{}

// NewSet builds a set from a bool map, keeping the true entries.
func NewSet(values map[string]bool) Set {
	s := make(Set, len(values))
	for id, on := range values {
		if on {
			s[id] = struct{}{}
		}
	}
	return s
}

// Has reports membership.
func (s Set) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Toggle flips membership and returns the new state.
func (s Set) Toggle(id string) bool {
	if s.Has(id) {
		delete(s, id)
		return false
	}
	s[id] = struct{}{}
	return true
}

// Put sets membership explicitly.
func (s Set) Put(id string, on bool) {
	if on {
		s[id] = struct{}{}
		return
	}
	delete(s, id)
}

// Clear removes every member.
func (s Set) Clear() {
	for id := range s {
		delete(s, id)
	}
}

// Sorted returns the members in lexical order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
