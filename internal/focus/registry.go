package focus

// Registry keeps elements in registration order.
//
// Registering an id that is already present replaces the stored element in
// place: the last write wins and the entry keeps its original position in
// the order. Re-renders routinely re-register the same logical element, so
// this is not treated as an error.
type Registry struct {
	order    []string
	elements map[string]Element
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{elements: make(map[string]Element)}
}

// Register adds el, or replaces the element with the same id. It reports
// whether an existing entry was replaced.
func (r *Registry) Register(el Element) bool {
	if el.ID == "" {
		return false
	}
	_, replaced := r.elements[el.ID]
	if !replaced {
		r.order = append(r.order, el.ID)
	}
	r.elements[el.ID] = el
	return replaced
}

// Unregister removes id and reports whether it was present.
func (r *Registry) Unregister(id string) bool {
	if _, ok := r.elements[id]; !ok {
		return false
	}
	delete(r.elements, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Get returns the element registered under id.
func (r *Registry) Get(id string) (Element, bool) {
	el, ok := r.elements[id]
	return el, ok
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.elements[id]
	return ok
}

// Len returns the number of registered elements.
func (r *Registry) Len() int {
	return len(r.order)
}

// IDs returns the registered ids in registration order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}

// Elements returns the registered elements in registration order.
func (r *Registry) Elements() []Element {
	out := make([]Element, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.elements[id])
	}
	return out
}
