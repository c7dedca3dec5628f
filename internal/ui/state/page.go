package state

// Page is the per-screen navigation state that survives switching away from
// a screen and back.
type Page struct {
	ID       string
	Title    string
	Viewport Viewport
	// LastFocus is the element focused when the screen was left. It is
	// restored on return when still registered.
	LastFocus string
	// Filter is the search query, for screens that have one.
	Filter string
}

// NewPage constructs a Page.
func NewPage(id, title string) *Page {
	return &Page{ID: id, Title: title}
}

// Remember records the element to restore on return.
func (p *Page) Remember(focusID string) {
	p.LastFocus = focusID
}

// SetFilter stores the query and reports whether it changed, ignoring
// surrounding whitespace. A changed filter resets the scroll position.
func (p *Page) SetFilter(query string) bool {
	if trim(query) == trim(p.Filter) {
		p.Filter = query
		return false
	}
	p.Filter = query
	p.Viewport.Offset = 0
	return true
}
