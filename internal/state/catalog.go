package state

import "github.com/atomicstack/tvnav/internal/catalog"

// CatalogStore holds the catalogue the screens render from. Before the
// first load it is empty, which screens treat as "still loading".
type CatalogStore interface {
	Catalog() catalog.Catalog
	SetCatalog(catalog.Catalog)
	Loaded() bool
	Revision() int
	Err() error
	SetErr(error)
}

type catalogStore struct {
	catalog  catalog.Catalog
	loaded   bool
	revision int
	err      error
}

func NewCatalogStore() CatalogStore {
	return &catalogStore{}
}

func (s *catalogStore) Catalog() catalog.Catalog {
	return s.catalog.Clone()
}

// SetCatalog replaces the catalogue, clears any load error and bumps the
// revision.
func (s *catalogStore) SetCatalog(c catalog.Catalog) {
	s.catalog = c.Clone()
	s.loaded = true
	s.revision++
	s.err = nil
}

func (s *catalogStore) Loaded() bool {
	return s.loaded
}

func (s *catalogStore) Revision() int {
	return s.revision
}

func (s *catalogStore) Err() error {
	return s.err
}

// SetErr records a load failure. A previously loaded catalogue is kept.
func (s *catalogStore) SetErr(err error) {
	s.err = err
}
