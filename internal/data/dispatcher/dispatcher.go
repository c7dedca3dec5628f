package dispatcher

import (
	"github.com/atomicstack/tvnav/internal/backend"
	"github.com/atomicstack/tvnav/internal/catalog"
	"github.com/atomicstack/tvnav/internal/state"
)

type Result struct {
	CatalogUpdated bool
	Err            error
}

type Dispatcher struct {
	catalog state.CatalogStore
}

func New(c state.CatalogStore) *Dispatcher {
	return &Dispatcher{catalog: c}
}

func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		if evt.Kind == backend.KindCatalog {
			d.catalog.SetErr(evt.Err)
		}
		res.Err = evt.Err
		return res
	}
	switch evt.Kind {
	case backend.KindCatalog:
		if c, ok := evt.Data.(catalog.Catalog); ok {
			d.catalog.SetCatalog(c)
			res.CatalogUpdated = true
		}
	}
	return res
}
