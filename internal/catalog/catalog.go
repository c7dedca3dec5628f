// Package catalog holds the media-center data the screens render: streaming
// apps, store categories and products.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Catalog is the full data set. Order is display order.
type Catalog struct {
	Apps       []App      `toml:"apps"`
	Categories []Category `toml:"categories"`
	Products   []Product  `toml:"products"`
}

// App is an installable streaming app.
type App struct {
	ID          string `toml:"id"`
	Name        string `toml:"name"`
	Publisher   string `toml:"publisher"`
	Description string `toml:"description"`
}

// Category groups store products under one tab.
type Category struct {
	ID   string `toml:"id"`
	Name string `toml:"name"`
}

// Product is a store item.
type Product struct {
	ID          string `toml:"id"`
	Name        string `toml:"name"`
	Category    string `toml:"category"`
	PriceCents  int    `toml:"price_cents"`
	Description string `toml:"description"`
}

// Price renders the product price as dollars.
func (p Product) Price() string {
	return FormatPrice(p.PriceCents)
}

// FormatPrice renders cents as a dollar amount.
func FormatPrice(cents int) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

// Validate checks ids are present and unique and that every product
// belongs to a known category.
func (c Catalog) Validate() error {
	var errs []error
	seen := make(map[string]struct{})
	check := func(kind, id string) {
		if strings.TrimSpace(id) == "" {
			errs = append(errs, fmt.Errorf("%s with empty id", kind))
			return
		}
		key := kind + "/" + id
		if _, dup := seen[key]; dup {
			errs = append(errs, fmt.Errorf("duplicate %s id %q", kind, id))
			return
		}
		seen[key] = struct{}{}
	}
	for _, a := range c.Apps {
		check("app", a.ID)
	}
	for _, cat := range c.Categories {
		check("category", cat.ID)
	}
	for _, p := range c.Products {
		check("product", p.ID)
		if _, ok := seen["category/"+p.Category]; !ok {
			errs = append(errs, fmt.Errorf("product %q has unknown category %q", p.ID, p.Category))
		}
		if p.PriceCents < 0 {
			errs = append(errs, fmt.Errorf("product %q has negative price", p.ID))
		}
	}
	return errors.Join(errs...)
}

// App returns the app with id.
func (c Catalog) App(id string) (App, bool) {
	for _, a := range c.Apps {
		if a.ID == id {
			return a, true
		}
	}
	return App{}, false
}

// Product returns the product with id.
func (c Catalog) Product(id string) (Product, bool) {
	for _, p := range c.Products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// ProductsIn returns the products of a category in catalogue order.
func (c Catalog) ProductsIn(category string) []Product {
	var out []Product
	for _, p := range c.Products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Clone returns a deep copy.
func (c Catalog) Clone() Catalog {
	return Catalog{
		Apps:       append([]App(nil), c.Apps...),
		Categories: append([]Category(nil), c.Categories...),
		Products:   append([]Product(nil), c.Products...),
	}
}
