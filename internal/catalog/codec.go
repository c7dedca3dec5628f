package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

//go:embed default.toml
var defaultCatalog []byte

// Default returns the built-in catalogue.
func Default() Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("built-in catalogue is invalid: %v", err))
	}
	return c
}

// Parse decodes and validates a TOML catalogue.
func Parse(data []byte) (Catalog, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads a TOML catalogue from r and validates it.
func Decode(r io.Reader) (Catalog, error) {
	var c Catalog
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return Catalog{}, fmt.Errorf("decode catalogue: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Catalog{}, fmt.Errorf("invalid catalogue: %w", err)
	}
	return c, nil
}

// Encode writes c as TOML.
func Encode(w io.Writer, c Catalog) error {
	enc := toml.NewEncoder(w)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode catalogue: %w", err)
	}
	return nil
}

// Load reads the catalogue at path. An empty path returns Default.
func Load(path string) (Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalogue: %w", err)
	}
	return Parse(data)
}
