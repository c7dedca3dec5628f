package catalog

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/tvnav/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	require.NotEmpty(t, c.Apps)
	require.NotEmpty(t, c.Categories)
	for _, cat := range c.Categories {
		require.NotEmpty(t, c.ProductsIn(cat.ID), "category %s has no products", cat.ID)
	}
}

func TestEncodeDecodeKeepsOrder(t *testing.T) {
	c := Default()
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, c))
	decoded, err := Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, c, decoded)
}

func TestDecodeRejectsInvalidCatalogues(t *testing.T) {
	cases := map[string]string{
		"unknown field": "[[apps]]\nid = \"a\"\nrating = 5\n",
		"duplicate app": "[[apps]]\nid = \"a\"\n[[apps]]\nid = \"a\"\n",
		"empty id":      "[[categories]]\nname = \"x\"\n",
		"orphan product": "[[categories]]\nid = \"c\"\n" +
			"[[products]]\nid = \"p\"\ncategory = \"missing\"\n",
		"negative price": "[[categories]]\nid = \"c\"\n" +
			"[[products]]\nid = \"p\"\ncategory = \"c\"\nprice_cents = -1\n",
		"syntax": "[[apps]\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(body))
			require.Error(t, err)
		})
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	c := Catalog{
		Apps:     []App{{ID: "a"}, {ID: "a"}},
		Products: []Product{{ID: "p", Category: "nope"}},
	}
	err := c.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate app")
	require.Contains(t, err.Error(), "unknown category")
}

func TestLookups(t *testing.T) {
	c := Default()
	app, ok := c.App("melody")
	require.True(t, ok)
	require.Equal(t, "Melody", app.Name)
	_, ok = c.App("missing")
	require.False(t, ok)

	p, ok := c.Product("g-chess-club")
	require.True(t, ok)
	require.Equal(t, "$0.00", p.Price())
	_, ok = c.Product("missing")
	require.False(t, ok)
	require.Nil(t, c.ProductsIn("missing"))
}

func TestFormatPrice(t *testing.T) {
	require.Equal(t, "$3.99", FormatPrice(399))
	require.Equal(t, "$19.05", FormatPrice(1905))
	require.Equal(t, "-$0.50", FormatPrice(-50))
}

func TestLoad(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), c)

	path := filepath.Join(t.TempDir(), "catalog.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[apps]]\nid = \"solo\"\nname = \"Solo\"\n"), 0o644))
	c, err = Load(path)
	require.NoError(t, err)
	require.Len(t, c.Apps, 1)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "read catalogue"))
}

func TestCloneIsIndependent(t *testing.T) {
	c := Default()
	clone := c.Clone()
	clone.Apps[0].Name = "changed"
	require.NotEqual(t, "changed", c.Apps[0].Name)
}

func TestExampleCatalogLoads(t *testing.T) {
	c, err := Load(filepath.Join(testutil.RepoRoot(t), "examples", "catalog.toml"))
	require.NoError(t, err)
	require.Len(t, c.Apps, 2)
	require.Len(t, c.ProductsIn("films"), 1)
	p, ok := c.Product("s-night-shift")
	require.True(t, ok)
	require.Equal(t, "$12.99", p.Price())
}
