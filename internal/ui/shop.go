package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/tvnav/internal/catalog"
	"github.com/atomicstack/tvnav/internal/focus"
	"github.com/atomicstack/tvnav/internal/format/table"
	"github.com/atomicstack/tvnav/internal/store"
	"github.com/atomicstack/tvnav/internal/ui/command"
	uistate "github.com/atomicstack/tvnav/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

const (
	tabsGroup   = "tabs"
	cartID      = "cart"
	cartWidth   = 12
	searchWidth = 40
	tabsRow     = 2
	gridHeading = 4
	gridTop     = 5
	tileHeight  = 4
	tileGap     = 2
)

func tabID(category string) string { return "tab-" + category }

func productID(id string) string { return "product-" + id }

func (m *Model) layoutStore(width int) *layout {
	lay := newLayout(width)
	fieldWidth := searchWidth
	if fieldWidth > width {
		fieldWidth = width
	}
	m.search.Width = fieldWidth - ansi.StringWidth(m.search.Prompt) - 1
	lay.add(focus.Element{
		ID:       searchID,
		Key:      focus.Key{Kind: "search"},
		Text:     true,
		OnSelect: m.submitSearch,
	}, box{x: 0, y: 0, w: fieldWidth, h: 1}, m.drawField(&m.search, fieldWidth))

	if !m.catalog.Loaded() {
		lay.text(0, tabsRow, styles.Loading.Render("Loading catalogue…"))
		return lay
	}
	cat := m.catalog.Catalog()
	if m.category == "" || !hasCategory(cat, m.category) {
		m.category = ""
		if len(cat.Categories) > 0 {
			m.category = cat.Categories[0].ID
		}
	}

	x := 0
	for _, c := range cat.Categories {
		w := ansi.StringWidth(c.Name) + 2
		active := c.ID == m.category
		lay.add(focus.Element{
			ID:       tabID(c.ID),
			Key:      focus.Key{Kind: "tab", Target: c.ID},
			Group:    tabsGroup,
			OnSelect: m.selectTab,
		}, box{x: x, y: tabsRow, w: w, h: 1}, drawTab(c.Name, w, active))
		x += w + 1
	}
	cartX := width - cartWidth
	if cartX < x+1 {
		cartX = x + 1
	}
	lay.add(focus.Element{
		ID:       cartID,
		Key:      focus.Key{Kind: "cart"},
		OnSelect: m.openCart,
	}, box{x: cartX, y: tabsRow, w: cartWidth, h: 1}, drawButton(fmt.Sprintf("Cart (%d)", cartCount(m.cart)), cartWidth))

	products, heading := m.storeProducts(cat)
	lay.text(0, gridHeading, styles.Title.Render(heading))
	if len(products) == 0 {
		lay.text(0, gridTop, styles.Muted.Render("No products match"))
		return lay
	}
	cols := 3
	if width < 60 {
		cols = 2
	}
	if width < 30 {
		cols = 1
	}
	tileWidth := (width - (cols-1)*tileGap) / cols
	for i, p := range products {
		row, col := i/cols, i%cols
		lay.add(focus.Element{
			ID:       productID(p.ID),
			Key:      focus.Key{Kind: "product", Target: p.ID},
			Row:      row,
			Col:      col,
			OnSelect: m.openProduct,
		}, box{
			x: col * (tileWidth + tileGap),
			y: gridTop + row*(tileHeight+1),
			w: tileWidth,
			h: tileHeight,
		}, drawTile(p.Name, p.Price(), tileWidth, tileHeight))
	}
	return lay
}

// wireStoreScope applies the store's navigation rules after a layout: the
// tab strip returns to the selected category and the last tab leads to the
// cart.
func (m *Model) wireStoreScope(scope *focus.Scope) {
	if m.category != "" {
		scope.SetGroupActive(tabsGroup, tabID(m.category))
	}
	cat := m.catalog.Catalog()
	if n := len(cat.Categories); n > 0 {
		scope.Override(tabID(cat.Categories[n-1].ID), focus.Right, cartID)
	}
}

// storeProducts returns the products to show: search results across every
// category while a query is set, the selected category otherwise.
func (m *Model) storeProducts(cat catalog.Catalog) ([]catalog.Product, string) {
	query := strings.TrimSpace(m.pages[screenStore].Filter)
	if query == "" {
		name := m.category
		for _, c := range cat.Categories {
			if c.ID == m.category {
				name = c.Name
			}
		}
		return cat.ProductsIn(m.category), name
	}
	items := make([]uistate.Item, len(cat.Products))
	for i, p := range cat.Products {
		items[i] = uistate.Item{ID: p.ID, Label: p.Name}
	}
	matches := uistate.FilterItems(items, query)
	out := make([]catalog.Product, 0, len(matches))
	for _, item := range matches {
		if p, ok := cat.Product(item.ID); ok {
			out = append(out, p)
		}
	}
	return out, fmt.Sprintf("Results for %q", query)
}

func hasCategory(cat catalog.Catalog, id string) bool {
	for _, c := range cat.Categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

func cartCount(items []store.CartItem) int {
	n := 0
	for _, item := range items {
		n += item.Quantity
	}
	return n
}

func (m *Model) selectTab(el focus.Element) tea.Cmd {
	if el.Key.Target == m.category && m.pages[screenStore].Filter == "" {
		return nil
	}
	m.category = el.Key.Target
	m.search.Reset()
	page := m.pages[screenStore]
	page.SetFilter("")
	page.Viewport.Offset = 0
	m.relayout(screenStore)
	return nil
}

// submitSearch moves from the search field to the first result.
func (m *Model) submitSearch(focus.Element) tea.Cmd {
	lay := m.layouts[screenStore]
	for _, n := range lay.nodes {
		if n.el.Key.Kind == "product" {
			m.screens[screenStore].SetFocus(n.el.ID)
			return nil
		}
	}
	m.setInfo("No products match")
	return nil
}

func (m *Model) openProduct(el focus.Element) tea.Cmd {
	p, ok := m.catalog.Catalog().Product(el.Key.Target)
	if !ok {
		return nil
	}
	lines := []string{
		styles.Price.Render(p.Price()),
	}
	if p.Description != "" {
		lines = append(lines, "", p.Description)
	}
	m.openModal(modalSpec{
		name:   "product",
		title:  p.Name,
		lines:  lines,
		anchor: "modal-close",
		buttons: []modalButton{
			{id: "modal-add", label: "Add to cart", onSelect: func() tea.Cmd {
				m.closeModal()
				return m.addToCart(p)
			}},
			{id: "modal-close", label: "Close", onSelect: func() tea.Cmd {
				m.closeModal()
				return nil
			}},
		},
	})
	return nil
}

func (m *Model) addToCart(p catalog.Product) tea.Cmd {
	return m.bus.Execute(command.Request{
		ID:    "cart:add",
		Label: p.Name,
		Run: func() tea.Msg {
			var qty int
			msg := m.persist("", func() error {
				var err error
				qty, err = m.store.AddToCart(p.ID)
				return err
			})
			if res, ok := msg.(actionResultMsg); ok && res.err == nil {
				res.info = fmt.Sprintf("Added %s to cart (%d)", p.Name, qty)
				return res
			}
			return msg
		},
	})
}

func (m *Model) openCart(focus.Element) tea.Cmd {
	cat := m.catalog.Catalog()
	var lines []string
	total := 0
	rows := make([][]string, 0, len(m.cart))
	for _, item := range m.cart {
		name, price := item.ProductID, 0
		if p, ok := cat.Product(item.ProductID); ok {
			name, price = p.Name, p.PriceCents
		}
		total += price * item.Quantity
		rows = append(rows, []string{
			fmt.Sprintf("%d ×", item.Quantity),
			name,
			catalog.FormatPrice(price * item.Quantity),
		})
	}
	if len(rows) == 0 {
		lines = append(lines, styles.Muted.Render("Your cart is empty"))
	} else {
		lines = append(lines, table.Format(rows, []table.Alignment{table.AlignRight, table.AlignLeft, table.AlignRight})...)
		lines = append(lines, "", "Total "+styles.Price.Render(catalog.FormatPrice(total)))
	}
	m.openModal(modalSpec{
		name:   "cart",
		title:  "Cart",
		lines:  lines,
		anchor: "modal-close",
		buttons: []modalButton{
			{id: "modal-checkout", label: "Checkout", disabled: len(m.cart) == 0, onSelect: func() tea.Cmd {
				m.closeModal()
				return m.checkout(total)
			}},
			{id: "modal-close", label: "Close", onSelect: func() tea.Cmd {
				m.closeModal()
				return nil
			}},
		},
	})
	return nil
}

func (m *Model) checkout(total int) tea.Cmd {
	return m.bus.Execute(command.Request{
		ID:    "cart:checkout",
		Label: catalog.FormatPrice(total),
		Run: func() tea.Msg {
			return m.persist(fmt.Sprintf("Order placed: %s", catalog.FormatPrice(total)), func() error {
				return m.store.ClearCart()
			})
		},
	})
}
