package ui

import (
	"testing"

	"github.com/atomicstack/tvnav/internal/catalog"
)

func TestRightFromSidebarEntersContent(t *testing.T) {
	h := newLoadedHarness(t, Options{})
	expectFocus(t, h, "nav-apps")
	h.SendKeys("right")
	expectFocus(t, h, "app-streamly")
}

func TestLeftIntoSidebarLandsOnActiveScreen(t *testing.T) {
	h := newLoadedHarness(t, Options{})
	h.SendKeys("right", "down")
	expectFocus(t, h, "app-tubecast")
	// The row lines up with the Community entry; the sidebar remembers Apps.
	h.SendKeys("left")
	expectFocus(t, h, "nav-apps")
	h.SendKeys("right")
	expectFocus(t, h, "app-tubecast")
}

func TestSidebarMovesStayInSidebar(t *testing.T) {
	h := newLoadedHarness(t, Options{})
	h.SendKeys("up")
	expectFocus(t, h, "nav-apps")
	h.SendKeys("down", "down", "down", "down")
	expectFocus(t, h, "nav-settings")
	h.SendKeys("left")
	expectFocus(t, h, "nav-settings")
}

func TestSelectingSidebarEntrySwitchesScreen(t *testing.T) {
	h := newLoadedHarness(t, Options{})
	h.SendKeys("down", "enter")
	expectScreen(t, h, screenStore)
	expectFocus(t, h, "nav-store")
	if h.Model().nav.Depth() != 2 {
		t.Fatalf("expected the previous screen scope to be replaced, depth %d", h.Model().nav.Depth())
	}
	h.SendKeys("up", "enter")
	expectScreen(t, h, screenApps)
	expectFocus(t, h, "nav-apps")
}

func TestSwitchingBackRestoresLastContentFocus(t *testing.T) {
	h := newLoadedHarness(t, Options{})
	h.SendKeys("right", "down", "left")
	h.SendKeys("down", "enter")
	expectScreen(t, h, screenStore)
	h.SendKeys("up", "enter")
	expectScreen(t, h, screenApps)
	h.SendKeys("right")
	expectFocus(t, h, "app-tubecast")
}

func TestStoreTabsReturnToSelectedCategory(t *testing.T) {
	h := newLoadedHarness(t, Options{Screen: screenStore})
	h.SendKeys("right")
	expectFocus(t, h, "tab-movies")
	h.SendKeys("right", "enter")
	expectFocus(t, h, "tab-series")
	if h.Model().category != "series" {
		t.Fatalf("expected series category, got %q", h.Model().category)
	}
	h.SendKeys("down")
	expectFocus(t, h, "product-s-harbor-watch")
	h.SendKeys("right")
	expectFocus(t, h, "product-s-kitchen-wars")
	// Geometrically the Games tab is nearest, but the strip remembers Series.
	h.SendKeys("up")
	expectFocus(t, h, "tab-series")
}

func TestStoreLastTabLeadsToCart(t *testing.T) {
	h := newLoadedHarness(t, Options{Screen: screenStore})
	h.SendKeys("right", "right", "right", "right")
	expectFocus(t, h, "tab-games")
	h.SendKeys("right")
	expectFocus(t, h, cartID)
}

func TestBackFromContentFocusesSidebarThenQuits(t *testing.T) {
	h := newLoadedHarness(t, Options{})
	h.SendKeys("right", "esc")
	expectFocus(t, h, "nav-apps")
	if h.Quit() {
		t.Fatalf("expected Back from content to stay in the program")
	}
	h.SendKeys("esc")
	if !h.Quit() {
		t.Fatalf("expected Back from the sidebar to quit")
	}
}

func TestBackspaceOutsideTextIsBack(t *testing.T) {
	h := newLoadedHarness(t, Options{})
	h.SendKeys("right", "backspace")
	expectFocus(t, h, "nav-apps")
	h.SendKeys("alt+left")
	if !h.Quit() {
		t.Fatalf("expected alt+left at the sidebar to quit")
	}
}

func TestCtrlCQuits(t *testing.T) {
	h := newLoadedHarness(t, Options{})
	h.SendKeys("ctrl+c")
	if !h.Quit() {
		t.Fatalf("expected ctrl+c to quit")
	}
}

func TestEmptyCatalogueLeavesOnlySidebar(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{}))
	h.SendKeys("right")
	expectFocus(t, h, "nav-apps")
	if n := h.Model().activeScreen().Registry().Len(); n != len(screenOrder) {
		t.Fatalf("expected only sidebar elements, got %d", n)
	}
	sendCatalog(h, catalog.Default())
	h.SendKeys("right")
	expectFocus(t, h, "app-streamly")
}

func TestCatalogueReloadDropsFocusedElement(t *testing.T) {
	h := newLoadedHarness(t, Options{})
	h.SendKeys("right", "down")
	expectFocus(t, h, "app-tubecast")

	next := catalog.Default()
	apps := next.Apps[:0:0]
	for _, a := range next.Apps {
		if a.ID != "tubecast" {
			apps = append(apps, a)
		}
	}
	next.Apps = apps
	sendCatalog(h, next)

	expectFocus(t, h, "nav-apps")
	if h.Model().activeScreen().Registry().Has("app-tubecast") {
		t.Fatalf("expected removed app to be unregistered")
	}
}

func TestScrollFollowsFocus(t *testing.T) {
	h := newLoadedHarness(t, Options{Height: 12})
	h.SendKeys("right")
	for i := 0; i < 5; i++ {
		h.SendKeys("down")
	}
	expectFocus(t, h, "app-newsnow")
	page := h.Model().pages[screenApps]
	if page.Viewport.Offset != 4 {
		t.Fatalf("expected offset 4, got %d", page.Viewport.Offset)
	}
	for i := 0; i < 5; i++ {
		h.SendKeys("up")
	}
	expectFocus(t, h, "app-streamly")
	if page.Viewport.Offset != 0 {
		t.Fatalf("expected offset back at 0, got %d", page.Viewport.Offset)
	}
}

func TestHelpToggleOutsideText(t *testing.T) {
	h := newLoadedHarness(t, Options{ShowFooter: true})
	before := h.Model().bottomRows()
	h.SendKeys("?")
	if !h.Model().help.ShowAll {
		t.Fatalf("expected full help")
	}
	if h.Model().bottomRows() <= before {
		t.Fatalf("expected full help to take more rows")
	}
}
