package ui

import (
	"strings"
	"testing"
)

func TestProductModalSuspendsScreen(t *testing.T) {
	h := newLoadedHarness(t, Options{Screen: screenStore})
	h.SendKeys("right", "down")
	expectFocus(t, h, productID("m-night-train"))
	h.SendKeys("enter")
	m := h.Model()
	if m.ModalOpen() != "product" {
		t.Fatalf("expected product modal, got %q", m.ModalOpen())
	}
	if m.nav.Depth() != 3 {
		t.Fatalf("expected modal scope on top, depth %d", m.nav.Depth())
	}
	expectFocus(t, h, "modal-add")
	h.SendKeys("right")
	expectFocus(t, h, "modal-close")
	h.SendKeys("left", "left", "down", "up")
	expectFocus(t, h, "modal-add")
	if got := m.activeScreen().CurrentID(); got != productID("m-night-train") {
		t.Fatalf("expected the screen focus to be untouched, got %q", got)
	}
	h.SendKeys("esc")
	if m.ModalOpen() != "" {
		t.Fatalf("expected Back to close the modal")
	}
	expectFocus(t, h, productID("m-night-train"))
	if h.Quit() {
		t.Fatalf("expected Back to stop at the modal")
	}
}

func TestAddToCartPersists(t *testing.T) {
	h := newLoadedHarness(t, Options{Screen: screenStore})
	h.SendKeys("right", "down", "enter", "enter")
	m := h.Model()
	if m.ModalOpen() != "" {
		t.Fatalf("expected the modal to close after adding")
	}
	if len(m.cart) != 1 || m.cart[0].ProductID != "m-night-train" || m.cart[0].Quantity != 1 {
		t.Fatalf("unexpected cart %#v", m.cart)
	}
	if !strings.Contains(m.currentInfo(), "Night Train") {
		t.Fatalf("expected a confirmation, got %q", m.currentInfo())
	}
	h.SendKeys("enter", "enter")
	if m.cart[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", m.cart[0].Quantity)
	}
	if !strings.Contains(h.View(), "Cart (2)") {
		t.Fatalf("expected the cart button to show the count")
	}
}

func TestCartModalCheckout(t *testing.T) {
	h := newLoadedHarness(t, Options{Screen: screenStore})
	h.SendKeys("right", "right", "right", "right", "right")
	expectFocus(t, h, cartID)
	h.SendKeys("enter")
	if h.Model().ModalOpen() != "cart" {
		t.Fatalf("expected cart modal")
	}
	// Checkout is disabled while the cart is empty.
	expectFocus(t, h, "modal-close")
	h.SendKeys("left")
	expectFocus(t, h, "modal-close")
	h.SendKeys("esc")

	h.SendKeys("down", "enter", "enter")
	if len(h.Model().cart) != 1 {
		t.Fatalf("expected one cart line, got %#v", h.Model().cart)
	}
	expectFocus(t, h, productID("m-orbit"))
	h.SendKeys("up")
	expectFocus(t, h, cartID)
	h.SendKeys("enter")
	expectFocus(t, h, "modal-checkout")
	h.SendKeys("enter")
	if len(h.Model().cart) != 0 {
		t.Fatalf("expected checkout to empty the cart")
	}
	if !strings.Contains(h.Model().currentInfo(), "Order placed") {
		t.Fatalf("expected an order confirmation, got %q", h.Model().currentInfo())
	}
}

func TestInstallAndRemoveApp(t *testing.T) {
	h := newLoadedHarness(t, Options{})
	h.SendKeys("right", "right")
	expectFocus(t, h, "install-streamly")
	h.SendKeys("enter")
	m := h.Model()
	if !m.installed.Has("streamly") {
		t.Fatalf("expected streamly to be installed")
	}
	installed, err := m.store.InstalledApps()
	if err != nil || !installed["streamly"] {
		t.Fatalf("expected install to persist, got %v %v", installed, err)
	}
	h.SendKeys("right")
	expectFocus(t, h, "remove-streamly")
	h.SendKeys("enter")
	if m.installed.Has("streamly") {
		t.Fatalf("expected streamly to be removed")
	}
	expectFocus(t, h, "install-streamly")
}

func TestOpenInstalledAppShowsInfo(t *testing.T) {
	db := openTestStore(t)
	if err := db.SetInstalled("melody", true); err != nil {
		t.Fatalf("install: %v", err)
	}
	h := newLoadedHarness(t, Options{Store: db})
	h.SendKeys("right", "down", "down", "right", "enter")
	expectFocus(t, h, "install-melody")
	if !strings.Contains(h.Model().currentInfo(), "Launching Melody") {
		t.Fatalf("expected launch info, got %q", h.Model().currentInfo())
	}
}

func TestToggleSettingPersists(t *testing.T) {
	h := newLoadedHarness(t, Options{Screen: screenSettings})
	h.SendKeys("right")
	expectFocus(t, h, settingID("parental"))
	h.SendKeys("enter")
	m := h.Model()
	if !m.settings.Has("parental") {
		t.Fatalf("expected parental controls on")
	}
	stored, err := m.store.Settings()
	if err != nil || !stored["parental"] {
		t.Fatalf("expected the setting to persist, got %v %v", stored, err)
	}
	h.SendKeys("enter")
	if m.settings.Has("parental") {
		t.Fatalf("expected parental controls off")
	}
}

func TestHintsSettingShowsFooter(t *testing.T) {
	h := newLoadedHarness(t, Options{Screen: screenSettings})
	if h.Model().footerVisible() {
		t.Fatalf("expected no footer by default")
	}
	h.SendKeys("right", "down", "enter")
	expectFocus(t, h, settingID(settingHints))
	if !h.Model().footerVisible() {
		t.Fatalf("expected the hints setting to show the footer")
	}
	if !strings.Contains(h.View(), "select") {
		t.Fatalf("expected key hints in the view")
	}
}

func TestResetSettingsThroughModal(t *testing.T) {
	h := newLoadedHarness(t, Options{Screen: screenSettings})
	h.SendKeys("right", "enter", "down", "down")
	expectFocus(t, h, resetID)
	h.SendKeys("enter")
	if h.Model().ModalOpen() != "reset" {
		t.Fatalf("expected reset modal")
	}
	expectFocus(t, h, "modal-cancel")
	h.SendKeys("enter")
	if !h.Model().settings.Has("parental") {
		t.Fatalf("expected cancel to keep settings")
	}
	h.SendKeys("enter", "left")
	expectFocus(t, h, "modal-reset")
	h.SendKeys("enter")
	if len(h.Model().settings) != 0 {
		t.Fatalf("expected settings to be reset, got %v", h.Model().settings.Sorted())
	}
	expectFocus(t, h, resetID)
}

func TestViewShowsFrame(t *testing.T) {
	h := newLoadedHarness(t, Options{})
	view := h.View()
	if got := strings.Count(view, "\n") + 1; got != 30 {
		t.Fatalf("expected 30 rows, got %d", got)
	}
	for _, want := range []string{"tvnav · Apps", "Community", "Settings", "Streamly"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view", want)
		}
	}
	h.SendKeys("down", "enter")
	if !strings.Contains(h.View(), "tvnav · Store") {
		t.Fatalf("expected the store title after switching")
	}
}

func TestViewShowsLoadingBeforeCatalogue(t *testing.T) {
	h := NewHarness(newTestModel(t, Options{}))
	if !strings.Contains(h.View(), "Loading catalogue") {
		t.Fatalf("expected a loading placeholder")
	}
}

func TestViewShowsModal(t *testing.T) {
	h := newLoadedHarness(t, Options{Screen: screenStore})
	h.SendKeys("right", "down", "enter")
	view := h.View()
	for _, want := range []string{"Night Train", "Add to cart", "Close"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in modal view", want)
		}
	}
}
