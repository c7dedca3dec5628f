package ui

import (
	"fmt"

	"github.com/atomicstack/tvnav/internal/catalog"
	"github.com/atomicstack/tvnav/internal/focus"
	"github.com/atomicstack/tvnav/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	appButtonWidth = 11
	appRowSpacing  = 2
	appsFirstRow   = 2
)

func (m *Model) layoutApps(width int) *layout {
	lay := newLayout(width)
	lay.text(0, 0, styles.Title.Render("Your apps"))
	if !m.catalog.Loaded() {
		lay.text(0, appsFirstRow, styles.Loading.Render("Loading catalogue…"))
		return lay
	}
	apps := m.catalog.Catalog().Apps
	if len(apps) == 0 {
		lay.text(0, appsFirstRow, styles.Muted.Render("No apps in the catalogue"))
		return lay
	}
	nameWidth := width - 2*(appButtonWidth+2)
	if nameWidth > 36 {
		nameWidth = 36
	}
	if nameWidth < 8 {
		nameWidth = 8
	}
	for i, a := range apps {
		y := appsFirstRow + i*appRowSpacing
		installed := m.installed.Has(a.ID)
		text := a.Name
		if a.Publisher != "" {
			text += " · " + a.Publisher
		}
		lay.add(focus.Element{
			ID:       "app-" + a.ID,
			Key:      focus.Key{Kind: "app", Target: a.ID},
			Row:      i,
			OnSelect: m.describeApp,
		}, box{x: 0, y: y, w: nameWidth, h: 1}, drawItem(text, nameWidth, installed))

		label := "Install"
		if installed {
			label = "Open"
		}
		x := nameWidth + 2
		lay.add(focus.Element{
			ID:       "install-" + a.ID,
			Key:      focus.Key{Kind: "install", Target: a.ID},
			Row:      i,
			Col:      1,
			OnSelect: m.installOrOpen,
		}, box{x: x, y: y, w: appButtonWidth, h: 1}, drawButton(label, appButtonWidth))

		if installed {
			lay.add(focus.Element{
				ID:       "remove-" + a.ID,
				Key:      focus.Key{Kind: "remove", Target: a.ID},
				Row:      i,
				Col:      2,
				OnSelect: m.removeApp,
			}, box{x: x + appButtonWidth + 2, y: y, w: appButtonWidth, h: 1}, drawButton("Remove", appButtonWidth))
		}
	}
	return lay
}

func (m *Model) lookupApp(id string) (catalog.App, bool) {
	return m.catalog.Catalog().App(id)
}

func (m *Model) describeApp(el focus.Element) tea.Cmd {
	a, ok := m.lookupApp(el.Key.Target)
	if !ok {
		return nil
	}
	if a.Description == "" {
		m.setInfo(a.Name)
		return nil
	}
	m.setInfo(fmt.Sprintf("%s: %s", a.Name, a.Description))
	return nil
}

func (m *Model) installOrOpen(el focus.Element) tea.Cmd {
	a, ok := m.lookupApp(el.Key.Target)
	if !ok {
		return nil
	}
	if m.installed.Has(a.ID) {
		m.setInfo(fmt.Sprintf("Launching %s…", a.Name))
		return nil
	}
	return m.bus.Execute(command.Request{
		ID:    "app:install",
		Label: a.Name,
		Run: func() tea.Msg {
			return m.persist(fmt.Sprintf("Installed %s", a.Name), func() error {
				return m.store.SetInstalled(a.ID, true)
			})
		},
	})
}

func (m *Model) removeApp(el focus.Element) tea.Cmd {
	a, ok := m.lookupApp(el.Key.Target)
	if !ok {
		return nil
	}
	// The remove button disappears with the app; park focus on its row.
	m.screens[screenApps].SetFocus("install-" + a.ID)
	return m.bus.Execute(command.Request{
		ID:    "app:remove",
		Label: a.Name,
		Run: func() tea.Msg {
			return m.persist(fmt.Sprintf("Removed %s", a.Name), func() error {
				return m.store.SetInstalled(a.ID, false)
			})
		},
	})
}
