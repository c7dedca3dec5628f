package ui

import (
	"fmt"

	"github.com/atomicstack/tvnav/internal/focus"
	"github.com/atomicstack/tvnav/internal/format/table"
	"github.com/atomicstack/tvnav/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	settingHints  = "hints"
	resetID       = "reset"
	settingsFirst = 2
)

type settingDef struct {
	key   string
	label string
}

var settingDefs = []settingDef{
	{key: "autoplay", label: "Autoplay next episode"},
	{key: "subtitles", label: "Subtitles"},
	{key: "parental", label: "Parental controls"},
	{key: settingHints, label: "Show key hints"},
}

func settingID(key string) string { return "setting-" + key }

func (m *Model) layoutSettings(width int) *layout {
	lay := newLayout(width)
	lay.text(0, 0, styles.Title.Render("Settings"))
	rows := make([][]string, len(settingDefs))
	for i, def := range settingDefs {
		state := "off"
		if m.settings.Has(def.key) {
			state = "on"
		}
		rows[i] = []string{def.label, state}
	}
	lines := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignRight})
	rowWidth := 0
	for _, w := range table.Widths(rows) {
		rowWidth += w
	}
	rowWidth += 4
	if rowWidth > width {
		rowWidth = width
	}
	y := settingsFirst
	for i, def := range settingDefs {
		lay.add(focus.Element{
			ID:       settingID(def.key),
			Key:      focus.Key{Kind: "setting", Target: def.key},
			Row:      i,
			OnSelect: m.toggleSetting,
		}, box{x: 0, y: y, w: rowWidth, h: 1}, drawItem(lines[i], rowWidth, m.settings.Has(def.key)))
		y += 2
	}
	lay.add(focus.Element{
		ID:       resetID,
		Key:      focus.Key{Kind: "reset"},
		OnSelect: m.confirmReset,
	}, box{x: 0, y: y, w: 18, h: 1}, drawButton("Reset settings", 18))
	return lay
}

func (m *Model) toggleSetting(el focus.Element) tea.Cmd {
	key := el.Key.Target
	enabled := !m.settings.Has(key)
	state := "off"
	if enabled {
		state = "on"
	}
	return m.bus.Execute(command.Request{
		ID:    "setting:toggle",
		Label: key,
		Run: func() tea.Msg {
			return m.persist(fmt.Sprintf("%s %s", settingLabel(key), state), func() error {
				return m.store.SetSetting(key, enabled)
			})
		},
	})
}

func settingLabel(key string) string {
	for _, def := range settingDefs {
		if def.key == key {
			return def.label
		}
	}
	return key
}

func (m *Model) confirmReset(focus.Element) tea.Cmd {
	m.openModal(modalSpec{
		name:   "reset",
		title:  "Reset settings?",
		lines:  []string{"Every toggle goes back to off."},
		anchor: "modal-cancel",
		focus:  "modal-cancel",
		buttons: []modalButton{
			{id: "modal-reset", label: "Reset", onSelect: func() tea.Cmd {
				m.closeModal()
				return m.bus.Execute(command.Request{
					ID:    "setting:reset",
					Label: "settings",
					Run: func() tea.Msg {
						return m.persist("Settings reset", func() error {
							return m.store.ResetSettings()
						})
					},
				})
			}},
			{id: "modal-cancel", label: "Cancel", onSelect: func() tea.Cmd {
				m.closeModal()
				return nil
			}},
		},
	})
	return nil
}
