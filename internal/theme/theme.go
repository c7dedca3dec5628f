package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Loading       *lipgloss.Style
	Header        *lipgloss.Style
	Title         *lipgloss.Style
	Footer        *lipgloss.Style
	Status        *lipgloss.Style
	Error         *lipgloss.Style
	Info          *lipgloss.Style
	Muted         *lipgloss.Style
	Item          *lipgloss.Style
	FocusedItem   *lipgloss.Style
	ActiveItem    *lipgloss.Style
	DisabledItem  *lipgloss.Style
	FocusRing     *lipgloss.Style
	Indicator     *lipgloss.Style
	Button        *lipgloss.Style
	FocusedButton *lipgloss.Style
	Field         *lipgloss.Style
	FocusedField  *lipgloss.Style
	FieldPrompt   *lipgloss.Style
	Placeholder   *lipgloss.Style
	Tile          *lipgloss.Style
	FocusedTile   *lipgloss.Style
	Price         *lipgloss.Style
	Badge         *lipgloss.Style
	Modal         *lipgloss.Style
	Divider       *lipgloss.Style
	Author        *lipgloss.Style
	SelfAuthor    *lipgloss.Style
}

var defaultStyles = Styles{
	Loading: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Italic(true),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("24")).Bold(true),
	),
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Status: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Muted: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FocusedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("33")).Bold(true),
	),
	ActiveItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true).Underline(true),
	),
	DisabledItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Strikethrough(true),
	),
	FocusRing: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	Indicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	Button: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("236")).Padding(0, 1),
	),
	FocusedButton: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Bold(true).Padding(0, 1),
	),
	Field: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Background(lipgloss.Color("235")),
	),
	FocusedField: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("237")),
	),
	FieldPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Placeholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Tile: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1),
	),
	FocusedTile: ptr(
		lipgloss.NewStyle().Border(lipgloss.ThickBorder()).BorderForeground(lipgloss.Color("33")).Padding(0, 1).Bold(true),
	),
	Price: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("178")),
	),
	Badge: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("34")).Padding(0, 1),
	),
	Modal: ptr(
		lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("33")).Padding(1, 2),
	),
	Divider: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	Author: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("178")).Bold(true),
	),
	SelfAuthor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
