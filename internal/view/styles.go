// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package view

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Brand palette.
var (
	ColorPrimary = lipgloss.Color("#F38E82")
	ColorAccent  = lipgloss.Color("#FBDB89")
	ColorMuted   = lipgloss.Color("#918581")
	ColorError   = lipgloss.Color("#E53935")
	ColorSuccess = lipgloss.Color("#8BC34A")
)

// Styles holds the lipgloss styles every view renders with.
type Styles struct {
	Title    lipgloss.Style
	Heading  lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Active   lipgloss.Style
	Error    lipgloss.Style
	Message  lipgloss.Style
	Spinner  lipgloss.Style
	Bookmark lipgloss.Style
	Button   lipgloss.Style
}

// NewStyles builds the colored style set for output written to w. Color is
// dropped automatically when w is not a terminal.
func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		Title:    r.NewStyle().Bold(true).Foreground(ColorPrimary),
		Heading:  r.NewStyle().Bold(true).Underline(true).Foreground(ColorPrimary),
		Body:     r.NewStyle(),
		Muted:    r.NewStyle().Foreground(ColorMuted),
		Active:   r.NewStyle().Bold(true).Foreground(ColorAccent),
		Error:    r.NewStyle().Bold(true).Foreground(ColorError),
		Message:  r.NewStyle().Foreground(ColorSuccess),
		Spinner:  r.NewStyle().Italic(true).Foreground(ColorMuted),
		Bookmark: r.NewStyle().Foreground(ColorAccent),
		Button:   r.NewStyle().Foreground(ColorPrimary),
	}
}

// PlainStyles returns styles that add no escape sequences.
func PlainStyles() Styles {
	s := lipgloss.NewStyle()
	return Styles{
		Title: s, Heading: s, Body: s, Muted: s, Active: s,
		Error: s, Message: s, Spinner: s, Bookmark: s, Button: s,
	}
}
