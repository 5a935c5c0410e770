// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package shell

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.Color("#874BFD") // headers
	colorObject = lipgloss.Color("#00FF99") // object names
	colorCite   = lipgloss.Color("#F59E0B") // citation keys
	colorSub    = lipgloss.Color("#64748B") // arrows, notes, counts
	colorDanger = lipgloss.Color("#FF0055") // failures

	headerStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	objectStyle = lipgloss.NewStyle().Foreground(colorObject)
	citeStyle   = lipgloss.NewStyle().Foreground(colorCite)
	subtleStyle = lipgloss.NewStyle().Foreground(colorSub)
	errorStyle  = lipgloss.NewStyle().Foreground(colorDanger).Bold(true)
)
