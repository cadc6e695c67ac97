package cmd

import "charm.land/lipgloss/v2"

var (
	colorPrimary = lipgloss.Color("#8B5CF6")
	colorSuccess = lipgloss.Color("#22C55E")
	colorError   = lipgloss.Color("#F43F5E")
	colorDim     = lipgloss.Color("#94A3B8")
)

var (
	styleTitle     = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	styleQuestion  = lipgloss.NewStyle().Bold(true)
	styleCorrect   = lipgloss.NewStyle().Foreground(colorSuccess)
	styleIncorrect = lipgloss.NewStyle().Foreground(colorError)
	styleHint      = lipgloss.NewStyle().Foreground(colorDim).Italic(true)
)
