package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Colors matching the output package scheme
var (
	colorCyan    = lipgloss.Color("6")  // lines
	colorYellow  = lipgloss.Color("3")  // issues, loading
	colorRed     = lipgloss.Color("1")  // imminent passages, errors
	colorGreen   = lipgloss.Color("2")  // minutes
	colorMagenta = lipgloss.Color("5")  // codes
	colorBlue    = lipgloss.Color("4")  // night lines
	colorWhite   = lipgloss.Color("15") // times, text
	colorGray    = lipgloss.Color("8")  // muted text
)

// Text styles
var (
	styleTime    = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
	styleSoon    = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	styleMinutes = lipgloss.NewStyle().Foreground(colorGreen)
	styleLine    = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	styleNight   = lipgloss.NewStyle().Foreground(colorBlue).Bold(true)
	styleCode    = lipgloss.NewStyle().Foreground(colorMagenta)
	styleIssue   = lipgloss.NewStyle().Foreground(colorYellow)
	styleMuted   = lipgloss.NewStyle().Foreground(colorGray)
	styleHeader  = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
)

// Panel border styles
var (
	stylePanelFocused = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorCyan)

	stylePanelNormal = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorGray)
)

// Selected item in a list
var styleSelected = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)

// Board stop highlight in the itinerary
var styleBoardStop = lipgloss.NewStyle().
	Foreground(lipgloss.Color("0")).
	Background(colorGreen).
	Bold(true)

// Focused chip cursor in the filter bar
var styleChipCursor = lipgloss.NewStyle().
	Foreground(lipgloss.Color("0")).
	Background(colorCyan).
	Bold(true)

// Status bar at the bottom
var styleStatusBar = lipgloss.NewStyle().
	Foreground(colorGray).
	Background(lipgloss.Color("0"))

// Loading indicator
var styleLoading = lipgloss.NewStyle().Foreground(colorYellow).Italic(true)

// Error text
var styleError = lipgloss.NewStyle().Foreground(colorRed)

// Logo/brand style
var styleLogo = lipgloss.NewStyle().Foreground(colorRed).Bold(true)

// formatMinutes returns a styled countdown (5-char width); negative means unknown
func formatMinutes(minutes int) string {
	switch {
	case minutes < 0:
		return styleMuted.Render("   --")
	case minutes == 0:
		return styleSoon.Render("  now")
	case minutes <= 2:
		return styleSoon.Render(fmt.Sprintf("%3d'", minutes)) + " "
	default:
		return styleMinutes.Render(fmt.Sprintf("%3d'", minutes)) + " "
	}
}
