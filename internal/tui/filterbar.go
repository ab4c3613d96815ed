package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// renderFilterBar renders the transport mode chips and the auto-refresh
// toggle as bordered boxes side by side.
func (m Model) renderFilterBar() string {
	var modes strings.Builder
	if len(m.modeChips) == 0 {
		modes.WriteString(styleMuted.Render(" All modes "))
	}
	for i, chip := range m.modeChips {
		focused := m.focus == focusModes && m.filterCursor == i
		active := i < len(m.modeFilters) && m.modeFilters[i]
		modes.WriteString(m.renderChip(chip.label, active, focused))
		if i < len(m.modeChips)-1 {
			modes.WriteString(" ")
		}
	}

	modesBorder := stylePanelNormal
	if m.focus == focusModes {
		modesBorder = stylePanelFocused
	}
	modesBox := modesBorder.Render(modes.String())

	refreshFocused := m.focus == focusAutoRefresh
	refreshChip := m.renderChip(fmt.Sprintf("Auto-refresh %ds", int(autoRefreshInterval.Seconds())), m.autoRefresh, refreshFocused)

	refreshBorder := stylePanelNormal
	if refreshFocused {
		refreshBorder = stylePanelFocused
	}
	refreshBox := refreshBorder.Render(refreshChip)

	boxes := lipgloss.JoinHorizontal(lipgloss.Top, modesBox, refreshBox)

	if !m.lastUpdate.IsZero() {
		updateText := "  Last update:\t" + m.lastUpdate.Format("15:04:05")

		if m.autoRefresh {
			remaining := autoRefreshInterval - time.Since(m.lastUpdate)
			if remaining < 0 {
				remaining = 0
			}
			updateText += fmt.Sprintf("\t(refresh in %ds)", int(remaining.Seconds()))
		}

		return styleMuted.Render(updateText) + "\n" + boxes
	}

	return boxes
}

// renderChip renders a single chip with cursor highlighting.
func (m Model) renderChip(label string, active bool, focused bool) string {
	if focused {
		if active {
			return styleChipCursor.Render("[" + label + "]")
		}
		return styleChipCursor.Render(" " + label + " ")
	}
	if active {
		return styleLine.Render("[" + label + "]")
	}
	return styleMuted.Render(" " + label + " ")
}

// handleFilterKeys handles key events when the transport modes box is focused.
func (m Model) handleFilterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "h", "left":
		if m.filterCursor > 0 {
			m.filterCursor--
		}
		return m, nil

	case "l", "right":
		if m.filterCursor < len(m.modeChips)-1 {
			m.filterCursor++
		}
		return m, nil

	case " ", "enter":
		if m.filterCursor < len(m.modeFilters) {
			m.modeFilters[m.filterCursor] = !m.modeFilters[m.filterCursor]
			m.stopCursor = 0
		}
		return m, nil

	case "a":
		return m.toggleAllModes(), nil

	case "tab":
		m.focus = focusAutoRefresh
		return m, nil

	case "shift+tab":
		m.focus = focusSearch
		m.searchInput.Focus()
		return m, nil

	case "esc", "/":
		m.focus = focusSearch
		m.searchInput.Focus()
		return m, nil

	case "q":
		return m, tea.Quit
	}

	return m, nil
}

// toggleAllModes turns all modes on if any is off, otherwise turns them all off.
func (m Model) toggleAllModes() Model {
	anyOff := false
	for _, active := range m.modeFilters {
		if !active {
			anyOff = true
			break
		}
	}
	for i := range m.modeFilters {
		m.modeFilters[i] = anyOff
	}
	m.stopCursor = 0
	return m
}
