package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mobil-koeln/crtm-cli/internal/models"
)

// itinerary returns the itinerary of the selected line running in the
// selected direction, falling back to the first one.
func (m Model) itinerary() *models.Itinerary {
	if m.line == nil {
		return nil
	}
	its := m.line.Itineraries()
	if len(its) == 0 {
		return nil
	}
	for i := range its {
		if its[i].Direction == m.selectedDirection {
			return &its[i]
		}
	}
	return &its[0]
}

// itineraryStops returns the stops of the displayed itinerary.
func (m Model) itineraryStops() []models.Stop {
	it := m.itinerary()
	if it == nil {
		return nil
	}
	return it.Stops.StopInformation
}

// boardStopIndex returns the position of the selected stop in the itinerary, or -1.
func (m Model) boardStopIndex() int {
	if m.selectedStop == nil {
		return -1
	}
	for i, s := range m.itineraryStops() {
		if s.Code == m.selectedStop.Code {
			return i
		}
	}
	return -1
}

// renderLineDetail renders the itinerary stops of the selected line.
func (m Model) renderLineDetail(width, height int) string {
	title := "LINE"
	if m.line != nil {
		title += " " + m.line.ShortDescription
		if it := m.itinerary(); it != nil && it.Name != "" {
			title += ": " + it.Name
		}
	}
	titleStr := styleHeader.Render(truncate(title, width))

	if m.lineLoading {
		return titleStr + "\n" + styleLoading.Render(" Loading line...")
	}
	if m.lineErr != nil {
		return titleStr + "\n" + styleError.Render(" Error: "+m.lineErr.Error())
	}
	if m.line == nil {
		return titleStr + "\n" + styleMuted.Render(" Select a stop time to view its line")
	}

	stops := m.itineraryStops()
	if len(stops) == 0 {
		var b strings.Builder
		b.WriteString(titleStr)
		if m.line.Description != "" {
			b.WriteString("\n " + truncate(m.line.Description, width-1))
		}
		tp := m.line.LineTimePlanning
		if tp.StartService != "" || tp.EndService != "" {
			b.WriteString("\n " + styleMuted.Render(fmt.Sprintf("Service %s - %s", tp.StartService, tp.EndService)))
		}
		b.WriteString("\n" + styleMuted.Render(" No stops"))
		return b.String()
	}

	boardIdx := m.boardStopIndex()

	var b strings.Builder
	b.WriteString(titleStr)
	b.WriteString("\n")

	maxVisible := height - 2
	if maxVisible < 1 {
		maxVisible = 1
	}
	start, end := visibleRange(m.lineScroll, len(stops), maxVisible)

	for i := start; i < end; i++ {
		stop := stops[i]

		symbol := "├"
		if i == 0 {
			symbol = "┌"
		} else if i == len(stops)-1 {
			symbol = "└"
		}

		indicator := " "
		if i == m.lineScroll {
			indicator = ">"
		}

		// indicator+sp+symbol+sp, then the code in parentheses
		name := stop.Name
		maxName := width - 4 - len(stop.Code) - 3
		if maxName > 0 && len(name) > maxName {
			name = name[:maxName]
		}

		if i == boardIdx {
			name = styleBoardStop.Render(name)
		}

		b.WriteString(fmt.Sprintf("%s %s %s %s",
			styleSelected.Render(indicator),
			styleMuted.Render(symbol),
			name,
			styleCode.Render("("+stop.Code+")"),
		))

		if i < end-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (m Model) handleLineKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	stops := m.itineraryStops()
	if len(stops) > 0 {
		if m.lineScroll < 0 {
			m.lineScroll = 0
		}
		if m.lineScroll >= len(stops) {
			m.lineScroll = len(stops) - 1
		}
	}

	if cursor, ok := m.moveCursor(msg.String(), m.lineScroll, len(stops)); ok {
		if len(stops) > 0 {
			m.lineManualScroll = true
		}
		m.lineScroll = cursor
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "tab", "/":
		m.focus = focusSearch
		m.searchInput.Focus()
		return m, nil

	case "shift+tab":
		m.focus = focusDestinations
		return m, nil

	case "esc":
		m.focus = focusTimes
		return m, nil
	}

	return m, nil
}
