package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mobil-koeln/crtm-cli/internal/models"
)

// renderDestinationPanel renders the vertical destination filter panel.
func (m Model) renderDestinationPanel(width, height int) string {
	title := "DESTINATIONS"
	if m.focus == focusDestinations {
		title = "▶ " + title
	}
	titleStr := styleHeader.Render(title)

	if len(m.destinationList) == 0 {
		return titleStr + "\n" + styleMuted.Render(" No data")
	}

	// Reserve space for scrollbar
	contentWidth := width - 2

	maxVisible := height - 2
	if maxVisible < 1 {
		maxVisible = 1
	}
	start, end := visibleRange(m.destinationCursor, len(m.destinationList), maxVisible)

	var contentLines []string
	for i := start; i < end; i++ {
		focused := m.focus == focusDestinations && m.destinationCursor == i
		active := i < len(m.destinationFilters) && m.destinationFilters[i]
		contentLines = append(contentLines, m.renderChip(truncate(m.destinationList[i], contentWidth-3), active, focused))
	}
	for len(contentLines) < maxVisible {
		contentLines = append(contentLines, "")
	}

	scrollbarLines := strings.Split(renderScrollbar(m.destinationCursor, len(m.destinationList), maxVisible), "\n")

	var b strings.Builder
	for i, line := range contentLines {
		if w := lipgloss.Width(line); w < contentWidth {
			line += strings.Repeat(" ", contentWidth-w)
		}
		b.WriteString(line)
		if i < len(scrollbarLines) {
			b.WriteString(" ")
			b.WriteString(scrollbarLines[i])
		}
		if i < len(contentLines)-1 {
			b.WriteString("\n")
		}
	}

	return titleStr + "\n" + b.String()
}

// renderScrollbar renders a one-column scrollbar of the given height.
func renderScrollbar(cursor, total, height int) string {
	if height <= 0 {
		return ""
	}

	lines := make([]string, height)
	if total == 0 {
		for i := range lines {
			lines[i] = " "
		}
		return strings.Join(lines, "\n")
	}

	thumb := height
	pos := 0
	if total > height {
		thumb = height * height / total
		if thumb < 1 {
			thumb = 1
		}
		if cursor >= total {
			cursor = total - 1
		}
		if cursor < 0 {
			cursor = 0
		}
		pos = cursor * (height - thumb) / (total - 1)
	}

	for i := range lines {
		if i >= pos && i < pos+thumb {
			lines[i] = styleSelected.Render("█")
		} else {
			lines[i] = styleMuted.Render("│")
		}
	}
	return strings.Join(lines, "\n")
}

// handleDestinationKeys handles key events when the destination panel is focused.
func (m Model) handleDestinationKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if cursor, ok := m.moveCursor(msg.String(), m.destinationCursor, len(m.destinationList)); ok {
		m.destinationCursor = cursor
		return m, nil
	}

	switch msg.String() {
	case " ", "enter":
		if m.destinationCursor < len(m.destinationFilters) {
			m.destinationFilters[m.destinationCursor] = !m.destinationFilters[m.destinationCursor]
			m.timeCursor = 0
		}
		return m, nil

	case "a":
		anyOff := false
		for _, f := range m.destinationFilters {
			if !f {
				anyOff = true
				break
			}
		}
		for i := range m.destinationFilters {
			m.destinationFilters[i] = anyOff
		}
		m.timeCursor = 0
		return m, nil

	case "tab":
		if m.showLine {
			m.focus = focusLine
		} else {
			m.focus = focusSearch
			m.searchInput.Focus()
		}
		return m, nil

	case "shift+tab":
		m.focus = focusTimes
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

// rebuildDestinationList extracts unique destinations from the stop times,
// sorts them, and preserves existing toggle states.
func (m Model) rebuildDestinationList() Model {
	seen := make(map[string]bool)
	var newList []string
	for _, st := range m.times {
		if st.Destination != "" && !seen[st.Destination] {
			seen[st.Destination] = true
			newList = append(newList, st.Destination)
		}
	}
	sort.Strings(newList)

	prevStates := make(map[string]bool)
	for i, dest := range m.destinationList {
		if i < len(m.destinationFilters) {
			prevStates[dest] = m.destinationFilters[i]
		}
	}
	newFilters := make([]bool, len(newList))
	for i, dest := range newList {
		if prev, exists := prevStates[dest]; exists {
			newFilters[i] = prev
		} else {
			newFilters[i] = true
		}
	}

	m.destinationList = newList
	m.destinationFilters = newFilters
	if len(newList) == 0 {
		m.destinationCursor = 0
	} else if m.destinationCursor >= len(newList) {
		m.destinationCursor = len(newList) - 1
	}
	return m
}

// filteredTimes returns stop times filtered by active destinations.
// If all destinations are active (or the list is empty), returns all times.
func (m Model) filteredTimes() []models.StopTime {
	if len(m.destinationList) == 0 {
		return m.times
	}
	allActive := true
	for _, f := range m.destinationFilters {
		if !f {
			allActive = false
			break
		}
	}
	if allActive {
		return m.times
	}
	active := make(map[string]bool, len(m.destinationList))
	for i, dest := range m.destinationList {
		if i < len(m.destinationFilters) && m.destinationFilters[i] {
			active[dest] = true
		}
	}
	var result []models.StopTime
	for _, st := range m.times {
		if active[st.Destination] {
			result = append(result, st)
		}
	}
	return result
}
