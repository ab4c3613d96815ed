package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mobil-koeln/crtm-cli/internal/models"
)

// View renders the entire TUI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Layout: header + search bar + filter bar + panels + status bar
	header := renderHeader()
	searchBar := m.renderSearchBar()
	filterBar := m.renderFilterBar()
	statusBar := m.renderStatusBar()

	panelHeight := m.height - lipgloss.Height(header) - lipgloss.Height(searchBar) -
		lipgloss.Height(filterBar) - lipgloss.Height(statusBar)
	if panelHeight < 3 {
		panelHeight = 3
	}

	// Panel widths: ~35% left, ~65% right
	leftWidth := m.width*35/100 - 2
	rightWidth := m.width - leftWidth - 4
	if leftWidth < 20 {
		leftWidth = 20
	}
	if rightWidth < 20 {
		rightWidth = 20
	}

	leftPanel := m.renderStopList(leftWidth, panelHeight-2)
	rightPanel := m.renderRightPanel(rightWidth, panelHeight-2)

	leftBorder := stylePanelNormal
	if m.focus == focusStops {
		leftBorder = stylePanelFocused
	}
	leftPanel = leftBorder.
		Width(leftWidth).
		Height(panelHeight - 2).
		Render(leftPanel)

	rightBorder := stylePanelNormal
	if m.focus == focusTimes || m.focus == focusDestinations || m.focus == focusLine {
		rightBorder = stylePanelFocused
	}
	rightPanel = rightBorder.
		Width(rightWidth).
		Height(panelHeight - 2).
		Render(rightPanel)

	panels := lipgloss.JoinHorizontal(lipgloss.Top, leftPanel, rightPanel)

	return lipgloss.JoinVertical(lipgloss.Left, header, searchBar, filterBar, panels, statusBar)
}

// renderHeader renders the brand name.
func renderHeader() string {
	title := "" +
		"  ___ ___ _____ __  __ \n" +
		" / __| _ \\_   _|  \\/  |\n" +
		"| (__|   / | | | |\\/| |\n" +
		" \\___|_|_\\ |_| |_|  |_|"

	subtitle := styleMuted.Render("Consorcio Regional de Transportes de Madrid")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, styleLogo.Render(title), "  ", subtitle)
}

// renderSearchBar renders the search input at the top.
func (m Model) renderSearchBar() string {
	border := stylePanelNormal
	if m.focus == focusSearch {
		border = stylePanelFocused
	}

	content := styleHeader.Render("Search: ") + m.searchInput.View()
	return border.Width(m.width - 2).Render(content)
}

// renderStopList renders the left stop panel.
func (m Model) renderStopList(width, height int) string {
	title := styleHeader.Render("STOPS")

	if m.stopsLoading {
		return title + "\n" + styleLoading.Render(" Searching...")
	}
	if m.stopsErr != nil {
		return title + "\n" + styleError.Render(" Error: "+m.stopsErr.Error())
	}
	stops := m.visibleStops()
	if len(stops) == 0 {
		if len(m.stops) > 0 {
			return title + "\n" + styleMuted.Render(" All modes filtered out")
		}
		return title + "\n" + styleMuted.Render(" Type a stop name and press Enter")
	}

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")

	maxVisible := height - 2
	if maxVisible < 1 {
		maxVisible = 1
	}
	start, end := visibleRange(m.stopCursor, len(stops), maxVisible)

	for i := start; i < end; i++ {
		name := truncate(stops[i].Name, width-4)
		if i == m.stopCursor {
			b.WriteString(styleSelected.Render(" > " + name))
		} else {
			b.WriteString("   " + name)
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// renderRightPanel renders stop times with the destination filter, and
// optionally the selected line's itinerary with its route map.
func (m Model) renderRightPanel(width, height int) string {
	destWidth := width * 30 / 100
	if destWidth < 16 {
		destWidth = 16
	}
	timesWidth := width - destWidth - 1

	top := func(h int) string {
		timesBox := lipgloss.NewStyle().Width(timesWidth).Height(h).Render(m.renderTimeList(timesWidth, h))
		destBox := lipgloss.NewStyle().Width(destWidth).Height(h).Render(m.renderDestinationPanel(destWidth, h))
		vSep := styleMuted.Render(strings.Repeat("│\n", max(h-1, 0)) + "│")
		return lipgloss.JoinHorizontal(lipgloss.Top, timesBox, vSep, destBox)
	}

	if !m.showLine && !m.lineLoading && m.lineErr == nil {
		return top(height)
	}

	// Split: top 45% stop times, bottom 55% line detail and map side by side
	timesHeight := height * 45 / 100
	if timesHeight < 4 {
		timesHeight = 4
	}
	bottomHeight := height - timesHeight - 1
	if bottomHeight < 4 {
		bottomHeight = 4
	}

	separator := styleMuted.Render(strings.Repeat("─", width))

	detailWidth := width * 55 / 100
	if detailWidth < 20 {
		detailWidth = 20
	}
	mapWidth := width - detailWidth - 1
	if mapWidth < 10 {
		mapWidth = 10
	}

	detailBox := lipgloss.NewStyle().
		Width(detailWidth).
		Height(bottomHeight).
		Render(m.renderLineDetail(detailWidth, bottomHeight))
	mapBox := lipgloss.NewStyle().
		Width(mapWidth).
		Height(bottomHeight).
		Render(renderRouteMap(m.itineraryStops(), m.boardStopIndex(), mapWidth, bottomHeight))
	vSep := styleMuted.Render(strings.Repeat("│\n", bottomHeight-1) + "│")

	bottom := lipgloss.JoinHorizontal(lipgloss.Top, detailBox, vSep, mapBox)

	return top(timesHeight) + "\n" + separator + "\n" + bottom
}

// renderTimeList renders the stop times table.
func (m Model) renderTimeList(width, height int) string {
	title := "STOP TIMES"
	if m.selectedStop != nil {
		title += " at " + truncate(m.selectedStop.Name, width-14)
	}
	titleStr := styleHeader.Render(title)

	if m.timesLoading {
		return titleStr + "\n" + styleLoading.Render(" Loading stop times...")
	}
	if m.timesErr != nil {
		return titleStr + "\n" + styleError.Render(" Error: "+m.timesErr.Error())
	}
	if m.selectedStop == nil {
		return titleStr + "\n" + styleMuted.Render(" Select a stop to view its times")
	}
	times := m.filteredTimes()
	if len(times) == 0 {
		return titleStr + "\n" + styleMuted.Render(" No stop times found")
	}

	var b strings.Builder
	b.WriteString(titleStr)
	b.WriteString("\n")

	maxVisible := height - 2
	if maxVisible < 1 {
		maxVisible = 1
	}
	start, end := visibleRange(m.timeCursor, len(times), maxVisible)

	now := time.Now()
	for i := start; i < end; i++ {
		b.WriteString(renderTimeLine(times[i], now, width, i == m.timeCursor && m.focus == focusTimes))
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// renderTimeLine renders a single stop time entry.
func renderTimeLine(st models.StopTime, now time.Time, width int, selected bool) string {
	timeStr := "--:--"
	if st.Time != nil {
		timeStr = st.Time.Format("15:04")
	}

	line := st.Line
	if len(line) > 6 {
		line = line[:6]
	}
	lineStr := fmt.Sprintf("%-6s", line)

	dest := st.Destination
	// time+sp+minutes+sp+line+sp, plus cursor and padding
	fixedWidth := 5 + 1 + 5 + 2 + 6 + 2
	maxDest := width - fixedWidth - 2
	if maxDest > 0 && len(dest) > maxDest {
		dest = dest[:maxDest]
	}
	if st.Issue != "" {
		dest += " " + styleIssue.Render("!")
	}

	entry := fmt.Sprintf("%s %s  %s  %s",
		styleTime.Render(timeStr),
		formatMinutes(st.MinutesUntil(now)),
		styleLine.Render(lineStr),
		dest,
	)

	if selected {
		return styleSelected.Render(">") + entry
	}
	return " " + entry
}

// renderStatusBar renders context-aware keyboard hints at the bottom.
func (m Model) renderStatusBar() string {
	var hints string
	switch m.focus {
	case focusSearch:
		hints = "Enter:search  Tab:modes  Esc:clear  Ctrl+C:quit"
	case focusModes:
		hints = "h/l:move  Space:toggle  a:all  Tab:auto-refresh  Esc:search  q:quit"
	case focusAutoRefresh:
		hints = "Space:toggle  Tab:stops  Esc:search  q:quit"
	case focusStops:
		hints = "j/k:navigate  PgUp/PgDn:page  Home/End:jump  Enter:select  Tab:times  /:search  q:quit"
	case focusTimes:
		hints = "j/k:navigate  PgUp/PgDn:page  Home/End:jump  Enter:line  Tab:destinations  Esc:back  q:quit"
	case focusDestinations:
		hints = "j/k:navigate  Space:toggle  a:all  Tab:next  Esc:search  q:quit"
	case focusLine:
		hints = "j/k:scroll  PgUp/PgDn:page  Home/End:jump  Tab:search  Esc:times  q:quit"
	}

	return styleStatusBar.Width(m.width).Render(" " + hints)
}

// visibleRange calculates the start and end indices for a scrollable list.
func visibleRange(cursor, total, maxVisible int) (int, int) {
	if total <= maxVisible {
		return 0, total
	}

	start := cursor - maxVisible/2
	if start < 0 {
		start = 0
	}
	end := start + maxVisible
	if end > total {
		end = total
		start = end - maxVisible
		if start < 0 {
			start = 0
		}
	}
	return start, end
}

// truncate truncates a string to the given width.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if len(s) <= width {
		return s
	}
	if width <= 3 {
		return s[:width]
	}
	return s[:width-1] + "~"
}
