package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mobil-koeln/crtm-cli/internal/models"
)

// Update handles all messages and key events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case searchResultMsg:
		return m.handleSearchResult(msg)

	case stopTimesResultMsg:
		return m.handleStopTimesResult(msg)

	case lineResultMsg:
		return m.handleLineResult(msg)

	case autoRefreshTickMsg:
		return m.handleAutoRefreshTick()

	case countdownTickMsg:
		return m.handleCountdownTick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Pass remaining messages to textinput when focused
	if m.focus == focusSearch {
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleSearchResult(msg searchResultMsg) (tea.Model, tea.Cmd) {
	// Ignore stale results
	if msg.seq != m.searchSeq {
		return m, nil
	}
	m.stopsLoading = false
	m.stopsErr = msg.err
	if msg.err != nil {
		return m, nil
	}

	m.stops = msg.stops
	m.stopCursor = 0
	m = m.rebuildModeChips()

	// Auto-select first stop and fetch its times
	if visible := m.visibleStops(); len(visible) > 0 {
		m.focus = focusStops
		m.searchInput.Blur()
		return m.selectStop(visible[0])
	}

	return m, nil
}

func (m Model) handleStopTimesResult(msg stopTimesResultMsg) (tea.Model, tea.Cmd) {
	// Ignore if stop changed
	if m.selectedStop == nil || msg.stopCode != m.selectedStop.Code {
		return m, nil
	}
	m.timesLoading = false
	m.timesErr = msg.err
	if msg.err != nil {
		return m, nil
	}

	hadData := len(m.times) > 0
	m.times = msg.times
	m = m.rebuildDestinationList()
	times := m.filteredTimes()

	if hadData && m.selectedLine != "" {
		// Re-locate the selected line in the refreshed list
		found := false
		for i, st := range times {
			if st.LineCode == m.selectedLine && st.Direction == m.selectedDirection {
				m.timeCursor = i
				found = true
				break
			}
		}
		if !found {
			// Line left the board, close the detail view
			m.showLine = false
			m.line = nil
			m.selectedLine = ""
		}
	} else if !hadData {
		m.timeCursor = 0
	}
	if m.timeCursor >= len(times) && len(times) > 0 {
		m.timeCursor = len(times) - 1
	}
	m.lastUpdate = time.Now()
	return m, nil
}

func (m Model) handleLineResult(msg lineResultMsg) (tea.Model, tea.Cmd) {
	if msg.codLine != m.selectedLine {
		return m, nil
	}
	m.lineLoading = false
	m.lineErr = msg.err
	if msg.err != nil {
		return m, nil
	}

	wasShowing := m.showLine && m.line != nil
	m.line = msg.line
	m.showLine = true

	stops := m.itineraryStops()
	if len(stops) > 0 {
		if m.lineScroll >= len(stops) {
			m.lineScroll = len(stops) - 1
		}
		if m.lineScroll < 0 {
			m.lineScroll = 0
		}
	}

	if !wasShowing || !m.lineManualScroll {
		// New line or no manual scroll, scroll to the board stop
		m.lineManualScroll = false
		m.lineScroll = 0
		if idx := m.boardStopIndex(); idx >= 0 {
			m.lineScroll = idx
		}
	}
	return m, nil
}

// selectStop switches the right panel to a stop and fetches its times.
func (m Model) selectStop(stop models.Stop) (tea.Model, tea.Cmd) {
	m.selectedStop = &stop
	m.timesLoading = true
	m.timesErr = nil
	m.times = nil
	m.timeCursor = 0
	m.destinationList = nil
	m.destinationFilters = nil
	m.destinationCursor = 0
	m.showLine = false
	m.line = nil
	m.selectedLine = ""
	return m, fetchStopTimes(m.client, stop)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	}

	switch m.focus {
	case focusSearch:
		return m.handleSearchKeys(msg)
	case focusModes:
		return m.handleFilterKeys(msg)
	case focusAutoRefresh:
		return m.handleAutoRefreshKeys(msg)
	case focusStops:
		return m.handleStopKeys(msg)
	case focusTimes:
		return m.handleTimeKeys(msg)
	case focusDestinations:
		return m.handleDestinationKeys(msg)
	case focusLine:
		return m.handleLineKeys(msg)
	}

	return m, nil
}

func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		query := strings.TrimSpace(m.searchInput.Value())
		if query == "" {
			return m, nil
		}
		m.searchSeq++
		m.stopsLoading = true
		m.stopsErr = nil
		return m, searchStops(m.client, query, m.searchSeq)

	case "esc":
		m.searchInput.SetValue("")
		return m, nil

	case "tab":
		m.focus = focusModes
		m.searchInput.Blur()
		return m, nil

	case "shift+tab":
		// Navigate backward to last available panel
		switch {
		case m.showLine:
			m.focus = focusLine
		case len(m.times) > 0:
			m.focus = focusTimes
		case len(m.stops) > 0:
			m.focus = focusStops
		default:
			m.focus = focusAutoRefresh
		}
		m.searchInput.Blur()
		return m, nil
	}

	// Forward to textinput
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// pageSize estimates how many list rows fit in a panel.
func (m Model) pageSize() int {
	size := m.height - 10
	if size < 1 {
		size = 10
	}
	return size
}

// moveCursor applies a navigation key to a cursor over n items.
func (m Model) moveCursor(key string, cursor, n int) (int, bool) {
	if n == 0 {
		return 0, key == "j" || key == "down" || key == "k" || key == "up" ||
			key == "pgdown" || key == "pgup" || key == "home" || key == "end"
	}
	switch key {
	case "j", "down":
		cursor++
	case "k", "up":
		cursor--
	case "pgdown":
		cursor += m.pageSize()
	case "pgup":
		cursor -= m.pageSize()
	case "home":
		cursor = 0
	case "end":
		cursor = n - 1
	default:
		return cursor, false
	}
	if cursor >= n {
		cursor = n - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	return cursor, true
}

func (m Model) handleStopKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	stops := m.visibleStops()
	if len(stops) > 0 {
		if m.stopCursor < 0 {
			m.stopCursor = 0
		}
		if m.stopCursor >= len(stops) {
			m.stopCursor = len(stops) - 1
		}
	}

	if cursor, ok := m.moveCursor(msg.String(), m.stopCursor, len(stops)); ok {
		m.stopCursor = cursor
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "tab":
		if len(m.times) > 0 {
			m.focus = focusTimes
			return m, nil
		}
		m.focus = focusSearch
		m.searchInput.Focus()
		return m, nil

	case "shift+tab":
		m.focus = focusAutoRefresh
		return m, nil

	case "esc", "/":
		m.focus = focusSearch
		m.searchInput.Focus()
		return m, nil

	case "enter":
		if len(stops) > 0 {
			return m.selectStop(stops[m.stopCursor])
		}
	}

	return m, nil
}

func (m Model) handleTimeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	times := m.filteredTimes()
	if len(times) > 0 {
		if m.timeCursor < 0 {
			m.timeCursor = 0
		}
		if m.timeCursor >= len(times) {
			m.timeCursor = len(times) - 1
		}
	}

	if cursor, ok := m.moveCursor(msg.String(), m.timeCursor, len(times)); ok {
		m.timeCursor = cursor
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "tab":
		m.focus = focusDestinations
		return m, nil

	case "shift+tab":
		m.focus = focusStops
		return m, nil

	case "esc":
		if m.showLine {
			m.showLine = false
			m.line = nil
			m.selectedLine = ""
			return m, nil
		}
		m.focus = focusStops
		return m, nil

	case "/":
		m.focus = focusSearch
		m.searchInput.Focus()
		return m, nil

	case "enter":
		if len(times) > 0 {
			st := times[m.timeCursor]
			if st.LineCode != "" {
				m.selectedLine = st.LineCode
				m.selectedDirection = st.Direction
				m.lineLoading = true
				m.lineErr = nil
				m.line = nil
				m.lineManualScroll = false
				return m, fetchLine(m.client, st.LineCode)
			}
		}
	}

	return m, nil
}

func (m Model) handleAutoRefreshKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case " ", "enter":
		m.autoRefresh = !m.autoRefresh
		if m.autoRefresh {
			cmds := []tea.Cmd{autoRefreshTick(), countdownTick()}
			if m.selectedStop != nil {
				cmds = append(cmds, fetchStopTimes(m.client, *m.selectedStop))
			}
			return m, tea.Batch(cmds...)
		}
		return m, nil

	case "tab":
		if len(m.stops) > 0 {
			m.focus = focusStops
			return m, nil
		}
		m.focus = focusSearch
		m.searchInput.Focus()
		return m, nil

	case "shift+tab":
		m.focus = focusModes
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

func (m Model) handleAutoRefreshTick() (tea.Model, tea.Cmd) {
	if !m.autoRefresh {
		return m, nil
	}

	cmds := []tea.Cmd{autoRefreshTick()}

	// Keep existing data visible until new data arrives
	if m.selectedStop != nil {
		cmds = append(cmds, fetchStopTimes(m.client, *m.selectedStop))
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleCountdownTick() (tea.Model, tea.Cmd) {
	if !m.autoRefresh {
		return m, nil
	}
	return m, countdownTick()
}
