package tui

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mobil-koeln/crtm-cli/internal/api"
	"github.com/mobil-koeln/crtm-cli/internal/catalog"
	"github.com/mobil-koeln/crtm-cli/internal/models"
)

// Client is the subset of the API client the TUI uses
type Client interface {
	StopsBySearch(ctx context.Context, text string) ([]models.Stop, error)
	StopTimes(ctx context.Context, req api.StopTimesRequest) ([]models.StopTime, error)
	LineInfo(ctx context.Context, codLine string) ([]models.LineInformation, error)
}

type focusPanel int

const (
	focusSearch focusPanel = iota
	focusModes
	focusAutoRefresh
	focusStops
	focusTimes
	focusDestinations
	focusLine
)

// modeChip is one transport mode present in the current search results
type modeChip struct {
	code  string
	label string
}

// Model is the root Bubble Tea model for the TUI.
type Model struct {
	client Client
	modes  *catalog.Registry
	width  int
	height int

	searchInput textinput.Model
	focus       focusPanel

	// Filter bar - transport modes of the found stops
	modeChips    []modeChip
	modeFilters  []bool
	filterCursor int

	// Auto-refresh
	autoRefresh bool
	lastUpdate  time.Time

	// Left panel - stops
	stops        []models.Stop
	stopCursor   int
	stopsLoading bool
	stopsErr     error
	searchSeq    int

	// Right panel - stop times
	selectedStop *models.Stop
	times        []models.StopTime
	timeCursor   int
	timesLoading bool
	timesErr     error

	// Right panel - destination filter
	destinationList    []string
	destinationFilters []bool
	destinationCursor  int

	// Right panel - line detail
	selectedLine      string
	selectedDirection int
	line              *models.LineInformation
	lineLoading       bool
	lineErr           error
	showLine          bool
	lineScroll        int
	lineManualScroll  bool
}

// New creates a new TUI model. modes labels the mode filter chips and may be nil.
func New(client Client, modes *catalog.Registry) Model {
	ti := textinput.New()
	ti.Placeholder = "Search stop..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 40

	return Model{
		client:      client,
		modes:       modes,
		searchInput: ti,
		focus:       focusSearch,
	}
}

// Init returns the initial command (textinput blink).
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// modeLabel returns the symbolic identifier for a mode code when known.
func (m Model) modeLabel(code string) string {
	if m.modes != nil {
		if n, err := strconv.Atoi(code); err == nil {
			if id, ok := m.modes.IdentifierOf(n); ok {
				return id
			}
		}
	}
	return "Mode " + code
}

// rebuildModeChips derives the mode chips from the found stops, keeping
// the toggle state of modes that were already listed.
func (m Model) rebuildModeChips() Model {
	prev := make(map[string]bool, len(m.modeChips))
	for i, chip := range m.modeChips {
		if i < len(m.modeFilters) {
			prev[chip.code] = m.modeFilters[i]
		}
	}

	seen := make(map[string]bool)
	var chips []modeChip
	for _, s := range m.stops {
		if s.Mode == "" || seen[s.Mode] {
			continue
		}
		seen[s.Mode] = true
		chips = append(chips, modeChip{code: s.Mode, label: m.modeLabel(s.Mode)})
	}
	sort.Slice(chips, func(i, j int) bool {
		a, errA := strconv.Atoi(chips[i].code)
		b, errB := strconv.Atoi(chips[j].code)
		if errA == nil && errB == nil {
			return a < b
		}
		return chips[i].code < chips[j].code
	})

	filters := make([]bool, len(chips))
	for i, chip := range chips {
		active, ok := prev[chip.code]
		filters[i] = !ok || active
	}

	m.modeChips = chips
	m.modeFilters = filters
	if m.filterCursor >= len(chips) {
		m.filterCursor = 0
	}
	return m
}

// visibleStops returns the stops whose mode is enabled in the filter bar.
func (m Model) visibleStops() []models.Stop {
	if len(m.modeChips) == 0 {
		return m.stops
	}
	active := make(map[string]bool, len(m.modeChips))
	allActive := true
	for i, chip := range m.modeChips {
		if i < len(m.modeFilters) && m.modeFilters[i] {
			active[chip.code] = true
		} else {
			allActive = false
		}
	}
	if allActive {
		return m.stops
	}
	var result []models.Stop
	for _, s := range m.stops {
		if s.Mode == "" || active[s.Mode] {
			result = append(result, s)
		}
	}
	return result
}

// stopTimesRequest builds the stop times query for a stop.
func stopTimesRequest(stop models.Stop) api.StopTimesRequest {
	stopType := stop.StopType
	if stopType == 0 {
		stopType = api.DefaultStopType
	}
	return api.StopTimesRequest{
		Stop:      stop.Code,
		Type:      stopType,
		Itinerary: api.DefaultTimesByItinerary,
	}
}
