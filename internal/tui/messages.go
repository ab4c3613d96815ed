package tui

import (
	"time"

	"github.com/mobil-koeln/crtm-cli/internal/models"
)

// autoRefreshTickMsg is sent every 30 seconds when auto-refresh is enabled.
type autoRefreshTickMsg time.Time

// countdownTickMsg is sent every second when auto-refresh is enabled.
type countdownTickMsg time.Time

// searchResultMsg carries stop search results back to the model.
// seq is used for stale-result detection.
type searchResultMsg struct {
	seq   int
	stops []models.Stop
	err   error
}

// stopTimesResultMsg carries the upcoming passages for a specific stop.
type stopTimesResultMsg struct {
	stopCode string
	times    []models.StopTime
	err      error
}

// lineResultMsg carries line details.
type lineResultMsg struct {
	codLine string
	line    *models.LineInformation
	err     error
}
