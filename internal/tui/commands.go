package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mobil-koeln/crtm-cli/internal/models"
)

const (
	apiTimeout          = 10 * time.Second
	autoRefreshInterval = 30 * time.Second
)

// autoRefreshTick returns a tea.Cmd that sends a tick after the refresh interval.
func autoRefreshTick() tea.Cmd {
	return tea.Tick(autoRefreshInterval, func(t time.Time) tea.Msg {
		return autoRefreshTickMsg(t)
	})
}

// countdownTick returns a tea.Cmd that sends a tick every second for countdown display.
func countdownTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return countdownTickMsg(t)
	})
}

// searchStops returns a tea.Cmd that searches for stops by name.
func searchStops(client Client, query string, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiTimeout)
		defer cancel()

		stops, err := client.StopsBySearch(ctx, query)
		return searchResultMsg{
			seq:   seq,
			stops: stops,
			err:   err,
		}
	}
}

// fetchStopTimes returns a tea.Cmd that fetches the upcoming passages at a stop.
func fetchStopTimes(client Client, stop models.Stop) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiTimeout)
		defer cancel()

		times, err := client.StopTimes(ctx, stopTimesRequest(stop))
		return stopTimesResultMsg{
			stopCode: stop.Code,
			times:    times,
			err:      err,
		}
	}
}

// fetchLine returns a tea.Cmd that fetches line details.
func fetchLine(client Client, codLine string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiTimeout)
		defer cancel()

		infos, err := client.LineInfo(ctx, codLine)
		if err != nil {
			return lineResultMsg{codLine: codLine, err: err}
		}
		if len(infos) == 0 {
			return lineResultMsg{codLine: codLine, err: fmt.Errorf("no information for line %s", codLine)}
		}
		info := infos[0]
		for i := range infos {
			if infos[i].Code == codLine {
				info = infos[i]
				break
			}
		}
		return lineResultMsg{codLine: codLine, line: &info}
	}
}
