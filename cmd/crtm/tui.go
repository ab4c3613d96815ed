package main

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mobil-koeln/crtm-cli/internal/catalog"
	"github.com/mobil-koeln/crtm-cli/internal/tui"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive full-screen TUI",
	Long: `Launch an interactive full-screen terminal UI for searching stops,
watching their upcoming passages and browsing line itineraries.

Keyboard:
  Tab          Cycle focus between panels
  j/k or arrows  Navigate lists
  Space        Toggle mode / destination filters
  Enter        Select / confirm
  Esc          Go back
  /            Jump to search
  q            Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Mode chips fall back to numeric labels when the catalog is unavailable
	var modes *catalog.Registry
	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
	defer cancel()
	if cat, err := registry.Get(ctx); err != nil {
		log.Warn("mode names unavailable", "error", err)
	} else {
		modes = cat.Modes
	}

	model := tui.New(client, modes)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
