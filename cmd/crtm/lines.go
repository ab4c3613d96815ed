package main

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/mobil-koeln/crtm-cli/internal/api"
	"github.com/mobil-koeln/crtm-cli/internal/models"
	"github.com/mobil-koeln/crtm-cli/internal/output"
	"github.com/spf13/cobra"
)

// Lines flags
var (
	flagLinesMode    string
	flagShowCodes    bool
	flagLocMode      string
	flagLocItinerary string
	flagLocLine      string
	flagLocStop      string
	flagLocDirection int
)

var linesCmd = &cobra.Command{
	Use:   "lines",
	Short: "Query lines",
	Long: `Query lines by mode, municipality or code, and line details.

Modes and municipalities may be given by symbolic name or numeric code
(see "crtm modes" and "crtm municipalities"). Line codes use the
service's composite form, see "crtm codes line".

Examples:
  crtm lines mode METRO
  crtm lines municipality FUENLABRADA --mode AUTOBUSES_INTERURBANOS
  crtm lines info 4__10___
  crtm lines incidents METRO 4__10___`,
}

var linesModeCmd = &cobra.Command{
	Use:   "mode <mode>",
	Short: "List the lines of a transport mode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		mode, err := resolveMode(ctx, args[0])
		if err != nil {
			return err
		}
		return query(ctx, os.Stdout,
			func(ctx context.Context) (json.RawMessage, error) { return client.LinesByModeRaw(ctx, mode) },
			func(ctx context.Context) ([]models.Line, error) { return client.LinesByMode(ctx, mode) },
			renderLines,
		)
	},
}

var linesMunicipalityCmd = &cobra.Command{
	Use:   "municipality <municipality>",
	Short: "List the lines serving a municipality",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		municipality, err := resolveMunicipality(ctx, args[0])
		if err != nil {
			return err
		}
		mode := 0
		if flagLinesMode != "" {
			if mode, err = resolveMode(ctx, flagLinesMode); err != nil {
				return err
			}
		}
		return query(ctx, os.Stdout,
			func(ctx context.Context) (json.RawMessage, error) {
				return client.LinesByMunicipalityRaw(ctx, municipality, mode)
			},
			func(ctx context.Context) ([]models.Line, error) {
				return client.LinesByMunicipality(ctx, municipality, mode)
			},
			renderLines,
		)
	},
}

var linesCodeCmd = &cobra.Command{
	Use:   "code <codLine>",
	Short: "Look up a line by code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		codLine := args[0]
		return query(cmd.Context(), os.Stdout,
			func(ctx context.Context) (json.RawMessage, error) { return client.LinesByCodeRaw(ctx, codLine) },
			func(ctx context.Context) ([]models.Line, error) { return client.LinesByCode(ctx, codLine) },
			renderLines,
		)
	},
}

var linesInfoCmd = &cobra.Command{
	Use:   "info <codLine>",
	Short: "Show the itineraries and stops of a line",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		codLine := args[0]
		return query(cmd.Context(), os.Stdout,
			func(ctx context.Context) (json.RawMessage, error) { return client.LineInfoRaw(ctx, codLine) },
			func(ctx context.Context) ([]models.LineInformation, error) { return client.LineInfo(ctx, codLine) },
			func(w io.Writer, infos []models.LineInformation, opts output.TableOptions) {
				opts.ShowCodes = flagShowCodes
				output.RenderLineInfo(w, infos, opts)
			},
		)
	},
}

var linesPlanningCmd = &cobra.Command{
	Use:   "planning <codLine>",
	Short: "Show the service window of a line",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		codLine := args[0]
		return query(cmd.Context(), os.Stdout,
			func(ctx context.Context) (json.RawMessage, error) { return client.LineTimePlanningRaw(ctx, codLine) },
			func(ctx context.Context) (models.Document, error) { return client.LineTimePlanning(ctx, codLine) },
			renderDocument,
		)
	},
}

var linesLocationCmd = &cobra.Command{
	Use:   "location",
	Short: "Show the vehicle positions of a line",
	Long: `Show the current vehicle positions of a line itinerary.

All flags are required; any stop of the itinerary gives the same answer.

Example:
  crtm lines location --mode 8 --itinerary 8__450___1 --line 8__450___ --stop 8_06008 --direction 1`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		req := api.LineLocationRequest{
			Itinerary: flagLocItinerary,
			Line:      flagLocLine,
			Stop:      flagLocStop,
			Direction: flagLocDirection,
		}
		if flagLocMode != "" {
			mode, err := resolveMode(ctx, flagLocMode)
			if err != nil {
				return err
			}
			req.Mode = mode
		}
		return query(ctx, os.Stdout,
			func(ctx context.Context) (json.RawMessage, error) { return client.LineLocationRaw(ctx, req) },
			func(ctx context.Context) (models.Document, error) { return client.LineLocation(ctx, req) },
			renderDocument,
		)
	},
}

var linesIncidentsCmd = &cobra.Command{
	Use:   "incidents <mode> <codLine>",
	Short: "Show the incidents affecting a line",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		mode, err := resolveMode(ctx, args[0])
		if err != nil {
			return err
		}
		codLine := args[1]
		return query(ctx, os.Stdout,
			func(ctx context.Context) (json.RawMessage, error) { return client.IncidentsRaw(ctx, mode, codLine) },
			func(ctx context.Context) (models.Document, error) { return client.Incidents(ctx, mode, codLine) },
			renderDocument,
		)
	},
}

func init() {
	linesCmd.AddCommand(linesModeCmd)
	linesCmd.AddCommand(linesMunicipalityCmd)
	linesCmd.AddCommand(linesCodeCmd)
	linesCmd.AddCommand(linesInfoCmd)
	linesCmd.AddCommand(linesPlanningCmd)
	linesCmd.AddCommand(linesLocationCmd)
	linesCmd.AddCommand(linesIncidentsCmd)

	linesMunicipalityCmd.Flags().StringVarP(&flagLinesMode, "mode", "m", "", "Restrict to a transport mode")
	linesCmd.PersistentFlags().BoolVar(&flagShowCodes, "codes", false, "Show full line and stop codes")

	linesLocationCmd.Flags().StringVarP(&flagLocMode, "mode", "m", "", "Transport mode")
	linesLocationCmd.Flags().StringVar(&flagLocItinerary, "itinerary", "", "Itinerary code")
	linesLocationCmd.Flags().StringVarP(&flagLocLine, "line", "l", "", "Line code")
	linesLocationCmd.Flags().StringVarP(&flagLocStop, "stop", "s", "", "Stop code")
	linesLocationCmd.Flags().IntVarP(&flagLocDirection, "direction", "d", 0, "Direction (1 or 2)")
	_ = linesLocationCmd.MarkFlagRequired("mode")
	_ = linesLocationCmd.MarkFlagRequired("direction")
}

func renderLines(w io.Writer, lines []models.Line, opts output.TableOptions) {
	opts.ShowCodes = flagShowCodes
	output.RenderLines(w, lines, opts)
}
