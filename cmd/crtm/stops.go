package main

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mobil-koeln/crtm-cli/internal/api"
	"github.com/mobil-koeln/crtm-cli/internal/models"
	"github.com/mobil-koeln/crtm-cli/internal/output"
	"github.com/spf13/cobra"
)

// Stop times flags
var (
	flagStopType  int
	flagItinerary string
	flagOrderBy   int
	flagWatch     bool
	flagLine      string
	flagDirection string
)

// Nearby flags
var (
	flagPrecision  int
	flagMethod     int
	flagNearbyMode string
)

const watchInterval = 30 * time.Second

var stopsCmd = &cobra.Command{
	Use:   "stops",
	Short: "Query stops and stop times",
	Long: `Look up stops and show their upcoming passages.

Stop codes use the service's composite form MODE_STOP, see "crtm codes stop".

Examples:
  crtm stops search "Puerta del Sol"
  crtm stops code 4_11
  crtm stops postcode 28013
  crtm stops municipality FUENLABRADA
  crtm stops nearby 40.4168:-3.7038 --precision 500
  crtm stops times 8_17491 --watch`,
}

var stopsCodeCmd = &cobra.Command{
	Use:   "code <codStop>",
	Short: "Look up a stop by code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		codStop := args[0]
		return query(cmd.Context(), os.Stdout,
			func(ctx context.Context) (json.RawMessage, error) { return client.StopsByCodeRaw(ctx, codStop) },
			func(ctx context.Context) ([]models.Stop, error) { return client.StopsByCode(ctx, codStop) },
			output.RenderStops,
		)
	},
}

var stopsSearchCmd = &cobra.Command{
	Use:   "search <text>",
	Short: "Search stops by name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")
		return query(cmd.Context(), os.Stdout,
			func(ctx context.Context) (json.RawMessage, error) { return client.StopsBySearchRaw(ctx, text) },
			func(ctx context.Context) ([]models.Stop, error) { return client.StopsBySearch(ctx, text) },
			output.RenderStops,
		)
	},
}

var stopsPostcodeCmd = &cobra.Command{
	Use:   "postcode <postcode>",
	Short: "List the stops of a postcode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		postcode := args[0]
		return query(cmd.Context(), os.Stdout,
			func(ctx context.Context) (json.RawMessage, error) { return client.StopsByPostcodeRaw(ctx, postcode) },
			func(ctx context.Context) ([]models.Stop, error) { return client.StopsByPostcode(ctx, postcode) },
			output.RenderStops,
		)
	},
}

var stopsMunicipalityCmd = &cobra.Command{
	Use:   "municipality <municipality>",
	Short: "List the stops of a municipality",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		municipality, err := resolveMunicipality(ctx, args[0])
		if err != nil {
			return err
		}
		return query(ctx, os.Stdout,
			func(ctx context.Context) (json.RawMessage, error) {
				return client.StopsByMunicipalityRaw(ctx, municipality)
			},
			func(ctx context.Context) ([]models.Stop, error) {
				return client.StopsByMunicipality(ctx, municipality)
			},
			output.RenderStops,
		)
	},
}

var stopsTimesCmd = &cobra.Command{
	Use:   "times <codStop>",
	Short: "Show the upcoming passages at a stop",
	Long: `Show the upcoming passages at a stop.

Filtering:
  --line, -l <line>      Filter by line short name (exact match, e.g. 460, L1)
  --direction <dest>     Filter by destination (substring match)

Additional Output:
  --codes                Show full line codes (use with 'crtm lines info')
  --watch, -w            Refresh every 30 seconds (full-screen mode)

Examples:
  crtm stops times 8_17491
  crtm stops times 8_17491 --line 460
  crtm stops times 4_11 --direction "Plaza de Castilla" --watch`,
	Args: cobra.ExactArgs(1),
	RunE: runStopTimes,
}

var stopsNearbyCmd = &cobra.Command{
	Use:   "nearby <lat>:<lon>",
	Short: "Search for stops near a location",
	Long: `Search for stops near a geographic location.

The location must be specified as latitude:longitude in decimal degrees.

Examples:
  crtm stops nearby 40.4168:-3.7038
  crtm stops nearby 40.4168:-3.7038 --precision 500 --mode METRO`,
	Args: cobra.ExactArgs(1),
	RunE: runNearby,
}

func init() {
	stopsCmd.AddCommand(stopsCodeCmd)
	stopsCmd.AddCommand(stopsSearchCmd)
	stopsCmd.AddCommand(stopsPostcodeCmd)
	stopsCmd.AddCommand(stopsMunicipalityCmd)
	stopsCmd.AddCommand(stopsTimesCmd)
	stopsCmd.AddCommand(stopsNearbyCmd)

	stopsTimesCmd.Flags().IntVar(&flagStopType, "type", api.DefaultStopType, "Passage type")
	stopsTimesCmd.Flags().StringVar(&flagItinerary, "itinerary", api.DefaultTimesByItinerary, "stopTimesByIti value")
	stopsTimesCmd.Flags().IntVar(&flagOrderBy, "order-by", api.DefaultOrderBy, "Ordering")
	stopsTimesCmd.Flags().StringVarP(&flagLine, "line", "l", "", "Filter by line short name (exact match)")
	stopsTimesCmd.Flags().StringVar(&flagDirection, "direction", "", "Filter by destination (substring match)")
	stopsTimesCmd.Flags().BoolVarP(&flagWatch, "watch", "w", false, "Watch mode: refresh every 30 seconds")
	stopsTimesCmd.Flags().BoolVar(&flagShowCodes, "codes", false, "Show full line codes")

	stopsNearbyCmd.Flags().IntVarP(&flagPrecision, "precision", "p", api.DefaultPrecision, "Search radius in meters")
	stopsNearbyCmd.Flags().IntVar(&flagMethod, "method", api.DefaultNearestMethod, "Search method")
	stopsNearbyCmd.Flags().StringVarP(&flagNearbyMode, "mode", "m", "", "Restrict to a transport mode")
}

// filterStopTimes filters stop times by line and/or destination
func filterStopTimes(times []models.StopTime, line, direction string) []models.StopTime {
	if line == "" && direction == "" {
		return times
	}

	filtered := make([]models.StopTime, 0, len(times))
	for _, st := range times {
		// Line filter: exact match (case-insensitive)
		if line != "" && !strings.EqualFold(st.Line, line) {
			continue
		}
		// Direction filter: substring match (case-insensitive)
		if direction != "" && !strings.Contains(strings.ToLower(st.Destination), strings.ToLower(direction)) {
			continue
		}
		filtered = append(filtered, st)
	}
	return filtered
}

func runStopTimes(cmd *cobra.Command, args []string) error {
	req := api.StopTimesRequest{
		Stop:      args[0],
		Type:      flagStopType,
		OrderBy:   flagOrderBy,
		Itinerary: flagItinerary,
	}

	board := func(ctx context.Context) (*models.StopBoard, error) {
		b, err := client.StopBoard(ctx, req)
		if err != nil {
			return nil, err
		}
		b.Times = filterStopTimes(b.Times, flagLine, flagDirection)
		return b, nil
	}
	render := func(w io.Writer, b *models.StopBoard, opts output.TableOptions) {
		opts.ShowCodes = flagShowCodes
		output.RenderStopTimes(w, b.Stop, b.Times, opts)
	}

	if flagWatch {
		ctx, cancel := output.SetupSignalHandler(cmd.Context())
		defer cancel()
		return output.NewWatcher(watchInterval).Run(ctx, func(ctx context.Context, w io.Writer) error {
			b, err := board(ctx)
			if err != nil {
				return err
			}
			render(w, b, tableOptions())
			return nil
		})
	}

	return query(cmd.Context(), os.Stdout,
		func(ctx context.Context) (json.RawMessage, error) { return client.StopTimesRaw(ctx, req) },
		board,
		render,
	)
}

func runNearby(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	pos, err := api.ParseCoordinates(args[0])
	if err != nil {
		return err
	}

	req := api.NearestStopsRequest{
		Latitude:  pos.Latitude,
		Longitude: pos.Longitude,
		Method:    flagMethod,
		Precision: flagPrecision,
	}
	if flagNearbyMode != "" {
		if req.Mode, err = resolveMode(ctx, flagNearbyMode); err != nil {
			return err
		}
	}

	return query(ctx, os.Stdout,
		func(ctx context.Context) (json.RawMessage, error) { return client.NearestStopsRaw(ctx, req) },
		func(ctx context.Context) ([]models.Stop, error) { return client.NearestStops(ctx, req) },
		output.RenderStops,
	)
}
