package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/mobil-koeln/crtm-cli/internal/api"
	"github.com/mobil-koeln/crtm-cli/internal/cache"
	"github.com/mobil-koeln/crtm-cli/internal/card"
	"github.com/mobil-koeln/crtm-cli/internal/catalog"
	"github.com/mobil-koeln/crtm-cli/internal/config"
	"github.com/mobil-koeln/crtm-cli/internal/logger"
	"github.com/mobil-koeln/crtm-cli/internal/models"
	"github.com/mobil-koeln/crtm-cli/internal/observability"
	"github.com/mobil-koeln/crtm-cli/internal/output"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	err := rootCmd.Execute()
	stopMetricsServer()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crtm",
	Short: "CLI for the Madrid regional transport (CRTM) widget service",
	Long: `crtm is a command-line interface for the public widget service of the
Consorcio Regional de Transportes de Madrid.

Features:
  - Transport modes and municipalities with symbolic names
  - Lines, itineraries, service windows, vehicle positions and incidents
  - Stop search by name, code, postcode, municipality or coordinates
  - Upcoming passages at a stop, with a watch mode
  - Offices and sales points
  - Public transport card balance
  - JSON output for scripting
  - Response caching for faster repeated queries

Quick Start:
  1. Launch TUI:               crtm (or crtm tui)
  2. Search for a stop:        crtm stops search "Sol"
  3. Show stop times:          crtm stops times 4_11
  4. Lines of a mode:          crtm lines mode METRO
  5. Find nearby stops:        crtm stops nearby 40.4168:-3.7038
  6. Card balance:             crtm card 0010000000000`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		// If no subcommand is provided, launch TUI
		if len(args) == 0 {
			return runTUI(cmd, args)
		}
		return cmd.Help()
	},
}

// Global flags
var (
	flagJSON        bool
	flagRawJSON     bool
	flagColor       string
	flagNoCache     bool
	flagConfig      string
	flagLogLevel    string
	flagLogFile     string
	flagMetricsAddr string
	flagTimeout     time.Duration
)

// Process-wide state built by setup
var (
	cfg      *config.Config
	log      = logger.Nop()
	metrics  *observability.Metrics
	client   *api.Client
	cards    *card.Client
	registry *catalog.Lazy

	metricsServer *http.Server
)

func init() {
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(municipalitiesCmd)
	rootCmd.AddCommand(linesCmd)
	rootCmd.AddCommand(stopsCmd)
	rootCmd.AddCommand(officesCmd)
	rootCmd.AddCommand(cardCmd)
	rootCmd.AddCommand(codesCmd)
	rootCmd.AddCommand(tuiCmd)

	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagRawJSON, "raw-json", false, "Output raw API response")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto", "Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "Disable response caching")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default $XDG_CONFIG_HOME/crtm/config.yml)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Also write logs to this file (rotated)")
	rootCmd.PersistentFlags().StringVar(&flagMetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on host:port")
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 0, "HTTP timeout (e.g. 5s)")
}

// setup loads the configuration and builds the clients shared by all commands
func setup(cmd *cobra.Command, args []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	c, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	applyFlags(cmd, c)
	if err := c.Validate(); err != nil {
		return err
	}
	cfg = c

	if log, err = newLogger(c.Log); err != nil {
		return err
	}
	metrics = observability.NewMetrics(nil)
	if c.MetricsAddr != "" {
		startMetricsServer(c.MetricsAddr)
	}

	opts := []api.ClientOption{
		api.WithBaseURL(c.BaseURL),
		api.WithTimeout(c.Timeout),
		api.WithLogger(log),
		api.WithMetrics(metrics),
	}
	if c.Cache.Enabled {
		fc, err := cache.NewFileCache(c.Cache.Dir, c.Cache.TTL)
		if err != nil {
			log.Warn("response cache disabled", "dir", c.Cache.Dir, "error", err)
		} else {
			opts = append(opts, api.WithCache(fc))
		}
	}
	if client, err = api.NewClient(opts...); err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}

	cards = card.NewClient(
		card.WithEndpoint(c.CardServiceURL),
		card.WithTimeout(c.Timeout),
		card.WithLogger(log),
		card.WithMetrics(metrics),
	)
	registry = catalog.NewLazy(client, catalog.WithLogger(log), catalog.WithMetrics(metrics))
	return nil
}

// applyFlags overrides configuration values with explicitly set flags
func applyFlags(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("no-cache") {
		c.Cache.Enabled = !flagNoCache
	}
	if flags.Changed("log-level") {
		c.Log.Level = flagLogLevel
	}
	if flags.Changed("log-file") {
		c.Log.File = flagLogFile
	}
	if flags.Changed("metrics-addr") {
		c.MetricsAddr = flagMetricsAddr
	}
	if flags.Changed("timeout") {
		c.Timeout = flagTimeout
	}
}

func newLogger(lc config.LogConfig) (logger.Logger, error) {
	level, err := logger.ParseLevel(lc.Level)
	if err != nil {
		return nil, err
	}
	writers := []io.Writer{logger.ConsoleWriter(os.Stderr)}
	if lc.File != "" {
		writers = append(writers, logger.FileWriter(lc.File))
	}
	return logger.New(level, writers...), nil
}

func startMetricsServer(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", observability.Handler())
	metricsServer = &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server failed", "addr", addr, "error", err)
		}
	}()
	log.Info("serving metrics", "addr", addr)
}

func stopMetricsServer() {
	if metricsServer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = metricsServer.Shutdown(ctx)
}

// tableOptions returns the text renderer options for the current flags
func tableOptions() output.TableOptions {
	return output.TableOptions{
		Colors: output.NewColors(output.ParseColorMode(flagColor)),
		Now:    time.Now(),
	}
}

// query fetches a resource in the output form selected by the global flags:
// the raw payload, the decoded value as JSON, or rendered text.
func query[T any](
	ctx context.Context,
	w io.Writer,
	raw func(context.Context) (json.RawMessage, error),
	typed func(context.Context) (T, error),
	render func(io.Writer, T, output.TableOptions),
) error {
	if flagRawJSON {
		data, err := raw(ctx)
		if err != nil {
			return err
		}
		return printPrettyJSON(w, data)
	}

	v, err := typed(ctx)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(w, v)
	}

	render(w, v, tableOptions())
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printPrettyJSON(w io.Writer, data []byte) error {
	var prettyJSON interface{}
	if err := json.Unmarshal(data, &prettyJSON); err != nil {
		// If we can't parse it, just print raw
		_, _ = fmt.Fprintln(w, string(data))
		return err
	}
	return printJSON(w, prettyJSON)
}

// renderDocument adapts output.RenderDocument to query's render signature
func renderDocument(w io.Writer, doc models.Document, opts output.TableOptions) {
	output.RenderDocument(w, doc, opts)
}
