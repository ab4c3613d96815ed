package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mobil-koeln/crtm-cli/internal/api"
	"github.com/mobil-koeln/crtm-cli/internal/catalog"
	"github.com/mobil-koeln/crtm-cli/internal/output"
	"github.com/spf13/cobra"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List transport modes",
	Long: `List the transport modes known to the service with their symbolic names.

Symbolic names are derived from the server's display names: uppercase,
accents removed, other characters collapsed to "_". They are accepted
wherever a mode is expected, e.g. "crtm lines mode METRO".

Examples:
  crtm modes
  crtm modes --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRegistry(cmd.Context(), client.ModesRaw, func(c *catalog.Catalog) *catalog.Registry {
			return c.Modes
		})
	},
}

var municipalitiesCmd = &cobra.Command{
	Use:   "municipalities",
	Short: "List municipalities",
	Long: `List the municipalities of the Madrid region with their symbolic names.

Examples:
  crtm municipalities
  crtm municipalities --json | jq .FUENLABRADA`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRegistry(cmd.Context(), client.MunicipalitiesRaw, func(c *catalog.Catalog) *catalog.Registry {
			return c.Municipalities
		})
	},
}

var codesCmd = &cobra.Command{
	Use:   "codes",
	Short: "Build line and stop codes",
	Long: `Build the composite line and stop codes the service expects.

Examples:
  crtm codes line METRO 10      # 4__10___
  crtm codes stop 8 17491       # 8_17491`,
}

var codesLineCmd = &cobra.Command{
	Use:   "line <mode> <line>",
	Short: "Build a line code",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := resolveMode(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Println(api.LineCode(mode, args[1]))
		return nil
	},
}

var codesStopCmd = &cobra.Command{
	Use:   "stop <mode> <stop>",
	Short: "Build a stop code",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := resolveMode(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Println(api.StopCode(mode, args[1]))
		return nil
	},
}

func init() {
	codesCmd.AddCommand(codesLineCmd)
	codesCmd.AddCommand(codesStopCmd)
}

func runRegistry(ctx context.Context, raw func(context.Context) (json.RawMessage, error), pick func(*catalog.Catalog) *catalog.Registry) error {
	if flagRawJSON {
		data, err := raw(ctx)
		if err != nil {
			return err
		}
		return printPrettyJSON(os.Stdout, data)
	}

	cat, err := registry.Get(ctx)
	if err != nil {
		return err
	}
	reg := pick(cat)

	if flagJSON {
		return printJSON(os.Stdout, reg.Map())
	}

	output.RenderRegistry(os.Stdout, reg, tableOptions())
	return nil
}

// resolveMode accepts a numeric mode code or a symbolic mode name
func resolveMode(ctx context.Context, arg string) (int, error) {
	return resolve(ctx, arg, func(c *catalog.Catalog) *catalog.Registry { return c.Modes })
}

// resolveMunicipality accepts a numeric municipality code or a symbolic name
func resolveMunicipality(ctx context.Context, arg string) (int, error) {
	return resolve(ctx, arg, func(c *catalog.Catalog) *catalog.Registry { return c.Municipalities })
}

// resolve checks for a numeric code before Registry.Resolve does so that
// numeric arguments never load the catalog.
func resolve(ctx context.Context, arg string, pick func(*catalog.Catalog) *catalog.Registry) (int, error) {
	if code, ok := catalog.ParseCode(arg); ok {
		return code, nil
	}
	cat, err := registry.Get(ctx)
	if err != nil {
		return 0, err
	}
	return pick(cat).Resolve(arg)
}
