package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/mobil-koeln/crtm-cli/internal/models"
	"github.com/mobil-koeln/crtm-cli/internal/output"
	"github.com/spf13/cobra"
)

var flagOfficeType string

var officesCmd = &cobra.Command{
	Use:   "offices",
	Short: "Query offices and sales points",
	Long: `List customer offices and card sales points.

Examples:
  crtm offices type OFICINA
  crtm offices postcode 28013 --type OFICINA
  crtm offices municipality FUENLABRADA`,
}

var officesTypeCmd = &cobra.Command{
	Use:   "type <type>",
	Short: "List the offices of a type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		officeType := args[0]
		return query(cmd.Context(), os.Stdout,
			func(ctx context.Context) (json.RawMessage, error) { return client.OfficesByTypeRaw(ctx, officeType) },
			func(ctx context.Context) ([]models.Office, error) { return client.OfficesByType(ctx, officeType) },
			output.RenderOffices,
		)
	},
}

var officesPostcodeCmd = &cobra.Command{
	Use:   "postcode <postcode>",
	Short: "List the offices of a postcode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		postcode := args[0]
		return query(cmd.Context(), os.Stdout,
			func(ctx context.Context) (json.RawMessage, error) {
				return client.OfficesByPostcodeRaw(ctx, postcode, flagOfficeType)
			},
			func(ctx context.Context) ([]models.Office, error) {
				return client.OfficesByPostcode(ctx, postcode, flagOfficeType)
			},
			output.RenderOffices,
		)
	},
}

var officesMunicipalityCmd = &cobra.Command{
	Use:   "municipality <municipality>",
	Short: "List the offices of a municipality",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		municipality, err := resolveMunicipality(ctx, args[0])
		if err != nil {
			return err
		}
		return query(ctx, os.Stdout,
			func(ctx context.Context) (json.RawMessage, error) {
				return client.OfficesByMunicipalityRaw(ctx, municipality, flagOfficeType)
			},
			func(ctx context.Context) ([]models.Office, error) {
				return client.OfficesByMunicipality(ctx, municipality, flagOfficeType)
			},
			output.RenderOffices,
		)
	},
}

func init() {
	officesCmd.AddCommand(officesTypeCmd)
	officesCmd.AddCommand(officesPostcodeCmd)
	officesCmd.AddCommand(officesMunicipalityCmd)

	officesCmd.PersistentFlags().StringVarP(&flagOfficeType, "type", "t", "", "Office type (e.g. OFICINA)")
}
