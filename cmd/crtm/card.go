package main

import (
	"os"

	"github.com/mobil-koeln/crtm-cli/internal/output"
	"github.com/spf13/cobra"
)

var cardCmd = &cobra.Command{
	Use:   "card <ttp_number>",
	Short: "Show the balance of a public transport card",
	Long: `Show the balance and titles loaded on a public transport card.

The number is the one printed on the card. The service answers with an
XML document that is shown as a tree, or as nested objects with --json.

Examples:
  crtm card 0010000000000
  crtm card 0010000000000 --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		balance, err := cards.Balance(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if flagJSON || flagRawJSON {
			return printJSON(os.Stdout, balance)
		}

		output.RenderBalance(os.Stdout, balance, tableOptions())
		return nil
	},
}
