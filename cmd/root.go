package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stocksheet",
		Short: "Turn a folder of product photos into an inventory audit spreadsheet",
		Long: `Stocksheet converts a directory of product photographs into an Excel
workbook: one row per image, each with an embedded thumbnail and a provisional
item name derived from the file name. Quantity, SKU, condition, and notes
columns are left empty for the human audit pass.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	// Add subcommands
	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newScanCmd())

	return cmd
}
