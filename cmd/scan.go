package cmd

import (
	"fmt"

	"github.com/shelfproof/stocksheet/internal/collect"
	"github.com/shelfproof/stocksheet/internal/config"
	"github.com/shelfproof/stocksheet/internal/row"
	"github.com/spf13/cobra"
)

func newScanCmd() *cobra.Command {
	var input string
	var recursive bool

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Preview which images would become workbook rows",
		Long: `Lists the image files a generate run would collect, in the order their
rows would appear, without writing anything. Useful for checking the
extension filter and recursion before a long run.`,
		Example: `  # Preview the default folder
  stocksheet scan

  # Preview a tree including subfolders
  stocksheet scan -i ./warehouse_photos --recursive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := config.NewOptions()
			if cmd.Flags().Changed("input") {
				opts.Input = input
			}
			opts.Recursive = recursive
			if err := opts.Validate(); err != nil {
				return err
			}

			files, err := collect.Images(opts.Input, opts.Recursive)
			if err != nil {
				return err
			}

			for i, path := range files {
				fmt.Printf("%4d  %-40s %s\n", i+1, row.DeriveName(path), path)
			}
			fmt.Printf("\n%d image(s) would become rows\n", len(files))
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", config.DefaultInput, "Folder containing the images")
	cmd.Flags().BoolVar(&recursive, "recursive", false, "Include images from subfolders")

	return cmd
}
