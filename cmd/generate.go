package cmd

import (
	"log/slog"
	"os"

	"github.com/shelfproof/stocksheet/internal/config"
	"github.com/shelfproof/stocksheet/internal/pipeline"
	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	opts := config.NewOptions()
	var configFile string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the inventory workbook from a folder of images",
		Long: `Scans the input folder for supported images (.jpg, .jpeg, .png, .webp),
builds a thumbnail and provisional name for each, and writes a single-sheet
Excel workbook with a frozen header row.

Unreadable images keep their row, marked with an error note, so the auditor
can see which files need attention. They never abort the run.`,
		Example: `  # Default paths (./images -> ./inventory_audit.xlsx)
  stocksheet generate

  # Recursive scan with larger thumbnails and a timestamped output name
  stocksheet generate -i ./warehouse_photos --recursive --thumb-size 200 --timestamped

  # Parallel decode plus a parquet sidecar for downstream tooling
  stocksheet generate --workers 4 --manifest ./inventory_rows.parquet`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configFile != "" {
				fileOpts := config.NewOptions()
				if err := fileOpts.LoadFile(configFile); err != nil {
					return err
				}
				// Flags set explicitly on the command line win over the file.
				applyUnlessChanged(cmd, &opts, fileOpts)
			}
			setupLogging(opts.Verbose)

			if err := opts.Validate(); err != nil {
				return err
			}

			_, err := pipeline.Run(opts)
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.Input, "input", "i", opts.Input, "Folder containing the images")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", opts.Output, "Output Excel file path")
	cmd.Flags().IntVar(&opts.ThumbSize, "thumb-size", opts.ThumbSize, "Thumbnail bounding box in pixels (width and height)")
	cmd.Flags().BoolVar(&opts.Timestamped, "timestamped", opts.Timestamped, "Insert a YYYYMMDD_HHMMSS timestamp before the output extension")
	cmd.Flags().BoolVar(&opts.Recursive, "recursive", opts.Recursive, "Include images from subfolders")
	cmd.Flags().IntVar(&opts.Workers, "workers", opts.Workers, "Decode workers (1 = sequential; row order is unaffected)")
	cmd.Flags().StringVar(&opts.Manifest, "manifest", opts.Manifest, "Also write a parquet manifest of the rows to this path")
	cmd.Flags().StringVar(&configFile, "config", "", "YAML config file with the above options")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", opts.Verbose, "Verbose logging")

	return cmd
}

// applyUnlessChanged overlays file-provided options, keeping any value the
// user set explicitly via flag.
func applyUnlessChanged(cmd *cobra.Command, opts *config.Options, file config.Options) {
	if !cmd.Flags().Changed("input") {
		opts.Input = file.Input
	}
	if !cmd.Flags().Changed("output") {
		opts.Output = file.Output
	}
	if !cmd.Flags().Changed("thumb-size") {
		opts.ThumbSize = file.ThumbSize
	}
	if !cmd.Flags().Changed("timestamped") {
		opts.Timestamped = file.Timestamped
	}
	if !cmd.Flags().Changed("recursive") {
		opts.Recursive = file.Recursive
	}
	if !cmd.Flags().Changed("workers") {
		opts.Workers = file.Workers
	}
	if !cmd.Flags().Changed("manifest") {
		opts.Manifest = file.Manifest
	}
	if !cmd.Flags().Changed("verbose") {
		opts.Verbose = file.Verbose
	}
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}
