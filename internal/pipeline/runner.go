// Package pipeline orchestrates the batch: collect image paths, build one
// row per path, write the workbook (and optional manifest), and report a
// summary. Row order in the workbook always matches collection order.
package pipeline

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/shelfproof/stocksheet/internal/collect"
	"github.com/shelfproof/stocksheet/internal/config"
	"github.com/shelfproof/stocksheet/internal/manifest"
	"github.com/shelfproof/stocksheet/internal/row"
	"github.com/shelfproof/stocksheet/internal/sheet"
)

// Run executes one generate invocation. Per-file decode failures are
// recorded as error rows and never abort the run; any error returned here is
// fatal (bad input directory, unwritable output) and means no workbook was
// produced.
func Run(opts config.Options) (RunStats, error) {
	var stats RunStats

	files, err := collect.Images(opts.Input, opts.Recursive)
	if err != nil {
		return stats, err
	}
	if len(files) == 0 {
		slog.Warn("No supported image files found", "input", opts.Input)
	}

	rows := buildRows(files, opts.ThumbSize, opts.Workers)
	stats = Tally(rows)

	outPath := sheet.OutputPath(opts.Output, opts.Timestamped, time.Now())
	if err := sheet.Write(rows, outPath, opts.ThumbSize); err != nil {
		return stats, err
	}
	slog.Info("Workbook created", "path", outPath, "rows", len(rows))

	if opts.Manifest != "" {
		if err := manifest.Write(rows, opts.Manifest); err != nil {
			return stats, err
		}
		slog.Info("Manifest created", "path", opts.Manifest)
	}

	printSummary(stats, outPath)
	return stats, nil
}

// buildRows produces one row per file, in file order. With workers > 1 the
// decode/resize work runs on a bounded pool; results land in an
// index-addressed slice so the output order never depends on scheduling.
func buildRows(files []string, thumbSize, workers int) []row.Row {
	rows := make([]row.Row, len(files))

	if workers <= 1 {
		for i, path := range files {
			slog.Info("Processing image", "progress", fmt.Sprintf("%d/%d", i+1, len(files)), "file", filepath.Base(path))
			rows[i] = row.Build(path, thumbSize)
		}
		return rows
	}

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, workers)
	for i, path := range files {
		wg.Add(1)
		go func(idx int, path string) {
			defer wg.Done()
			semaphore <- struct{}{}        // Acquire
			defer func() { <-semaphore }() // Release

			slog.Info("Processing image", "progress", fmt.Sprintf("%d/%d", idx+1, len(files)), "file", filepath.Base(path))
			rows[idx] = row.Build(path, thumbSize)
		}(i, path)
	}
	wg.Wait()

	return rows
}

func printSummary(stats RunStats, outPath string) {
	fmt.Println("\n========================================")
	fmt.Println("Inventory Sheet Summary")
	fmt.Println("========================================")
	fmt.Printf("Images collected:   %d\n", stats.Collected)
	fmt.Printf("Thumbnails written: %d\n", stats.Succeeded)
	fmt.Printf("Unreadable images:  %d\n", stats.Failed)
	fmt.Println("========================================")
	fmt.Printf("\nWorkbook saved to: %s\n", outPath)
}
