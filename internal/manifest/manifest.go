// Package manifest writes an optional machine-readable sidecar next to the
// workbook: one parquet record per inventory row, for downstream tooling
// that shouldn't have to parse xlsx.
package manifest

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"
	"github.com/shelfproof/stocksheet/internal/row"
)

// Record is the parquet schema for one inventory row.
type Record struct {
	Path     string `parquet:"path"`
	Name     string `parquet:"name"`
	Status   string `parquet:"status"`
	Error    string `parquet:"error,optional"`
	Width    int32  `parquet:"width"`
	Height   int32  `parquet:"height"`
	Captured string `parquet:"captured,optional"`
}

// FromRow converts an inventory row to its manifest record.
func FromRow(r row.Row) Record {
	rec := Record{
		Path:   r.Path,
		Name:   r.Name,
		Status: string(r.Status),
		Error:  r.ErrorMsg,
		Width:  int32(r.SourceWidth),
		Height: int32(r.SourceHeight),
	}
	if !r.Captured.IsZero() {
		rec.Captured = r.Captured.Format("2006-01-02 15:04:05")
	}
	return rec
}

// Write saves the manifest for rows to path. The manifest was explicitly
// requested, so failure here is fatal to the run.
func Write(rows []row.Row, path string) error {
	records := make([]Record, 0, len(rows))
	for _, r := range rows {
		records = append(records, FromRow(r))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create manifest file: %w", err)
	}
	defer f.Close()

	w := parquet.NewGenericWriter[Record](f)
	if _, err := w.Write(records); err != nil {
		return fmt.Errorf("failed to write manifest records: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalize manifest: %w", err)
	}
	return nil
}

// Read loads all records from a manifest file.
func Read(path string) ([]Record, error) {
	records, err := parquet.ReadFile[Record](path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return records, nil
}
