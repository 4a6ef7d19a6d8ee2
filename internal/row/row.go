// Package row turns one discovered image file into one inventory row:
// a derived item name, a PNG thumbnail sized for spreadsheet embedding, and
// optional EXIF capture metadata. Decode failures are carried on the row
// itself rather than returned as errors, so a bad file never stops the batch.
package row

import (
	"path/filepath"
	"strings"
	"time"
)

// Status marks whether a row carries a usable thumbnail.
type Status string

const (
	StatusOK    Status = "ok"
	StatusError Status = "error"
)

// Row is the unit of workbook output. Exactly one Row is produced per
// collected file, in collection order.
type Row struct {
	Path     string
	Name     string
	Status   Status
	ErrorMsg string

	// Thumbnail is PNG-encoded pixel data fitted to the configured bounding
	// box, nil when Status is StatusError.
	Thumbnail []byte
	// ThumbWidth and ThumbHeight are the fitted pixel dimensions of Thumbnail.
	ThumbWidth  int
	ThumbHeight int

	// SourceWidth and SourceHeight are the original image dimensions.
	SourceWidth  int
	SourceHeight int

	// Captured is the EXIF DateTimeOriginal when present; zero otherwise.
	Captured time.Time
}

// DeriveName produces the provisional item name from a file path: the base
// name with the extension stripped, underscores and hyphens replaced with
// spaces, and whitespace runs collapsed. The same rule applies to every file.
func DeriveName(path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	stem = strings.NewReplacer("_", " ", "-", " ").Replace(stem)
	return strings.Join(strings.Fields(stem), " ")
}
