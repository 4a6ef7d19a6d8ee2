package row

import (
	"os"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

// exifCaptureDate extracts DateTimeOriginal from a photo's EXIF metadata.
// Best effort: most phone/camera JPEGs carry it, PNG and webp usually don't.
func exifCaptureDate(path string) (time.Time, error) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, err
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return time.Time{}, err
	}

	return x.DateTime()
}
