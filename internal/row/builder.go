package row

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"log/slog"
	"os"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Build produces the Row for one file path. Decode failures are recorded on
// the row (StatusError) and logged; they are never returned as errors so the
// caller can keep consuming the batch.
func Build(path string, thumbSize int) Row {
	r := Row{
		Path: path,
		Name: DeriveName(path),
	}

	img, err := decode(path)
	if err != nil {
		slog.Warn("Unreadable image, keeping row slot", "path", path, "err", err)
		r.Status = StatusError
		r.ErrorMsg = "unreadable image"
		return r
	}

	bounds := img.Bounds()
	r.SourceWidth = bounds.Dx()
	r.SourceHeight = bounds.Dy()

	thumb := fit(img, thumbSize)
	tb := thumb.Bounds()
	r.ThumbWidth = tb.Dx()
	r.ThumbHeight = tb.Dy()

	var buf bytes.Buffer
	if err := png.Encode(&buf, thumb); err != nil {
		slog.Warn("Thumbnail encode failed, keeping row slot", "path", path, "err", err)
		r.Status = StatusError
		r.ErrorMsg = "thumbnail encode failed"
		return r
	}
	r.Thumbnail = buf.Bytes()
	r.Status = StatusOK

	if taken, err := exifCaptureDate(path); err == nil {
		r.Captured = taken
	}

	return r
}

func decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// fit scales img to fit inside a size×size box, preserving aspect ratio.
// Images already inside the box are returned unscaled; thumbnails are never
// upscaled. No padding or cropping.
func fit(img image.Image, size int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= size && h <= size {
		return img
	}

	dw, dh := size, size
	if w > h {
		dh = h * size / w
	} else {
		dw = w * size / h
	}
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	draw.CatmullRom.Scale(dst, dst.Rect, img, bounds, draw.Over, nil)
	return dst
}
