// Package imaging sniffs uploaded content and shrinks oversized JPEG and PNG
// images before they are stored.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/nfnt/resize"
)

const (
	MIMEJPEG = "image/jpeg"
	MIMEPNG  = "image/png"
)

var ErrUnsupportedFormat = errors.New("unsupported image format")

type Options struct {
	MaxWidth    int
	MaxHeight   int
	JPEGQuality int
}

// Detect returns the sniffed MIME type of data without parameters.
func Detect(data []byte) string {
	mt := mimetype.Detect(data).String()
	if i := strings.Index(mt, ";"); i >= 0 {
		mt = mt[:i]
	}
	return mt
}

func IsImageMIME(mimeType string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(mimeType)), "image/")
}

// Extension returns the canonical file extension, including the dot, for an
// image MIME type. JPEG maps to ".jpg".
func Extension(mimeType string) string {
	switch mimeType {
	case MIMEJPEG:
		return ".jpg"
	case MIMEPNG:
		return ".png"
	}
	if m := mimetype.Lookup(mimeType); m != nil && m.Extension() != "" {
		return m.Extension()
	}
	return ".bin"
}

// FitWithin scales width x height down to fit inside maxWidth x maxHeight,
// keeping the aspect ratio. Images already inside the box are returned as is.
func FitWithin(width, height, maxWidth, maxHeight int) (int, int) {
	if width <= maxWidth && height <= maxHeight {
		return width, height
	}

	widthRatio := float64(maxWidth) / float64(width)
	heightRatio := float64(maxHeight) / float64(height)

	if widthRatio < heightRatio {
		return maxWidth, max(1, int(float64(height)*widthRatio))
	}
	return max(1, int(float64(width)*heightRatio)), maxHeight
}

// Normalize resizes JPEG and PNG images larger than the configured box and
// re-encodes them in their original format. Other content is returned
// unchanged. The boolean reports whether data was rewritten.
func Normalize(data []byte, mimeType string, opts Options) ([]byte, bool, error) {
	if mimeType != MIMEJPEG && mimeType != MIMEPNG {
		return data, false, nil
	}
	if opts.MaxWidth <= 0 || opts.MaxHeight <= 0 {
		return data, false, nil
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, false, fmt.Errorf("failed to read image header: %w", err)
	}

	newWidth, newHeight := FitWithin(cfg.Width, cfg.Height, opts.MaxWidth, opts.MaxHeight)
	if newWidth == cfg.Width && newHeight == cfg.Height {
		return data, false, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, false, fmt.Errorf("failed to decode image: %w", err)
	}

	resized := resize.Resize(uint(newWidth), uint(newHeight), img, resize.Lanczos3)

	var buf bytes.Buffer
	if err := encode(&buf, resized, mimeType, opts.JPEGQuality); err != nil {
		return nil, false, err
	}
	return buf.Bytes(), true, nil
}

func encode(buf *bytes.Buffer, img image.Image, mimeType string, quality int) error {
	switch mimeType {
	case MIMEJPEG:
		if quality <= 0 || quality > 100 {
			quality = jpeg.DefaultQuality
		}
		return jpeg.Encode(buf, img, &jpeg.Options{Quality: quality})
	case MIMEPNG:
		return png.Encode(buf, img)
	default:
		return ErrUnsupportedFormat
	}
}
