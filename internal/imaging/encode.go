package imaging

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/deepteams/webp"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Formats lists the encodable output formats.
func Formats() []string {
	return []string{"png", "jpeg", "gif", "bmp", "tiff", "webp"}
}

// FormatForPath guesses the output format from a file extension, falling back
// to PNG.
func FormatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".gif":
		return "gif"
	case ".bmp":
		return "bmp"
	case ".tif", ".tiff":
		return "tiff"
	case ".webp":
		return "webp"
	default:
		return "png"
	}
}

// Encode writes img to w in the named format. Quantized output compresses
// well losslessly, so WebP uses the lossless VP8L mode.
func Encode(w io.Writer, img image.Image, format string) error {
	var err error
	switch format {
	case "png":
		err = png.Encode(w, img)
	case "jpeg", "jpg":
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: 92})
	case "gif":
		err = gif.Encode(w, img, &gif.Options{NumColors: 256})
	case "bmp":
		err = bmp.Encode(w, img)
	case "tiff":
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case "webp":
		opts := webp.DefaultOptions()
		opts.Lossless = true
		err = webp.Encode(w, img, opts)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}
	return nil
}

// ContentType returns the MIME type for an output format.
func ContentType(format string) string {
	switch format {
	case "jpeg", "jpg":
		return "image/jpeg"
	case "gif":
		return "image/gif"
	case "bmp":
		return "image/bmp"
	case "tiff":
		return "image/tiff"
	case "webp":
		return "image/webp"
	default:
		return "image/png"
	}
}
