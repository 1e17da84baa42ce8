// Package imaging handles image decode and encode for the CLI and the HTTP
// service, plus the raster conversions the engine needs. The engine itself
// never touches codecs.
package imaging

import (
	"fmt"
	"image"
	"io"

	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// Decode reads and decodes an image, sniffing the format. It returns the
// decoded image and the format name.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}
	return img, format, nil
}
