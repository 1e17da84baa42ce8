package palette

import (
	"fmt"
	"image"
	"image/color"

	"github.com/soniakeys/quant/median"
)

// Extract derives an n-color palette from img using median cut clustering.
// The result may contain fewer than n colors for images with little color
// variety.
func Extract(img image.Image, n int) ([]color.NRGBA, error) {
	if n < 1 {
		return nil, fmt.Errorf("extracted palette needs at least one color, got %d", n)
	}
	if n > 256 {
		return nil, fmt.Errorf("extracted palette is limited to 256 colors, got %d", n)
	}

	paletted := median.Quantizer(n).Paletted(img)
	out := make([]color.NRGBA, 0, len(paletted.Palette))
	for _, c := range paletted.Palette {
		r, g, b, _ := c.RGBA()
		out = append(out, color.NRGBA{
			R: uint8(r >> 8),
			G: uint8(g >> 8),
			B: uint8(b >> 8),
			A: 0xff,
		})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("palette extraction produced no colors")
	}
	return out, nil
}
