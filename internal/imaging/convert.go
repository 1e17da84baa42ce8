package imaging

import (
	"image"
	"image/draw"
)

// ToRGBA normalizes any decoded image to an *image.RGBA with zero-origin
// bounds, the raster layout the engine owns and mutates in place.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
