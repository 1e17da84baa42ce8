package imaging

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// ResizeToFit scales img to fit within the target dimensions while
// preserving aspect ratio, centered on a black canvas.
func ResizeToFit(img image.Image, targetWidth, targetHeight int) image.Image {
	bounds := img.Bounds()
	srcWidth := bounds.Dx()
	srcHeight := bounds.Dy()

	scaleX := float64(targetWidth) / float64(srcWidth)
	scaleY := float64(targetHeight) / float64(srcHeight)
	scale := scaleX
	if scaleY < scaleX {
		scale = scaleY
	}

	newWidth := int(float64(srcWidth) * scale)
	newHeight := int(float64(srcHeight) * scale)

	canvas := image.NewRGBA(image.Rect(0, 0, targetWidth, targetHeight))
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{color.RGBA{0, 0, 0, 255}}, image.Point{}, draw.Src)

	resized := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	xdraw.BiLinear.Scale(resized, resized.Bounds(), img, img.Bounds(), xdraw.Over, nil)

	offsetX := (targetWidth - newWidth) / 2
	offsetY := (targetHeight - newHeight) / 2
	targetRect := image.Rect(offsetX, offsetY, offsetX+newWidth, offsetY+newHeight)
	draw.Draw(canvas, targetRect, resized, image.Point{}, draw.Src)

	return canvas
}

// ResizeToFill scales img to cover the full target dimensions while
// preserving aspect ratio, cropping the overflow around the center.
func ResizeToFill(img image.Image, targetWidth, targetHeight int) image.Image {
	bounds := img.Bounds()
	srcWidth := bounds.Dx()
	srcHeight := bounds.Dy()

	scaleX := float64(targetWidth) / float64(srcWidth)
	scaleY := float64(targetHeight) / float64(srcHeight)
	scale := scaleX
	if scaleY > scaleX {
		scale = scaleY
	}

	newWidth := int(float64(srcWidth) * scale)
	newHeight := int(float64(srcHeight) * scale)

	resized := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	xdraw.BiLinear.Scale(resized, resized.Bounds(), img, img.Bounds(), xdraw.Over, nil)

	canvas := image.NewRGBA(image.Rect(0, 0, targetWidth, targetHeight))
	offsetX := (newWidth - targetWidth) / 2
	offsetY := (newHeight - targetHeight) / 2
	srcRect := image.Rect(offsetX, offsetY, offsetX+targetWidth, offsetY+targetHeight)
	draw.Draw(canvas, canvas.Bounds(), resized, srcRect.Min, draw.Src)

	return canvas
}
