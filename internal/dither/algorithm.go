package dither

import (
	"image"
	"math/rand"

	"github.com/inkplot/halftone/internal/colorspace"
)

// randomSeed is fixed so the Random algorithm produces byte-identical output
// for the same image and configuration on every run.
const randomSeed = 0

// randomRadius is the half-width of the uniform perturbation applied to each
// working-space channel before the nearest lookup.
const randomRadius = 1.0

// Threshold replaces every pixel independently with its nearest palette
// color. No state is carried between pixels.
func Threshold[S colorspace.Space, D Difference](img *image.RGBA, pal Palette) {
	b := img.Bounds()
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			i := img.PixOffset(b.Min.X+x, b.Min.Y+y)
			v := readColor[S](img, i)
			writeColor[S](img, i, Nearest[D](pal, v))
		}
	}
}

// Random perturbs each working-space channel by an independent uniform offset
// in [-randomRadius, randomRadius) before the nearest lookup. The generator
// is reseeded with randomSeed at the start of every run and advanced once per
// channel in raster order.
//
// The perturbation is a biased approximation: the expected output color is
// not guaranteed to match the input color. Choosing palette probabilities so
// that it would is deliberately not attempted here.
func Random[S colorspace.Space, D Difference](img *image.RGBA, pal Palette) {
	rng := rand.New(rand.NewSource(randomSeed))
	b := img.Bounds()
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			i := img.PixOffset(b.Min.X+x, b.Min.Y+y)
			v := readColor[S](img, i)
			for c := range v {
				v[c] += rng.Float32()*2*randomRadius - randomRadius
			}
			writeColor[S](img, i, Nearest[D](pal, v))
		}
	}
}

// FloydSteinberg quantizes in raster order, diffusing each pixel's
// quantization error to four forward neighbors with the classic 7-3-5-1
// sixteenths kernel.
func FloydSteinberg[S colorspace.Space, D Difference](img *image.RGBA, pal Palette) {
	b := img.Bounds()
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			i := img.PixOffset(b.Min.X+x, b.Min.Y+y)
			before := readColor[S](img, i)
			after := Nearest[D](pal, before)
			writeColor[S](img, i, after)

			err := sub(before, after)
			diffuse[S](img, err, x, y, 1, 0, 7.0/16)
			diffuse[S](img, err, x, y, -1, 1, 3.0/16)
			diffuse[S](img, err, x, y, 0, 1, 5.0/16)
			diffuse[S](img, err, x, y, 1, 1, 1.0/16)
		}
	}
}

// Stucki is error diffusion with a 12-tap kernel over a 5-wide, 3-row forward
// neighborhood, weights in forty-seconds.
func Stucki[S colorspace.Space, D Difference](img *image.RGBA, pal Palette) {
	const base = 42.0
	b := img.Bounds()
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			i := img.PixOffset(b.Min.X+x, b.Min.Y+y)
			before := readColor[S](img, i)
			after := Nearest[D](pal, before)
			writeColor[S](img, i, after)

			err := sub(before, after)
			diffuse[S](img, err, x, y, 1, 0, 8/base)
			diffuse[S](img, err, x, y, 2, 0, 4/base)

			diffuse[S](img, err, x, y, -2, 1, 2/base)
			diffuse[S](img, err, x, y, -1, 1, 4/base)
			diffuse[S](img, err, x, y, 0, 1, 8/base)
			diffuse[S](img, err, x, y, 1, 1, 4/base)
			diffuse[S](img, err, x, y, 2, 1, 2/base)

			diffuse[S](img, err, x, y, -2, 2, 1/base)
			diffuse[S](img, err, x, y, -1, 2, 2/base)
			diffuse[S](img, err, x, y, 0, 2, 4/base)
			diffuse[S](img, err, x, y, 1, 2, 2/base)
			diffuse[S](img, err, x, y, 2, 2, 1/base)
		}
	}
}

// diffuse adds weight*err onto the stored device value of the neighbor at
// (x+dx, y+dy). Targets outside the raster are dropped: no wrapping past
// column or row zero, and bounds checks reject the right and bottom edges.
// Dropped error is lost, not redistributed.
func diffuse[S colorspace.Space](img *image.RGBA, err colorspace.Vec, x, y, dx, dy int, weight float32) {
	if x == 0 && dx < 0 {
		return
	}
	if y == 0 && dy < 0 {
		return
	}
	nx, ny := x+dx, y+dy
	b := img.Bounds()
	if nx < 0 || ny < 0 || nx >= b.Dx() || ny >= b.Dy() {
		return
	}
	i := img.PixOffset(b.Min.X+nx, b.Min.Y+ny)
	v := readColor[S](img, i)
	writeColor[S](img, i, add(v, scale(err, weight)))
}

// readColor converts the device pixel at byte offset i into the working
// space.
func readColor[S colorspace.Space](img *image.RGBA, i int) colorspace.Vec {
	var space S
	return space.FromSrgb(colorspace.FromDevice(img.Pix[i], img.Pix[i+1], img.Pix[i+2]))
}

// writeColor stores a working color back as a device pixel at byte offset i.
// Alpha is left untouched.
func writeColor[S colorspace.Space](img *image.RGBA, i int, v colorspace.Vec) {
	var space S
	img.Pix[i], img.Pix[i+1], img.Pix[i+2] = colorspace.ToDevice(space.ToSrgb(v))
}

func add(a, b colorspace.Vec) colorspace.Vec {
	return colorspace.Vec{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func sub(a, b colorspace.Vec) colorspace.Vec {
	return colorspace.Vec{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func scale(v colorspace.Vec, f float32) colorspace.Vec {
	return colorspace.Vec{v[0] * f, v[1] * f, v[2] * f}
}
