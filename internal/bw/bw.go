// Package bw converts images to black and white with a per-pixel remap in a
// selectable color representation. Unlike the dithering engine it carries no
// state between pixels and needs no palette.
package bw

import (
	"fmt"
	"image"

	"github.com/inkplot/halftone/internal/colorspace"
)

// Method selects how a pixel is desaturated.
type Method int

const (
	// SrgbAverage sets all three channels to the unweighted average of the
	// nonlinear sRGB channels.
	SrgbAverage Method = iota
	// LinSrgbAverage averages in linear light instead.
	LinSrgbAverage
	// Hsl drops the saturation component of HSL.
	Hsl
	// Hsv drops the saturation component of HSV.
	Hsv
	// Cielab zeroes the a and b chroma axes of CIE Lab.
	Cielab
	// Oklab zeroes the a and b chroma axes of Oklab.
	Oklab
)

var methodNames = map[Method]string{
	SrgbAverage:    "srgb-average",
	LinSrgbAverage: "lin-srgb-average",
	Hsl:            "hsl",
	Hsv:            "hsv",
	Cielab:         "cielab",
	Oklab:          "oklab",
}

func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod resolves a method name as accepted on the CLI and the API.
func ParseMethod(name string) (Method, error) {
	for m, n := range methodNames {
		if n == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown black/white method %q", name)
}

// Methods lists the accepted method names, for usage messages.
func Methods() []string {
	out := make([]string, 0, len(methodNames))
	for m := Method(0); int(m) < len(methodNames); m++ {
		out = append(out, methodNames[m])
	}
	return out
}

// Apply desaturates img in place. RGB is replaced, alpha passes through.
func Apply(img *image.RGBA, method Method) error {
	if _, ok := methodNames[method]; !ok {
		return fmt.Errorf("unknown black/white method %d", int(method))
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := img.PixOffset(x, y)
			s := colorspace.FromDevice(img.Pix[i], img.Pix[i+1], img.Pix[i+2])
			img.Pix[i], img.Pix[i+1], img.Pix[i+2] = colorspace.ToDevice(desaturate(s, method))
		}
	}
	return nil
}

func desaturate(s colorspace.Vec, method Method) colorspace.Vec {
	switch method {
	case SrgbAverage:
		v := (s[0] + s[1] + s[2]) / 3
		return colorspace.Vec{v, v, v}
	case LinSrgbAverage:
		lin := colorspace.LinSrgb{}.FromSrgb(s)
		v := (lin[0] + lin[1] + lin[2]) / 3
		return colorspace.LinSrgb{}.ToSrgb(colorspace.Vec{v, v, v})
	case Hsl:
		hsl := colorspace.SrgbToHsl(s)
		hsl[1] = 0
		return colorspace.HslToSrgb(hsl)
	case Hsv:
		hsv := colorspace.SrgbToHsv(s)
		hsv[1] = 0
		return colorspace.HsvToSrgb(hsv)
	case Cielab:
		lab := colorspace.CIELab{}.FromSrgb(s)
		lab[1], lab[2] = 0, 0
		return colorspace.CIELab{}.ToSrgb(lab)
	case Oklab:
		lab := colorspace.Oklab{}.FromSrgb(s)
		lab[1], lab[2] = 0, 0
		return colorspace.Oklab{}.ToSrgb(lab)
	}
	return s
}
