// Package colorspace implements the floating-point color representations the
// dithering engine works in, with conversions to and from 8-bit sRGB device
// pixels.
//
// Every space is an empty struct satisfying Space, so engine code can be
// instantiated per space with Go generics instead of dispatching on an
// interface value for every pixel.
package colorspace

// Vec is a 3-component working color. The meaning of the components depends
// on the space the value belongs to: channels for the RGB spaces, L/a/b for
// the Lab-like spaces, hue (degrees)/saturation/lightness-or-value for the
// Ok hue spaces.
type Vec [3]float32

// Space converts between working colors and nonlinear sRGB with components
// nominally in [0, 1].
type Space interface {
	// FromSrgb converts a nonlinear sRGB color to this space. 8-bit input
	// is always representable, so there is no error path.
	FromSrgb(s Vec) Vec

	// ToSrgb converts a color in this space back to nonlinear sRGB. The
	// result may lie outside [0, 1] when the input is out of gamut; the
	// final float-to-byte step saturates instead of rejecting.
	ToSrgb(v Vec) Vec

	// ToLab converts a color in this space to CIE Lab. The HyAb and
	// CIEDE2000 difference formulas are defined over Lab only.
	ToLab(v Vec) Vec

	// Clamp restricts each component to the valid range of this space.
	Clamp(v Vec) Vec
}

// FromDevice converts an 8-bit device pixel to nonlinear sRGB in [0, 1].
func FromDevice(r, g, b uint8) Vec {
	return Vec{float32(r) / 255, float32(g) / 255, float32(b) / 255}
}

// ToDevice converts nonlinear sRGB back to an 8-bit device pixel. Components
// outside [0, 1] saturate to 0 or 255.
func ToDevice(s Vec) (r, g, b uint8) {
	return quant8(s[0]), quant8(s[1]), quant8(s[2])
}

func quant8(c float32) uint8 {
	v := int(c*255 + 0.5)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func clampf(c, lo, hi float32) float32 {
	if c < lo {
		return lo
	}
	if c > hi {
		return hi
	}
	return c
}

// normHue wraps a hue angle into [0, 360).
func normHue(h float32) float32 {
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	return h
}
