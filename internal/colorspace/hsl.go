package colorspace

import "math"

// Plain HSL/HSV over nonlinear sRGB. These are not engine working spaces;
// the black-and-white transform uses them to drop saturation.

// SrgbToHsl converts nonlinear sRGB to [hue degrees, saturation, lightness].
func SrgbToHsl(s Vec) Vec {
	h, c, maxC, minC := hueChroma(s)
	l := (maxC + minC) / 2
	var sat float32
	if c != 0 && l != 0 && l != 1 {
		d := 1 - abs32(2*l-1)
		if d != 0 {
			sat = c / d
		}
	}
	return Vec{h, sat, l}
}

// HslToSrgb converts [hue degrees, saturation, lightness] back to sRGB.
func HslToSrgb(v Vec) Vec {
	h, s, l := v[0], v[1], v[2]
	c := (1 - abs32(2*l-1)) * s
	m := l - c/2
	return fromHueChroma(h, c, m)
}

// SrgbToHsv converts nonlinear sRGB to [hue degrees, saturation, value].
func SrgbToHsv(s Vec) Vec {
	h, c, maxC, _ := hueChroma(s)
	var sat float32
	if maxC != 0 {
		sat = c / maxC
	}
	return Vec{h, sat, maxC}
}

// HsvToSrgb converts [hue degrees, saturation, value] back to sRGB.
func HsvToSrgb(v Vec) Vec {
	h, s, val := v[0], v[1], v[2]
	c := val * s
	m := val - c
	return fromHueChroma(h, c, m)
}

func hueChroma(s Vec) (h, c, maxC, minC float32) {
	r, g, b := s[0], s[1], s[2]
	maxC = max32(r, max32(g, b))
	minC = min32(r, min32(g, b))
	c = maxC - minC
	if c == 0 {
		return 0, 0, maxC, minC
	}
	switch maxC {
	case r:
		h = 60 * (g - b) / c
	case g:
		h = 60 * (2 + (b-r)/c)
	default:
		h = 60 * (4 + (r-g)/c)
	}
	return normHue(h), c, maxC, minC
}

func fromHueChroma(h, c, m float32) Vec {
	h = normHue(h) / 60
	x := c * (1 - abs32(float32(math.Mod(float64(h), 2))-1))
	var r, g, b float32
	switch int(h) {
	case 0:
		r, g, b = c, x, 0
	case 1:
		r, g, b = x, c, 0
	case 2:
		r, g, b = 0, c, x
	case 3:
		r, g, b = 0, x, c
	case 4:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return Vec{r + m, g + m, b + m}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
