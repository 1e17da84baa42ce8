package colorspace

import "math"

// Oklab is Björn Ottosson's perceptual Lab-like space: L in [0, 1], a and b
// roughly in [-0.4, 0.4] for in-gamut sRGB.
type Oklab struct{}

func linToOklab(r, g, b float64) (okL, okA, okB float64) {
	l := 0.4122214708*r + 0.5363325363*g + 0.0514459929*b
	m := 0.2119034982*r + 0.6806995451*g + 0.1073969566*b
	s := 0.0883024619*r + 0.2817188376*g + 0.6299787005*b

	l = math.Cbrt(l)
	m = math.Cbrt(m)
	s = math.Cbrt(s)

	okL = 0.2104542553*l + 0.7936177850*m - 0.0040720468*s
	okA = 1.9779984951*l - 2.4285922050*m + 0.4505937099*s
	okB = 0.0259040371*l + 0.7827717662*m - 0.8086757660*s
	return
}

func oklabToLin(okL, okA, okB float64) (r, g, b float64) {
	l := okL + 0.3963377774*okA + 0.2158037573*okB
	m := okL - 0.1055613458*okA - 0.0638541728*okB
	s := okL - 0.0894841775*okA - 1.2914855480*okB

	l = l * l * l
	m = m * m * m
	s = s * s * s

	r = 4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	g = -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	b = -0.0041960863*l - 0.7034186147*m + 1.7076147010*s
	return
}

func (Oklab) FromSrgb(s Vec) Vec {
	l, a, b := linToOklab(linearize(float64(s[0])), linearize(float64(s[1])), linearize(float64(s[2])))
	return Vec{float32(l), float32(a), float32(b)}
}

func (Oklab) ToSrgb(v Vec) Vec {
	r, g, b := oklabToLin(float64(v[0]), float64(v[1]), float64(v[2]))
	return Vec{float32(delinearize(r)), float32(delinearize(g)), float32(delinearize(b))}
}

func (Oklab) ToLab(v Vec) Vec {
	r, g, b := oklabToLin(float64(v[0]), float64(v[1]), float64(v[2]))
	return xyzToLab(linToXyz(r, g, b))
}

func (Oklab) Clamp(v Vec) Vec {
	return Vec{clampf(v[0], 0, 1), clampf(v[1], -1, 1), clampf(v[2], -1, 1)}
}
