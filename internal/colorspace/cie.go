package colorspace

import "math"

// D65 reference white, 2° observer.
const (
	whiteX = 0.95047
	whiteY = 1.0
	whiteZ = 1.08883
)

// u'v' chromaticity of the reference white, used by CIE Luv.
var (
	whiteU = 4 * whiteX / (whiteX + 15*whiteY + 3*whiteZ)
	whiteV = 9 * whiteY / (whiteX + 15*whiteY + 3*whiteZ)
)

func linToXyz(r, g, b float64) (x, y, z float64) {
	x = 0.4124564*r + 0.3575761*g + 0.1804375*b
	y = 0.2126729*r + 0.7151522*g + 0.0721750*b
	z = 0.0193339*r + 0.1191920*g + 0.9503041*b
	return
}

func xyzToLin(x, y, z float64) (r, g, b float64) {
	r = 3.2404542*x - 1.5371385*y - 0.4985314*z
	g = -0.9692660*x + 1.8760108*y + 0.0415560*z
	b = 0.0556434*x - 0.2040259*y + 1.0572252*z
	return
}

// labF is the CIE Lab companding function. The linear branch also covers
// negative inputs from out-of-gamut colors.
func labF(t float64) float64 {
	const d = 6.0 / 29
	if t > d*d*d {
		return math.Cbrt(t)
	}
	return t/(3*d*d) + 4.0/29
}

func labFInv(t float64) float64 {
	const d = 6.0 / 29
	if t > d {
		return t * t * t
	}
	return 3 * d * d * (t - 4.0/29)
}

func xyzToLab(x, y, z float64) Vec {
	fx := labF(x / whiteX)
	fy := labF(y / whiteY)
	fz := labF(z / whiteZ)
	return Vec{
		float32(116*fy - 16),
		float32(500 * (fx - fy)),
		float32(200 * (fy - fz)),
	}
}

func labToXyz(v Vec) (x, y, z float64) {
	fy := (float64(v[0]) + 16) / 116
	fx := fy + float64(v[1])/500
	fz := fy - float64(v[2])/200
	return whiteX * labFInv(fx), whiteY * labFInv(fy), whiteZ * labFInv(fz)
}

// CIELab is the CIE 1976 L*a*b* space: L in [0, 100], a and b signed chroma
// axes.
type CIELab struct{}

func (CIELab) FromSrgb(s Vec) Vec {
	x, y, z := linToXyz(linearize(float64(s[0])), linearize(float64(s[1])), linearize(float64(s[2])))
	return xyzToLab(x, y, z)
}

func (CIELab) ToSrgb(v Vec) Vec {
	x, y, z := labToXyz(v)
	r, g, b := xyzToLin(x, y, z)
	return Vec{float32(delinearize(r)), float32(delinearize(g)), float32(delinearize(b))}
}

func (CIELab) ToLab(v Vec) Vec { return v }

func (CIELab) Clamp(v Vec) Vec {
	return Vec{clampf(v[0], 0, 100), clampf(v[1], -128, 127), clampf(v[2], -128, 127)}
}

// CIELch is the cylindrical form of CIELab: L, chroma, hue in degrees.
type CIELch struct{}

func labToLch(lab Vec) Vec {
	l := float64(lab[0])
	a := float64(lab[1])
	b := float64(lab[2])
	c := math.Hypot(a, b)
	h := math.Atan2(b, a) * 180 / math.Pi
	return Vec{float32(l), float32(c), normHue(float32(h))}
}

func lchToLab(lch Vec) Vec {
	h := float64(lch[2]) * math.Pi / 180
	return Vec{
		lch[0],
		float32(float64(lch[1]) * math.Cos(h)),
		float32(float64(lch[1]) * math.Sin(h)),
	}
}

func (CIELch) FromSrgb(s Vec) Vec { return labToLch(CIELab{}.FromSrgb(s)) }

func (CIELch) ToSrgb(v Vec) Vec { return CIELab{}.ToSrgb(lchToLab(v)) }

func (CIELch) ToLab(v Vec) Vec { return lchToLab(v) }

func (CIELch) Clamp(v Vec) Vec {
	// 181.0194 is the largest chroma reachable from the a/b ranges of Lab.
	return Vec{clampf(v[0], 0, 100), clampf(v[1], 0, 181.0194), normHue(v[2])}
}

// CIELuv is the CIE 1976 L*u*v* space.
type CIELuv struct{}

func (CIELuv) FromSrgb(s Vec) Vec {
	x, y, z := linToXyz(linearize(float64(s[0])), linearize(float64(s[1])), linearize(float64(s[2])))
	denom := x + 15*y + 3*z
	if denom == 0 {
		return Vec{}
	}
	uPrime := 4 * x / denom
	vPrime := 9 * y / denom
	l := 116*labF(y/whiteY) - 16
	return Vec{
		float32(l),
		float32(13 * l * (uPrime - whiteU)),
		float32(13 * l * (vPrime - whiteV)),
	}
}

func luvToXyz(v Vec) (x, y, z float64) {
	l := float64(v[0])
	if l <= 0 {
		return 0, 0, 0
	}
	uPrime := float64(v[1])/(13*l) + whiteU
	vPrime := float64(v[2])/(13*l) + whiteV
	y = whiteY * labFInv((l+16)/116)
	x = y * 9 * uPrime / (4 * vPrime)
	z = y * (12 - 3*uPrime - 20*vPrime) / (4 * vPrime)
	return
}

func (CIELuv) ToSrgb(v Vec) Vec {
	r, g, b := xyzToLin(luvToXyz(v))
	return Vec{float32(delinearize(r)), float32(delinearize(g)), float32(delinearize(b))}
}

func (CIELuv) ToLab(v Vec) Vec {
	return xyzToLab(luvToXyz(v))
}

func (CIELuv) Clamp(v Vec) Vec {
	return Vec{clampf(v[0], 0, 100), clampf(v[1], -84, 176), clampf(v[2], -135, 108)}
}
