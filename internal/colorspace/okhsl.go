package colorspace

import "math"

// Okhsl and Okhsv are Ottosson's hue/saturation spaces built on top of Oklab,
// with the sRGB gamut mapped to the unit cylinder. The cusp and toe helpers
// below follow the reference formulation.

// Okhsl stores hue in degrees, saturation and lightness in [0, 1].
type Okhsl struct{}

// Okhsv stores hue in degrees, saturation and value in [0, 1].
type Okhsv struct{}

type cuspLC struct{ L, C float64 }

type maxST struct{ S, T float64 }

// computeMaxSaturation returns the max S = C/L for which the Oklab color
// (1, S*a, S*b) stays inside sRGB, for a unit chroma direction (a, b).
func computeMaxSaturation(a, b float64) float64 {
	// Polynomial fit selected by which channel goes negative first.
	var k0, k1, k2, k3, k4, wl, wm, ws float64
	switch {
	case -1.88170328*a-0.80936493*b > 1:
		// Red component.
		k0, k1, k2, k3, k4 = 1.19086277, 1.76576728, 0.59662641, 0.75515197, 0.56771245
		wl, wm, ws = 4.0767416621, -3.3077115913, 0.2309699292
	case 1.81444104*a-1.19445276*b > 1:
		// Green component.
		k0, k1, k2, k3, k4 = 0.73956515, -0.45954404, 0.08285427, 0.12541070, 0.14503204
		wl, wm, ws = -1.2684380046, 2.6097574011, -0.3413193965
	default:
		// Blue component.
		k0, k1, k2, k3, k4 = 1.35733652, -0.00915799, -1.15130210, -0.50559606, 0.00692167
		wl, wm, ws = -0.0041960863, -0.7034186147, 1.7076147010
	}

	s := k0 + k1*a + k2*b + k3*a*a + k4*a*b

	// One Halley step sharpens the fit.
	kl := 0.3963377774*a + 0.2158037573*b
	km := -0.1055613458*a - 0.0638541728*b
	ks := -0.0894841775*a - 1.2914855480*b

	l1 := 1 + s*kl
	m1 := 1 + s*km
	s1 := 1 + s*ks

	l3 := l1 * l1 * l1
	m3 := m1 * m1 * m1
	s3 := s1 * s1 * s1

	ldS := 3 * kl * l1 * l1
	mdS := 3 * km * m1 * m1
	sdS := 3 * ks * s1 * s1

	ldS2 := 6 * kl * kl * l1
	mdS2 := 6 * km * km * m1
	sdS2 := 6 * ks * ks * s1

	f := wl*l3 + wm*m3 + ws*s3
	f1 := wl*ldS + wm*mdS + ws*sdS
	f2 := wl*ldS2 + wm*mdS2 + ws*sdS2

	return s - f*f1/(f1*f1-0.5*f*f2)
}

// findCusp returns the L and C of the gamut cusp for a unit chroma direction.
func findCusp(a, b float64) cuspLC {
	sCusp := computeMaxSaturation(a, b)
	r, g, bl := oklabToLin(1, sCusp*a, sCusp*b)
	lCusp := math.Cbrt(1 / math.Max(math.Max(r, g), bl))
	return cuspLC{L: lCusp, C: lCusp * sCusp}
}

// findGamutIntersection intersects the segment from (l0, 0) to (l1, c1) with
// the sRGB gamut boundary and returns the parameter t of the intersection.
func findGamutIntersection(a, b, l1, c1, l0 float64, cusp cuspLC) float64 {
	var t float64
	if (l1-l0)*cusp.C-(cusp.L-l0)*c1 <= 0 {
		// Lower half: straight line to the cusp suffices.
		return cusp.C * l0 / (c1*cusp.L + cusp.C*(l0-l1))
	}

	// Upper half: first intersect with the triangle approximation, then
	// refine against the real boundary with one Halley step per channel.
	t = cusp.C * (l0 - 1) / (c1*(cusp.L-1) + cusp.C*(l0-l1))

	dL := l1 - l0
	dC := c1

	kl := 0.3963377774*a + 0.2158037573*b
	km := -0.1055613458*a - 0.0638541728*b
	ks := -0.0894841775*a - 1.2914855480*b

	lDt := dL + dC*kl
	mDt := dL + dC*km
	sDt := dL + dC*ks

	L := l0*(1-t) + t*l1
	C := t * c1

	l1_ := L + C*kl
	m1_ := L + C*km
	s1_ := L + C*ks

	l3 := l1_ * l1_ * l1_
	m3 := m1_ * m1_ * m1_
	s3 := s1_ * s1_ * s1_

	ldt := 3 * lDt * l1_ * l1_
	mdt := 3 * mDt * m1_ * m1_
	sdt := 3 * sDt * s1_ * s1_

	ldt2 := 6 * lDt * lDt * l1_
	mdt2 := 6 * mDt * mDt * m1_
	sdt2 := 6 * sDt * sDt * s1_

	step := func(c0, c1d, c2d float64) float64 {
		u := c1d / (c1d*c1d - 0.5*c0*c2d)
		if u < 0 {
			return math.MaxFloat64
		}
		return -c0 * u
	}

	r0 := 4.0767416621*l3 - 3.3077115913*m3 + 0.2309699292*s3 - 1
	r1 := 4.0767416621*ldt - 3.3077115913*mdt + 0.2309699292*sdt
	r2 := 4.0767416621*ldt2 - 3.3077115913*mdt2 + 0.2309699292*sdt2
	tR := step(r0, r1, r2)

	g0 := -1.2684380046*l3 + 2.6097574011*m3 - 0.3413193965*s3 - 1
	g1 := -1.2684380046*ldt + 2.6097574011*mdt - 0.3413193965*sdt
	g2 := -1.2684380046*ldt2 + 2.6097574011*mdt2 - 0.3413193965*sdt2
	tG := step(g0, g1, g2)

	b0 := -0.0041960863*l3 - 0.7034186147*m3 + 1.7076147010*s3 - 1
	b1 := -0.0041960863*ldt - 0.7034186147*mdt + 1.7076147010*sdt
	b2 := -0.0041960863*ldt2 - 0.7034186147*mdt2 + 1.7076147010*sdt2
	tB := step(b0, b1, b2)

	return t + math.Min(tR, math.Min(tG, tB))
}

func toST(cusp cuspLC) maxST {
	return maxST{S: cusp.C / cusp.L, T: cusp.C / (1 - cusp.L)}
}

// getSTMid is a polynomial approximation of the S and T at the midpoint
// between the smooth inner shape and the gamut, per hue direction.
func getSTMid(a, b float64) maxST {
	s := 0.11516993 + 1/(7.44778970+4.15901240*b+
		a*(-2.19557347+1.75198401*b+
			a*(-2.13704948-10.02301043*b+
				a*(-4.24894561+5.38770819*b+4.69891013*a))))
	t := 0.11239642 + 1/(1.61320320-0.68124379*b+
		a*(0.40370612+0.90148123*b+
			a*(-0.27087943+0.61223990*b+
				a*(0.00299215-0.45399568*b-0.14661872*a))))
	return maxST{S: s, T: t}
}

type chromaCs struct{ c0, cMid, cMax float64 }

func getCs(l, a, b float64) chromaCs {
	cusp := findCusp(a, b)
	cMax := findGamutIntersection(a, b, l, 1, l, cusp)
	stMax := toST(cusp)

	k := cMax / math.Min(l*stMax.S, (1-l)*stMax.T)

	stMid := getSTMid(a, b)
	ca := l * stMid.S
	cb := (1 - l) * stMid.T
	cMid := 0.9 * k * math.Sqrt(math.Sqrt(1/(1/(ca*ca*ca*ca)+1/(cb*cb*cb*cb))))

	ca = l * 0.4
	cb = (1 - l) * 0.8
	c0 := math.Sqrt(1 / (1/(ca*ca) + 1/(cb*cb)))

	return chromaCs{c0: c0, cMid: cMid, cMax: cMax}
}

// toe maps Oklab lightness to the perceptually even Okhsl/Okhsv lightness.
func toe(x float64) float64 {
	const k1 = 0.206
	const k2 = 0.03
	const k3 = (1 + k1) / (1 + k2)
	return 0.5 * (k3*x - k1 + math.Sqrt((k3*x-k1)*(k3*x-k1)+4*k2*k3*x))
}

func toeInv(x float64) float64 {
	const k1 = 0.206
	const k2 = 0.03
	const k3 = (1 + k1) / (1 + k2)
	return (x*x + k1*x) / (k3 * (x + k2))
}

const (
	hslMid    = 0.8
	hslMidInv = 1.25
)

func okhslToSrgb(h, s, l float64) (r, g, b float64) {
	if l >= 1 {
		return 1, 1, 1
	}
	if l <= 0 {
		return 0, 0, 0
	}

	hr := h * math.Pi / 180
	a := math.Cos(hr)
	bb := math.Sin(hr)
	okL := toeInv(l)

	cs := getCs(okL, a, bb)

	var c float64
	if s < hslMid {
		t := hslMidInv * s
		k1 := hslMid * cs.c0
		k2 := 1 - k1/cs.cMid
		c = t * k1 / (1 - k2*t)
	} else {
		t := (s - hslMid) / (1 - hslMid)
		k0 := cs.cMid
		k1 := 0.2 * cs.cMid * cs.cMid * hslMidInv * hslMidInv / cs.c0
		k2 := 1 - k1/(cs.cMax-cs.cMid)
		c = k0 + t*k1/(1-k2*t)
	}

	lr, lg, lb := oklabToLin(okL, c*a, c*bb)
	return delinearize(lr), delinearize(lg), delinearize(lb)
}

func srgbToOkhsl(r, g, b float64) (h, s, l float64) {
	okL, okA, okB := linToOklab(linearize(r), linearize(g), linearize(b))
	c := math.Sqrt(okA*okA + okB*okB)
	l = toe(okL)
	// Near the white point the chroma mapping divides by (1-L) terms that
	// vanish, so tiny float residue in c would blow up into spurious
	// saturation. Treat such colors as achromatic.
	if c < 1e-7 || okL >= 1 {
		return 0, 0, l
	}

	a := okA / c
	bb := okB / c
	h = 180 + 180*math.Atan2(-okB, -okA)/math.Pi

	cs := getCs(okL, a, bb)

	if c < cs.cMid {
		k1 := hslMid * cs.c0
		k2 := 1 - k1/cs.cMid
		t := c / (k1 + k2*c)
		s = t * hslMid
	} else {
		k0 := cs.cMid
		k1 := 0.2 * cs.cMid * cs.cMid * hslMidInv * hslMidInv / cs.c0
		k2 := 1 - k1/(cs.cMax-cs.cMid)
		t := (c - k0) / (k1 + k2*(c-k0))
		s = hslMid + 0.2*t
	}
	return h, s, l
}

func okhsvToSrgb(h, s, v float64) (r, g, b float64) {
	if v <= 0 {
		return 0, 0, 0
	}

	hr := h * math.Pi / 180
	a := math.Cos(hr)
	bb := math.Sin(hr)

	cusp := findCusp(a, bb)
	stMax := toST(cusp)
	const s0 = 0.5
	k := 1 - s0/stMax.S

	lv := 1 - s*s0/(s0+stMax.T-stMax.T*k*s)
	cv := s * stMax.T * s0 / (s0 + stMax.T - stMax.T*k*s)

	okL := v * lv
	c := v * cv

	// Compensate for the toe and the curved top of the gamut triangle.
	lvt := toeInv(lv)
	cvt := cv * lvt / lv

	lNew := toeInv(okL)
	c = c * lNew / okL
	okL = lNew

	sr, sg, sb := oklabToLin(lvt, a*cvt, bb*cvt)
	scaleL := math.Cbrt(1 / math.Max(math.Max(sr, sg), math.Max(sb, 0)))

	okL *= scaleL
	c *= scaleL

	lr, lg, lb := oklabToLin(okL, c*a, c*bb)
	return delinearize(lr), delinearize(lg), delinearize(lb)
}

func srgbToOkhsv(r, g, b float64) (h, s, v float64) {
	okL, okA, okB := linToOklab(linearize(r), linearize(g), linearize(b))
	c := math.Sqrt(okA*okA + okB*okB)
	if c == 0 || okL <= 0 {
		return 0, 0, toe(okL)
	}

	a := okA / c
	bb := okB / c
	h = 180 + 180*math.Atan2(-okB, -okA)/math.Pi

	cusp := findCusp(a, bb)
	stMax := toST(cusp)
	const s0 = 0.5
	k := 1 - s0/stMax.S

	t := stMax.T / (c + okL*stMax.T)
	lv := t * okL
	cv := t * c

	lvt := toeInv(lv)
	cvt := cv * lvt / lv

	sr, sg, sb := oklabToLin(lvt, a*cvt, bb*cvt)
	scaleL := math.Cbrt(1 / math.Max(math.Max(sr, sg), math.Max(sb, 0)))

	okL /= scaleL
	c /= scaleL

	c = c * toe(okL) / okL
	okL = toe(okL)

	v = okL / lv
	s = (s0 + stMax.T) * cv / (stMax.T*s0 + stMax.T*k*cv)
	return h, s, v
}

func (Okhsl) FromSrgb(sv Vec) Vec {
	h, s, l := srgbToOkhsl(float64(sv[0]), float64(sv[1]), float64(sv[2]))
	return Vec{float32(h), float32(s), float32(l)}
}

func (Okhsl) ToSrgb(v Vec) Vec {
	r, g, b := okhslToSrgb(float64(v[0]), float64(v[1]), float64(v[2]))
	return Vec{float32(r), float32(g), float32(b)}
}

func (o Okhsl) ToLab(v Vec) Vec {
	return Srgb{}.ToLab(o.ToSrgb(v))
}

func (Okhsl) Clamp(v Vec) Vec {
	return Vec{normHue(v[0]), clampf(v[1], 0, 1), clampf(v[2], 0, 1)}
}

func (Okhsv) FromSrgb(sv Vec) Vec {
	h, s, v := srgbToOkhsv(float64(sv[0]), float64(sv[1]), float64(sv[2]))
	return Vec{float32(h), float32(s), float32(v)}
}

func (Okhsv) ToSrgb(v Vec) Vec {
	r, g, b := okhsvToSrgb(float64(v[0]), float64(v[1]), float64(v[2]))
	return Vec{float32(r), float32(g), float32(b)}
}

func (o Okhsv) ToLab(v Vec) Vec {
	return Srgb{}.ToLab(o.ToSrgb(v))
}

func (Okhsv) Clamp(v Vec) Vec {
	return Vec{normHue(v[0]), clampf(v[1], 0, 1), clampf(v[2], 0, 1)}
}
