// Package dither implements the palette quantization engine: color difference
// metrics, the palette nearest-color search, and the four quantization
// algorithms.
//
// The generic type parameters exist for performance. The engine must not
// re-select the configured space or difference for every pixel; instead each
// algorithm is instantiated once per (space, difference) combination and the
// hot loop stays monomorphic.
package dither

import (
	"math"

	"github.com/inkplot/halftone/internal/colorspace"
)

// Difference is a scalar distance between two working colors in the same
// space. Implementations are empty structs instantiated through generics.
type Difference interface {
	Diff(a, b colorspace.Vec) float32
}

// Euclid is the Euclidean distance over the native components of the space.
type Euclid struct{}

func (Euclid) Diff(a, b colorspace.Vec) float32 {
	d0 := float64(a[0] - b[0])
	d1 := float64(a[1] - b[1])
	d2 := float64(a[2] - b[2])
	return float32(math.Sqrt(d0*d0 + d1*d1 + d2*d2))
}

// Manhattan is the sum of absolute component differences in the native space.
type Manhattan struct{}

func (Manhattan) Diff(a, b colorspace.Vec) float32 {
	return abs(a[0]-b[0]) + abs(a[1]-b[1]) + abs(a[2]-b[2])
}

// HyAb is the hybrid Lab distance: absolute lightness difference plus
// Euclidean distance over the a/b chroma plane.
type HyAb[S colorspace.Space] struct{}

func (HyAb[S]) Diff(a, b colorspace.Vec) float32 {
	var space S
	la := space.ToLab(a)
	lb := space.ToLab(b)
	da := float64(la[1] - lb[1])
	db := float64(la[2] - lb[2])
	return abs(la[0]-lb[0]) + float32(math.Sqrt(da*da+db*db))
}

// CIEDE2000 is the CIE 2000 perceptual color difference, computed over Lab.
type CIEDE2000[S colorspace.Space] struct{}

func (CIEDE2000[S]) Diff(a, b colorspace.Vec) float32 {
	var space S
	return deltaE2000(space.ToLab(a), space.ToLab(b))
}

// Clamped wraps a difference and clamps both operands to the valid range of
// the space first. Diffusion and random perturbation push working colors out
// of gamut, where CIEDE2000 in particular is numerically unstable; clamping
// is a per-run configuration choice, not automatic.
type Clamped[S colorspace.Space, D Difference] struct{}

func (Clamped[S, D]) Diff(a, b colorspace.Vec) float32 {
	var space S
	var d D
	return d.Diff(space.Clamp(a), space.Clamp(b))
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// deltaE2000 implements the CIEDE2000 formula with the weighting factors
// kL = kC = kH = 1. Sharma et al., "The CIEDE2000 Color-Difference Formula".
func deltaE2000(lab1, lab2 colorspace.Vec) float32 {
	l1, a1, b1 := float64(lab1[0]), float64(lab1[1]), float64(lab1[2])
	l2, a2, b2 := float64(lab2[0]), float64(lab2[1]), float64(lab2[2])

	c1 := math.Hypot(a1, b1)
	c2 := math.Hypot(a2, b2)
	cBar := (c1 + c2) / 2

	g := 0.5 * (1 - math.Sqrt(pow7(cBar)/(pow7(cBar)+pow7(25))))
	a1p := (1 + g) * a1
	a2p := (1 + g) * a2

	c1p := math.Hypot(a1p, b1)
	c2p := math.Hypot(a2p, b2)

	h1p := hueAngle(b1, a1p)
	h2p := hueAngle(b2, a2p)

	dLp := l2 - l1
	dCp := c2p - c1p

	var dhp float64
	switch {
	case c1p*c2p == 0:
		dhp = 0
	case math.Abs(h2p-h1p) <= 180:
		dhp = h2p - h1p
	case h2p-h1p > 180:
		dhp = h2p - h1p - 360
	default:
		dhp = h2p - h1p + 360
	}
	dHp := 2 * math.Sqrt(c1p*c2p) * math.Sin(rad(dhp/2))

	lBp := (l1 + l2) / 2
	cBp := (c1p + c2p) / 2

	var hBp float64
	switch {
	case c1p*c2p == 0:
		hBp = h1p + h2p
	case math.Abs(h1p-h2p) <= 180:
		hBp = (h1p + h2p) / 2
	case h1p+h2p < 360:
		hBp = (h1p + h2p + 360) / 2
	default:
		hBp = (h1p + h2p - 360) / 2
	}

	t := 1 - 0.17*math.Cos(rad(hBp-30)) + 0.24*math.Cos(rad(2*hBp)) +
		0.32*math.Cos(rad(3*hBp+6)) - 0.20*math.Cos(rad(4*hBp-63))

	dTheta := 30 * math.Exp(-((hBp-275)/25)*((hBp-275)/25))
	rc := 2 * math.Sqrt(pow7(cBp)/(pow7(cBp)+pow7(25)))

	sl := 1 + 0.015*(lBp-50)*(lBp-50)/math.Sqrt(20+(lBp-50)*(lBp-50))
	sc := 1 + 0.045*cBp
	sh := 1 + 0.015*cBp*t
	rt := -math.Sin(rad(2*dTheta)) * rc

	dL := dLp / sl
	dC := dCp / sc
	dH := dHp / sh
	return float32(math.Sqrt(dL*dL + dC*dC + dH*dH + rt*dC*dH))
}

func hueAngle(b, ap float64) float64 {
	if b == 0 && ap == 0 {
		return 0
	}
	h := math.Atan2(b, ap) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return h
}

func rad(deg float64) float64 { return deg * math.Pi / 180 }

func pow7(x float64) float64 {
	x2 := x * x
	return x2 * x2 * x2 * x
}
