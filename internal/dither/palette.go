package dither

import "github.com/inkplot/halftone/internal/colorspace"

// Palette is an immutable ordered collection of working colors, constructed
// once per run and shared by every pixel query.
type Palette struct {
	colors []colorspace.Vec
}

// NewPalette wraps the given colors. The slice is not copied; callers must
// not mutate it afterwards.
func NewPalette(colors []colorspace.Vec) Palette {
	return Palette{colors: colors}
}

// Len returns the number of palette entries.
func (p Palette) Len() int { return len(p.colors) }

// Nearest returns the palette entry with the smallest distance to target
// under D. On ties the earliest-inserted entry wins: the scan keeps the best
// seen so far and only a strictly smaller distance replaces it.
//
// Nearest panics on an empty palette. That is a configuration defect the
// composer rejects before any pixel is processed, so hitting it here means a
// programming error, not a recoverable condition.
func Nearest[D Difference](p Palette, target colorspace.Vec) colorspace.Vec {
	if len(p.colors) == 0 {
		panic("dither: nearest-color query on empty palette")
	}
	var d D
	best := p.colors[0]
	bestDist := d.Diff(best, target)
	for _, c := range p.colors[1:] {
		if dist := d.Diff(c, target); dist < bestDist {
			best = c
			bestDist = dist
		}
	}
	return best
}
