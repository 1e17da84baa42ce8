package dither

import (
	"testing"

	"github.com/inkplot/halftone/internal/colorspace"
)

func TestNearestPicksClosest(t *testing.T) {
	pal := NewPalette([]colorspace.Vec{
		{0, 0, 0},
		{1, 1, 1},
		{1, 0, 0},
	})
	tests := []struct {
		name   string
		target colorspace.Vec
		want   colorspace.Vec
	}{
		{"exact match", colorspace.Vec{1, 0, 0}, colorspace.Vec{1, 0, 0}},
		{"near black", colorspace.Vec{0.1, 0.1, 0.1}, colorspace.Vec{0, 0, 0}},
		{"near white", colorspace.Vec{0.9, 0.95, 0.9}, colorspace.Vec{1, 1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Nearest[Euclid](pal, tt.target); got != tt.want {
				t.Errorf("Nearest(%v) = %v, want %v", tt.target, got, tt.want)
			}
		})
	}
}

func TestNearestTieKeepsFirst(t *testing.T) {
	// The target is equidistant from both entries; the earlier one wins.
	pal := NewPalette([]colorspace.Vec{
		{0, 0, 0},
		{1, 0, 0},
	})
	got := Nearest[Euclid](pal, colorspace.Vec{0.5, 0, 0})
	if got != (colorspace.Vec{0, 0, 0}) {
		t.Errorf("tie broke to %v, want first entry", got)
	}

	// Same tie with the entries reversed picks the other color.
	rev := NewPalette([]colorspace.Vec{
		{1, 0, 0},
		{0, 0, 0},
	})
	got = Nearest[Euclid](rev, colorspace.Vec{0.5, 0, 0})
	if got != (colorspace.Vec{1, 0, 0}) {
		t.Errorf("tie broke to %v, want first entry", got)
	}
}

func TestNearestEmptyPalettePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on empty palette")
		}
	}()
	Nearest[Euclid](NewPalette(nil), colorspace.Vec{})
}

func TestNearestSingleEntry(t *testing.T) {
	pal := NewPalette([]colorspace.Vec{{0.3, 0.6, 0.9}})
	got := Nearest[Manhattan](pal, colorspace.Vec{0, 0, 0})
	if got != (colorspace.Vec{0.3, 0.6, 0.9}) {
		t.Errorf("Nearest = %v, want the only entry", got)
	}
}
