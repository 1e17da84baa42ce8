package colorspace

import (
	"math"
	"testing"
)

// allSpaces drives the property tests that hold for every space.
var allSpaces = []struct {
	name  string
	space Space
}{
	{"srgb", Srgb{}},
	{"lin-srgb", LinSrgb{}},
	{"cielab", CIELab{}},
	{"cielch", CIELch{}},
	{"cieluv", CIELuv{}},
	{"oklab", Oklab{}},
	{"okhsl", Okhsl{}},
	{"okhsv", Okhsv{}},
}

// sampleDevice is a spread of device colors covering the gray axis, the
// primaries and a few mixed tones.
var sampleDevice = [][3]uint8{
	{0, 0, 0},
	{255, 255, 255},
	{128, 128, 128},
	{255, 0, 0},
	{0, 255, 0},
	{0, 0, 255},
	{255, 255, 0},
	{0, 255, 255},
	{255, 0, 255},
	{139, 172, 15},
	{48, 98, 48},
	{17, 34, 51},
	{200, 100, 50},
	{1, 1, 1},
	{254, 254, 254},
}

func TestRoundTripPreservesDevicePixels(t *testing.T) {
	for _, tc := range allSpaces {
		t.Run(tc.name, func(t *testing.T) {
			for _, px := range sampleDevice {
				s := FromDevice(px[0], px[1], px[2])
				back := tc.space.ToSrgb(tc.space.FromSrgb(s))
				r, g, b := ToDevice(back)
				if dev8(r, px[0]) > 1 || dev8(g, px[1]) > 1 || dev8(b, px[2]) > 1 {
					t.Errorf("pixel %v round-tripped to (%d,%d,%d)", px, r, g, b)
				}
			}
		})
	}
}

func TestClampIsIdempotent(t *testing.T) {
	wild := []Vec{
		{-5, 3, 900},
		{1000, -1000, 0},
		{0.5, 0.5, 0.5},
	}
	for _, tc := range allSpaces {
		t.Run(tc.name, func(t *testing.T) {
			for _, v := range wild {
				once := tc.space.Clamp(v)
				twice := tc.space.Clamp(once)
				if once != twice {
					t.Errorf("Clamp(%v) = %v, clamped again %v", v, once, twice)
				}
			}
		})
	}
}

func TestToLabAgreesAcrossSpaces(t *testing.T) {
	// Every space's ToLab must describe the same physical color, so the
	// Lab coordinates of a device pixel must agree no matter which space
	// it was routed through.
	for _, px := range sampleDevice {
		s := FromDevice(px[0], px[1], px[2])
		want := Srgb{}.ToLab(s)
		for _, tc := range allSpaces {
			got := tc.space.ToLab(tc.space.FromSrgb(s))
			for i := range got {
				if math.Abs(float64(got[i]-want[i])) > 1 {
					t.Errorf("%s: pixel %v ToLab = %v, want %v", tc.name, px, got, want)
					break
				}
			}
		}
	}
}

func TestCIELabReferenceValues(t *testing.T) {
	tests := []struct {
		name string
		in   [3]uint8
		want Vec
	}{
		{"white", [3]uint8{255, 255, 255}, Vec{100, 0, 0}},
		{"black", [3]uint8{0, 0, 0}, Vec{0, 0, 0}},
		{"red", [3]uint8{255, 0, 0}, Vec{53.24, 80.09, 67.20}},
		{"green", [3]uint8{0, 255, 0}, Vec{87.74, -86.18, 83.18}},
		{"blue", [3]uint8{0, 0, 255}, Vec{32.30, 79.19, -107.86}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CIELab{}.FromSrgb(FromDevice(tt.in[0], tt.in[1], tt.in[2]))
			for i := range got {
				if math.Abs(float64(got[i]-tt.want[i])) > 0.05 {
					t.Errorf("FromSrgb(%v) = %v, want %v", tt.in, got, tt.want)
					break
				}
			}
		})
	}
}

func TestOklabReferenceValues(t *testing.T) {
	// Non-gray values from the reference implementation notes; white must
	// land exactly on L=1 with zero chroma.
	got := Oklab{}.FromSrgb(Vec{1, 1, 1})
	if math.Abs(float64(got[0]-1)) > 1e-3 || math.Abs(float64(got[1])) > 1e-3 || math.Abs(float64(got[2])) > 1e-3 {
		t.Errorf("white = %v, want {1 0 0}", got)
	}
	red := Oklab{}.FromSrgb(Vec{1, 0, 0})
	want := Vec{0.6280, 0.2249, 0.1258}
	for i := range red {
		if math.Abs(float64(red[i]-want[i])) > 5e-3 {
			t.Errorf("red = %v, want %v", red, want)
			break
		}
	}
}

func TestOkhslGrayAxis(t *testing.T) {
	// Grays carry essentially no saturation; black maps exactly to zero.
	if v := (Okhsl{}).FromSrgb(Vec{0, 0, 0}); v != (Vec{0, 0, 0}) {
		t.Errorf("black = %v, want {0 0 0}", v)
	}
	for _, g := range []uint8{64, 128, 200, 255} {
		v := Okhsl{}.FromSrgb(FromDevice(g, g, g))
		if v[1] > 1e-4 {
			t.Errorf("gray %d: saturation = %v, want ~0", g, v[1])
		}
	}
}

func TestOkhsvExtremes(t *testing.T) {
	black := Okhsv{}.ToSrgb(Vec{123, 0.5, 0})
	if black != (Vec{0, 0, 0}) {
		t.Errorf("value 0 = %v, want black", black)
	}
	white := Okhsl{}.ToSrgb(Vec{42, 0.7, 1})
	for i := range white {
		if math.Abs(float64(white[i]-1)) > 1e-4 {
			t.Errorf("lightness 1 = %v, want white", white)
			break
		}
	}
}

func TestToDeviceSaturates(t *testing.T) {
	tests := []struct {
		name string
		in   Vec
		want [3]uint8
	}{
		{"in range", Vec{0, 0.5, 1}, [3]uint8{0, 128, 255}},
		{"below range", Vec{-0.5, -100, -0.001}, [3]uint8{0, 0, 0}},
		{"above range", Vec{1.5, 100, 1.001}, [3]uint8{255, 255, 255}},
		{"rounds", Vec{0.4999, 0.5001, 0.998}, [3]uint8{127, 128, 254}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := ToDevice(tt.in)
			if r != tt.want[0] || g != tt.want[1] || b != tt.want[2] {
				t.Errorf("ToDevice(%v) = (%d,%d,%d), want %v", tt.in, r, g, b, tt.want)
			}
		})
	}
}

func TestNormHue(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{0, 0},
		{359.5, 359.5},
		{360, 0},
		{725, 5},
		{-10, 350},
		{-360, 0},
	}
	for _, tt := range tests {
		if got := normHue(tt.in); got != tt.want {
			t.Errorf("normHue(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHslHsvRoundTrip(t *testing.T) {
	for _, px := range sampleDevice {
		s := FromDevice(px[0], px[1], px[2])
		r, g, b := ToDevice(HslToSrgb(SrgbToHsl(s)))
		if dev8(r, px[0]) > 1 || dev8(g, px[1]) > 1 || dev8(b, px[2]) > 1 {
			t.Errorf("hsl: pixel %v round-tripped to (%d,%d,%d)", px, r, g, b)
		}
		r, g, b = ToDevice(HsvToSrgb(SrgbToHsv(s)))
		if dev8(r, px[0]) > 1 || dev8(g, px[1]) > 1 || dev8(b, px[2]) > 1 {
			t.Errorf("hsv: pixel %v round-tripped to (%d,%d,%d)", px, r, g, b)
		}
	}
}

func dev8(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}
