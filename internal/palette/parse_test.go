package palette

import (
	"image"
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"bare hex", "8bac0f", color.NRGBA{R: 0x8b, G: 0xac, B: 0x0f, A: 0xff}, false},
		{"hash hex", "#8bac0f", color.NRGBA{R: 0x8b, G: 0xac, B: 0x0f, A: 0xff}, false},
		{"uppercase hex", "FF00AA", color.NRGBA{R: 0xff, G: 0x00, B: 0xaa, A: 0xff}, false},
		{"triplet", "139,172,15", color.NRGBA{R: 139, G: 172, B: 15, A: 0xff}, false},
		{"triplet with spaces", "139, 172, 15", color.NRGBA{R: 139, G: 172, B: 15, A: 0xff}, false},
		{"short hex", "fff", color.NRGBA{}, true},
		{"long hex", "8bac0f00", color.NRGBA{}, true},
		{"bad digit", "8bac0g", color.NRGBA{}, true},
		{"two components", "10,20", color.NRGBA{}, true},
		{"four components", "10,20,30,40", color.NRGBA{}, true},
		{"component overflow", "10,20,300", color.NRGBA{}, true},
		{"negative component", "10,-1,20", color.NRGBA{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseColor(%q): expected error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHexAndTripletAgree(t *testing.T) {
	hex, err := ParseColor("#8bac0f")
	if err != nil {
		t.Fatal(err)
	}
	triplet, err := ParseColor("139,172,15")
	if err != nil {
		t.Fatal(err)
	}
	if hex != triplet {
		t.Errorf("hex %v and triplet %v disagree", hex, triplet)
	}
}

func testSourceImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for i := 0; i < len(img.Pix); i += 4 {
		switch (i / 4) % 4 {
		case 0:
			img.Pix[i], img.Pix[i+1], img.Pix[i+2] = 255, 0, 0
		case 1:
			img.Pix[i], img.Pix[i+1], img.Pix[i+2] = 0, 255, 0
		case 2:
			img.Pix[i], img.Pix[i+1], img.Pix[i+2] = 0, 0, 255
		case 3:
			img.Pix[i], img.Pix[i+1], img.Pix[i+2] = 255, 255, 255
		}
		img.Pix[i+3] = 255
	}
	return img
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		specs     []string
		wantCount int
		wantErr   bool
	}{
		{"single literal", []string{"ff0000"}, 1, false},
		{"mixed literals", []string{"#ff0000", "0,255,0"}, 2, false},
		{"preset", []string{"gameboy"}, 4, false},
		{"preset plus literal", []string{"1bit", "ff0000"}, 3, false},
		{"auto", []string{"auto:4"}, 4, false},
		{"empty", nil, 0, true},
		{"bad literal", []string{"zzz"}, 0, true},
		{"bad auto count", []string{"auto:x"}, 0, true},
		{"auto zero", []string{"auto:0"}, 0, true},
	}
	img := testSourceImage()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.specs, img)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %v", tt.specs)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != tt.wantCount {
				t.Errorf("Resolve(%v) returned %d colors, want %d", tt.specs, len(got), tt.wantCount)
			}
		})
	}
}

func TestResolveKeepsOrder(t *testing.T) {
	// Order decides nearest-color tie-breaks downstream, so it must survive
	// resolution untouched.
	got, err := Resolve([]string{"000000", "ffffff", "ff0000"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []color.NRGBA{
		{A: 0xff},
		{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		{R: 0xff, A: 0xff},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("color %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestExtract(t *testing.T) {
	img := testSourceImage()

	colors, err := Extract(img, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(colors) == 0 || len(colors) > 4 {
		t.Errorf("Extract returned %d colors, want 1..4", len(colors))
	}

	if _, err := Extract(img, 0); err == nil {
		t.Error("expected error for zero colors")
	}
	if _, err := Extract(img, 257); err == nil {
		t.Error("expected error for more than 256 colors")
	}
}
