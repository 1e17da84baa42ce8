package palette

import (
	"sort"
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name      string
		wantCount int
		wantOK    bool
	}{
		{"1bit", 2, true},
		{"gray4", 4, true},
		{"gray16", 16, true},
		{"gameboy", 4, true},
		{"cga", 4, true},
		{"ega", 16, true},
		{"spectrum", 8, true},
		{"eink7", 7, true},
		{"no-such-preset", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			colors, ok := Lookup(tt.name)
			if ok != tt.wantOK {
				t.Fatalf("Lookup(%q) ok = %v, want %v", tt.name, ok, tt.wantOK)
			}
			if len(colors) != tt.wantCount {
				t.Errorf("Lookup(%q) returned %d colors, want %d", tt.name, len(colors), tt.wantCount)
			}
		})
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	first, _ := Lookup("gameboy")
	first[0].R = 0xff
	second, _ := Lookup("gameboy")
	if second[0].R == 0xff {
		t.Fatal("Lookup exposed shared preset storage")
	}
}

func TestGameboyColors(t *testing.T) {
	colors, ok := Lookup("gameboy")
	if !ok {
		t.Fatal("gameboy preset missing")
	}
	if colors[0].R != 0x0f || colors[0].G != 0x38 || colors[0].B != 0x0f {
		t.Errorf("darkest green = %v", colors[0])
	}
	if colors[3].R != 0x9b || colors[3].G != 0xbc || colors[3].B != 0x0f {
		t.Errorf("lightest green = %v", colors[3])
	}
}

func TestPresetsSortedAndComplete(t *testing.T) {
	presets, err := Presets()
	if err != nil {
		t.Fatal(err)
	}
	if len(presets) < 8 {
		t.Fatalf("only %d presets", len(presets))
	}
	if !sort.SliceIsSorted(presets, func(i, j int) bool { return presets[i].Name < presets[j].Name }) {
		t.Error("presets not sorted by name")
	}
	for _, p := range presets {
		if p.Description == "" {
			t.Errorf("preset %q has no description", p.Name)
		}
		if len(p.Colors) == 0 {
			t.Errorf("preset %q has no colors", p.Name)
		}
	}
}
