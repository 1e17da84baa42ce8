package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestGet(t *testing.T) {
	t.Setenv("HALFTONE_TEST_VALUE", "direct")
	if got := Get("HALFTONE_TEST_VALUE", "fallback"); got != "direct" {
		t.Errorf("Get = %q, want direct", got)
	}
	if got := Get("HALFTONE_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("Get = %q, want fallback", got)
	}
}

func TestGetFileIndirection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secret")
	if err := os.WriteFile(path, []byte("  from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HALFTONE_TEST_SECRET_FILE", path)
	if got := Get("HALFTONE_TEST_SECRET", "fallback"); got != "from-file" {
		t.Errorf("Get = %q, want trimmed file contents", got)
	}

	// A direct value wins over the _FILE variant.
	t.Setenv("HALFTONE_TEST_SECRET", "direct")
	if got := Get("HALFTONE_TEST_SECRET", "fallback"); got != "direct" {
		t.Errorf("Get = %q, want direct", got)
	}
}

func TestGetInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		def   int
		want  int
	}{
		{"valid", "42", 7, 42},
		{"negative", "-3", 7, -3},
		{"invalid", "forty", 7, 7},
		{"empty", "", 7, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HALFTONE_TEST_INT", tt.value)
			if got := GetInt("HALFTONE_TEST_INT", tt.def); got != tt.want {
				t.Errorf("GetInt = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGetBool(t *testing.T) {
	tests := []struct {
		value string
		def   bool
		want  bool
	}{
		{"1", false, true},
		{"true", false, true},
		{"YES", false, true},
		{"0", true, false},
		{"no", true, false},
		{"maybe", true, true},
		{"", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("HALFTONE_TEST_BOOL", tt.value)
			if got := GetBool("HALFTONE_TEST_BOOL", tt.def); got != tt.want {
				t.Errorf("GetBool(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestGetDuration(t *testing.T) {
	t.Setenv("HALFTONE_TEST_DURATION", "90s")
	if got := GetDuration("HALFTONE_TEST_DURATION", time.Minute); got != 90*time.Second {
		t.Errorf("GetDuration = %v, want 90s", got)
	}
	t.Setenv("HALFTONE_TEST_DURATION", "soon")
	if got := GetDuration("HALFTONE_TEST_DURATION", time.Minute); got != time.Minute {
		t.Errorf("GetDuration = %v, want fallback", got)
	}
}
