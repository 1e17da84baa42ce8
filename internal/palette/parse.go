// Package palette turns user-supplied color specifications into the ordered
// 8-bit sRGB palettes the dithering engine consumes. It accepts hexadecimal
// triplets and numeric triplets, named presets, and automatic extraction from
// the source image.
package palette

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"
)

// ParseColor parses a single palette color. Accepted forms are six
// hexadecimal digits with an optional leading '#' ("8bac0f", "#8bac0f") and
// numeric triplets ("139,172,15"). Both round to the same 8-bit sRGB value.
func ParseColor(s string) (color.NRGBA, error) {
	if strings.Contains(s, ",") {
		return parseTriplet(s)
	}
	return parseHex(s)
}

func parseHex(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return color.NRGBA{}, fmt.Errorf("color %q must consist of six hexadecimal digits", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("color %q must consist of six hexadecimal digits", s)
	}
	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}

func parseTriplet(s string) (color.NRGBA, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return color.NRGBA{}, fmt.Errorf("color %q must have exactly three components", s)
	}
	var ch [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("color %q component %q is not an 8-bit integer", s, p)
		}
		ch[i] = uint8(v)
	}
	return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: 0xff}, nil
}

// Resolve expands a list of palette specifications into colors, in order.
// Each item may be a color literal, a preset name, or "auto:N" to extract N
// colors from img with median cut. The result preserves item order, which is
// the tie-break order of the nearest-color search.
func Resolve(specs []string, img image.Image) ([]color.NRGBA, error) {
	var out []color.NRGBA
	for _, spec := range specs {
		switch {
		case strings.HasPrefix(spec, "auto:"):
			n, err := strconv.Atoi(strings.TrimPrefix(spec, "auto:"))
			if err != nil {
				return nil, fmt.Errorf("palette %q: color count is not an integer", spec)
			}
			colors, err := Extract(img, n)
			if err != nil {
				return nil, fmt.Errorf("palette %q: %w", spec, err)
			}
			out = append(out, colors...)
		default:
			if preset, ok := Lookup(spec); ok {
				out = append(out, preset...)
				continue
			}
			c, err := ParseColor(spec)
			if err != nil {
				return nil, err
			}
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("palette must contain at least one color")
	}
	return out, nil
}
