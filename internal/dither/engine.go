package dither

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/inkplot/halftone/internal/colorspace"
)

// Space selects the working color space for a run.
type Space int

const (
	SpaceSrgb Space = iota
	SpaceLinSrgb
	SpaceCIELab
	SpaceCIELch
	SpaceCIELuv
	SpaceOklab
	SpaceOkhsl
	SpaceOkhsv
)

var spaceNames = map[Space]string{
	SpaceSrgb:    "srgb",
	SpaceLinSrgb: "lin-srgb",
	SpaceCIELab:  "cielab",
	SpaceCIELch:  "cielch",
	SpaceCIELuv:  "cieluv",
	SpaceOklab:   "oklab",
	SpaceOkhsl:   "okhsl",
	SpaceOkhsv:   "okhsv",
}

func (s Space) String() string {
	if name, ok := spaceNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Space(%d)", int(s))
}

// ParseSpace resolves a color space name as accepted on the CLI and the API.
func ParseSpace(name string) (Space, error) {
	for s, n := range spaceNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown color space %q", name)
}

// Metric selects the color difference formula for a run.
type Metric int

const (
	MetricEuclid Metric = iota
	MetricManhattan
	MetricHyAb
	MetricCIEDE2000
)

var metricNames = map[Metric]string{
	MetricEuclid:    "euclid",
	MetricManhattan: "manhattan",
	MetricHyAb:      "hyab",
	MetricCIEDE2000: "ciede2000",
}

func (m Metric) String() string {
	if name, ok := metricNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Metric(%d)", int(m))
}

// ParseMetric resolves a difference name, with an optional "-clamp" suffix
// selecting the gamut-clamped variant.
func ParseMetric(name string) (Metric, bool, error) {
	clamp := strings.HasSuffix(name, "-clamp")
	base := strings.TrimSuffix(name, "-clamp")
	for m, n := range metricNames {
		if n == base {
			return m, clamp, nil
		}
	}
	return 0, false, fmt.Errorf("unknown difference %q", name)
}

// Algorithm selects the quantization strategy for a run.
type Algorithm int

const (
	AlgoThreshold Algorithm = iota
	AlgoRandom
	AlgoFloydSteinberg
	AlgoStucki
)

var algorithmNames = map[Algorithm]string{
	AlgoThreshold:      "threshold",
	AlgoRandom:         "random",
	AlgoFloydSteinberg: "floyd-steinberg",
	AlgoStucki:         "stucki",
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm resolves an algorithm name.
func ParseAlgorithm(name string) (Algorithm, error) {
	for a, n := range algorithmNames {
		if n == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown algorithm %q", name)
}

// Config is one full engine selection. The composer binds it to concrete
// generic instantiations exactly once per run.
type Config struct {
	Space     Space
	Metric    Metric
	Clamp     bool
	Algorithm Algorithm

	// Palette is the ordered set of output colors as 8-bit sRGB. It must
	// not be empty.
	Palette []color.NRGBA
}

// Run quantizes img in place according to cfg. The image is mutated RGB-only;
// alpha passes through unchanged. Configuration errors are reported before
// any pixel is touched.
func Run(img *image.RGBA, cfg Config) error {
	if len(cfg.Palette) == 0 {
		return fmt.Errorf("palette must contain at least one color")
	}
	if _, ok := algorithmNames[cfg.Algorithm]; !ok {
		return fmt.Errorf("unknown algorithm %d", int(cfg.Algorithm))
	}

	switch cfg.Space {
	case SpaceSrgb:
		return bindMetric[colorspace.Srgb](img, cfg)
	case SpaceLinSrgb:
		return bindMetric[colorspace.LinSrgb](img, cfg)
	case SpaceCIELab:
		return bindMetric[colorspace.CIELab](img, cfg)
	case SpaceCIELch:
		return bindMetric[colorspace.CIELch](img, cfg)
	case SpaceCIELuv:
		return bindMetric[colorspace.CIELuv](img, cfg)
	case SpaceOklab:
		return bindMetric[colorspace.Oklab](img, cfg)
	case SpaceOkhsl:
		return bindMetric[colorspace.Okhsl](img, cfg)
	case SpaceOkhsv:
		return bindMetric[colorspace.Okhsv](img, cfg)
	default:
		return fmt.Errorf("unknown color space %d", int(cfg.Space))
	}
}

func bindMetric[S colorspace.Space](img *image.RGBA, cfg Config) error {
	switch cfg.Metric {
	case MetricEuclid:
		if cfg.Clamp {
			runAlgorithm[S, Clamped[S, Euclid]](img, cfg)
		} else {
			runAlgorithm[S, Euclid](img, cfg)
		}
	case MetricManhattan:
		if cfg.Clamp {
			runAlgorithm[S, Clamped[S, Manhattan]](img, cfg)
		} else {
			runAlgorithm[S, Manhattan](img, cfg)
		}
	case MetricHyAb:
		if cfg.Clamp {
			runAlgorithm[S, Clamped[S, HyAb[S]]](img, cfg)
		} else {
			runAlgorithm[S, HyAb[S]](img, cfg)
		}
	case MetricCIEDE2000:
		if cfg.Clamp {
			runAlgorithm[S, Clamped[S, CIEDE2000[S]]](img, cfg)
		} else {
			runAlgorithm[S, CIEDE2000[S]](img, cfg)
		}
	default:
		return fmt.Errorf("unknown difference %d", int(cfg.Metric))
	}
	return nil
}

func runAlgorithm[S colorspace.Space, D Difference](img *image.RGBA, cfg Config) {
	var space S
	colors := make([]colorspace.Vec, len(cfg.Palette))
	for i, c := range cfg.Palette {
		colors[i] = space.FromSrgb(colorspace.FromDevice(c.R, c.G, c.B))
	}
	pal := NewPalette(colors)

	switch cfg.Algorithm {
	case AlgoThreshold:
		Threshold[S, D](img, pal)
	case AlgoRandom:
		Random[S, D](img, pal)
	case AlgoFloydSteinberg:
		FloydSteinberg[S, D](img, pal)
	case AlgoStucki:
		Stucki[S, D](img, pal)
	}
}

// Spaces lists the accepted color space names, for usage messages.
func Spaces() []string { return names(spaceNames) }

// Metrics lists the accepted difference names, without the -clamp variants.
func Metrics() []string { return names(metricNames) }

// Algorithms lists the accepted algorithm names.
func Algorithms() []string { return names(algorithmNames) }

func names[K ~int](m map[K]string) []string {
	out := make([]string, 0, len(m))
	for k := K(0); int(k) < len(m); k++ {
		out = append(out, m[k])
	}
	return out
}
