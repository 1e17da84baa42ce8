package server

import (
	"bytes"
	"fmt"
	"image"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/inkplot/halftone/internal/bw"
	"github.com/inkplot/halftone/internal/dither"
	"github.com/inkplot/halftone/internal/imaging"
	"github.com/inkplot/halftone/internal/logging"
	"github.com/inkplot/halftone/internal/palette"
	"github.com/inkplot/halftone/internal/version"
)

// renderOptions are the form fields of POST /api/render, next to the "image"
// file part. Validation failures are reported before any pixel is processed.
type renderOptions struct {
	Op         string   `form:"op" validate:"omitempty,oneof=dither bw"`
	Method     string   `form:"method"`
	Space      string   `form:"space"`
	Difference string   `form:"difference"`
	Algorithm  string   `form:"algorithm"`
	Palette    []string `form:"palette"`
	Format     string   `form:"format" validate:"omitempty,oneof=png jpeg gif bmp tiff webp"`
	Width      int      `form:"width" validate:"omitempty,min=1,max=8192"`
	Height     int      `form:"height" validate:"omitempty,min=1,max=8192"`
	Fit        string   `form:"fit" validate:"omitempty,oneof=fit fill"`
}

var validate = validator.New()

func healthzHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func versionHandler(c *gin.Context) {
	c.JSON(http.StatusOK, version.Get())
}

// palettesHandler lists the named palette presets.
func palettesHandler(c *gin.Context) {
	presets, err := palette.Presets()
	if err != nil {
		logging.WarnWithComponent(logging.ComponentPalette, "user presets unavailable", "error", err)
	}
	c.JSON(http.StatusOK, gin.H{"palettes": presets})
}

// capabilitiesHandler lists the accepted engine configuration values, so UIs
// can populate their selectors without hardcoding them.
func capabilitiesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"spaces":      dither.Spaces(),
		"differences": dither.Metrics(),
		"algorithms":  dither.Algorithms(),
		"bw_methods":  bw.Methods(),
		"formats":     imaging.Formats(),
	})
}

// renderHandler decodes the uploaded image, applies the requested transform
// and streams the encoded result back.
func renderHandler(c *gin.Context) {
	var opts renderOptions
	if err := c.ShouldBind(&opts); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validate.Struct(opts); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	file, _, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing image file part"})
		return
	}
	defer file.Close()

	decoded, srcFormat, err := imaging.Decode(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	img, err := processImage(decoded, opts)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	format := opts.Format
	if format == "" {
		format = "png"
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format); err != nil {
		logging.ErrorWithComponent(logging.ComponentServer, "encode failed", "format", format, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode output"})
		return
	}

	logging.InfoWithComponent(logging.ComponentServer, "rendered image",
		"request_id", c.GetString("request_id"),
		"op", opts.Op,
		"source_format", srcFormat,
		"format", format,
		"bytes", buf.Len(),
	)
	c.Data(http.StatusOK, imaging.ContentType(format), buf.Bytes())
}

// processImage runs the requested transform over a decoded image.
func processImage(decoded image.Image, opts renderOptions) (image.Image, error) {
	if opts.Width > 0 && opts.Height > 0 {
		if opts.Fit == "fill" {
			decoded = imaging.ResizeToFill(decoded, opts.Width, opts.Height)
		} else {
			decoded = imaging.ResizeToFit(decoded, opts.Width, opts.Height)
		}
	} else if opts.Width > 0 || opts.Height > 0 {
		return nil, fmt.Errorf("width and height must be given together")
	}

	img := imaging.ToRGBA(decoded)

	switch opts.Op {
	case "bw":
		method, err := bw.ParseMethod(opts.Method)
		if err != nil {
			return nil, err
		}
		if err := bw.Apply(img, method); err != nil {
			return nil, err
		}
	default: // dither
		cfg, err := ditherConfig(opts, img)
		if err != nil {
			return nil, err
		}
		if err := dither.Run(img, cfg); err != nil {
			return nil, err
		}
	}
	return img, nil
}

func ditherConfig(opts renderOptions, img image.Image) (dither.Config, error) {
	var cfg dither.Config
	var err error

	if cfg.Space, err = dither.ParseSpace(defaultStr(opts.Space, "srgb")); err != nil {
		return cfg, err
	}
	if cfg.Metric, cfg.Clamp, err = dither.ParseMetric(defaultStr(opts.Difference, "euclid")); err != nil {
		return cfg, err
	}
	if cfg.Algorithm, err = dither.ParseAlgorithm(defaultStr(opts.Algorithm, "floyd-steinberg")); err != nil {
		return cfg, err
	}
	specs := opts.Palette
	if len(specs) == 0 {
		specs = []string{"1bit"}
	}
	if cfg.Palette, err = palette.Resolve(specs, img); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func defaultStr(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
