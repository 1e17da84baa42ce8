package main

import (
	// standard library
	"context"
	"flag"
	"fmt"
	"image"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	// third-party
	"github.com/joho/godotenv"

	// internal
	"github.com/inkplot/halftone/internal/bw"
	"github.com/inkplot/halftone/internal/config"
	"github.com/inkplot/halftone/internal/dither"
	"github.com/inkplot/halftone/internal/imaging"
	"github.com/inkplot/halftone/internal/logging"
	"github.com/inkplot/halftone/internal/palette"
	"github.com/inkplot/halftone/internal/server"
	"github.com/inkplot/halftone/internal/version"
)

const usageText = `halftone %s - palette quantization and dithering for raster images

Usage:
  halftone dither [flags]    quantize an image against a palette
  halftone bw [flags]        convert an image to grayscale
  halftone serve [flags]     run the HTTP render service
  halftone palettes          list the named palette presets
  halftone version           print build information

Run "halftone <command> -h" for command flags.
`

func main() {
	// Not an error if missing; the environment may be set another way.
	godotenv.Load()
	// Reinstall the logger so LOG_LEVEL and LOG_FORMAT from .env apply.
	logging.Setup()

	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, usageText, version.String())
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "dither":
		err = runDither(os.Args[2:])
	case "bw":
		err = runBW(os.Args[2:])
	case "serve":
		err = runServe(os.Args[2:])
	case "palettes":
		err = runPalettes()
	case "version":
		fmt.Printf("halftone %s (commit %s, built %s)\n", version.String(), version.GitCommit, version.BuildTime)
	case "help", "-h", "--help":
		fmt.Printf(usageText, version.String())
	default:
		fmt.Fprintf(os.Stderr, "halftone: unknown command %q\n\n", os.Args[1])
		fmt.Fprintf(os.Stderr, usageText, version.String())
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "halftone:", err)
		os.Exit(1)
	}
}

// stringList is a repeatable string flag.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func runDither(args []string) error {
	fs := flag.NewFlagSet("dither", flag.ExitOnError)
	in := fs.String("in", "", "input image path (default stdin)")
	out := fs.String("out", "", "output image path (default stdout)")
	format := fs.String("format", "", "output format (default from -out extension, else png)")
	space := fs.String("space", "srgb", "working color space: "+strings.Join(dither.Spaces(), ", "))
	diff := fs.String("difference", "euclid", "difference metric, optionally with -clamp suffix: "+strings.Join(dither.Metrics(), ", "))
	algorithm := fs.String("algorithm", "floyd-steinberg", "dithering algorithm: "+strings.Join(dither.Algorithms(), ", "))
	var palettes stringList
	fs.Var(&palettes, "palette", "palette color (hex, r,g,b, preset name, or auto:N); repeatable")
	fs.Parse(args)

	var cfg dither.Config
	var err error
	if cfg.Space, err = dither.ParseSpace(*space); err != nil {
		return err
	}
	if cfg.Metric, cfg.Clamp, err = dither.ParseMetric(*diff); err != nil {
		return err
	}
	if cfg.Algorithm, err = dither.ParseAlgorithm(*algorithm); err != nil {
		return err
	}
	if len(palettes) == 0 {
		palettes = stringList{"1bit"}
	}

	return transform(*in, *out, *format, func(img *image.RGBA) error {
		if cfg.Palette, err = palette.Resolve(palettes, img); err != nil {
			return err
		}
		return dither.Run(img, cfg)
	})
}

func runBW(args []string) error {
	fs := flag.NewFlagSet("bw", flag.ExitOnError)
	in := fs.String("in", "", "input image path (default stdin)")
	out := fs.String("out", "", "output image path (default stdout)")
	format := fs.String("format", "", "output format (default from -out extension, else png)")
	method := fs.String("method", "lin-srgb-average", "grayscale method: "+strings.Join(bw.Methods(), ", "))
	fs.Parse(args)

	m, err := bw.ParseMethod(*method)
	if err != nil {
		return err
	}
	return transform(*in, *out, *format, func(img *image.RGBA) error {
		return bw.Apply(img, m)
	})
}

// transform runs the decode / process / encode pipeline shared by the dither
// and bw commands.
func transform(inPath, outPath, format string, process func(*image.RGBA) error) error {
	var r io.Reader = os.Stdin
	if inPath != "" {
		f, err := os.Open(inPath)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	decoded, srcFormat, err := imaging.Decode(r)
	if err != nil {
		return err
	}
	logging.DebugWithComponent(logging.ComponentCodec, "decoded input",
		"format", srcFormat,
		"width", decoded.Bounds().Dx(),
		"height", decoded.Bounds().Dy(),
	)

	img := imaging.ToRGBA(decoded)
	if err := process(img); err != nil {
		return err
	}

	if format == "" {
		format = imaging.FormatForPath(outPath)
	}

	var w io.Writer = os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return imaging.Encode(w, img, format)
}

func runPalettes() error {
	presets, err := palette.Presets()
	if err != nil {
		return err
	}
	for _, p := range presets {
		fmt.Printf("%-10s %2d colors  %s\n", p.Name, len(p.Colors), p.Description)
	}
	return nil
}

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	addr := fs.String("addr", "", "listen address (default :"+config.Get("PORT", "8000")+")")
	fs.Parse(args)

	listenAddr := *addr
	if listenAddr == "" {
		listenAddr = ":" + config.Get("PORT", "8000")
	}

	router := server.NewRouter()
	srv := &http.Server{
		Addr:    listenAddr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.InfoWithComponent(logging.ComponentStartup, "listening", "address", listenAddr, "version", version.String())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logging.InfoWithComponent(logging.ComponentServer, "shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.GetDuration("SHUTDOWN_TIMEOUT", 30*time.Second))
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logging.InfoWithComponent(logging.ComponentServer, "stopped")
	return nil
}
