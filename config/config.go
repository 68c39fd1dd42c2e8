// Package config holds the parameters of one tour plot run: where the two
// inputs are read from, where the image goes and how it is drawn.
//
// A run is named after its dataset. With only a name, paths follow the
// classic layout of the tool chain:
//
//	<dataDir>/<name>.tsp   coordinates
//	<tourDir>/<name>.tour  tour
//	<plotDir>/<name>.png   image
//
// Any explicit path overrides its derived counterpart. Values come from a
// YAML file (Load) and/or command-line flags; flags are applied last.
package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"path"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/viant/afs/url"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tourplot/render"
)

// File extensions of the classic layout.
const (
	CoordsExt = ".tsp"
	TourExt   = ".tour"
	PlotExt   = ".png"
)

var (
	// ErrNoInput indicates neither a name nor both input paths were given.
	ErrNoInput = errors.New("config: need a dataset name or both input paths")

	// ErrBadConfig indicates an out-of-range or undecodable value.
	ErrBadConfig = errors.New("config: invalid configuration")
)

// Config is one run.
type Config struct {
	Name    string `yaml:"name"`
	DataDir string `yaml:"dataDir"`
	TourDir string `yaml:"tourDir"`
	PlotDir string `yaml:"plotDir"`

	// Explicit locations; empty means derived from Name.
	Coords  string `yaml:"coords"`
	Tour    string `yaml:"tour"`
	Output  string `yaml:"output"`
	GeoJSON string `yaml:"geojson"`

	// Permissive accepts inputs without their section marker as empty.
	Permissive bool `yaml:"permissive"`
	Show       bool `yaml:"show"`
	Quiet      bool `yaml:"quiet"`

	Render Render `yaml:"render"`
}

// Render mirrors the render package options; zero values keep defaults.
type Render struct {
	FigureSize  float64 `yaml:"figureSize"`
	DPI         float64 `yaml:"dpi"`
	LineWidth   float64 `yaml:"lineWidth"`
	Margin      float64 `yaml:"margin"`
	Color       string  `yaml:"color"`
	Background  string  `yaml:"background"`
	Axis        bool    `yaml:"axis"`
	EqualAspect bool    `yaml:"equalAspect"`
}

// Default returns the classic layout rooted at the working directory.
func Default() Config {
	return Config{
		DataDir: "data",
		TourDir: "tour",
		PlotDir: "plot",
	}
}

// Opener opens a named source for reading.
type Opener interface {
	Open(ctx context.Context, URL string) (io.ReadCloser, error)
}

// Load reads YAML from URL over the defaults.
func Load(ctx context.Context, src Opener, URL string) (Config, error) {
	rc, err := src.Open(ctx, URL)
	if err != nil {
		return Config{}, err
	}
	defer rc.Close()

	return Decode(rc)
}

// Decode reads YAML from r over the defaults. Unknown keys are rejected.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, pkgerrors.Wrapf(ErrBadConfig, "yaml: %v", err)
	}
	return cfg, nil
}

// Resolve fills derived paths and validates the result.
func (c Config) Resolve() (Config, error) {
	if c.Name == "" && (c.Coords == "" || c.Tour == "") {
		return c, ErrNoInput
	}

	if c.Coords == "" {
		c.Coords = join(c.DataDir, c.Name+CoordsExt)
	}
	if c.Tour == "" {
		c.Tour = join(c.TourDir, c.Name+TourExt)
	}
	if c.Name == "" {
		c.Name = baseName(c.Coords)
	}
	if c.Output == "" {
		c.Output = join(c.PlotDir, c.Name+PlotExt)
	}

	if err := c.Render.validate(); err != nil {
		return c, err
	}
	return c, nil
}

// join appends name to dir; URLs with a scheme are joined by afs rules.
func join(dir, name string) string {
	if strings.Contains(dir, "://") {
		return url.Join(dir, name)
	}
	return path.Join(dir, name)
}

// baseName strips directories and extension: "data/att48.tsp" → "att48".
func baseName(p string) string {
	b := path.Base(p)
	return strings.TrimSuffix(b, path.Ext(b))
}

func (r Render) validate() error {
	var bad []string
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"figureSize", r.FigureSize},
		{"dpi", r.DPI},
		{"lineWidth", r.LineWidth},
	} {
		if f.v < 0 || !finite(f.v) {
			bad = append(bad, fmt.Sprintf("%s=%v", f.name, f.v))
		}
	}
	if r.Margin < 0 || r.Margin >= 0.5 || !finite(r.Margin) {
		bad = append(bad, fmt.Sprintf("margin=%v", r.Margin))
	}
	if len(bad) == 0 {
		if side := r.side(); side > render.MaxPixels {
			bad = append(bad, fmt.Sprintf("image side %.0f px exceeds %d", side, render.MaxPixels))
		}
	}
	for _, c := range []string{r.Color, r.Background} {
		if c == "" {
			continue
		}
		if _, err := render.ParseHex(c); err != nil {
			bad = append(bad, fmt.Sprintf("colour=%q", c))
		}
	}
	if len(bad) > 0 {
		return pkgerrors.Wrapf(ErrBadConfig, "render: %s", strings.Join(bad, ", "))
	}
	return nil
}

// side is the image side in pixels the section produces, defaults included.
func (r Render) side() float64 {
	var (
		size = render.DefaultFigureSize
		dpi  = render.DefaultDPI
	)
	if r.FigureSize > 0 {
		size = r.FigureSize
	}
	if r.DPI > 0 {
		dpi = r.DPI
	}
	return math.Round(size * dpi)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Options converts the render section to render options. Call Resolve first:
// values that would make an option panic are rejected there.
func (r Render) Options() []render.Option {
	var opts []render.Option
	if r.FigureSize > 0 {
		opts = append(opts, render.WithFigureSize(r.FigureSize))
	}
	if r.DPI > 0 {
		opts = append(opts, render.WithDPI(r.DPI))
	}
	if r.LineWidth > 0 {
		opts = append(opts, render.WithLineWidth(r.LineWidth))
	}
	if r.Margin > 0 && r.Margin < 0.5 {
		opts = append(opts, render.WithMargin(r.Margin))
	}
	if r.Color != "" {
		opts = append(opts, render.WithColor(r.Color))
	}
	if r.Background != "" {
		opts = append(opts, render.WithBackground(r.Background))
	}
	opts = append(opts, render.WithAxis(r.Axis), render.WithEqualAspect(r.EqualAspect))
	return opts
}
