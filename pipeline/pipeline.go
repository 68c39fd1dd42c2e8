// Package pipeline runs one tour plot: load coordinates, load and resolve the
// tour, measure it, render it, write the image.
//
// Stages run strictly in sequence. Each input is opened, fully read and
// closed before the next stage starts. The first error aborts the run; when
// either loader fails nothing is written.
package pipeline

import (
	"bytes"
	"context"
	"io"
	"log"
	"os"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"

	"github.com/katalvlaran/tourplot/config"
	"github.com/katalvlaran/tourplot/export"
	"github.com/katalvlaran/tourplot/render"
	"github.com/katalvlaran/tourplot/tour"
	"github.com/katalvlaran/tourplot/tsplib"
)

var quiet = log.New(io.Discard, "", 0)

// Store is the file access the pipeline needs; storage.Store satisfies it.
type Store interface {
	Open(ctx context.Context, URL string) (io.ReadCloser, error)
	Write(ctx context.Context, URL string, r io.Reader) error
}

// Result describes a finished run.
type Result struct {
	Config   config.Config
	Instance *tsplib.Instance
	Tour     *tsplib.Tour
	Path     orb.LineString
	Stats    tour.Stats

	// Size is the side of the written image in pixels.
	Size int
}

// Runner executes runs against a Store.
type Runner struct {
	store Store
	log   *log.Logger
}

// NewRunner returns a Runner logging to stderr with a "[tourplot] " prefix.
func NewRunner(store Store) *Runner {
	return &Runner{
		store: store,
		log:   log.New(os.Stderr, "[tourplot] ", log.LstdFlags),
	}
}

// SetLogger replaces the logger; nil silences the runner.
func (r *Runner) SetLogger(l *log.Logger) {
	if l == nil {
		l = quiet
	}
	r.log = l
}

// Run executes cfg. cfg is resolved first (derived paths, validation).
func (r *Runner) Run(ctx context.Context, cfg config.Config) (*Result, error) {
	cfg, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}
	lg := r.log
	if cfg.Quiet {
		lg = quiet
	}

	var opts []tsplib.Option
	if cfg.Permissive {
		opts = append(opts, tsplib.Permissive())
	}

	res := &Result{Config: cfg}

	// Stage 1: coordinates.
	lg.Printf("reading coordinates %s", cfg.Coords)
	if res.Instance, err = tsplib.LoadCoordinates(ctx, r.store, cfg.Coords, opts...); err != nil {
		return nil, err
	}
	checkDimension(lg, cfg.Coords, res.Instance.Header, res.Instance.Len())
	lg.Printf("  %d points (%s)", res.Instance.Len(), metricOf(res.Instance))

	// Stage 2: tour.
	lg.Printf("reading tour %s", cfg.Tour)
	if res.Tour, err = tsplib.LoadTour(ctx, r.store, cfg.Tour, opts...); err != nil {
		return nil, err
	}
	if res.Path, err = tsplib.Resolve(res.Tour.IDs, res.Instance.Coords); err != nil {
		return nil, errors.WithMessage(err, cfg.Tour)
	}
	lg.Printf("  %d tour entries", res.Tour.Len())

	res.Stats = tour.Summarize(res.Tour.IDs, res.Path, res.Instance.Coords, metricOf(res.Instance))
	logStats(lg, res)

	// Stage 3: render.
	fig, err := render.Render(res.Path, cfg.Render.Options()...)
	if err != nil {
		return nil, errors.WithMessagef(err, "%s", cfg.Tour)
	}
	var buf bytes.Buffer
	if err = fig.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(err, "encode png")
	}
	if err = r.store.Write(ctx, cfg.Output, &buf); err != nil {
		return nil, err
	}
	res.Size = fig.Size
	lg.Printf("wrote %s (%dx%d px)", cfg.Output, fig.Size, fig.Size)

	if cfg.GeoJSON != "" {
		data, err := export.GeoJSON(cfg.Name, res.Path, res.Stats)
		if err != nil {
			return nil, errors.Wrap(err, "encode geojson")
		}
		if err = r.store.Write(ctx, cfg.GeoJSON, bytes.NewReader(data)); err != nil {
			return nil, err
		}
		lg.Printf("wrote %s", cfg.GeoJSON)
	}

	return res, nil
}

// Run executes cfg with a default-logging Runner over store.
func Run(ctx context.Context, store Store, cfg config.Config) (*Result, error) {
	return NewRunner(store).Run(ctx, cfg)
}

func metricOf(inst *tsplib.Instance) tour.Metric {
	return tour.ParseMetric(inst.Header.EdgeWeightType)
}

// checkDimension warns when DIMENSION disagrees with the parsed point count.
func checkDimension(lg *log.Logger, source string, h tsplib.Header, n int) {
	if h.Dimension != 0 && h.Dimension != n {
		lg.Printf("warning: %s: DIMENSION is %d but %d points were read", source, h.Dimension, n)
	}
}

func logStats(lg *log.Logger, res *Result) {
	st := res.Stats
	lg.Printf("  length %g (%s), %d crossings", st.Length, st.Metric, st.Crossings)
	if res.Tour.Header.Objective != 0 && st.Metric != tour.Planar && st.Length != res.Tour.Header.Objective {
		lg.Printf("warning: tour OBJECTIVE is %g, measured %g", res.Tour.Header.Objective, st.Length)
	}
	if !st.Hamiltonian() {
		lg.Printf("warning: not a Hamiltonian cycle (closed=%t revisits=%d missing=%d)",
			st.Closed, st.Revisits, st.Missing)
	}
}
