// Package batch analyses several classification rasters concurrently, one
// fresh graph per raster, and returns their metrics in input order.
package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/waternet/connectivity"
	"github.com/katalvlaran/waternet/gridgraph"
	"github.com/katalvlaran/waternet/internal/logging"
	"github.com/katalvlaran/waternet/raster"
	"github.com/katalvlaran/waternet/report"
)

// ErrDuplicateName is returned when two inputs share a name; label files and
// history rows are keyed by it.
var ErrDuplicateName = errors.New("batch: duplicate input name")

// Input names one raster to analyse.
type Input struct {
	Name string
	Path string
}

// ParseInput accepts "name=path" or a bare path; a bare path is named after
// its file stem, so "rasters/2015.tif" becomes "2015".
func ParseInput(arg string) Input {
	if name, path, ok := strings.Cut(arg, "="); ok && name != "" && path != "" {
		return Input{Name: name, Path: path}
	}
	base := filepath.Base(arg)
	return Input{Name: strings.TrimSuffix(base, filepath.Ext(base)), Path: arg}
}

// Result is the outcome for one input.
type Result struct {
	Input   Input
	Metrics connectivity.Metrics
	// Degrees[d] is the number of water cells with d water neighbours.
	Degrees []int
	Labels  *gridgraph.LabelGrid
}

// Entry converts r for the report layer.
func (r Result) Entry() report.Entry {
	return report.Entry{Name: r.Input.Name, Source: r.Input.Path, Metrics: r.Metrics, DegreeHistogram: r.Degrees}
}

// Loader reads band 1 of a raster. raster.Load is the production loader.
type Loader func(path string) ([][]float64, error)

// Runner executes analyses.
type Runner struct {
	Options gridgraph.Options
	// Workers bounds the number of rasters processed at once; values below 1 mean 1.
	Workers int
	// LabelsDir, when set, receives one <name>.labels.png per input.
	LabelsDir string
	Load      Loader
	Log       zerolog.Logger
}

// Run analyses every input. The first failure cancels the remaining work and
// Run returns that error with no results, so partial metrics are never emitted.
// Input names must be unique (ErrDuplicateName).
func (r *Runner) Run(ctx context.Context, inputs []Input) ([]Result, error) {
	seen := make(map[string]string, len(inputs))
	for _, in := range inputs {
		if prev, ok := seen[in.Name]; ok {
			return nil, fmt.Errorf("%w: %q used by %s and %s; name one with name=path", ErrDuplicateName, in.Name, prev, in.Path)
		}
		seen[in.Name] = in.Path
	}
	load := r.Load
	if load == nil {
		load = raster.Load
	}
	workers := r.Workers
	if workers < 1 {
		workers = 1
	}
	if r.LabelsDir != "" {
		if err := os.MkdirAll(r.LabelsDir, 0o755); err != nil {
			return nil, fmt.Errorf("create labels dir: %w", err)
		}
	}

	results := make([]Result, len(inputs))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, in := range inputs {
		i, in := i, in
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := r.analyse(in, load)
			if err != nil {
				return fmt.Errorf("%s: %w", in.Name, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// analyse runs load → build → analyse for one input.
func (r *Runner) analyse(in Input, load Loader) (Result, error) {
	log := logging.Component(r.Log, "batch").With().Str("name", in.Name).Logger()

	log.Debug().Str("path", in.Path).Msg("loading raster")
	band, err := load(in.Path)
	if err != nil {
		return Result{}, err
	}

	log.Info().Msg("converting raster to graph")
	gg, err := gridgraph.NewGrid(band, r.Options)
	if err != nil {
		return Result{}, fmt.Errorf("build grid: %w", err)
	}
	labels := gg.Label()
	log.Info().
		Int("rows", gg.Rows).Int("cols", gg.Cols).
		Int("features", labels.Count).
		Msg("labelled water regions")

	g := gg.Graph()
	log.Info().Int("nodes", g.VertexCount()).Int("edges", g.EdgeCount()).Msg("graph built")

	m, err := connectivity.Analyze(g)
	if err != nil {
		return Result{}, fmt.Errorf("analyse: %w", err)
	}

	degrees, err := connectivity.DegreeHistogram(g)
	if err != nil {
		return Result{}, fmt.Errorf("degree histogram: %w", err)
	}

	switch {
	case r.LabelsDir == "":
	case labels.Rows == 0 || labels.Cols == 0:
		// PNG cannot encode a zero-sized image
		log.Debug().Msg("empty raster, no label image written")
	default:
		if err := writeLabels(filepath.Join(r.LabelsDir, in.Name+".labels.png"), labels); err != nil {
			return Result{}, err
		}
	}

	return Result{Input: in, Metrics: m, Degrees: degrees, Labels: labels}, nil
}

func writeLabels(path string, lg *gridgraph.LabelGrid) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write labels: %w", err)
	}
	if err := report.WriteLabelsPNG(f, lg); err != nil {
		f.Close()
		return fmt.Errorf("write labels %q: %w", path, err)
	}
	return f.Close()
}
