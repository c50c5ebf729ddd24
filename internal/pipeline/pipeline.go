// Package pipeline runs the remit derivation end to end: load stations and
// land, build the alpha-shape boundary, partition the land mass, write the
// two-feature output.
package pipeline

import (
	"context"

	"github.com/fogleman/delaunay"
	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/transitwatch/remitmap/internal/export"
	"github.com/transitwatch/remitmap/internal/geomops"
	"github.com/transitwatch/remitmap/internal/hull"
	"github.com/transitwatch/remitmap/internal/land"
	"github.com/transitwatch/remitmap/internal/station"
)

// Params holds everything one run needs. No process-wide state is consulted.
type Params struct {
	StationsPath string
	LandPath     string
	LandFormat   land.Format
	OutPath      string
	Hull         hull.Params
}

// Result summarizes a completed run.
type Result struct {
	RunID        string
	Stations     station.Stats
	LandFeatures int
	RemitEmpty   bool
	OutPath      string
}

// Run executes the pipeline once. The two inputs load concurrently; the
// geometry stages run on a single GEOS context afterwards, since a context
// must not be shared across goroutines.
func Run(ctx context.Context, p Params) (*Result, error) {
	runID := uuid.NewString()
	log := zap.L().With(zap.String("run_id", runID))
	log.Info("pipeline: starting",
		zap.String("stations", p.StationsPath),
		zap.String("land", p.LandPath),
		zap.String("out", p.OutPath),
	)

	var (
		stations  []station.Station
		stats     station.Stats
		landParts []geom.T
	)
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stations, stats, err = station.Load(p.StationsPath)
		return err
	})
	g.Go(func() error {
		var err error
		landParts, err = land.Load(p.LandPath, p.LandFormat)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, eris.Wrap(err, "pipeline: load inputs")
	}

	ops := geomops.New()

	landGeom, err := ops.UnionAll(landParts)
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: union land mass")
	}

	points := make([]delaunay.Point, len(stations))
	for i, s := range stations {
		points[i] = delaunay.Point{X: s.Lon, Y: s.Lat}
	}
	boundary, err := hull.NewBuilder(p.Hull, ops).Build(points)
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: build boundary")
	}

	remit, rest, err := ops.Partition(landGeom, boundary)
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: partition land mass")
	}

	if err := export.Write(p.OutPath, remit, rest); err != nil {
		return nil, eris.Wrap(err, "pipeline: write output")
	}

	res := &Result{
		RunID:        runID,
		Stations:     stats,
		LandFeatures: len(landParts),
		RemitEmpty:   geomops.IsEmpty(remit),
		OutPath:      p.OutPath,
	}
	log.Info("pipeline: complete",
		zap.Int("stations", stats.Accepted),
		zap.Int("land_features", res.LandFeatures),
		zap.Bool("remit_empty", res.RemitEmpty),
	)
	return res, nil
}
