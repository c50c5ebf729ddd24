// Package hull derives the remit boundary polygon from station points: an
// alpha shape over the point set, smoothed by a buffer close and reduced by
// a topology-preserving simplify.
package hull

import (
	"github.com/fogleman/delaunay"
	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"go.uber.org/zap"

	"github.com/transitwatch/remitmap/internal/geomops"
)

// Params holds the boundary tunables. Distances are in the same units as
// the input coordinates (degrees for WGS84 inputs). Values are deliberately
// not derived from point density; they are operator-tuned.
type Params struct {
	Alpha             float64 // 0 degrades to the convex hull
	SmoothRadius      float64 // buffer close radius; 0 disables smoothing
	SimplifyTolerance float64 // 0 disables vertex reduction
	QuadSegments      int     // arc approximation segments per buffer quadrant
}

// Builder computes remit boundary geometries for a fixed set of tunables.
type Builder struct {
	params Params
	ops    *geomops.Ops
}

// NewBuilder returns a Builder using the given tunables and GEOS ops.
func NewBuilder(params Params, ops *geomops.Ops) *Builder {
	return &Builder{params: params, ops: ops}
}

// Build computes the boundary geometry for the given points. The result is
// a single, possibly multi-part polygon. A point set whose alpha shape
// degenerates (collinear input, or an alpha so tight no triangle survives)
// is an error, not an empty geometry.
func (b *Builder) Build(points []delaunay.Point) (geom.T, error) {
	if len(points) < 3 {
		return nil, eris.Errorf("hull: %d points, need at least 3", len(points))
	}

	triangles, err := alphaTriangles(points, b.params.Alpha)
	if err != nil {
		return nil, err
	}

	shape, err := b.ops.UnionAll(triangles)
	if err != nil {
		return nil, eris.Wrap(err, "hull: union alpha triangles")
	}

	if b.params.SmoothRadius > 0 {
		shape, err = b.ops.Close(shape, b.params.SmoothRadius, b.params.QuadSegments)
		if err != nil {
			return nil, eris.Wrap(err, "hull: smooth")
		}
	}

	if b.params.SimplifyTolerance > 0 {
		shape, err = b.ops.SimplifyPreserve(shape, b.params.SimplifyTolerance)
		if err != nil {
			return nil, eris.Wrap(err, "hull: simplify")
		}
	}

	if geomops.IsEmpty(shape) {
		return nil, eris.Errorf("hull: boundary degenerated to an empty geometry (alpha %g, smooth %g)",
			b.params.Alpha, b.params.SmoothRadius)
	}

	zap.L().Debug("hull: built boundary",
		zap.Int("points", len(points)),
		zap.Int("triangles", len(triangles)),
		zap.Float64("alpha", b.params.Alpha),
	)
	return shape, nil
}
