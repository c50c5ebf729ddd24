// Package geomops performs planar polygon operations (union, buffer,
// simplify, intersection, difference) via GEOS, exposing go-geom values at
// the package boundary.
//
// An Ops wraps a single GEOS context and must not be shared across
// goroutines.
package geomops

import (
	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkb"
	"github.com/twpayne/go-geos"
)

// Ops holds a GEOS context for a sequence of geometry operations.
type Ops struct {
	c *geos.Context
}

// New returns an Ops with a fresh GEOS context.
func New() *Ops {
	return &Ops{c: geos.NewContext()}
}

// toGeos converts a go-geom geometry to a GEOS geometry via WKB.
func (o *Ops) toGeos(g geom.T) (*geos.Geom, error) {
	data, err := wkb.Marshal(g, wkb.NDR)
	if err != nil {
		return nil, eris.Wrap(err, "geomops: encode WKB")
	}
	gg, err := o.c.NewGeomFromWKB(data)
	if err != nil {
		return nil, eris.Wrap(err, "geomops: decode WKB into GEOS")
	}
	return gg, nil
}

// fromGeos converts a GEOS geometry back to go-geom, repairing validity
// first if GEOS reports the result invalid.
func (o *Ops) fromGeos(g *geos.Geom) (geom.T, error) {
	if !g.IsEmpty() && !g.IsValid() {
		g = g.MakeValid()
	}
	out, err := wkb.Unmarshal(g.ToWKB())
	if err != nil {
		return nil, eris.Wrap(err, "geomops: decode WKB from GEOS")
	}
	return out, nil
}

// Area returns the planar area of g.
func (o *Ops) Area(g geom.T) (float64, error) {
	gg, err := o.toGeos(g)
	if err != nil {
		return 0, err
	}
	defer gg.Destroy()
	return gg.Area(), nil
}

// IsEmpty reports whether g has no coordinates.
func IsEmpty(g geom.T) bool {
	if g == nil {
		return true
	}
	switch t := g.(type) {
	case *geom.Polygon:
		return t.NumLinearRings() == 0
	case *geom.MultiPolygon:
		return t.NumPolygons() == 0
	case *geom.GeometryCollection:
		return t.NumGeoms() == 0
	default:
		return len(g.FlatCoords()) == 0
	}
}
