package geomops

import (
	"github.com/twpayne/go-geom"
)

// Close smooths g by buffering outward then inward by the same radius
// (morphological closing). Sharp concavities are rounded off while the
// overall footprint stays put; thin spurs may erode slightly.
func (o *Ops) Close(g geom.T, radius float64, quadSegs int) (geom.T, error) {
	gg, err := o.toGeos(g)
	if err != nil {
		return nil, err
	}
	defer gg.Destroy()

	closed := gg.Buffer(radius, quadSegs).Buffer(-radius, quadSegs)
	return o.fromGeos(closed)
}

// SimplifyPreserve reduces vertex count within tolerance without introducing
// ring self-intersections.
func (o *Ops) SimplifyPreserve(g geom.T, tolerance float64) (geom.T, error) {
	gg, err := o.toGeos(g)
	if err != nil {
		return nil, err
	}
	defer gg.Destroy()

	return o.fromGeos(gg.TopologyPreserveSimplify(tolerance))
}
