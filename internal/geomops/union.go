package geomops

import (
	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geos"
)

// UnionAll dissolves the given geometries into one, using a divide and
// conquer cascade so large inputs stay cheap.
func (o *Ops) UnionAll(gs []geom.T) (geom.T, error) {
	if len(gs) == 0 {
		return nil, eris.New("geomops: union of zero geometries")
	}

	parts := make([]*geos.Geom, 0, len(gs))
	for _, g := range gs {
		gg, err := o.toGeos(g)
		if err != nil {
			return nil, err
		}
		parts = append(parts, gg)
	}

	return o.fromGeos(cascadedUnion(parts))
}

// cascadedUnion unions geometries pairwise, halving at each level.
func cascadedUnion(geoms []*geos.Geom) *geos.Geom {
	if len(geoms) == 1 {
		return geoms[0]
	}
	mid := len(geoms) / 2
	left := cascadedUnion(geoms[:mid])
	right := cascadedUnion(geoms[mid:])
	return left.Union(right)
}
