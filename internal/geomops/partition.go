package geomops

import (
	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"go.uber.org/zap"
)

// exactnessTol bounds the symmetric-difference area tolerated between the
// reconstructed partition and the original land mass (square degrees).
const exactnessTol = 1e-9

// Partition clips the remit hull against the land mass. It returns the
// land-constrained remit area (land ∩ hull) and the remainder
// (land − remit), which together partition the land mass exactly: their
// union reconstructs it and their intersection is empty.
//
// A hull disjoint from the land mass is not an error; the remit result is
// simply empty.
func (o *Ops) Partition(land, hull geom.T) (remit, rest geom.T, err error) {
	gl, err := o.toGeos(land)
	if err != nil {
		return nil, nil, err
	}
	gh, err := o.toGeos(hull)
	if err != nil {
		return nil, nil, err
	}

	inter := gl.Intersection(gh)
	diff := gl.Difference(inter)

	// Partition exactness: remit ∪ rest must reconstruct the land mass.
	leftover := gl.SymDifference(inter.Union(diff)).Area()
	if leftover > exactnessTol {
		return nil, nil, eris.Errorf("geomops: partition does not reconstruct land mass (leftover area %g)", leftover)
	}

	if inter.IsEmpty() {
		zap.L().Warn("geomops: remit hull is disjoint from land mass")
	}

	remit, err = o.fromGeos(inter)
	if err != nil {
		return nil, nil, err
	}
	rest, err = o.fromGeos(diff)
	if err != nil {
		return nil, nil, err
	}
	return remit, rest, nil
}
