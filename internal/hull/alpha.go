package hull

import (
	"math"

	"github.com/fogleman/delaunay"
	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
)

// degenerateArea is twice the smallest triangle area treated as non-sliver.
const degenerateArea = 1e-12

// alphaTriangles Delaunay-triangulates the points and keeps the triangles
// whose circumradius is below 1/alpha. Alpha <= 0 keeps every triangle,
// which degrades to the convex hull; larger alpha tightens the boundary
// and can leave the shape in disconnected pieces.
func alphaTriangles(points []delaunay.Point, alpha float64) ([]geom.T, error) {
	tri, err := delaunay.Triangulate(points)
	if err != nil {
		return nil, eris.Wrap(err, "hull: triangulate")
	}

	var maxRadius float64
	if alpha > 0 {
		maxRadius = 1 / alpha
	}

	var kept []geom.T
	for i := 0; i+2 < len(tri.Triangles); i += 3 {
		a := points[tri.Triangles[i]]
		b := points[tri.Triangles[i+1]]
		c := points[tri.Triangles[i+2]]

		r, ok := circumradius(a, b, c)
		if !ok {
			continue
		}
		if alpha > 0 && r >= maxRadius {
			continue
		}

		kept = append(kept, geom.NewPolygonFlat(geom.XY,
			[]float64{a.X, a.Y, b.X, b.Y, c.X, c.Y, a.X, a.Y},
			[]int{8}))
	}

	if len(kept) == 0 {
		return nil, eris.Errorf("hull: alpha %g leaves no triangles (degenerate point set or alpha too tight)", alpha)
	}
	return kept, nil
}

// circumradius returns the circumscribed-circle radius of triangle abc, or
// ok=false for a degenerate (near-collinear) triangle.
func circumradius(a, b, c delaunay.Point) (float64, bool) {
	// Twice the signed area via the cross product.
	area2 := math.Abs((b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X))
	if area2 < degenerateArea {
		return 0, false
	}
	la := math.Hypot(b.X-a.X, b.Y-a.Y)
	lb := math.Hypot(c.X-b.X, c.Y-b.Y)
	lc := math.Hypot(a.X-c.X, a.Y-c.Y)
	// R = abc / (4K); K = area2 / 2.
	return la * lb * lc / (2 * area2), true
}
