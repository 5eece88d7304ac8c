package astrogeom

import "math"

// DefaultBoundaryTolerance is how close a query point must be to an
// axis-aligned edge to be treated as lying on it.
const DefaultBoundaryTolerance = 0.0001

// EdgeCutsInterior reports whether the axis-aligned edge a-b passes through
// the open interior of r. Edges lying on the boundary of r only touch it.
// Diagonal edges are never reported.
func EdgeCutsInterior(a, b Point, r Bounds) bool {
	switch {
	case a.Col == b.Col:
		if a.Col <= r.MinCol || a.Col >= r.MaxCol {
			return false
		}
		lo, hi := min(a.Row, b.Row), max(a.Row, b.Row)
		return max(lo, r.MinRow) < min(hi, r.MaxRow)

	case a.Row == b.Row:
		if a.Row <= r.MinRow || a.Row >= r.MaxRow {
			return false
		}
		lo, hi := min(a.Col, b.Col), max(a.Col, b.Col)
		return max(lo, r.MinCol) < min(hi, r.MaxCol)
	}

	return false
}

// Cuts reports whether any edge of the polygon cuts the interior of r.
func (p Polygon) Cuts(r Bounds) bool {
	for i := range p {
		a, b := p.Edge(i)
		if EdgeCutsInterior(a, b, r) {
			return true
		}
	}
	return false
}

// Contains runs a ray-casting test for the point (x, y), where x is a column
// and y a row. Points within tol of an axis-aligned edge count as inside.
func (p Polygon) Contains(x, y, tol float64) bool {
	inside := false

	for i := range p {
		a, b := p.Edge(i)
		xi, yi := float64(a.Col), float64(a.Row)
		xj, yj := float64(b.Col), float64(b.Row)

		if x >= min(xi, xj) && x <= max(xi, xj) && y >= min(yi, yj) && y <= max(yi, yj) {
			if (xi == xj && math.Abs(x-xi) < tol) || (yi == yj && math.Abs(y-yi) < tol) {
				return true
			}
		}

		// horizontal edges never cross a horizontal ray
		if yi == yj {
			continue
		}

		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}

	return inside
}
