package astrogeom

// Point is a lattice vertex. Col and Row are swapped relative to the "x,y"
// text form: x is the row and y is the column.
type Point struct {
	Col, Row int64
}

// FromXY builds a Point from the raw "x,y" pair of an input line.
func FromXY(x, y int64) Point {
	return Point{Col: y, Row: x}
}

// Polygon is a closed vertex cycle; the last vertex connects back to the first.
type Polygon []Point

// Edge returns the i-th edge of the polygon, wrapping around at the end.
func (p Polygon) Edge(i int) (Point, Point) {
	return p[i], p[(i+1)%len(p)]
}

// absDiff returns |a-b| without overflowing for any pair of int64 values.
func absDiff(a, b int64) uint64 {
	if a > b {
		return uint64(a) - uint64(b)
	}
	return uint64(b) - uint64(a)
}
