package astrogeom

// Bounds is the inclusive axis-aligned rectangle spanned by two corner points.
type Bounds struct {
	MinCol, MaxCol int64
	MinRow, MaxRow int64
}

// BoundsOf returns the rectangle having p1 and p2 as opposite corners.
func BoundsOf(p1, p2 Point) Bounds {
	b := Bounds{
		MinCol: p1.Col,
		MaxCol: p1.Col,
		MinRow: p1.Row,
		MaxRow: p1.Row,
	}

	if p2.Col < b.MinCol {
		b.MinCol = p2.Col
	}
	if p2.Col > b.MaxCol {
		b.MaxCol = p2.Col
	}
	if p2.Row < b.MinRow {
		b.MinRow = p2.Row
	}
	if p2.Row > b.MaxRow {
		b.MaxRow = p2.Row
	}

	return b
}

// Width is the inclusive number of columns covered.
func (b Bounds) Width() uint64 {
	return absDiff(b.MaxCol, b.MinCol) + 1
}

// Height is the inclusive number of rows covered.
func (b Bounds) Height() uint64 {
	return absDiff(b.MaxRow, b.MinRow) + 1
}

// Area counts grid cells, both ends included.
func (b Bounds) Area() uint64 {
	return b.Width() * b.Height()
}

// Center returns the exact midpoint as (column, row).
func (b Bounds) Center() (float64, float64) {
	c := (float64(b.MinCol) + float64(b.MaxCol)) / 2
	r := (float64(b.MinRow) + float64(b.MaxRow)) / 2
	return c, r
}

// PairArea is the bounding-box area of two points without building Bounds.
func PairArea(p1, p2 Point) uint64 {
	return (absDiff(p1.Col, p2.Col) + 1) * (absDiff(p1.Row, p2.Row) + 1)
}
