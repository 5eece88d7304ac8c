package astrogeom_test

import (
	"math"
	"testing"

	. "github.com/Asteroidea-tn/astrorect/pkg/astrogeom"
	"github.com/stretchr/testify/assert"
)

func TestFromXY_swapsAxes(t *testing.T) {
	pt := FromXY(3, 7)
	assert.Equal(t, int64(7), pt.Col)
	assert.Equal(t, int64(3), pt.Row)
}

func TestBoundsOf(t *testing.T) {
	b := BoundsOf(Point{Col: 5, Row: -2}, Point{Col: 1, Row: 4})
	assert.Equal(t, Bounds{MinCol: 1, MaxCol: 5, MinRow: -2, MaxRow: 4}, b)
	assert.Equal(t, uint64(5), b.Width())
	assert.Equal(t, uint64(7), b.Height())
	assert.Equal(t, uint64(35), b.Area())

	c, r := b.Center()
	assert.Equal(t, 3.0, c)
	assert.Equal(t, 1.0, r)
}

func TestPairArea_extremeCoordinates(t *testing.T) {
	p1 := Point{Col: math.MinInt64, Row: 0}
	p2 := Point{Col: math.MaxInt64, Row: 0}
	// |Δ| = 2^64-1, plus one wraps to zero in uint64.
	assert.Equal(t, uint64(0), PairArea(p1, p2))

	p3 := Point{Col: -1 << 31, Row: 0}
	p4 := Point{Col: 1 << 31, Row: 1}
	assert.Equal(t, uint64(1<<32+1)*2, PairArea(p3, p4))
}

func TestEdgeCutsInterior(t *testing.T) {
	r := Bounds{MinCol: 0, MaxCol: 10, MinRow: 0, MaxRow: 10}

	for _, tc := range []struct {
		name string
		a, b Point
		want bool
	}{
		{"vertical through middle", Point{5, -3}, Point{5, 13}, true},
		{"vertical partial overlap", Point{5, 8}, Point{5, 20}, true},
		{"vertical reversed endpoints", Point{5, 20}, Point{5, 8}, true},
		{"vertical on left side", Point{0, -3}, Point{0, 13}, false},
		{"vertical on right side", Point{10, 2}, Point{10, 4}, false},
		{"vertical outside", Point{11, 2}, Point{11, 4}, false},
		{"vertical ends at top", Point{5, -5}, Point{5, 0}, false},
		{"vertical starts at bottom", Point{5, 10}, Point{5, 15}, false},
		{"horizontal through middle", Point{-1, 4}, Point{11, 4}, true},
		{"horizontal partial", Point{9, 4}, Point{30, 4}, true},
		{"horizontal on top", Point{-1, 0}, Point{11, 0}, false},
		{"horizontal on bottom", Point{2, 10}, Point{3, 10}, false},
		{"horizontal touching corner", Point{10, 5}, Point{20, 5}, false},
		{"diagonal ignored", Point{0, 0}, Point{10, 10}, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, EdgeCutsInterior(tc.a, tc.b, r))
		})
	}
}

func TestEdgeCutsInterior_degenerateRectangle(t *testing.T) {
	// a one-column rectangle has no open interior
	r := Bounds{MinCol: 3, MaxCol: 3, MinRow: 0, MaxRow: 10}
	assert.False(t, EdgeCutsInterior(Point{3, -1}, Point{3, 11}, r))
	assert.False(t, EdgeCutsInterior(Point{0, 5}, Point{6, 5}, r))
}

func square() Polygon {
	return Polygon{{0, 0}, {0, 4}, {4, 4}, {4, 0}}
}

func TestPolygonContains(t *testing.T) {
	poly := square()

	for _, tc := range []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 2, 2, true},
		{"off center", 0.5, 3.5, true},
		{"left edge", 0, 2, true},
		{"top edge", 2, 0, true},
		{"corner", 4, 4, true},
		{"just outside right edge", 4.00005, 2, false},
		{"outside right", 5, 2, false},
		{"outside above", 2, -1, false},
		{"edge line extended", 0, 6, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, poly.Contains(tc.x, tc.y, DefaultBoundaryTolerance))
		})
	}
}

func TestPolygonContains_notch(t *testing.T) {
	// L shape: the quadrant col>2,row>2 is missing
	poly := Polygon{{0, 0}, {4, 0}, {4, 2}, {2, 2}, {2, 4}, {0, 4}}

	assert.True(t, poly.Contains(1, 3, DefaultBoundaryTolerance))
	assert.True(t, poly.Contains(3, 1, DefaultBoundaryTolerance))
	assert.True(t, poly.Contains(3, 2, DefaultBoundaryTolerance))
	assert.False(t, poly.Contains(3, 3, DefaultBoundaryTolerance))
}

func TestPolygonContains_rayAlongHorizontalEdge(t *testing.T) {
	poly := square()
	// y matches the horizontal edges' row; the crossing test must skip them
	// without dividing by zero.
	assert.False(t, poly.Contains(-2, 0, DefaultBoundaryTolerance))
	assert.False(t, poly.Contains(-2, 4, DefaultBoundaryTolerance))
}

func TestPolygonContains_zeroTolerance(t *testing.T) {
	poly := square()
	// without the boundary check the right edge falls outside the half-open ray test
	assert.True(t, poly.Contains(4, 2, DefaultBoundaryTolerance))
	assert.False(t, poly.Contains(4, 2, 0))
}

func TestPolygonContains_empty(t *testing.T) {
	assert.False(t, Polygon{}.Contains(0, 0, DefaultBoundaryTolerance))
}

func TestPolygonCuts(t *testing.T) {
	poly := Polygon{{0, 0}, {4, 0}, {4, 2}, {2, 2}, {2, 4}, {0, 4}}

	assert.False(t, poly.Cuts(BoundsOf(Point{0, 0}, Point{4, 2})))
	assert.True(t, poly.Cuts(BoundsOf(Point{0, 0}, Point{4, 4})))
}
