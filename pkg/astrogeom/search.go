package astrogeom

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Options tunes MaxContainedArea.
type Options struct {
	// Tolerance is the boundary distance used by Polygon.Contains.
	Tolerance float64
	// Workers splits the outer pair loop across goroutines when greater than 1.
	Workers int
}

// Option configures MaxContainedArea.
type Option func(*Options)

// WithTolerance overrides DefaultBoundaryTolerance. Non-positive values are ignored.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol > 0 {
			o.Tolerance = tol
		}
	}
}

// WithWorkers sets the number of goroutines scanning point pairs.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

func newOptions(opts []Option) Options {
	o := Options{
		Tolerance: DefaultBoundaryTolerance,
		Workers:   1,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Workers < 1 {
		o.Workers = 1
	}
	return o
}

// MaxArea returns the largest bounding-box area over every pair of points,
// with no containment check. Fewer than two points yield 0.
func MaxArea(points []Point) uint64 {
	var best uint64

	for i := range points {
		for j := i + 1; j < len(points); j++ {
			if area := PairArea(points[i], points[j]); area > best {
				best = area
			}
		}
	}

	return best
}

// MaxContainedArea returns the largest rectangle with two input points as
// opposite corners that no polygon edge cuts and whose center lies inside
// the polygon formed by points. Fewer than two points yield 0.
func MaxContainedArea(points []Point, opts ...Option) uint64 {
	if len(points) < 2 {
		return 0
	}

	o := newOptions(opts)
	// only the first len(points) workers would get a row
	o.Workers = min(o.Workers, len(points))
	poly := Polygon(points)

	if o.Workers == 1 {
		return scanPairs(poly, 0, 1, o.Tolerance)
	}

	// Worker w takes rows w, w+n, w+2n... so the shrinking inner loops stay balanced.
	results := make([]uint64, o.Workers)
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for w := 0; w < o.Workers; w++ {
		w := w
		g.Go(func() error {
			results[w] = scanPairs(poly, w, o.Workers, o.Tolerance)
			return nil
		})
	}
	_ = g.Wait()

	var best uint64
	for _, r := range results {
		best = max(best, r)
	}
	return best
}

// scanPairs evaluates pairs (i, j) with i = start, start+step, ... and j > i.
func scanPairs(poly Polygon, start, step int, tol float64) uint64 {
	var best uint64

	for i := start; i < len(poly); i += step {
		for j := i + 1; j < len(poly); j++ {
			p1, p2 := poly[i], poly[j]

			area := PairArea(p1, p2)
			if area <= best {
				continue
			}

			r := BoundsOf(p1, p2)
			if poly.Cuts(r) {
				continue
			}

			c, row := r.Center()
			if poly.Contains(c, row, tol) {
				best = area
			}
		}
	}

	return best
}
