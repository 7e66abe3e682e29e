// internal/mbtiles/bounds_test.go - Geographic extent tests
package mbtiles

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
)

func boundApproxEqual(a, b orb.Bound, tolerance float64) bool {
	return math.Abs(a.Min[0]-b.Min[0]) < tolerance &&
		math.Abs(a.Min[1]-b.Min[1]) < tolerance &&
		math.Abs(a.Max[0]-b.Max[0]) < tolerance &&
		math.Abs(a.Max[1]-b.Max[1]) < tolerance
}

func TestGeoBoundWholeWorld(t *testing.T) {
	extent := TileExtent{MinColumn: 0, MaxColumn: 0, MinRow: 0, MaxRow: 0}
	bound := extent.GeoBound(0)

	// The single zoom 0 tile covers the full web mercator extent.
	want := orb.Bound{
		Min: orb.Point{-180, -85.05112877980659},
		Max: orb.Point{180, 85.05112877980659},
	}
	if !boundApproxEqual(bound, want, 1e-6) {
		t.Errorf("expected %v, got %v", want, bound)
	}
}

func TestGeoBoundSouthWestQuadrant(t *testing.T) {
	// TMS row 0 at zoom 1 is the southern row.
	extent := TileExtent{MinColumn: 0, MaxColumn: 0, MinRow: 0, MaxRow: 0}
	bound := extent.GeoBound(1)

	want := orb.Bound{
		Min: orb.Point{-180, -85.05112877980659},
		Max: orb.Point{0, 0},
	}
	if !boundApproxEqual(bound, want, 1e-6) {
		t.Errorf("expected %v, got %v", want, bound)
	}
}

func TestGeoBoundSpansCorners(t *testing.T) {
	// Full zoom 1 pyramid covers the world again.
	extent := TileExtent{MinColumn: 0, MaxColumn: 1, MinRow: 0, MaxRow: 1}
	bound := extent.GeoBound(1)

	want := orb.Bound{
		Min: orb.Point{-180, -85.05112877980659},
		Max: orb.Point{180, 85.05112877980659},
	}
	if !boundApproxEqual(bound, want, 1e-6) {
		t.Errorf("expected %v, got %v", want, bound)
	}
}
