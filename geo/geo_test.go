package geo_test

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/routeloop/engine/geo"
)

func TestHaversine_IdenticalPoints(t *testing.T) {
	p := geo.Coordinate(48.8566, 2.3522)
	if d := geo.Haversine(p, p); d != 0 {
		t.Fatalf("expected 0 for identical points, got %v", d)
	}
}

func TestHaversine_Antipodes(t *testing.T) {
	a := geo.Coordinate(0, 0)
	b := geo.Coordinate(0, 180)
	d := geo.Haversine(a, b)
	wantHalfCircumference := math.Pi * geo.EarthRadiusMeters
	if math.Abs(d-wantHalfCircumference) > 1 {
		t.Fatalf("expected ~%v, got %v", wantHalfCircumference, d)
	}
}

func TestHaversine_KnownDistance(t *testing.T) {
	// Paris to London, roughly 343 km along the great circle.
	paris := geo.Coordinate(48.8566, 2.3522)
	london := geo.Coordinate(51.5074, -0.1278)
	d := geo.Haversine(paris, london)
	if d < 330000 || d > 350000 {
		t.Fatalf("expected ~343km, got %vm", d)
	}
}

func TestBearing_Normalised(t *testing.T) {
	a := geo.Coordinate(0, 0)
	b := geo.Coordinate(1, 0)
	brg := geo.Bearing(a, b)
	if brg < 0 || brg >= 360 {
		t.Fatalf("bearing out of [0,360): %v", brg)
	}
	// Due north.
	if math.Abs(brg) > 1 {
		t.Fatalf("expected ~0 degrees (north), got %v", brg)
	}
}

func TestAngularDiversity_Range(t *testing.T) {
	tests := []struct{ a, b, want float64 }{
		{0, 90, 90},
		{350, 10, 20},
		{0, 180, 180},
		{45, 45, 0},
	}
	for _, tt := range tests {
		got := geo.AngularDiversity(tt.a, tt.b)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Fatalf("AngularDiversity(%v,%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
		if got < 0 || got > 180 {
			t.Fatalf("AngularDiversity(%v,%v) = %v out of [0,180]", tt.a, tt.b, got)
		}
	}
}

func TestBoundingBox_SinglePoint(t *testing.T) {
	p := geo.Coordinate(10, 20)
	b, err := geo.BoundingBox([]orb.Point{p})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if geo.North(b) != 10 || geo.South(b) != 10 || geo.East(b) != 20 || geo.West(b) != 20 {
		t.Fatalf("expected degenerate bound at (10,20), got N=%v S=%v E=%v W=%v",
			geo.North(b), geo.South(b), geo.East(b), geo.West(b))
	}
}

func TestBoundingBox_Empty(t *testing.T) {
	_, err := geo.BoundingBox(nil)
	if err != geo.ErrEmptyInput {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestPointToSegmentDistance_OnSegment(t *testing.T) {
	a := geo.Coordinate(0, 0)
	b := geo.Coordinate(0, 1)
	mid := geo.Midpoint(a, b)
	d := geo.PointToSegmentDistance(mid, a, b)
	if d > 1 {
		t.Fatalf("expected ~0 for midpoint on segment, got %v", d)
	}
}

func TestPointToSegmentDistance_DegenerateSegment(t *testing.T) {
	a := geo.Coordinate(1, 1)
	p := geo.Coordinate(2, 2)
	got := geo.PointToSegmentDistance(p, a, a)
	want := geo.Haversine(p, a)
	if math.Abs(got-want) > 1e-6 {
		t.Fatalf("degenerate segment distance = %v, want %v", got, want)
	}
}

func TestPolygonArea(t *testing.T) {
	if a := geo.PolygonArea(nil); a != 0 {
		t.Fatalf("expected 0 for empty ring, got %v", a)
	}
	if a := geo.PolygonArea([]orb.Point{{0, 0}, {1, 0}}); a != 0 {
		t.Fatalf("expected 0 for a two-point ring, got %v", a)
	}

	// A 0.01 x 0.01 degree square at the equator is roughly 1.11km on a
	// side, so ~1.23 km².
	square := []orb.Point{{0, 0}, {0.01, 0}, {0.01, 0.01}, {0, 0.01}}
	a := geo.PolygonArea(square)
	if a < 1.1e6 || a > 1.35e6 {
		t.Fatalf("expected ~1.23e6 m² for the equatorial square, got %v", a)
	}
}

func TestScalarScorers_Clamp(t *testing.T) {
	if v := geo.DistanceAccuracy(1000, 500); v < 0 || v > 1 {
		t.Fatalf("DistanceAccuracy out of range: %v", v)
	}
	if v := geo.DistanceAccuracy(-1000, 500); v != 0 {
		t.Fatalf("expected clamp to 0, got %v", v)
	}
	if v := geo.PathUniqueness([]string{"a", "a", "b"}); math.Abs(v-2.0/3.0) > 1e-9 {
		t.Fatalf("PathUniqueness = %v, want 0.666...", v)
	}
	if v := geo.PathUniqueness(nil); v != 0 {
		t.Fatalf("expected 0 for empty path, got %v", v)
	}
	if v := geo.SurfaceQuality(0.5, 0.5); math.Abs(v-0.75) > 1e-9 {
		t.Fatalf("SurfaceQuality = %v, want 0.75", v)
	}
	if v := geo.SceneryVariety(10, 2); v != 1 {
		t.Fatalf("expected clamp to 1, got %v", v)
	}
}
