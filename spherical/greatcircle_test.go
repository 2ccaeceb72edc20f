package spherical

import (
	"testing"

	nv "github.com/ChristopherRabotin/nvector"
)

func TestGreatCircleProjection(t *testing.T) {
	// the normal is not exactly (-1, 0, 0) so null island is not exactly a pole of the great circle.
	gc := NewGreatCircle(llDeg(80, -90), llDeg(80, 90))
	assertLatLongD7(t, nv.NVector{Vec3: nv.UnitZ}, gc.Projection(llDeg(0, 0)))

	equator := NewGreatCircle(llDeg(0, 0), llDeg(0, 90))
	p := equator.Projection(llDeg(45, 30))
	assertLatLongD7(t, llDeg(0, 30), p)
	// all positions of the equator are equidistant from the pole.
	if p := equator.Projection(nv.NVector{Vec3: nv.UnitZ}); !equator.ContainsPoint(p) {
		t.Fatalf("projection of the pole %s is not on the equator", p.ToLatLong())
	}
}

func TestGreatCircleIntersections(t *testing.T) {
	gc1 := NewGreatCircle(llDeg(0, 0), llDeg(0, 90))
	gc2 := NewGreatCircle(llDeg(0, 45), llDeg(45, 45))
	i1, i2, ok := gc1.Intersections(gc2)
	if !ok {
		t.Fatal("expected intersections")
	}
	if !i1.IsAntipodeOf(i2) {
		t.Fatalf("%s and %s are not antipodal", i1, i2)
	}
	ll := i1.ToLatLong().RoundD7()
	if ll != nv.LatLongFromDegrees(0, 45) && ll != nv.LatLongFromDegrees(0, -135) {
		t.Fatalf("unexpected intersection %s", ll)
	}
	if _, _, ok := gc1.Intersections(gc1); ok {
		t.Fatal("a great circle does not intersect itself")
	}
	opposite := NewGreatCircle(llDeg(0, 90), llDeg(0, 0))
	if _, _, ok := gc1.Intersections(opposite); ok {
		t.Fatal("a great circle does not intersect its opposite")
	}
}

func TestGreatCircleFromHeading(t *testing.T) {
	p := llDeg(53.3206, -1.7297)
	for _, b := range []float64{0, 45, 96, 180, 270} {
		gc := GreatCircleFromHeading(p, nv.AngleFromDegrees(b))
		if !gc.ContainsPoint(p) {
			t.Fatalf("great circle of heading %v does not contain its origin", b)
		}
		d := Earth.Destination(p, nv.AngleFromDegrees(b), 10*nv.Kilometre)
		if x := Earth.CrossTrackDistance(d, gc); x.Abs() > 1e-3 {
			t.Fatalf("heading %v: destination is %s off the great circle", b, x)
		}
	}
	// heading north at the equator: the great circle is a meridian.
	gc := GreatCircleFromHeading(llDeg(0, 0), 0)
	if !gc.ContainsPoint(llDeg(45, 0)) {
		t.Fatal("heading north should follow the meridian")
	}
}
