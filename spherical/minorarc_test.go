package spherical

import (
	"testing"

	nv "github.com/ChristopherRabotin/nvector"
)

func assertIntersection(t *testing.T, exp nv.NVector, ma1, ma2 MinorArc) {
	t.Helper()
	i, ok := ma1.Intersection(ma2)
	if !ok {
		t.Fatalf("%s and %s should intersect", ma1, ma2)
	}
	assertLatLongD7(t, exp, i)
	if Side(i, ma1.Start(), ma1.End()) != 0 || Side(i, ma2.Start(), ma2.End()) != 0 {
		t.Fatalf("intersection %s is not on both minor arcs", i.ToLatLong())
	}
}

func TestMinorArcIntersection(t *testing.T) {
	for _, tc := range []struct {
		name     string
		ma1, ma2 MinorArc
		exp      nv.NVector
	}{
		{"nominal", NewMinorArc(llDeg(-36, 143), llDeg(-34, 145)), NewMinorArc(llDeg(-34, 143), llDeg(-36, 145)), llDeg(-35.0163245, 144)},
		{"across equator", NewMinorArc(llDeg(54, 154), llDeg(-54, 154)), NewMinorArc(llDeg(53, 153), llDeg(53, 155)),
			nv.NVector{Vec3: nv.Vec3{X: -0.5408552101001728, Y: 0.26379271166149, Z: 0.7986795646451562}}},
		{"at end", NewMinorArc(llDeg(0, 0), llDeg(0, 20)), NewMinorArc(llDeg(10, 20), llDeg(-10, 20)), llDeg(0, 20)},
		{"at start", NewMinorArc(llDeg(0, 0), llDeg(0, 20)), NewMinorArc(llDeg(10, 0), llDeg(-10, 0)), llDeg(0, 0)},
		{"close", NewMinorArc(llDeg(-27.1789705075, 152.3083728075), llDeg(-27.0741667000, 152.2163889000)),
			NewMinorArc(llDeg(-27.1245578000, 152.1506886000), llDeg(-27.0741667000, 152.2163889000)), llDeg(-27.0741667, 152.2163889)},
		{"null island", NewMinorArc(llDeg(0, -1), llDeg(0, 1)), NewMinorArc(llDeg(-1, 0), llDeg(1, 0)), llDeg(0, 0)},
		{"small arc", NewMinorArc(llDeg(-20.8464124400, 123.2066292450), llDeg(-20.8463888889, 123.2066666667)),
			NewMinorArc(llDeg(-20.3716666667, 122.2811111111), llDeg(-21.5219444444, 124.5511111111)), llDeg(-20.8464124, 123.2066292)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assertIntersection(t, tc.exp, tc.ma1, tc.ma2)
		})
	}
}

func TestMinorArcIntersectionPole(t *testing.T) {
	ma1 := NewMinorArc(llDeg(45, 0), llDeg(45, 180))
	ma2 := NewMinorArc(llDeg(45, 90), llDeg(45, 270))
	i, ok := ma1.Intersection(ma2)
	if !ok {
		t.Fatal("expected an intersection at the pole")
	}
	if lat := i.ToLatLong().Latitude; lat != nv.QuarterCircle {
		t.Fatalf("latitude %s", lat)
	}
}

func TestMinorArcIntersectionVerySmall(t *testing.T) {
	tenthOfMM := nv.Length(1e-4)
	s1 := llDeg(-32.7929069956, 135.4840669972)
	e1 := Earth.Destination(s1, nv.AngleFromDegrees(45), tenthOfMM)
	mid, _ := Interpolated(s1, e1, 0.5)
	s2 := Earth.Destination(mid, nv.AngleFromDegrees(315), tenthOfMM)
	e2 := Earth.Destination(s2, nv.AngleFromDegrees(135), tenthOfMM)
	assertIntersection(t, mid, NewMinorArc(s1, e1), NewMinorArc(s2, e2))
}

func TestMinorArcNoIntersection(t *testing.T) {
	ma := NewMinorArc(llDeg(54, 154), llDeg(-54, 154))
	for _, tc := range []struct {
		name     string
		ma1, ma2 MinorArc
	}{
		{"equal", ma, ma},
		{"opposite", ma, ma.Opposite()},
		{"apart", NewMinorArc(llDeg(0, 0), llDeg(45, 0)), NewMinorArc(llDeg(0, 90), llDeg(45, 90))},
		{"candidate close to first", NewMinorArc(llDeg(54, 178.8), llDeg(54, -179.8)), NewMinorArc(llDeg(-80, 179), llDeg(-85, 179))},
		{"close first arc", NewMinorArc(llDeg(-27.7022222000, 152.5372222000), llDeg(-27.4319444000, 152.4188889000)),
			NewMinorArc(llDeg(-27.3874939000, 152.4658169000), llDeg(-27.3518653000, 152.5214517000))},
		{"close second arc", NewMinorArc(llDeg(-27.7022222000, 152.5372222000), llDeg(-27.4319444000, 152.4188889000)),
			NewMinorArc(llDeg(-27.4754111000, 152.7457194000), llDeg(-27.4733058000, 152.6958286000))},
		{"long arcs far apart", NewMinorArc(llDeg(9, -83), llDeg(-33.8179213708, 112.4433954286)), NewMinorArc(llDeg(10, 55), llDeg(10, 179))},
		{"same meridian", NewMinorArc(llDeg(0, 0), llDeg(45, 0)), NewMinorArc(llDeg(46, 0), llDeg(48, 0))},
	} {
		if i, ok := tc.ma1.Intersection(tc.ma2); ok {
			t.Fatalf("%s: unexpected intersection %s", tc.name, i.ToLatLong())
		}
	}
}

func TestMinorArcProjection(t *testing.T) {
	start := llDeg(53.3206, -1.7297)
	end := llDeg(53.1887, 0.1334)
	pt := llDeg(53.2611, -0.7972)
	p, ok := NewMinorArc(start, end).Projection(pt)
	if !ok {
		t.Fatal("expected a projection")
	}
	assertLatLongD7(t, llDeg(53.2583533, -0.7977434), p)
	if xtd, d := Earth.CrossTrackDistance(pt, NewGreatCircle(end, start)).RoundMM(), Earth.Distance(p, pt).RoundMM(); xtd != d {
		t.Fatalf("cross track distance %s != distance to projection %s", xtd, d)
	}

	// all positions of the equator are equidistant from the poles.
	equator := NewMinorArc(llDeg(0, -10), llDeg(0, 10))
	for _, pole := range []nv.NVector{llDeg(90, 0), llDeg(-90, 0)} {
		p, ok := equator.Projection(pole)
		if !ok || p.ToLatLong().Latitude != 0 {
			t.Fatalf("projection of %s: %s (%t)", pole.ToLatLong(), p.ToLatLong(), ok)
		}
	}

	start, end = llDeg(54, 15), llDeg(54, 20)
	ma := NewMinorArc(start, end)
	for _, q := range []nv.NVector{start, end} {
		p, ok := ma.Projection(q)
		if !ok {
			t.Fatalf("projection of %s failed", q.ToLatLong())
		}
		assertLatLongD7(t, q, p)
	}
	for _, q := range []nv.NVector{llDeg(54, 25), llDeg(54, 10)} {
		if _, ok := ma.Projection(q); ok {
			t.Fatalf("projection of %s should be outside", q.ToLatLong())
		}
	}

	p, ok = NewMinorArc(llDeg(80, -90), llDeg(80, 90)).Projection(llDeg(0, 0))
	if !ok {
		t.Fatal("expected a projection onto the pole")
	}
	assertLatLongD7(t, llDeg(90, 0), p)
}

func TestMinorArcDistanceTo(t *testing.T) {
	ma := NewMinorArc(llDeg(0, 0), llDeg(0, 10))
	for _, tc := range []struct {
		p   nv.NVector
		exp nv.Angle
	}{
		{llDeg(5, 5), nv.AngleFromDegrees(5)},
		{llDeg(0, 5), 0},
		{llDeg(0, -3), nv.AngleFromDegrees(3)},
		{llDeg(0, 14), nv.AngleFromDegrees(4)},
		{llDeg(-2, 10), nv.AngleFromDegrees(2)},
	} {
		if a := ma.DistanceTo(tc.p).Angle(); !angleEq(a.RoundD7(), tc.exp) {
			t.Fatalf("distance from %s: got %s, want %s", tc.p.ToLatLong(), a, tc.exp)
		}
	}
}

func TestMinorArcSideOfAndTurn(t *testing.T) {
	ma := NewMinorArc(llDeg(0, 0), llDeg(45, 0))
	if s := ma.SideOf(llDeg(10, -1)); s != 1 {
		t.Fatalf("west of a northbound arc is left, got %d", s)
	}
	if s := ma.SideOf(llDeg(10, 1)); s != -1 {
		t.Fatalf("east of a northbound arc is right, got %d", s)
	}
	if s := ma.SideOf(llDeg(60, 0)); s != 0 {
		t.Fatalf("same meridian, got %d", s)
	}
	exp := nv.AngleFromRadians(0.3175226173130951)
	if a := ma.Turn(NewMinorArc(llDeg(45, 0), llDeg(60, -10))); !angleEq(a, exp) {
		t.Fatalf("left turn: %s", a)
	}
	if a := ma.Turn(NewMinorArc(llDeg(45, 0), llDeg(60, 10))); !angleEq(a, -exp) {
		t.Fatalf("right turn: %s", a)
	}
	o := ma.Opposite()
	if o.Start() != ma.End() || o.End() != ma.Start() || o.Normal() != ma.Normal().Neg() {
		t.Fatalf("opposite of %s: %s", ma, o)
	}
}

func TestMinorArcContainsInterpolated(t *testing.T) {
	s := newSampler(7)
	for i := 0; i < 300; i++ {
		a, b := s.Sample(), s.Sample()
		if !IsGreatCircle(a, b) {
			continue
		}
		ma := NewMinorArc(a, b)
		f := float64(i%99+1) / 100
		r, _ := Interpolated(a, b, f)
		if !ma.ContainsPoint(r) {
			t.Fatalf("%s does not contain %s (f=%v)", ma, r.ToLatLong(), f)
		}
		p, ok := ma.Projection(r)
		if !ok || Earth.Distance(p, r) > 1e-3 {
			t.Fatalf("projection of %s onto %s: %s", r.ToLatLong(), ma, p.ToLatLong())
		}
	}
}
