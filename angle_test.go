package nvector

import (
	"math"
	"testing"
)

func TestAngleConversions(t *testing.T) {
	if a := AngleFromDegrees(1); a != Degree {
		t.Fatalf("1 degree: %d µas", a)
	}
	if a := AngleFromRadians(math.Pi); a != HalfCircle {
		t.Fatalf("π: %s", a)
	}
	for _, a := range []Angle{QuarterCircle, HalfCircle, -QuarterCircle, AngleFromDegrees(45)} {
		if AngleFromRadians(a.Radians()) != a {
			t.Fatalf("radians round trip of %s", a)
		}
	}
	if d := AngleFromDegrees(154.5).Degrees(); d != 154.5 {
		t.Fatalf("degrees: %v", d)
	}
	// angles agreeing to the microarcsecond are equal.
	if AngleFromDegrees(45.00000000001) != AngleFromDegrees(45) {
		t.Fatal("sub-microarcsecond difference")
	}
}

func TestAngleDMS(t *testing.T) {
	a := AngleFromDMS(154, 27, 59, 999)
	if a.Arcdegrees() != 154 || a.Arcminutes() != 27 || a.Arcseconds() != 59 || a.Milliarcseconds() != 999 {
		t.Fatalf("DMS components of %s", a)
	}
	if s := a.String(); s != `154°27'59.999"` {
		t.Fatalf("string: %s", s)
	}
	n := AngleFromDMS(-154, 27, 59, 999)
	if n != -a || n.Arcdegrees() != -154 || n.Arcminutes() != 27 {
		t.Fatalf("negative DMS: %s", n)
	}
	if s := n.String(); s != `-154°27'59.999"` {
		t.Fatalf("string: %s", s)
	}
	if a := AngleFromDMS(0, 60, 0, 0); a != Degree {
		t.Fatalf("minutes should overflow into degrees: %s", a)
	}
}

func TestParseAngle(t *testing.T) {
	for _, tc := range []struct {
		s   string
		exp Angle
	}{
		{"-35.0163245", AngleFromDegrees(-35.0163245)},
		{"144°", 144 * Degree},
		{" 0.0000001 ", d7},
		{"90", QuarterCircle},
	} {
		a, err := ParseAngle(tc.s)
		if err != nil {
			t.Fatalf("%q: %s", tc.s, err)
		}
		if a != tc.exp {
			t.Fatalf("%q: got %s, want %s", tc.s, a, tc.exp)
		}
	}
	for _, s := range []string{"", "north", "1e400"} {
		if _, err := ParseAngle(s); err == nil {
			t.Fatalf("%q should not parse", s)
		}
	}
}

func TestAngleArithmetic(t *testing.T) {
	if a := QuarterCircle.Mul(2); a != HalfCircle {
		t.Fatalf("mul: %s", a)
	}
	if a := HalfCircle.Div(4); a != AngleFromDegrees(45) {
		t.Fatalf("div: %s", a)
	}
	if r := QuarterCircle.Ratio(HalfCircle); r != 0.5 {
		t.Fatalf("ratio: %v", r)
	}
	if (-Degree).Abs() != Degree {
		t.Fatal("abs")
	}
	s, c := QuarterCircle.Sincos()
	if s != 1 || !EqZero(c) {
		t.Fatalf("sincos of 90°: %v, %v", s, c)
	}
}

func TestAngleNormalised(t *testing.T) {
	for _, tc := range []struct {
		a, exp Angle
	}{
		{-QuarterCircle, 3 * QuarterCircle},
		{FullCircle, 0},
		{FullCircle + Degree, Degree},
		{0, 0},
		{-FullCircle - Degree, FullCircle - Degree},
	} {
		if n := tc.a.Normalised(); n != tc.exp {
			t.Fatalf("%s normalised: got %s, want %s", tc.a, n, tc.exp)
		}
	}
	if n := (HalfCircle + QuarterCircle).NormalisedTo(HalfCircle); n != QuarterCircle {
		t.Fatalf("normalised to 180°: %s", n)
	}
}

func TestAngleRound(t *testing.T) {
	for _, tc := range []struct {
		round    func(Angle) Angle
		in, exp  float64
		decimals int
	}{
		{Angle.RoundD5, 54.000009, 54.00001, 5},
		{Angle.RoundD5, -154.000011, -154.00001, 5},
		{Angle.RoundD6, 54.0000009, 54.000001, 6},
		{Angle.RoundD6, -154.0000011, -154.000001, 6},
		{Angle.RoundD7, 54.00000009, 54.0000001, 7},
		{Angle.RoundD7, -154.00000011, -154.0000001, 7},
	} {
		if r := tc.round(AngleFromDegrees(tc.in)); r != AngleFromDegrees(tc.exp) {
			t.Fatalf("%v rounded to %d decimals: %v", tc.in, tc.decimals, r.Degrees())
		}
	}
}
