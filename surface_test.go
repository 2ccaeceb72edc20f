package nvector

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestEllipsoidConstants(t *testing.T) {
	for _, tc := range []struct {
		name string
		s    Surface
		a    Length
		invf float64
	}{
		{"WGS84", WGS84, 6378137, 298.257223563},
		{"GRS80", GRS80, 6378137, 298.257222101},
		{"WGS72", WGS72, 6378135, 298.26},
		{"MOLA", MOLA, 3396200, 169.8},
	} {
		if e := NewEllipsoid(tc.a, tc.invf); e != tc.s {
			t.Fatalf("%s: got %s, want %s", tc.name, e, tc.s)
		}
		if tc.s.IsSphere() || tc.s.Kind() != EllipsoidSurface {
			t.Fatalf("%s is an ellipsoid", tc.name)
		}
	}
	if !EarthSphere.IsSphere() || EarthSphere.Radius() != 6371000.8 || MoonSphere.Radius() != 1737400 {
		t.Fatal("invalid predefined spheres")
	}
	if EarthSphere.Eccentricity() != 0 || EarthSphere.Flattening() != 0 || EarthSphere.PolarRadius() != EarthSphere.EquatorialRadius() {
		t.Fatal("a sphere has no eccentricity nor flattening")
	}
}

func TestEllipsoidRadii(t *testing.T) {
	if r := WGS84.GeocentricRadius(0); r != WGS84.EquatorialRadius() {
		t.Fatalf("geocentric radius at the equator: %s", r)
	}
	if r := WGS84.GeocentricRadius(QuarterCircle).RoundMM(); r != WGS84.PolarRadius().RoundMM() {
		t.Fatalf("geocentric radius at the pole: %s", r)
	}
	if r := WGS84.GeocentricRadius(AngleFromDegrees(45)).RoundM(); r != 6367490 {
		t.Fatalf("geocentric radius at 45°: %s", r)
	}
	if r := WGS84.LatitudeRadius(0); r != WGS84.EquatorialRadius() {
		t.Fatalf("latitude radius at the equator: %s", r)
	}
	if WGS84.LatitudeRadius(QuarterCircle) != 0 || WGS84.LatitudeRadius(-QuarterCircle) != 0 {
		t.Fatal("latitude radius at the poles")
	}
	if r := WGS84.PrimeVerticalRadius(0); r != WGS84.EquatorialRadius() {
		t.Fatalf("prime vertical radius at the equator: %s", r)
	}
	if r := WGS84.PrimeVerticalRadius(AngleFromDegrees(45)).RoundMM(); r != 6388838.29 {
		t.Fatalf("prime vertical radius at 45°: %s", r)
	}
	if r := WGS84.MeanRadius().RoundDM(); r != 6371008.8 {
		t.Fatalf("mean radius: %s", r)
	}
	if r := WGS84.VolumetricRadius().RoundDM(); r != EarthSphere.Radius() {
		t.Fatalf("volumetric radius: %s", r)
	}
	if r := WGS84.Radius(); r != WGS84.MeanRadius() {
		t.Fatalf("radius of an ellipsoid: %s", r)
	}
	if s := WGS84.Sphere(); !s.IsSphere() || s.Radius() != WGS84.MeanRadius() {
		t.Fatalf("sphere of WGS84: %s", s)
	}
	if r := WGS84.MeridianRadius(0).RoundMM(); r != 6335439.327 {
		t.Fatalf("meridian radius at the equator: %s", r)
	}
}

func TestGeodeticToGeocentric(t *testing.T) {
	p := WGS84.GeodeticToGeocentric(GeodeticPosFromDegrees(45, 45, 500))
	exp := Vec3{3194669.145061, 3194669.145061, 4487701.962257}
	if !vec3Equal(p.Metres(), exp, 1e-6) {
		t.Fatalf("WGS84 (45°, 45°, 500m): %v", p)
	}
	p = EarthSphere.GeodeticToGeocentric(GeodeticPosFromDegrees(0, 90, 1000))
	if !vec3Equal(p.Metres(), Vec3{0, 6372000.8, 0}, 1e-6) {
		t.Fatalf("sphere (0°, 90°, 1000m): %v", p)
	}
	g := EarthSphere.GeocentricToGeodetic(GeocentricPos{0, 0, -6371000.8 - 42})
	if g.LatLong() != LatLongFromDegrees(-90, 0) || !scalar.EqualWithinAbs(g.Height.Metres(), 42, 1e-6) {
		t.Fatalf("above the south pole: %v", g)
	}
}

func TestGeodeticRoundTrip(t *testing.T) {
	for _, s := range []Surface{WGS84, GRS80, WGS72, MOLA, EarthSphere, MoonSphere} {
		for lat := -90.0; lat <= 90; lat += 15 {
			for lon := -180.0; lon < 180; lon += 30 {
				for _, h := range []Length{-1000, 0, 500, 10000} {
					exp := GeodeticPosFromDegrees(lat, lon, h)
					got := s.GeocentricToGeodetic(s.GeodeticToGeocentric(exp))
					if got.LatLong() != exp.LatLong() {
						t.Fatalf("%s: got %s, want %s", s, got.LatLong(), exp.LatLong())
					}
					if got.Height.RoundMM() != h {
						t.Fatalf("%s at %s: got height %s, want %s", s, exp.LatLong(), got.Height, h)
					}
				}
			}
		}
	}
}
