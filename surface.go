package nvector

import (
	"fmt"
	"math"
)

// SurfaceKind discriminates the variants of a Surface.
type SurfaceKind uint8

// Surface kinds.
const (
	SphereSurface SurfaceKind = iota
	EllipsoidSurface
)

func (k SurfaceKind) String() string {
	switch k {
	case SphereSurface:
		return "sphere"
	case EllipsoidSurface:
		return "ellipsoid"
	default:
		return fmt.Sprintf("SurfaceKind(%d)", uint8(k))
	}
}

// Surface is the reference surface of a celestial body: either a sphere or an oblate ellipsoid of revolution.
// A sphere has equal equatorial and polar radii and zero eccentricity and flattening.
type Surface struct {
	kind SurfaceKind
	a, b Length  // equatorial and polar radii
	e, f float64 // eccentricity and flattening
}

// Predefined ellipsoids.
var (
	// WGS84 is the World Geodetic System 1984 ellipsoid.
	WGS84 = EllipsoidFromAll(6378137, 6356752.314245179, 0.08181919084262157, 0.0033528106647474805)
	// GRS80 is the Geodetic Reference System 1980 ellipsoid.
	GRS80 = EllipsoidFromAll(6378137, 6356752.314140356, 0.08181919104281514, 0.003352810681182319)
	// WGS72 is the World Geodetic System 1972 ellipsoid.
	WGS72 = EllipsoidFromAll(6378135, 6356750.520016094, 0.08181881066274845, 0.003352779454167505)
	// MOLA is the Mars Orbiter Laser Altimeter ellipsoid.
	MOLA = EllipsoidFromAll(3396200, 3376198.822143698, 0.10836918094475001, 0.005889281507656065)

	Intl1924      = EllipsoidFromAll(6378388, 6356911.9461279465, 0.08199188997902888, 0.003367003367003367)
	Airy1830      = EllipsoidFromAll(6377563.396, 6356256.909237285, 0.08167337387414043, 0.0033408506414970775)
	AiryModified  = EllipsoidFromAll(6377340.189, 6356034.447938534, 0.08167337387414247, 0.0033408506414970775)
	Bessel1841    = EllipsoidFromAll(6377397.155, 6356078.962818189, 0.08169683122252666, 0.003342773182174806)
	Clarke1866    = EllipsoidFromAll(6378206.4, 6356583.800000007, 0.08227185422298973, 0.0033900753039276207)
	Clarke1880IGN = EllipsoidFromAll(6378249.2, 6356515.000000028, 0.08248325676336525, 0.003407549520011315)
	Mars2000      = EllipsoidFromAll(3398627, 3378611.5288574793, 0.10836918094474898, 0.005889281507656065)
)

// Predefined spheres.
var (
	// EarthSphere is the IUGG Earth mean radius sphere.
	EarthSphere = NewSphere(6371000.8)
	MoonSphere  = NewSphere(1737400)
)

// NewSphere returns a spherical surface of the given radius.
func NewSphere(radius Length) Surface {
	return Surface{kind: SphereSurface, a: radius, b: radius}
}

// NewEllipsoid returns the ellipsoid of the given equatorial radius and inverse flattening.
func NewEllipsoid(equatorialRadius Length, invf float64) Surface {
	a := equatorialRadius.Metres()
	f := 1 / invf
	b := a * (1 - f)
	e := math.Sqrt(1 - (b*b)/(a*a))
	return Surface{EllipsoidSurface, equatorialRadius, Length(b), e, f}
}

// EllipsoidFromAll returns the ellipsoid of the given parameters which must be consistent with each other.
func EllipsoidFromAll(equatorialRadius, polarRadius Length, eccentricity, flattening float64) Surface {
	return Surface{EllipsoidSurface, equatorialRadius, polarRadius, eccentricity, flattening}
}

// Kind returns the variant of this surface.
func (s Surface) Kind() SurfaceKind { return s.kind }

// IsSphere returns whether this surface is a sphere.
func (s Surface) IsSphere() bool { return s.kind == SphereSurface }

// Radius returns the radius of a sphere, or the mean radius of an ellipsoid.
func (s Surface) Radius() Length {
	if s.IsSphere() {
		return s.a
	}
	return s.MeanRadius()
}

// EquatorialRadius returns the semi-major axis.
func (s Surface) EquatorialRadius() Length { return s.a }

// PolarRadius returns the semi-minor axis.
func (s Surface) PolarRadius() Length { return s.b }

// Eccentricity returns the first eccentricity.
func (s Surface) Eccentricity() float64 { return s.e }

// Flattening returns the flattening.
func (s Surface) Flattening() float64 { return s.f }

// MeanRadius returns the mean radius (2a + b) / 3.
func (s Surface) MeanRadius() Length {
	return (2*s.a + s.b) / 3
}

// VolumetricRadius returns the radius of the sphere of equal volume.
func (s Surface) VolumetricRadius() Length {
	a, b := s.a.Metres(), s.b.Metres()
	return Length(math.Cbrt(a * a * b))
}

// Sphere returns the sphere of mean radius of this surface.
func (s Surface) Sphere() Surface {
	if s.IsSphere() {
		return s
	}
	return NewSphere(s.MeanRadius())
}

// GeocentricRadius returns the distance from the centre to the surface at the given geodetic latitude.
func (s Surface) GeocentricRadius(latitude Angle) Length {
	if s.IsSphere() {
		return s.a
	}
	sin, cos := latitude.Sincos()
	a, b := s.a.Metres(), s.b.Metres()
	f1 := a * a * cos
	f2 := b * b * sin
	f3 := a * cos
	f4 := b * sin
	return Length(math.Sqrt((f1*f1 + f2*f2) / (f3*f3 + f4*f4)))
}

// LatitudeRadius returns the radius of the parallel at the given geodetic latitude.
func (s Surface) LatitudeRadius(latitude Angle) Length {
	if latitude.Abs() == QuarterCircle {
		return 0
	}
	_, cos := latitude.Sincos()
	return s.PrimeVerticalRadius(latitude) * Length(cos)
}

// PrimeVerticalRadius returns the radius of curvature in the prime vertical at the given geodetic latitude.
func (s Surface) PrimeVerticalRadius(latitude Angle) Length {
	sin, _ := latitude.Sincos()
	return s.a / Length(math.Sqrt(1-s.e*s.e*sin*sin))
}

// MeridianRadius returns the radius of curvature of the meridian at the given geodetic latitude.
func (s Surface) MeridianRadius(latitude Angle) Length {
	e2 := s.e * s.e
	sin, _ := latitude.Sincos()
	return s.a * Length((1-e2)/math.Pow(1-e2*sin*sin, 1.5))
}

// GeodeticToGeocentric converts the given geodetic position to an ECEF position.
func (s Surface) GeodeticToGeocentric(p GeodeticPos) GeocentricPos {
	nv := p.HorizontalPosition.Vec3
	h := p.Height.Metres()
	if s.IsSphere() {
		return GeocentricPosFromMetres(nv.Scale(s.a.Metres() + h))
	}
	a, b := s.a.Metres(), s.b.Metres()
	m := (a * a) / (b * b)
	n := b / math.Sqrt(nv.X*nv.X*m+nv.Y*nv.Y*m+nv.Z*nv.Z)
	return GeocentricPosFromMetres(Vec3{
		n*m*nv.X + h*nv.X,
		n*m*nv.Y + h*nv.Y,
		n*nv.Z + h*nv.Z})
}

// GeocentricToGeodetic converts the given ECEF position to a geodetic position.
// The ellipsoidal conversion is the exact, non-iterative method of Kenneth Gade.
func (s Surface) GeocentricToGeodetic(p GeocentricPos) GeodeticPos {
	pv := p.Metres()
	if s.IsSphere() {
		return GeodeticPos{NewNVector(pv), Length(pv.Norm()) - s.a}
	}
	px, py, pz := pv.X, pv.Y, pv.Z
	e2 := s.e * s.e
	e4 := e2 * e2
	a := s.a.Metres()
	a2 := a * a
	pp := (px*px + py*py) / a2
	q := ((1 - e2) / a2) * (pz * pz)
	r := (pp + q - e4) / 6
	ss := (e4 * pp * q) / (4 * r * r * r)
	t := math.Cbrt(1 + ss + math.Sqrt(ss*(2+ss)))
	u := r * (1 + t + 1/t)
	v := math.Sqrt(u*u + q*e4)
	w := e2 * (u + v - q) / (2 * v)
	k := math.Sqrt(u+v+w*w) - w
	d := k * math.Sqrt(px*px+py*py) / (k + e2)
	dz := math.Sqrt(d*d + pz*pz)
	h := ((k + e2 - 1) / k) * dz

	fs := 1 / dz
	fa := k / (k + e2)
	return GeodeticPos{NVector{Vec3{fs * fa * px, fs * fa * py, fs * pz}}, Length(h)}
}

func (s Surface) String() string {
	if s.IsSphere() {
		return fmt.Sprintf("sphere(r=%s)", s.a)
	}
	return fmt.Sprintf("ellipsoid(a=%s, 1/f=%f)", s.a, 1/s.f)
}
