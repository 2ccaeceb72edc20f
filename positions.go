package nvector

import (
	"fmt"
	"math"
)

// Position is a horizontal position which can be expressed both as an n-vector and as a latitude/longitude.
type Position interface {
	AsNVector() NVector
	ToLatLong() LatLong
}

// LatLong is a geodetic latitude and longitude.
type LatLong struct {
	Latitude, Longitude Angle
}

// NewLatLong returns a LatLong with the latitude in [-90, 90] and the longitude in [-180, 180] degrees.
// Latitudes beyond a pole continue on the opposite meridian; the longitude of both poles is 0.
func NewLatLong(latitude, longitude Angle) LatLong {
	lat := wrap180(latitude)
	lon := longitude
	if lat > QuarterCircle {
		lat = HalfCircle - lat
		lon += HalfCircle
	} else if lat < -QuarterCircle {
		lat = -HalfCircle - lat
		lon += HalfCircle
	}
	if lat.Abs() == QuarterCircle {
		return LatLong{lat, 0}
	}
	if lon < -HalfCircle || lon > HalfCircle {
		lon = wrap180(lon)
	}
	return LatLong{lat, lon}
}

// wrap180 wraps a into [-180, 180).
func wrap180(a Angle) Angle {
	return (a + HalfCircle).NormalisedTo(FullCircle) - HalfCircle
}

// LatLongFromDegrees returns the LatLong from the given decimal degrees.
func LatLongFromDegrees(latitude, longitude float64) LatLong {
	return NewLatLong(AngleFromDegrees(latitude), AngleFromDegrees(longitude))
}

// LatLongFromNVector returns the LatLong of the given n-vector.
func LatLongFromNVector(v NVector) LatLong {
	lat := AngleFromRadians(math.Atan2(v.Z, math.Hypot(v.X, v.Y)))
	if lat.Abs() == QuarterCircle {
		return LatLong{lat, 0}
	}
	return LatLong{lat, AngleFromRadians(math.Atan2(v.Y, v.X))}
}

// AsNVector returns the n-vector of this position.
func (ll LatLong) AsNVector() NVector {
	return NVectorFromLatLong(ll)
}

// ToLatLong returns ll.
func (ll LatLong) ToLatLong() LatLong {
	return ll
}

// Antipode returns the antipodal position.
func (ll LatLong) Antipode() LatLong {
	return NewLatLong(-ll.Latitude, ll.Longitude+HalfCircle)
}

// IsAntipodeOf returns whether o is the antipode of this position.
func (ll LatLong) IsAntipodeOf(o LatLong) bool {
	return ll.AsNVector().IsAntipodeOf(o.AsNVector())
}

// RoundD5 rounds the latitude and longitude to 5 decimal places.
func (ll LatLong) RoundD5() LatLong {
	return LatLong{ll.Latitude.RoundD5(), ll.Longitude.RoundD5()}
}

// RoundD6 rounds the latitude and longitude to 6 decimal places.
func (ll LatLong) RoundD6() LatLong {
	return LatLong{ll.Latitude.RoundD6(), ll.Longitude.RoundD6()}
}

// RoundD7 rounds the latitude and longitude to 7 decimal places.
func (ll LatLong) RoundD7() LatLong {
	return LatLong{ll.Latitude.RoundD7(), ll.Longitude.RoundD7()}
}

func (ll LatLong) String() string {
	return fmt.Sprintf("(%.7f, %.7f)", ll.Latitude.Degrees(), ll.Longitude.Degrees())
}

// NVector is the unit vector normal to the surface at a position.
// An NVector is expected to be unit length: use the constructors rather than setting Vec3 directly.
type NVector struct {
	Vec3
}

// NewNVector returns the n-vector of the given vector, normalised to unit length.
func NewNVector(v Vec3) NVector {
	return NVector{v.Unit()}
}

// NVectorFromLatLong returns the n-vector of the given latitude and longitude.
func NVectorFromLatLong(ll LatLong) NVector {
	switch ll.Latitude {
	case QuarterCircle:
		return NVector{UnitZ}
	case -QuarterCircle:
		return NVector{NegUnitZ}
	}
	slat, clat := ll.Latitude.Sincos()
	slon, clon := ll.Longitude.Sincos()
	return NVector{Vec3{clat * clon, clat * slon, slat}}
}

// NVectorFromLatLongDegrees returns the n-vector of the given latitude and longitude in decimal degrees.
func NVectorFromLatLongDegrees(latitude, longitude float64) NVector {
	return NVectorFromLatLong(LatLongFromDegrees(latitude, longitude))
}

// AsNVector returns v.
func (v NVector) AsNVector() NVector {
	return v
}

// ToLatLong returns the latitude and longitude of v.
func (v NVector) ToLatLong() LatLong {
	return LatLongFromNVector(v)
}

// Antipode returns the antipodal n-vector.
func (v NVector) Antipode() NVector {
	return NVector{v.Neg()}
}

// IsAntipodeOf returns whether o is the antipode of v, i.e. v + o is exactly zero.
func (v NVector) IsAntipodeOf(o NVector) bool {
	return v.Add(o.Vec3).IsZero()
}

// GeocentricPos is an Earth-centred Earth-fixed (ECEF) cartesian position.
type GeocentricPos struct {
	X, Y, Z Length
}

// GeocentricPosFromMetres returns the position of the given vector in metres.
func GeocentricPosFromMetres(v Vec3) GeocentricPos {
	return GeocentricPos{Length(v.X), Length(v.Y), Length(v.Z)}
}

// Metres returns this position as a vector in metres.
func (p GeocentricPos) Metres() Vec3 {
	return Vec3{p.X.Metres(), p.Y.Metres(), p.Z.Metres()}
}

// RoundM rounds each coordinate to the nearest metre.
func (p GeocentricPos) RoundM() GeocentricPos {
	return GeocentricPos{p.X.RoundM(), p.Y.RoundM(), p.Z.RoundM()}
}

// RoundDM rounds each coordinate to the nearest decimetre.
func (p GeocentricPos) RoundDM() GeocentricPos {
	return GeocentricPos{p.X.RoundDM(), p.Y.RoundDM(), p.Z.RoundDM()}
}

// RoundCM rounds each coordinate to the nearest centimetre.
func (p GeocentricPos) RoundCM() GeocentricPos {
	return GeocentricPos{p.X.RoundCM(), p.Y.RoundCM(), p.Z.RoundCM()}
}

// RoundMM rounds each coordinate to the nearest millimetre.
func (p GeocentricPos) RoundMM() GeocentricPos {
	return GeocentricPos{p.X.RoundMM(), p.Y.RoundMM(), p.Z.RoundMM()}
}

// GeodeticPos is a horizontal position and a height above the surface.
type GeodeticPos struct {
	HorizontalPosition NVector
	Height             Length
}

// GeodeticPosFromDegrees returns the geodetic position at the given decimal degrees and height.
func GeodeticPosFromDegrees(latitude, longitude float64, height Length) GeodeticPos {
	return GeodeticPos{NVectorFromLatLongDegrees(latitude, longitude), height}
}

// LatLong returns the latitude and longitude of this position.
func (p GeodeticPos) LatLong() LatLong {
	return p.HorizontalPosition.ToLatLong()
}
