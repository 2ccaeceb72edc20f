package nvector

import (
	"fmt"
	"math"
)

// Orientation is the orientation of the axes of a local frame.
type Orientation uint8

const (
	// OrientationNED is x = north (or forward), y = east (or right), z = down.
	OrientationNED Orientation = iota
	// OrientationENU is x = east, y = north, z = up.
	OrientationENU
)

func (o Orientation) String() string {
	if o == OrientationENU {
		return "ENU"
	}
	return "NED"
}

// LocalPosition is a position relative to the origin of a local frame.
type LocalPosition struct {
	X, Y, Z     Length
	Orientation Orientation
}

// LocalPositionFromAER returns the local position from the given azimuth (from the x axis of a
// NED frame, or from north in an ENU frame), elevation above the horizon and slant range.
func LocalPositionFromAER(azimuth, elevation Angle, slantRange Length, o Orientation) LocalPosition {
	saz, caz := azimuth.Sincos()
	sel, cel := elevation.Sincos()
	east := slantRange * Length(saz*cel)
	north := slantRange * Length(caz*cel)
	up := slantRange * Length(sel)
	if o == OrientationENU {
		return LocalPosition{east, north, up, o}
	}
	return LocalPosition{north, east, -up, o}
}

func localPositionFromMetres(v Vec3, o Orientation) LocalPosition {
	return LocalPosition{Length(v.X), Length(v.Y), Length(v.Z), o}
}

// Metres returns this position as a vector in metres.
func (p LocalPosition) Metres() Vec3 {
	return Vec3{p.X.Metres(), p.Y.Metres(), p.Z.Metres()}
}

// Azimuth returns the angle clockwise from the x axis (NED) or north (ENU) to this position, in [0, 360).
func (p LocalPosition) Azimuth() Angle {
	e, n := p.Y, p.X
	if p.Orientation == OrientationENU {
		e, n = p.X, p.Y
	}
	return AngleFromRadians(math.Atan2(e.Metres(), n.Metres())).Normalised()
}

// Elevation returns the angle from the horizontal plane to this position: positive above the horizon.
// The elevation of the origin is 0.
func (p LocalPosition) Elevation() Angle {
	r := p.SlantRange()
	if r == 0 {
		return 0
	}
	up := -p.Z
	if p.Orientation == OrientationENU {
		up = p.Z
	}
	return AngleFromRadians(math.Asin(float64(up / r)))
}

// SlantRange returns the distance from the origin to this position.
func (p LocalPosition) SlantRange() Length {
	return Length(p.Metres().Norm())
}

// RoundMM rounds each coordinate to the nearest millimetre.
func (p LocalPosition) RoundMM() LocalPosition {
	return LocalPosition{p.X.RoundMM(), p.Y.RoundMM(), p.Z.RoundMM(), p.Orientation}
}

func (p LocalPosition) String() string {
	return fmt.Sprintf("%s[%s, %s, %s]", p.Orientation, p.X, p.Y, p.Z)
}

// LocalFrame is a cartesian frame tangent to a surface at an origin.
type LocalFrame struct {
	origin      Vec3  // ECEF metres
	dirRM       Mat33 // frame -> earth
	invRM       Mat33 // earth -> frame
	surface     Surface
	orientation Orientation
}

func newLocalFrame(origin GeodeticPos, dirRM Mat33, surface Surface, o Orientation) LocalFrame {
	return LocalFrame{
		origin:      surface.GeodeticToGeocentric(origin).Metres(),
		dirRM:       dirRM,
		invRM:       dirRM.Transpose(),
		surface:     surface,
		orientation: o,
	}
}

// nedRM returns the rotation matrix whose rows are north, east and down at the given n-vector.
func nedRM(v NVector) Mat33 {
	down := v.Neg()
	east := UnitZ.OrthogonalTo(v.Vec3)
	north := east.Cross(down)
	return Mat33{north, east, down}
}

// NewNEDFrame returns the North-East-Down frame at the given origin.
func NewNEDFrame(origin GeodeticPos, surface Surface) LocalFrame {
	return newLocalFrame(origin, nedRM(origin.HorizontalPosition).Transpose(), surface, OrientationNED)
}

// NewENUFrame returns the East-North-Up frame at the given origin.
func NewENUFrame(origin GeodeticPos, surface Surface) LocalFrame {
	up := origin.HorizontalPosition.Vec3
	east := UnitZ.OrthogonalTo(up)
	north := up.Cross(east)
	inv := Mat33{east, north, up}
	return newLocalFrame(origin, inv.Transpose(), surface, OrientationENU)
}

// NewBodyFrame returns the body frame (x forward, y right, z down) of a vehicle at the given origin
// with the given yaw, pitch and roll.
func NewBodyFrame(yaw, pitch, roll Angle, origin GeodeticPos, surface Surface) LocalFrame {
	rEN := nedRM(origin.HorizontalPosition).Transpose()
	rNB := ZYX2R(yaw, pitch, roll)
	return newLocalFrame(origin, rEN.Mul(rNB), surface, OrientationNED)
}

// NewLocalLevelFrame returns the local level frame at the given origin: its z axis points down and
// its x axis is rotated by the wander azimuth from north.
func NewLocalLevelFrame(wanderAzimuth Angle, origin GeodeticPos, surface Surface) LocalFrame {
	ll := origin.HorizontalPosition.ToLatLong()
	r := XYZ2R(ll.Longitude, -ll.Latitude, wanderAzimuth)
	rEE := Mat33{NegUnitZ, UnitY, UnitX}
	return newLocalFrame(origin, rEE.Mul(r), surface, OrientationNED)
}

// Orientation returns the orientation of the axes of this frame.
func (f LocalFrame) Orientation() Orientation { return f.orientation }

// Surface returns the surface of this frame.
func (f LocalFrame) Surface() Surface { return f.surface }

// Origin returns the origin of this frame.
func (f LocalFrame) Origin() GeocentricPos { return GeocentricPosFromMetres(f.origin) }

// GeodeticToLocal returns the position of p in this frame.
func (f LocalFrame) GeodeticToLocal(p GeodeticPos) LocalPosition {
	de := f.surface.GeodeticToGeocentric(p).Metres().Sub(f.origin)
	return localPositionFromMetres(f.invRM.MulVec(de), f.orientation)
}

// LocalToGeodetic returns the geodetic position of p, a position in this frame.
func (f LocalFrame) LocalToGeodetic(p LocalPosition) GeodeticPos {
	d := p.Metres()
	if p.Orientation != f.orientation {
		d = Vec3{d.Y, d.X, -d.Z}
	}
	v := f.origin.Add(f.dirRM.MulVec(d))
	return f.surface.GeocentricToGeodetic(GeocentricPosFromMetres(v))
}
