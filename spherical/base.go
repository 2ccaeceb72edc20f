// Package spherical implements navigation and region algorithms on a spherical model of a celestial body.
// All positions are n-vectors; latitudes and longitudes are only used at the boundaries.
package spherical

import (
	"math"

	nv "github.com/ChristopherRabotin/nvector"
)

// AngleRadiansBetween returns the angle in radians between v1 and v2. If vn is not nil the angle is
// signed: positive if v1 to v2 is clockwise looking along vn, in [-π, π], otherwise it is in [0, π].
func AngleRadiansBetween(v1, v2 nv.Vec3, vn *nv.Vec3) float64 {
	p := v1.Cross(v2)
	sin := p.Norm()
	if vn != nil && p.Dot(*vn) < 0 {
		sin = -sin
	}
	return math.Atan2(sin, v1.Dot(v2))
}

// ExactSide returns the dot product of v0 and the unit vector orthogonal to both v1 and v2.
func ExactSide(v0, v1, v2 nv.Vec3) float64 {
	return v0.Dot(v1.OrthogonalTo(v2))
}

// Side returns which side of the great circle from p1 to p2 p0 is: -1 if on the right, +1 if on the
// left and 0 if on the great circle. When p1 and p2 are equal or antipodal, an arbitrary great circle
// through p1 is chosen.
func Side(p0, p1, p2 nv.NVector) int {
	return sign(ExactSide(p0.Vec3, p1.Vec3, p2.Vec3))
}

func sign(s float64) int {
	switch {
	case nv.EqZero(s):
		return 0
	case s < 0:
		return -1
	default:
		return 1
	}
}

// Easting returns the unit vector pointing east at v. At the poles, east is the y axis.
func Easting(v nv.Vec3) nv.Vec3 {
	if math.Abs(v.Z) == 1 {
		return nv.UnitY
	}
	return nv.NewUnitVec3(-v.Y, v.X, 0)
}

// Turn returns the signed turn angle at b when travelling from a to c: positive if turning left,
// negative if turning right and zero if a, b and c are on the same great circle.
func Turn(a, b, c nv.NVector) nv.Angle {
	n1 := a.OrthogonalTo(b.Vec3)
	n2 := b.OrthogonalTo(c.Vec3)
	return nv.AngleFromRadians(AngleRadiansBetween(n1, n2, &b.Vec3))
}

// IsGreatCircle returns whether a unique great circle passes through p1 and p2: they are neither
// equal nor antipodal.
func IsGreatCircle(p1, p2 nv.NVector) bool {
	return p1 != p2 && !p1.IsAntipodeOf(p2)
}
