package spherical

import (
	"fmt"
	"math"

	nv "github.com/ChristopherRabotin/nvector"
)

// Sphere is a spherical model of a celestial body.
type Sphere struct {
	Radius nv.Length
}

// Predefined spheres.
var (
	Earth = Sphere{nv.EarthSphere.Radius()}
	Moon  = Sphere{nv.MoonSphere.Radius()}
)

// SphereOf returns the sphere of the given surface: the sphere itself or the mean radius sphere
// of an ellipsoid.
func SphereOf(s nv.Surface) Sphere {
	return Sphere{s.Radius()}
}

// Surface returns this sphere as a surface.
func (s Sphere) Surface() nv.Surface {
	return nv.NewSphere(s.Radius)
}

// Angle returns the (unsigned) central angle between p1 and p2.
func Angle(p1, p2 nv.NVector) nv.Angle {
	return nv.AngleFromRadians(AngleRadiansBetween(p1.Vec3, p2.Vec3, nil))
}

// Distance returns the surface distance between p1 and p2.
func (s Sphere) Distance(p1, p2 nv.NVector) nv.Length {
	return s.Radius.Arc(Angle(p1, p2))
}

// InitialBearing returns the bearing from p1 to p2 at p1, in [0, 360). The bearing is zero if p1
// and p2 are equal or antipodal.
func InitialBearing(p1, p2 nv.NVector) nv.Angle {
	if !IsGreatCircle(p1, p2) {
		return 0
	}
	return nv.AngleFromRadians(initialBearingRadians(p1, p2)).Normalised()
}

// FinalBearing returns the bearing from p1 to p2 at p2, in [0, 360). The bearing is zero if p1 and
// p2 are equal or antipodal.
func FinalBearing(p1, p2 nv.NVector) nv.Angle {
	if !IsGreatCircle(p1, p2) {
		return 0
	}
	return nv.AngleFromRadians(initialBearingRadians(p2, p1) + math.Pi).Normalised()
}

func initialBearingRadians(p1, p2 nv.NVector) float64 {
	// great circle through p1 and p2.
	gc1 := p1.Cross(p2.Vec3)
	// great circle through p1 and the north pole, i.e. -easting(p1).
	gc2 := nv.NegUnitY
	if math.Abs(p1.Z) != 1 {
		gc2 = nv.Vec3{X: p1.Y, Y: -p1.X}
	}
	return AngleRadiansBetween(gc1, gc2, &p1.Vec3)
}

// Destination returns the position reached after travelling the given distance from p0 along the
// great circle of the given initial bearing.
func (s Sphere) Destination(p0 nv.NVector, bearing nv.Angle, distance nv.Length) nv.NVector {
	if distance == 0 {
		return p0
	}
	ed := Easting(p0.Vec3)
	nd := p0.Cross(ed)
	ta := distance.Metres() / s.Radius.Metres()
	sin, cos := bearing.Sincos()
	dir := nd.Scale(cos).Add(ed.Scale(sin))
	return nv.NewNVector(p0.Scale(math.Cos(ta)).Add(dir.Scale(math.Sin(ta))))
}

// Interpolated returns the position at fraction f along the minor arc from p1 to p2, or false if f
// is outside [0, 1] or if p1 and p2 are antipodal.
func Interpolated(p1, p2 nv.NVector, f float64) (nv.NVector, bool) {
	switch {
	case f < 0 || f > 1 || p1.IsAntipodeOf(p2):
		return nv.NVector{}, false
	case f == 0:
		return p1, true
	case f == 1:
		return p2, true
	}
	a := f * AngleRadiansBetween(p1.Vec3, p2.Vec3, nil)
	dir := p1.StableCross(p2.Vec3).CrossUnit(p1.Vec3)
	return nv.NewNVector(p1.Scale(math.Cos(a)).Add(dir.Scale(math.Sin(a)))), true
}

// PositionOnGreatCircle returns the position at the given angle from p1 on the great circle going
// from p1 to p2. p1 is returned if p1 and p2 are equal or antipodal.
func PositionOnGreatCircle(p1, p2 nv.NVector, a nv.Angle) nv.NVector {
	dir := p1.StableCross(p2.Vec3).CrossUnit(p1.Vec3)
	sin, cos := a.Sincos()
	return nv.NewNVector(p1.Scale(cos).Add(dir.Scale(sin)))
}

// CrossTrackDistance returns the signed distance from p to the great circle gc: negative if p is
// left of gc, positive if right.
func (s Sphere) CrossTrackDistance(p nv.NVector, gc GreatCircle) nv.Length {
	a := AngleRadiansBetween(gc.normal, p.Vec3, nil)
	return nv.Length((a - math.Pi/2) * s.Radius.Metres())
}

// AlongTrackDistance returns the signed distance from the start of ma to the projection of p onto
// the great circle of ma: positive in the direction of ma.
func (s Sphere) AlongTrackDistance(p nv.NVector, ma MinorArc) nv.Length {
	n := ma.normal
	a := AngleRadiansBetween(ma.start.Vec3, n.Cross(p.Vec3).Cross(n), &n)
	return nv.Length(a * s.Radius.Metres())
}

// MeanPosition returns the geographical mean of the given positions, or false if the list is empty
// or contains antipodal positions.
func MeanPosition(ps []nv.NVector) (nv.NVector, bool) {
	switch {
	case len(ps) == 0 || containsAntipodal(ps):
		return nv.NVector{}, false
	case len(ps) == 1:
		return ps[0], true
	}
	vs := make([]nv.Vec3, len(ps))
	for i, p := range ps {
		vs[i] = p.Vec3
	}
	return nv.NewNVector(nv.Mean(vs...)), true
}

// TriangleMeanPosition returns the geographical mean of a, b and c.
func TriangleMeanPosition(a, b, c nv.NVector) (nv.NVector, bool) {
	return MeanPosition([]nv.NVector{a, b, c})
}

func containsAntipodal(ps []nv.NVector) bool {
	for _, p := range ps {
		a := p.Antipode()
		for _, o := range ps {
			if o == a {
				return true
			}
		}
	}
	return false
}

func (s Sphere) String() string {
	return fmt.Sprintf("Sphere[r=%s]", s.Radius)
}
