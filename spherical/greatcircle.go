package spherical

import (
	"fmt"

	nv "github.com/ChristopherRabotin/nvector"
)

// GreatCircle is the intersection of the sphere with a plane passing through its centre, described
// by the unit normal of that plane.
type GreatCircle struct {
	normal nv.Vec3
}

// NewGreatCircle returns the great circle passing by p1 and then p2. If p1 and p2 are equal or
// antipodal, an arbitrary great circle passing by p1 is returned.
func NewGreatCircle(p1, p2 nv.NVector) GreatCircle {
	return GreatCircle{p1.OrthogonalTo(p2.Vec3)}
}

// GreatCircleFromHeading returns the great circle passing by p with the given bearing at p.
func GreatCircleFromHeading(p nv.NVector, bearing nv.Angle) GreatCircle {
	e := Easting(p.Vec3)
	n := p.Cross(e)
	sin, cos := bearing.Sincos()
	se := e.Scale(cos / e.Norm())
	sn := n.Scale(sin / n.Norm())
	return GreatCircle{sn.Sub(se)}
}

// Normal returns the unit normal of this great circle.
func (gc GreatCircle) Normal() nv.Vec3 {
	return gc.normal
}

// Projection returns the position on this great circle closest to p. If p is a pole of the great
// circle (i.e. all positions are equidistant), an arbitrary position of the great circle is returned.
func (gc GreatCircle) Projection(p nv.NVector) nv.NVector {
	n2 := p.StableCrossUnit(gc.normal)
	if n2.IsZero() {
		return nv.NewNVector(p.Orthogonal())
	}
	return nv.NewNVector(gc.normal.OrthogonalTo(n2))
}

// Intersections returns the two antipodal positions where this great circle and o intersect, or
// false if both great circles are the same (or opposite).
func (gc GreatCircle) Intersections(o GreatCircle) (nv.NVector, nv.NVector, bool) {
	i := gc.normal.StableCrossUnit(o.normal)
	if i.IsZero() {
		return nv.NVector{}, nv.NVector{}, false
	}
	return nv.NVector{Vec3: i}, nv.NVector{Vec3: i.Neg()}, true
}

// ContainsPoint returns whether p is on this great circle.
func (gc GreatCircle) ContainsPoint(p nv.NVector) bool {
	return nv.EqZero(p.Dot(gc.normal))
}

func (gc GreatCircle) String() string {
	return fmt.Sprintf("GreatCircle[normal=%s]", gc.normal)
}
