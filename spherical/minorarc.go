package spherical

import (
	"fmt"
	"math"

	nv "github.com/ChristopherRabotin/nvector"
)

// MinorArc is the shortest path between two positions on the great circle passing by both.
// The start and end must be neither equal nor antipodal.
type MinorArc struct {
	start, end nv.NVector
	normal     nv.Vec3
}

// NewMinorArc returns the minor arc from start to end.
func NewMinorArc(start, end nv.NVector) MinorArc {
	return MinorArc{start, end, start.OrthogonalTo(end.Vec3)}
}

// Start returns the start of this minor arc.
func (ma MinorArc) Start() nv.NVector { return ma.start }

// End returns the end of this minor arc.
func (ma MinorArc) End() nv.NVector { return ma.end }

// Normal returns the unit normal of the great circle of this minor arc.
func (ma MinorArc) Normal() nv.Vec3 { return ma.normal }

// GreatCircle returns the great circle of this minor arc.
func (ma MinorArc) GreatCircle() GreatCircle { return GreatCircle{ma.normal} }

// Intersection returns the position at which this minor arc and o intersect, if any.
// Equal or opposite minor arcs do not intersect.
func (ma MinorArc) Intersection(o MinorArc) (nv.NVector, bool) {
	i := ma.normal.StableCrossUnit(o.normal)
	if i.IsZero() {
		return nv.NVector{}, false
	}
	// the candidate nearest to the start of ma.
	if ma.start.Dot(i) <= 0 {
		i = i.Neg()
	}
	if ma.contains(i) && o.contains(i) {
		return nv.NewNVector(i), true
	}
	return nv.NVector{}, false
}

// Projection returns the projection of p onto this minor arc, or false if the projection falls
// outside of it. If p is a pole of the great circle of this minor arc, the start is returned.
func (ma MinorArc) Projection(p nv.NVector) (nv.NVector, bool) {
	n2 := p.StableCrossUnit(ma.normal)
	if n2.IsZero() {
		return ma.start, true
	}
	proj := ma.normal.OrthogonalTo(n2)
	if ma.contains(proj) {
		return nv.NewNVector(proj), true
	}
	return nv.NVector{}, false
}

// ContainsPoint returns whether p is on this minor arc, end points included.
func (ma MinorArc) ContainsPoint(p nv.NVector) bool {
	return nv.EqZero(p.Dot(ma.normal)) && ma.contains(p.Vec3)
}

// contains returns whether v is between the start and the end (v is left of (normal, start) and
// right of (normal, end)). The normal is never equal or opposite to either so the plain unit cross
// product is enough.
func (ma MinorArc) contains(v nv.Vec3) bool {
	return nv.Gte(v.Dot(ma.normal.CrossUnit(ma.start.Vec3)), 0) &&
		nv.Lte(v.Dot(ma.normal.CrossUnit(ma.end.Vec3)), 0)
}

// DistanceTo returns the chord length between p and the closest position of this minor arc.
func (ma MinorArc) DistanceTo(p nv.NVector) ChordLength {
	xa := NewChordLength(p, ma.start)
	xb := NewChordLength(p, ma.end)
	// if the angle at start or end is obtuse, the closest position is the nearest end point.
	ab := NewChordLength(ma.start, ma.end)
	if math.Abs(xa.Length2()-xb.Length2()) >= ab.Length2()+nv.Epsilon {
		return minChord(xa, xb)
	}
	if proj, ok := ma.Projection(p); ok {
		return NewChordLength(p, proj)
	}
	return minChord(xa, xb)
}

// SideOf returns -1 if p is right of this minor arc, +1 if left and 0 if on its great circle.
func (ma MinorArc) SideOf(p nv.NVector) int {
	return sign(p.Dot(ma.normal))
}

// Turn returns the signed turn angle from this minor arc to o, which must start at the end of this
// minor arc: positive if turning left.
func (ma MinorArc) Turn(o MinorArc) nv.Angle {
	return nv.AngleFromRadians(AngleRadiansBetween(ma.normal, o.normal, &ma.end.Vec3))
}

// Opposite returns the minor arc from the end to the start of this minor arc.
func (ma MinorArc) Opposite() MinorArc {
	return MinorArc{ma.end, ma.start, ma.normal.Neg()}
}

func (ma MinorArc) String() string {
	return fmt.Sprintf("MinorArc[%s -> %s]", ma.start.ToLatLong(), ma.end.ToLatLong())
}
