package spherical

import (
	"fmt"
	"math"

	nv "github.com/ChristopherRabotin/nvector"
)

// Cap is the region of the sphere cut off by a plane: all positions within an angular radius of a centre.
type Cap struct {
	centre nv.NVector
	radius ChordLength
}

// Notable caps.
var (
	EmptyCap = Cap{nv.NVector{Vec3: nv.UnitZ}, NegativeChordLength}
	FullCap  = Cap{nv.NVector{Vec3: nv.UnitZ}, MaxChordLength}
)

// CapFromCentreAndRadius returns the cap of the given centre and angular radius.
func CapFromCentreAndRadius(centre nv.NVector, radius nv.Angle) Cap {
	return Cap{centre, ChordLengthFromAngle(radius)}
}

// CapFromCentreAndBoundaryPoint returns the cap of the given centre whose boundary passes by p.
func CapFromCentreAndBoundaryPoint(centre, p nv.NVector) Cap {
	return Cap{centre, NewChordLength(centre, p)}
}

// CapFromTriangle returns the smallest cap whose boundary passes by a, b and c.
func CapFromTriangle(a, b, c nv.NVector) Cap {
	// the centre is obtained from the anti-clockwise triangle.
	v1, v2, v3 := a.Vec3, b.Vec3, c.Vec3
	if Side(a, b, c) < 0 {
		v2, v3 = v3, v2
	}
	e1 := v2.Sub(v1)
	e2 := v3.Sub(v1)
	centre := nv.NewNVector(e1.OrthogonalTo(e2))
	// all chord lengths are equal in theory.
	radius := maxChord(NewChordLength(a, centre), maxChord(NewChordLength(b, centre), NewChordLength(c, centre)))
	return Cap{centre, radius}
}

// Centre returns the centre of this cap.
func (c Cap) Centre() nv.NVector { return c.centre }

// Radius returns the angular radius of this cap, or -1 radian if empty.
func (c Cap) Radius() nv.Angle { return c.radius.Angle() }

// ChordRadius returns the radius of this cap as a chord length.
func (c Cap) ChordRadius() ChordLength { return c.radius }

// IsEmpty returns whether this cap contains no position.
func (c Cap) IsEmpty() bool { return c.radius == NegativeChordLength }

// IsFull returns whether this cap contains all positions.
func (c Cap) IsFull() bool { return c.radius == MaxChordLength }

// Complement returns the cap containing all positions not in this cap. The boundary belongs to both.
func (c Cap) Complement() Cap {
	switch {
	case c.IsEmpty():
		return FullCap
	case c.IsFull():
		return EmptyCap
	}
	return Cap{c.centre.Antipode(), MaxChordLength - c.radius}
}

// ContainsPoint returns whether p is inside this cap or on its boundary.
func (c Cap) ContainsPoint(p nv.NVector) bool {
	return NewChordLength(c.centre, p) <= c.radius
}

// InteriorContainsPoint returns whether p is strictly inside this cap.
func (c Cap) InteriorContainsPoint(p nv.NVector) bool {
	return NewChordLength(c.centre, p) < c.radius
}

// ContainsCap returns whether o is entirely inside this cap.
func (c Cap) ContainsCap(o Cap) bool {
	if c.IsFull() || o.IsEmpty() {
		return true
	}
	return c.radius.Length2() >= NewChordLength(c.centre, o.centre).Length2()+o.radius.Length2()
}

// Union returns the smallest cap containing this cap and o.
func (c Cap) Union(o Cap) Cap {
	if c.radius < o.radius {
		return o.Union(c)
	}
	if c.IsFull() || o.IsEmpty() {
		return c
	}
	if c.ContainsCap(o.Complement()) || o.ContainsCap(c.Complement()) {
		return FullCap
	}
	r1, r2 := c.Radius(), o.Radius()
	d := Angle(c.centre, o.centre)
	if r1 >= d+r2 {
		return c
	}
	ur := (d + r1 + r2).Mul(0.5)
	if ur >= nv.HalfCircle {
		return FullCap
	}
	a := (d - r1 + r2).Mul(0.5)
	return Cap{PositionOnGreatCircle(c.centre, o.centre, a), ChordLengthFromAngle(ur)}
}

// Boundary returns n (at least 3) positions evenly spaced on the boundary of this cap, or nothing
// if this cap is empty or full.
func (c Cap) Boundary(n int) []nv.NVector {
	if c.IsEmpty() || c.IsFull() {
		return nil
	}
	if n < 3 {
		n = 3
	}
	rm, z := math.Sincos(c.Radius().Radians())

	ll := c.centre.ToLatLong()
	// rotates from the north pole to the centre.
	sy, cy := (nv.QuarterCircle - ll.Latitude).Sincos()
	ry := nv.Mat33{R0: nv.Vec3{X: cy, Z: sy}, R1: nv.UnitY, R2: nv.Vec3{X: -sy, Z: cy}}
	sz, cz := ll.Longitude.Sincos()
	rz := nv.Mat33{R0: nv.Vec3{X: cz, Y: -sz}, R1: nv.Vec3{X: sz, Y: cz}, R2: nv.UnitZ}

	res := make([]nv.NVector, n)
	inc := 2 * math.Pi / float64(n)
	for i := range res {
		sa, ca := math.Sincos(float64(i) * inc)
		np := nv.Vec3{X: -rm * ca, Y: rm * sa, Z: z}
		res[i] = nv.NewNVector(rz.MulVec(ry.MulVec(np)))
	}
	return res
}

func (c Cap) String() string {
	switch {
	case c.IsEmpty():
		return "Cap[empty]"
	case c.IsFull():
		return "Cap[full]"
	}
	return fmt.Sprintf("Cap[centre=%s, radius=%.7f°]", c.centre.ToLatLong(), c.Radius().Degrees())
}
