package nvector

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats/scalar"
)

// Epsilon is the difference between 1 and the next representable float64.
const Epsilon = 2.220446049250313e-16

// Eq returns whether l and r are equal within Epsilon, either absolutely or relatively.
func Eq(l, r float64) bool {
	return scalar.EqualWithinAbsOrRel(l, r, Epsilon, Epsilon)
}

// EqZero returns whether v is zero within Epsilon.
func EqZero(v float64) bool {
	return Eq(v, 0)
}

// Gte returns whether l is greater than or equal to r (within Epsilon).
func Gte(l, r float64) bool {
	return l > r || Eq(l, r)
}

// Lte returns whether l is less than or equal to r (within Epsilon).
func Lte(l, r float64) bool {
	return l < r || Eq(l, r)
}

// Vec3 is a 3-dimensional vector, not necessarily of unit length.
type Vec3 struct {
	X, Y, Z float64
}

// Axes and zero vector.
var (
	UnitX    = Vec3{1, 0, 0}
	UnitY    = Vec3{0, 1, 0}
	UnitZ    = Vec3{0, 0, 1}
	NegUnitX = Vec3{-1, 0, 0}
	NegUnitY = Vec3{0, -1, 0}
	NegUnitZ = Vec3{0, 0, -1}
	ZeroVec3 = Vec3{}
)

// NewUnitVec3 returns the unit vector of (x, y, z), or the zero vector if all components are zero.
func NewUnitVec3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}.Unit()
}

// Mean returns the unit length vector of the sum of all given vectors.
func Mean(vs ...Vec3) Vec3 {
	var sum r3.Vector
	for _, v := range vs {
		sum = sum.Add(r3.Vector(v))
	}
	return Vec3(sum).Unit()
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3(r3.Vector(v).Add(r3.Vector(o))) }

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3(r3.Vector(v).Sub(r3.Vector(o))) }

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3(r3.Vector(v).Mul(s)) }

// Neg returns -v.
func (v Vec3) Neg() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 { return r3.Vector(v).Dot(r3.Vector(o)) }

// Cross returns the cross product of v and o.
func (v Vec3) Cross(o Vec3) Vec3 { return Vec3(r3.Vector(v).Cross(r3.Vector(o))) }

// CrossUnit returns the unit vector of the cross product of v and o.
func (v Vec3) CrossUnit(o Vec3) Vec3 { return v.Cross(o).Unit() }

// Norm returns the Euclidean norm of v.
func (v Vec3) Norm() float64 { return r3.Vector(v).Norm() }

// SquaredNorm returns the dot product of v with itself.
func (v Vec3) SquaredNorm() float64 { return r3.Vector(v).Norm2() }

// Unit returns the unit vector of v, or the zero vector if v is the zero vector.
func (v Vec3) Unit() Vec3 { return Vec3(r3.Vector(v).Normalize()) }

// IsZero returns whether all components of v are exactly zero.
func (v Vec3) IsZero() bool { return v == ZeroVec3 }

// StableCross returns (o + v) x (o - v): twice v x o, computed without catastrophic
// cancellation when v and o are nearly parallel or anti-parallel unit vectors.
func (v Vec3) StableCross(o Vec3) Vec3 {
	return o.Add(v).Cross(o.Sub(v))
}

// StableCrossUnit returns the unit vector of StableCross.
func (v Vec3) StableCrossUnit(o Vec3) Vec3 {
	return v.StableCross(o).Unit()
}

// Orthogonal returns a unit vector orthogonal to v, obtained by crossing v with the axis
// least aligned with it.
func (v Vec3) Orthogonal() Vec3 {
	ax, ay, az := math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)
	var tmp Vec3
	switch {
	case ax > ay && ax > az:
		tmp = UnitZ
	case ax > ay:
		tmp = UnitY
	case ay > az:
		tmp = UnitX
	default:
		tmp = UnitY
	}
	return v.CrossUnit(tmp)
}

// OrthogonalTo returns a unit vector orthogonal to both v and o.
// If v and o are equal or opposite, any unit vector orthogonal to v is returned.
func (v Vec3) OrthogonalTo(o Vec3) Vec3 {
	if c := v.StableCrossUnit(o); !c.IsZero() {
		return c
	}
	return v.Orthogonal()
}

// Equal returns whether each component of v equals the same component of o within Epsilon.
func (v Vec3) Equal(o Vec3) bool {
	return Eq(v.X, o.X) && Eq(v.Y, o.Y) && Eq(v.Z, o.Z)
}

// MulMat returns the row vector v multiplied by m, i.e. the transpose of m multiplied by v.
func (v Vec3) MulMat(m Mat33) Vec3 {
	return m.Transpose().MulVec(v)
}

func (v Vec3) String() string {
	return fmt.Sprintf("[%v, %v, %v]", v.X, v.Y, v.Z)
}
