package nvector

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Mat33 is a 3x3 matrix stored by rows.
type Mat33 struct {
	R0, R1, R2 Vec3
}

// Identity33 is the 3x3 identity matrix.
var Identity33 = Mat33{UnitX, UnitY, UnitZ}

// Mat33FromDense returns the Mat33 of a 3x3 gonum matrix.
func Mat33FromDense(m mat.Matrix) Mat33 {
	if r, c := m.Dims(); r != 3 || c != 3 {
		panic(fmt.Errorf("expected a 3x3 matrix, got %dx%d", r, c))
	}
	row := func(i int) Vec3 { return Vec3{m.At(i, 0), m.At(i, 1), m.At(i, 2)} }
	return Mat33{row(0), row(1), row(2)}
}

// Dense returns this matrix as a gonum dense matrix.
func (m Mat33) Dense() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		m.R0.X, m.R0.Y, m.R0.Z,
		m.R1.X, m.R1.Y, m.R1.Z,
		m.R2.X, m.R2.Y, m.R2.Z})
}

// At returns the element at row i, column j.
func (m Mat33) At(i, j int) float64 {
	var r Vec3
	switch i {
	case 0:
		r = m.R0
	case 1:
		r = m.R1
	case 2:
		r = m.R2
	default:
		panic(fmt.Errorf("row %d out of range", i))
	}
	switch j {
	case 0:
		return r.X
	case 1:
		return r.Y
	case 2:
		return r.Z
	default:
		panic(fmt.Errorf("column %d out of range", j))
	}
}

// Transpose returns the transpose of m.
func (m Mat33) Transpose() Mat33 {
	return Mat33{
		Vec3{m.R0.X, m.R1.X, m.R2.X},
		Vec3{m.R0.Y, m.R1.Y, m.R2.Y},
		Vec3{m.R0.Z, m.R1.Z, m.R2.Z}}
}

// Mul returns m x o.
func (m Mat33) Mul(o Mat33) Mat33 {
	var d mat.Dense
	d.Mul(m.Dense(), o.Dense())
	return Mat33FromDense(&d)
}

// MulVec multiplies m with the column vector v.
func (m Mat33) MulVec(v Vec3) Vec3 {
	return Vec3{m.R0.Dot(v), m.R1.Dot(v), m.R2.Dot(v)}
}

// R1 rotation about the 1st axis.
func R1(x Angle) Mat33 {
	s, c := x.Sincos()
	return Mat33{Vec3{1, 0, 0}, Vec3{0, c, s}, Vec3{0, -s, c}}
}

// R2 rotation about the 2nd axis.
func R2(x Angle) Mat33 {
	s, c := x.Sincos()
	return Mat33{Vec3{c, 0, -s}, Vec3{0, 1, 0}, Vec3{s, 0, c}}
}

// R3 rotation about the 3rd axis.
func R3(x Angle) Mat33 {
	s, c := x.Sincos()
	return Mat33{Vec3{c, s, 0}, Vec3{-s, c, 0}, Vec3{0, 0, 1}}
}

// XYZ2R returns the rotation matrix from three angles about new axes in the xyz order.
func XYZ2R(x, y, z Angle) Mat33 {
	sx, cx := x.Sincos()
	sy, cy := y.Sincos()
	sz, cz := z.Sincos()
	return Mat33{
		Vec3{cy * cz, -cy * sz, sy},
		Vec3{sy*sx*cz + cx*sz, -sy*sx*sz + cx*cz, -cy * sx},
		Vec3{-sy*cx*cz + sx*sz, sy*cx*sz + sx*cz, cy * cx}}
}

// ZYX2R returns the rotation matrix from three angles about new axes in the zyx order,
// i.e. yaw (z), pitch (y) and roll (x).
func ZYX2R(z, y, x Angle) Mat33 {
	sx, cx := x.Sincos()
	sy, cy := y.Sincos()
	sz, cz := z.Sincos()
	return Mat33{
		Vec3{cz * cy, -sz*cx + cz*sy*sx, sz*sx + cz*sy*cx},
		Vec3{sz * cy, cz*cx + sz*sy*sx, -cz*sx + sz*sy*cx},
		Vec3{-sy, cy * sx, cy * cx}}
}

// R2XYZ returns the angles about new axes in the xyz order from the given rotation matrix.
// y is in [-90, 90] degrees.
func R2XYZ(m Mat33) (x, y, z Angle) {
	v00, v01 := m.R0.X, m.R0.Y
	v12, v22 := m.R1.Z, m.R2.Z
	// cos(y) from four elements to average out round-off.
	cy := math.Sqrt((v00*v00 + v01*v01 + v12*v12 + v22*v22) / 2)
	x = AngleFromRadians(-math.Atan2(v12, v22))
	y = AngleFromRadians(math.Atan2(m.R0.Z, cy))
	z = AngleFromRadians(-math.Atan2(v01, v00))
	return
}

// R2ZYX returns the yaw (z), pitch (y) and roll (x) angles from the given rotation matrix.
func R2ZYX(m Mat33) (z, y, x Angle) {
	a, b, c := R2XYZ(m.Transpose())
	return -c, -b, -a
}
