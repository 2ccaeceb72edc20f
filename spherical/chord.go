package spherical

import (
	"fmt"

	nv "github.com/ChristopherRabotin/nvector"
	"github.com/golang/geo/s1"
)

// ChordLength is the squared length of the chord between two positions of the unit sphere, in [0, 4],
// or -1 for the negative chord length. Comparing chord lengths is cheaper than comparing angles.
type ChordLength s1.ChordAngle

// Notable chord lengths.
const (
	NegativeChordLength = ChordLength(s1.NegativeChordAngle)
	ZeroChordLength     = ChordLength(0)
	MaxChordLength      = ChordLength(s1.StraightChordAngle)
)

// NewChordLength returns the chord length between p1 and p2.
func NewChordLength(p1, p2 nv.NVector) ChordLength {
	l2 := p1.Sub(p2.Vec3).SquaredNorm()
	if l2 > float64(MaxChordLength) {
		l2 = float64(MaxChordLength)
	}
	return ChordLength(s1.ChordAngleFromSquaredLength(l2))
}

// ChordLengthFromAngle returns the chord length subtended by the given central angle. The sign
// of the angle is ignored and angles greater than a half circle are wrapped into [0, 180].
func ChordLengthFromAngle(a nv.Angle) ChordLength {
	abs := a.Abs()
	if abs == nv.HalfCircle {
		return MaxChordLength
	}
	r := abs.NormalisedTo(nv.HalfCircle).Radians()
	return ChordLength(s1.ChordAngleFromAngle(s1.Angle(r) * s1.Radian))
}

// Length2 returns the squared length of this chord.
func (c ChordLength) Length2() float64 {
	return float64(c)
}

// Angle returns the central angle subtended by this chord, or -1 radian for the negative chord length.
func (c ChordLength) Angle() nv.Angle {
	return nv.AngleFromRadians(s1.ChordAngle(c).Angle().Radians())
}

// IsNegative returns whether this is the negative chord length.
func (c ChordLength) IsNegative() bool {
	return s1.ChordAngle(c) < 0
}

// Cmp returns -1, 0 or +1 depending on whether c is shorter than, equal to or longer than o.
func (c ChordLength) Cmp(o ChordLength) int {
	switch {
	case c < o:
		return -1
	case c > o:
		return 1
	default:
		return 0
	}
}

func (c ChordLength) String() string {
	return fmt.Sprintf("ChordLength(%g)", float64(c))
}

func minChord(a, b ChordLength) ChordLength {
	if a < b {
		return a
	}
	return b
}

func maxChord(a, b ChordLength) ChordLength {
	if a > b {
		return a
	}
	return b
}
