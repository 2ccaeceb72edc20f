package nvector

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Angle is a signed angle with a resolution of one microarcsecond (about 0.03 mm on the Earth's surface).
// Angles from different decimal degrees which agree to the microarcsecond compare equal.
type Angle int64

// Common angles.
const (
	Microarcsecond Angle = 1
	Milliarcsecond       = 1000 * Microarcsecond
	Arcsecond            = 1000 * Milliarcsecond
	Arcminute            = 60 * Arcsecond
	Degree               = 60 * Arcminute
	QuarterCircle        = 90 * Degree
	HalfCircle           = 180 * Degree
	FullCircle           = 360 * Degree
)

const (
	µasPerRad = float64(HalfCircle) / math.Pi
	d7        = 360 // 1e-7 degree in µas
	d6        = 10 * d7
	d5        = 10 * d6
)

// AngleFromDegrees returns the angle for the given decimal degrees.
func AngleFromDegrees(dd float64) Angle {
	return Angle(math.Round(dd * float64(Degree)))
}

// AngleFromRadians returns the angle for the given radians.
func AngleFromRadians(rad float64) Angle {
	return Angle(math.Round(rad * µasPerRad))
}

// AngleFromDMS returns the angle from the given degrees, arcminutes, arcseconds and milliarcseconds.
// The sign is carried by the degrees; minutes, seconds and milliseconds overflow into the next unit.
func AngleFromDMS(degrees int, minutes, seconds, milliseconds uint) Angle {
	abs := Angle(math.Abs(float64(degrees)))*Degree + Angle(minutes)*Arcminute +
		Angle(seconds)*Arcsecond + Angle(milliseconds)*Milliarcsecond
	if degrees < 0 {
		return -abs
	}
	return abs
}

// ParseAngle parses decimal degrees (e.g. "-35.0163245" or "144°") without going through a float64.
func ParseAngle(s string) (Angle, error) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "°"))
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid angle %q: %w", s, err)
	}
	µas := d.Mul(decimal.NewFromInt(int64(Degree))).Round(0)
	if !µas.Abs().LessThanOrEqual(decimal.NewFromInt(math.MaxInt64)) {
		return 0, fmt.Errorf("angle %q out of range", s)
	}
	return Angle(µas.IntPart()), nil
}

// Degrees returns this angle in decimal degrees.
func (a Angle) Degrees() float64 {
	return float64(a) / float64(Degree)
}

// Radians returns this angle in radians.
func (a Angle) Radians() float64 {
	return float64(a) / µasPerRad
}

// Microarcseconds returns the number of microarcseconds of this angle.
func (a Angle) Microarcseconds() int64 {
	return int64(a)
}

// Arcdegrees returns the (signed) degree component of this angle.
func (a Angle) Arcdegrees() int64 {
	return int64(a / Degree)
}

// Arcminutes returns the arcminutes component of this angle.
func (a Angle) Arcminutes() int64 {
	return int64(a.Abs() % Degree / Arcminute)
}

// Arcseconds returns the arcseconds component of this angle.
func (a Angle) Arcseconds() int64 {
	return int64(a.Abs() % Arcminute / Arcsecond)
}

// Milliarcseconds returns the milliarcseconds component of this angle.
func (a Angle) Milliarcseconds() int64 {
	return int64(a.Abs() % Arcsecond / Milliarcsecond)
}

// Abs returns the absolute value of this angle.
func (a Angle) Abs() Angle {
	if a < 0 {
		return -a
	}
	return a
}

// Mul returns this angle multiplied by f, rounded to the microarcsecond.
func (a Angle) Mul(f float64) Angle {
	return Angle(math.Round(float64(a) * f))
}

// Div returns this angle divided by f, rounded to the microarcsecond.
func (a Angle) Div(f float64) Angle {
	return Angle(math.Round(float64(a) / f))
}

// Ratio returns a / o.
func (a Angle) Ratio(o Angle) float64 {
	return float64(a) / float64(o)
}

// Sincos returns the sine and cosine of this angle.
func (a Angle) Sincos() (sin, cos float64) {
	return math.Sincos(a.Radians())
}

// Normalised returns this angle normalised into [0, 360) degrees.
func (a Angle) Normalised() Angle {
	return a.NormalisedTo(FullCircle)
}

// NormalisedTo returns this angle normalised into [0, bound).
func (a Angle) NormalisedTo(bound Angle) Angle {
	r := a % bound
	if r < 0 {
		r += bound
	}
	return r
}

// RoundD5 rounds this angle to the nearest 5 decimal places of a degree.
func (a Angle) RoundD5() Angle {
	return roundTo(a, d5)
}

// RoundD6 rounds this angle to the nearest 6 decimal places of a degree.
func (a Angle) RoundD6() Angle {
	return roundTo(a, d6)
}

// RoundD7 rounds this angle to the nearest 7 decimal places of a degree.
func (a Angle) RoundD7() Angle {
	return roundTo(a, d7)
}

// roundTo rounds half away from zero to a multiple of q.
func roundTo(a, q Angle) Angle {
	if a < 0 {
		return -roundTo(-a, q)
	}
	return (a + q/2) / q * q
}

func (a Angle) String() string {
	sign := ""
	if a < 0 {
		sign = "-"
	}
	abs := a.Abs()
	return fmt.Sprintf("%s%d°%d'%d.%03d\"", sign, int64(abs/Degree), a.Arcminutes(), a.Arcseconds(), a.Milliarcseconds())
}
