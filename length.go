package nvector

import (
	"fmt"
	"math"
	"time"
)

// Length is a distance stored in metres.
type Length float64

// Common lengths.
const (
	Metre        Length = 1
	Kilometre    Length = 1000
	NauticalMile Length = 1852
	Foot         Length = 0.3048
)

// Metres returns this length in metres.
func (l Length) Metres() float64 { return float64(l) }

// Kilometres returns this length in kilometres.
func (l Length) Kilometres() float64 { return float64(l / Kilometre) }

// NauticalMiles returns this length in nautical miles.
func (l Length) NauticalMiles() float64 { return float64(l / NauticalMile) }

// Feet returns this length in feet.
func (l Length) Feet() float64 { return float64(l / Foot) }

// Abs returns the absolute value of this length.
func (l Length) Abs() Length { return Length(math.Abs(float64(l))) }

// Arc returns the length of the arc subtended by the given angle on a circle of radius l.
func (l Length) Arc(a Angle) Length {
	return Length(float64(l) * a.Radians())
}

// Per returns the speed needed to travel this length during d.
func (l Length) Per(d time.Duration) Speed {
	return Speed(float64(l) / d.Seconds())
}

// RoundM rounds this length to the nearest metre.
func (l Length) RoundM() Length { return l.round(1) }

// RoundDM rounds this length to the nearest decimetre.
func (l Length) RoundDM() Length { return l.round(10) }

// RoundCM rounds this length to the nearest centimetre.
func (l Length) RoundCM() Length { return l.round(100) }

// RoundMM rounds this length to the nearest millimetre.
func (l Length) RoundMM() Length { return l.round(1000) }

func (l Length) round(scale float64) Length {
	return Length(math.Round(float64(l)*scale) / scale)
}

func (l Length) String() string {
	return fmt.Sprintf("%gm", float64(l))
}

// Speed is stored in metres per second.
type Speed float64

// Common speeds.
const (
	MetrePerSecond   Speed = 1
	KilometrePerHour Speed = 1000.0 / 3600.0
	Knot             Speed = 1852.0 / 3600.0
)

// MetresPerSecond returns this speed in metres per second.
func (s Speed) MetresPerSecond() float64 { return float64(s) }

// KilometresPerHour returns this speed in kilometres per hour.
func (s Speed) KilometresPerHour() float64 { return float64(s / KilometrePerHour) }

// Knots returns this speed in knots.
func (s Speed) Knots() float64 { return float64(s / Knot) }

// For returns the length travelled at this speed during d.
func (s Speed) For(d time.Duration) Length {
	return Length(float64(s) * d.Seconds())
}

func (s Speed) String() string {
	return fmt.Sprintf("%gm/s", float64(s))
}
