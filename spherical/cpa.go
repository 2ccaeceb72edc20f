package spherical

import (
	"fmt"
	"math"
	"time"

	nv "github.com/ChristopherRabotin/nvector"
	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Vehicle is a vehicle travelling along a great circle at constant speed.
type Vehicle struct {
	Position nv.NVector
	Bearing  nv.Angle // initial bearing
	Speed    nv.Speed
}

// course returns the unit vector orthogonal to the position of the vehicle, pointing in its
// direction of travel.
func (v Vehicle) course() nv.Vec3 {
	ll := v.Position.ToLatLong()
	r := nv.R3(-ll.Longitude).Mul(nv.R2(ll.Latitude)).Mul(nv.R1(v.Bearing))
	return r.MulVec(nv.UnitZ)
}

func (v Vehicle) String() string {
	return fmt.Sprintf("Vehicle[%s, bearing=%.3f°, speed=%s]", v.Position.ToLatLong(), v.Bearing.Degrees(), v.Speed)
}

// PositionAt returns the position of v after travelling for d.
func (s Sphere) PositionAt(v Vehicle, d time.Duration) nv.NVector {
	return s.Destination(v.Position, v.Bearing, v.Speed.For(d))
}

// CPA is the closest point of approach between two vehicles.
type CPA struct {
	Time       time.Duration // from now
	Position1  nv.NVector    // of the first vehicle
	Position2  nv.NVector    // of the second vehicle
	Separation nv.Length
}

func (c CPA) String() string {
	return fmt.Sprintf("CPA[in %s, %s / %s, separation=%s]", c.Time, c.Position1.ToLatLong(), c.Position2.ToLatLong(), c.Separation.RoundMM())
}

// CPASolver computes the closest point of approach between two vehicles with a Newton-Raphson
// iteration on the derivative of the cosine of their angular separation.
type CPASolver struct {
	Sphere        Sphere
	MaxIterations int
	Tolerance     time.Duration
	logger        kitlog.Logger
}

// NewCPASolver returns a solver iterating at most 50 times to a tolerance of 1ms.
// A nil logger disables logging.
func NewCPASolver(s Sphere, logger kitlog.Logger) *CPASolver {
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	return &CPASolver{s, 50, time.Millisecond, kitlog.With(logger, "subsys", "cpa")}
}

// TimeToCPA returns the time to the closest point of approach between v1 and v2 on the given
// sphere, or false if the vehicles are moving apart or if the solver did not converge.
func TimeToCPA(v1, v2 Vehicle, s Sphere) (time.Duration, bool) {
	return NewCPASolver(s, nil).TimeToCPA(v1, v2)
}

// TimeToCPA returns the time to the closest point of approach between v1 and v2, or false if the
// vehicles are moving apart or if the iteration did not converge.
func (cs *CPASolver) TimeToCPA(v1, v2 Vehicle) (time.Duration, bool) {
	r := cs.Sphere.Radius.Metres()
	p1, p2 := v1.Position.Vec3, v2.Position.Vec3
	c1, c2 := v1.course(), v2.course()
	// angular speeds (rad/s).
	w1 := v1.Speed.MetresPerSecond() / r
	w2 := v2.Speed.MetresPerSecond() / r

	a := -(w1*p1.Dot(c2) + w2*p2.Dot(c1))
	b := w1*c1.Dot(p2) + w2*c2.Dot(p1)
	c := -(w1*p1.Dot(p2) - w2*c2.Dot(c1))
	d := w1*c1.Dot(c2) - w2*p2.Dot(p1)

	tol := cs.Tolerance.Seconds()
	t := 0.0
	for i := 0; i < cs.MaxIterations; i++ {
		s1, k1 := math.Sincos(w1 * t)
		s2, k2 := math.Sincos(w2 * t)
		f := a*s1*s2 + b*k1*k2 + c*s1*k2 + d*k1*s2
		df := a*(w1*k1*s2+w2*s1*k2) - b*(w1*s1*k2+w2*k1*s2) +
			c*(w1*k1*k2-w2*s1*s2) + d*(-w1*s1*s2+w2*k1*k2)
		if df == 0 {
			level.Debug(cs.logger).Log("status", "zero derivative", "iteration", i, "t(s)", t)
			return 0, false
		}
		dt := f / df
		t -= dt
		level.Debug(cs.logger).Log("iteration", i, "t(s)", t, "Δt(s)", dt)
		if math.Abs(dt) < tol {
			if t < 0 {
				level.Debug(cs.logger).Log("status", "receding", "t(s)", t)
				return 0, false
			}
			return time.Duration(math.Round(t * float64(time.Second))), true
		}
	}
	level.Debug(cs.logger).Log("status", "no convergence", "iterations", cs.MaxIterations)
	return 0, false
}

// CPA returns the closest point of approach between v1 and v2, or false if there is none.
func (cs *CPASolver) CPA(v1, v2 Vehicle) (CPA, bool) {
	t, ok := cs.TimeToCPA(v1, v2)
	if !ok {
		return CPA{}, false
	}
	q1 := cs.Sphere.PositionAt(v1, t)
	q2 := cs.Sphere.PositionAt(v2, t)
	return CPA{t, q1, q2, cs.Sphere.Distance(q1, q2)}, true
}
