package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"sync"
	"time"

	"github.com/ChristopherRabotin/nvector"
	"github.com/ChristopherRabotin/nvector/spherical"
	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// reporter writes the results of a scenario. The first write error is kept in err and stops
// any further output.
type reporter struct {
	w      io.Writer
	cfg    nvector.Config
	sphere spherical.Sphere
	logger kitlog.Logger
	err    error
}

func newReporter(w io.Writer, cfg nvector.Config, logger kitlog.Logger) *reporter {
	return &reporter{w: w, cfg: cfg, sphere: spherical.SphereOf(cfg.Model.Surface), logger: logger}
}

func (r *reporter) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

func (r *reporter) deg(a nvector.Angle) string {
	return strconv.FormatFloat(a.Degrees(), 'f', r.cfg.Precision, 64)
}

func (r *reporter) latLong(ll nvector.LatLong) string {
	return fmt.Sprintf("(%s, %s)", r.deg(ll.Latitude), r.deg(r.cfg.Model.Longitude(ll)))
}

func (r *reporter) places(ps []Place) {
	if len(ps) == 0 {
		return
	}
	r.printf("# positions (%s)\n", r.cfg.Model)
	for _, p := range ps {
		ecef := r.cfg.Model.Surface.GeodeticToGeocentric(p.Pos).RoundMM()
		r.printf("%-16s %s h=%s ecef=[%s, %s, %s]\n", p.Name, r.latLong(p.Pos.LatLong()), p.Pos.Height, ecef.X, ecef.Y, ecef.Z)
	}
}

func (r *reporter) legs(ls []Leg) {
	if len(ls) == 0 {
		return
	}
	r.printf("# legs (%s)\n", r.sphere)
	for _, l := range ls {
		p1, p2 := l.From.Pos.HorizontalPosition, l.To.Pos.HorizontalPosition
		r.printf("%s -> %s: distance=%s initial=%s final=%s", l.From.Name, l.To.Name,
			r.sphere.Distance(p1, p2).RoundM(), r.deg(spherical.InitialBearing(p1, p2)), r.deg(spherical.FinalBearing(p1, p2)))
		if mid, ok := spherical.Interpolated(p1, p2, 0.5); ok {
			r.printf(" midpoint=%s", r.latLong(mid.ToLatLong()))
		}
		r.printf("\n")
	}
}

type encounterResult struct {
	cpa spherical.CPA
	ok  bool
}

// encounters solves each encounter on its own goroutine, running at most numCPUs at once.
func (r *reporter) encounters(es []Encounter, horizon time.Duration, numCPUs int) {
	if len(es) == 0 {
		return
	}
	results := make([]encounterResult, len(es))
	cpuChan := make(chan bool, numCPUs)
	var wg sync.WaitGroup
	for i, e := range es {
		wg.Add(1)
		cpuChan <- true
		go func(i int, e Encounter) {
			defer wg.Done()
			defer func() { <-cpuChan }()
			logger := kitlog.With(r.logger, "v1", e.Names[0], "v2", e.Names[1])
			cpa, ok := spherical.NewCPASolver(r.sphere, logger).CPA(e.Vehicles[0], e.Vehicles[1])
			results[i] = encounterResult{cpa, ok}
		}(i, e)
	}
	wg.Wait()

	r.printf("# closest points of approach (%s)\n", r.sphere)
	for i, e := range es {
		res := results[i]
		switch {
		case !res.ok:
			r.printf("%s / %s: none\n", e.Names[0], e.Names[1])
		case horizon > 0 && res.cpa.Time > horizon:
			r.printf("%s / %s: beyond %s\n", e.Names[0], e.Names[1], horizon)
		default:
			r.printf("%s / %s: in %s at %s / %s, separation=%s\n", e.Names[0], e.Names[1], res.cpa.Time.Round(time.Second),
				r.latLong(res.cpa.Position1.ToLatLong()), r.latLong(res.cpa.Position2.ToLatLong()), res.cpa.Separation.RoundM())
		}
	}
}

func (r *reporter) loop(vs []Place, probes []Place) {
	if len(vs) == 0 {
		return
	}
	ns := make([]nvector.NVector, len(vs))
	for i, p := range vs {
		ns[i] = p.Pos.HorizontalPosition
	}
	l := spherical.NewLoop(ns)
	if l.IsEmpty() {
		level.Warn(r.logger).Log("msg", "degenerate loop", "vertices", len(vs))
		return
	}
	r.printf("# loop of %d vertices\n", l.NumVertices())
	r.printf("clockwise=%t convex=%t simple=%t\n", spherical.IsLoopClockwise(ns), l.IsConvex(), l.IsSimple())
	b := l.Bound()
	r.printf("bound: south-west=%s north-east=%s\n", r.latLong(b.SouthWest()), r.latLong(b.NorthEast()))
	r.printf("area: %.3f km² (excess %s)\n", l.Area(r.sphere)/1e6, r.deg(l.SphericalExcess()))
	ts := l.Triangulate()
	r.printf("triangulation: %d triangles\n", len(ts))
	for _, p := range probes {
		n := p.Pos.HorizontalPosition
		r.printf("%-16s inside=%t on-edge=%t\n", p.Name, l.ContainsPoint(n), l.AnyEdgeContainsPoint(n))
	}
}

func (r *reporter) sample(n int, seed uint64) {
	if n == 0 {
		return
	}
	s := nvector.NewNVectorSampler(rand.NewPCG(seed, seed))
	ps := s.SampleN(n)
	r.printf("# %d random positions (seed %d)\n", n, seed)
	if m, ok := spherical.MeanPosition(ps); ok {
		r.printf("mean: %s\n", r.latLong(m.ToLatLong()))
	} else {
		r.printf("mean: undefined\n")
	}
	var maxD nvector.Length
	for i := 1; i < len(ps); i++ {
		if d := r.sphere.Distance(ps[i-1], ps[i]); d > maxD {
			maxD = d
		}
	}
	r.printf("longest hop: %s\n", maxD.RoundM())
}
