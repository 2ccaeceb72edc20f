package spherical

import (
	"bytes"
	"strings"
	"testing"
	"time"

	nv "github.com/ChristopherRabotin/nvector"
	kitlog "github.com/go-kit/log"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestTimeToCPA(t *testing.T) {
	v1 := Vehicle{llDeg(20, -60), nv.AngleFromDegrees(10), 15 * nv.Knot}
	v2 := Vehicle{llDeg(34, -50), nv.AngleFromDegrees(220), 300 * nv.Knot}
	d, ok := TimeToCPA(v1, v2, Earth)
	if !ok {
		t.Fatal("expected a closest point of approach")
	}
	if !scalar.EqualWithinAbs(d.Seconds(), 11396.14, 0.01) {
		t.Fatalf("time to CPA: %s", d)
	}
}

func TestTimeToCPAHeadOn(t *testing.T) {
	v1 := Vehicle{llDeg(0, 0), nv.AngleFromDegrees(90), 10 * nv.Knot}
	v2 := Vehicle{llDeg(0, 1), nv.AngleFromDegrees(270), 10 * nv.Knot}
	cs := NewCPASolver(Earth, nil)
	cpa, ok := cs.CPA(v1, v2)
	if !ok {
		t.Fatal("expected a closest point of approach")
	}
	if !scalar.EqualWithinAbs(cpa.Time.Seconds(), 10807.284, 0.01) {
		t.Fatalf("time to CPA: %s", cpa.Time)
	}
	if cpa.Separation > 0.1 {
		t.Fatalf("vehicles should meet: %s", cpa)
	}
	if d := Earth.Distance(llDeg(0, 0.5), cpa.Position1); d > 0.1 {
		t.Fatalf("vehicles should meet half way: %s", cpa)
	}
}

func TestTimeToCPAReceding(t *testing.T) {
	v1 := Vehicle{llDeg(0, 0), nv.AngleFromDegrees(270), 10 * nv.Knot}
	v2 := Vehicle{llDeg(0, 1), nv.AngleFromDegrees(90), 10 * nv.Knot}
	if d, ok := TimeToCPA(v1, v2, Earth); ok {
		t.Fatalf("receding vehicles have no CPA, got %s", d)
	}
	if _, ok := NewCPASolver(Earth, nil).CPA(v1, v2); ok {
		t.Fatal("receding vehicles have no CPA")
	}
}

func TestCPASolver(t *testing.T) {
	var buf bytes.Buffer
	cs := NewCPASolver(Earth, kitlog.NewLogfmtLogger(&buf))
	v1 := Vehicle{llDeg(20, -60), nv.AngleFromDegrees(10), 15 * nv.Knot}
	v2 := Vehicle{llDeg(34, -50), nv.AngleFromDegrees(220), 300 * nv.Knot}
	cpa, ok := cs.CPA(v1, v2)
	if !ok {
		t.Fatal("expected a closest point of approach")
	}
	if !scalar.EqualWithinAbs(cpa.Separation.Metres(), 124231.575, 0.05) {
		t.Fatalf("separation: %s", cpa.Separation)
	}
	if d := Earth.Distance(Earth.PositionAt(v1, cpa.Time), cpa.Position1); d > 1e-3 {
		t.Fatalf("position of the first vehicle is %s off", d)
	}
	if !strings.Contains(buf.String(), "subsys=cpa") {
		t.Fatalf("expected solver logs, got %q", buf.String())
	}

	cs.MaxIterations = 1
	cs.Tolerance = time.Nanosecond
	if _, ok := cs.TimeToCPA(v1, v2); ok {
		t.Fatal("solver should not converge in one iteration")
	}
}
