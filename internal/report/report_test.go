package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/strukt-dev/strukt/internal/geom"
	"github.com/strukt-dev/strukt/internal/stress"
	"github.com/strukt-dev/strukt/internal/structure"
	"github.com/strukt-dev/strukt/internal/support"
)

func sampleResult() ([]structure.Body, *stress.Result) {
	bodies := []structure.Body{
		structure.NewBox(geom.Vec3{Y: 0.5}, geom.Vec3{X: 1, Y: 1, Z: 1}),
		structure.NewBox(geom.Vec3{Y: 1.5}, geom.Vec3{X: 1, Y: 1, Z: 1}),
	}
	f := stress.Force{Origin: geom.Vec3{Y: 3}, Direction: geom.Vec3{Y: -1}, Magnitude: 20}
	return bodies, stress.NewEngine().Run(bodies, f)
}

func TestSummary(t *testing.T) {
	_, res := sampleResult()
	var buf bytes.Buffer
	Summary(&buf, res)

	out := buf.String()
	if !strings.Contains(out, "bodies: 2") {
		t.Errorf("summary missing body count: %q", out)
	}
	if !strings.Contains(out, "max stress ratio") {
		t.Errorf("summary missing max ratio: %q", out)
	}
}

func TestTable(t *testing.T) {
	bodies, res := sampleResult()
	var buf bytes.Buffer
	Table(&buf, bodies, res)

	out := buf.String()
	if !strings.Contains(out, "steel") || !strings.Contains(out, "box") {
		t.Errorf("table missing body info:\n%s", out)
	}
	// Magnitude 20 overloads the stack; at least one FAILED row expected.
	if !strings.Contains(out, "FAILED") {
		t.Errorf("table missing failure marker:\n%s", out)
	}
}

func TestValidation(t *testing.T) {
	var buf bytes.Buffer
	Validation(&buf, support.Report{Valid: true})
	if !strings.Contains(buf.String(), "ok") {
		t.Errorf("valid output = %q", buf.String())
	}

	buf.Reset()
	Validation(&buf, support.Report{Valid: false, Floating: []int{1, 3}})
	if !strings.Contains(buf.String(), "[1 3]") {
		t.Errorf("invalid output = %q", buf.String())
	}
}

func TestRatioPlot(t *testing.T) {
	_, res := sampleResult()
	if out := RatioPlot(res); !strings.Contains(out, "stress ratio per body index") {
		t.Errorf("plot missing caption:\n%s", out)
	}

	empty := &stress.Result{}
	if out := RatioPlot(empty); !strings.Contains(out, "no bodies") {
		t.Errorf("empty plot = %q", out)
	}
}

func TestSweepPlot(t *testing.T) {
	mags := []float64{1, 2, 3}
	ratios := []float64{0.1, 0.2, 0.3}
	if out := SweepPlot(mags, ratios); !strings.Contains(out, "max stress ratio") {
		t.Errorf("sweep plot missing caption:\n%s", out)
	}
	if out := SweepPlot(nil, nil); !strings.Contains(out, "empty sweep") {
		t.Errorf("empty sweep = %q", out)
	}
}

func TestLegend(t *testing.T) {
	out := Legend()
	if !strings.Contains(out, "failure") {
		t.Errorf("legend missing failure marker:\n%s", out)
	}
}

func TestElevationSVG(t *testing.T) {
	bodies, res := sampleResult()
	svg := ElevationSVG(bodies, res, 640, 480)

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing xml header")
	}
	if got := strings.Count(svg, "<rect"); got != 3 { // background + 2 bodies
		t.Errorf("expected 3 rects, got %d", got)
	}
	if !strings.Contains(svg, "</svg>") {
		t.Error("unterminated svg")
	}
}

func TestElevationSVGEmpty(t *testing.T) {
	svg := ElevationSVG(nil, nil, 0, 0)
	if !strings.Contains(svg, "<svg") || !strings.Contains(svg, "</svg>") {
		t.Errorf("empty svg malformed:\n%s", svg)
	}
}
