// Package report renders simulation results for the terminal: summary
// lines, a per-body table, stress plots and a color legend.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/strukt-dev/strukt/internal/colormap"
	"github.com/strukt-dev/strukt/internal/stress"
	"github.com/strukt-dev/strukt/internal/structure"
	"github.com/strukt-dev/strukt/internal/support"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	failStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff0000"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff00"))
)

// Summary prints the run totals.
func Summary(w io.Writer, res *stress.Result) {
	fmt.Fprintf(w, "bodies: %d\n", res.TotalBodies)
	if res.FailedBodies > 0 {
		fmt.Fprintf(w, "failed: %s\n", failStyle.Render(fmt.Sprintf("%d", res.FailedBodies)))
	} else {
		fmt.Fprintf(w, "failed: %s\n", okStyle.Render("0"))
	}
	fmt.Fprintf(w, "max stress ratio: %.4f\n", res.MaxRatio)
}

// Table prints one row per body with its stress ratio colored by the ramp.
func Table(w io.Writer, bodies []structure.Body, res *stress.Result) {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, headerStyle.Render("idx\tshape\tmaterial\tboundary\ttype\tratio\tstatus"))

	for i := range bodies {
		bs := res.PerBody[i]
		ratioStyle := lipgloss.NewStyle().Foreground(colormap.Terminal(bs.Ratio, bs.Failed))
		status := okStyle.Render("ok")
		if bs.Failed {
			status = failStyle.Render("FAILED")
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			i,
			bodies[i].Shape,
			bodies[i].Props.Kind,
			bodies[i].Boundary,
			bs.Type,
			ratioStyle.Render(fmt.Sprintf("%.4f", bs.Ratio)),
			status,
		)
	}
	tw.Flush()
}

// Validation prints the outcome of a support check.
func Validation(w io.Writer, r support.Report) {
	if r.Valid {
		fmt.Fprintln(w, okStyle.Render("support graph ok"))
		return
	}
	fmt.Fprintf(w, "%s %v\n", failStyle.Render("floating bodies:"), r.Floating)
}

// RatioPlot draws per-body stress ratios as an ascii graph, body index on
// the x axis.
func RatioPlot(res *stress.Result) string {
	if len(res.PerBody) == 0 {
		return dimStyle.Render("(no bodies)")
	}
	data := make([]float64, len(res.PerBody))
	for i, bs := range res.PerBody {
		data[i] = bs.Ratio
	}
	return asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption("stress ratio per body index"),
	)
}

// SweepPlot draws max stress ratio against force magnitude.
func SweepPlot(magnitudes, maxRatios []float64) string {
	if len(maxRatios) == 0 {
		return dimStyle.Render("(empty sweep)")
	}
	caption := fmt.Sprintf("max stress ratio, magnitude %.2g..%.2g",
		magnitudes[0], magnitudes[len(magnitudes)-1])
	return asciigraph.Plot(maxRatios,
		asciigraph.Height(12),
		asciigraph.Width(70),
		asciigraph.Caption(caption),
	)
}

// Legend renders the stress color ramp with band boundaries.
func Legend() string {
	var sb strings.Builder
	steps := 40
	for i := 0; i <= steps; i++ {
		ratio := 1.1 * float64(i) / float64(steps)
		style := lipgloss.NewStyle().Foreground(colormap.Terminal(ratio, false))
		sb.WriteString(style.Render("█"))
	}
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render("0.0        0.3        0.6        1.0 = failure"))
	return sb.String()
}
