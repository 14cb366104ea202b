package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/strukt-dev/strukt/internal/colormap"
	"github.com/strukt-dev/strukt/internal/stress"
	"github.com/strukt-dev/strukt/internal/structure"
)

// ElevationSVG renders the structure projected onto the XY plane, each
// body filled with its stress color. The ground plane sits at the bottom
// edge. Cylinders draw as their bounding rectangles; this is an overlay
// sketch, not a CAD view.
func ElevationSVG(bodies []structure.Body, res *stress.Result, width, height int) string {
	if width <= 0 {
		width = 640
	}
	if height <= 0 {
		height = 480
	}

	minX, maxX := math.Inf(1), math.Inf(-1)
	maxY := 0.0
	for i := range bodies {
		lo, hi := bodies[i].FootprintX()
		minX = math.Min(minX, lo)
		maxX = math.Max(maxX, hi)
		maxY = math.Max(maxY, bodies[i].Top())
	}
	if len(bodies) == 0 || maxX <= minX {
		minX, maxX, maxY = -1, 1, 1
	}
	if maxY <= 0 {
		maxY = 1
	}

	const margin = 20.0
	scale := math.Min(
		(float64(width)-2*margin)/(maxX-minX),
		(float64(height)-2*margin)/maxY,
	)

	toX := func(x float64) float64 { return margin + (x-minX)*scale }
	toY := func(y float64) float64 { return float64(height) - margin - y*scale }

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	// Ground line.
	sb.WriteString(fmt.Sprintf(`<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="#666666" stroke-width="2"/>
`, toY(0), width, toY(0)))

	for i := range bodies {
		b := &bodies[i]
		lo, hi := b.FootprintX()
		fill := colormap.Hex(0, false)
		if res != nil && i < len(res.PerBody) {
			fill = colormap.Hex(res.PerBody[i].Ratio, res.PerBody[i].Failed)
		}
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="#222222"/>
`, toX(lo), toY(b.Top()), (hi-lo)*scale, (b.Top()-b.Bottom())*scale, fill))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}
