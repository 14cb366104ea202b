// Package colormap turns stress ratios into colors for von Mises-style
// overlays. The mapping is deterministic and total: any ratio in [0, +inf)
// and either failure flag yields a defined color, and failure is always
// pure red regardless of ratio.
package colormap

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Ramp anchors. Named so a renderer can restyle the ramp without touching
// the band logic.
var (
	Green       = colorful.Color{R: 0, G: 1, B: 0}
	YellowGreen = colorful.Color{R: 0.6, G: 1, B: 0}
	Yellow      = colorful.Color{R: 1, G: 1, B: 0}
	Orange      = colorful.Color{R: 1, G: 0.55, B: 0}
	Red         = colorful.Color{R: 1, G: 0, B: 0}
)

// Band boundaries of the ramp.
const (
	lowBand  = 0.3
	midBand  = 0.6
	failBand = 1.0
)

// ForRatio maps a stress ratio and failure flag to an RGB color.
func ForRatio(ratio float64, failed bool) colorful.Color {
	if math.IsNaN(ratio) || ratio < 0 {
		ratio = 0
	}
	switch {
	case failed || ratio >= failBand:
		return Red
	case ratio < lowBand:
		return Green.BlendRgb(YellowGreen, ratio/lowBand)
	case ratio < midBand:
		return YellowGreen.BlendRgb(Yellow, (ratio-lowBand)/(midBand-lowBand))
	default:
		return Yellow.BlendRgb(Orange, (ratio-midBand)/(failBand-midBand))
	}
}

// Hex returns the ramp color as "#rrggbb", as used by SVG fills.
func Hex(ratio float64, failed bool) string {
	return ForRatio(ratio, failed).Hex()
}

// Terminal returns a lipgloss color for CLI rendering.
func Terminal(ratio float64, failed bool) lipgloss.Color {
	return lipgloss.Color(Hex(ratio, failed))
}
