package figsync

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"github.com/yacobolo/figsync/internal/figma"
)

// GradientAngle is the angle written by PaintToGradientCSS. Figma's gradient
// transform is not translated back, so every gradient read from Figma comes
// out at this angle.
const GradientAngle = "45deg"

var hexPattern = regexp.MustCompile(`(?i)^#?([0-9a-f]{2})([0-9a-f]{2})([0-9a-f]{2})$`)

// HexToColor converts "#RRGGBB" (the "#" is optional) to a normalized Figma
// color. Input that is not a 6-digit hex color yields opaque black, which
// callers should read as "unparseable".
func HexToColor(hex string) figma.Color {
	m := hexPattern.FindStringSubmatch(strings.TrimSpace(hex))
	if m == nil {
		return figma.Color{A: 1}
	}
	return figma.Color{
		R: float64(hexByte(m[1])) / 255,
		G: float64(hexByte(m[2])) / 255,
		B: float64(hexByte(m[3])) / 255,
		A: 1,
	}
}

func hexByte(s string) uint8 {
	v, _ := strconv.ParseUint(s, 16, 8)
	return uint8(v)
}

// IsHexColor reports whether s is a 6-digit hex color.
func IsHexColor(s string) bool {
	return hexPattern.MatchString(strings.TrimSpace(s))
}

// ColorToCSS renders a Figma color as rgb(r,g,b), or rgba(r,g,b,a) when the
// color is not fully opaque.
func ColorToCSS(c figma.Color) string {
	r, g, b := channel(c.R), channel(c.G), channel(c.B)
	if c.A == 1 {
		return fmt.Sprintf("rgb(%d,%d,%d)", r, g, b)
	}
	alpha := math.Round(c.A*1000) / 1000
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", r, g, b, strconv.FormatFloat(alpha, 'f', -1, 64))
}

func channel(v float64) int {
	n := int(math.Round(v * 255))
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return n
}

// GradientToPaint converts a CSS gradient literal into a linear gradient
// paint. Colors and percentages are paired in order; a stop without a
// percentage is spaced evenly. The angle is ignored. A hash contributes its
// first six hex digits, so "#6366F1AA" is read as #6366F1 and "#FFF" is
// skipped. Percentages keep their fraction ("12.5%" is 0.125). A string
// without colors produces a paint with no stops.
func GradientToPaint(gradient string) figma.Paint {
	var colors []string
	var positions []float64

	lexer := css.NewLexer(parse.NewInputString(gradient))
	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			break
		}
		switch tt {
		case css.HashToken:
			if len(text) >= 7 && IsHexColor(string(text[:7])) {
				colors = append(colors, string(text[:7]))
			}
		case css.PercentageToken:
			v, err := strconv.ParseFloat(strings.TrimSuffix(string(text), "%"), 64)
			if err == nil {
				positions = append(positions, clamp01(v/100))
			}
		}
	}

	stops := make([]figma.ColorStop, 0, len(colors))
	for i, c := range colors {
		pos := 0.0
		switch {
		case i < len(positions):
			pos = positions[i]
		case len(colors) > 1:
			pos = float64(i) / float64(len(colors)-1)
		}
		stops = append(stops, figma.ColorStop{Color: HexToColor(c), Position: pos})
	}

	return figma.Paint{
		Type:              figma.PaintGradientLinear,
		GradientStops:     stops,
		GradientTransform: [][]float64{{1, 0, 0}, {0, 1, 0}},
	}
}

// PaintToGradientCSS renders a gradient paint as a linear-gradient at
// GradientAngle. A non-gradient paint or one without stops renders as "".
func PaintToGradientCSS(p figma.Paint) string {
	stops, _ := p.Stops()
	return stopsToCSS(stops)
}

func stopsToCSS(stops []figma.ColorStop) string {
	if len(stops) == 0 {
		return ""
	}
	parts := make([]string, len(stops))
	for i, stop := range stops {
		parts[i] = fmt.Sprintf("%s %d%%", ColorToCSS(stop.Color), int(math.Round(stop.Position*100)))
	}
	return "linear-gradient(" + GradientAngle + ", " + strings.Join(parts, ", ") + ")"
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
