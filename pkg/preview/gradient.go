package preview

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-drift/reveal/pkg/geometry"
	"github.com/go-drift/reveal/pkg/mask"
)

// Shape describes the gradient variant.
type Shape int

const (
	// ShapeRadial reveals an ellipse around the center.
	ShapeRadial Shape = iota
	// ShapeLinear reveals a band through the center, perpendicular to the
	// gradient angle.
	ShapeLinear
)

// String returns a human-readable representation of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeRadial:
		return "radial"
	case ShapeLinear:
		return "linear"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// Stop defines an alpha stop within a gradient. Position is a fraction of
// the radius and may exceed 1.
type Stop struct {
	Position float64
	Alpha    float64
}

// Gradient is the alpha field of a mask in container pixels.
type Gradient struct {
	Shape  Shape
	Center geometry.Offset
	// RadiusX and RadiusY are the ellipse semi-axes of a radial gradient.
	RadiusX float64
	RadiusY float64
	// Angle is the direction of a linear gradient in CSS degrees and
	// HalfWidth the distance from the center at which position 1 lies.
	Angle     float64
	HalfWidth float64
	Stops     []Stop
	Invert    bool
	Opacity   float64
	// Presence blends between no mask (0) and the full gradient (1).
	Presence float64
}

// GradientFromVars builds the gradient a rendering layer would draw for v.
// CSS radii in px, rem or em are resolved with remPx; any other unit uses
// fallbackRadius.
func GradientFromVars(v mask.Vars, remPx, fallbackRadius float64) *Gradient {
	g := &Gradient{
		Center:   centerOf(v),
		Angle:    v.AngleDegrees,
		Stops:    stopsOf(v.TransparencyStart, v.TransparencyEnd),
		Invert:   v.Invert,
		Opacity:  v.Opacity,
		Presence: v.Presence,
	}
	if v.Variant == mask.VariantLinear {
		g.Shape = ShapeLinear
		g.HalfWidth = resolveLength(v.Radius, remPx, fallbackRadius)
	} else {
		g.Shape = ShapeRadial
		g.RadiusX = resolveLength(v.RadiusX, remPx, fallbackRadius)
		g.RadiusY = resolveLength(v.RadiusY, remPx, fallbackRadius)
	}
	return g
}

// IsValid reports whether the gradient has usable stops and a non-zero
// extent.
func (g *Gradient) IsValid() bool {
	if g == nil || len(g.Stops) < 2 {
		return false
	}
	switch g.Shape {
	case ShapeRadial:
		return g.RadiusX > 0 && g.RadiusY > 0
	case ShapeLinear:
		return g.HalfWidth > 0
	}
	return false
}

// AlphaAt returns the visibility of the content at (x, y), from 0 (hidden)
// to 1 (fully shown).
func (g *Gradient) AlphaAt(x, y float64) float64 {
	a := 0.0
	if g.IsValid() {
		a = alphaAt(g.Stops, g.position(x, y))
	}
	if g.Invert {
		a = 1 - a
	}
	a *= g.Opacity
	return 1 + (a-1)*geometry.Clamp(g.Presence, 0, 1)
}

// position is the gradient coordinate of (x, y): 0 at the center, 1 on the
// ellipse or at the band edge.
func (g *Gradient) position(x, y float64) float64 {
	dx, dy := x-g.Center.X, y-g.Center.Y
	if g.Shape == ShapeLinear {
		theta := g.Angle * math.Pi / 180
		proj := dx*math.Sin(theta) - dy*math.Cos(theta)
		return math.Abs(proj) / g.HalfWidth
	}
	nx, ny := dx/g.RadiusX, dy/g.RadiusY
	return math.Hypot(nx, ny)
}

// alphaAt interpolates the stops at t. Stops are ordered by position.
func alphaAt(stops []Stop, t float64) float64 {
	if t <= stops[0].Position {
		return stops[0].Alpha
	}
	for i := 1; i < len(stops); i++ {
		lo, hi := stops[i-1], stops[i]
		if t > hi.Position {
			continue
		}
		span := hi.Position - lo.Position
		if span <= 0 {
			return hi.Alpha
		}
		return lo.Alpha + (hi.Alpha-lo.Alpha)*(t-lo.Position)/span
	}
	return stops[len(stops)-1].Alpha
}

// stopsOf converts the percentage stops into a fully visible core fading
// out between start and end. A stop placed before its predecessor moves up
// to it, as in CSS.
func stopsOf(startPct, endPct float64) []Stop {
	start := math.Max(startPct/100, 0)
	end := math.Max(endPct/100, start)
	return []Stop{
		{Position: 0, Alpha: 1},
		{Position: start, Alpha: 1},
		{Position: end, Alpha: 0},
	}
}

func centerOf(v mask.Vars) geometry.Offset {
	if v.Unit == mask.UnitPercent {
		return geometry.Offset{
			X: v.Size.Width * v.X / 100,
			Y: v.Size.Height * v.Y / 100,
		}
	}
	return geometry.Offset{X: v.X, Y: v.Y}
}

func resolveLength(l geometry.Length, remPx, fallback float64) float64 {
	if px, ok := l.Pixels(); ok {
		return px
	}
	s := strings.TrimSpace(l.CSS())
	for _, u := range []struct {
		suffix string
		scale  float64
	}{
		{"px", 1},
		{"rem", remPx},
		{"em", remPx},
	} {
		if num, ok := strings.CutSuffix(s, u.suffix); ok {
			if f, err := strconv.ParseFloat(strings.TrimSpace(num), 64); err == nil {
				return f * u.scale
			}
		}
	}
	return fallback
}
