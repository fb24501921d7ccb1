package mask

import (
	"strconv"

	"github.com/go-drift/reveal/pkg/geometry"
)

// Unit is the unit of the mask center coordinates.
type Unit string

const (
	// UnitPixels is used while the mask follows the pointer.
	UnitPixels Unit = "px"
	// UnitPercent is used for static masks.
	UnitPercent Unit = "%"
)

// Vars is the set of values a rendering layer needs to draw the mask for
// the current frame.
type Vars struct {
	// X and Y are the mask center in Unit.
	X    float64
	Y    float64
	Unit Unit

	// Radius is the scalar radius; RadiusX and RadiusY fall back to it.
	Radius  geometry.Length
	RadiusX geometry.Length
	RadiusY geometry.Length

	// Angle is the linear gradient angle as a CSS value and AngleDegrees
	// its numeric reading (90 when the string cannot be read).
	Angle        string
	AngleDegrees float64
	// LinearCenter is the position of the tracked point along the linear
	// gradient, in percent.
	LinearCenter float64

	// TransparencyStart and TransparencyEnd are the gradient stops in percent.
	TransparencyStart float64
	TransparencyEnd   float64
	Opacity           float64

	WithCursor bool
	Active     bool
	Invert     bool
	Variant    Variant

	// Presence eases between 0 and 1 as the mask deactivates and activates.
	Presence float64

	// Size is the container size the values were computed against.
	Size geometry.Size
}

// Vars computes the output for the current state. Before Mount the
// container measures as zero, which yields a center at the origin for
// tracking masks and a linear center of 50.
func (e *Engine) Vars() Vars {
	cfg := e.cfg
	size := e.bounds.Size()
	start, end := cfg.stops()
	angle := geometry.ParseAngleDegrees(cfg.Angle, 90)

	v := Vars{
		Radius:            cfg.Radius,
		RadiusX:           cfg.RadiusX.Or(cfg.Radius),
		RadiusY:           cfg.RadiusY.Or(cfg.Radius),
		Angle:             geometry.FormatAngle(cfg.Angle),
		AngleDegrees:      angle,
		TransparencyStart: start,
		TransparencyEnd:   end,
		Opacity:           cfg.Opacity,
		WithCursor:        cfg.tracking(),
		Active:            e.activation.Active(),
		Invert:            cfg.Invert,
		Variant:           cfg.Variant,
		Presence:          e.fade.Value(),
		Size:              size,
	}

	var point geometry.Offset
	if cfg.tracking() {
		point = e.smoothed
		v.X, v.Y, v.Unit = e.smoothed.X, e.smoothed.Y, UnitPixels
	} else {
		point = e.staticPoint()
		v.X, v.Y, v.Unit = cfg.X, cfg.Y, UnitPercent
	}
	v.LinearCenter = geometry.LinearCenterPercent(point.X, point.Y, size.Width, size.Height, angle)
	return v
}

// Style variable names emitted by CSS.
const (
	VarX                 = "--mask-x"
	VarY                 = "--mask-y"
	VarRadialRadius      = "--mask-radial-radius"
	VarRadialRadiusX     = "--mask-radial-radius-x"
	VarRadialRadiusY     = "--mask-radial-radius-y"
	VarLinearRadius      = "--mask-linear-radius"
	VarAngle             = "--mask-angle"
	VarLinearCenter      = "--mask-linear-center"
	VarTransparencyStart = "--mask-transparency-start"
	VarTransparencyEnd   = "--mask-transparency-end"
	VarOpacity           = "--mask-opacity"
	VarPresence          = "--mask-presence"
)

// CSS renders the values as CSS custom properties. Unset radii are omitted.
func (v Vars) CSS() map[string]string {
	css := map[string]string{
		VarX:                 geometry.FormatNumber(v.X) + string(v.Unit),
		VarY:                 geometry.FormatNumber(v.Y) + string(v.Unit),
		VarAngle:             v.Angle,
		VarLinearCenter:      geometry.FormatNumber(v.LinearCenter) + "%",
		VarTransparencyStart: geometry.FormatNumber(v.TransparencyStart) + "%",
		VarTransparencyEnd:   geometry.FormatNumber(v.TransparencyEnd) + "%",
		VarOpacity:           geometry.FormatNumber(v.Opacity),
		VarPresence:          geometry.FormatNumber(v.Presence),
	}
	setLength := func(name string, l geometry.Length) {
		if l.IsSet() {
			css[name] = l.CSS()
		}
	}
	setLength(VarRadialRadius, v.Radius)
	setLength(VarRadialRadiusX, v.RadiusX)
	setLength(VarRadialRadiusY, v.RadiusY)
	setLength(VarLinearRadius, v.Radius)
	return css
}

// Attrs renders the state flags as data attributes.
func (v Vars) Attrs() map[string]string {
	return map[string]string{
		"data-with-cursor": strconv.FormatBool(v.WithCursor),
		"data-active":      strconv.FormatBool(v.Active),
		"data-invert":      strconv.FormatBool(v.Invert),
		"data-variant":     string(v.Variant),
	}
}
