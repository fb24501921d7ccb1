package mask

import (
	"math"
	"time"

	"github.com/go-drift/reveal/pkg/animation"
	"github.com/go-drift/reveal/pkg/errors"
	"github.com/go-drift/reveal/pkg/geometry"
)

// Variant selects the gradient shape.
type Variant string

const (
	// VariantRadial reveals an ellipse around the mask center.
	VariantRadial Variant = "radial"
	// VariantLinear reveals a band across the container at Angle.
	VariantLinear Variant = "linear"
)

// Activation controls when the mask is considered active.
type Activation string

const (
	// ActivationAlways keeps the mask active for its whole lifetime.
	ActivationAlways Activation = "always"
	// ActivationHover activates while the pointer is over the container.
	ActivationHover Activation = "hover"
	// ActivationFocus activates while the container has focus.
	ActivationFocus Activation = "focus"
	// ActivationPointer behaves like ActivationHover.
	ActivationPointer Activation = "pointer"
)

// AnimationMode controls how the rendered center follows the pointer.
type AnimationMode string

const (
	// AnimationLerp eases the rendered center toward the pointer every frame.
	AnimationLerp AnimationMode = "lerp"
	// AnimationNone moves the rendered center with the pointer immediately.
	AnimationNone AnimationMode = "none"
)

// Config is the per-render configuration snapshot of a mask. Start from
// DefaultConfig; the zero Config is normalized to the same enum defaults but
// has zero opacity, zero radius and a mask centered at the origin.
type Config struct {
	// Variant is the gradient shape. Default radial.
	Variant Variant
	// Angle is the linear gradient angle: a number of degrees or a CSS
	// angle string such as "0.25turn". Default 90.
	Angle any

	// WithCursorMask makes the mask follow the pointer. When false the
	// mask sits at the static X/Y percentages.
	WithCursorMask bool
	// TrackPointerOnDocument listens for pointer movement on the whole
	// document instead of the container. Clamping is bypassed.
	TrackPointerOnDocument bool

	// X and Y are the static center as percentages of the container. Default 50.
	X float64
	Y float64

	// Radius is the circle radius. RadiusX and RadiusY override it per axis.
	// Default 240px.
	Radius  geometry.Length
	RadiusX geometry.Length
	RadiusY geometry.Length

	// TransparencyStart and TransparencyEnd are the gradient stops in
	// percent. Defaults 0 and 100.
	TransparencyStart float64
	TransparencyEnd   float64
	// Feather, when set, overrides both stops: start = 100 - feather%,
	// end = 100. Values up to 1 are fractions.
	Feather *float64

	// Opacity of the masked content. Default 1.
	Opacity float64
	// Easing is the fraction of the remaining distance covered per frame
	// in lerp mode. Default 0.12.
	Easing float64
	// Invert hides the center and shows the outside.
	Invert bool

	// OffsetX and OffsetY shift the tracked point, in pixels.
	OffsetX float64
	OffsetY float64

	// ClampToBounds keeps the ellipse inside the container when possible.
	ClampToBounds bool
	// ClampPadding is extra spacing kept from the edges when clamping.
	ClampPadding float64

	// RecenterOnResize moves the mask back to the container center when
	// the container is resized.
	RecenterOnResize bool
	// RecenterOnChildrenChange does the same when the container contents change.
	RecenterOnChildrenChange bool

	// Activation selects the activation mode. Default always.
	Activation Activation
	// Active, when non-nil, overrides the activation mode.
	Active *bool
	// OnActiveChange is called on every activation transition.
	OnActiveChange func(active bool)

	// Animation selects how the rendered center follows the pointer. Default lerp.
	Animation AnimationMode

	// FadeDuration eases the Presence output between 0 and 1 when the mask
	// deactivates or activates. Zero switches instantly.
	FadeDuration time.Duration
	// FadeEase names the easing curve for Presence. Default out-cubic.
	FadeEase string
}

// DefaultConfig returns the configuration used when a caller supplies nothing.
func DefaultConfig() Config {
	return Config{
		Variant:           VariantRadial,
		Angle:             90,
		X:                 50,
		Y:                 50,
		Radius:            geometry.Px(240),
		TransparencyStart: 0,
		TransparencyEnd:   100,
		Opacity:           1,
		Easing:            0.12,
		Activation:        ActivationAlways,
		Animation:         AnimationLerp,
	}
}

// Bool returns a pointer to b, for Config.Active.
func Bool(b bool) *bool { return &b }

// Float returns a pointer to f, for Config.Feather.
func Float(f float64) *float64 { return &f }

// Validate reports configuration values outside their allowed sets. The
// engine itself accepts any Config and falls back to defaults; Validate is
// for loaders that want to reject bad input early.
func (c Config) Validate() error {
	const op = "mask.Config.Validate"
	fail := func(field string, value any, reason string) error {
		return errors.New(op, errors.KindConfig, &errors.ValidationError{Field: field, Value: value, Reason: reason})
	}

	switch c.Variant {
	case "", VariantRadial, VariantLinear:
	default:
		return fail("variant", c.Variant, "want radial or linear")
	}
	switch c.Activation {
	case "", ActivationAlways, ActivationHover, ActivationFocus, ActivationPointer:
	default:
		return fail("activation", c.Activation, "want always, hover, focus or pointer")
	}
	switch c.Animation {
	case "", AnimationLerp, AnimationNone:
	default:
		return fail("animation", c.Animation, "want lerp or none")
	}
	for name, l := range map[string]geometry.Length{"maskRadius": c.Radius, "maskRadiusX": c.RadiusX, "maskRadiusY": c.RadiusY} {
		if px, ok := l.Pixels(); ok && px < 0 {
			return fail(name, px, "must not be negative")
		}
	}
	if c.Easing < 0 || c.Easing > 1 {
		return fail("easing", c.Easing, "must be within [0, 1]")
	}
	if c.ClampPadding < 0 {
		return fail("clampPadding", c.ClampPadding, "must not be negative")
	}
	if c.FadeEase != "" && !animation.KnownEase(c.FadeEase) {
		return fail("fadeEase", c.FadeEase, "unknown easing")
	}
	if c.Angle != nil && math.IsNaN(geometry.ParseAngleDegrees(c.Angle, math.NaN())) {
		return fail("maskAngle", c.Angle, "want a number or an angle string")
	}
	return nil
}

// normalized replaces unknown enum values with their defaults and keeps
// the easing factor within [0, 1].
func (c Config) normalized() Config {
	switch c.Variant {
	case VariantRadial, VariantLinear:
	default:
		c.Variant = VariantRadial
	}
	switch c.Activation {
	case ActivationAlways, ActivationHover, ActivationFocus, ActivationPointer:
	default:
		c.Activation = ActivationAlways
	}
	switch c.Animation {
	case AnimationLerp, AnimationNone:
	default:
		c.Animation = AnimationLerp
	}
	c.Easing = geometry.Clamp(c.Easing, 0, 1)
	return c
}

// tracking reports whether the mask follows the pointer.
func (c Config) tracking() bool {
	return c.WithCursorMask
}

// clampsPointer reports whether pointer positions are clamped to the container.
func (c Config) clampsPointer() bool {
	return c.ClampToBounds && !c.TrackPointerOnDocument
}

// clampRadii returns the pixel radii used for clamping. CSS string radii
// have no pixel size here and count as zero.
func (c Config) clampRadii() (rx, ry float64) {
	scalar, _ := c.Radius.Pixels()
	rx, ok := c.RadiusX.Pixels()
	if !ok {
		rx = scalar
	}
	ry, ok = c.RadiusY.Pixels()
	if !ok {
		ry = scalar
	}
	return rx, ry
}

// stops returns the transparency stops after applying Feather.
func (c Config) stops() (start, end float64) {
	if c.Feather != nil {
		return 100 - geometry.NormalizeFeather(*c.Feather), 100
	}
	return c.TransparencyStart, c.TransparencyEnd
}
