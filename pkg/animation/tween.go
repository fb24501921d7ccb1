package animation

import (
	"strings"
	"time"

	"github.com/go-drift/reveal/pkg/geometry"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// LerpOffset linearly interpolates between two Offset values.
func LerpOffset(a, b geometry.Offset, t float64) geometry.Offset {
	return geometry.Offset{
		X: LerpFloat64(a.X, b.X, t),
		Y: LerpFloat64(a.Y, b.Y, t),
	}
}

// easings maps the names accepted by EaseByName to gween easing functions.
var easings = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"in-quad":      ease.InQuad,
	"out-quad":     ease.OutQuad,
	"in-out-quad":  ease.InOutQuad,
	"in-cubic":     ease.InCubic,
	"out-cubic":    ease.OutCubic,
	"in-out-cubic": ease.InOutCubic,
	"in-sine":      ease.InSine,
	"out-sine":     ease.OutSine,
	"in-out-sine":  ease.InOutSine,
}

// EaseByName returns the easing function registered under name, falling
// back to out-cubic for unknown or empty names.
func EaseByName(name string) ease.TweenFunc {
	if fn, ok := easings[strings.ToLower(strings.TrimSpace(name))]; ok {
		return fn
	}
	return ease.OutCubic
}

// KnownEase reports whether name is a registered easing.
func KnownEase(name string) bool {
	_, ok := easings[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// Fade animates a scalar toward a target over a fixed duration. It is used
// for the mask's presence value, which eases between 0 and 1 as the mask
// deactivates and activates.
type Fade struct {
	value  float64
	target float64
	easeFn ease.TweenFunc
	tween  *gween.Tween
}

// NewFade returns a fade resting at value.
func NewFade(value float64, easeFn ease.TweenFunc) *Fade {
	if easeFn == nil {
		easeFn = ease.OutCubic
	}
	return &Fade{value: value, target: value, easeFn: easeFn}
}

// SetTarget starts moving toward target. A non-positive duration jumps
// straight there.
func (f *Fade) SetTarget(target float64, duration time.Duration) {
	f.target = target
	if duration <= 0 || f.value == target {
		f.value = target
		f.tween = nil
		return
	}
	f.tween = gween.New(float32(f.value), float32(target), float32(duration.Seconds()), f.easeFn)
}

// Update advances the fade by dt and reports whether it has settled.
func (f *Fade) Update(dt time.Duration) (float64, bool) {
	if f.tween == nil {
		return f.value, true
	}
	v, done := f.tween.Update(float32(dt.Seconds()))
	f.value = float64(v)
	if done {
		f.value = f.target
		f.tween = nil
	}
	return f.value, done
}

// Value returns the current value.
func (f *Fade) Value() float64 {
	return f.value
}

// Target returns the value the fade is heading to.
func (f *Fade) Target() float64 {
	return f.target
}

// Settled reports whether no tween is in progress.
func (f *Fade) Settled() bool {
	return f.tween == nil
}
