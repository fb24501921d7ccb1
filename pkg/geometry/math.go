package geometry

import (
	"math"
	"strconv"
	"strings"
)

// Clamp restricts value to [min, max].
//
// When the range is inverted (max < min) the midpoint of the two bounds is
// returned. This happens when a mask is larger than its container and there
// is no position that keeps it fully inside.
func Clamp(value, min, max float64) float64 {
	if max < min {
		return (min + max) / 2
	}
	return math.Min(math.Max(value, min), max)
}

// ParseAngleDegrees resolves an angle given as a number or a string.
//
// Numbers are returned unchanged. Strings are trimmed and their leading
// floating-point prefix is parsed, so "45deg" and " 12.5 " both work; the
// unit is not interpreted. Anything else, including nil and strings with no
// numeric prefix, yields fallback.
func ParseAngleDegrees(angle any, fallback float64) float64 {
	switch v := angle.(type) {
	case nil:
		return fallback
	case string:
		n, ok := parseFloatPrefix(strings.TrimSpace(v))
		if !ok || math.IsInf(n, 0) {
			return fallback
		}
		return n
	}
	if n, ok := toFloat(angle); ok {
		return n
	}
	return fallback
}

// NormalizeFeather converts a feather amount to a percentage in [0, 100].
// Values up to 1 are read as fractions, larger values as percentages.
func NormalizeFeather(feather float64) float64 {
	asPercent := feather
	if feather <= 1 {
		asPercent = feather * 100
	}
	return Clamp(asPercent, 0, 100)
}

// LinearCenterPercent reports where the point (x, y) falls along a linear
// gradient line drawn at angleDeg across a width x height container, as a
// percentage of the gradient length.
//
// The angle follows CSS conventions: 0 points up and angles grow clockwise.
// All four corners are projected onto the gradient direction; the point's
// projection is expressed relative to the span between the smallest and
// largest corner projection and clamped to [0, 100]. An empty container or a
// collapsed span returns 50.
func LinearCenterPercent(x, y, width, height, angleDeg float64) float64 {
	if width <= 0 || height <= 0 {
		return 50
	}

	theta := angleDeg * math.Pi / 180
	dirX := math.Sin(theta)
	dirY := -math.Cos(theta)
	project := func(px, py float64) float64 {
		return px*dirX + py*dirY
	}

	corners := [4]float64{
		project(0, 0),
		project(width, 0),
		project(0, height),
		project(width, height),
	}
	lo, hi := corners[0], corners[0]
	for _, p := range corners[1:] {
		lo = math.Min(lo, p)
		hi = math.Max(hi, p)
	}
	span := hi - lo
	if span <= 0 {
		return 50
	}

	t := project(x, y)
	return Clamp((t-lo)/span*100, 0, 100)
}

// parseFloatPrefix parses the longest prefix of s that forms a decimal
// floating-point literal (optional sign, digits, fraction, exponent).
func parseFloatPrefix(s string) (float64, bool) {
	end := floatPrefixLen(s)
	if end == 0 {
		return 0, false
	}
	n, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func floatPrefixLen(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			frac++
		}
		if digits > 0 || frac > 0 {
			i = j
			digits += frac
		}
	}
	if digits == 0 {
		return 0
	}
	// Exponent only counts when followed by at least one digit.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		start := j
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j > start {
			i = j
		}
	}
	return i
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// toFloat converts any Go numeric kind to float64.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
