package geometry

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// remBase is the root font size, in pixels, used to convert pixel lengths to rem.
const remBase = 16

// Length is a size that is either a bare pixel number or a CSS length string
// with an explicit unit ("12em", "40%", "calc(...)"). The zero Length is unset.
type Length struct {
	px      float64
	css     string
	set     bool
	numeric bool
}

// Px returns a pixel Length.
func Px(v float64) Length {
	return Length{px: v, set: true, numeric: true}
}

// CSSLength returns a Length carrying a verbatim CSS value.
func CSSLength(s string) Length {
	return Length{css: strings.TrimSpace(s), set: true}
}

// ParseLength accepts a Go number or a string. Strings that are a plain
// number ("240") become pixel lengths; anything else is kept verbatim.
// nil and empty strings yield an unset Length and false.
func ParseLength(v any) (Length, bool) {
	switch s := v.(type) {
	case nil:
		return Length{}, false
	case Length:
		return s, s.set
	case string:
		s = strings.TrimSpace(s)
		if s == "" {
			return Length{}, false
		}
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			return Px(n), true
		}
		return CSSLength(s), true
	}
	if n, ok := toFloat(v); ok {
		return Px(n), true
	}
	return Length{}, false
}

// IsSet reports whether the length carries a value.
func (l Length) IsSet() bool {
	return l.set
}

// Pixels returns the pixel value for numeric lengths. CSS strings report
// false: their pixel size depends on the rendering context.
func (l Length) Pixels() (float64, bool) {
	if !l.set || !l.numeric {
		return 0, false
	}
	return l.px, true
}

// Or returns l when set and fallback otherwise.
func (l Length) Or(fallback Length) Length {
	if l.set {
		return l
	}
	return fallback
}

// CSS renders the length for a style variable. Pixel values are expressed
// in rem; unset lengths render as the empty string.
func (l Length) CSS() string {
	switch {
	case !l.set:
		return ""
	case l.numeric:
		return Rem(l.px)
	default:
		return l.css
	}
}

// String implements fmt.Stringer.
func (l Length) String() string {
	if l.numeric {
		return FormatNumber(l.px) + "px"
	}
	return l.CSS()
}

// Rem converts a pixel value to a rem string, e.g. 320 -> "20rem".
func Rem(px float64) string {
	return FormatNumber(px/remBase) + "rem"
}

// FormatNumber renders a float in its shortest round-trip form without
// exponent notation for common magnitudes.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatAngle renders an angle for a CSS gradient. Numbers get a "deg"
// suffix; strings that already carry a unit are passed through trimmed;
// unit-less strings get "deg"; nil renders as "90deg".
func FormatAngle(angle any) string {
	switch v := angle.(type) {
	case nil:
		return "90deg"
	case string:
		trimmed := strings.TrimSpace(v)
		if hasUnit(trimmed) {
			return trimmed
		}
		return trimmed + "deg"
	}
	if n, ok := toFloat(angle); ok {
		return FormatNumber(n) + "deg"
	}
	return fmt.Sprint(angle)
}

func hasUnit(s string) bool {
	for _, r := range s {
		if r == '%' || (r < unicode.MaxASCII && unicode.IsLetter(r)) {
			return true
		}
	}
	return false
}
