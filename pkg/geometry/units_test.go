package geometry

import "testing"

func TestLengthCSS(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"scalar radius", 320, "20rem"},
		{"fractional rem", 100, "6.25rem"},
		{"float", 200.0, "12.5rem"},
		{"numeric string", "240", "15rem"},
		{"css string", "40%", "40%"},
		{"padded css string", "  12em ", "12em"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, ok := ParseLength(tt.in)
			if !ok {
				t.Fatalf("ParseLength(%#v) reported unset", tt.in)
			}
			if got := l.CSS(); got != tt.want {
				t.Errorf("CSS() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLengthPixels(t *testing.T) {
	if px, ok := Px(120).Pixels(); !ok || px != 120 {
		t.Errorf("Px(120).Pixels() = %v, %v", px, ok)
	}
	if _, ok := CSSLength("10vw").Pixels(); ok {
		t.Error("CSS length should not report pixels")
	}
	if _, ok := (Length{}).Pixels(); ok {
		t.Error("unset length should not report pixels")
	}
}

func TestLengthUnset(t *testing.T) {
	for _, in := range []any{nil, "", "   ", struct{}{}} {
		if l, ok := ParseLength(in); ok || l.IsSet() {
			t.Errorf("ParseLength(%#v) = %v, %v; want unset", in, l, ok)
		}
	}
	if got := (Length{}).CSS(); got != "" {
		t.Errorf("unset CSS() = %q, want empty", got)
	}
	fallback := Px(8)
	if got := (Length{}).Or(fallback); got != fallback {
		t.Errorf("Or() = %v, want fallback", got)
	}
}

func TestFormatAngle(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{30, "30deg"},
		{12.5, "12.5deg"},
		{nil, "90deg"},
		{"45", "45deg"},
		{" 0.25turn ", "0.25turn"},
		{"1.2rad", "1.2rad"},
		{"50%", "50%"},
	}
	for _, tt := range tests {
		if got := FormatAngle(tt.in); got != tt.want {
			t.Errorf("FormatAngle(%#v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
