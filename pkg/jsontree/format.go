package jsontree

import (
	"encoding"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// FormatValue renders a value of type t for display next to its key.
// Strings are quoted, null and undefined print as their names, functions as
// "[Function: name]" or "[Function]", and numbers in their shortest form.
// Containers print as their brackets.
func FormatValue(v any, t Type) string {
	switch t {
	case TypeString:
		return `"` + stringValue(v) + `"`
	case TypeNull:
		return "null"
	case TypeUndefined:
		return "undefined"
	case TypeFunction:
		if name := FuncOf(v).Name; name != "" {
			return "[Function: " + name + "]"
		}
		return "[Function]"
	case TypeNumber:
		return numberString(v)
	case TypeBoolean:
		return strconv.FormatBool(reflect.Indirect(reflect.ValueOf(v)).Bool())
	case TypeArray:
		if ItemCount(v) == 0 {
			return "[]"
		}
		return "[…]"
	case TypeObject:
		if ItemCount(v) == 0 {
			return "{}"
		}
		return "{…}"
	}
	return fmt.Sprint(v)
}

func stringValue(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case encoding.TextMarshaler:
		if b, err := v.MarshalText(); err == nil {
			return string(b)
		}
	}
	rv := reflect.Indirect(reflect.ValueOf(v))
	if rv.Kind() == reflect.String {
		return rv.String()
	}
	return fmt.Sprint(rv.Interface())
}

func numberString(v any) string {
	if n, ok := v.(json.Number); ok {
		return n.String()
	}
	rv := reflect.Indirect(reflect.ValueOf(v))
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return formatFloat(rv.Float(), 32)
	case reflect.Float64:
		return formatFloat(rv.Float(), 64)
	}
	return fmt.Sprint(v)
}

// formatFloat prints f the way a JavaScript runtime does: plain decimals
// between 1e-6 and 1e21, exponent form outside that range.
func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, bits)
		mant, exp, _ := strings.Cut(s, "e")
		sign := exp[:1]
		exp = strings.TrimLeft(exp[1:], "0")
		return mant + "e" + sign + exp
	}
	return strconv.FormatFloat(f, 'f', -1, bits)
}
