package jsontree

import (
	"encoding"
	"encoding/json"
	"reflect"
)

// Type classifies a value for display.
type Type string

const (
	TypeObject    Type = "object"
	TypeArray     Type = "array"
	TypeString    Type = "string"
	TypeNumber    Type = "number"
	TypeBoolean   Type = "boolean"
	TypeNull      Type = "null"
	TypeUndefined Type = "undefined"
	TypeFunction  Type = "function"
)

// Null is an explicit null, for callers that need to tell it apart from a
// missing value. A nil interface classifies the same way.
type Null struct{}

// Undefined marks a value that is present in a container but has no value.
type Undefined struct{}

// TypeOf classifies v. Nil values and nil pointers are null; pointers are
// followed. Slices and arrays are arrays, funcs and [*Func] are functions,
// and maps, structs and [*Object] are objects. Values that marshal to text,
// such as time.Time, are strings, as are kinds with no natural reading
// (channels, complex numbers).
func TypeOf(v any) Type {
	switch v := v.(type) {
	case nil, Null:
		return TypeNull
	case Undefined:
		return TypeUndefined
	case []any:
		return TypeArray
	case *Func:
		if v == nil {
			return TypeNull
		}
		return TypeFunction
	case string:
		return TypeString
	case bool:
		return TypeBoolean
	case float64, int, json.Number:
		return TypeNumber
	case *Object:
		if v == nil {
			return TypeNull
		}
		return TypeObject
	case Object, map[string]any:
		return TypeObject
	case encoding.TextMarshaler:
		if isNilPointer(v) {
			return TypeNull
		}
		return TypeString
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return TypeNull
		}
		return TypeOf(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		return TypeArray
	case reflect.Func:
		if rv.IsNil() {
			return TypeNull
		}
		return TypeFunction
	case reflect.String:
		return TypeString
	case reflect.Bool:
		return TypeBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return TypeNumber
	case reflect.Map, reflect.Struct:
		return TypeObject
	default:
		return TypeString
	}
}

// IsExpandable reports whether v is a non-empty object or a non-empty
// array. Empty containers and primitives are leaves.
func IsExpandable(v any) bool {
	switch TypeOf(v) {
	case TypeObject, TypeArray:
		return ItemCount(v) > 0
	}
	return false
}

// ItemCount returns the number of elements of an array or keys of an
// object, and 0 for everything else.
func ItemCount(v any) int {
	switch TypeOf(v) {
	case TypeObject, TypeArray:
		return len(entries(v))
	}
	return 0
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
