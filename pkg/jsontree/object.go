package jsontree

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Entry is one key/value pair of an object or array.
type Entry struct {
	Key   string
	Value any
}

// Object is a map that remembers insertion order. Decoders produce it so
// that the tree lists keys in document order. The zero value is ready to
// use.
type Object struct {
	keys   []string
	values map[string]any
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{}
}

// Set stores v under key and returns o for chaining. Setting an existing
// key keeps its original position.
func (o *Object) Set(key string, v any) *Object {
	if o.values == nil {
		o.values = make(map[string]any)
	}
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
	return o
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (any, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Delete removes key.
func (o *Object) Delete(key string) {
	if _, ok := o.values[key]; !ok {
		return
	}
	delete(o.values, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of keys.
func (o *Object) Len() int {
	return len(o.keys)
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	return append([]string(nil), o.keys...)
}

// Entries returns the pairs in insertion order.
func (o *Object) Entries() []Entry {
	out := make([]Entry, len(o.keys))
	for i, k := range o.keys {
		out[i] = Entry{Key: k, Value: o.values[k]}
	}
	return out
}

// entries enumerates the children of an object or array value. Arrays are
// keyed by index. Go maps have no order, so their keys are sorted.
func entries(v any) []Entry {
	switch v := v.(type) {
	case nil:
		return nil
	case *Object:
		if v == nil {
			return nil
		}
		return v.Entries()
	case Object:
		return v.Entries()
	case []any:
		out := make([]Entry, len(v))
		for i, e := range v {
			out[i] = Entry{Key: strconv.Itoa(i), Value: e}
		}
		return out
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make([]Entry, len(keys))
		for i, k := range keys {
			out[i] = Entry{Key: k, Value: v[k]}
		}
		return out
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return entries(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		out := make([]Entry, rv.Len())
		for i := range out {
			out[i] = Entry{Key: strconv.Itoa(i), Value: rv.Index(i).Interface()}
		}
		return out
	case reflect.Map:
		out := make([]Entry, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out = append(out, Entry{Key: fmt.Sprint(iter.Key().Interface()), Value: iter.Value().Interface()})
		}
		sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
		return out
	case reflect.Struct:
		return structEntries(rv)
	}
	return nil
}

// structEntries lists exported fields in declaration order, named by their
// json tag when one is present.
func structEntries(rv reflect.Value) []Entry {
	rt := rv.Type()
	out := make([]Entry, 0, rt.NumField())
	for i := range rt.NumField() {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("json"); ok {
			tagName, _, _ := strings.Cut(tag, ",")
			if tagName == "-" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
		}
		out = append(out, Entry{Key: name, Value: rv.Field(i).Interface()})
	}
	return out
}
