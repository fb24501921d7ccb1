package jsontree

import (
	"reflect"
	"regexp"
	"runtime"
	"strings"
)

// Func is a function value that carries a display name and its own
// properties. Plain Go funcs found in the input are wrapped with [FuncOf]
// during conversion.
type Func struct {
	Name  string
	Fn    any
	Props *Object
}

// NewFunc wraps fn under an explicit name. fn may be nil when only the
// name and properties matter.
func NewFunc(name string, fn any) *Func {
	return &Func{Name: name, Fn: fn}
}

// FuncOf wraps a Go func, naming it after its symbol. Anonymous closures
// have no name.
func FuncOf(fn any) *Func {
	if f, ok := fn.(*Func); ok {
		return f
	}
	return &Func{Name: symbolName(fn), Fn: fn}
}

// SetProp attaches a property that is listed when functions are shown as
// objects. It returns f for chaining.
func (f *Func) SetProp(key string, v any) *Func {
	if f.Props == nil {
		f.Props = NewObject()
	}
	f.Props.Set(key, v)
	return f
}

// Arity returns the number of declared parameters of the wrapped func, not
// counting a variadic one.
func (f *Func) Arity() int {
	if f.Fn == nil {
		return 0
	}
	t := reflect.TypeOf(f.Fn)
	if t.Kind() != reflect.Func {
		return 0
	}
	n := t.NumIn()
	if t.IsVariadic() {
		n--
	}
	return n
}

// asObject is the object a function is shown as: its length and name
// followed by its own properties.
func (f *Func) asObject() *Object {
	o := NewObject().
		Set("length", f.Arity()).
		Set("name", f.Name)
	if f.Props != nil {
		for _, e := range f.Props.Entries() {
			o.Set(e.Key, e.Value)
		}
	}
	return o
}

var closureName = regexp.MustCompile(`^(func)?\d+$`)

func symbolName(fn any) string {
	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return ""
	}
	rf := runtime.FuncForPC(rv.Pointer())
	if rf == nil {
		return ""
	}
	name := rf.Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, "-fm")
	if closureName.MatchString(name) {
		return ""
	}
	return name
}
