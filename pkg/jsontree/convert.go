package jsontree

import (
	"reflect"
	"strings"

	"github.com/go-drift/reveal/pkg/errors"
)

// RootPath is the path of the top-level node.
const RootPath = "root"

// FunctionPolicy selects how function values appear in the tree.
type FunctionPolicy string

const (
	// FunctionsAsString shows a function as a leaf labelled
	// "[Function: name]".
	FunctionsAsString FunctionPolicy = "as-string"
	// FunctionsHide leaves functions out of the tree.
	FunctionsHide FunctionPolicy = "hide"
	// FunctionsAsObject expands a function into its own properties.
	FunctionsAsObject FunctionPolicy = "as-object"
)

// ParseFunctionPolicy parses a policy name. The empty string selects
// FunctionsAsString.
func ParseFunctionPolicy(s string) (FunctionPolicy, error) {
	switch p := FunctionPolicy(strings.TrimSpace(s)); p {
	case "":
		return FunctionsAsString, nil
	case FunctionsAsString, FunctionsHide, FunctionsAsObject:
		return p, nil
	}
	return "", errors.New("jsontree.ParseFunctionPolicy", errors.KindParsing, &errors.ParseError{
		Field: "displayFunctions",
		Want:  "as-string, hide or as-object",
		Got:   s,
	})
}

// Node is one entry of the converted tree. Value is the node's path and
// identifies it for expand and collapse. Leaves have nil Children;
// expandable nodes have a non-nil slice, which is empty when every child
// was a hidden function.
type Node struct {
	Value    string  `json:"value"`
	Label    string  `json:"label"`
	Children []*Node `json:"children,omitempty"`
	Meta     Meta    `json:"nodeData"`
}

// Meta carries the classification of a node's value.
type Meta struct {
	Type Type `json:"type"`
	// Raw is the value the node was built from.
	Raw any `json:"-"`
	// Key is the entry key within the parent, empty for the root.
	Key   string `json:"key,omitempty"`
	Path  string `json:"path"`
	Depth int    `json:"depth"`
	// ItemCount is the number of entries of an expandable node.
	ItemCount int `json:"itemCount,omitempty"`
	// Circular marks a container that already appears among the node's
	// ancestors. Such nodes are leaves.
	Circular bool `json:"circular,omitempty"`
}

// IsLeaf reports whether the node has no children list.
func (n *Node) IsLeaf() bool {
	return n.Children == nil
}

// Display returns the formatted value of a leaf.
func (n *Node) Display() string {
	if n.Meta.Circular {
		return "[Circular]"
	}
	return FormatValue(n.Meta.Raw, n.Meta.Type)
}

// Walk calls fn for n and its descendants in depth-first order, stopping
// early when fn returns false.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

type options struct {
	policy     FunctionPolicy
	cycleGuard bool
}

// Option configures Convert.
type Option func(*options)

// WithFunctions sets the function display policy. The default is
// FunctionsAsString; unknown policies fall back to it.
func WithFunctions(p FunctionPolicy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithoutCycleGuard disables cycle detection. A cyclic input then recurses
// until the stack is exhausted.
func WithoutCycleGuard() Option {
	return func(o *options) {
		o.cycleGuard = false
	}
}

// Convert builds the tree for v rooted at RootPath. It returns nil only
// when v is itself a function hidden by FunctionsHide.
func Convert(v any, opts ...Option) *Node {
	o := options{policy: FunctionsAsString, cycleGuard: true}
	for _, opt := range opts {
		opt(&o)
	}
	c := converter{policy: o.policy}
	if o.cycleGuard {
		c.visiting = make(map[identity]struct{})
	}
	n, _ := c.convert(v, "", RootPath, 0)
	return n
}

// ConvertAt converts v as if it were found under key at path and depth.
// The boolean is false when the value is a hidden function and produced no
// node. ConvertAt does not guard against cycles.
func ConvertAt(v any, key, path string, depth int, policy FunctionPolicy) (*Node, bool) {
	c := converter{policy: policy}
	return c.convert(v, key, path, depth)
}

type identity struct {
	typ reflect.Type
	ptr uintptr
	len int
}

type converter struct {
	policy   FunctionPolicy
	visiting map[identity]struct{}
}

func (c *converter) convert(v any, key, path string, depth int) (*Node, bool) {
	t := TypeOf(v)
	label := key
	if label == "" {
		label = RootPath
	}

	if t == TypeFunction {
		switch c.policy {
		case FunctionsHide:
			return nil, false
		case FunctionsAsObject:
			fn := FuncOf(v)
			if c.visiting != nil {
				id, _ := identify(fn)
				if _, seen := c.visiting[id]; seen {
					return &Node{
						Value: path,
						Label: label,
						Meta:  Meta{Type: TypeObject, Raw: v, Key: key, Path: path, Depth: depth, Circular: true},
					}, true
				}
				c.visiting[id] = struct{}{}
				defer delete(c.visiting, id)
			}
			return c.convert(fn.asObject(), key, path, depth)
		default:
			return &Node{
				Value: path,
				Label: label,
				Meta:  Meta{Type: t, Raw: v, Key: key, Path: path, Depth: depth},
			}, true
		}
	}

	meta := Meta{Type: t, Raw: v, Key: key, Path: path, Depth: depth}
	if !IsExpandable(v) {
		return &Node{Value: path, Label: label, Meta: meta}, true
	}

	if c.visiting != nil {
		if id, ok := identify(v); ok {
			if _, seen := c.visiting[id]; seen {
				meta.Circular = true
				return &Node{Value: path, Label: label, Meta: meta}, true
			}
			c.visiting[id] = struct{}{}
			defer delete(c.visiting, id)
		}
	}

	items := entries(v)
	meta.ItemCount = len(items)
	children := make([]*Node, 0, len(items))
	for _, e := range items {
		child, ok := c.convert(e.Value, e.Key, JoinPath(path, e.Key), depth+1)
		if ok {
			children = append(children, child)
		}
	}
	return &Node{Value: path, Label: label, Children: children, Meta: meta}, true
}

var pathEscaper = strings.NewReplacer(`\`, `\\`, `.`, `\.`)

// JoinPath appends key to path as a new segment. Dots and backslashes in
// the key are escaped with a backslash, so a key such as "a.b" cannot
// share a path with the nested key "b" under "a".
func JoinPath(path, key string) string {
	return path + "." + pathEscaper.Replace(key)
}

// identify returns the address identity of a reference value. Values
// without one (structs held by value, arrays) cannot form cycles on their
// own.
func identify(v any) (identity, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map:
		if rv.IsNil() {
			return identity{}, false
		}
		return identity{typ: rv.Type(), ptr: rv.Pointer()}, true
	case reflect.Slice:
		if rv.Len() == 0 {
			return identity{}, false
		}
		return identity{typ: rv.Type(), ptr: rv.Pointer(), len: rv.Len()}, true
	}
	return identity{}, false
}
