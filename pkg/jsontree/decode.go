package jsontree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-drift/reveal/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DecodeJSON decodes a JSON document into *Object, []any, string, float64,
// bool and nil values, keeping object keys in document order. Numbers too
// large for a float64 are kept as json.Number.
func DecodeJSON(data []byte) (any, error) {
	return DecodeJSONReader(bytes.NewReader(data))
}

// DecodeJSONReader is DecodeJSON for a stream. It expects exactly one
// document.
func DecodeJSONReader(r io.Reader) (any, error) {
	const op = "jsontree.DecodeJSON"
	dec := json.NewDecoder(r)
	dec.UseNumber()

	v, err := decodeJSONValue(dec)
	if err != nil {
		return nil, errors.New(op, errors.KindParsing, err)
	}
	if tok, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = fmt.Errorf("unexpected %v after document", tok)
		}
		return nil, errors.New(op, errors.KindParsing, err)
	}
	return v, nil
}

func decodeJSONValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := NewObject()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("unexpected object key %v", keyTok)
				}
				v, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				obj.Set(key, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return obj, nil
		case '[':
			arr := []any{}
			for dec.More() {
				v, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				arr = append(arr, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return arr, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %v", t)
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return f, nil
		}
		return t, nil
	default:
		return t, nil
	}
}

// DecodeYAML decodes a YAML document the same way DecodeJSON does, keeping
// mapping keys in document order. Integers stay int and an empty document
// decodes to nil.
func DecodeYAML(data []byte) (any, error) {
	const op = "jsontree.DecodeYAML"
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.New(op, errors.KindParsing, err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}
	d := yamlDecoder{open: make(map[*yaml.Node]bool)}
	v, err := d.value(doc.Content[0])
	if err != nil {
		return nil, errors.New(op, errors.KindParsing, err)
	}
	return v, nil
}

// maxAliasNodes caps the nodes produced by expanding aliases, so a short
// document of nested aliases cannot grow without bound.
const maxAliasNodes = 100_000

// yamlDecoder converts a node tree, expanding aliases. Anchored nodes are
// tracked while they are being converted so an alias to an enclosing
// anchor is an error instead of infinite recursion.
type yamlDecoder struct {
	open     map[*yaml.Node]bool
	inAlias  int
	expanded int
}

func (d *yamlDecoder) value(n *yaml.Node) (any, error) {
	if d.inAlias > 0 {
		d.expanded++
		if d.expanded > maxAliasNodes {
			return nil, fmt.Errorf("line %d: aliases expand to more than %d nodes", n.Line, maxAliasNodes)
		}
	}
	if n.Anchor != "" {
		d.open[n] = true
		defer delete(d.open, n)
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return d.value(n.Content[0])
	case yaml.AliasNode:
		if n.Alias == nil {
			return nil, fmt.Errorf("line %d: unknown anchor %q", n.Line, n.Value)
		}
		if d.open[n.Alias] {
			return nil, fmt.Errorf("line %d: anchor %q contains itself", n.Line, n.Value)
		}
		d.inAlias++
		defer func() { d.inAlias-- }()
		return d.value(n.Alias)
	case yaml.MappingNode:
		obj := NewObject()
		for i := 0; i+1 < len(n.Content); i += 2 {
			v, err := d.value(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			obj.Set(n.Content[i].Value, v)
		}
		return obj, nil
	case yaml.SequenceNode:
		arr := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := d.value(c)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!null":
			return nil, nil
		case "!!bool", "!!int", "!!float":
			var v any
			if err := n.Decode(&v); err != nil {
				return nil, fmt.Errorf("line %d: %w", n.Line, err)
			}
			return v, nil
		}
		return n.Value, nil
	}
	return nil, fmt.Errorf("line %d: unsupported node kind %d", n.Line, n.Kind)
}
