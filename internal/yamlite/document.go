package yamlite

import (
	"strconv"

	"gopkg.in/yaml.v3"
)

// Field is one key/value pair of a list item. Value is a string or a bool.
type Field struct {
	Key   string
	Value any
}

// Item is a flat object inside a list, in declaration order.
type Item []Field

// Get returns the raw value stored under key.
func (it Item) Get(key string) (any, bool) {
	for _, f := range it {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// String returns the value under key as a string. Booleans are formatted.
func (it Item) String(key string) (string, bool) {
	v, ok := it.Get(key)
	if !ok {
		return "", false
	}
	switch x := v.(type) {
	case string:
		return x, true
	case bool:
		return strconv.FormatBool(x), true
	}
	return "", false
}

// Bool returns the value under key if it was coerced to a boolean.
func (it Item) Bool(key string) (bool, bool) {
	v, ok := it.Get(key)
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// set stores value under key, replacing an earlier value in place.
func (it *Item) set(key string, value any) {
	for i, f := range *it {
		if f.Key == key {
			(*it)[i].Value = value
			return
		}
	}
	*it = append(*it, Field{Key: key, Value: value})
}

// Document is the result of parsing a workflow.yaml. Each top-level key holds
// either a scalar string or a list of items; a later assignment to the same
// key replaces the earlier one but keeps its original position.
type Document struct {
	keys    []string
	scalars map[string]string
	lists   map[string][]Item
}

func newDocument() *Document {
	return &Document{
		scalars: make(map[string]string),
		lists:   make(map[string][]Item),
	}
}

// Keys returns the top-level keys in first-seen order.
func (d *Document) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Has reports whether key holds a scalar or a list.
func (d *Document) Has(key string) bool {
	_, s := d.scalars[key]
	_, l := d.lists[key]
	return s || l
}

// Scalar returns the scalar stored under key.
func (d *Document) Scalar(key string) (string, bool) {
	v, ok := d.scalars[key]
	return v, ok
}

// List returns the items stored under key, or nil when key is absent or
// holds a scalar.
func (d *Document) List(key string) []Item {
	return d.lists[key]
}

// Scalars returns a copy of all scalar entries.
func (d *Document) Scalars() map[string]string {
	out := make(map[string]string, len(d.scalars))
	for k, v := range d.scalars {
		out[k] = v
	}
	return out
}

func (d *Document) touch(key string) {
	if !d.Has(key) {
		d.keys = append(d.keys, key)
	}
}

func (d *Document) setScalar(key, value string) {
	d.touch(key)
	delete(d.lists, key)
	d.scalars[key] = value
}

func (d *Document) setList(key string, items []Item) {
	d.touch(key)
	delete(d.scalars, key)
	d.lists[key] = items
}

// MarshalYAML renders the document as a real YAML mapping in key order.
func (d *Document) MarshalYAML() (interface{}, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range d.keys {
		var value *yaml.Node
		if s, ok := d.scalars[k]; ok {
			value = strNode(s)
		} else {
			value = &yaml.Node{Kind: yaml.SequenceNode}
			for _, it := range d.lists[k] {
				value.Content = append(value.Content, itemNode(it))
			}
		}
		root.Content = append(root.Content, strNode(k), value)
	}
	return root, nil
}

func itemNode(it Item) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range it {
		var v *yaml.Node
		switch x := f.Value.(type) {
		case bool:
			v = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(x)}
		case string:
			v = strNode(x)
		default:
			continue
		}
		n.Content = append(n.Content, strNode(f.Key), v)
	}
	return n
}

func strNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}
