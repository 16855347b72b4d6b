package node

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/vango-dev/htmlnode/internal/errors"
)

// document is the JSON form of a node:
//
//	{"tag": "p", "props": {"class": "x"}, "children": [{"value": "hi"}]}
//
// A document with a "children" member is a Parent; "children": null is a
// parent whose children collection is absent. Any other document is a
// Leaf, with an absent value when "value" is missing.
type document struct {
	Tag      string          `json:"tag,omitempty"`
	Value    *string         `json:"value,omitempty"`
	Props    *Props          `json:"props,omitempty"`
	Children json.RawMessage `json:"children,omitempty"`
}

var jsonNull = []byte("null")

// Unmarshal decodes a JSON tree document into a Node.
func Unmarshal(data []byte) (Node, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads a single JSON tree document from r. Anything after the
// document other than whitespace is an error.
func Decode(r io.Reader) (Node, error) {
	dec := newDecoder(r)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.New("N010").Wrap(err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("N010").WithDetail("Unexpected data after the tree document.")
	}
	return doc.build("$")
}

func newDecoder(r io.Reader) *json.Decoder {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	return dec
}

func (d *document) build(path string) (Node, error) {
	var props Props
	if d.Props != nil {
		props = *d.Props
	}

	if d.Children == nil {
		if d.Value == nil {
			return &Leaf{tag: d.Tag, props: props}, nil
		}
		return NewLeaf(d.Tag, *d.Value, props), nil
	}

	if d.Value != nil {
		return nil, errors.New("N011").WithDetail(fmt.Sprintf("Node at %s has both value and children.", path))
	}

	if bytes.Equal(bytes.TrimSpace(d.Children), jsonNull) {
		return NewParent(d.Tag, nil, props), nil
	}

	var docs []document
	if err := newDecoder(bytes.NewReader(d.Children)).Decode(&docs); err != nil {
		return nil, errors.New("N010").
			WithDetail(fmt.Sprintf("Children of node at %s are not a list of nodes.", path)).
			Wrap(err)
	}

	children := make([]Node, 0, len(docs))
	for i := range docs {
		child, err := docs[i].build(fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return NewParent(d.Tag, children, props), nil
}

// Marshal encodes n as a JSON tree document.
func Marshal(n Node) ([]byte, error) {
	doc, err := toDocument(n)
	if err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}

func toDocument(n Node) (document, error) {
	var doc document
	switch v := n.(type) {
	case *Leaf:
		if v == nil {
			return doc, nil
		}
		doc.Tag = v.tag
		if v.hasValue {
			value := v.value
			doc.Value = &value
		}
		if v.props.Len() > 0 {
			props := v.props
			doc.Props = &props
		}
	case *Parent:
		if v == nil {
			return doc, nil
		}
		doc.Tag = v.tag
		if v.props.Len() > 0 {
			props := v.props
			doc.Props = &props
		}
		if v.children == nil {
			doc.Children = jsonNull
			break
		}
		children := make([]document, 0, len(v.children))
		for _, child := range v.children {
			cd, err := toDocument(child)
			if err != nil {
				return doc, err
			}
			children = append(children, cd)
		}
		raw, err := json.Marshal(children)
		if err != nil {
			return doc, err
		}
		doc.Children = raw
	default:
		return doc, fmt.Errorf("node: cannot marshal %T", n)
	}
	return doc, nil
}
