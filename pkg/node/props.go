package node

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Attr is a single attribute name/value pair.
type Attr struct {
	Key   string
	Value string
}

// Attribute creates an Attr with the given key and value.
func Attribute(key, value string) Attr {
	return Attr{Key: key, Value: value}
}

// Props is an ordered mapping of attribute names to values.
// The zero value is an empty mapping. Props values are never modified
// in place; With returns a new mapping.
type Props struct {
	attrs []Attr
}

// NewProps builds Props from attrs in order. A repeated key keeps the
// position of its first occurrence and the value of its last.
func NewProps(attrs ...Attr) Props {
	var p Props
	for _, a := range attrs {
		p = p.with(a.Key, a.Value)
	}
	return p
}

// With returns a copy of p with key set to value.
func (p Props) With(key, value string) Props {
	return p.with(key, value)
}

func (p Props) with(key, value string) Props {
	attrs := make([]Attr, len(p.attrs), len(p.attrs)+1)
	copy(attrs, p.attrs)
	for i := range attrs {
		if attrs[i].Key == key {
			attrs[i].Value = value
			return Props{attrs: attrs}
		}
	}
	return Props{attrs: append(attrs, Attr{Key: key, Value: value})}
}

// Len returns the number of attributes.
func (p Props) Len() int {
	return len(p.attrs)
}

// Get returns the value for key.
func (p Props) Get(key string) (string, bool) {
	for _, a := range p.attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// Keys returns the attribute names in insertion order.
func (p Props) Keys() []string {
	keys := make([]string, len(p.attrs))
	for i, a := range p.attrs {
		keys[i] = a.Key
	}
	return keys
}

// Attrs returns a copy of the attributes in insertion order.
func (p Props) Attrs() []Attr {
	attrs := make([]Attr, len(p.attrs))
	copy(attrs, p.attrs)
	return attrs
}

// PropsToHTML serializes the attributes as ` key="value"` pairs in
// insertion order. Values are not escaped. Empty props yield "".
func (p Props) PropsToHTML() string {
	if len(p.attrs) == 0 {
		return ""
	}
	var b strings.Builder
	for _, a := range p.attrs {
		b.WriteByte(' ')
		b.WriteString(a.Key)
		b.WriteString(`="`)
		b.WriteString(a.Value)
		b.WriteByte('"')
	}
	return b.String()
}

// String returns a diagnostic representation such as {class: "x", id: "y"}.
// Empty props print as None.
func (p Props) String() string {
	if len(p.attrs) == 0 {
		return "None"
	}
	parts := make([]string, len(p.attrs))
	for i, a := range p.attrs {
		parts[i] = a.Key + ": " + strconv.Quote(a.Value)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// MarshalJSON encodes props as a JSON object in insertion order.
func (p Props) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, a := range p.attrs {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(a.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(a.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object of string values, keeping the
// order in which keys appear in the document. null decodes to empty props.
func (p *Props) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*p = Props{}
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("props: expected object, got %v", tok)
	}

	var out Props
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("props: expected key, got %v", keyTok)
		}
		valTok, err := dec.Token()
		if err != nil {
			return err
		}
		value, ok := valTok.(string)
		if !ok {
			return fmt.Errorf("props: value for %q must be a string", key)
		}
		out = out.with(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*p = out
	return nil
}
