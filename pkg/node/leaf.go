package node

import (
	"fmt"
	"strconv"
	"strings"
)

// Leaf is a node with a value and no children.
// The zero Leaf has no value and fails to render.
type Leaf struct {
	tag      string
	value    string
	hasValue bool
	props    Props
}

// NewLeaf creates a leaf. An empty tag renders the value without a
// wrapping element.
func NewLeaf(tag, value string, props Props) *Leaf {
	return &Leaf{
		tag:      tag,
		value:    value,
		hasValue: true,
		props:    props,
	}
}

// Text creates an untagged leaf that renders value verbatim.
func Text(value string) *Leaf {
	return NewLeaf("", value, Props{})
}

func (l *Leaf) isNode() {}

// Tag returns the element name, or "" when the leaf has none.
func (l *Leaf) Tag() string {
	if l == nil {
		return ""
	}
	return l.tag
}

// Value returns the leaf's value and whether it has one.
func (l *Leaf) Value() (string, bool) {
	if l == nil {
		return "", false
	}
	return l.value, l.hasValue
}

// Props returns the leaf's attributes.
func (l *Leaf) Props() Props {
	if l == nil {
		return Props{}
	}
	return l.props
}

// PropsToHTML serializes the leaf's attributes.
func (l *Leaf) PropsToHTML() string {
	return l.Props().PropsToHTML()
}

// ToHTML renders the leaf. It fails with ErrMissingValue when the leaf
// has no value.
func (l *Leaf) ToHTML() (string, error) {
	if err := l.check(); err != nil {
		return "", err
	}
	if l.tag == "" {
		return l.value, nil
	}

	var b strings.Builder
	b.Grow(2*len(l.tag) + len(l.value) + 5)
	b.WriteByte('<')
	b.WriteString(l.tag)
	b.WriteString(l.props.PropsToHTML())
	b.WriteByte('>')
	b.WriteString(l.value)
	b.WriteString("</")
	b.WriteString(l.tag)
	b.WriteByte('>')
	return b.String(), nil
}

func (l *Leaf) check() error {
	if l == nil || !l.hasValue {
		return errMissingValue()
	}
	return nil
}

// String returns a diagnostic representation of the leaf.
func (l *Leaf) String() string {
	value := "None"
	if v, ok := l.Value(); ok {
		value = strconv.Quote(v)
	}
	return fmt.Sprintf("Leaf(%s, %s, children: None, %s)", tagString(l.Tag()), value, l.Props())
}
