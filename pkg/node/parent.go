package node

import (
	"fmt"
	"strconv"
	"strings"
)

// Parent is a node with children and no value.
type Parent struct {
	tag      string
	children []Node
	props    Props
}

// NewParent creates a parent. children is copied; nil entries are
// dropped. A nil children slice stays nil and fails to render, while an
// empty one renders an element with no content.
func NewParent(tag string, children []Node, props Props) *Parent {
	p := &Parent{tag: tag, props: props}
	if children != nil {
		p.children = make([]Node, 0, len(children))
		for _, child := range children {
			if child != nil {
				p.children = append(p.children, child)
			}
		}
	}
	return p
}

// Element creates a parent from variadic children.
func Element(tag string, props Props, children ...Node) *Parent {
	if children == nil {
		children = []Node{}
	}
	return NewParent(tag, children, props)
}

func (p *Parent) isNode() {}

// Tag returns the element name, or "" when the parent has none.
func (p *Parent) Tag() string {
	if p == nil {
		return ""
	}
	return p.tag
}

// Children returns a copy of the children, or nil when the parent has none.
func (p *Parent) Children() []Node {
	if p == nil || p.children == nil {
		return nil
	}
	children := make([]Node, len(p.children))
	copy(children, p.children)
	return children
}

// Props returns the parent's attributes.
func (p *Parent) Props() Props {
	if p == nil {
		return Props{}
	}
	return p.props
}

// PropsToHTML serializes the parent's attributes.
func (p *Parent) PropsToHTML() string {
	return p.Props().PropsToHTML()
}

// ToHTML renders the parent and, recursively, its children. It fails
// with ErrInvalidParent when the tag or the children collection is
// missing; errors from descendants are returned unchanged.
func (p *Parent) ToHTML() (string, error) {
	if err := p.check(); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(p.tag)
	b.WriteString(p.props.PropsToHTML())
	b.WriteByte('>')
	for _, child := range p.children {
		html, err := child.ToHTML()
		if err != nil {
			return "", err
		}
		b.WriteString(html)
	}
	b.WriteString("</")
	b.WriteString(p.tag)
	b.WriteByte('>')
	return b.String(), nil
}

// check validates the parent itself; children are not visited.
func (p *Parent) check() error {
	if p == nil || p.tag == "" {
		return errParentTag()
	}
	if p.children == nil {
		return errParentChildren()
	}
	return nil
}

// String returns a diagnostic representation of the parent.
func (p *Parent) String() string {
	children := "None"
	if p != nil && p.children != nil {
		children = strconv.Itoa(len(p.children))
	}
	return fmt.Sprintf("Parent(%s, None, children: %s, %s)", tagString(p.Tag()), children, p.Props())
}
