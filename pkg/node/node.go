package node

import "fmt"

// Node is an element of a render tree. Implemented by *Leaf and *Parent.
type Node interface {
	fmt.Stringer

	// Tag returns the element name, or "" when the node has none.
	Tag() string

	// Props returns the node's attributes.
	Props() Props

	// PropsToHTML serializes the node's attributes for an opening tag.
	PropsToHTML() string

	// ToHTML renders the node and its descendants.
	ToHTML() (string, error)

	isNode()
}

// Validate checks n and its descendants depth-first, left to right, and
// returns the error ToHTML would return, or nil.
func Validate(n Node) error {
	switch v := n.(type) {
	case *Leaf:
		return v.check()
	case *Parent:
		if err := v.check(); err != nil {
			return err
		}
		for _, child := range v.children {
			if err := Validate(child); err != nil {
				return err
			}
		}
		return nil
	case nil:
		return errNilNode()
	default:
		return fmt.Errorf("node: unknown node type %T", n)
	}
}

// Walk visits n and its descendants in depth-first pre-order. depth is 0
// for n. If fn returns false the children of the visited node are skipped.
func Walk(n Node, fn func(n Node, depth int) bool) {
	walk(n, 0, fn)
}

func walk(n Node, depth int, fn func(Node, int) bool) {
	if n == nil || !fn(n, depth) {
		return
	}
	if p, ok := n.(*Parent); ok && p != nil {
		for _, child := range p.children {
			walk(child, depth+1, fn)
		}
	}
}

// tagString returns tag, or None when it is absent.
func tagString(tag string) string {
	if tag == "" {
		return "None"
	}
	return tag
}
