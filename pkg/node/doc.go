// Package node provides the markup node tree rendered by htmlnode.
//
// A tree is made of two kinds of node:
//
//   - Leaf holds a value and no children. It renders as <tag attrs>value</tag>,
//     or as the bare value when it has no tag.
//   - Parent holds children and no value. It renders as <tag attrs>, followed
//     by each child's output in order, followed by </tag>.
//
// Node is a closed interface; *Leaf and *Parent are its only implementations.
// Nodes are immutable once constructed and are safe to render concurrently.
//
// # Building Trees
//
//	tree := node.NewParent("p", []node.Node{
//	    node.NewLeaf("b", "Bold", node.Props{}),
//	    node.Text("Text"),
//	}, node.NewProps(node.Attribute("class", "intro")))
//
//	html, err := tree.ToHTML()
//	// <p class="intro"><b>Bold</b>Text</p>
//
// # Errors
//
// Rendering a malformed tree fails with an error that matches either
// ErrMissingValue (a leaf without a value) or ErrInvalidParent (a parent
// without a tag or without a children collection):
//
//	if errors.Is(err, node.ErrInvalidParent) { ... }
//
// Validate reports a nil root with ErrNilNode.
//
// A failure anywhere in the tree aborts the whole render; no partial
// output is returned.
//
// # Attributes
//
// Attribute values are substituted verbatim. No escaping is applied to
// values, text or tag names.
package node
