// Package errors provides structured, coded error values for htmlnode.
//
// Every error carries a short code (e.g. "N001") that maps to a registered
// category, message and detail. Errors may wrap an underlying cause, so
// callers can test for well-known conditions with the standard library:
//
//	err := errors.New("N002").Wrap(node.ErrInvalidParent)
//	stderrors.Is(err, node.ErrInvalidParent) // true
//
// # Error Categories
//
//   - render: a node tree violated its rendering contract
//   - decode: a tree document could not be turned into nodes
//   - config: htmlnode.json could not be read or is invalid
//   - sink: rendered output could not be delivered
//   - cli: command line usage errors
//
// Format renders an error for terminal display:
//
//	ERROR N001: Leaf node requires a value
//
//	  A leaf was rendered without a value. Leaves render their value
//	  directly and have nothing to emit without one.
//
//	  Hint: Construct leaves with node.NewLeaf or node.Text
package errors
