package node

import (
	stderrors "errors"

	"github.com/vango-dev/htmlnode/internal/errors"
)

var (
	// ErrMissingValue is matched by errors from rendering a leaf without a value.
	ErrMissingValue = stderrors.New("leaf node requires a value")

	// ErrInvalidParent is matched by errors from rendering a parent without
	// a tag or without children.
	ErrInvalidParent = stderrors.New("invalid parent node")

	// ErrNilNode is matched by errors from validating a nil node.
	ErrNilNode = stderrors.New("nil node")
)

func errMissingValue() error {
	return errors.New("N001").Wrap(ErrMissingValue)
}

func errParentTag() error {
	return errors.New("N002").Wrap(ErrInvalidParent)
}

func errParentChildren() error {
	return errors.New("N003").Wrap(ErrInvalidParent)
}

func errNilNode() error {
	return errors.New("N004").Wrap(ErrNilNode)
}
