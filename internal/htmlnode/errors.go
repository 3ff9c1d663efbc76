package htmlnode

import (
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

const structuralErrorCode = "HTML_NODE_INVALID"

var (
	// ErrLeafValueMissing is returned when a leaf has no value to render.
	ErrLeafValueMissing = errors.New("htmlnode: leaf value is required")
	// ErrParentTagMissing is returned when a parent node has no tag.
	ErrParentTagMissing = errors.New("htmlnode: parent tag is required")
	// ErrParentChildrenMissing is returned when a parent node has a nil children slice.
	ErrParentChildrenMissing = errors.New("htmlnode: parent children are required")
	// ErrChildNil is returned when a nil node is found in the tree.
	ErrChildNil = errors.New("htmlnode: nil node in tree")
)

// IsStructuralError reports whether err was raised because a node was built
// with missing required fields.
func IsStructuralError(err error) bool {
	return goerrors.IsCategory(err, goerrors.CategoryInternal)
}

func structuralError(err error, tag string) error {
	wrapped := goerrors.Wrap(err, goerrors.CategoryInternal, "invalid html node").
		WithTextCode(structuralErrorCode)
	if tag != "" {
		wrapped = wrapped.WithMetadata(map[string]any{"tag": tag})
	}
	return wrapped
}
