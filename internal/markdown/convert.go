package markdown

import (
	"github.com/goliatone/go-sitegen/internal/block"
	"github.com/goliatone/go-sitegen/internal/htmlnode"
)

// RootTag wraps every converted document.
const RootTag = "div"

// ConvertDocument turns a Markdown document into a single root node whose
// children are the converted blocks in source order. It fails with a markup
// error when inline delimiters are left unclosed.
func ConvertDocument(markdown string) (*htmlnode.Parent, error) {
	return ConvertDocumentWithOptions(markdown, block.Options{})
}

// ConvertDocumentWithOptions is ConvertDocument with block level options.
func ConvertDocumentWithOptions(markdown string, opts block.Options) (*htmlnode.Parent, error) {
	blocks := block.Split(markdown)
	children := make([]htmlnode.Node, 0, len(blocks))
	for _, b := range blocks {
		node, err := block.ToNode(b, block.Classify(b), opts)
		if err != nil {
			return nil, err
		}
		children = append(children, node)
	}
	return htmlnode.NewParent(RootTag, children), nil
}

// Render renders a node tree into an HTML string.
func Render(node htmlnode.Node) (string, error) {
	return htmlnode.Render(node)
}

// ToHTML converts and renders a document in one step.
func ToHTML(markdown string) (string, error) {
	root, err := ConvertDocument(markdown)
	if err != nil {
		return "", err
	}
	return root.Render()
}
