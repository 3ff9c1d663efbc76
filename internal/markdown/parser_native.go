package markdown

import (
	"github.com/goliatone/go-sitegen/internal/block"
	"github.com/goliatone/go-sitegen/pkg/interfaces"
)

// NativeParser implements interfaces.MarkdownParser with the built-in
// restricted dialect engine. It holds no mutable state.
type NativeParser struct {
	defaultOptions interfaces.ParseOptions
}

var _ interfaces.MarkdownParser = (*NativeParser)(nil)

// NewNativeParser constructs a parser using defaults for every call that does
// not supply its own options.
func NewNativeParser(defaults interfaces.ParseOptions) *NativeParser {
	return &NativeParser{defaultOptions: defaults}
}

// Parse renders Markdown using the parser defaults.
func (p *NativeParser) Parse(markdown []byte) ([]byte, error) {
	return p.ParseWithOptions(markdown, p.defaultOptions)
}

// ParseWithOptions renders Markdown into the HTML of the root node.
func (p *NativeParser) ParseWithOptions(markdown []byte, opts interfaces.ParseOptions) ([]byte, error) {
	root, err := ConvertDocumentWithOptions(string(markdown), block.Options{
		HeadingIDs: opts.HeadingIDs,
	})
	if err != nil {
		return nil, err
	}
	html, err := root.Render()
	if err != nil {
		return nil, err
	}
	return []byte(html), nil
}
