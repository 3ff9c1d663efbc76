package block

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-slug"

	"github.com/goliatone/go-sitegen/internal/htmlnode"
	"github.com/goliatone/go-sitegen/internal/inline"
)

// Options tunes how blocks are turned into HTML nodes.
type Options struct {
	// HeadingIDs adds a slugified id attribute to every heading.
	HeadingIDs bool
}

// ToNode converts one classified block into an HTML subtree.
func ToNode(block string, kind Type, opts Options) (htmlnode.Node, error) {
	switch kind {
	case Heading:
		return headingNode(block, opts)
	case Code:
		return codeNode(block)
	case Quote:
		return quoteNode(block)
	case UnorderedList:
		return listNode(block, "ul", stripUnorderedMarker)
	case OrderedList:
		return listNode(block, "ol", stripOrderedMarker)
	default:
		return paragraphNode(block)
	}
}

// SpanToNode maps a single inline span onto a leaf node.
func SpanToNode(span inline.Span) htmlnode.Node {
	switch span.Kind {
	case inline.Bold:
		return htmlnode.NewLeaf("b", span.Content)
	case inline.Italic:
		return htmlnode.NewLeaf("i", span.Content)
	case inline.Code:
		return htmlnode.NewLeaf("code", span.Content)
	case inline.Image:
		return htmlnode.NewLeaf("img", "",
			htmlnode.Attr{Key: "src", Value: span.Target},
			htmlnode.Attr{Key: "alt", Value: span.Content},
		)
	case inline.Link:
		return htmlnode.NewLeaf("a", span.Content, htmlnode.Attr{Key: "href", Value: span.Target})
	default:
		return htmlnode.NewText(span.Content)
	}
}

// InlineChildren tokenizes text and converts every span to a node.
func InlineChildren(text string) ([]htmlnode.Node, error) {
	spans, err := inline.Tokenize(text)
	if err != nil {
		return nil, err
	}
	return spansToNodes(spans), nil
}

func spansToNodes(spans []inline.Span) []htmlnode.Node {
	children := make([]htmlnode.Node, 0, len(spans))
	for _, span := range spans {
		children = append(children, SpanToNode(span))
	}
	return children
}

func headingNode(block string, opts Options) (htmlnode.Node, error) {
	level := HeadingLevel(block)
	if level == 0 {
		return paragraphNode(block)
	}

	spans, err := inline.Tokenize(block[level+1:])
	if err != nil {
		return nil, err
	}

	node := htmlnode.NewParent("h"+strconv.Itoa(level), spansToNodes(spans))
	if opts.HeadingIDs {
		if id, err := slug.Normalize(inline.Text(spans)); err == nil && id != "" {
			node.Attrs = htmlnode.NewAttributes(htmlnode.Attr{Key: "id", Value: id})
		}
	}
	return node, nil
}

func codeNode(block string) (htmlnode.Node, error) {
	rows := lines(block)
	if !isCode(rows) {
		return paragraphNode(block)
	}
	body := strings.Join(rows[1:len(rows)-1], "\n")
	code := htmlnode.NewParent("code", []htmlnode.Node{htmlnode.NewText(body)})
	return htmlnode.NewParent("pre", []htmlnode.Node{code}), nil
}

func quoteNode(block string) (htmlnode.Node, error) {
	rows := lines(block)
	stripped := make([]string, 0, len(rows))
	for _, row := range rows {
		row = strings.TrimPrefix(row, ">")
		row = strings.TrimPrefix(row, " ")
		stripped = append(stripped, row)
	}

	children, err := InlineChildren(strings.Join(stripped, " "))
	if err != nil {
		return nil, err
	}
	return htmlnode.NewParent("blockquote", children), nil
}

func listNode(block, tag string, strip func(row string) string) (htmlnode.Node, error) {
	rows := lines(block)
	items := make([]htmlnode.Node, 0, len(rows))
	for _, row := range rows {
		children, err := InlineChildren(strip(row))
		if err != nil {
			return nil, err
		}
		items = append(items, htmlnode.NewParent("li", children))
	}
	return htmlnode.NewParent(tag, items), nil
}

func stripUnorderedMarker(row string) string {
	if len(row) < 2 {
		return ""
	}
	return row[2:]
}

func stripOrderedMarker(row string) string {
	_, item, found := strings.Cut(row, ". ")
	if !found {
		return row
	}
	return item
}

func paragraphNode(block string) (htmlnode.Node, error) {
	children, err := InlineChildren(strings.Join(lines(block), " "))
	if err != nil {
		return nil, err
	}
	return htmlnode.NewParent("p", children), nil
}
