package inline

import "strings"

// Kind identifies the inline markup a span was produced from.
type Kind uint8

const (
	Plain Kind = iota
	Bold
	Italic
	Code
	Image
	Link
)

// String returns the lower-case kind label used in logs and test output.
func (k Kind) String() string {
	switch k {
	case Plain:
		return "plain"
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Code:
		return "code"
	case Image:
		return "image"
	case Link:
		return "link"
	default:
		return "unknown"
	}
}

// HasTarget reports whether spans of this kind carry a URL.
func (k Kind) HasTarget() bool {
	return k == Image || k == Link
}

// Span is one typed fragment of inline content. Target is only meaningful
// for Image and Link spans.
type Span struct {
	Kind    Kind
	Content string
	Target  string
}

// NewSpan builds a span of the given kind without a target.
func NewSpan(kind Kind, content string) Span {
	return Span{Kind: kind, Content: content}
}

// PlainSpan returns a Plain span holding text.
func PlainSpan(text string) Span {
	return Span{Kind: Plain, Content: text}
}

// ImageSpan returns an Image span with alt text and source URL.
func ImageSpan(alt, src string) Span {
	return Span{Kind: Image, Content: alt, Target: src}
}

// LinkSpan returns a Link span with anchor text and URL.
func LinkSpan(text, href string) Span {
	return Span{Kind: Link, Content: text, Target: href}
}

// Text concatenates the content of every span, yielding the visible text
// with all markup removed.
func Text(spans []Span) string {
	var b strings.Builder
	for _, span := range spans {
		b.WriteString(span.Content)
	}
	return b.String()
}
