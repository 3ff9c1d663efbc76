// Package markdown turns content files into HTML.
//
// The native engine handles a restricted dialect: headings, fenced code,
// quotes, flat lists and paragraphs with bold, italic, code, link and image
// spans. ConvertDocument builds the node tree and ToHTML renders it in one
// step. A goldmark backed parser is available behind the same
// interfaces.MarkdownParser contract for content that needs CommonMark.
//
// Service adds filesystem discovery, YAML front matter and checksums on top
// of the parsers and is what the site generator consumes.
package markdown
