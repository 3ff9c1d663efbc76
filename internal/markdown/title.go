package markdown

import (
	"errors"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

const (
	// TitlePlaceholder is replaced with the page title by ApplyTemplate.
	TitlePlaceholder = "{{ Title }}"
	// ContentPlaceholder is replaced with the rendered body by ApplyTemplate.
	ContentPlaceholder = "{{ Content }}"
)

// ErrTitleNotFound is returned when a document has no "# " heading line.
var ErrTitleNotFound = errors.New("markdown: no title found")

// ExtractTitle returns the text of the first line that starts with "# ".
func ExtractTitle(markdown string) (string, error) {
	for _, line := range strings.Split(markdown, "\n") {
		line = strings.TrimRight(line, "\r")
		if title, ok := strings.CutPrefix(line, "# "); ok {
			return strings.TrimSpace(title), nil
		}
	}
	return "", goerrors.Wrap(ErrTitleNotFound, goerrors.CategoryBadInput, "document title missing").
		WithTextCode("MARKDOWN_TITLE_MISSING")
}

// ApplyTemplate substitutes every title and content placeholder in tpl.
func ApplyTemplate(tpl, title, content string) string {
	return strings.NewReplacer(
		TitlePlaceholder, title,
		ContentPlaceholder, content,
	).Replace(tpl)
}
