package inline

import (
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

const unclosedDelimiterCode = "MARKDOWN_UNCLOSED_DELIMITER"

// ErrUnclosedDelimiter is returned when a bold, italic or code delimiter is
// opened but never closed within the same run of text.
var ErrUnclosedDelimiter = errors.New("inline: unclosed delimiter")

// IsMarkupError reports whether err was caused by invalid inline markup.
func IsMarkupError(err error) bool {
	return goerrors.IsCategory(err, goerrors.CategoryValidation)
}

func unclosedDelimiterError(delim, text string) error {
	return goerrors.Wrap(ErrUnclosedDelimiter, goerrors.CategoryValidation, "invalid markdown: unclosed delimiter "+delim).
		WithTextCode(unclosedDelimiterCode).
		WithMetadata(map[string]any{
			"delimiter": delim,
			"text":      text,
		})
}
