package inline

import "strings"

// SplitDelimiter splits every Plain span on delim, alternating between Plain
// and kind for the text between delimiters. Spans of other kinds pass through
// untouched. Empty segments produced by adjacent delimiters are dropped.
//
// An odd number of delimiters inside a Plain span means a delimiter was opened
// and never closed; that is reported as a markup error.
func SplitDelimiter(spans []Span, delim string, kind Kind) ([]Span, error) {
	out := make([]Span, 0, len(spans))
	if delim == "" {
		return append(out, spans...), nil
	}

	for _, span := range spans {
		if span.Kind != Plain {
			out = append(out, span)
			continue
		}

		parts := strings.Split(span.Content, delim)
		if len(parts)%2 == 0 {
			return nil, unclosedDelimiterError(delim, span.Content)
		}

		for i, part := range parts {
			if part == "" {
				continue
			}
			if i%2 == 0 {
				out = append(out, PlainSpan(part))
				continue
			}
			out = append(out, NewSpan(kind, part))
		}
	}

	return out, nil
}
