package inline

import "regexp"

var (
	imagePattern = regexp.MustCompile(`!\[([^\[\]]*)\]\(([^\(\)]*)\)`)
	linkPattern  = regexp.MustCompile(`\[([^\[\]]*)\]\(([^\(\)]*)\)`)
)

// Match is one image or link reference found in a run of text.
type Match struct {
	Text string
	URL  string

	start int
	end   int
}

// ExtractImages returns every `![alt](url)` reference in text, left to right.
func ExtractImages(text string) []Match {
	return findMatches(imagePattern, text, false)
}

// ExtractLinks returns every `[text](url)` reference in text that is not
// preceded by `!`.
func ExtractLinks(text string) []Match {
	return findMatches(linkPattern, text, true)
}

func findMatches(pattern *regexp.Regexp, text string, skipImages bool) []Match {
	indexes := pattern.FindAllStringSubmatchIndex(text, -1)
	if len(indexes) == 0 {
		return nil
	}
	matches := make([]Match, 0, len(indexes))
	for _, idx := range indexes {
		if skipImages && idx[0] > 0 && text[idx[0]-1] == '!' {
			continue
		}
		matches = append(matches, Match{
			Text:  text[idx[2]:idx[3]],
			URL:   text[idx[4]:idx[5]],
			start: idx[0],
			end:   idx[1],
		})
	}
	return matches
}

// SplitImages replaces image references inside Plain spans with Image spans.
func SplitImages(spans []Span) []Span {
	return splitReferences(spans, ExtractImages, ImageSpan)
}

// SplitLinks replaces link references inside Plain spans with Link spans.
func SplitLinks(spans []Span) []Span {
	return splitReferences(spans, ExtractLinks, LinkSpan)
}

func splitReferences(spans []Span, extract func(string) []Match, build func(text, url string) Span) []Span {
	out := make([]Span, 0, len(spans))
	for _, span := range spans {
		if span.Kind != Plain {
			out = append(out, span)
			continue
		}

		matches := extract(span.Content)
		if len(matches) == 0 {
			out = append(out, span)
			continue
		}

		rest := 0
		for _, match := range matches {
			if before := span.Content[rest:match.start]; before != "" {
				out = append(out, PlainSpan(before))
			}
			out = append(out, build(match.Text, match.URL))
			rest = match.end
		}
		if tail := span.Content[rest:]; tail != "" {
			out = append(out, PlainSpan(tail))
		}
	}
	return out
}
