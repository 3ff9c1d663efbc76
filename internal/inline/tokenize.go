package inline

// stage transforms the Plain spans of a sequence, leaving other kinds alone.
type stage func([]Span) ([]Span, error)

func delimiterStage(delim string, kind Kind) stage {
	return func(spans []Span) ([]Span, error) {
		return SplitDelimiter(spans, delim, kind)
	}
}

func referenceStage(fn func([]Span) []Span) stage {
	return func(spans []Span) ([]Span, error) {
		return fn(spans), nil
	}
}

// Bold must run before italic: "**" contains "*".
var pipeline = []stage{
	delimiterStage("**", Bold),
	delimiterStage("*", Italic),
	delimiterStage("`", Code),
	referenceStage(SplitImages),
	referenceStage(SplitLinks),
}

// Tokenize converts a run of inline markdown into an ordered list of spans
// covering the whole input. It fails with a markup error when a delimiter is
// left unclosed.
func Tokenize(text string) ([]Span, error) {
	spans := []Span{PlainSpan(text)}
	for _, apply := range pipeline {
		next, err := apply(spans)
		if err != nil {
			return nil, err
		}
		spans = next
	}
	return spans, nil
}
