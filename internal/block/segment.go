package block

import "strings"

// Split breaks a document into block strings. Blocks are separated by one or
// more blank lines (lines holding only whitespace). Every line of a block is
// trimmed, and blocks that end up empty are dropped.
func Split(document string) []string {
	document = strings.ReplaceAll(document, "\r\n", "\n")

	var (
		blocks  []string
		current []string
	)

	flush := func() {
		if len(current) == 0 {
			return
		}
		if joined := strings.TrimSpace(strings.Join(current, "\n")); joined != "" {
			blocks = append(blocks, joined)
		}
		current = current[:0]
	}

	for _, line := range strings.Split(document, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			flush()
			continue
		}
		current = append(current, trimmed)
	}
	flush()

	return blocks
}

func lines(block string) []string {
	return strings.Split(block, "\n")
}
