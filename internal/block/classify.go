package block

import (
	"regexp"
	"strconv"
	"strings"
)

// Type is the structural kind of a block.
type Type uint8

const (
	Paragraph Type = iota
	Heading
	Code
	Quote
	UnorderedList
	OrderedList
)

// String returns the lower-case label for the block type.
func (t Type) String() string {
	switch t {
	case Paragraph:
		return "paragraph"
	case Heading:
		return "heading"
	case Code:
		return "code"
	case Quote:
		return "quote"
	case UnorderedList:
		return "unordered_list"
	case OrderedList:
		return "ordered_list"
	default:
		return "unknown"
	}
}

const codeFence = "```"

var headingPattern = regexp.MustCompile(`^(#{1,6}) (.+)$`)

// Classify returns the type of a trimmed block. Rules are checked in order
// heading, code, quote, unordered list, ordered list; anything else is a
// paragraph.
func Classify(block string) Type {
	rows := lines(block)

	switch {
	case isHeading(rows):
		return Heading
	case isCode(rows):
		return Code
	case isQuote(rows):
		return Quote
	case isUnorderedList(rows):
		return UnorderedList
	case isOrderedList(rows):
		return OrderedList
	default:
		return Paragraph
	}
}

// HeadingLevel returns the 1-6 level of a heading block, or 0 when the block
// is not a heading.
func HeadingLevel(block string) int {
	rows := lines(block)
	if !isHeading(rows) {
		return 0
	}
	return len(headingPattern.FindStringSubmatch(rows[0])[1])
}

func isHeading(rows []string) bool {
	return len(rows) == 1 && headingPattern.MatchString(rows[0])
}

func isCode(rows []string) bool {
	return len(rows) >= 2 && rows[0] == codeFence && rows[len(rows)-1] == codeFence
}

func isQuote(rows []string) bool {
	for _, row := range rows {
		if !strings.HasPrefix(row, ">") {
			return false
		}
	}
	return true
}

func isUnorderedList(rows []string) bool {
	return allHavePrefix(rows, "* ") || allHavePrefix(rows, "- ")
}

func allHavePrefix(rows []string, prefix string) bool {
	for _, row := range rows {
		if !strings.HasPrefix(row, prefix) {
			return false
		}
	}
	return true
}

func isOrderedList(rows []string) bool {
	for i, row := range rows {
		if !strings.HasPrefix(row, orderedMarker(i+1)) {
			return false
		}
	}
	return true
}

func orderedMarker(n int) string {
	return strconv.Itoa(n) + ". "
}
