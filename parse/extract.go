package parse

import "strings"

const (
	DefaultOpen  = '{'
	DefaultClose = '}'
)

// Extract matches an annotation anchored at offset 0 of a text value.
// The annotation is non-nesting: body is everything strictly between the
// open delimiter and the first close delimiter, rest is everything after
// it. ok is false when value does not start with the open delimiter or
// no close delimiter follows; in that case the value is not an
// annotation and must be left untouched.
func Extract(value string, open, close rune) (body, rest string, ok bool) {
	if !strings.HasPrefix(value, string(open)) {
		return "", "", false
	}
	inner := value[len(string(open)):]
	end := strings.IndexRune(inner, close)
	if end == -1 {
		return "", "", false
	}
	return inner[:end], inner[end+len(string(close)):], true
}
