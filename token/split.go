package token

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Split breaks a trimmed annotation body into whitespace-separated
// tokens. A single- or double-quoted run is atomic, quotes included, so
// whitespace inside quotes does not separate. A quoted run directly
// adjacent to an unquoted run belongs to the same token. A quote with no
// closing mate extends to the end of the body.
func Split(body string) []string {
	var (
		toks []string
		i, n = 0, len(body)
	)
	for i < n {
		r, sz := utf8.DecodeRuneInString(body[i:])
		if unicode.IsSpace(r) {
			i += sz
			continue
		}
		start := i
		for i < n {
			r, sz = utf8.DecodeRuneInString(body[i:])
			if unicode.IsSpace(r) {
				break
			}
			if r == '"' || r == '\'' {
				j := strings.IndexRune(body[i+sz:], r)
				if j == -1 {
					i = n
					break
				}
				i += sz + j + 1
				continue
			}
			i += sz
		}
		toks = append(toks, body[start:i])
	}
	return toks
}
