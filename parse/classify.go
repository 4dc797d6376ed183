package parse

import (
	"strings"

	"github.com/stylemark-format/stylemark/debug"
	"github.com/stylemark-format/stylemark/ir"
	"github.com/stylemark-format/stylemark/token"
)

// Annotation is the structured result of parsing one annotation body.
// Classes keeps duplicates and order as written; ID holds the last #id
// token seen. Attrs is ordered by first write, later writes to the same
// key update in place. Empty marks the empty-declaration sentinel: a
// matched annotation with a blank body, which forces style="" on the
// target without declaring anything.
type Annotation struct {
	Classes []string
	ID      string
	HasID   bool
	Attrs   []ir.Attr
	Empty   bool
}

// Parse tokenizes and classifies a raw annotation body (the text between
// the delimiters). A body that trims to nothing yields the
// empty-declaration sentinel. Parse never fails: tokens matching no
// known shape are dropped.
func Parse(body string, opts ...ParseOption) *Annotation {
	body = strings.TrimSpace(body)
	if body == "" {
		return &Annotation{Empty: true}
	}
	toks := token.Split(body)
	if debug.Tokens() {
		debug.Logf("tokens %q -> %v\n", body, toks)
	}
	return Classify(toks, opts...)
}

// Classify walks tokens left to right: .name is a class, #name an id,
// key=value an attribute (value optionally quoted), and a token
// containing ':' starts a CSS declaration which greedily absorbs
// following tokens until one reads as a class, id, attribute or a new
// declaration. Anything else is discarded.
func Classify(tokens []string, opts ...ParseOption) *Annotation {
	cfg := &parseConfig{}
	for _, o := range opts {
		o(cfg)
	}
	ann := &Annotation{}
	var decls []string
	i := 0
	for i < len(tokens) {
		t := tokens[i]
		switch {
		case strings.HasPrefix(t, "."):
			ann.Classes = append(ann.Classes, t[1:])
			i++
		case strings.HasPrefix(t, "#"):
			ann.ID = t[1:]
			ann.HasID = true
			i++
		case isAttrToken(t):
			key, val, _ := strings.Cut(t, "=")
			ann.setAttr(key, unquote(val))
			i++
		case strings.Contains(t, ":"):
			decl := t
			j := i + 1
			for j < len(tokens) && !startsNew(tokens[j]) {
				decl += " " + tokens[j]
				j++
			}
			decl = strings.TrimSpace(decl)
			if !strings.HasSuffix(decl, ";") {
				decl += ";"
			}
			decls = append(decls, decl)
			i = j
		default:
			// unknown token shape, dropped
			i++
		}
	}
	if len(decls) > 0 {
		style := strings.TrimSpace(strings.Join(decls, " "))
		if cfg.strictStyle {
			if prev, ok := ann.attr("style"); ok && prev != "" {
				style = joinStyle(prev, style)
			}
		}
		ann.setAttr("style", style)
	}
	return ann
}

// isAttrToken reports the key=value shape: contains '=' and no ':'.
func isAttrToken(t string) bool {
	return strings.Contains(t, "=") && !strings.Contains(t, ":")
}

// startsNew reports whether t terminates a declaration's greedy token
// absorption by starting a classification of its own.
func startsNew(t string) bool {
	return strings.HasPrefix(t, ".") ||
		strings.HasPrefix(t, "#") ||
		isAttrToken(t) ||
		strings.Contains(t, ":")
}

// unquote strips one layer of matching leading/trailing quotes.
func unquote(v string) string {
	if len(v) < 2 {
		return v
	}
	switch v[0] {
	case '"', '\'':
		if v[len(v)-1] == v[0] {
			return v[1 : len(v)-1]
		}
	}
	return v
}

// joinStyle concatenates two style values with the standard separator:
// "; " when the first does not already end in ';', a single space when
// it does.
func joinStyle(existing, add string) string {
	switch {
	case existing == "":
		return add
	case strings.HasSuffix(existing, ";"):
		return existing + " " + add
	default:
		return existing + "; " + add
	}
}

func (a *Annotation) attr(key string) (string, bool) {
	for i := range a.Attrs {
		if a.Attrs[i].Key == key {
			return a.Attrs[i].Val, true
		}
	}
	return "", false
}

func (a *Annotation) setAttr(key, val string) {
	for i := range a.Attrs {
		if a.Attrs[i].Key == key {
			a.Attrs[i].Val = val
			return
		}
	}
	a.Attrs = append(a.Attrs, ir.Attr{Key: key, Val: val})
}
