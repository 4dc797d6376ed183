package encode

import (
	"bytes"
	"testing"

	"github.com/stylemark-format/stylemark/ir"
)

func TestEncode(t *testing.T) {
	doc := ir.Document(
		ir.Element("div",
			ir.Element("em", ir.Text("hi")).WithAttr("class", "a b"),
			ir.Comment(" c "),
		),
	)
	buf := bytes.NewBuffer(nil)
	if err := Encode(doc, buf); err != nil {
		t.Fatal(err)
	}
	want := `#document
  div
    em class="a b"
      "hi"
    <!-- c -->
`
	if got := buf.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeIndent(t *testing.T) {
	doc := ir.Document(ir.Element("p"))
	buf := bytes.NewBuffer(nil)
	if err := Encode(doc, buf, Indent(4)); err != nil {
		t.Fatal(err)
	}
	want := "#document\n    p\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
