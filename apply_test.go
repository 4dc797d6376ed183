package stylemark

import (
	"testing"

	"github.com/stylemark-format/stylemark/ir"
	"github.com/stylemark-format/stylemark/markup"
)

func checkApply(t *testing.T, root *ir.Node, want string, opts ...Option) {
	t.Helper()
	Apply(root, opts...)
	if got := markup.MustString(root); got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}

func TestApplyNoOp(t *testing.T) {
	for _, text := range []string{
		"Some plain text",
		"Some text {color: red;} in the middle",
		"{unterminated annotation",
		"",
	} {
		p := ir.Element("p", ir.Text(text))
		doc := ir.Document(p)
		Apply(doc)
		if len(p.Attrs) != 0 {
			t.Errorf("%q: attrs %v, want none", text, p.Attrs)
		}
		if len(p.Children) != 1 || p.Children[0].Text != text {
			t.Errorf("%q: text node changed", text)
		}
	}
}

func TestApplyStyleToParent(t *testing.T) {
	doc := ir.Document(ir.Element("p",
		ir.Text("{color: red; font-weight: bold;}This is styled text")))
	checkApply(t, doc,
		`<p style="color: red; font-weight: bold;">This is styled text</p>`)
}

func TestApplyConsumedTextPruned(t *testing.T) {
	div := ir.Element("div", ir.Text("{display: none;}"))
	doc := ir.Document(div)
	checkApply(t, doc, `<div style="display: none;"></div>`)
	if len(div.Children) != 0 {
		t.Errorf("children = %d, want 0", len(div.Children))
	}
}

func TestApplyEmptyDeclaration(t *testing.T) {
	doc := ir.Document(ir.Element("p", ir.Text("{}Some text here")))
	checkApply(t, doc, `<p style="">Some text here</p>`)
}

func TestApplyPostElementStyling(t *testing.T) {
	doc := ir.Document(ir.Element("div",
		ir.Element("em", ir.Text("emphasis")),
		ir.Text("{font-style: italic;} and "),
		ir.Element("strong", ir.Text("bold")),
		ir.Text("{font-weight: bold;} together"),
	))
	checkApply(t, doc,
		`<div><em style="font-style: italic;">emphasis</em>and`+
			`<strong style="font-weight: bold;">bold</strong>together</div>`)
}

func TestApplySoleRemainingSibling(t *testing.T) {
	// the annotation is the parent's only leading content; once pruned,
	// the single element left receives the style, not the parent
	doc := ir.Document(ir.Element("div",
		ir.Text("{color: red;}"),
		ir.Element("em", ir.Text("x")),
	))
	checkApply(t, doc, `<div><em style="color: red;">x</em></div>`)
}

func TestApplyClassMerge(t *testing.T) {
	p := ir.Element("p", ir.Text("{.new .x}")).WithAttr("class", "existing")
	doc := ir.Document(p)
	Apply(doc)
	if got := p.AttrVal("class"); got != "existing new x" {
		t.Errorf("class = %q, want %q", got, "existing new x")
	}
}

func TestApplyClassMergeListForm(t *testing.T) {
	p := ir.Element("p", ir.Text("{.new .existing}")).
		WithAttrList("class", "existing", "other")
	doc := ir.Document(p)
	Apply(doc)
	if got := p.AttrVal("class"); got != "existing other new" {
		t.Errorf("class = %q, want %q", got, "existing other new")
	}
}

func TestApplyMixedTokens(t *testing.T) {
	doc := ir.Document(ir.Element("p",
		ir.Text(`{.card .featured #main-article color: blue; padding: 20px; data-category="tech"}body`)))
	checkApply(t, doc,
		`<p class="card featured" id="main-article" data-category="tech" `+
			`style="color: blue; padding: 20px;">body</p>`)
}

func TestApplyStyleConcat(t *testing.T) {
	tests := []struct {
		existing string
		want     string
	}{
		{existing: "color: blue", want: "color: blue; font-weight: bold;"},
		{existing: "color: blue;", want: "color: blue; font-weight: bold;"},
		{existing: "", want: "font-weight: bold;"},
	}
	for _, tt := range tests {
		p := ir.Element("p", ir.Text("{font-weight: bold;}t"))
		if tt.existing != "" {
			p.SetAttr("style", tt.existing)
		}
		Apply(ir.Document(p))
		if got := p.AttrVal("style"); got != tt.want {
			t.Errorf("existing %q: style = %q, want %q", tt.existing, got, tt.want)
		}
	}
}

func TestApplyNoTargetAtRoot(t *testing.T) {
	// a document root is not an element: the annotation is stripped but
	// its parsing work is discarded
	doc := ir.Document(ir.Text("{color: red;} hi"))
	checkApply(t, doc, "hi")
}

func TestApplyDiscardedTokensStillStrip(t *testing.T) {
	doc := ir.Document(ir.Element("p", ir.Text("{bogus}text")))
	checkApply(t, doc, "<p>text</p>")
}

func TestApplySecondAnnotationNotRescanned(t *testing.T) {
	// one visit per text node: the remainder is not re-examined
	doc := ir.Document(ir.Element("p", ir.Text("{color: red;}{.x}t")))
	checkApply(t, doc, `<p style="color: red;">{.x}t</p>`)
}

func TestApplyIdempotentOnCleanTree(t *testing.T) {
	doc := ir.Document(ir.Element("div",
		ir.Element("p", ir.Text("hello")).WithAttr("class", "a"),
		ir.Comment(" note "),
		ir.Text("tail"),
	))
	before := markup.MustString(doc)
	Apply(doc)
	if got := markup.MustString(doc); got != before {
		t.Errorf("clean tree changed:\n%s\n->\n%s", before, got)
	}
}

func TestApplyDelims(t *testing.T) {
	doc := ir.Document(ir.Element("p", ir.Text("«color: red;»t")))
	checkApply(t, doc, `<p style="color: red;">t</p>`, WithDelims('«', '»'))
}

func TestApplyMatch(t *testing.T) {
	doc := ir.Document(
		ir.Element("p", ir.Text("{color: red;}a")),
		ir.Element("div", ir.Text("{color: red;}b")),
	)
	checkApply(t, doc,
		`<p style="color: red;">a</p><div>{color: red;}b</div>`,
		WithMatch(func(parent *ir.Node) bool { return parent.Tag == "p" }))
}

func TestApplyStrictStyle(t *testing.T) {
	doc := ir.Document(ir.Element("p",
		ir.Text(`{style="margin: 0;" color: red;}t`)))
	checkApply(t, doc, `<p style="margin: 0; color: red;">t</p>`,
		WithStrictStyle(true))
}
