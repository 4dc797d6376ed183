package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSetAttrKeepsPosition(t *testing.T) {
	n := Element("p")
	n.SetAttr("a", "1")
	n.SetAttr("b", "2")
	n.SetAttr("a", "3")
	want := []Attr{{Key: "a", Val: "3"}, {Key: "b", Val: "2"}}
	if d := cmp.Diff(want, n.Attrs); d != "" {
		t.Errorf("(-want +got)\n%s", d)
	}
}

func TestSetAttrClearsListForm(t *testing.T) {
	n := Element("p")
	n.SetAttrList("class", []string{"a", "b"})
	n.SetAttr("class", "c")
	a, _ := n.Attr("class")
	if a.List != nil || a.Val != "c" {
		t.Errorf("attr = %+v", a)
	}
}

func TestAttrValueAndTokens(t *testing.T) {
	tests := []struct {
		attr   Attr
		value  string
		tokens []string
	}{
		{attr: Attr{Key: "class", Val: " a  b "}, value: " a  b ", tokens: []string{"a", "b"}},
		{attr: Attr{Key: "class", List: []string{"a", "b"}}, value: "a b", tokens: []string{"a", "b"}},
		{attr: Attr{Key: "class"}, value: "", tokens: []string{}},
	}
	for _, tt := range tests {
		if got := tt.attr.Value(); got != tt.value {
			t.Errorf("%+v: Value = %q, want %q", tt.attr, got, tt.value)
		}
		if d := cmp.Diff(tt.tokens, tt.attr.Tokens()); d != "" {
			t.Errorf("%+v: Tokens (-want +got)\n%s", tt.attr, d)
		}
	}
}

func TestDelAttr(t *testing.T) {
	n := Element("p").WithAttr("a", "1").WithAttr("b", "2")
	if !n.DelAttr("a") {
		t.Error("DelAttr(a) = false")
	}
	if n.DelAttr("a") {
		t.Error("second DelAttr(a) = true")
	}
	if len(n.Attrs) != 1 || n.Attrs[0].Key != "b" {
		t.Errorf("attrs = %v", n.Attrs)
	}
}
