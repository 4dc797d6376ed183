package ir

import "testing"

func TestRemoveChildReindexes(t *testing.T) {
	a, b, c := Text("a"), Text("b"), Text("c")
	p := Element("div", a, b, c)
	removed := p.RemoveChild(1)
	if removed != b {
		t.Fatalf("removed %v, want b", removed)
	}
	if removed.Parent != nil {
		t.Error("removed child keeps parent")
	}
	if len(p.Children) != 2 {
		t.Fatalf("children = %d, want 2", len(p.Children))
	}
	if p.Children[0] != a || p.Children[1] != c {
		t.Error("wrong children after removal")
	}
	if c.ParentIndex != 1 {
		t.Errorf("c.ParentIndex = %d, want 1", c.ParentIndex)
	}
}

func TestCloneDetached(t *testing.T) {
	p := Element("div",
		Element("em", Text("x")).WithAttr("class", "a"),
		Comment("c"),
	)
	q := p.Clone()
	q.Children[0].SetAttr("class", "changed")
	q.Children[0].Children[0].Text = "y"
	if got := p.Children[0].AttrVal("class"); got != "a" {
		t.Errorf("original class = %q, want %q", got, "a")
	}
	if got := p.Children[0].Children[0].Text; got != "x" {
		t.Errorf("original text = %q, want %q", got, "x")
	}
	if q.Children[0].Parent != q {
		t.Error("clone child parent not rewired")
	}
}

func TestVisitOrder(t *testing.T) {
	doc := Document(
		Element("a", Element("b"), Text("t")),
		Element("c"),
	)
	var pre []string
	err := doc.Visit(func(n *Node, isPost bool) (bool, error) {
		if !isPost {
			pre = append(pre, n.label())
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"#document", "a", "b", "#text", "c"}
	if len(pre) != len(want) {
		t.Fatalf("visited %v, want %v", pre, want)
	}
	for i := range want {
		if pre[i] != want[i] {
			t.Fatalf("visited %v, want %v", pre, want)
		}
	}
}

func TestPath(t *testing.T) {
	em := Element("em")
	div := Element("div", Text("x"), em)
	Document(div)
	if got := em.Path(); got != "$/div[0]/em[1]" {
		t.Errorf("Path = %q", got)
	}
}
