package dom

import (
	"testing"
)

func TestBuildFragment_TwoParagraphs(t *testing.T) {
	doc := NewDocument()
	frag, err := BuildFragment(doc, "<p>x</p><p>y</p>")
	if err != nil {
		t.Fatalf("BuildFragment returned error: %v", err)
	}

	children := frag.Children()
	if len(children) != 2 {
		t.Fatalf("Expected 2 child elements, got %d", len(children))
	}
	for i, want := range []string{"x", "y"} {
		if children[i].LocalName() != "p" {
			t.Errorf("Child %d: expected <p>, got <%s>", i, children[i].LocalName())
		}
		if children[i].TextContent() != want {
			t.Errorf("Child %d: expected text %q, got %q", i, want, children[i].TextContent())
		}
	}
}

func TestBuildFragment_LeadingWhitespacePreserved(t *testing.T) {
	doc := NewDocument()
	frag, err := BuildFragment(doc, "  <span>a</span>")
	if err != nil {
		t.Fatalf("BuildFragment returned error: %v", err)
	}
	first := frag.AsNode().FirstChild()
	if first == nil || first.NodeType() != TextNode || first.Data() != "  " {
		t.Error("Leading whitespace should survive fragment parsing")
	}
}

func TestAppend_HTMLString(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("div")

	appended := Append(parent.AsNode(), "<b>bold</b><i>italic</i>")
	if len(appended) != 2 {
		t.Fatalf("Expected 2 appended nodes, got %d", len(appended))
	}
	if parent.FirstElementChild().LocalName() != "b" {
		t.Errorf("Expected first child <b>, got <%s>", parent.FirstElementChild().LocalName())
	}
	if parent.LastElementChild().LocalName() != "i" {
		t.Errorf("Expected last child <i>, got <%s>", parent.LastElementChild().LocalName())
	}
}

func TestAppend_ElementAndNodeList(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("div")
	child := doc.CreateElement("span")

	appended := Append(parent.AsNode(), child)
	if len(appended) != 1 || appended[0] != child.AsNode() {
		t.Error("Appending an element should return that element's node")
	}

	a := doc.CreateTextNode("a")
	b := doc.CreateTextNode("b")
	Append(parent.AsNode(), []*Node{a, b})
	if parent.TextContent() != "ab" {
		t.Errorf("Expected text 'ab', got %q", parent.TextContent())
	}
}

func TestAppend_Fragment(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("div")
	frag, _ := BuildFragment(doc, "<p>1</p><p>2</p>")

	appended := Append(parent.AsNode(), frag)
	if len(appended) != 2 {
		t.Fatalf("Expected 2 appended nodes, got %d", len(appended))
	}
	if frag.AsNode().HasChildNodes() {
		t.Error("Fragment should be empty after insertion")
	}
	if len(parent.Children()) != 2 {
		t.Errorf("Expected 2 children on parent, got %d", len(parent.Children()))
	}
}

func TestAppend_UnsupportedContent(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("div")
	if got := Append(parent.AsNode(), 42); got != nil {
		t.Errorf("Unsupported content should return nil, got %v", got)
	}
	if got := Append(nil, "x"); got != nil {
		t.Errorf("Nil parent should return nil, got %v", got)
	}
}

func TestReplace(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("div")
	oldEl := doc.CreateElement("span")
	newEl := doc.CreateElement("em")
	parent.AsNode().AppendChild(oldEl.AsNode())

	Replace(oldEl.AsNode(), newEl.AsNode())

	if parent.FirstElementChild() != newEl {
		t.Error("Expected new element in place of old")
	}
	if oldEl.AsNode().ParentNode() != nil {
		t.Error("Old element should be detached")
	}

	// Replacing a parentless node is a no-op.
	Replace(oldEl.AsNode(), doc.CreateElement("u").AsNode())
}

func TestRemoveChildren(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("div")
	Append(parent.AsNode(), "<p>a</p>text<p>b</p>")

	removed := RemoveChildren(parent.AsNode())
	if len(removed) != 3 {
		t.Errorf("Expected 3 removed nodes, got %d", len(removed))
	}
	if parent.AsNode().HasChildNodes() {
		t.Error("Parent should have no children after RemoveChildren")
	}
	if !IsEmpty(parent.AsNode()) {
		t.Error("Parent should be empty after RemoveChildren")
	}
}

func TestEnterAndExitDocument(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")

	if el.AsNode().IsConnected() {
		t.Fatal("Fresh element should not be connected")
	}

	EnterDocument(doc, el)
	if !el.AsNode().IsConnected() {
		t.Error("Element should be connected after EnterDocument")
	}
	if el.AsNode().ParentNode() != doc.Body().AsNode() {
		t.Error("EnterDocument should append into the body")
	}

	// A second EnterDocument must not move or duplicate the element.
	marker := doc.CreateElement("span")
	doc.Body().AsNode().AppendChild(marker.AsNode())
	EnterDocument(doc, el)
	if doc.Body().LastElementChild() != marker {
		t.Error("EnterDocument on a connected element must be a no-op")
	}

	ExitDocument(el)
	if el.AsNode().IsConnected() {
		t.Error("Element should be disconnected after ExitDocument")
	}
	ExitDocument(el) // already detached; no-op
}

func TestContains(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("div")
	child := doc.CreateElement("span")
	parent.AsNode().AppendChild(child.AsNode())

	if !Contains(parent.AsNode(), child.AsNode()) {
		t.Error("Parent should contain child")
	}
	if !Contains(parent.AsNode(), parent.AsNode()) {
		t.Error("Contains is inclusive of self")
	}
	if Contains(child.AsNode(), parent.AsNode()) {
		t.Error("Child should not contain parent")
	}
	if Contains(nil, child.AsNode()) || Contains(parent.AsNode(), nil) {
		t.Error("Nil arguments should report false")
	}
}

func TestMatch(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	el.SetClassName("widget active")
	el.SetId("main")
	el.SetAttribute("data-role", "panel")

	cases := []struct {
		selector string
		want     bool
	}{
		{"div", true},
		{"span", false},
		{".widget", true},
		{".widget.active", true},
		{".missing", false},
		{"#main", true},
		{"#other", false},
		{"div.widget#main", true},
		{"[data-role]", true},
		{"[data-role=panel]", true},
		{"[data-role='panel']", true},
		{"[data-role=other]", false},
		{"[data-role^=pan]", true},
		{"[data-role$=nel]", true},
		{"[data-role*=ane]", true},
		{"span, div", true},
		{"*", true},
	}
	for _, tc := range cases {
		if got := Match(el.AsNode(), tc.selector); got != tc.want {
			t.Errorf("Match(%q) = %v, want %v", tc.selector, got, tc.want)
		}
	}

	text := doc.CreateTextNode("hi")
	if Match(text, "div") {
		t.Error("Text nodes never match")
	}
	if Match(nil, "div") {
		t.Error("Nil nodes never match")
	}
}

func TestToElement(t *testing.T) {
	doc, err := ParseDocument(`<div id="foo" class="box"><span class="inner">x</span></div>`)
	if err != nil {
		t.Fatalf("ParseDocument returned error: %v", err)
	}
	ctx := NewContext(doc)

	byId := ctx.ToElement("#foo")
	if byId == nil || byId.AsElement().Id() != "foo" {
		t.Error("ToElement('#foo') should resolve by id")
	}

	bySelector := ctx.ToElement(".inner")
	if bySelector == nil || bySelector.AsElement().LocalName() != "span" {
		t.Error("ToElement('.inner') should resolve by selector")
	}

	if got := ctx.ToElement(byId); got != byId {
		t.Error("ToElement on a node should return it unchanged")
	}
	el := byId.AsElement()
	if got := ctx.ToElement(el); got != el.AsNode() {
		t.Error("ToElement on an element should return its node")
	}
	if got := ctx.ToElement(doc); got != doc.AsNode() {
		t.Error("ToElement on a document should return its node")
	}

	if got := ctx.ToElement("not a selector???"); got != nil {
		t.Errorf("Unresolvable selector should yield nil, got %v", got)
	}
	if got := ctx.ToElement("#nope"); got != nil {
		t.Errorf("Unknown id should yield nil, got %v", got)
	}
	if got := ctx.ToElement(42); got != nil {
		t.Errorf("Unsupported value should yield nil, got %v", got)
	}
}
