package dom

import (
	"strings"
	"testing"
)

func TestNewDocument(t *testing.T) {
	doc := NewDocument()
	if doc == nil {
		t.Fatal("NewDocument returned nil")
	}
	if doc.NodeType() != DocumentNode {
		t.Errorf("Expected DocumentNode, got %v", doc.NodeType())
	}
	if doc.AsNode().NodeName() != "#document" {
		t.Errorf("Expected '#document', got %s", doc.AsNode().NodeName())
	}
	if doc.DocumentElement() == nil || doc.DocumentElement().LocalName() != "html" {
		t.Error("Expected an <html> document element")
	}
	if doc.Head() == nil || doc.Body() == nil {
		t.Error("Expected head and body in the skeleton")
	}
}

func TestDocument_CreateElement(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")

	if el.TagName() != "DIV" {
		t.Errorf("Expected tagName 'DIV', got '%s'", el.TagName())
	}
	if el.LocalName() != "div" {
		t.Errorf("Expected localName 'div', got '%s'", el.LocalName())
	}
	if el.NodeType() != ElementNode {
		t.Errorf("Expected ElementNode, got %v", el.NodeType())
	}
	if el.AsNode().OwnerDocument() != doc {
		t.Error("Expected owner document to be set")
	}
}

func TestNode_TreeManipulation(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("div").AsNode()
	a := doc.CreateElement("a").AsNode()
	b := doc.CreateElement("b").AsNode()
	c := doc.CreateElement("c").AsNode()

	parent.AppendChild(a)
	parent.AppendChild(c)
	parent.InsertBefore(b, c)

	var names []string
	for _, child := range parent.ChildNodes() {
		names = append(names, child.NodeName())
	}
	if strings.Join(names, " ") != "A B C" {
		t.Errorf("Expected 'A B C', got %q", strings.Join(names, " "))
	}

	if b.PreviousSibling() != a || b.NextSibling() != c {
		t.Error("Sibling pointers wrong after InsertBefore")
	}

	parent.RemoveChild(b)
	if a.NextSibling() != c || c.PreviousSibling() != a {
		t.Error("Sibling pointers wrong after RemoveChild")
	}
	if b.ParentNode() != nil {
		t.Error("Removed child should have no parent")
	}

	// Removing a non-child is a no-op.
	parent.RemoveChild(b)
	parent.RemoveChild(nil)
}

func TestNode_AppendMovesFromOldParent(t *testing.T) {
	doc := NewDocument()
	p1 := doc.CreateElement("div").AsNode()
	p2 := doc.CreateElement("div").AsNode()
	child := doc.CreateElement("span").AsNode()

	p1.AppendChild(child)
	p2.AppendChild(child)

	if p1.HasChildNodes() {
		t.Error("Child should have been moved off the old parent")
	}
	if child.ParentNode() != p2 {
		t.Error("Child should be under the new parent")
	}
}

func TestNode_InsertBeforeSelfIsNoOp(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("div").AsNode()
	a := doc.CreateElement("a").AsNode()
	b := doc.CreateElement("b").AsNode()
	parent.AppendChild(a)
	parent.AppendChild(b)

	parent.InsertBefore(a, a)

	if a.ParentNode() != parent {
		t.Fatal("Node should stay attached to its parent")
	}
	if a.NextSibling() == a || a.PreviousSibling() == a {
		t.Fatal("Node must not become its own sibling")
	}
	children := parent.ChildNodes()
	if len(children) != 2 || children[0] != a || children[1] != b {
		t.Errorf("Expected children [A B], got %d nodes", len(children))
	}
	if parent.LastChild() != b {
		t.Error("LastChild should be unchanged")
	}
}

func TestNode_ReplaceChildWithItself(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("div").AsNode()
	a := doc.CreateElement("a").AsNode()
	parent.AppendChild(a)

	returned := parent.ReplaceChild(a, a)
	if returned != a {
		t.Error("ReplaceChild should return the node")
	}
	if a.ParentNode() != parent || parent.FirstChild() != a || parent.LastChild() != a {
		t.Error("Node should remain in place")
	}
	if a.NextSibling() != nil || a.PreviousSibling() != nil {
		t.Error("Node should have no siblings")
	}
}

func TestNode_InsertIntoOwnDescendantIsNoOp(t *testing.T) {
	doc := NewDocument()
	outer := doc.CreateElement("div").AsNode()
	inner := doc.CreateElement("span").AsNode()
	outer.AppendChild(inner)

	inner.AppendChild(outer)

	if outer.ParentNode() != nil {
		t.Error("Ancestor must not move under its own descendant")
	}
	if inner.ParentNode() != outer {
		t.Error("Descendant should stay attached")
	}
}

func TestNode_ReplaceChild(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("div").AsNode()
	oldChild := doc.CreateElement("span").AsNode()
	newChild := doc.CreateElement("em").AsNode()
	parent.AppendChild(oldChild)

	returned := parent.ReplaceChild(newChild, oldChild)
	if returned != oldChild {
		t.Error("ReplaceChild should return the replaced node")
	}
	if parent.FirstChild() != newChild || newChild.NextSibling() != nil {
		t.Error("New child should be the only child")
	}
}

func TestNode_TextContent(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	Append(el.AsNode(), "<span>Hello</span><!-- nope --> <b>World</b>")

	if got := el.TextContent(); got != "Hello World" {
		t.Errorf("Expected 'Hello World', got %q", got)
	}

	el.SetTextContent("plain")
	if got := el.TextContent(); got != "plain" {
		t.Errorf("Expected 'plain', got %q", got)
	}
	if el.AsNode().FirstChild() == nil || el.AsNode().FirstChild().NodeType() != TextNode {
		t.Error("SetTextContent should leave a single text node")
	}
}

func TestDocument_GetElementById(t *testing.T) {
	doc, err := ParseDocument(`<p id="a">one</p><div><p id="b">two</p></div>`)
	if err != nil {
		t.Fatalf("ParseDocument returned error: %v", err)
	}

	if el := doc.GetElementById("b"); el == nil || el.TextContent() != "two" {
		t.Error("Expected to find nested #b")
	}
	if el := doc.GetElementById("missing"); el != nil {
		t.Error("Expected nil for unknown id")
	}
	if el := doc.GetElementById(""); el != nil {
		t.Error("Expected nil for empty id")
	}
}

func TestDocument_QuerySelectorAll(t *testing.T) {
	doc, err := ParseDocument(`<ul><li class="x">1</li><li>2</li><li class="x">3</li></ul>`)
	if err != nil {
		t.Fatalf("ParseDocument returned error: %v", err)
	}

	items := doc.QuerySelectorAll("li.x")
	if len(items) != 2 {
		t.Fatalf("Expected 2 matches, got %d", len(items))
	}
	if items[0].TextContent() != "1" || items[1].TextContent() != "3" {
		t.Error("Matches should be in document order")
	}

	if first := doc.QuerySelector("li"); first == nil || first.TextContent() != "1" {
		t.Error("QuerySelector should return the first match")
	}
}

func TestElement_Closest(t *testing.T) {
	doc, err := ParseDocument(`<div class="outer"><section><span id="leaf">x</span></section></div>`)
	if err != nil {
		t.Fatalf("ParseDocument returned error: %v", err)
	}
	leaf := doc.GetElementById("leaf")

	if got := leaf.Closest(".outer"); got == nil || !HasClass(got, "outer") {
		t.Error("Closest should find the ancestor div")
	}
	if got := leaf.Closest("span"); got != leaf {
		t.Error("Closest is inclusive of self")
	}
	if got := leaf.Closest(".nope"); got != nil {
		t.Error("Closest should return nil for no match")
	}
}

func TestElement_InnerHTMLRoundTrip(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	if err := el.SetInnerHTML(`<p class="a">hi</p><br>`); err != nil {
		t.Fatalf("SetInnerHTML returned error: %v", err)
	}

	got := el.InnerHTML()
	if got != `<p class="a">hi</p><br>` {
		t.Errorf("Unexpected serialization: %q", got)
	}
}

func TestElement_OuterHTMLEscapes(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("span")
	el.SetAttribute("title", `a"b`)
	el.SetTextContent("1 < 2 & 3")

	got := el.OuterHTML()
	if !strings.Contains(got, "&lt;") || !strings.Contains(got, "&amp;") {
		t.Errorf("Text should be escaped, got %q", got)
	}
	if !strings.Contains(got, "&#34;b") && !strings.Contains(got, "&quot;b") {
		t.Errorf("Attribute should be escaped, got %q", got)
	}
}

func TestElement_Attributes(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("input")

	el.SetAttribute("Type", "text")
	if !el.HasAttribute("type") {
		t.Error("Attribute names are case-insensitive")
	}
	if got := el.GetAttribute("TYPE"); got != "text" {
		t.Errorf("Expected 'text', got %q", got)
	}

	el.SetAttribute("type", "number")
	if len(el.Attributes()) != 1 {
		t.Error("SetAttribute on an existing name should not duplicate it")
	}

	el.RemoveAttribute("type")
	if el.HasAttribute("type") {
		t.Error("Attribute should be gone after RemoveAttribute")
	}
	el.RemoveAttribute("type") // no-op
}

func TestFragment_FlattensOnInsert(t *testing.T) {
	doc := NewDocument()
	frag := doc.CreateDocumentFragment()
	frag.AsNode().AppendChild(doc.CreateElement("a").AsNode())
	frag.AsNode().AppendChild(doc.CreateElement("b").AsNode())

	parent := doc.CreateElement("div")
	parent.AsNode().AppendChild(frag.AsNode())

	if frag.AsNode().HasChildNodes() {
		t.Error("Fragment should be drained on insert")
	}
	children := parent.Children()
	if len(children) != 2 || children[0].LocalName() != "a" || children[1].LocalName() != "b" {
		t.Error("Fragment children should move into the parent in order")
	}
}

func TestNodeType_String(t *testing.T) {
	if ElementNode.String() != "ELEMENT_NODE" {
		t.Errorf("Unexpected: %s", ElementNode.String())
	}
	if NodeType(99).String() != "UNKNOWN_NODE" {
		t.Errorf("Unexpected: %s", NodeType(99).String())
	}
}

func TestDOMError(t *testing.T) {
	err := ErrNotSupported("no can do")
	if err.Error() != "NotSupportedError: no can do" {
		t.Errorf("Unexpected error string: %s", err.Error())
	}
}
