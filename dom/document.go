package dom

import (
	"strings"
)

// Document is a document node. It shares its memory layout with Node.
type Document Node

// NewDocument creates an empty HTML document with the usual
// html/head/body skeleton.
func NewDocument() *Document {
	node := newNode(DocumentNode, "#document", nil)
	d := (*Document)(node)

	html := d.CreateElement("html")
	head := d.CreateElement("head")
	body := d.CreateElement("body")
	html.AsNode().AppendChild(head.AsNode())
	html.AsNode().AppendChild(body.AsNode())
	node.AppendChild(html.AsNode())

	return d
}

// newEmptyDocument creates a document with no skeleton; the parser
// builds the tree itself.
func newEmptyDocument() *Document {
	return (*Document)(newNode(DocumentNode, "#document", nil))
}

// AsNode returns the underlying Node.
func (d *Document) AsNode() *Node {
	return (*Node)(d)
}

// NodeType returns DocumentNode (9).
func (d *Document) NodeType() NodeType {
	return DocumentNode
}

// CreateElement creates a new element with the given tag name. Tag names
// are stored lowercase; TagName reports them uppercase as in an HTML
// document.
func (d *Document) CreateElement(tagName string) *Element {
	localName := strings.ToLower(tagName)
	node := newNode(ElementNode, strings.ToUpper(tagName), d)
	node.elem = &elementData{
		localName: localName,
		tagName:   strings.ToUpper(tagName),
	}
	return (*Element)(node)
}

// CreateTextNode creates a new text node with the given data.
func (d *Document) CreateTextNode(data string) *Node {
	node := newNode(TextNode, "#text", d)
	node.data = data
	return node
}

// CreateComment creates a new comment node with the given data.
func (d *Document) CreateComment(data string) *Node {
	node := newNode(CommentNode, "#comment", d)
	node.data = data
	return node
}

// CreateDocumentFragment creates a new empty document fragment.
func (d *Document) CreateDocumentFragment() *DocumentFragment {
	return (*DocumentFragment)(newNode(DocumentFragmentNode, "#document-fragment", d))
}

// DocumentElement returns the root element of the document (the <html>
// element), or nil for an empty document.
func (d *Document) DocumentElement() *Element {
	for c := d.AsNode().firstChild; c != nil; c = c.nextSibling {
		if c.nodeType == ElementNode {
			return (*Element)(c)
		}
	}
	return nil
}

// Head returns the document's <head> element, or nil.
func (d *Document) Head() *Element {
	return d.childOfRoot("head")
}

// Body returns the document's <body> element, or nil.
func (d *Document) Body() *Element {
	return d.childOfRoot("body")
}

func (d *Document) childOfRoot(localName string) *Element {
	root := d.DocumentElement()
	if root == nil {
		return nil
	}
	for c := root.AsNode().firstChild; c != nil; c = c.nextSibling {
		if c.nodeType == ElementNode && c.elem.localName == localName {
			return (*Element)(c)
		}
	}
	return nil
}

// GetElementById returns the first element in document order with the
// given id, or nil.
func (d *Document) GetElementById(id string) *Element {
	if id == "" {
		return nil
	}
	var found *Element
	walkElements(d.AsNode(), func(el *Element) bool {
		if el.Id() == id {
			found = el
			return false
		}
		return true
	})
	return found
}

// QuerySelector returns the first element matching the selector, or nil.
func (d *Document) QuerySelector(selector string) *Element {
	return queryFirst(d.AsNode(), selector)
}

// QuerySelectorAll returns all elements matching the selector, in
// document order.
func (d *Document) QuerySelectorAll(selector string) []*Element {
	return queryAll(d.AsNode(), selector)
}

// OuterHTML returns the serialized HTML of the whole document.
func (d *Document) OuterHTML() string {
	var sb strings.Builder
	for c := d.AsNode().firstChild; c != nil; c = c.nextSibling {
		serializeNode(c, &sb)
	}
	return sb.String()
}
