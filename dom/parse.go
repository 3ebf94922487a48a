package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ParseDocument parses a complete HTML document using
// golang.org/x/net/html. The parser supplies the html/head/body skeleton
// for partial input.
func ParseDocument(htmlContent string) (*Document, error) {
	root, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return nil, err
	}
	doc := newEmptyDocument()
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if converted := convertNetNode(c, doc); converted != nil {
			doc.AsNode().AppendChild(converted)
		}
	}
	return doc, nil
}

// BuildFragment parses an HTML string into a document fragment owned by
// doc. Parsing happens in a <body> context, so "<p>x</p><p>y</p>" yields
// a fragment with two paragraph children. An invalid-HTML error from the
// parser propagates unmodified.
func BuildFragment(doc *Document, htmlContent string) (*DocumentFragment, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(htmlContent), context)
	if err != nil {
		return nil, err
	}
	frag := doc.CreateDocumentFragment()
	for _, n := range nodes {
		if converted := convertNetNode(n, doc); converted != nil {
			frag.AsNode().AppendChild(converted)
		}
	}
	return frag, nil
}

// convertNetNode converts a golang.org/x/net/html node tree into this
// package's node representation. Doctype and error nodes are dropped.
func convertNetNode(n *html.Node, doc *Document) *Node {
	var node *Node
	switch n.Type {
	case html.ElementNode:
		el := doc.CreateElement(n.Data)
		for _, a := range n.Attr {
			el.SetAttribute(a.Key, a.Val)
		}
		node = el.AsNode()
	case html.TextNode:
		node = doc.CreateTextNode(n.Data)
	case html.CommentNode:
		node = doc.CreateComment(n.Data)
	default:
		return nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if converted := convertNetNode(c, doc); converted != nil {
			node.AppendChild(converted)
		}
	}
	return node
}

// voidElements are elements serialized without a closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// serializeNode writes the HTML serialization of a node and its
// descendants.
func serializeNode(n *Node, sb *strings.Builder) {
	switch n.nodeType {
	case TextNode:
		sb.WriteString(html.EscapeString(n.data))
	case CommentNode:
		sb.WriteString("<!--")
		sb.WriteString(n.data)
		sb.WriteString("-->")
	case ElementNode:
		tag := n.elem.localName
		sb.WriteByte('<')
		sb.WriteString(tag)
		for _, a := range n.elem.attrs {
			sb.WriteByte(' ')
			sb.WriteString(a.Name)
			sb.WriteString(`="`)
			sb.WriteString(html.EscapeString(a.Value))
			sb.WriteByte('"')
		}
		sb.WriteByte('>')
		if voidElements[tag] {
			return
		}
		for c := n.firstChild; c != nil; c = c.nextSibling {
			serializeNode(c, sb)
		}
		sb.WriteString("</")
		sb.WriteString(tag)
		sb.WriteByte('>')
	case DocumentFragmentNode, DocumentNode:
		for c := n.firstChild; c != nil; c = c.nextSibling {
			serializeNode(c, sb)
		}
	}
}
