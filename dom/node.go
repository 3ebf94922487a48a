package dom

import (
	"strings"
)

// Node represents a node in the DOM tree. Element, Document, and
// DocumentFragment are conversion types over Node.
type Node struct {
	nodeType NodeType
	nodeName string
	data     string // text content for Text and Comment nodes
	ownerDoc *Document

	parentNode  *Node
	firstChild  *Node
	lastChild   *Node
	prevSibling *Node
	nextSibling *Node

	// Only non-nil for Element nodes.
	elem *elementData

	// Listener table, created on first AddEventListener.
	listeners *listenerTable
}

// elementData holds data specific to Element nodes.
type elementData struct {
	localName string
	tagName   string
	attrs     []Attr
	classList *TokenList
}

// Attr represents a single attribute on an element.
type Attr struct {
	Name  string
	Value string
}

// newNode creates a new node with the given type and name.
func newNode(nodeType NodeType, nodeName string, ownerDoc *Document) *Node {
	return &Node{
		nodeType: nodeType,
		nodeName: nodeName,
		ownerDoc: ownerDoc,
	}
}

// NodeType returns the type of the node.
func (n *Node) NodeType() NodeType {
	return n.nodeType
}

// NodeName returns the name of the node: the uppercase tag name for
// elements, "#text" for text nodes, "#comment" for comments, "#document"
// for documents, and "#document-fragment" for fragments.
func (n *Node) NodeName() string {
	return n.nodeName
}

// Data returns the text content of a Text or Comment node, and the empty
// string for every other node type.
func (n *Node) Data() string {
	return n.data
}

// SetData sets the content of a Text or Comment node. It is a no-op on
// other node types.
func (n *Node) SetData(data string) {
	if n.nodeType == TextNode || n.nodeType == CommentNode {
		n.data = data
	}
}

// OwnerDocument returns the Document that owns this node, or nil for
// Document nodes.
func (n *Node) OwnerDocument() *Document {
	if n.nodeType == DocumentNode {
		return nil
	}
	return n.ownerDoc
}

// ParentNode returns the parent of this node, or nil.
func (n *Node) ParentNode() *Node {
	return n.parentNode
}

// ParentElement returns the parent Element, or nil if the parent is not
// an element.
func (n *Node) ParentElement() *Element {
	if n.parentNode != nil && n.parentNode.nodeType == ElementNode {
		return (*Element)(n.parentNode)
	}
	return nil
}

// FirstChild returns the first child node, or nil.
func (n *Node) FirstChild() *Node {
	return n.firstChild
}

// LastChild returns the last child node, or nil.
func (n *Node) LastChild() *Node {
	return n.lastChild
}

// PreviousSibling returns the previous sibling node, or nil.
func (n *Node) PreviousSibling() *Node {
	return n.prevSibling
}

// NextSibling returns the next sibling node, or nil.
func (n *Node) NextSibling() *Node {
	return n.nextSibling
}

// ChildNodes returns a snapshot slice of the node's children.
func (n *Node) ChildNodes() []*Node {
	var children []*Node
	for c := n.firstChild; c != nil; c = c.nextSibling {
		children = append(children, c)
	}
	return children
}

// HasChildNodes returns true if this node has any child nodes.
func (n *Node) HasChildNodes() bool {
	return n.firstChild != nil
}

// GetRootNode returns the root of the tree this node belongs to. For a
// connected node that is the Document node.
func (n *Node) GetRootNode() *Node {
	root := n
	for root.parentNode != nil {
		root = root.parentNode
	}
	return root
}

// IsConnected returns true if the node's root is a document.
func (n *Node) IsConnected() bool {
	return n.GetRootNode().nodeType == DocumentNode
}

// Contains returns true if other is an inclusive descendant of this node.
// A nil other always reports false.
func (n *Node) Contains(other *Node) bool {
	for cur := other; cur != nil; cur = cur.parentNode {
		if cur == n {
			return true
		}
	}
	return false
}

// AppendChild appends child to this node's children and returns it.
// A child with an existing parent is first detached. Appending a
// DocumentFragment moves the fragment's children instead, leaving the
// fragment empty.
func (n *Node) AppendChild(child *Node) *Node {
	return n.insertBefore(child, nil)
}

// InsertBefore inserts newChild before refChild and returns newChild.
// A nil refChild appends. If refChild is not a child of this node, or
// newChild and refChild are the same node, the call is a no-op.
func (n *Node) InsertBefore(newChild, refChild *Node) *Node {
	if refChild != nil && refChild.parentNode != n {
		return newChild
	}
	return n.insertBefore(newChild, refChild)
}

func (n *Node) insertBefore(child, ref *Node) *Node {
	if child == nil || child == n || child == ref || child.Contains(n) {
		return child
	}
	if child.nodeType == DocumentFragmentNode {
		for child.firstChild != nil {
			n.insertBefore(child.firstChild, ref)
		}
		return child
	}
	if child.parentNode != nil {
		child.parentNode.RemoveChild(child)
	}
	child.parentNode = n
	child.ownerDoc = n.documentForChildren()
	if ref == nil {
		child.prevSibling = n.lastChild
		child.nextSibling = nil
		if n.lastChild != nil {
			n.lastChild.nextSibling = child
		} else {
			n.firstChild = child
		}
		n.lastChild = child
		return child
	}
	child.nextSibling = ref
	child.prevSibling = ref.prevSibling
	if ref.prevSibling != nil {
		ref.prevSibling.nextSibling = child
	} else {
		n.firstChild = child
	}
	ref.prevSibling = child
	return child
}

// RemoveChild detaches child from this node and returns it. If child is
// not a child of this node the call is a no-op.
func (n *Node) RemoveChild(child *Node) *Node {
	if child == nil || child.parentNode != n {
		return child
	}
	if child.prevSibling != nil {
		child.prevSibling.nextSibling = child.nextSibling
	} else {
		n.firstChild = child.nextSibling
	}
	if child.nextSibling != nil {
		child.nextSibling.prevSibling = child.prevSibling
	} else {
		n.lastChild = child.prevSibling
	}
	child.parentNode = nil
	child.prevSibling = nil
	child.nextSibling = nil
	return child
}

// ReplaceChild replaces oldChild with newChild and returns oldChild. If
// oldChild is not a child of this node, or the two are the same node,
// the call is a no-op.
func (n *Node) ReplaceChild(newChild, oldChild *Node) *Node {
	if oldChild == nil || oldChild.parentNode != n || newChild == oldChild {
		return oldChild
	}
	n.insertBefore(newChild, oldChild)
	return n.RemoveChild(oldChild)
}

// documentForChildren returns the document children of this node should
// be owned by.
func (n *Node) documentForChildren() *Document {
	if n.nodeType == DocumentNode {
		return (*Document)(n)
	}
	return n.ownerDoc
}

// TextContent returns the concatenated text of the node and its
// descendants. Comments contribute nothing unless the node itself is a
// comment.
func (n *Node) TextContent() string {
	switch n.nodeType {
	case TextNode, CommentNode:
		return n.data
	case DocumentNode, DocumentTypeNode:
		return ""
	default:
		var sb strings.Builder
		n.collectText(&sb)
		return sb.String()
	}
}

func (n *Node) collectText(sb *strings.Builder) {
	for c := n.firstChild; c != nil; c = c.nextSibling {
		switch c.nodeType {
		case TextNode:
			sb.WriteString(c.data)
		case ElementNode, DocumentFragmentNode:
			c.collectText(sb)
		}
	}
}

// SetTextContent replaces the node's children with a single text node.
// On Text and Comment nodes it sets the data directly; on Document nodes
// it is a no-op.
func (n *Node) SetTextContent(text string) {
	switch n.nodeType {
	case TextNode, CommentNode:
		n.data = text
	case DocumentNode, DocumentTypeNode:
		return
	default:
		for n.firstChild != nil {
			n.RemoveChild(n.firstChild)
		}
		if text != "" && n.ownerDoc != nil {
			n.AppendChild(n.ownerDoc.CreateTextNode(text))
		}
	}
}

// AsElement returns the node as an *Element, or nil if the node is not
// an element.
func (n *Node) AsElement() *Element {
	if n == nil || n.nodeType != ElementNode {
		return nil
	}
	return (*Element)(n)
}
