package dom

// Structural helpers. Like the class helpers these are permissive:
// malformed arguments no-op or return a nil/false sentinel, and only
// parser errors propagate.

// Append appends content into parent and returns the appended nodes.
// Content may be a *Node, *Element, *DocumentFragment, []*Node, or an
// HTML string (parsed into a fragment against the parent's document).
// Unsupported content returns nil without touching the tree.
func Append(parent *Node, content interface{}) []*Node {
	if parent == nil || content == nil {
		return nil
	}
	switch v := content.(type) {
	case *Node:
		if v == nil {
			return nil
		}
		parent.AppendChild(v)
		return []*Node{v}
	case *Element:
		if v == nil {
			return nil
		}
		parent.AppendChild(v.AsNode())
		return []*Node{v.AsNode()}
	case *DocumentFragment:
		if v == nil {
			return nil
		}
		appended := v.AsNode().ChildNodes()
		parent.AppendChild(v.AsNode())
		return appended
	case []*Node:
		for _, n := range v {
			if n != nil {
				parent.AppendChild(n)
			}
		}
		return v
	case string:
		doc := parent.documentForChildren()
		if doc == nil {
			return nil
		}
		frag, err := BuildFragment(doc, v)
		if err != nil {
			return nil
		}
		appended := frag.AsNode().ChildNodes()
		parent.AppendChild(frag.AsNode())
		return appended
	default:
		return nil
	}
}

// Replace swaps oldNode for newNode in oldNode's parent. It is a no-op
// when either is nil or oldNode has no parent.
func Replace(oldNode, newNode *Node) {
	if oldNode == nil || newNode == nil || oldNode.parentNode == nil {
		return
	}
	oldNode.parentNode.ReplaceChild(newNode, oldNode)
}

// RemoveChildren detaches and returns all children of parent.
func RemoveChildren(parent *Node) []*Node {
	if parent == nil {
		return nil
	}
	var removed []*Node
	for parent.firstChild != nil {
		removed = append(removed, parent.RemoveChild(parent.firstChild))
	}
	return removed
}

// EnterDocument appends the element into the document body unless it is
// already connected to it.
func EnterDocument(doc *Document, el *Element) {
	if doc == nil || el == nil || el.AsNode().IsConnected() {
		return
	}
	body := doc.Body()
	if body == nil {
		return
	}
	body.AsNode().AppendChild(el.AsNode())
}

// ExitDocument detaches the element from its parent, if any.
func ExitDocument(el *Element) {
	if el == nil {
		return
	}
	el.Remove()
}

// IsEmpty returns true if the node has no children. A nil node is empty.
func IsEmpty(n *Node) bool {
	return n == nil || n.firstChild == nil
}

// Contains returns true if ancestor contains node (inclusively). Either
// argument being nil reports false.
func Contains(ancestor, node *Node) bool {
	if ancestor == nil || node == nil {
		return false
	}
	return ancestor.Contains(node)
}

// Match reports whether the node is an element matching the selector.
// Nil or non-element nodes always report false, never panic.
func Match(n *Node, selector string) bool {
	el := n.AsElement()
	if el == nil {
		return false
	}
	return el.Matches(selector)
}
