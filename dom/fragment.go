package dom

// DocumentFragment is a minimal parentless container. Inserting a
// fragment into the tree moves its children, leaving the fragment empty.
type DocumentFragment Node

// AsNode returns the underlying Node.
func (df *DocumentFragment) AsNode() *Node {
	return (*Node)(df)
}

// NodeType returns DocumentFragmentNode (11).
func (df *DocumentFragment) NodeType() NodeType {
	return DocumentFragmentNode
}

// Children returns the fragment's child elements in order.
func (df *DocumentFragment) Children() []*Element {
	var children []*Element
	for c := df.AsNode().firstChild; c != nil; c = c.nextSibling {
		if c.nodeType == ElementNode {
			children = append(children, (*Element)(c))
		}
	}
	return children
}

// ChildElementCount returns the number of child elements.
func (df *DocumentFragment) ChildElementCount() int {
	count := 0
	for c := df.AsNode().firstChild; c != nil; c = c.nextSibling {
		if c.nodeType == ElementNode {
			count++
		}
	}
	return count
}

// FirstElementChild returns the first child element, or nil.
func (df *DocumentFragment) FirstElementChild() *Element {
	for c := df.AsNode().firstChild; c != nil; c = c.nextSibling {
		if c.nodeType == ElementNode {
			return (*Element)(c)
		}
	}
	return nil
}

// QuerySelector returns the first element in the fragment matching the
// selector, or nil.
func (df *DocumentFragment) QuerySelector(selector string) *Element {
	return queryFirst(df.AsNode(), selector)
}

// QuerySelectorAll returns all elements in the fragment matching the
// selector.
func (df *DocumentFragment) QuerySelectorAll(selector string) []*Element {
	return queryAll(df.AsNode(), selector)
}
