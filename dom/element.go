package dom

import (
	"strings"
)

// Element is an element node. It shares its memory layout with Node;
// use AsNode to get back the underlying node.
type Element Node

// AsNode returns the underlying Node.
func (e *Element) AsNode() *Node {
	return (*Node)(e)
}

// NodeType returns ElementNode (1).
func (e *Element) NodeType() NodeType {
	return ElementNode
}

// TagName returns the uppercase tag name, e.g. "DIV".
func (e *Element) TagName() string {
	return e.elem.tagName
}

// LocalName returns the lowercase tag name, e.g. "div".
func (e *Element) LocalName() string {
	return e.elem.localName
}

// Id returns the element's id attribute.
func (e *Element) Id() string {
	return e.GetAttribute("id")
}

// SetId sets the element's id attribute.
func (e *Element) SetId(id string) {
	e.SetAttribute("id", id)
}

// ClassName returns the element's class attribute.
func (e *Element) ClassName() string {
	return e.GetAttribute("class")
}

// SetClassName sets the element's class attribute.
func (e *Element) SetClassName(className string) {
	e.SetAttribute("class", className)
}

// ClassList returns the element's class token list, creating it lazily.
func (e *Element) ClassList() *TokenList {
	if e.elem.classList == nil {
		e.elem.classList = newTokenList(e, "class")
	}
	return e.elem.classList
}

// Attributes returns a snapshot of the element's attributes in document
// order.
func (e *Element) Attributes() []Attr {
	attrs := make([]Attr, len(e.elem.attrs))
	copy(attrs, e.elem.attrs)
	return attrs
}

// GetAttribute returns the value of the named attribute, or "" if the
// attribute is absent. Attribute names are case-insensitive.
func (e *Element) GetAttribute(name string) string {
	name = strings.ToLower(name)
	for _, a := range e.elem.attrs {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}

// SetAttribute sets the named attribute, creating it if absent.
func (e *Element) SetAttribute(name, value string) {
	name = strings.ToLower(name)
	for i, a := range e.elem.attrs {
		if a.Name == name {
			e.elem.attrs[i].Value = value
			return
		}
	}
	e.elem.attrs = append(e.elem.attrs, Attr{Name: name, Value: value})
}

// HasAttribute returns true if the element has the named attribute.
func (e *Element) HasAttribute(name string) bool {
	name = strings.ToLower(name)
	for _, a := range e.elem.attrs {
		if a.Name == name {
			return true
		}
	}
	return false
}

// RemoveAttribute removes the named attribute if present.
func (e *Element) RemoveAttribute(name string) {
	name = strings.ToLower(name)
	for i, a := range e.elem.attrs {
		if a.Name == name {
			e.elem.attrs = append(e.elem.attrs[:i], e.elem.attrs[i+1:]...)
			return
		}
	}
}

// Children returns the element's child elements in document order.
func (e *Element) Children() []*Element {
	var children []*Element
	for c := e.AsNode().firstChild; c != nil; c = c.nextSibling {
		if c.nodeType == ElementNode {
			children = append(children, (*Element)(c))
		}
	}
	return children
}

// FirstElementChild returns the first child element, or nil.
func (e *Element) FirstElementChild() *Element {
	for c := e.AsNode().firstChild; c != nil; c = c.nextSibling {
		if c.nodeType == ElementNode {
			return (*Element)(c)
		}
	}
	return nil
}

// LastElementChild returns the last child element, or nil.
func (e *Element) LastElementChild() *Element {
	for c := e.AsNode().lastChild; c != nil; c = c.prevSibling {
		if c.nodeType == ElementNode {
			return (*Element)(c)
		}
	}
	return nil
}

// ParentElement returns the parent element, or nil.
func (e *Element) ParentElement() *Element {
	return e.AsNode().ParentElement()
}

// Matches returns true if the element matches the given selector. An
// unparseable selector simply fails to match.
func (e *Element) Matches(selector string) bool {
	list, ok := parseSelectorList(selector)
	if !ok {
		return false
	}
	return list.matches(e)
}

// QuerySelector returns the first descendant element matching the
// selector, or nil.
func (e *Element) QuerySelector(selector string) *Element {
	return queryFirst(e.AsNode(), selector)
}

// QuerySelectorAll returns all descendant elements matching the
// selector, in document order.
func (e *Element) QuerySelectorAll(selector string) []*Element {
	return queryAll(e.AsNode(), selector)
}

// Closest returns the closest inclusive ancestor element matching the
// selector, or nil.
func (e *Element) Closest(selector string) *Element {
	for cur := e; cur != nil; cur = cur.ParentElement() {
		if cur.Matches(selector) {
			return cur
		}
	}
	return nil
}

// TextContent returns the concatenated text of the element's
// descendants.
func (e *Element) TextContent() string {
	return e.AsNode().TextContent()
}

// SetTextContent replaces the element's children with a single text
// node.
func (e *Element) SetTextContent(text string) {
	e.AsNode().SetTextContent(text)
}

// InnerHTML returns the serialized HTML of the element's children.
func (e *Element) InnerHTML() string {
	var sb strings.Builder
	for c := e.AsNode().firstChild; c != nil; c = c.nextSibling {
		serializeNode(c, &sb)
	}
	return sb.String()
}

// SetInnerHTML replaces the element's children with the parsed HTML
// content. A parse error leaves the element unchanged.
func (e *Element) SetInnerHTML(htmlContent string) error {
	doc := e.AsNode().ownerDoc
	if doc == nil {
		doc = NewDocument()
	}
	frag, err := BuildFragment(doc, htmlContent)
	if err != nil {
		return err
	}
	for e.AsNode().firstChild != nil {
		e.AsNode().RemoveChild(e.AsNode().firstChild)
	}
	e.AsNode().AppendChild(frag.AsNode())
	return nil
}

// OuterHTML returns the serialized HTML of the element itself.
func (e *Element) OuterHTML() string {
	var sb strings.Builder
	serializeNode(e.AsNode(), &sb)
	return sb.String()
}

// Remove detaches the element from its parent, if any.
func (e *Element) Remove() {
	if p := e.AsNode().parentNode; p != nil {
		p.RemoveChild(e.AsNode())
	}
}

// queryFirst returns the first element under root matching the selector.
func queryFirst(root *Node, selector string) *Element {
	list, ok := parseSelectorList(selector)
	if !ok {
		return nil
	}
	var found *Element
	walkElements(root, func(el *Element) bool {
		if list.matches(el) {
			found = el
			return false
		}
		return true
	})
	return found
}

// queryAll returns all elements under root matching the selector.
func queryAll(root *Node, selector string) []*Element {
	list, ok := parseSelectorList(selector)
	if !ok {
		return nil
	}
	var results []*Element
	walkElements(root, func(el *Element) bool {
		if list.matches(el) {
			results = append(results, el)
		}
		return true
	})
	return results
}

// walkElements visits every descendant element of root in document
// order until fn returns false.
func walkElements(root *Node, fn func(*Element) bool) bool {
	for c := root.firstChild; c != nil; c = c.nextSibling {
		if c.nodeType == ElementNode {
			if !fn((*Element)(c)) {
				return false
			}
		}
		if !walkElements(c, fn) {
			return false
		}
	}
	return true
}
