package dom

import (
	"sync"
)

// CustomEvent describes a registered custom event: a name implemented by
// listening for a different native event and transforming or filtering
// it. Handler wraps the caller's callback; OnEvent and OnDelegate say
// whether the substitution applies to On and Delegate respectively.
type CustomEvent struct {
	OriginalEvent string
	Handler       func(cb Callback) Callback
	OnDelegate    bool
	OnEvent       bool
}

// Context owns the state the utility layer needs: the document that
// selector targets resolve against, the custom-event registry, and the
// tag-probe cache used by SupportsEvent. Independent contexts never
// interfere, so tests can instantiate their own.
type Context struct {
	doc *Document

	mu           sync.RWMutex
	customEvents map[string]CustomEvent
	probes       map[string]*Element
}

// NewContext creates a context over the given document. A nil document
// gets a fresh empty one.
func NewContext(doc *Document) *Context {
	if doc == nil {
		doc = NewDocument()
	}
	return &Context{
		doc:          doc,
		customEvents: make(map[string]CustomEvent),
		probes:       make(map[string]*Element),
	}
}

// Document returns the context's document.
func (c *Context) Document() *Document {
	return c.doc
}

// RegisterCustomEvent registers a custom event under the given name.
// There is no validation; the last registration for a name wins.
func (c *Context) RegisterCustomEvent(name string, ce CustomEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.customEvents[name] = ce
}

func (c *Context) customEvent(name string) (CustomEvent, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ce, ok := c.customEvents[name]
	return ce, ok
}

// Handle detaches a previously attached listener. Remove is idempotent;
// calling it a second time is a safe no-op.
type Handle struct {
	target    *Node
	eventType string
	id        string
	removed   bool
}

// Remove detaches exactly the listener this handle was returned for.
func (h *Handle) Remove() {
	if h == nil || h.removed || h.target == nil {
		return
	}
	h.removed = true
	h.target.RemoveEventListener(h.eventType, h.id)
}

// Removed reports whether the handle's listener has been detached.
func (h *Handle) Removed() bool {
	return h == nil || h.removed
}

// On attaches a listener. The target may be a *Node, *Element,
// *Document, or a selector string; a selector rewrites the call into a
// document-level delegated listener. A name with a registered custom
// event (with OnEvent set) is substituted by its underlying native event,
// with the callback wrapped through the registered handler. The returned
// handle detaches this listener and only this one. A nil target or
// callback returns a handle whose Remove is a no-op.
func (c *Context) On(target interface{}, name string, cb Callback, capture ...bool) *Handle {
	if selector, ok := target.(string); ok {
		return c.Delegate(c.doc.AsNode(), name, selector, cb)
	}
	node := nodeOf(target)
	if node == nil || cb == nil {
		return &Handle{removed: true}
	}
	if ce, ok := c.customEvent(name); ok && ce.OnEvent {
		name = ce.OriginalEvent
		if ce.Handler != nil {
			cb = ce.Handler(cb)
		}
	}
	useCapture := len(capture) > 0 && capture[0]
	id := node.AddEventListener(name, cb, useCapture)
	return &Handle{target: node, eventType: name, id: id}
}

// Once attaches a listener that detaches itself after its first
// invocation, forwarding the event and the callback's return value
// unchanged. With a selector target the wrapper becomes a delegation
// callback, and one dispatch can match several ancestors after the
// handle is already removed, so a fired flag guards the callback as
// well. Suppressed invocations return true, the AND-aggregate identity.
func (c *Context) Once(target interface{}, name string, cb Callback, capture ...bool) *Handle {
	if cb == nil {
		return &Handle{removed: true}
	}
	var h *Handle
	fired := false
	wrapped := func(ev *Event) bool {
		if fired {
			return true
		}
		fired = true
		h.Remove()
		return cb(ev)
	}
	h = c.On(target, name, wrapped, capture...)
	return h
}

// Delegate attaches one real listener on root. When the event fires, the
// walk starts at the event's target and climbs toward (and including)
// root, invoking cb once per ancestor matching the selector, in
// target-to-ancestor order, with the event's DelegateTarget set to the
// matched node. The walk stops early once the event is stopped. The
// listener's aggregate result is the logical AND of every invoked
// callback's return, so any false anywhere makes the aggregate false.
func (c *Context) Delegate(root interface{}, name, selector string, cb Callback) *Handle {
	node := nodeOf(root)
	if node == nil || cb == nil {
		return &Handle{removed: true}
	}
	if ce, ok := c.customEvent(name); ok && ce.OnDelegate {
		name = ce.OriginalEvent
		if ce.Handler != nil {
			cb = ce.Handler(cb)
		}
	}
	walker := func(ev *Event) bool {
		return delegateWalk(node, selector, cb, ev)
	}
	id := node.AddEventListener(name, walker, false)
	return &Handle{target: node, eventType: name, id: id}
}

// delegateWalk climbs from the event target to root, invoking cb on each
// matching element.
func delegateWalk(root *Node, selector string, cb Callback, ev *Event) bool {
	result := true
	for cur := ev.Target; cur != nil; cur = cur.parentNode {
		if ev.Stopped() {
			break
		}
		if el := cur.AsElement(); el != nil && el.Matches(selector) {
			ev.DelegateTarget = cur
			result = cb(ev) && result
		}
		if cur == root {
			break
		}
	}
	ev.DelegateTarget = nil
	return result
}

// ToElement resolves its argument to a node. Strings resolve against the
// context's document, with a fast path for bare "#id" selectors; nodes,
// elements, documents, and fragments pass through unchanged. Anything
// unresolvable yields nil, never a panic.
func (c *Context) ToElement(v interface{}) *Node {
	switch t := v.(type) {
	case string:
		if len(t) > 1 && t[0] == '#' && isIdentifier(t[1:]) {
			if el := c.doc.GetElementById(t[1:]); el != nil {
				return el.AsNode()
			}
			return nil
		}
		if el := c.doc.QuerySelector(t); el != nil {
			return el.AsNode()
		}
		return nil
	default:
		return nodeOf(v)
	}
}

// nodeOf unwraps the node under any of the conversion types.
func nodeOf(v interface{}) *Node {
	switch t := v.(type) {
	case *Node:
		return t
	case *Element:
		if t == nil {
			return nil
		}
		return t.AsNode()
	case *Document:
		if t == nil {
			return nil
		}
		return t.AsNode()
	case *DocumentFragment:
		if t == nil {
			return nil
		}
		return t.AsNode()
	default:
		return nil
	}
}
