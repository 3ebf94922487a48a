package dom

// globalEventHandlers are the event types every element carries an
// on-handler for.
var globalEventHandlers = map[string]bool{
	"blur": true, "change": true, "click": true, "contextmenu": true,
	"dblclick": true, "drag": true, "dragend": true, "dragenter": true,
	"dragleave": true, "dragover": true, "dragstart": true, "drop": true,
	"focus": true, "input": true, "keydown": true, "keypress": true,
	"keyup": true, "mousedown": true, "mouseenter": true,
	"mouseleave": true, "mousemove": true, "mouseout": true,
	"mouseover": true, "mouseup": true, "pointercancel": true,
	"pointerdown": true, "pointermove": true, "pointerout": true,
	"pointerover": true, "pointerup": true, "scroll": true,
	"touchend": true, "touchmove": true, "touchstart": true,
	"wheel": true,
}

// tagEventHandlers are event types only certain tags carry handlers for.
var tagEventHandlers = map[string]map[string]bool{
	"audio": {
		"canplay": true, "durationchange": true, "ended": true,
		"pause": true, "play": true, "playing": true,
		"timeupdate": true, "volumechange": true,
	},
	"video": {
		"canplay": true, "durationchange": true, "ended": true,
		"pause": true, "play": true, "playing": true,
		"timeupdate": true, "volumechange": true,
	},
	"img":     {"error": true, "load": true},
	"script":  {"error": true, "load": true},
	"link":    {"error": true, "load": true},
	"form":    {"reset": true, "submit": true},
	"input":   {"invalid": true, "search": true, "select": true},
	"select":  {"invalid": true},
	"details": {"toggle": true},
	"dialog":  {"cancel": true, "close": true},
}

// supportsEventHandler reports whether an element of this tag carries an
// on-handler for the event type.
func (e *Element) supportsEventHandler(name string) bool {
	if globalEventHandlers[name] {
		return true
	}
	if handlers, ok := tagEventHandlers[e.LocalName()]; ok {
		return handlers[name]
	}
	return false
}

// SupportsEvent reports whether the given event name is usable on the
// target, which may be a tag name string or an element. Registered
// custom events always report true; otherwise a cached throwaway element
// of the tag is probed for an on-handler. The probe cache grows by
// distinct tag name and is never cleared.
func (c *Context) SupportsEvent(target interface{}, name string) bool {
	if _, ok := c.customEvent(name); ok {
		return true
	}
	var el *Element
	switch t := target.(type) {
	case *Element:
		el = t
	case string:
		el = c.probeElement(t)
	}
	if el == nil {
		return false
	}
	return el.supportsEventHandler(name)
}

// probeElement returns the cached throwaway element for a tag, creating
// it on first use.
func (c *Context) probeElement(tag string) *Element {
	if tag == "" {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.probes[tag]; ok {
		return el
	}
	el := c.doc.CreateElement(tag)
	c.probes[tag] = el
	return el
}
