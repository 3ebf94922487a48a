// Package js exposes the dom utility layer to scripts through a goja
// runtime. A Bindings installs a global `dom` object whose functions
// mirror the Go API, with elements surfaced as plain script objects.
package js

import (
	"sync"

	"github.com/dop251/goja"

	"github.com/chrisuehlinger/domkit/dom"
)

// Bindings wires a dom.Context into a goja runtime.
type Bindings struct {
	vm  *goja.Runtime
	ctx *dom.Context

	mu    sync.Mutex
	nodes map[*goja.Object]*dom.Node
}

// NewBindings creates a runtime with the global `dom` object installed.
func NewBindings(ctx *dom.Context) *Bindings {
	b := &Bindings{
		vm:    goja.New(),
		ctx:   ctx,
		nodes: make(map[*goja.Object]*dom.Node),
	}
	b.install()
	return b
}

// Runtime returns the underlying goja runtime.
func (b *Bindings) Runtime() *goja.Runtime {
	return b.vm
}

// Run evaluates a script in the runtime.
func (b *Bindings) Run(src string) (goja.Value, error) {
	return b.vm.RunString(src)
}

// wrapNode surfaces a node as a script object. The backing node is kept
// in a side table so script values can be unwrapped on the way back in.
func (b *Bindings) wrapNode(n *dom.Node) goja.Value {
	if n == nil {
		return goja.Null()
	}
	obj := b.vm.NewObject()
	b.mu.Lock()
	b.nodes[obj] = n
	b.mu.Unlock()

	obj.Set("nodeType", int(n.NodeType()))
	obj.Set("nodeName", n.NodeName())
	if el := n.AsElement(); el != nil {
		obj.Set("tagName", el.TagName())
		obj.Set("id", el.Id())
		obj.Set("className", el.ClassName())
	}
	obj.Set("textContent", func(call goja.FunctionCall) goja.Value {
		return b.vm.ToValue(n.TextContent())
	})
	obj.Set("matches", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 1 {
			return b.vm.ToValue(false)
		}
		return b.vm.ToValue(dom.Match(n, call.Arguments[0].String()))
	})
	return obj
}

// resolve turns a script value into a node: strings go through
// ToElement, wrapped nodes are unwrapped, anything else is nil.
func (b *Bindings) resolve(v goja.Value) *dom.Node {
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return nil
	}
	if s, ok := v.Export().(string); ok {
		return b.ctx.ToElement(s)
	}
	if obj, ok := v.(*goja.Object); ok {
		b.mu.Lock()
		defer b.mu.Unlock()
		return b.nodes[obj]
	}
	return nil
}

// resolveElement is resolve narrowed to elements.
func (b *Bindings) resolveElement(v goja.Value) *dom.Element {
	n := b.resolve(v)
	if n == nil {
		return nil
	}
	return n.AsElement()
}

// wrapEvent surfaces a dispatched event to a script callback.
func (b *Bindings) wrapEvent(ev *dom.Event) *goja.Object {
	obj := b.vm.NewObject()
	obj.Set("type", ev.Type)
	obj.Set("target", b.wrapNode(ev.Target))
	obj.Set("delegateTarget", b.wrapNode(ev.DelegateTarget))
	obj.Set("detail", ev.Detail)
	obj.Set("stopPropagation", func(call goja.FunctionCall) goja.Value {
		ev.StopPropagation()
		return goja.Undefined()
	})
	obj.Set("stopImmediatePropagation", func(call goja.FunctionCall) goja.Value {
		ev.StopImmediatePropagation()
		return goja.Undefined()
	})
	obj.Set("preventDefault", func(call goja.FunctionCall) goja.Value {
		ev.PreventDefault()
		return goja.Undefined()
	})
	return obj
}

// wrapCallback adapts a script function to a dom.Callback. The script
// return value is coerced to boolean, so an undefined return reads as
// false in delegation aggregates, matching the script-side convention.
func (b *Bindings) wrapCallback(fn goja.Callable) dom.Callback {
	return func(ev *dom.Event) bool {
		ret, err := fn(goja.Undefined(), b.wrapEvent(ev))
		if err != nil {
			return false
		}
		return ret.ToBoolean()
	}
}

// wrapHandle surfaces a listener handle with a remove() method.
func (b *Bindings) wrapHandle(h *dom.Handle) *goja.Object {
	obj := b.vm.NewObject()
	obj.Set("remove", func(call goja.FunctionCall) goja.Value {
		h.Remove()
		return goja.Undefined()
	})
	obj.Set("removed", func(call goja.FunctionCall) goja.Value {
		return b.vm.ToValue(h.Removed())
	})
	return obj
}

func (b *Bindings) install() {
	d := b.vm.NewObject()

	d.Set("query", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 1 {
			return goja.Null()
		}
		return b.wrapNode(b.ctx.ToElement(call.Arguments[0].String()))
	})

	d.Set("addClasses", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) >= 2 {
			dom.AddClasses(b.resolveElement(call.Arguments[0]), call.Arguments[1].String())
		}
		return goja.Undefined()
	})

	d.Set("removeClasses", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) >= 2 {
			dom.RemoveClasses(b.resolveElement(call.Arguments[0]), call.Arguments[1].String())
		}
		return goja.Undefined()
	})

	d.Set("toggleClasses", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) >= 2 {
			dom.ToggleClasses(b.resolveElement(call.Arguments[0]), call.Arguments[1].String())
		}
		return goja.Undefined()
	})

	d.Set("hasClass", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 2 {
			return b.vm.ToValue(false)
		}
		return b.vm.ToValue(dom.HasClass(b.resolveElement(call.Arguments[0]), call.Arguments[1].String()))
	})

	d.Set("on", func(call goja.FunctionCall) goja.Value {
		h := b.attach(call, b.ctx.On)
		if h == nil {
			return goja.Null()
		}
		return b.wrapHandle(h)
	})

	d.Set("once", func(call goja.FunctionCall) goja.Value {
		h := b.attach(call, b.ctx.Once)
		if h == nil {
			return goja.Null()
		}
		return b.wrapHandle(h)
	})

	d.Set("delegate", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 4 {
			return goja.Null()
		}
		root := b.resolve(call.Arguments[0])
		fn, ok := goja.AssertFunction(call.Arguments[3])
		if root == nil || !ok {
			return goja.Null()
		}
		h := b.ctx.Delegate(root, call.Arguments[1].String(), call.Arguments[2].String(), b.wrapCallback(fn))
		return b.wrapHandle(h)
	})

	d.Set("dispatch", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 2 {
			return b.vm.ToValue(true)
		}
		target := b.resolve(call.Arguments[0])
		if target == nil {
			return b.vm.ToValue(true)
		}
		ev := dom.NewEvent(call.Arguments[1].String(), true, true)
		if len(call.Arguments) > 2 {
			if detail, ok := call.Arguments[2].Export().(map[string]interface{}); ok {
				ev.Detail = dom.Mixin(nil, detail)
			}
		}
		return b.vm.ToValue(target.DispatchEvent(ev))
	})

	d.Set("append", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 2 {
			return b.vm.ToValue(0)
		}
		parent := b.resolve(call.Arguments[0])
		if parent == nil {
			return b.vm.ToValue(0)
		}
		appended := dom.Append(parent, call.Arguments[1].String())
		return b.vm.ToValue(len(appended))
	})

	d.Set("supportsEvent", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 2 {
			return b.vm.ToValue(false)
		}
		return b.vm.ToValue(b.ctx.SupportsEvent(call.Arguments[0].String(), call.Arguments[1].String()))
	})

	b.vm.Set("dom", d)
}

// attach is the shared body of the on and once bindings.
func (b *Bindings) attach(call goja.FunctionCall, method func(interface{}, string, dom.Callback, ...bool) *dom.Handle) *dom.Handle {
	if len(call.Arguments) < 3 {
		return nil
	}
	fn, ok := goja.AssertFunction(call.Arguments[2])
	if !ok {
		return nil
	}
	var target interface{}
	if s, isString := call.Arguments[0].Export().(string); isString {
		target = s
	} else if n := b.resolve(call.Arguments[0]); n != nil {
		target = n
	} else {
		return nil
	}
	return method(target, call.Arguments[1].String(), b.wrapCallback(fn))
}
