package dom

import (
	"sync"

	"github.com/google/uuid"
)

// EventPhase represents the phase of event dispatch.
type EventPhase int

const (
	EventPhaseNone      EventPhase = 0
	EventPhaseCapturing EventPhase = 1
	EventPhaseAtTarget  EventPhase = 2
	EventPhaseBubbling  EventPhase = 3
)

// Event is a dispatched event. Unlike the browser model, propagation
// state lives on the event value itself: StopPropagation sets a flag
// that both the dispatcher and the delegation walk read, so no method
// patching is involved.
type Event struct {
	Type          string
	Target        *Node
	CurrentTarget *Node

	// DelegateTarget is the matched ancestor during a delegation walk,
	// nil outside of one.
	DelegateTarget *Node

	// Related is the secondary target for enter/leave-style synthetic
	// events (the node the pointer came from or moves to).
	Related *Node

	// Detail carries arbitrary event payload.
	Detail map[string]interface{}

	Phase            EventPhase
	Bubbles          bool
	Cancelable       bool
	DefaultPrevented bool

	stopped          bool
	stoppedImmediate bool
}

// NewEvent creates an event of the given type.
func NewEvent(eventType string, bubbles, cancelable bool) *Event {
	return &Event{
		Type:       eventType,
		Bubbles:    bubbles,
		Cancelable: cancelable,
	}
}

// StopPropagation prevents the event from reaching further nodes.
// Remaining listeners on the current node still run.
func (ev *Event) StopPropagation() {
	ev.stopped = true
}

// StopImmediatePropagation prevents the event from reaching further
// nodes and further listeners on the current node.
func (ev *Event) StopImmediatePropagation() {
	ev.stopped = true
	ev.stoppedImmediate = true
}

// PreventDefault marks the default action as prevented, if the event is
// cancelable.
func (ev *Event) PreventDefault() {
	if ev.Cancelable {
		ev.DefaultPrevented = true
	}
}

// Stopped reports whether propagation has been stopped.
func (ev *Event) Stopped() bool {
	return ev.stopped
}

// Callback handles a dispatched event. The return value only matters to
// delegation, where the aggregate result is the logical AND of every
// invoked callback's return.
type Callback func(ev *Event) bool

// eventListener is one registered listener.
type eventListener struct {
	id      string
	fn      Callback
	capture bool
}

// listenerTable holds the listeners of a single node.
type listenerTable struct {
	mu        sync.RWMutex
	listeners map[string][]eventListener
}

// AddEventListener registers a listener for the given event type and
// returns its id, which RemoveEventListener takes to detach exactly this
// listener.
func (n *Node) AddEventListener(eventType string, fn Callback, capture bool) string {
	if fn == nil {
		return ""
	}
	if n.listeners == nil {
		n.listeners = &listenerTable{listeners: make(map[string][]eventListener)}
	}
	t := n.listeners
	t.mu.Lock()
	defer t.mu.Unlock()
	id := uuid.New().String()
	t.listeners[eventType] = append(t.listeners[eventType], eventListener{
		id:      id,
		fn:      fn,
		capture: capture,
	})
	return id
}

// RemoveEventListener unregisters the listener with the given id.
// Removing an unknown or already-removed id is a no-op.
func (n *Node) RemoveEventListener(eventType, id string) {
	if n.listeners == nil || id == "" {
		return
	}
	t := n.listeners
	t.mu.Lock()
	defer t.mu.Unlock()
	listeners := t.listeners[eventType]
	for i, l := range listeners {
		if l.id == id {
			t.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
			return
		}
	}
}

// HasEventListeners returns true if the node has any listeners for the
// event type.
func (n *Node) HasEventListeners(eventType string) bool {
	if n.listeners == nil {
		return false
	}
	n.listeners.mu.RLock()
	defer n.listeners.mu.RUnlock()
	return len(n.listeners.listeners[eventType]) > 0
}

// snapshot copies the listeners for a type so dispatch is unaffected by
// listeners added or removed while it runs.
func (n *Node) snapshotListeners(eventType string) []eventListener {
	if n.listeners == nil {
		return nil
	}
	n.listeners.mu.RLock()
	defer n.listeners.mu.RUnlock()
	listeners := n.listeners.listeners[eventType]
	if len(listeners) == 0 {
		return nil
	}
	out := make([]eventListener, len(listeners))
	copy(out, listeners)
	return out
}

// DispatchEvent dispatches the event against this node: capture
// listeners from the root down, listeners at the target, then bubble
// listeners back up when the event bubbles. It returns true unless a
// listener called PreventDefault on a cancelable event.
func (n *Node) DispatchEvent(ev *Event) bool {
	if ev == nil {
		return true
	}
	ev.Target = n
	ev.stopped = false
	ev.stoppedImmediate = false

	// Ancestors from parent to root.
	var path []*Node
	for cur := n.parentNode; cur != nil; cur = cur.parentNode {
		path = append(path, cur)
	}

	// Capture phase, root toward target.
	ev.Phase = EventPhaseCapturing
	for i := len(path) - 1; i >= 0 && !ev.stopped; i-- {
		path[i].invokeListeners(ev, true)
	}

	// At target, both capture and bubble listeners.
	if !ev.stopped {
		ev.Phase = EventPhaseAtTarget
		n.invokeListeners(ev, true)
		if !ev.stoppedImmediate {
			n.invokeListeners(ev, false)
		}
	}

	// Bubble phase, target toward root.
	if ev.Bubbles {
		ev.Phase = EventPhaseBubbling
		for i := 0; i < len(path) && !ev.stopped; i++ {
			path[i].invokeListeners(ev, false)
		}
	}

	ev.Phase = EventPhaseNone
	ev.CurrentTarget = nil
	return !ev.DefaultPrevented
}

// invokeListeners runs this node's listeners of the given kind against
// the event, honoring StopImmediatePropagation.
func (n *Node) invokeListeners(ev *Event, capture bool) {
	listeners := n.snapshotListeners(ev.Type)
	if listeners == nil {
		return
	}
	ev.CurrentTarget = n
	for _, l := range listeners {
		if l.capture != capture {
			continue
		}
		l.fn(ev)
		if ev.stoppedImmediate {
			return
		}
	}
}

// Mixin shallow-copies the entries of src into dst, creating dst when
// nil, and returns it. It is the helper used to assemble synthetic event
// payloads from native ones.
func Mixin(dst, src map[string]interface{}) map[string]interface{} {
	if dst == nil {
		dst = make(map[string]interface{}, len(src))
	}
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
