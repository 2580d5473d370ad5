// internal/event/event.go
package event

import "slices"

// EventType identifies what happened.
type EventType string

// Event carries a payload whose type depends on Type (see types.go).
type Event struct {
	Type EventType
	Data any
}

// Listener receives dispatched events.
type Listener interface {
	OnEvent(event Event)
}

type subscription struct {
	kind     EventType
	listener Listener
}

// Dispatcher delivers events synchronously. Listeners of one type are called
// in the order they subscribed.
type Dispatcher struct {
	subs []subscription
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

func (d *Dispatcher) Subscribe(kind EventType, listener Listener) {
	d.subs = append(d.subs, subscription{kind: kind, listener: listener})
}

// SubscribeAll registers listener for several event types at once.
func (d *Dispatcher) SubscribeAll(listener Listener, kinds ...EventType) {
	for _, k := range kinds {
		d.Subscribe(k, listener)
	}
}

// Unsubscribe drops the oldest subscription of listener to kind. Listeners
// must be comparable.
func (d *Dispatcher) Unsubscribe(kind EventType, listener Listener) {
	i := slices.IndexFunc(d.subs, func(s subscription) bool {
		return s.kind == kind && s.listener == listener
	})
	if i < 0 {
		return
	}
	// A fresh slice keeps a Dispatch in progress on the old one intact.
	d.subs = slices.Concat(d.subs[:i], d.subs[i+1:])
}

// Dispatch sends event to every subscriber of its type. Subscriptions changed
// by a listener apply from the next Dispatch.
func (d *Dispatcher) Dispatch(event Event) {
	for _, s := range d.subs {
		if s.kind == event.Type {
			s.listener.OnEvent(event)
		}
	}
}
