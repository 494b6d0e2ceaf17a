// Package notify is the fire-and-forget side channel for order events.
// Delivery is best-effort and at-most-once; callers must never depend on it
// and an Emit must never block or fail the state transition that triggered
// it.
package notify

import "time"

// Event names emitted by the order lifecycle.
const (
	EventNewOrder     = "new-order"
	EventOrderUpdated = "order-updated"
)

type Event struct {
	Name    string      `json:"event"`
	Payload interface{} `json:"payload"`
	At      time.Time   `json:"at"`
}

type Sink interface {
	Emit(event string, payload interface{})
}

// Noop is the default sink: events vanish, the admin UI falls back to
// polling.
type Noop struct{}

func (Noop) Emit(string, interface{}) {}

// Multi fans an event out to every sink in order.
type Multi []Sink

func (m Multi) Emit(event string, payload interface{}) {
	for _, sink := range m {
		sink.Emit(event, payload)
	}
}

// Async decouples a sink from its caller: delivery runs on its own
// goroutine, so a sink that stalls (a hung broker, say) cannot hold up the
// state transition that emitted the event.
type Async struct {
	Sink Sink
}

func (a Async) Emit(event string, payload interface{}) {
	go a.Sink.Emit(event, payload)
}
