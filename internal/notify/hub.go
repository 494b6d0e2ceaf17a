package notify

import (
	"sync"
	"time"
)

const subscriberBuffer = 16

// Hub is the in-process observer registry feeding the admin event stream.
// Emit never blocks: a subscriber whose buffer is full simply misses the
// event.
type Hub struct {
	mu          sync.Mutex
	subscribers map[*Subscriber]struct{}
}

type Subscriber struct {
	C chan Event
}

func NewHub() *Hub {
	return &Hub{subscribers: make(map[*Subscriber]struct{})}
}

func (h *Hub) Subscribe() *Subscriber {
	sub := &Subscriber{C: make(chan Event, subscriberBuffer)}

	h.mu.Lock()
	h.subscribers[sub] = struct{}{}
	h.mu.Unlock()

	return sub
}

func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.subscribers[sub]; !ok {
		return
	}
	delete(h.subscribers, sub)
	close(sub.C)
}

func (h *Hub) Emit(event string, payload interface{}) {
	ev := Event{Name: event, Payload: payload, At: time.Now()}

	h.mu.Lock()
	defer h.mu.Unlock()

	for sub := range h.subscribers {
		select {
		case sub.C <- ev:
		default:
			// slow subscriber, drop
		}
	}
}
