package notify

import (
	"testing"
	"time"
)

func TestHubDeliversToSubscriber(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe()
	defer hub.Unsubscribe(sub)

	hub.Emit(EventNewOrder, map[string]string{"orderId": "FF-001"})

	select {
	case ev := <-sub.C:
		if ev.Name != EventNewOrder {
			t.Fatalf("expected %s, got %s", EventNewOrder, ev.Name)
		}
	case <-time.After(time.Second):
		t.Fatal("expected an event")
	}
}

func TestHubEmitNeverBlocks(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe()
	defer hub.Unsubscribe(sub)

	// Nobody is reading; emitting far past the buffer must still return.
	done := make(chan struct{})
	go func() {
		for i := 0; i < subscriberBuffer*4; i++ {
			hub.Emit(EventOrderUpdated, i)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Emit blocked on a slow subscriber")
	}

	if got := len(sub.C); got > subscriberBuffer {
		t.Fatalf("expected at most %d buffered events, got %d", subscriberBuffer, got)
	}
}

func TestHubUnsubscribeClosesChannel(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe()

	hub.Unsubscribe(sub)
	// double unsubscribe must be harmless
	hub.Unsubscribe(sub)

	if _, ok := <-sub.C; ok {
		t.Fatal("expected a closed channel after unsubscribe")
	}

	// emitting with no subscribers is not an error
	hub.Emit(EventOrderUpdated, nil)
}

// stuckSink blocks every Emit until released, like a publisher waiting on a
// hung broker.
type stuckSink struct {
	entered chan struct{}
	release chan struct{}
}

func (s *stuckSink) Emit(string, interface{}) {
	s.entered <- struct{}{}
	<-s.release
}

func TestAsyncEmitDoesNotBlockCaller(t *testing.T) {
	stuck := &stuckSink{
		entered: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	defer close(stuck.release)

	done := make(chan struct{})
	go func() {
		Async{Sink: stuck}.Emit(EventOrderUpdated, "payload")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Async.Emit blocked on a stuck sink")
	}

	// the wrapped sink still sees the event
	select {
	case <-stuck.entered:
	case <-time.After(time.Second):
		t.Fatal("expected the wrapped sink to receive the event")
	}
}

func TestMultiFansOut(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe()
	defer hub.Unsubscribe(sub)

	sink := Multi{Noop{}, hub}
	sink.Emit(EventNewOrder, "payload")

	select {
	case ev := <-sub.C:
		if ev.Payload != "payload" {
			t.Fatalf("unexpected payload %v", ev.Payload)
		}
	case <-time.After(time.Second):
		t.Fatal("expected the hub to receive the event through Multi")
	}
}
