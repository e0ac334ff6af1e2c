package events

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBus_PublishReachesSubscribers(t *testing.T) {
	bus := NewBus()

	var mu sync.Mutex
	var got []Event
	done := make(chan struct{})

	bus.Subscribe(EventTypeWagerResolved, func(ctx context.Context, e Event) {
		mu.Lock()
		got = append(got, e)
		mu.Unlock()
		close(done)
	})

	bus.Publish(WagerResolvedEvent{Sport: "Calcio", Status: "won"})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handler was not invoked")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, got, 1)
	assert.Equal(t, EventTypeWagerResolved, got[0].Type())
}

func TestBus_PanickingHandlerDoesNotBlockOthers(t *testing.T) {
	bus := NewBus()
	done := make(chan struct{})

	bus.Subscribe(EventTypeLedgerReset, func(ctx context.Context, e Event) {
		panic("boom")
	})
	bus.Subscribe(EventTypeLedgerReset, func(ctx context.Context, e Event) {
		close(done)
	})

	bus.Publish(LedgerResetEvent{Cleared: 1})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("second handler was not invoked")
	}
}

func TestBus_PublishWithoutSubscribers(t *testing.T) {
	bus := NewBus()
	assert.NotPanics(t, func() {
		bus.Publish(ExtractionFailedEvent{Reason: "blurry image"})
	})
}
