package events

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
)

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeSlipExtracted    EventType = "slip_extracted"
	EventTypeExtractionFailed EventType = "extraction_failed"
	EventTypeProviderLookup   EventType = "provider_lookup"
	EventTypeWagerResolved    EventType = "wager_resolved"
	EventTypeLedgerReset      EventType = "ledger_reset"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// SlipExtractedEvent represents a betting slip successfully parsed from an image
type SlipExtractedEvent struct {
	Sport string
	Match string
}

func (e SlipExtractedEvent) Type() EventType {
	return EventTypeSlipExtracted
}

// ExtractionFailedEvent represents a slip image that could not be parsed
type ExtractionFailedEvent struct {
	Reason string
}

func (e ExtractionFailedEvent) Type() EventType {
	return EventTypeExtractionFailed
}

// ProviderLookupEvent represents an event lookup against a statistics provider
type ProviderLookupEvent struct {
	Provider string
	Found    bool
}

func (e ProviderLookupEvent) Type() EventType {
	return EventTypeProviderLookup
}

// WagerResolvedEvent represents a wager that reached a verdict
type WagerResolvedEvent struct {
	Sport  string
	Status string
}

func (e WagerResolvedEvent) Type() EventType {
	return EventTypeWagerResolved
}

// LedgerResetEvent represents the ledger being archived and cleared
type LedgerResetEvent struct {
	Cleared    int
	BackupPath string
}

func (e LedgerResetEvent) Type() EventType {
	return EventTypeLedgerReset
}

// Handler is a function that handles events
type Handler func(ctx context.Context, event Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe adds a handler for a specific event type
func (b *Bus) Subscribe(eventType EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)

	log.WithFields(log.Fields{
		"eventType":    eventType,
		"handlerCount": len(b.handlers[eventType]),
	}).Debug("Subscribed handler to event type")
}

// Publish emits an event to all registered handlers. Handlers run
// asynchronously and a panicking handler never takes down the caller.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.Type()]))
	copy(handlers, b.handlers[event.Type()])
	b.mu.RUnlock()

	ctx := context.Background()
	for i, handler := range handlers {
		go func(h Handler, handlerIndex int) {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(log.Fields{
						"eventType":    event.Type(),
						"handlerIndex": handlerIndex,
						"panic":        r,
					}).Error("Event handler panicked")
				}
			}()
			h(ctx, event)
		}(handler, i)
	}
}
