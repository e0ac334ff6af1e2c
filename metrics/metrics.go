// Package metrics provides Prometheus metrics for the slip analysis pipeline.
package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"betcheck/events"
)

// BotMetrics collects and exposes Prometheus metrics for the bot.
type BotMetrics struct {
	registry *prometheus.Registry

	SlipsExtracted    *prometheus.CounterVec
	ExtractionErrors  prometheus.Counter
	ProviderLookups   *prometheus.CounterVec
	WagersResolved    *prometheus.CounterVec
	LedgerResetsTotal prometheus.Counter
}

// NewBotMetrics creates a new metrics collector with its own registry.
func NewBotMetrics() *BotMetrics {
	registry := prometheus.NewRegistry()

	m := &BotMetrics{
		registry: registry,

		SlipsExtracted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "betcheck_slips_extracted_total",
				Help: "Total number of betting slips successfully extracted",
			},
			[]string{"sport"},
		),
		ExtractionErrors: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "betcheck_extraction_errors_total",
				Help: "Total number of slip images that could not be parsed",
			},
		),
		ProviderLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "betcheck_provider_lookups_total",
				Help: "Total number of event lookups against statistics providers",
			},
			[]string{"provider", "found"},
		),
		WagersResolved: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "betcheck_wagers_resolved_total",
				Help: "Total number of wagers resolved, by sport and verdict",
			},
			[]string{"sport", "status"},
		),
		LedgerResetsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "betcheck_ledger_resets_total",
				Help: "Total number of ledger resets",
			},
		),
	}

	registry.MustRegister(
		m.SlipsExtracted,
		m.ExtractionErrors,
		m.ProviderLookups,
		m.WagersResolved,
		m.LedgerResetsTotal,
	)
	return m
}

// Registry returns the prometheus registry.
func (m *BotMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// BindTo subscribes the collector to pipeline events so counters advance as
// the bot works.
func (m *BotMetrics) BindTo(bus *events.Bus) {
	bus.Subscribe(events.EventTypeSlipExtracted, func(ctx context.Context, e events.Event) {
		if ev, ok := e.(events.SlipExtractedEvent); ok {
			m.SlipsExtracted.WithLabelValues(ev.Sport).Inc()
		}
	})
	bus.Subscribe(events.EventTypeExtractionFailed, func(ctx context.Context, e events.Event) {
		m.ExtractionErrors.Inc()
	})
	bus.Subscribe(events.EventTypeProviderLookup, func(ctx context.Context, e events.Event) {
		if ev, ok := e.(events.ProviderLookupEvent); ok {
			found := "false"
			if ev.Found {
				found = "true"
			}
			m.ProviderLookups.WithLabelValues(ev.Provider, found).Inc()
		}
	})
	bus.Subscribe(events.EventTypeWagerResolved, func(ctx context.Context, e events.Event) {
		if ev, ok := e.(events.WagerResolvedEvent); ok {
			m.WagersResolved.WithLabelValues(ev.Sport, ev.Status).Inc()
		}
	})
	bus.Subscribe(events.EventTypeLedgerReset, func(ctx context.Context, e events.Event) {
		m.LedgerResetsTotal.Inc()
	})
}
