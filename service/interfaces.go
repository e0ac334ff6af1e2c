package service

import (
	"context"

	"betcheck/events"
	"betcheck/models"
)

// ProviderGateway defines the interface for a sport statistics provider
type ProviderGateway interface {
	// FindEvent locates the sporting event (and player, when relevant) a
	// wager refers to. Provider failures degrade to a not_found lookup.
	FindEvent(ctx context.Context, query models.EventQuery) models.EventLookup

	// FetchSettled retrieves the settled outcome data for a previously
	// located event. The stat kind tells player-prop providers which
	// statistic to extract.
	FetchSettled(ctx context.Context, lookup models.EventLookup, stat models.StatKind) models.StatLookup
}

// LedgerStore defines the interface for ledger persistence
type LedgerStore interface {
	// Load reads the current ledger snapshot, returning an empty ledger
	// when none exists yet
	Load(ctx context.Context) (*models.Ledger, error)

	// Save writes the full ledger snapshot atomically
	Save(ctx context.Context, ledger *models.Ledger) error

	// Archive writes a timestamped backup of the ledger and returns its path
	Archive(ctx context.Context, ledger *models.Ledger) (string, error)
}

// VisionClient defines the interface for describing images via a vision model
type VisionClient interface {
	// Describe sends an image with a prompt and returns the model's text reply
	Describe(ctx context.Context, image []byte, prompt string) (string, error)
}

// SlipExtractor defines the interface for turning slip images into wager drafts
type SlipExtractor interface {
	// Extract parses a betting slip image into a structured wager draft
	Extract(ctx context.Context, image []byte) (*models.WagerDraft, error)
}

// ResolverService defines the interface for settling wagers against real outcomes
type ResolverService interface {
	// Resolve determines whether a wager won, lost, or cannot be determined yet
	Resolve(ctx context.Context, draft *models.WagerDraft) models.Verdict
}

// LedgerService defines the interface for ledger operations
type LedgerService interface {
	// Append records a resolved wager in the ledger and updates per-sport aggregates
	Append(ctx context.Context, draft *models.WagerDraft, verdict models.Verdict) (*models.WagerRecord, error)

	// AggregateBySport returns the current per-sport aggregates
	AggregateBySport(ctx context.Context) (map[string]*models.SportAggregate, error)

	// Reset archives the current ledger and starts a fresh one
	Reset(ctx context.Context) (*models.ResetResult, error)
}

// StatsService defines the interface for statistics summaries
type StatsService interface {
	// Summary builds the overall performance summary across all sports
	Summary(ctx context.Context) (*models.StatsSummary, error)
}

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(event events.Event)
}
