package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"betcheck/events"
	"betcheck/models"
)

type ledgerService struct {
	mu        sync.Mutex
	store     LedgerStore
	publisher EventPublisher
	now       func() time.Time
}

// NewLedgerService creates a new ledger service
func NewLedgerService(store LedgerStore, publisher EventPublisher) LedgerService {
	return &ledgerService{
		store:     store,
		publisher: publisher,
		now:       time.Now,
	}
}

func (s *ledgerService) Append(ctx context.Context, draft *models.WagerDraft, verdict models.Verdict) (*models.WagerRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	record := &models.WagerRecord{
		ID:         uuid.NewString(),
		WagerDraft: *draft,
		Verdict:    verdict,
		ResolvedAt: s.now().UTC(),
	}
	ledger.Bets = append(ledger.Bets, record)

	agg, ok := ledger.StatsBySport[record.Sport]
	if !ok {
		agg = &models.SportAggregate{}
		ledger.StatsBySport[record.Sport] = agg
	}
	agg.Apply(record)

	if err := s.store.Save(ctx, ledger); err != nil {
		log.WithError(err).Warn("Ledger save failed, retrying")
		if err := s.store.Save(ctx, ledger); err != nil {
			// Keep the full record in the log so the operator can replay it.
			payload, _ := json.Marshal(record)
			log.WithError(err).WithField("record", string(payload)).Error("Ledger save failed, record not persisted")
			return nil, fmt.Errorf("failed to save ledger: %w", err)
		}
	}
	return record, nil
}

func (s *ledgerService) AggregateBySport(ctx context.Context) (map[string]*models.SportAggregate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return ledger.StatsBySport, nil
}

func (s *ledgerService) Reset(ctx context.Context) (*models.ResetResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if len(ledger.Bets) == 0 {
		return &models.ResetResult{}, nil
	}

	backupPath, err := s.store.Archive(ctx, ledger)
	if err != nil {
		return nil, fmt.Errorf("failed to archive ledger: %w", err)
	}

	cleared := len(ledger.Bets)
	if err := s.store.Save(ctx, models.NewLedger()); err != nil {
		return nil, fmt.Errorf("failed to clear ledger: %w", err)
	}

	if s.publisher != nil {
		s.publisher.Publish(events.LedgerResetEvent{
			Cleared:    cleared,
			BackupPath: backupPath,
		})
	}
	return &models.ResetResult{Cleared: cleared, BackupPath: backupPath}, nil
}

// load reads the ledger and repairs stored aggregates that drifted from the
// recorded bets.
func (s *ledgerService) load(ctx context.Context) (*models.Ledger, error) {
	ledger, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	recomputed := models.RecomputeAggregates(ledger.Bets)
	if !models.AggregatesEqual(ledger.StatsBySport, recomputed) {
		log.Warn("Stored per-sport aggregates out of sync with records, recomputing")
		ledger.StatsBySport = recomputed
	}
	return ledger, nil
}
