package repository

import (
	"context"
	"sync"

	"betcheck/models"
)

// MemoryStore keeps the ledger in memory. Used in tests.
type MemoryStore struct {
	mu       sync.Mutex
	ledger   *models.Ledger
	archives []string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{ledger: models.NewLedger()}
}

func (s *MemoryStore) Load(ctx context.Context) (*models.Ledger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger, nil
}

func (s *MemoryStore) Save(ctx context.Context, ledger *models.Ledger) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledger = ledger
	return nil
}

func (s *MemoryStore) Archive(ctx context.Context, ledger *models.Ledger) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	path := "backup_memory.json"
	s.archives = append(s.archives, path)
	return path, nil
}
