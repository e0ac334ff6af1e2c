package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"betcheck/models"
)

// FileStore persists the ledger as a single JSON document. Every save writes
// the full snapshot to a temp file and renames it over the live file, so the
// ledger on disk is always a complete, valid document.
type FileStore struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

// NewFileStore creates a store backed by the given file path. The file does
// not need to exist yet.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, now: time.Now}
}

// Load reads the ledger snapshot. A missing file yields an empty ledger; a
// corrupt file is an error the operator must see.
func (s *FileStore) Load(ctx context.Context) (*models.Ledger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return models.NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read ledger file: %w", err)
	}

	ledger := models.NewLedger()
	if err := json.Unmarshal(data, ledger); err != nil {
		return nil, fmt.Errorf("parse ledger file %s: %w", s.path, err)
	}
	if ledger.Bets == nil {
		ledger.Bets = []*models.WagerRecord{}
	}
	if ledger.StatsBySport == nil {
		ledger.StatsBySport = map[string]*models.SportAggregate{}
	}
	return ledger, nil
}

// Save writes the full snapshot atomically (write temp, then rename).
func (s *FileStore) Save(ctx context.Context, ledger *models.Ledger) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(ledger, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal ledger: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp ledger file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp ledger file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp ledger file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace ledger file: %w", err)
	}
	return nil
}

// Archive writes a timestamped backup snapshot next to the live file and
// returns its path.
func (s *FileStore) Archive(ctx context.Context, ledger *models.Ledger) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(ledger, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal ledger backup: %w", err)
	}

	name := fmt.Sprintf("backup_%s.json", s.now().Format("20060102_150405"))
	path := filepath.Join(filepath.Dir(s.path), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write ledger backup: %w", err)
	}
	return path, nil
}
