package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"betcheck/models"
)

func TestFileStore_LoadMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "ledger.json"))

	ledger, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ledger.Bets)
	assert.Empty(t, ledger.StatsBySport)
}

func TestFileStore_SaveAndLoadRoundTrip(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "ledger.json"))

	ledger := models.NewLedger()
	rec := &models.WagerRecord{
		ID: "abc-123",
		WagerDraft: models.WagerDraft{
			Sport:    "Basket",
			Match:    "Lakers vs Nuggets",
			BetType:  "OVER 24.5 punti",
			Player:   "LeBron James",
			Odds:     decimal.RequireFromString("1.85"),
			Stake:    decimal.RequireFromString("100"),
			PlacedAt: "28/08/2026 21:00",
		},
		Verdict:    models.Verdict{Status: models.VerdictWon},
		ResolvedAt: time.Now().UTC(),
	}
	ledger.Bets = append(ledger.Bets, rec)
	ledger.StatsBySport = models.RecomputeAggregates(ledger.Bets)

	require.NoError(t, store.Save(context.Background(), ledger))

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded.Bets, 1)
	assert.Equal(t, "abc-123", loaded.Bets[0].ID)
	assert.Equal(t, "Basket", loaded.Bets[0].Sport)
	assert.Contains(t, loaded.StatsBySport, "Basket")
}

func TestFileStore_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store := NewFileStore(path)
	_, err := store.Load(context.Background())
	assert.Error(t, err)
}

func TestFileStore_SaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(filepath.Join(dir, "ledger.json"))

	require.NoError(t, store.Save(context.Background(), models.NewLedger()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "ledger.json", entries[0].Name())
}

func TestFileStore_Archive(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(filepath.Join(dir, "ledger.json"))
	store.now = func() time.Time {
		return time.Date(2026, 8, 29, 14, 30, 5, 0, time.UTC)
	}

	path, err := store.Archive(context.Background(), models.NewLedger())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "backup_20260829_143005.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\"bets\"")
}
