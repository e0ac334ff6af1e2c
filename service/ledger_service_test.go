package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"betcheck/models"
	"betcheck/repository"
)

func TestLedgerService_AppendRecordsAndAggregates(t *testing.T) {
	svc := NewLedgerService(repository.NewMemoryStore(), nil)
	ctx := context.Background()

	draft := basketballDraft()
	verdict := models.Settled(true, draft, "LeBron James: 30 punti (linea 24.5)", "")

	record, err := svc.Append(ctx, draft, verdict)
	require.NoError(t, err)
	assert.NotEmpty(t, record.ID)
	assert.Equal(t, models.VerdictWon, record.Verdict.Status)
	assert.False(t, record.ResolvedAt.IsZero())

	aggregates, err := svc.AggregateBySport(ctx)
	require.NoError(t, err)
	require.Contains(t, aggregates, "Basket")
	agg := aggregates["Basket"]
	assert.Equal(t, 1, agg.TotalBets)
	assert.Equal(t, 1, agg.Won)
	assert.True(t, agg.TotalStaked.Equal(decimal.RequireFromString("100")))
	assert.True(t, agg.TotalProfitLoss.Equal(decimal.RequireFromString("85")))
}

func TestLedgerService_AppendUndeterminedCountsPending(t *testing.T) {
	svc := NewLedgerService(repository.NewMemoryStore(), nil)
	ctx := context.Background()

	draft := footballDraft("1")
	_, err := svc.Append(ctx, draft, models.Undetermined("Partita in corso", ""))
	require.NoError(t, err)

	aggregates, err := svc.AggregateBySport(ctx)
	require.NoError(t, err)
	agg := aggregates["Calcio"]
	assert.Equal(t, 1, agg.Pending)
	assert.True(t, agg.TotalProfitLoss.IsZero())
}

func TestLedgerService_RepairsDriftedAggregates(t *testing.T) {
	store := repository.NewMemoryStore()
	ctx := context.Background()

	ledger := models.NewLedger()
	draft := footballDraft("1")
	ledger.Bets = append(ledger.Bets, &models.WagerRecord{
		ID:         "r1",
		WagerDraft: *draft,
		Verdict:    models.Settled(false, draft, "Risultato finale: 0-1", ""),
	})
	// stored rollup disagrees with the records on purpose
	ledger.StatsBySport = map[string]*models.SportAggregate{
		"Calcio": {TotalBets: 9, Won: 9},
	}
	require.NoError(t, store.Save(ctx, ledger))

	aggregates, err := NewLedgerService(store, nil).AggregateBySport(ctx)
	require.NoError(t, err)
	agg := aggregates["Calcio"]
	assert.Equal(t, 1, agg.TotalBets)
	assert.Equal(t, 1, agg.Lost)
	assert.True(t, agg.TotalProfitLoss.Equal(decimal.RequireFromString("-100")))
}

func TestLedgerService_AppendRetriesFailedSave(t *testing.T) {
	store := new(MockLedgerStore)
	store.On("Load", mock.Anything).Return(models.NewLedger(), nil)
	store.On("Save", mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()
	store.On("Save", mock.Anything, mock.Anything).Return(nil).Once()

	svc := NewLedgerService(store, nil)
	draft := footballDraft("1")
	record, err := svc.Append(context.Background(), draft, models.Settled(true, draft, "", ""))
	require.NoError(t, err)
	assert.NotEmpty(t, record.ID)
	store.AssertNumberOfCalls(t, "Save", 2)
}

func TestLedgerService_AppendSurfacesPersistentSaveFailure(t *testing.T) {
	store := new(MockLedgerStore)
	store.On("Load", mock.Anything).Return(models.NewLedger(), nil)
	store.On("Save", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	svc := NewLedgerService(store, nil)
	draft := footballDraft("1")
	_, err := svc.Append(context.Background(), draft, models.Settled(true, draft, "", ""))
	assert.Error(t, err)
	store.AssertNumberOfCalls(t, "Save", 2)
}

func TestLedgerService_ResetArchivesAndClears(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewLedgerService(store, nil)
	ctx := context.Background()

	draft := footballDraft("1")
	_, err := svc.Append(ctx, draft, models.Settled(true, draft, "", ""))
	require.NoError(t, err)

	result, err := svc.Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Cleared)
	assert.NotEmpty(t, result.BackupPath)

	aggregates, err := svc.AggregateBySport(ctx)
	require.NoError(t, err)
	assert.Empty(t, aggregates)
}

func TestLedgerService_ResetEmptyLedgerSkipsBackup(t *testing.T) {
	svc := NewLedgerService(repository.NewMemoryStore(), nil)

	result, err := svc.Reset(context.Background())
	require.NoError(t, err)
	assert.Zero(t, result.Cleared)
	assert.Empty(t, result.BackupPath)
}
