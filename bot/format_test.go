package bot

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"betcheck/models"
)

func wonRecord() *models.WagerRecord {
	draft := &models.WagerDraft{
		Sport:           "Basket",
		Match:           "Lakers vs Nuggets",
		BetType:         "OVER 24.5 punti",
		Player:          "LeBron James",
		Odds:            decimal.RequireFromString("1.85"),
		Stake:           decimal.RequireFromString("100"),
		PotentialPayout: decimal.RequireFromString("185"),
	}
	return &models.WagerRecord{
		ID:         "r1",
		WagerDraft: *draft,
		Verdict:    models.Settled(true, draft, "LeBron James: 30 punti (linea 24.5)", ""),
	}
}

func TestSportIcon(t *testing.T) {
	assert.Equal(t, "🏀", SportIcon("NBA"))
	assert.Equal(t, "⚽", SportIcon("Calcio"))
	assert.Equal(t, "🎯", SportIcon("Rugby"))
}

func TestFormatVerdict_Won(t *testing.T) {
	out := FormatVerdict(wonRecord())

	assert.Contains(t, out, "🏀")
	assert.Contains(t, out, "Lakers vs Nuggets")
	assert.Contains(t, out, "VINTA")
	assert.Contains(t, out, "LeBron James: 30 punti")
	assert.Contains(t, out, "+85.00€")
}

func TestFormatVerdict_Undetermined(t *testing.T) {
	rec := wonRecord()
	rec.Verdict = models.Undetermined("Partita in corso", "l'evento non è ancora concluso")

	out := FormatVerdict(rec)
	assert.Contains(t, out, "⏳")
	assert.Contains(t, out, "DA VERIFICARE")
	assert.NotContains(t, out, "Profitto/Perdita")
}

func TestFormatSummary(t *testing.T) {
	summary := &models.StatsSummary{
		Sports: []models.SportSummaryLine{
			{
				Sport: "Basket",
				Aggregate: &models.SportAggregate{
					TotalBets:       2,
					Won:             1,
					Lost:            1,
					TotalStaked:     decimal.RequireFromString("200"),
					TotalProfitLoss: decimal.RequireFromString("-15"),
				},
			},
		},
		TotalBets:   2,
		TotalStaked: decimal.RequireFromString("200"),
		TotalProfit: decimal.RequireFromString("-15"),
	}

	out := FormatSummary(summary)
	assert.Contains(t, out, "🏀 **Basket**")
	assert.Contains(t, out, "Vinte: 1")
	assert.Contains(t, out, "ROI: -7.5%")
	assert.Contains(t, out, "**Totale**: 2 scommesse")
}

func TestFormatSummary_Empty(t *testing.T) {
	out := FormatSummary(&models.StatsSummary{})
	assert.Contains(t, out, "Nessuna scommessa")
}

func TestFormatReset(t *testing.T) {
	assert.Contains(t, FormatReset(&models.ResetResult{}), "già vuoto")
	out := FormatReset(&models.ResetResult{Cleared: 3, BackupPath: "backup_20260829_120000.json"})
	assert.Contains(t, out, "3 scommesse")
	assert.Contains(t, out, "backup_20260829_120000.json")
}
