package models

import "github.com/shopspring/decimal"

// SportAggregate is the denormalized per-sport rollup of wager counts and
// profit/loss. Invariant: Won + Lost + Pending == TotalBets.
type SportAggregate struct {
	TotalBets       int             `json:"total_bets"`
	Won             int             `json:"won"`
	Lost            int             `json:"lost"`
	Pending         int             `json:"pending"`
	TotalStaked     decimal.Decimal `json:"total_staked"`
	TotalProfitLoss decimal.Decimal `json:"total_profit_loss"`
}

// Concluded returns the number of settled (won or lost) wagers.
func (a *SportAggregate) Concluded() int { return a.Won + a.Lost }

// ROI returns profit over total stake as a percentage, or false when no
// wager has concluded yet.
func (a *SportAggregate) ROI() (float64, bool) {
	if a.Concluded() == 0 || !a.TotalStaked.IsPositive() {
		return 0, false
	}
	roi, _ := a.TotalProfitLoss.Div(a.TotalStaked).Mul(decimal.NewFromInt(100)).Float64()
	return roi, true
}

// Apply folds one record into the aggregate.
func (a *SportAggregate) Apply(rec *WagerRecord) {
	a.TotalBets++
	a.TotalStaked = a.TotalStaked.Add(rec.Stake)
	switch rec.Verdict.Status {
	case VerdictWon:
		a.Won++
	case VerdictLost:
		a.Lost++
	default:
		a.Pending++
	}
	if rec.Verdict.ProfitLoss != nil {
		a.TotalProfitLoss = a.TotalProfitLoss.Add(*rec.Verdict.ProfitLoss)
	}
}

// Equal compares two aggregates field by field, with decimal equality.
func (a *SportAggregate) Equal(b *SportAggregate) bool {
	if b == nil {
		return false
	}
	return a.TotalBets == b.TotalBets &&
		a.Won == b.Won && a.Lost == b.Lost && a.Pending == b.Pending &&
		a.TotalStaked.Equal(b.TotalStaked) &&
		a.TotalProfitLoss.Equal(b.TotalProfitLoss)
}

// RecomputeAggregates rebuilds the sport->aggregate mapping from scratch as
// a pure fold over the record sequence. This is the source of truth the
// denormalized Ledger.StatsBySport must always agree with.
func RecomputeAggregates(records []*WagerRecord) map[string]*SportAggregate {
	out := map[string]*SportAggregate{}
	for _, rec := range records {
		agg, ok := out[rec.Sport]
		if !ok {
			agg = &SportAggregate{}
			out[rec.Sport] = agg
		}
		agg.Apply(rec)
	}
	return out
}

// AggregatesEqual reports whether two sport->aggregate mappings agree.
func AggregatesEqual(a, b map[string]*SportAggregate) bool {
	if len(a) != len(b) {
		return false
	}
	for sport, agg := range a {
		if !agg.Equal(b[sport]) {
			return false
		}
	}
	return true
}

// SportSummaryLine is one sport's row in a rendered stats summary.
type SportSummaryLine struct {
	Sport     string
	Aggregate *SportAggregate
}

// StatsSummary is the full rendered-stats payload: per-sport lines sorted by
// sport name plus grand totals across all sports.
type StatsSummary struct {
	Sports      []SportSummaryLine
	TotalBets   int
	TotalStaked decimal.Decimal
	TotalProfit decimal.Decimal
}

// TotalROI returns overall profit over overall stake as a percentage, or
// false when nothing has been staked.
func (s *StatsSummary) TotalROI() (float64, bool) {
	if !s.TotalStaked.IsPositive() {
		return 0, false
	}
	roi, _ := s.TotalProfit.Div(s.TotalStaked).Mul(decimal.NewFromInt(100)).Float64()
	return roi, true
}

// ResetResult reports the outcome of a ledger reset.
type ResetResult struct {
	Cleared    int
	BackupPath string
}
