package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// SportFamily identifies which provider gateway handles a wager.
// Sport names arrive as free text from slip extraction ("NBA", "Calcio",
// "soccer", ...) and are folded into a family for routing.
type SportFamily string

const (
	FamilyBasketball SportFamily = "basketball"
	FamilyFootball   SportFamily = "football"
	FamilyUnknown    SportFamily = "unknown"
)

// FamilyOf folds a free-text sport name into a SportFamily.
func FamilyOf(sport string) SportFamily {
	switch strings.ToLower(strings.TrimSpace(sport)) {
	case "nba", "basket", "basketball":
		return FamilyBasketball
	case "calcio", "football", "soccer":
		return FamilyFootball
	default:
		return FamilyUnknown
	}
}

// WagerDraft is the structured wager extracted from a slip screenshot.
// It is produced once by the extraction adapter and never mutated afterwards.
type WagerDraft struct {
	Sport           string          `json:"sport"`
	Match           string          `json:"match"`
	BetType         string          `json:"bet_type"`
	Player          string          `json:"player,omitempty"`
	Odds            decimal.Decimal `json:"quota"`
	Stake           decimal.Decimal `json:"importo"`
	PotentialPayout decimal.Decimal `json:"vincita_potenziale"`
	PlacedAt        string          `json:"date"` // "DD/MM/YYYY HH:MM" as printed on the slip
}

// VerdictStatus is the tri-state settlement outcome of a wager.
type VerdictStatus string

const (
	VerdictWon          VerdictStatus = "won"
	VerdictLost         VerdictStatus = "lost"
	VerdictUndetermined VerdictStatus = "undetermined"
)

// Verdict is the outcome of a single resolution attempt.
// ProfitLoss is nil exactly when the verdict is undetermined.
type Verdict struct {
	Status     VerdictStatus    `json:"status"`
	Result     string           `json:"result"`
	Detail     string           `json:"detail,omitempty"`
	ProfitLoss *decimal.Decimal `json:"profit_loss"`
}

// IsSettled reports whether the wager reached a won or lost state.
func (v *Verdict) IsSettled() bool {
	return v.Status == VerdictWon || v.Status == VerdictLost
}

// Undetermined builds a pending verdict with a human-readable reason.
func Undetermined(result, detail string) Verdict {
	return Verdict{Status: VerdictUndetermined, Result: result, Detail: detail}
}

// Settled builds a won or lost verdict and computes the signed profit/loss
// from the draft's stake and potential payout.
func Settled(won bool, draft *WagerDraft, result, detail string) Verdict {
	v := Verdict{Result: result, Detail: detail}
	var pl decimal.Decimal
	if won {
		v.Status = VerdictWon
		pl = draft.PotentialPayout.Sub(draft.Stake)
	} else {
		v.Status = VerdictLost
		pl = draft.Stake.Neg()
	}
	v.ProfitLoss = &pl
	return v
}

// WagerRecord is an appended ledger entry: the draft plus its verdict.
// Immutable once appended.
type WagerRecord struct {
	ID string `json:"id"`
	WagerDraft
	Verdict    Verdict   `json:"verdict"`
	ResolvedAt time.Time `json:"analyzed_at"`
}

// Ledger is the persisted document: the ordered record sequence plus the
// denormalized per-sport aggregates. The aggregates are a pure fold over
// Bets and must never diverge from RecomputeAggregates(Bets).
type Ledger struct {
	Bets         []*WagerRecord             `json:"bets"`
	StatsBySport map[string]*SportAggregate `json:"stats_by_sport"`
}

// NewLedger returns an empty ledger with initialized containers.
func NewLedger() *Ledger {
	return &Ledger{
		Bets:         []*WagerRecord{},
		StatsBySport: map[string]*SportAggregate{},
	}
}
