package models

// Direction is the comparison direction of a bet predicate.
type Direction string

const (
	DirectionOver    Direction = "over"
	DirectionUnder   Direction = "under"
	DirectionOutcome Direction = "outcome" // exact outcome code (1X2, GG/NG)
	DirectionNone    Direction = "none"
)

// StatKind is the statistic or outcome a bet predicate is settled against.
type StatKind string

const (
	StatPoints        StatKind = "points"
	StatAssists       StatKind = "assists"
	StatRebounds      StatKind = "rebounds"
	StatThreePointers StatKind = "three_pointers"
	StatBlocks        StatKind = "blocks"
	StatSteals        StatKind = "steals"
	StatTotalGoals    StatKind = "total_goals"
	StatHomeWin       StatKind = "home_win"
	StatAwayWin       StatKind = "away_win"
	StatDraw          StatKind = "draw"
	StatBothScored    StatKind = "both_teams_scored"
	StatNotBothScored StatKind = "not_both_teams_scored"
	StatUnknown       StatKind = "unknown"
)

// BetPredicate is the normalized form of a free-text bet description:
// what statistic to look at, which way to compare, and against what.
// StatUnknown is a first-class terminal state, never an error.
type BetPredicate struct {
	Stat      StatKind
	Direction Direction
	Threshold *float64 // nil when the bet text carries no numeric token
}

// IsRecognized reports whether the predicate maps to a known statistic.
func (p BetPredicate) IsRecognized() bool {
	return p.Stat != StatUnknown
}
