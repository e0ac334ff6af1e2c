// Package interpret turns free-text bet descriptions into normalized
// predicates. Classification is keyword-table driven and evaluated
// first-match-wins so new bet vocabulary is a table entry, not a branch.
package interpret

import (
	"regexp"
	"strconv"
	"strings"

	"betcheck/models"
)

var numberPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)

// statTable maps bet-text keywords onto a statistic kind. Ordered;
// first match wins.
type statTable struct {
	keywords []string
	stat     models.StatKind
}

// Basketball player-prop vocabulary, Italian slips first since that is what
// the extraction service sees most.
var basketballStats = []statTable{
	{[]string{"tiri da 3", "tiri da tre", "three", "3pt"}, models.StatThreePointers},
	{[]string{"punti", "points", "pts"}, models.StatPoints},
	{[]string{"assist", "ast"}, models.StatAssists},
	{[]string{"rimbalz", "rebound", "reb"}, models.StatRebounds},
	{[]string{"stoppat", "block", "blk"}, models.StatBlocks},
	{[]string{"rubat", "steal", "stl"}, models.StatSteals},
}

// 1X2 outcome literals. Matched against the whole trimmed bet text, most
// specific literal first, so a bet reading "2" can never be shadowed by an
// "x" buried inside another word. Anything that is not an exact literal
// falls through to the over/under and GG/NG rules.
var outcomeLiterals = []struct {
	tokens []string
	stat   models.StatKind
}{
	{[]string{"1", "home", "casa"}, models.StatHomeWin},
	{[]string{"x", "draw", "pareggio"}, models.StatDraw},
	{[]string{"2", "away", "trasferta"}, models.StatAwayWin},
}

// Interpret derives a BetPredicate from a free-text bet description.
// A text that matches no table yields StatUnknown, which callers must treat
// as an undetermined wager, never as an error.
func Interpret(family models.SportFamily, betText string) models.BetPredicate {
	switch family {
	case models.FamilyBasketball:
		return interpretBasketball(betText)
	case models.FamilyFootball:
		return interpretFootball(betText)
	default:
		return models.BetPredicate{Stat: models.StatUnknown, Direction: models.DirectionNone}
	}
}

func interpretBasketball(betText string) models.BetPredicate {
	lower := strings.ToLower(betText)

	pred := models.BetPredicate{Stat: models.StatUnknown, Direction: models.DirectionNone}
	switch {
	case strings.Contains(lower, "over"):
		pred.Direction = models.DirectionOver
	case strings.Contains(lower, "under"):
		pred.Direction = models.DirectionUnder
	default:
		return pred
	}

	pred.Threshold = firstNumber(betText)
	if pred.Threshold == nil {
		// Over/under with no line is not a resolvable bet.
		return pred
	}

	for _, table := range basketballStats {
		for _, kw := range table.keywords {
			if strings.Contains(lower, kw) {
				pred.Stat = table.stat
				return pred
			}
		}
	}
	return pred
}

func interpretFootball(betText string) models.BetPredicate {
	lower := strings.ToLower(strings.TrimSpace(betText))

	// Exact 1X2 literals first.
	for _, lit := range outcomeLiterals {
		for _, tok := range lit.tokens {
			if lower == tok {
				return models.BetPredicate{Stat: lit.stat, Direction: models.DirectionOutcome}
			}
		}
	}

	// Over/under on total goals.
	if strings.Contains(lower, "over") || strings.Contains(lower, "under") {
		pred := models.BetPredicate{Stat: models.StatUnknown, Direction: models.DirectionOver}
		if strings.Contains(lower, "under") {
			pred.Direction = models.DirectionUnder
		}
		pred.Threshold = firstNumber(betText)
		if pred.Threshold != nil {
			pred.Stat = models.StatTotalGoals
		}
		return pred
	}

	// Both-teams-scored language: "gg"/"goal", negated by "no"/"ng".
	if strings.Contains(lower, "gg") || strings.Contains(lower, "goal") || containsWord(lower, "ng") {
		stat := models.StatBothScored
		if containsWord(lower, "no") || containsWord(lower, "ng") {
			stat = models.StatNotBothScored
		}
		return models.BetPredicate{Stat: stat, Direction: models.DirectionOutcome}
	}

	return models.BetPredicate{Stat: models.StatUnknown, Direction: models.DirectionNone}
}

// firstNumber extracts the first integer or decimal token, the bet line.
func firstNumber(text string) *float64 {
	match := numberPattern.FindString(text)
	if match == "" {
		return nil
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return nil
	}
	return &v
}

func containsWord(text, word string) bool {
	for _, f := range strings.Fields(text) {
		if f == word {
			return true
		}
	}
	return false
}
