package models

import "fmt"

// LookupStatus is the outcome of an event/player lookup against a provider.
type LookupStatus string

const (
	LookupFound    LookupStatus = "found"
	LookupNotFound LookupStatus = "not_found"
)

// SettlementStatus is the state of a fetched statistic or scoreline.
type SettlementStatus string

const (
	SettlementNotFound   SettlementStatus = "not_found"
	SettlementInProgress SettlementStatus = "in_progress"
	SettlementFinished   SettlementStatus = "finished"
)

// EventQuery carries normalized entity names and the raw slip date into a
// provider gateway. Team and player names are already canonicalized by the
// names package.
type EventQuery struct {
	HomeTeam string
	AwayTeam string
	Player   string // optional, player-prop bets only
	Date     string // raw "DD/MM/YYYY HH:MM"; gateways translate per provider
}

// EventLookup holds the provider-native identifiers resolved for a query.
// Ephemeral: fetched fresh per resolution attempt, never cached.
type EventLookup struct {
	Status   LookupStatus
	GameID   string
	PlayerID string
	Date     string // provider-format date the event was found under
	HomeTeam string // provider display name
	AwayTeam string
}

// Scoreline is a finished match score.
type Scoreline struct {
	Home int
	Away int
}

// Total returns the combined goal count.
func (s Scoreline) Total() int { return s.Home + s.Away }

func (s Scoreline) String() string { return fmt.Sprintf("%d-%d", s.Home, s.Away) }

// StatLookup is the settled payload a gateway returns for a resolved event:
// either a single numeric value (player props) or a scoreline.
type StatLookup struct {
	Status    SettlementStatus
	Value     *float64
	Scoreline *Scoreline
}
