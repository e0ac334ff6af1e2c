package livescore

import (
	"context"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"betcheck/models"
	"betcheck/names"
	"betcheck/providers"
)

// Gateway resolves football fixtures and their settled scorelines. Network
// and payload failures degrade to not-found; they never propagate.
type Gateway struct {
	client *Client
	now    func() time.Time
}

// NewGateway wraps a LiveScore client as a provider gateway.
func NewGateway(client *Client) *Gateway {
	return &Gateway{client: client, now: time.Now}
}

// FindEvent locates the fixture on the slip date whose two team names both
// match the query under the bidirectional-substring policy.
func (g *Gateway) FindEvent(ctx context.Context, q models.EventQuery) models.EventLookup {
	notFound := models.EventLookup{Status: models.LookupNotFound}

	date := providers.APIDate(q.Date, g.now())
	matches, err := g.client.MatchesByDate(ctx, date)
	if err != nil {
		log.WithError(err).WithField("date", date).Warn("livescore: fixtures lookup failed")
		return notFound
	}

	for _, m := range matches {
		home := names.Normalize(m.HomeName)
		away := names.Normalize(m.AwayName)
		homeOK := names.FuzzyEqual(q.HomeTeam, home) || names.FuzzyEqual(q.HomeTeam, away)
		awayOK := names.FuzzyEqual(q.AwayTeam, home) || names.FuzzyEqual(q.AwayTeam, away)
		if homeOK && awayOK {
			return models.EventLookup{
				Status:   models.LookupFound,
				GameID:   strconv.Itoa(m.ID),
				Date:     date,
				HomeTeam: m.HomeName,
				AwayTeam: m.AwayName,
			}
		}
	}
	return notFound
}

// FetchSettled re-reads the day's fixtures and returns the scoreline for the
// resolved fixture, or an in-progress status when it has not finished.
func (g *Gateway) FetchSettled(ctx context.Context, lookup models.EventLookup, _ models.StatKind) models.StatLookup {
	notFound := models.StatLookup{Status: models.SettlementNotFound}

	matches, err := g.client.MatchesByDate(ctx, lookup.Date)
	if err != nil {
		log.WithError(err).WithField("date", lookup.Date).Warn("livescore: fixtures lookup failed")
		return notFound
	}

	for _, m := range matches {
		if strconv.Itoa(m.ID) != lookup.GameID {
			continue
		}
		if !isFinished(m.Status) {
			return models.StatLookup{Status: models.SettlementInProgress}
		}
		return models.StatLookup{
			Status:    models.SettlementFinished,
			Scoreline: &models.Scoreline{Home: m.HomeScore, Away: m.AwayScore},
		}
	}
	return notFound
}

func isFinished(status string) bool {
	switch strings.ToUpper(strings.TrimSpace(status)) {
	case "FINISHED", "FT", "90":
		return true
	}
	return false
}
