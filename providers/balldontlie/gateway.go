package balldontlie

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

// Gateway resolves NBA games and player box scores. Every network or payload
// failure degrades to a not-found lookup; resolution failures are data here,
// not errors.
type Gateway struct {
	client *Client
	now    func() time.Time
}

// NewGateway wraps a BallDontLie client as a provider gateway.
func NewGateway(client *Client) *Gateway {
	return &Gateway{client: client, now: time.Now}
}

// FindEvent locates the game on the slip date whose two teams both match the
// query, then resolves the player when the query names one. First satisfying
// candidate wins.
func (g *Gateway) FindEvent(ctx context.Context, q models.EventQuery) models.EventLookup {
	notFound := models.EventLookup{Status: models.LookupNotFound}

	date := providers.APIDate(q.Date, g.now())
	games, err := g.client.GamesByDate(ctx, date)
	if err != nil {
		log.WithError(err).WithField("date", date).Warn("balldontlie: games lookup failed")
		return notFound
	}

	lookup := notFound
	for _, game := range games {
		if g.matchesGame(q, game) {
			lookup = models.EventLookup{
				Status:   models.LookupFound,
				GameID:   strconv.Itoa(game.ID),
				Date:     date,
				HomeTeam: game.HomeTeam.FullName,
				AwayTeam: game.VisitorTeam.FullName,
			}
			break
		}
	}
	if lookup.Status != models.LookupFound {
		return notFound
	}

	if q.Player != "" {
		playerID, ok := g.findPlayer(ctx, q.Player)
		if !ok {
			return notFound
		}
		lookup.PlayerID = strconv.Itoa(playerID)
	}
	return lookup
}

// FetchSettled fetches the resolved player's box score for the resolved game
// and extracts the requested statistic.
func (g *Gateway) FetchSettled(ctx context.Context, lookup models.EventLookup, stat models.StatKind) models.StatLookup {
	notFound := models.StatLookup{Status: models.SettlementNotFound}

	gameID, err := strconv.Atoi(lookup.GameID)
	if err != nil {
		return notFound
	}
	playerID, err := strconv.Atoi(lookup.PlayerID)
	if err != nil {
		return notFound
	}

	lines, err := g.client.Stats(ctx, gameID, playerID)
	if err != nil {
		log.WithError(err).WithField("game_id", gameID).Warn("balldontlie: stats lookup failed")
		return notFound
	}
	if len(lines) == 0 {
		// Game found but no line: the player may not have played yet.
		return notFound
	}

	line := lines[0]
	if !strings.EqualFold(line.Game.Status, "Final") {
		return models.StatLookup{Status: models.SettlementInProgress}
	}

	value, ok := statValue(line, stat)
	if !ok {
		return models.StatLookup{Status: models.SettlementFinished}
	}
	return models.StatLookup{Status: models.SettlementFinished, Value: &value}
}

// matchesGame applies the bidirectional-substring policy to both query teams
// against both of the game's team names, tolerating provider abbreviations
// by also testing the short team name ("Lakers" for "Los Angeles Lakers").
func (g *Gateway) matchesGame(q models.EventQuery, game Game) bool {
	homeOK := teamMatches(q.HomeTeam, game.HomeTeam) || teamMatches(q.HomeTeam, game.VisitorTeam)
	awayOK := teamMatches(q.AwayTeam, game.HomeTeam) || teamMatches(q.AwayTeam, game.VisitorTeam)
	return homeOK && awayOK
}

func teamMatches(query string, team Team) bool {
	return names.FuzzyEqual(query, names.Normalize(team.FullName)) ||
		names.FuzzyEqual(query, names.Normalize(team.Name))
}

// findPlayer searches by the query's first token and matches candidates on
// "first last" and on last name alone, first match wins.
func (g *Gateway) findPlayer(ctx context.Context, player string) (int, bool) {
	fields := strings.Fields(player)
	if len(fields) == 0 {
		return 0, false
	}

	candidates, err := g.client.SearchPlayers(ctx, fields[0])
	if err != nil {
		log.WithError(err).WithField("player", player).Warn("balldontlie: player lookup failed")
		return 0, false
	}

	for _, cand := range candidates {
		full := names.Normalize(cand.FirstName + " " + cand.LastName)
		last := names.Normalize(cand.LastName)
		if names.FuzzyEqual(player, full) || names.FuzzyEqual(player, last) {
			return cand.ID, true
		}
	}
	return 0, false
}

func statValue(line StatLine, stat models.StatKind) (float64, bool) {
	switch stat {
	case models.StatPoints:
		return line.Pts, true
	case models.StatAssists:
		return line.Ast, true
	case models.StatRebounds:
		return line.Reb, true
	case models.StatThreePointers:
		return line.Fg3m, true
	case models.StatBlocks:
		return line.Blk, true
	case models.StatSteals:
		return line.Stl, true
	default:
		return 0, false
	}
}
