package service

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"betcheck/events"
	"betcheck/interpret"
	"betcheck/models"
	"betcheck/names"
)

type resolverService struct {
	gateways  map[models.SportFamily]ProviderGateway
	publisher EventPublisher
}

// NewResolverService creates a new resolver service routing each sport family
// to its provider gateway
func NewResolverService(gateways map[models.SportFamily]ProviderGateway, publisher EventPublisher) ResolverService {
	return &resolverService{
		gateways:  gateways,
		publisher: publisher,
	}
}

func (s *resolverService) Resolve(ctx context.Context, draft *models.WagerDraft) models.Verdict {
	verdict := s.resolve(ctx, draft)
	if s.publisher != nil {
		s.publisher.Publish(events.WagerResolvedEvent{
			Sport:  draft.Sport,
			Status: string(verdict.Status),
		})
	}
	return verdict
}

func (s *resolverService) resolve(ctx context.Context, draft *models.WagerDraft) models.Verdict {
	family := models.FamilyOf(draft.Sport)
	gateway, ok := s.gateways[family]
	if !ok {
		log.WithField("sport", draft.Sport).Info("no provider for sport, leaving undetermined")
		return models.Undetermined("Sport non supportato", fmt.Sprintf("sport %q non riconosciuto", draft.Sport))
	}

	home, away, splitOK := names.SplitMatch(draft.Match)
	if !splitOK {
		return models.Undetermined("Squadre non identificabili", fmt.Sprintf("impossibile identificare le squadre in %q", draft.Match))
	}
	query := models.EventQuery{
		HomeTeam: home,
		AwayTeam: away,
		Player:   names.Normalize(draft.Player),
		Date:     draft.PlacedAt,
	}

	if family == models.FamilyBasketball && draft.Player == "" {
		return models.Undetermined("Giocatore mancante", "scommessa NBA senza giocatore, impossibile verificare")
	}

	lookup := gateway.FindEvent(ctx, query)
	s.publishLookup(draft, family, lookup)
	if lookup.Status != models.LookupFound {
		return models.Undetermined("Partita non trovata", fmt.Sprintf("nessun evento trovato per %q", draft.Match))
	}

	predicate := interpret.Interpret(family, draft.BetType)
	if family == models.FamilyBasketball && !predicate.IsRecognized() {
		return models.Undetermined("Scommessa non interpretabile", fmt.Sprintf("tipo di scommessa %q non riconosciuto", draft.BetType))
	}

	stat := gateway.FetchSettled(ctx, lookup, predicate.Stat)
	switch stat.Status {
	case models.SettlementNotFound:
		return models.Undetermined("Dati non disponibili", "statistiche dell'evento non disponibili")
	case models.SettlementInProgress:
		return models.Undetermined("Partita in corso", "l'evento non è ancora concluso")
	}

	return s.evaluate(family, draft, predicate, stat)
}

func (s *resolverService) evaluate(family models.SportFamily, draft *models.WagerDraft, predicate models.BetPredicate, stat models.StatLookup) models.Verdict {
	switch family {
	case models.FamilyBasketball:
		return evaluateBasketball(draft, predicate, stat)
	case models.FamilyFootball:
		return evaluateFootball(draft, predicate, stat)
	}
	return models.Undetermined("Sport non supportato", "")
}

// evaluateBasketball compares a player stat line against an over/under
// threshold. A value exactly equal to the threshold loses on both sides.
func evaluateBasketball(draft *models.WagerDraft, predicate models.BetPredicate, stat models.StatLookup) models.Verdict {
	if stat.Value == nil || predicate.Threshold == nil {
		return models.Undetermined("Dati non disponibili", "valore statistico mancante")
	}
	value := *stat.Value
	threshold := *predicate.Threshold

	var won bool
	switch predicate.Direction {
	case models.DirectionOver:
		won = value > threshold
	case models.DirectionUnder:
		won = value < threshold
	default:
		return models.Undetermined("Scommessa non interpretabile", "")
	}

	result := fmt.Sprintf("%s: %s %s (linea %s)", draft.Player, trimFloat(value), statLabel(predicate.Stat), trimFloat(threshold))
	return models.Settled(won, draft, result, "")
}

// evaluateFootball checks 1X2, total-goals and both-teams-score markets
// against the final scoreline.
func evaluateFootball(draft *models.WagerDraft, predicate models.BetPredicate, stat models.StatLookup) models.Verdict {
	if stat.Scoreline == nil {
		return models.Undetermined("Dati non disponibili", "risultato finale mancante")
	}
	score := *stat.Scoreline
	result := fmt.Sprintf("Risultato finale: %s", score.String())

	switch predicate.Stat {
	case models.StatHomeWin:
		return models.Settled(score.Home > score.Away, draft, result, "")
	case models.StatAwayWin:
		return models.Settled(score.Away > score.Home, draft, result, "")
	case models.StatDraw:
		return models.Settled(score.Home == score.Away, draft, result, "")
	case models.StatBothScored:
		return models.Settled(score.Home > 0 && score.Away > 0, draft, result, "")
	case models.StatNotBothScored:
		return models.Settled(score.Home == 0 || score.Away == 0, draft, result, "")
	case models.StatTotalGoals:
		if predicate.Threshold == nil {
			return models.Undetermined("Scommessa non interpretabile", "linea gol mancante")
		}
		total := float64(score.Total())
		var won bool
		switch predicate.Direction {
		case models.DirectionOver:
			won = total > *predicate.Threshold
		case models.DirectionUnder:
			won = total < *predicate.Threshold
		default:
			return models.Undetermined("Scommessa non interpretabile", "")
		}
		return models.Settled(won, draft, fmt.Sprintf("%s (%d gol totali)", result, score.Total()), "")
	}
	return models.Undetermined("Scommessa non interpretabile", result)
}

func (s *resolverService) publishLookup(draft *models.WagerDraft, family models.SportFamily, lookup models.EventLookup) {
	if s.publisher == nil {
		return
	}
	s.publisher.Publish(events.ProviderLookupEvent{
		Provider: string(family),
		Found:    lookup.Status == models.LookupFound,
	})
}

func statLabel(stat models.StatKind) string {
	switch stat {
	case models.StatPoints:
		return "punti"
	case models.StatAssists:
		return "assist"
	case models.StatRebounds:
		return "rimbalzi"
	case models.StatThreePointers:
		return "tiri da 3"
	case models.StatBlocks:
		return "stoppate"
	case models.StatSteals:
		return "palle rubate"
	}
	return string(stat)
}

func trimFloat(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}
