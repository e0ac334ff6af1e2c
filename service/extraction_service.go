package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"

	"betcheck/events"
	"betcheck/models"
)

// ErrExtraction marks failures to turn a slip image into a usable draft.
// Callers match it with errors.Is to show the user a retry hint instead of
// a raw error.
var ErrExtraction = errors.New("slip extraction failed")

const extractionPrompt = `Analizza questa schedina di scommessa e restituisci SOLO un oggetto JSON con questi campi:
{
  "sport": "nome dello sport (es. Calcio, Basket, NBA)",
  "match": "squadre della partita (es. Milan vs Inter)",
  "bet_type": "tipo di scommessa esattamente come scritto (es. 1, Over 2.5, OVER 24.5 punti)",
  "player": "nome del giocatore se la scommessa riguarda un giocatore, altrimenti stringa vuota",
  "quota": quota come numero,
  "importo": importo giocato come numero,
  "vincita_potenziale": vincita potenziale come numero,
  "date": "data e ora della partita come stampata (es. 28/08/2026 21:00)"
}
Non aggiungere testo prima o dopo il JSON.`

var codeFencePattern = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

type extractionService struct {
	vision    VisionClient
	publisher EventPublisher
}

// NewExtractionService creates a new slip extraction service
func NewExtractionService(vision VisionClient, publisher EventPublisher) SlipExtractor {
	return &extractionService{
		vision:    vision,
		publisher: publisher,
	}
}

func (s *extractionService) Extract(ctx context.Context, image []byte) (*models.WagerDraft, error) {
	reply, err := s.vision.Describe(ctx, image, extractionPrompt)
	if err != nil {
		s.publishFailure("vision request failed")
		return nil, fmt.Errorf("%w: %v", ErrExtraction, err)
	}

	draft := &models.WagerDraft{}
	if err := json.Unmarshal([]byte(stripCodeFence(reply)), draft); err != nil {
		log.WithField("reply", reply).Warn("Vision reply was not valid JSON")
		s.publishFailure("reply not valid JSON")
		return nil, fmt.Errorf("%w: invalid JSON in model reply", ErrExtraction)
	}

	if err := validateDraft(draft); err != nil {
		s.publishFailure(err.Error())
		return nil, fmt.Errorf("%w: %v", ErrExtraction, err)
	}

	if s.publisher != nil {
		s.publisher.Publish(events.SlipExtractedEvent{
			Sport: draft.Sport,
			Match: draft.Match,
		})
	}
	return draft, nil
}

// stripCodeFence unwraps a markdown code fence if the model added one.
func stripCodeFence(reply string) string {
	if m := codeFencePattern.FindStringSubmatch(reply); m != nil {
		return m[1]
	}
	return strings.TrimSpace(reply)
}

func validateDraft(draft *models.WagerDraft) error {
	switch {
	case strings.TrimSpace(draft.Sport) == "":
		return errors.New("missing sport")
	case strings.TrimSpace(draft.Match) == "":
		return errors.New("missing match")
	case strings.TrimSpace(draft.BetType) == "":
		return errors.New("missing bet type")
	case !draft.Odds.IsPositive():
		return errors.New("missing odds")
	case !draft.Stake.IsPositive():
		return errors.New("missing stake")
	case !draft.PotentialPayout.IsPositive():
		return errors.New("missing potential payout")
	}
	return nil
}

func (s *extractionService) publishFailure(reason string) {
	if s.publisher == nil {
		return
	}
	s.publisher.Publish(events.ExtractionFailedEvent{Reason: reason})
}
