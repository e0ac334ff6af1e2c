package service

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"betcheck/models"
)

type statsService struct {
	ledger LedgerService
}

// NewStatsService creates a new stats service
func NewStatsService(ledger LedgerService) StatsService {
	return &statsService{ledger: ledger}
}

func (s *statsService) Summary(ctx context.Context) (*models.StatsSummary, error) {
	aggregates, err := s.ledger.AggregateBySport(ctx)
	if err != nil {
		return nil, err
	}

	summary := &models.StatsSummary{
		TotalStaked: decimal.Zero,
		TotalProfit: decimal.Zero,
	}

	sports := make([]string, 0, len(aggregates))
	for sport := range aggregates {
		sports = append(sports, sport)
	}
	sort.Strings(sports)

	for _, sport := range sports {
		agg := aggregates[sport]
		summary.Sports = append(summary.Sports, models.SportSummaryLine{
			Sport:     sport,
			Aggregate: agg,
		})
		summary.TotalBets += agg.TotalBets
		summary.TotalStaked = summary.TotalStaked.Add(agg.TotalStaked)
		summary.TotalProfit = summary.TotalProfit.Add(agg.TotalProfitLoss)
	}
	return summary, nil
}
