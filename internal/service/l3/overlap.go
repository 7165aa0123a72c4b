package l3_service

import (
	"strategyalign/internal/domain"
	l1_service "strategyalign/internal/service/l1"

	"github.com/montanaflynn/stats"
)

type OverlapResult struct {
	Distribution    domain.OverlapDistribution
	HoldingOverlaps []domain.HoldingOverlap
	AverageOverlap  float64
}

// ComputeOverlap counts, per joined row, how many strategies it qualifies
// under, and how many rows land on each count. Every count from 0 to
// len(strategies) is present even when empty.
func ComputeOverlap(
	joined []domain.JoinedRow,
	strategies []string,
	qualificationService l1_service.QualificationService,
) (*OverlapResult, error) {
	counts := make([]int, len(strategies)+1)
	holdingOverlaps := make([]domain.HoldingOverlap, 0, len(joined))
	perRow := make([]float64, 0, len(joined))

	for _, row := range joined {
		qualified := []string{}
		for _, s := range strategies {
			if qualificationService.Qualifies(row.Value(s)) {
				qualified = append(qualified, s)
			}
		}
		counts[len(qualified)]++
		perRow = append(perRow, float64(len(qualified)))
		holdingOverlaps = append(holdingOverlaps, domain.HoldingOverlap{
			Symbol:              row.Holding.Symbol,
			Weight:              row.Holding.Weight,
			Matched:             row.Matched,
			StrategiesQualified: len(qualified),
			Strategies:          qualified,
		})
	}

	distribution := make(domain.OverlapDistribution, len(counts))
	for n, c := range counts {
		distribution[n] = domain.OverlapBucket{
			StrategiesQualified: n,
			HoldingCount:        c,
		}
	}

	average := 0.0
	if len(perRow) > 0 {
		mean, err := stats.Mean(perRow)
		if err != nil {
			return nil, err
		}
		average, err = stats.Round(mean, 2)
		if err != nil {
			return nil, err
		}
	}

	return &OverlapResult{
		Distribution:    distribution,
		HoldingOverlaps: holdingOverlaps,
		AverageOverlap:  average,
	}, nil
}
