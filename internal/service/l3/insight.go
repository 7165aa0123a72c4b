package l3_service

import (
	"fmt"
	"sort"
	"strategyalign/internal/domain"
	"strconv"
	"strings"

	"github.com/montanaflynn/stats"
)

const (
	Concentration_High        = "High single-factor concentration"
	Concentration_Moderate    = "Moderate factor concentration"
	Concentration_Diversified = "Diversified factor exposure"

	Overlap_Low      = "Low multi-factor overlap"
	Overlap_Moderate = "Moderate multi-factor overlap"
	Overlap_High     = "High multi-factor clustering"
)

func describeConcentration(dominantPercent float64) string {
	if dominantPercent > 50 {
		return Concentration_High
	} else if dominantPercent > 35 {
		return Concentration_Moderate
	}
	return Concentration_Diversified
}

func describeOverlap(averageOverlap float64) string {
	if averageOverlap < 1.5 {
		return Overlap_Low
	} else if averageOverlap < 2.5 {
		return Overlap_Moderate
	}
	return Overlap_High
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// BuildInsight reads a ranked result the way an analyst would: what style
// dominates, how concentrated the top two are, and how much the holdings
// double up across strategies
func BuildInsight(ranked []domain.StrategySummary, averageOverlap float64) (*domain.Insight, error) {
	dominant, ok := Dominant(ranked)
	if !ok {
		return nil, fmt.Errorf("cannot build insight without strategy summaries")
	}

	percents := make([]float64, 0, len(ranked))
	for _, s := range ranked {
		percents = append(percents, s.QualifyingPercent)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(percents)))
	if len(percents) > 2 {
		percents = percents[:2]
	}
	sum, err := stats.Sum(percents)
	if err != nil {
		return nil, err
	}
	topTwo, err := stats.Round(sum, 1)
	if err != nil {
		return nil, err
	}

	concentration := describeConcentration(dominant.QualifyingPercent)
	overlap := describeOverlap(averageOverlap)

	lines := []string{
		fmt.Sprintf("Dominant Style: %s (%s%% of holdings).", dominant.Strategy, formatNumber(dominant.QualifyingPercent)),
		"",
		fmt.Sprintf("Top two strategies represent %s%% of the portfolio,", formatNumber(topTwo)),
		fmt.Sprintf("indicating %s.", strings.ToLower(concentration)),
		"",
		fmt.Sprintf("Average strategies per stock: %s.", formatNumber(averageOverlap)),
		overlap + ".",
	}

	return &domain.Insight{
		DominantStrategy:   dominant.Strategy,
		DominantPercent:    dominant.QualifyingPercent,
		TopTwoPercent:      topTwo,
		AverageOverlap:     averageOverlap,
		Concentration:      concentration,
		OverlapDescription: overlap,
		Summary:            strings.Join(lines, "\n"),
	}, nil
}

