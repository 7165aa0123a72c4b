package l3_service

import (
	"context"
	"fmt"
	"strategyalign/internal/domain"
	l1_service "strategyalign/internal/service/l1"
	l2_service "strategyalign/internal/service/l2"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

// AlignmentService is the reconciliation engine. It holds only immutable
// configuration, so one instance can serve concurrent requests.
type AlignmentService interface {
	// Analyze runs the full pipeline over the two raw tables. It either
	// returns a complete result or a typed error, never a partial result.
	Analyze(ctx context.Context, portfolio, reference domain.Table) (*domain.AlignmentResult, error)
	// Summarize scores and ranks each strategy over already joined rows
	Summarize(joined []domain.JoinedRow, strategies []string) ([]domain.StrategySummary, error)
}

type alignmentServiceHandler struct {
	TableService          l2_service.TableService
	ReconciliationService l2_service.ReconciliationService
	QualificationService  l1_service.QualificationService
	Scorer                AlignmentScorer
}

func NewAlignmentService(
	tableService l2_service.TableService,
	reconciliationService l2_service.ReconciliationService,
	qualificationService l1_service.QualificationService,
	scorer AlignmentScorer,
) AlignmentService {
	return alignmentServiceHandler{
		TableService:          tableService,
		ReconciliationService: reconciliationService,
		QualificationService:  qualificationService,
		Scorer:                scorer,
	}
}

// NewAlignmentServiceFromConfig validates cfg and wires every component the
// engine needs from it
func NewAlignmentServiceFromConfig(cfg domain.EngineConfig) (AlignmentService, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	scorer, err := NewAlignmentScorer(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to construct alignment scorer: %w", err)
	}

	tableService := l2_service.NewTableService(
		cfg.PortfolioSymbolColumns,
		cfg.ReferenceSymbolColumns,
		l1_service.NewWeightService(cfg.WeightColumns, cfg.ShareColumns),
		l2_service.NewColumnClassifierService(cfg.MetadataDenylist, cfg.ColumnPolicy),
	)
	reconciliationService := l2_service.NewReconciliationService(
		l1_service.NewSymbolService(cfg.PortfolioSymbolProfile, cfg.ExchangeSuffixes),
		l1_service.NewSymbolService(cfg.ReferenceSymbolProfile, cfg.ExchangeSuffixes),
		cfg.StrictJoin,
	)

	return NewAlignmentService(
		tableService,
		reconciliationService,
		l1_service.NewQualificationService(cfg.NegativeSignals),
		scorer,
	), nil
}

func (h alignmentServiceHandler) Analyze(ctx context.Context, portfolio, reference domain.Table) (*domain.AlignmentResult, error) {
	profile := domain.ProfileFromContext(ctx)

	if portfolio.Len() == 0 {
		return nil, domain.EmptyPortfolioError{}
	}

	_, endSpan := profile.StartNewSpan("resolve tables")
	holdings, weightSource, err := h.TableService.Holdings(portfolio)
	if err != nil {
		return nil, fmt.Errorf("failed to read portfolio: %w", err)
	}
	matrix, err := h.TableService.ReferenceRows(reference)
	if err != nil {
		return nil, fmt.Errorf("failed to read reference matrix: %w", err)
	}
	endSpan()

	_, endSpan = profile.StartNewSpan("join")
	joined, err := h.ReconciliationService.Join(holdings, matrix.Rows)
	if err != nil {
		return nil, fmt.Errorf("failed to join portfolio onto reference matrix: %w", err)
	}
	endSpan()

	_, endSpan = profile.StartNewSpan("score")
	summaries, err := h.Summarize(joined, matrix.StrategyColumns)
	if err != nil {
		return nil, fmt.Errorf("failed to score strategies: %w", err)
	}
	overlap, err := ComputeOverlap(joined, matrix.StrategyColumns, h.QualificationService)
	if err != nil {
		return nil, fmt.Errorf("failed to compute overlap: %w", err)
	}
	insight, err := BuildInsight(summaries, overlap.AverageOverlap)
	if err != nil {
		return nil, fmt.Errorf("failed to build insight: %w", err)
	}
	endSpan()

	unmatched := []domain.Holding{}
	totalWeight := decimal.Zero
	for _, row := range joined {
		totalWeight = totalWeight.Add(decimal.NewFromFloat(row.Holding.Weight))
		if !row.Matched {
			unmatched = append(unmatched, row.Holding)
		}
	}

	dominant, _ := Dominant(summaries)

	return &domain.AlignmentResult{
		Summaries:       summaries,
		Dominant:        dominant,
		Overlap:         overlap.Distribution,
		AverageOverlap:  overlap.AverageOverlap,
		HoldingOverlaps: overlap.HoldingOverlaps,
		Unmatched:       unmatched,
		WeightSource:    weightSource,
		TotalHoldings:   len(joined),
		TotalWeight:     totalWeight.InexactFloat64(),
		StrategyColumns: matrix.StrategyColumns,
		MetadataColumns: matrix.MetadataColumns,
		Insight:         insight,
	}, nil
}

func (h alignmentServiceHandler) Summarize(joined []domain.JoinedRow, strategies []string) ([]domain.StrategySummary, error) {
	totalHoldings := len(joined)
	if totalHoldings == 0 {
		return nil, domain.EmptyPortfolioError{}
	}

	totalWeight := decimal.Zero
	for _, row := range joined {
		totalWeight = totalWeight.Add(decimal.NewFromFloat(row.Holding.Weight))
	}
	hundred := decimal.NewFromInt(100)

	summaries := make([]domain.StrategySummary, 0, len(strategies))
	for _, s := range strategies {
		count := 0
		weightedScore := decimal.Zero
		for _, row := range joined {
			signal := h.QualificationService.Coerce(row.Value(s))
			if signal > 0 {
				count++
			}
			weightedScore = weightedScore.Add(
				decimal.NewFromFloat(signal).Mul(decimal.NewFromFloat(row.Holding.Weight)),
			)
		}

		qualifyingPercent := float64(count) / float64(totalHoldings) * 100
		weightedPercent := 0.0
		if totalWeight.IsPositive() {
			weightedPercent = weightedScore.Div(totalWeight).Mul(hundred).InexactFloat64()
		}

		alignment, err := h.Scorer.Score(ScoreInput{
			QualifyingCount:   count,
			QualifyingPercent: qualifyingPercent,
			WeightedScore:     weightedScore.InexactFloat64(),
			WeightedPercent:   weightedPercent,
			TotalHoldings:     totalHoldings,
			TotalWeight:       totalWeight.InexactFloat64(),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to score %s: %w", s, err)
		}

		summaries = append(summaries, domain.StrategySummary{
			Strategy:          s,
			QualifyingCount:   count,
			QualifyingPercent: round(qualifyingPercent, 1),
			WeightedScore:     round(weightedScore.InexactFloat64(), 4),
			WeightedPercent:   round(weightedPercent, 2),
			AlignmentScore:    round(alignment, 2),
		})
	}

	return RankSummaries(summaries), nil
}

func round(f float64, places int) float64 {
	r, err := stats.Round(f, places)
	if err != nil {
		return 0
	}
	return r
}
