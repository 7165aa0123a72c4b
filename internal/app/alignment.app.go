package app

import (
	"context"
	"fmt"
	"io"
	"strategyalign/internal/domain"
	"strategyalign/internal/logger"
	"strategyalign/internal/repository"
	l3_service "strategyalign/internal/service/l3"

	"github.com/google/uuid"
)

// AlignmentApp is what the api, lambda and cli call into. It owns run ids,
// logging and csv handling around the engine.
type AlignmentApp interface {
	Analyze(ctx context.Context, portfolio, reference domain.Table) (*domain.AlignmentResult, error)
	AnalyzeCsv(ctx context.Context, portfolio, reference io.Reader) (*domain.AlignmentResult, error)
	Export(result domain.AlignmentResult, table domain.ExportTable) (string, error)
	Commentary(ctx context.Context, result domain.AlignmentResult) (*Commentary, error)
}

type Commentary struct {
	RunID      uuid.UUID       `json:"runID"`
	Insight    *domain.Insight `json:"insight"`
	Commentary *string         `json:"commentary"`
}

type alignmentAppHandler struct {
	AlignmentService l3_service.AlignmentService
	TableRepository  repository.TableRepository
	ExportRepository repository.ExportRepository
	GptRepository    repository.GptRepository
}

func NewAlignmentApp(
	alignmentService l3_service.AlignmentService,
	tableRepository repository.TableRepository,
	exportRepository repository.ExportRepository,
	gptRepository repository.GptRepository,
) AlignmentApp {
	return &alignmentAppHandler{
		AlignmentService: alignmentService,
		TableRepository:  tableRepository,
		ExportRepository: exportRepository,
		GptRepository:    gptRepository,
	}
}

func (h *alignmentAppHandler) Analyze(ctx context.Context, portfolio, reference domain.Table) (*domain.AlignmentResult, error) {
	runID := uuid.New()
	log := logger.FromContext(ctx).With("runID", runID.String())

	profile := domain.ProfileFromContext(ctx)
	if profile == nil {
		var endProfile func()
		profile, endProfile = domain.NewProfile()
		ctx = domain.ContextWithProfile(ctx, profile)
		defer func() {
			endProfile()
			log.Debugw("alignment profile", "spans", profile.Spans, "totalMs", profile.TotalMs)
		}()
	}

	result, err := h.AlignmentService.Analyze(ctx, portfolio, reference)
	if err != nil {
		log.Warnw("alignment failed", "error", err.Error())
		return nil, err
	}
	result.RunID = runID

	log.Infow(
		"alignment complete",
		"holdings", result.TotalHoldings,
		"unmatched", len(result.Unmatched),
		"weightSource", result.WeightSource,
		"strategies", result.StrategyColumns,
		"dominant", result.Dominant.Strategy,
	)

	return result, nil
}

func (h *alignmentAppHandler) AnalyzeCsv(ctx context.Context, portfolio, reference io.Reader) (*domain.AlignmentResult, error) {
	portfolioTable, err := h.TableRepository.Read(portfolio)
	if err != nil {
		return nil, fmt.Errorf("failed to load portfolio csv: %w", err)
	}
	referenceTable, err := h.TableRepository.Read(reference)
	if err != nil {
		return nil, fmt.Errorf("failed to load reference csv: %w", err)
	}

	return h.Analyze(ctx, *portfolioTable, *referenceTable)
}

func (h *alignmentAppHandler) Export(result domain.AlignmentResult, table domain.ExportTable) (string, error) {
	return h.ExportRepository.Export(result, table)
}

// Commentary always returns the rule-based insight. The gpt commentary is
// best effort and left nil when disabled or failing.
func (h *alignmentAppHandler) Commentary(ctx context.Context, result domain.AlignmentResult) (*Commentary, error) {
	insight := result.Insight
	if insight == nil {
		built, err := l3_service.BuildInsight(result.Summaries, result.AverageOverlap)
		if err != nil {
			return nil, fmt.Errorf("failed to build insight: %w", err)
		}
		insight = built
	}

	out := &Commentary{
		RunID:   result.RunID,
		Insight: insight,
	}
	if !h.GptRepository.Enabled() {
		return out, nil
	}

	text, err := h.GptRepository.Commentary(ctx, result)
	if err != nil {
		logger.FromContext(ctx).Warnw("failed to generate commentary", "runID", result.RunID.String(), "error", err.Error())
		return out, nil
	}
	out.Commentary = &text

	return out, nil
}
