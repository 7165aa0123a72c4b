package l2_service

import (
	"strategyalign/internal/domain"
	l1_service "strategyalign/internal/service/l1"
)

type ReconciliationService interface {
	// Join left-joins holdings onto the reference matrix by normalized
	// symbol. Every holding comes out at least once; a symbol repeated in
	// the reference fans the holding out once per match.
	Join(holdings []domain.Holding, reference []domain.ReferenceRow) ([]domain.JoinedRow, error)
}

type reconciliationServiceHandler struct {
	PortfolioSymbolService l1_service.SymbolService
	ReferenceSymbolService l1_service.SymbolService
	Strict                 bool
}

func NewReconciliationService(
	portfolioSymbolService l1_service.SymbolService,
	referenceSymbolService l1_service.SymbolService,
	strict bool,
) ReconciliationService {
	return reconciliationServiceHandler{
		PortfolioSymbolService: portfolioSymbolService,
		ReferenceSymbolService: referenceSymbolService,
		Strict:                 strict,
	}
}

func (h reconciliationServiceHandler) Join(holdings []domain.Holding, reference []domain.ReferenceRow) ([]domain.JoinedRow, error) {
	index := map[string][]int{}
	duplicates := []string{}
	for i, r := range reference {
		key := h.ReferenceSymbolService.Normalize(r.Symbol)
		if key == "" {
			continue
		}
		if len(index[key]) == 1 {
			duplicates = append(duplicates, key)
		}
		index[key] = append(index[key], i)
	}

	if h.Strict && len(duplicates) > 0 {
		return nil, domain.DuplicateReferenceSymbolError{Symbols: duplicates}
	}

	out := make([]domain.JoinedRow, 0, len(holdings))
	for _, holding := range holdings {
		key := h.PortfolioSymbolService.Normalize(holding.Symbol)
		var matches []int
		if key != "" {
			matches = index[key]
		}
		if len(matches) == 0 {
			out = append(out, domain.JoinedRow{
				Holding:          holding,
				NormalizedSymbol: key,
				Matched:          false,
			})
			continue
		}
		for _, m := range matches {
			out = append(out, domain.JoinedRow{
				Holding:          holding,
				NormalizedSymbol: key,
				Matched:          true,
				Reference:        &reference[m],
			})
		}
	}

	return out, nil
}
