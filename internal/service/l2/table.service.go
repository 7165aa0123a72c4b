package l2_service

import (
	"strategyalign/internal/domain"
	l1_service "strategyalign/internal/service/l1"
)

// TableService reads the two raw tables into holdings and reference rows
type TableService interface {
	Holdings(portfolio domain.Table) ([]domain.Holding, domain.WeightSource, error)
	ReferenceRows(reference domain.Table) (*ReferenceMatrix, error)
}

type ReferenceMatrix struct {
	Rows            []domain.ReferenceRow
	MetadataColumns []string
	StrategyColumns []string
}

type tableServiceHandler struct {
	PortfolioSymbolColumns  []string
	ReferenceSymbolColumns  []string
	WeightService           l1_service.WeightService
	ColumnClassifierService ColumnClassifierService
}

func NewTableService(
	portfolioSymbolColumns []string,
	referenceSymbolColumns []string,
	weightService l1_service.WeightService,
	columnClassifierService ColumnClassifierService,
) TableService {
	return tableServiceHandler{
		PortfolioSymbolColumns:  portfolioSymbolColumns,
		ReferenceSymbolColumns:  referenceSymbolColumns,
		WeightService:           weightService,
		ColumnClassifierService: columnClassifierService,
	}
}

func (h tableServiceHandler) Holdings(portfolio domain.Table) ([]domain.Holding, domain.WeightSource, error) {
	symbolCol, ok := portfolio.FindColumn(h.PortfolioSymbolColumns)
	if !ok {
		return nil, "", domain.MissingColumnError{
			Table:    "portfolio",
			Wanted:   h.PortfolioSymbolColumns,
			Detected: portfolio.Columns,
		}
	}

	weights, source := h.WeightService.Resolve(portfolio)

	holdings := make([]domain.Holding, portfolio.Len())
	for i := range holdings {
		holdings[i] = domain.Holding{
			Symbol: portfolio.Cell(i, symbolCol).Literal(),
			Weight: weights[i],
		}
	}

	return holdings, source, nil
}

func (h tableServiceHandler) ReferenceRows(reference domain.Table) (*ReferenceMatrix, error) {
	symbolCol, ok := reference.FindColumn(h.ReferenceSymbolColumns)
	if !ok {
		return nil, domain.MissingColumnError{
			Table:    "reference",
			Wanted:   h.ReferenceSymbolColumns,
			Detected: reference.Columns,
		}
	}

	metadata, strategies, err := h.ColumnClassifierService.Classify(
		reference.Columns,
		reference.Sample(),
		reference.Columns[symbolCol],
	)
	if err != nil {
		return nil, err
	}

	strategySet := map[string]bool{}
	for _, s := range strategies {
		strategySet[s] = true
	}

	rows := make([]domain.ReferenceRow, reference.Len())
	for i := range rows {
		row := domain.ReferenceRow{
			Symbol:         reference.Cell(i, symbolCol).Literal(),
			Metadata:       map[string]string{},
			StrategyValues: map[string]domain.RawValue{},
		}
		for j, c := range reference.Columns {
			if j == symbolCol {
				continue
			}
			if strategySet[c] {
				row.StrategyValues[c] = reference.Cell(i, j)
			} else {
				row.Metadata[c] = reference.Cell(i, j).Literal()
			}
		}
		rows[i] = row
	}

	return &ReferenceMatrix{
		Rows:            rows,
		MetadataColumns: metadata,
		StrategyColumns: strategies,
	}, nil
}
