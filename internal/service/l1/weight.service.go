package l1_service

import (
	"math"
	"strategyalign/internal/domain"
	"strconv"
	"strings"
)

type WeightService interface {
	// Resolve returns one weight per portfolio row and which column the
	// weights came from
	Resolve(portfolio domain.Table) ([]float64, domain.WeightSource)
}

type weightServiceHandler struct {
	WeightColumns []string
	ShareColumns  []string
}

func NewWeightService(weightColumns, shareColumns []string) WeightService {
	return weightServiceHandler{
		WeightColumns: weightColumns,
		ShareColumns:  shareColumns,
	}
}

// first match wins: explicit weight, share count as a proxy, then equal
// weighting
func (h weightServiceHandler) Resolve(portfolio domain.Table) ([]float64, domain.WeightSource) {
	if col, ok := portfolio.FindColumn(h.WeightColumns); ok {
		return coerceColumn(portfolio, col), domain.WeightSource_Weight
	}
	if col, ok := portfolio.FindColumn(h.ShareColumns); ok {
		return coerceColumn(portfolio, col), domain.WeightSource_Shares
	}

	weights := make([]float64, portfolio.Len())
	for i := range weights {
		weights[i] = 1
	}
	return weights, domain.WeightSource_Equal
}

func coerceColumn(t domain.Table, col int) []float64 {
	out := make([]float64, t.Len())
	for i := range out {
		out[i] = CoerceWeight(t.Cell(i, col))
	}
	return out
}

// CoerceWeight reads "1,200", "5%" or "$300" as numbers. Unreadable and
// negative values are 0.
func CoerceWeight(v domain.RawValue) float64 {
	var f float64
	switch v.Kind {
	case domain.KindNumber:
		f = v.Number
	case domain.KindText:
		cleaned := strings.NewReplacer(",", "", "%", "", "$", "", " ", "").Replace(strings.TrimSpace(v.Text))
		parsed, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}
