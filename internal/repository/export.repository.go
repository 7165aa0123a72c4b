package repository

import (
	"fmt"
	"strategyalign/internal/domain"
	"strings"

	"github.com/gocarina/gocsv"
)

type ExportRepository interface {
	Export(result domain.AlignmentResult, table domain.ExportTable) (string, error)
}

type exportRepositoryHandler struct{}

func NewExportRepository() ExportRepository {
	return exportRepositoryHandler{}
}

type summaryCsvRow struct {
	Rank              int     `csv:"rank"`
	Strategy          string  `csv:"strategy"`
	QualifyingCount   int     `csv:"qualifying_count"`
	QualifyingPercent float64 `csv:"qualifying_percent"`
	WeightedPercent   float64 `csv:"weighted_percent"`
	AlignmentScore    float64 `csv:"alignment_score"`
	Badge             string  `csv:"badge"`
}

type overlapCsvRow struct {
	StrategiesQualified int `csv:"strategies_qualified"`
	HoldingCount        int `csv:"holding_count"`
}

type unmatchedCsvRow struct {
	Symbol string  `csv:"symbol"`
	Weight float64 `csv:"weight"`
}

func (h exportRepositoryHandler) Export(result domain.AlignmentResult, table domain.ExportTable) (string, error) {
	var rows interface{}
	switch table {
	case domain.ExportTable_Summary:
		out := make([]summaryCsvRow, 0, len(result.Summaries))
		for _, s := range result.Summaries {
			out = append(out, summaryCsvRow{
				Rank:              s.Rank,
				Strategy:          s.Strategy,
				QualifyingCount:   s.QualifyingCount,
				QualifyingPercent: s.QualifyingPercent,
				WeightedPercent:   s.WeightedPercent,
				AlignmentScore:    s.AlignmentScore,
				Badge:             string(s.Badge),
			})
		}
		rows = &out
	case domain.ExportTable_Overlap:
		out := make([]overlapCsvRow, 0, len(result.Overlap))
		for _, b := range result.Overlap {
			out = append(out, overlapCsvRow{
				StrategiesQualified: b.StrategiesQualified,
				HoldingCount:        b.HoldingCount,
			})
		}
		rows = &out
	case domain.ExportTable_Unmatched:
		out := make([]unmatchedCsvRow, 0, len(result.Unmatched))
		for _, u := range result.Unmatched {
			out = append(out, unmatchedCsvRow{
				Symbol: u.Symbol,
				Weight: u.Weight,
			})
		}
		rows = &out
	default:
		return "", fmt.Errorf("unknown export table %s", table)
	}

	csv, err := gocsv.MarshalString(rows)
	if err != nil {
		return "", fmt.Errorf("failed to marshal %s csv: %w", strings.ToLower(string(table)), err)
	}
	return csv, nil
}
