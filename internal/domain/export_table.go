package domain

import "fmt"

type ExportTable string

const (
	ExportTable_Summary   ExportTable = "SUMMARY"
	ExportTable_Overlap   ExportTable = "OVERLAP"
	ExportTable_Unmatched ExportTable = "UNMATCHED"
)

func NewExportTable(s string) (*ExportTable, error) {
	t, ok := matchEnum(s, ExportTable_Summary, ExportTable_Overlap, ExportTable_Unmatched)
	if !ok {
		return nil, fmt.Errorf("could not convert '%s' to known export table", s)
	}
	return &t, nil
}
