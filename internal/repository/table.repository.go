package repository

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strategyalign/internal/domain"
	"strings"

	"github.com/gocarina/gocsv"
)

// TableRepository loads CSV files into raw tables. Cell typing happens
// here so the engine never sees unparsed strings.
type TableRepository interface {
	Read(r io.Reader) (*domain.Table, error)
	ReadFile(path string) (*domain.Table, error)
}

type tableRepositoryHandler struct{}

func NewTableRepository() TableRepository {
	return tableRepositoryHandler{}
}

func (h tableRepositoryHandler) ReadFile(path string) (*domain.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	table, err := h.Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return table, nil
}

func (h tableRepositoryHandler) Read(r io.Reader) (*domain.Table, error) {
	reader := gocsv.LazyCSVReader(r)
	if csvReader, ok := reader.(*csv.Reader); ok {
		// ragged rows are padded with Missing instead of rejected
		csvReader.FieldsPerRecord = -1
	}

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return &domain.Table{Columns: []string{}, Rows: [][]domain.RawValue{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	columns := make([]string, len(header))
	for i, c := range header {
		columns[i] = strings.TrimSpace(c)
	}
	if len(columns) > 0 {
		columns[0] = strings.TrimPrefix(columns[0], "\ufeff")
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv rows: %w", err)
	}

	rows := make([][]domain.RawValue, 0, len(records))
	for _, record := range records {
		if isBlankRecord(record) {
			continue
		}
		if len(record) > len(columns) {
			record = record[:len(columns)]
		}
		row := make([]domain.RawValue, len(record))
		for i, cell := range record {
			row[i] = domain.ParseCell(cell)
		}
		rows = append(rows, row)
	}

	return &domain.Table{
		Columns: columns,
		Rows:    rows,
	}, nil
}

func isBlankRecord(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
