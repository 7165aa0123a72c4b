package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingColumn            = errors.New("missing required column")
	ErrNoStrategyColumns        = errors.New("no strategy columns found")
	ErrEmptyPortfolio           = errors.New("portfolio has no holdings")
	ErrDuplicateReferenceSymbol = errors.New("duplicate reference symbol")
	ErrInvalidEngineConfig      = errors.New("invalid engine config")
)

// MissingColumnError is returned when a table has none of the accepted
// names for a required column
type MissingColumnError struct {
	Table    string
	Wanted   []string
	Detected []string
}

func (e MissingColumnError) Error() string {
	return fmt.Sprintf(
		"%s table is missing a %s column; detected columns: [%s]",
		e.Table,
		strings.Join(e.Wanted, "/"),
		strings.Join(e.Detected, ", "),
	)
}

func (e MissingColumnError) Is(target error) bool {
	return target == ErrMissingColumn
}

type NoStrategyColumnsError struct {
	Policy  ColumnPolicy
	Columns []string
}

func (e NoStrategyColumnsError) Error() string {
	return fmt.Sprintf(
		"no strategy columns found using %s policy; columns: [%s]",
		e.Policy,
		strings.Join(e.Columns, ", "),
	)
}

func (e NoStrategyColumnsError) Is(target error) bool {
	return target == ErrNoStrategyColumns
}

type EmptyPortfolioError struct{}

func (e EmptyPortfolioError) Error() string {
	return "cannot compute alignment: portfolio has no holdings"
}

func (e EmptyPortfolioError) Is(target error) bool {
	return target == ErrEmptyPortfolio
}

type DuplicateReferenceSymbolError struct {
	Symbols []string
}

func (e DuplicateReferenceSymbolError) Error() string {
	return fmt.Sprintf("reference matrix has duplicate symbols: [%s]", strings.Join(e.Symbols, ", "))
}

func (e DuplicateReferenceSymbolError) Is(target error) bool {
	return target == ErrDuplicateReferenceSymbol
}

// IsInputError reports whether err was caused by the caller's tables or
// config rather than by the system
func IsInputError(err error) bool {
	return errors.Is(err, ErrMissingColumn) ||
		errors.Is(err, ErrNoStrategyColumns) ||
		errors.Is(err, ErrEmptyPortfolio) ||
		errors.Is(err, ErrDuplicateReferenceSymbol) ||
		errors.Is(err, ErrInvalidEngineConfig)
}
