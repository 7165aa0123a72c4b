package l2_service

import (
	"strategyalign/internal/domain"
	"strings"
)

type ColumnClassifierService interface {
	// Classify splits reference columns into metadata and strategy columns,
	// keeping the original column order. alwaysMetadata is for columns the
	// caller already knows are not strategies, like the resolved symbol
	// column.
	Classify(columns []string, sample map[string][]domain.RawValue, alwaysMetadata ...string) (metadata []string, strategies []string, err error)
}

type columnClassifierServiceHandler struct {
	Denylist map[string]bool
	Policy   domain.ColumnPolicy
}

func NewColumnClassifierService(denylist []string, policy domain.ColumnPolicy) ColumnClassifierService {
	d := make(map[string]bool, len(denylist))
	for _, name := range denylist {
		d[domain.NormalizeHeader(name)] = true
	}
	return columnClassifierServiceHandler{
		Denylist: d,
		Policy:   policy,
	}
}

// values that make a non-numeric column look like a yes/no signal
var booleanLikeTokens = map[string]bool{
	"YES":   true,
	"NO":    true,
	"Y":     true,
	"N":     true,
	"TRUE":  true,
	"FALSE": true,
	"0":     true,
	"1":     true,
}

func (h columnClassifierServiceHandler) Classify(
	columns []string,
	sample map[string][]domain.RawValue,
	alwaysMetadata ...string,
) ([]string, []string, error) {
	extra := map[string]bool{}
	for _, name := range alwaysMetadata {
		extra[domain.NormalizeHeader(name)] = true
	}

	metadata := []string{}
	strategies := []string{}
	for _, c := range columns {
		header := domain.NormalizeHeader(c)
		if header == "" || h.Denylist[header] || extra[header] {
			metadata = append(metadata, c)
			continue
		}

		isStrategy := true
		if h.Policy == domain.ColumnPolicy_Inferred {
			isStrategy = looksLikeSignal(sample[c])
		}

		if isStrategy {
			strategies = append(strategies, c)
		} else {
			metadata = append(metadata, c)
		}
	}

	if len(strategies) == 0 {
		return nil, nil, domain.NoStrategyColumnsError{
			Policy:  h.Policy,
			Columns: columns,
		}
	}

	return metadata, strategies, nil
}

// a column is a signal if every present value is numeric/boolean, or if at
// least one value is a yes/no style token. A column with nothing in it
// counts as numeric. Text cells are typed the way a csv cell would be, so
// json bodies and csv uploads classify the same.
func looksLikeSignal(values []domain.RawValue) bool {
	allNumeric := true
	for _, v := range values {
		typed := cellType(v)
		if typed.IsMissing() {
			continue
		}
		if typed.Kind != domain.KindNumber && typed.Kind != domain.KindBoolean {
			allNumeric = false
		}
	}
	if allNumeric {
		return true
	}

	for _, v := range values {
		if v.IsMissing() {
			continue
		}
		if booleanLikeTokens[strings.ToUpper(strings.TrimSpace(v.String()))] {
			return true
		}
	}
	return false
}

func cellType(v domain.RawValue) domain.RawValue {
	if v.Kind == domain.KindText {
		return domain.ParseCell(v.Text)
	}
	return v
}
