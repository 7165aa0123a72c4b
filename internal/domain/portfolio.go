package domain

// Holding is one portfolio line. Holdings sharing a symbol are kept as
// separate units of weight.
type Holding struct {
	Symbol string  `json:"symbol"`
	Weight float64 `json:"weight"`
}

type ReferenceRow struct {
	Symbol         string              `json:"symbol"`
	Metadata       map[string]string   `json:"metadata"`
	StrategyValues map[string]RawValue `json:"strategyValues"`
}

// JoinedRow is a holding after the reconciliation join. Reference is nil
// when nothing matched.
type JoinedRow struct {
	Holding          Holding
	NormalizedSymbol string
	Matched          bool
	Reference        *ReferenceRow
}

// Value returns the strategy cell for the row, Missing when unmatched
func (r JoinedRow) Value(strategy string) RawValue {
	if !r.Matched || r.Reference == nil {
		return Missing()
	}
	v, ok := r.Reference.StrategyValues[strategy]
	if !ok {
		return Missing()
	}
	return v
}

type WeightSource string

const (
	WeightSource_Weight WeightSource = "weight"
	WeightSource_Shares WeightSource = "shares"
	WeightSource_Equal  WeightSource = "equal"
)
