package l1_service

import (
	"math"
	"strategyalign/internal/domain"
	"strconv"
	"strings"
)

// QualificationService turns a strategy cell into a signal. 0 means "does
// not qualify". Bad data is never an error here: messy cells degrade to 0.
type QualificationService interface {
	Coerce(v domain.RawValue) float64
	Qualifies(v domain.RawValue) bool
}

type qualificationServiceHandler struct {
	NegativeSignals bool
}

func NewQualificationService(negativeSignals bool) QualificationService {
	return qualificationServiceHandler{
		NegativeSignals: negativeSignals,
	}
}

var affirmativeSignals = map[string]bool{
	"YES":  true,
	"Y":    true,
	"TRUE": true,
}

var negativeSignals = map[string]bool{
	"NO":    true,
	"N":     true,
	"FALSE": true,
}

func (h qualificationServiceHandler) Coerce(v domain.RawValue) float64 {
	return Coerce(v, h.NegativeSignals)
}

func (h qualificationServiceHandler) Qualifies(v domain.RawValue) bool {
	return h.Coerce(v) > 0
}

// Coerce applies, in order: missing -> 0, booleans -> 1/0, yes/no words,
// then a numeric parse where the number is kept as-is so graded scores
// survive. Anything left over is 0.
func Coerce(v domain.RawValue, withNegativeSignals bool) float64 {
	switch v.Kind {
	case domain.KindMissing:
		return 0
	case domain.KindBoolean:
		if v.Bool {
			return 1
		}
		return 0
	case domain.KindNumber:
		return finiteOrZero(v.Number)
	case domain.KindText:
		word := strings.ToUpper(strings.TrimSpace(v.Text))
		if affirmativeSignals[word] {
			return 1
		}
		if withNegativeSignals && negativeSignals[word] {
			return 0
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Text), 64)
		if err != nil {
			return 0
		}
		return finiteOrZero(f)
	default:
		return 0
	}
}

func finiteOrZero(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
