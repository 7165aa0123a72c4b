package l3_service

import (
	"fmt"
	"math"
	"strategyalign/internal/domain"

	"github.com/maja42/goval"
)

// ScoreInput is the per-strategy aggregate an alignment score is computed
// from. Percent fields are unrounded.
type ScoreInput struct {
	QualifyingCount   int
	QualifyingPercent float64
	WeightedScore     float64
	WeightedPercent   float64
	TotalHoldings     int
	TotalWeight       float64
}

type AlignmentScorer interface {
	Score(in ScoreInput) (float64, error)
}

func NewAlignmentScorer(cfg domain.EngineConfig) (AlignmentScorer, error) {
	switch cfg.ScoringMode {
	case domain.ScoringMode_Weighted:
		return weightedScorer{}, nil
	case domain.ScoringMode_Blended:
		return blendedScorer{
			WeightedShare: cfg.BlendWeightedShare,
			CountShare:    cfg.BlendCountShare,
		}, nil
	case domain.ScoringMode_Expression:
		s := expressionScorer{Expression: cfg.ScoringExpression}
		// dry run so a bad expression fails at startup, not mid-request
		_, err := s.Score(ScoreInput{
			QualifyingCount:   1,
			QualifyingPercent: 50,
			WeightedScore:     1,
			WeightedPercent:   50,
			TotalHoldings:     2,
			TotalWeight:       2,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidEngineConfig, err.Error())
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: unknown scoring mode '%s'", domain.ErrInvalidEngineConfig, cfg.ScoringMode)
	}
}

// pure weight alignment
type weightedScorer struct{}

func (weightedScorer) Score(in ScoreInput) (float64, error) {
	return in.WeightedPercent, nil
}

// count + weight, 0.7/0.3 by default
type blendedScorer struct {
	WeightedShare float64
	CountShare    float64
}

func (s blendedScorer) Score(in ScoreInput) (float64, error) {
	return s.WeightedShare*in.WeightedPercent + s.CountShare*in.QualifyingPercent, nil
}

type expressionScorer struct {
	Expression string
}

func (s expressionScorer) Score(in ScoreInput) (float64, error) {
	eval := goval.NewEvaluator()
	variables := map[string]interface{}{
		"qualifying_count":   in.QualifyingCount,
		"qualifying_percent": in.QualifyingPercent,
		"weighted_score":     in.WeightedScore,
		"weighted_percent":   in.WeightedPercent,
		"total_holdings":     in.TotalHoldings,
		"total_weight":       in.TotalWeight,
	}

	result, err := eval.Evaluate(s.Expression, variables, scoringFunctions)
	if err != nil {
		return 0, fmt.Errorf("failed to evaluate scoring expression: %w", err)
	}

	var r float64
	switch v := result.(type) {
	case float64:
		r = v
	case int:
		r = float64(v)
	default:
		return 0, fmt.Errorf("scoring expression returned %T, expected a number", result)
	}
	if math.IsNaN(r) {
		return 0, fmt.Errorf("calculated NaN as scoring expression result")
	} else if math.IsInf(r, 0) {
		return 0, fmt.Errorf("calculated infinity as scoring expression result")
	}

	return r, nil
}

func toFloat(arg interface{}) (float64, error) {
	switch v := arg.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("expected number, got %T", arg)
	}
}

var scoringFunctions = map[string]goval.ExpressionFunction{
	"min": func(args ...interface{}) (interface{}, error) {
		if len(args) < 1 {
			return 0, fmt.Errorf("min needs at least 1 arg, got %d", len(args))
		}
		out := math.Inf(1)
		for _, a := range args {
			f, err := toFloat(a)
			if err != nil {
				return 0, err
			}
			out = math.Min(out, f)
		}
		return out, nil
	},
	"max": func(args ...interface{}) (interface{}, error) {
		if len(args) < 1 {
			return 0, fmt.Errorf("max needs at least 1 arg, got %d", len(args))
		}
		out := math.Inf(-1)
		for _, a := range args {
			f, err := toFloat(a)
			if err != nil {
				return 0, err
			}
			out = math.Max(out, f)
		}
		return out, nil
	},
	"sqrt": func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return 0, fmt.Errorf("sqrt needs 1 arg, got %d", len(args))
		}
		f, err := toFloat(args[0])
		if err != nil {
			return 0, err
		}
		return math.Sqrt(f), nil
	},
}
