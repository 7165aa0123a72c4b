package domain

import (
	"fmt"
	"strings"
)

type SymbolProfile string

const (
	// trim + uppercase only
	SymbolProfile_Plain SymbolProfile = "PLAIN"
	// drop an EXCHANGE: prefix
	SymbolProfile_ColonPrefix SymbolProfile = "COLON_PREFIX"
	// drop known exchange suffixes like .TO
	SymbolProfile_Suffix SymbolProfile = "SUFFIX"
	// prefix then suffix
	SymbolProfile_Full SymbolProfile = "FULL"
)

type ColumnPolicy string

const (
	// every non-metadata column is a strategy
	ColumnPolicy_Permissive ColumnPolicy = "PERMISSIVE"
	// numeric or boolean-looking columns only
	ColumnPolicy_Inferred ColumnPolicy = "INFERRED"
)

type ScoringMode string

const (
	ScoringMode_Weighted   ScoringMode = "WEIGHTED"
	ScoringMode_Blended    ScoringMode = "BLENDED"
	ScoringMode_Expression ScoringMode = "EXPRESSION"
)

// matches ignoring case and underscores, so "colonPrefix" and
// "colon_prefix" both resolve
func matchEnum[T ~string](s string, options ...T) (T, bool) {
	for _, o := range options {
		if strings.EqualFold(
			strings.ReplaceAll(string(o), "_", ""),
			strings.ReplaceAll(strings.TrimSpace(s), "_", ""),
		) {
			return o, true
		}
	}
	var zero T
	return zero, false
}

func NewSymbolProfile(s string) (*SymbolProfile, error) {
	p, ok := matchEnum(s, SymbolProfile_Plain, SymbolProfile_ColonPrefix, SymbolProfile_Suffix, SymbolProfile_Full)
	if !ok {
		return nil, fmt.Errorf("could not convert '%s' to known symbol profile", s)
	}
	return &p, nil
}

func NewColumnPolicy(s string) (*ColumnPolicy, error) {
	p, ok := matchEnum(s, ColumnPolicy_Permissive, ColumnPolicy_Inferred)
	if !ok {
		return nil, fmt.Errorf("could not convert '%s' to known column policy", s)
	}
	return &p, nil
}

func NewScoringMode(s string) (*ScoringMode, error) {
	m, ok := matchEnum(s, ScoringMode_Weighted, ScoringMode_Blended, ScoringMode_Expression)
	if !ok {
		return nil, fmt.Errorf("could not convert '%s' to known scoring mode", s)
	}
	return &m, nil
}

// EngineConfig is everything that changes how a reconciliation is scored.
// It is passed in explicitly; nothing reads package-level settings.
type EngineConfig struct {
	PortfolioSymbolProfile SymbolProfile `yaml:"portfolio_symbol_profile" json:"portfolioSymbolProfile"`
	ReferenceSymbolProfile SymbolProfile `yaml:"reference_symbol_profile" json:"referenceSymbolProfile"`
	ExchangeSuffixes       []string      `yaml:"exchange_suffixes" json:"exchangeSuffixes"`

	PortfolioSymbolColumns []string `yaml:"portfolio_symbol_columns" json:"portfolioSymbolColumns"`
	ReferenceSymbolColumns []string `yaml:"reference_symbol_columns" json:"referenceSymbolColumns"`
	WeightColumns          []string `yaml:"weight_columns" json:"weightColumns"`
	ShareColumns           []string `yaml:"share_columns" json:"shareColumns"`

	MetadataDenylist []string     `yaml:"metadata_denylist" json:"metadataDenylist"`
	ColumnPolicy     ColumnPolicy `yaml:"column_policy" json:"columnPolicy"`

	// when false only the affirmative words are recognised and everything
	// else falls through to numeric parsing
	NegativeSignals bool `yaml:"negative_signals" json:"negativeSignals"`

	ScoringMode        ScoringMode `yaml:"scoring_mode" json:"scoringMode"`
	BlendWeightedShare float64     `yaml:"blend_weighted_share" json:"blendWeightedShare"`
	BlendCountShare    float64     `yaml:"blend_count_share" json:"blendCountShare"`
	ScoringExpression  string      `yaml:"scoring_expression" json:"scoringExpression"`

	// StrictJoin rejects reference matrices with duplicate symbols instead
	// of fanning the join out
	StrictJoin bool `yaml:"strict_join" json:"strictJoin"`
}

func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		PortfolioSymbolProfile: SymbolProfile_ColonPrefix,
		ReferenceSymbolProfile: SymbolProfile_ColonPrefix,
		ExchangeSuffixes:       []string{".TO", ".V", ".NE", ".CN", ".US", ".O", ".N", ".L", ".AX"},
		PortfolioSymbolColumns: []string{"SYMBOL", "TICKER"},
		ReferenceSymbolColumns: []string{"SYMBOL", "TICKER"},
		WeightColumns:          []string{"WEIGHT", "WEIGHT (%)", "WEIGHT%", "PORTFOLIO WEIGHT", "ALLOCATION"},
		ShareColumns:           []string{"SHARES", "QUANTITY", "UNITS", "SHARE COUNT"},
		MetadataDenylist:       []string{"SYMBOL", "TICKER", "EXCHANGE", "NAME", "COMPANY", "COMPANY NAME", "SECTOR", "RANK"},
		ColumnPolicy:           ColumnPolicy_Inferred,
		NegativeSignals:        true,
		ScoringMode:            ScoringMode_Blended,
		BlendWeightedShare:     0.7,
		BlendCountShare:        0.3,
	}
}

// Validate canonicalises the enum fields in place and rejects anything it
// does not recognise
func (c *EngineConfig) Validate() error {
	prefix := "engine config"

	for _, p := range []*SymbolProfile{&c.PortfolioSymbolProfile, &c.ReferenceSymbolProfile} {
		parsed, err := NewSymbolProfile(string(*p))
		if err != nil {
			return fmt.Errorf("%s: %w: %s", prefix, ErrInvalidEngineConfig, err.Error())
		}
		*p = *parsed
	}

	policy, err := NewColumnPolicy(string(c.ColumnPolicy))
	if err != nil {
		return fmt.Errorf("%s: %w: %s", prefix, ErrInvalidEngineConfig, err.Error())
	}
	c.ColumnPolicy = *policy

	mode, err := NewScoringMode(string(c.ScoringMode))
	if err != nil {
		return fmt.Errorf("%s: %w: %s", prefix, ErrInvalidEngineConfig, err.Error())
	}
	c.ScoringMode = *mode

	switch c.ScoringMode {
	case ScoringMode_Blended:
		if c.BlendWeightedShare < 0 || c.BlendCountShare < 0 {
			return fmt.Errorf("%s: %w: blend shares must be >= 0, got %f and %f", prefix, ErrInvalidEngineConfig, c.BlendWeightedShare, c.BlendCountShare)
		}
	case ScoringMode_Expression:
		if strings.TrimSpace(c.ScoringExpression) == "" {
			return fmt.Errorf("%s: %w: scoring mode is %s and expression is empty", prefix, ErrInvalidEngineConfig, c.ScoringMode)
		}
	}

	if len(c.PortfolioSymbolColumns) == 0 || len(c.ReferenceSymbolColumns) == 0 {
		return fmt.Errorf("%s: %w: symbol column aliases cannot be empty", prefix, ErrInvalidEngineConfig)
	}

	return nil
}
