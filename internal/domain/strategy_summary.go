package domain

import "github.com/google/uuid"

type Badge string

const (
	Badge_Gold   Badge = "Gold"
	Badge_Silver Badge = "Silver"
	Badge_Bronze Badge = "Bronze"
	Badge_None   Badge = "None"
)

func BadgeForRank(rank int) Badge {
	switch rank {
	case 1:
		return Badge_Gold
	case 2:
		return Badge_Silver
	case 3:
		return Badge_Bronze
	default:
		return Badge_None
	}
}

// StrategySummary is the aggregate for a single strategy column across the
// whole portfolio
type StrategySummary struct {
	Strategy          string  `json:"strategy"`
	QualifyingCount   int     `json:"qualifyingCount"`
	QualifyingPercent float64 `json:"qualifyingPercent"`
	WeightedScore     float64 `json:"weightedScore"`
	WeightedPercent   float64 `json:"weightedPercent"`
	AlignmentScore    float64 `json:"alignmentScore"`
	Rank              int     `json:"rank"`
	Badge             Badge   `json:"badge"`
}

type OverlapBucket struct {
	StrategiesQualified int `json:"strategiesQualified"`
	HoldingCount        int `json:"holdingCount"`
}

// OverlapDistribution is ordered by StrategiesQualified ascending and has no
// gaps between 0 and the number of strategies
type OverlapDistribution []OverlapBucket

func (d OverlapDistribution) Total() int {
	total := 0
	for _, b := range d {
		total += b.HoldingCount
	}
	return total
}

// AsMap is handy for tests and for chart-style consumers
func (d OverlapDistribution) AsMap() map[int]int {
	out := make(map[int]int, len(d))
	for _, b := range d {
		out[b.StrategiesQualified] = b.HoldingCount
	}
	return out
}

type HoldingOverlap struct {
	Symbol              string   `json:"symbol"`
	Weight              float64  `json:"weight"`
	Matched             bool     `json:"matched"`
	StrategiesQualified int      `json:"strategiesQualified"`
	Strategies          []string `json:"strategies"`
}

// Insight is the plain-language read of a result
type Insight struct {
	DominantStrategy   string  `json:"dominantStrategy"`
	DominantPercent    float64 `json:"dominantPercent"`
	TopTwoPercent      float64 `json:"topTwoPercent"`
	AverageOverlap     float64 `json:"averageOverlap"`
	Concentration      string  `json:"concentration"`
	OverlapDescription string  `json:"overlapDescription"`
	Summary            string  `json:"summary"`
}

type AlignmentResult struct {
	RunID           uuid.UUID           `json:"runID"`
	Summaries       []StrategySummary   `json:"summaries"`
	Dominant        StrategySummary     `json:"dominant"`
	Overlap         OverlapDistribution `json:"overlap"`
	AverageOverlap  float64             `json:"averageOverlap"`
	HoldingOverlaps []HoldingOverlap    `json:"holdingOverlaps"`
	Unmatched       []Holding           `json:"unmatched"`
	WeightSource    WeightSource        `json:"weightSource"`
	TotalHoldings   int                 `json:"totalHoldings"`
	TotalWeight     float64             `json:"totalWeight"`
	StrategyColumns []string            `json:"strategyColumns"`
	MetadataColumns []string            `json:"metadataColumns"`
	Insight         *Insight            `json:"insight,omitempty"`
}
