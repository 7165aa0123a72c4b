package l3_service

import (
	"strategyalign/internal/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func summariesWithScores(names []string, scores []float64) []domain.StrategySummary {
	out := []domain.StrategySummary{}
	for i, n := range names {
		out = append(out, domain.StrategySummary{Strategy: n, AlignmentScore: scores[i]})
	}
	return out
}

func ranksAndBadges(ranked []domain.StrategySummary) (map[string]int, map[string]domain.Badge) {
	ranks := map[string]int{}
	badges := map[string]domain.Badge{}
	for _, s := range ranked {
		ranks[s.Strategy] = s.Rank
		badges[s.Strategy] = s.Badge
	}
	return ranks, badges
}

func TestRankSummaries(t *testing.T) {
	t.Run("tie for first uses competition ranking", func(t *testing.T) {
		ranked := RankSummaries(summariesWithScores(
			[]string{"A", "B", "C"},
			[]float64{50, 50, 30},
		))
		ranks, badges := ranksAndBadges(ranked)
		require.Equal(t, map[string]int{"A": 1, "B": 1, "C": 3}, ranks)
		require.Equal(t, map[string]domain.Badge{
			"A": domain.Badge_Gold,
			"B": domain.Badge_Gold,
			"C": domain.Badge_None,
		}, badges)

		dominant, ok := Dominant(ranked)
		require.True(t, ok)
		require.Equal(t, "A", dominant.Strategy)
	})

	t.Run("distinct scores get all three badges", func(t *testing.T) {
		ranked := RankSummaries(summariesWithScores(
			[]string{"A", "B", "C", "D"},
			[]float64{10, 40, 30, 20},
		))
		require.Equal(t, []string{"B", "C", "D", "A"}, []string{
			ranked[0].Strategy, ranked[1].Strategy, ranked[2].Strategy, ranked[3].Strategy,
		})
		ranks, badges := ranksAndBadges(ranked)
		require.Equal(t, map[string]int{"B": 1, "C": 2, "D": 3, "A": 4}, ranks)
		require.Equal(t, map[string]domain.Badge{
			"B": domain.Badge_Gold,
			"C": domain.Badge_Silver,
			"D": domain.Badge_Bronze,
			"A": domain.Badge_None,
		}, badges)
	})

	t.Run("tie for second shares silver", func(t *testing.T) {
		ranked := RankSummaries(summariesWithScores(
			[]string{"A", "B", "C", "D"},
			[]float64{90, 40, 40, 10},
		))
		ranks, badges := ranksAndBadges(ranked)
		require.Equal(t, map[string]int{"A": 1, "B": 2, "C": 2, "D": 4}, ranks)
		require.Equal(t, domain.Badge_Silver, badges["B"])
		require.Equal(t, domain.Badge_Silver, badges["C"])
		require.Equal(t, domain.Badge_None, badges["D"])
	})

	t.Run("tie for first picks first column as dominant", func(t *testing.T) {
		ranked := RankSummaries(summariesWithScores(
			[]string{"Z", "A"},
			[]float64{5, 5},
		))
		dominant, ok := Dominant(ranked)
		require.True(t, ok)
		require.Equal(t, "Z", dominant.Strategy)
		require.Equal(t, 1, ranked[1].Rank)
	})

	t.Run("does not modify input", func(t *testing.T) {
		in := summariesWithScores([]string{"A", "B"}, []float64{1, 2})
		RankSummaries(in)
		require.Equal(t, "A", in[0].Strategy)
		require.Equal(t, 0, in[0].Rank)
	})

	t.Run("empty", func(t *testing.T) {
		_, ok := Dominant(RankSummaries(nil))
		require.False(t, ok)
	})
}
