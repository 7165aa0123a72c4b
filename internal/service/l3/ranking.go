package l3_service

import (
	"sort"
	"strategyalign/internal/domain"
)

// RankSummaries orders summaries by alignment score, highest first, and
// assigns competition ranks: ties share the lowest rank and the next
// distinct score skips ahead (50, 50, 30 -> 1, 1, 3). Ties keep their
// input order, so the first strategy column wins a tie for dominant.
//
// Badges follow the rank but never skip a tier: a tie for Gold leaves no
// rank 2, so nobody gets Silver and the rank-3 entry gets no Bronze.
func RankSummaries(summaries []domain.StrategySummary) []domain.StrategySummary {
	ranked := make([]domain.StrategySummary, len(summaries))
	copy(ranked, summaries)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AlignmentScore > ranked[j].AlignmentScore
	})

	seenRanks := map[int]bool{}
	for i := range ranked {
		if i > 0 && ranked[i].AlignmentScore == ranked[i-1].AlignmentScore {
			ranked[i].Rank = ranked[i-1].Rank
		} else {
			ranked[i].Rank = i + 1
		}
		seenRanks[ranked[i].Rank] = true

		ranked[i].Badge = domain.Badge_None
		if ranked[i].Rank <= 3 && tiersAbovePresent(seenRanks, ranked[i].Rank) {
			ranked[i].Badge = domain.BadgeForRank(ranked[i].Rank)
		}
	}

	return ranked
}

func tiersAbovePresent(seenRanks map[int]bool, rank int) bool {
	for r := 1; r < rank; r++ {
		if !seenRanks[r] {
			return false
		}
	}
	return true
}

// Dominant is the first rank-1 entry of a ranked slice
func Dominant(ranked []domain.StrategySummary) (domain.StrategySummary, bool) {
	if len(ranked) == 0 {
		return domain.StrategySummary{}, false
	}
	return ranked[0], true
}
