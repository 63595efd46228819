package ranking

import (
	"sort"

	"github.com/jonathan/candidate-scorer/internal/types"
)

// Rank returns copies of results ordered by total score, highest first, with 1-based
// ranks assigned by position. Equal scores keep their input order. Nil entries are skipped
// and the input slice is not modified.
func Rank(results []*types.ScoreResult) []*types.ScoreResult {
	ranked := make([]*types.ScoreResult, 0, len(results))
	for _, result := range results {
		if result != nil {
			ranked = append(ranked, result.Clone())
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalScore > ranked[j].TotalScore
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

// Top returns at most n of the ranked results; n <= 0 returns them all.
func Top(ranked []*types.ScoreResult, n int) []*types.ScoreResult {
	if n <= 0 || n >= len(ranked) {
		return ranked
	}
	return ranked[:n]
}
