package app

import (
	"context"
	"sort"

	"math-quiz-game/internal/domain"
)

// LeaderboardRepository abstracts where finished rounds are kept (in-memory, Redis).
// Records returns entries in insertion order; entries are never edited or removed.
type LeaderboardRepository interface {
	Append(ctx context.Context, record domain.RoundRecord) error
	Records(ctx context.Context) ([]domain.RoundRecord, error)
}

// SortLeaderboard returns a copy of records ordered by score descending, then
// elapsed time ascending. Full ties keep insertion order.
func SortLeaderboard(records []domain.RoundRecord) []domain.RoundRecord {
	sorted := make([]domain.RoundRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Score != sorted[j].Score {
			return sorted[i].Score > sorted[j].Score
		}
		return sorted[i].ElapsedTime < sorted[j].ElapsedTime
	})
	return sorted
}
