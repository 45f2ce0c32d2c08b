package memory

import (
	"context"
	"sync"

	"math-quiz-game/internal/domain"
)

// LeaderboardStore is an in-memory implementation of app.LeaderboardRepository.
// It lives exactly as long as the process.
type LeaderboardStore struct {
	mu      sync.RWMutex
	records []domain.RoundRecord
}

func NewLeaderboardStore() *LeaderboardStore {
	return &LeaderboardStore{}
}

func (s *LeaderboardStore) Append(_ context.Context, record domain.RoundRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record)
	return nil
}

// Records returns a copy so callers cannot reorder the stored sequence.
func (s *LeaderboardStore) Records(_ context.Context) ([]domain.RoundRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.RoundRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *LeaderboardStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Close is a no-op; it lets the CLI treat every backend the same way.
func (s *LeaderboardStore) Close(context.Context) error {
	return nil
}
