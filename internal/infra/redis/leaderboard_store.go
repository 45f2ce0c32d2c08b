package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"math-quiz-game/internal/domain"
)

// LeaderboardStore keeps the session leaderboard in a Redis list.
// Notes:
//   - Records are stored as: RPUSH mathgame:session:{sessionID}:rounds {json}
//   - The session ID is minted per process, so two runs never see each other's rounds.
//   - The TTL is refreshed on every append and read, and by KeepAlive while the
//     process runs. Close deletes the key; a crashed process leaves it to expire.
type LeaderboardStore struct {
	client    *redis.Client
	sessionID string
	ttl       time.Duration
}

func NewLeaderboardStore(client *redis.Client, sessionID string, ttl time.Duration) *LeaderboardStore {
	return &LeaderboardStore{
		client:    client,
		sessionID: sessionID,
		ttl:       ttl,
	}
}

func (s *LeaderboardStore) SessionID() string {
	return s.sessionID
}

func (s *LeaderboardStore) Append(ctx context.Context, record domain.RoundRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal round: %w", err)
	}

	key := s.key()
	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, key, data)
	if s.ttl > 0 {
		pipe.Expire(ctx, key, s.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("push round: %w", err)
	}
	return nil
}

func (s *LeaderboardStore) Records(ctx context.Context) ([]domain.RoundRecord, error) {
	key := s.key()
	pipe := s.client.TxPipeline()
	rounds := pipe.LRange(ctx, key, 0, -1)
	if s.ttl > 0 {
		pipe.Expire(ctx, key, s.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("load rounds: %w", err)
	}
	raw := rounds.Val()
	records := make([]domain.RoundRecord, 0, len(raw))
	for _, item := range raw {
		var record domain.RoundRecord
		if err := json.Unmarshal([]byte(item), &record); err != nil {
			return nil, fmt.Errorf("unmarshal round: %w", err)
		}
		records = append(records, record)
	}
	return records, nil
}

// KeepAlive re-arms the TTL every interval until ctx is done. Refresh failures
// are retried on the next tick; the error from the last refresh is returned.
func (s *LeaderboardStore) KeepAlive(ctx context.Context, interval time.Duration) error {
	if s.ttl <= 0 || interval <= 0 {
		<-ctx.Done()
		return nil
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var lastErr error
	for {
		select {
		case <-ctx.Done():
			return lastErr
		case <-ticker.C:
			err := s.client.Expire(ctx, s.key(), s.ttl).Err()
			if ctx.Err() != nil {
				return lastErr
			}
			lastErr = nil
			if err != nil {
				lastErr = fmt.Errorf("refresh ttl: %w", err)
			}
		}
	}
}

// Close drops the session's rounds.
func (s *LeaderboardStore) Close(ctx context.Context) error {
	return s.client.Del(ctx, s.key()).Err()
}

func (s *LeaderboardStore) key() string {
	return "mathgame:session:" + s.sessionID + ":rounds"
}
