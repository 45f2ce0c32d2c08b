package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"math-quiz-game/internal/domain"
	"math-quiz-game/internal/game"
)

// Input supplies integers typed by the player. Malformed entries are handled by
// the implementation; an error means the input is gone for good.
type Input interface {
	ReadInteger() (int, error)
}

// Display shows one line of text to the player.
type Display interface {
	Show(text string)
}

// NameEntry asks for an optional player name.
type NameEntry interface {
	ReadName() (string, bool)
}

// Player bundles the collaborators a round needs.
type Player interface {
	Input
	Display
	NameEntry
}

// RoundObserver is notified about answers and finished rounds (metrics).
type RoundObserver interface {
	QuestionAnswered(op domain.Operation, difficulty domain.Difficulty, correct bool)
	RoundFinished(record domain.RoundRecord)
}

type noopObserver struct{}

func (noopObserver) QuestionAnswered(domain.Operation, domain.Difficulty, bool) {}
func (noopObserver) RoundFinished(domain.RoundRecord) {}

// GameService contains the game use cases.
type GameService struct {
	leaderboard LeaderboardRepository
	generator   *game.Generator
	tiers       game.Tiers
	observer    RoundObserver
	log         logrus.FieldLogger
	now         func() time.Time
}

func NewGameService(leaderboard LeaderboardRepository, generator *game.Generator, tiers game.Tiers, observer RoundObserver, log logrus.FieldLogger) *GameService {
	if observer == nil {
		observer = noopObserver{}
	}
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}
	return &GameService{
		leaderboard: leaderboard,
		generator:   generator,
		tiers:       tiers,
		observer:    observer,
		log:         log,
		now:         time.Now,
	}
}

// WithClock is test-only for deterministic elapsed times.
func (s *GameService) WithClock(now func() time.Time) *GameService {
	s.now = now
	return s
}

// PlayRound runs one round to completion and appends its record to the leaderboard.
// A cancelled ctx aborts the round between questions without recording it.
func (s *GameService) PlayRound(ctx context.Context, mode domain.Operation, difficulty domain.Difficulty, player Player) (domain.RoundRecord, error) {
	round, err := NewRoundWithClock(mode, difficulty, s.generator, s.tiers, s.now)
	if err != nil {
		return domain.RoundRecord{}, err
	}
	log := s.log.WithFields(logrus.Fields{"mode": round.Mode().String(), "difficulty": round.Difficulty().String()})
	log.Debug("round started")

	for round.State() != Finished {
		if err := ctx.Err(); err != nil {
			log.WithError(err).Info("round aborted")
			return domain.RoundRecord{}, err
		}

		question, err := round.Next()
		if err != nil {
			return domain.RoundRecord{}, err
		}
		player.Show(question.Prompt())

		value, err := player.ReadInteger()
		if err != nil {
			return domain.RoundRecord{}, fmt.Errorf("read answer: %w", err)
		}

		result, err := round.Answer(value)
		if err != nil {
			return domain.RoundRecord{}, err
		}
		s.observer.QuestionAnswered(question.Operation, round.Difficulty(), result.Correct)
		if !result.Correct {
			player.Show(fmt.Sprintf("The right answer was %d", result.Expected))
		}
	}

	score, elapsed := round.Summary()
	player.Show(fmt.Sprintf("Game finished after %.2f seconds! Score: %d", elapsed.Seconds(), score))

	player.Show("Insert player name")
	name, _ := player.ReadName()
	record, err := round.Record(name)
	if err != nil {
		return domain.RoundRecord{}, err
	}

	if err := s.leaderboard.Append(ctx, record); err != nil {
		return record, fmt.Errorf("append to leaderboard: %w", err)
	}
	s.observer.RoundFinished(record)
	log.WithFields(logrus.Fields{
		"score":    record.Score,
		"elapsed":  record.ElapsedTime.String(),
		"answered": round.Answered(),
	}).Info("round finished")
	return record, nil
}

// Leaderboard returns every finished round, best first.
func (s *GameService) Leaderboard(ctx context.Context) ([]domain.RoundRecord, error) {
	records, err := s.leaderboard.Records(ctx)
	if err != nil {
		return nil, fmt.Errorf("load leaderboard: %w", err)
	}
	return SortLeaderboard(records), nil
}
