package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"math-quiz-game/internal/domain"
	"math-quiz-game/internal/game"
)

// RoundState is the position of a round in its question/answer cycle.
type RoundState int

const (
	AwaitingQuestion RoundState = iota
	AwaitingAnswer
	Finished
)

func (s RoundState) String() string {
	switch s {
	case AwaitingQuestion:
		return "awaiting-question"
	case AwaitingAnswer:
		return "awaiting-answer"
	case Finished:
		return "finished"
	}
	return fmt.Sprintf("RoundState(%d)", int(s))
}

// Round is one played game: questions keep coming until the first wrong answer.
type Round struct {
	mode       domain.Operation
	difficulty domain.Difficulty
	generator  *game.Generator
	tiers      game.Tiers
	now        func() time.Time

	state      RoundState
	startedAt  time.Time
	finishedAt time.Time
	current    domain.Question
	score      int
	answered   int
}

// NewRound starts a round; the elapsed-time clock starts immediately.
func NewRound(mode domain.Operation, difficulty domain.Difficulty, generator *game.Generator, tiers game.Tiers) (*Round, error) {
	return NewRoundWithClock(mode, difficulty, generator, tiers, time.Now)
}

// NewRoundWithClock allows deterministic timings in tests.
func NewRoundWithClock(mode domain.Operation, difficulty domain.Difficulty, generator *game.Generator, tiers game.Tiers, now func() time.Time) (*Round, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidOperation, mode)
	}
	if _, err := tiers.Lookup(difficulty); err != nil {
		return nil, err
	}
	return &Round{
		mode:       mode,
		difficulty: difficulty,
		generator:  generator,
		tiers:      tiers,
		now:        now,
		state:      AwaitingQuestion,
		startedAt:  now(),
	}, nil
}

func (r *Round) State() RoundState { return r.state }

func (r *Round) Mode() domain.Operation { return r.mode }

func (r *Round) Difficulty() domain.Difficulty { return r.difficulty }

// Answered returns how many questions were answered correctly.
func (r *Round) Answered() int { return r.answered }

// Next produces the next question. Random mode resolves a fresh operation per question.
func (r *Round) Next() (domain.Question, error) {
	if r.state != AwaitingQuestion {
		return domain.Question{}, fmt.Errorf("%w: next question while %v", domain.ErrRoundState, r.state)
	}

	op := r.generator.Resolve(r.mode)
	terms, err := r.generator.Terms(op, r.difficulty)
	if err != nil {
		return domain.Question{}, fmt.Errorf("generate terms: %w", err)
	}
	symbol, err := game.Symbol(op)
	if err != nil {
		return domain.Question{}, err
	}

	r.current = domain.Question{Operation: op, Terms: terms, Symbol: symbol}
	r.state = AwaitingAnswer
	return r.current, nil
}

// Answer checks value against the current question. A wrong answer finishes the round.
func (r *Round) Answer(value int) (domain.AnswerResult, error) {
	if r.state != AwaitingAnswer {
		return domain.AnswerResult{}, fmt.Errorf("%w: answer while %v", domain.ErrRoundState, r.state)
	}

	q := r.current
	expected, err := game.Evaluate(q.Operation, q.Terms.Left, q.Terms.Right)
	if err != nil {
		return domain.AnswerResult{}, err
	}

	if value != expected {
		r.finishedAt = r.now()
		r.state = Finished
		return domain.AnswerResult{Correct: false, Expected: expected, TotalScore: r.score}, nil
	}

	points, err := r.tiers.Score(q.Operation, r.difficulty)
	if err != nil {
		return domain.AnswerResult{}, err
	}
	r.score += points
	r.answered++
	r.state = AwaitingQuestion
	return domain.AnswerResult{Correct: true, Expected: expected, Awarded: points, TotalScore: r.score}, nil
}

// Summary returns the score so far and the elapsed time, frozen once the round is finished.
func (r *Round) Summary() (int, time.Duration) {
	end := r.finishedAt
	if r.state != Finished {
		end = r.now()
	}
	return r.score, end.Sub(r.startedAt)
}

// Record builds the leaderboard entry for a finished round. A blank name is
// recorded as domain.DefaultPlayerName.
func (r *Round) Record(playerName string) (domain.RoundRecord, error) {
	if r.state != Finished {
		return domain.RoundRecord{}, fmt.Errorf("%w: record while %v", domain.ErrRoundState, r.state)
	}
	name := strings.TrimSpace(playerName)
	if name == "" {
		name = domain.DefaultPlayerName
	}
	score, elapsed := r.Summary()
	return domain.RoundRecord{
		ID:          uuid.NewString(),
		Score:       score,
		Difficulty:  r.difficulty,
		Mode:        r.mode,
		PlayerName:  name,
		ElapsedTime: elapsed,
		FinishedAt:  r.finishedAt,
	}, nil
}
