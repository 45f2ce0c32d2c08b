package app_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"math-quiz-game/internal/app"
	"math-quiz-game/internal/domain"
	"math-quiz-game/internal/game"
	"math-quiz-game/internal/infra/memory"
)

type fakePlayer struct {
	answers []int
	name    string
	hasName bool
	shown   []string
	onRead  func()
}

func (p *fakePlayer) ReadInteger() (int, error) {
	if p.onRead != nil {
		p.onRead()
	}
	if len(p.answers) == 0 {
		return 0, io.EOF
	}
	v := p.answers[0]
	p.answers = p.answers[1:]
	return v, nil
}

func (p *fakePlayer) Show(text string) { p.shown = append(p.shown, text) }

func (p *fakePlayer) ReadName() (string, bool) { return p.name, p.hasName }

type recordingObserver struct {
	answered []bool
	finished []domain.RoundRecord
}

func (o *recordingObserver) QuestionAnswered(_ domain.Operation, _ domain.Difficulty, correct bool) {
	o.answered = append(o.answered, correct)
}

func (o *recordingObserver) RoundFinished(record domain.RoundRecord) {
	o.finished = append(o.finished, record)
}

func newTestService(observer app.RoundObserver, values ...int) (*app.GameService, *memory.LeaderboardStore) {
	store := memory.NewLeaderboardStore()
	tiers := game.DefaultTiers()
	gen := game.NewGenerator(&scriptedSource{values: values}, tiers)
	service := app.NewGameService(store, gen, tiers, observer, nil).WithClock(steppingClock(1500 * time.Millisecond))
	return service, store
}

func TestPlayRoundRecordsExactlyOneContribution(t *testing.T) {
	ctx := context.Background()
	observer := &recordingObserver{}
	service, store := newTestService(observer, 3, 4, 10, 2)
	player := &fakePlayer{answers: []int{7, 0}, name: "Alice", hasName: true}

	record, err := service.PlayRound(ctx, domain.Addition, domain.Easy, player)
	require.NoError(t, err)

	want, err := game.CalcScore(domain.Addition, domain.Easy)
	require.NoError(t, err)
	assert.Equal(t, want, record.Score)
	assert.Equal(t, "Alice", record.PlayerName)
	assert.Equal(t, 1500*time.Millisecond, record.ElapsedTime)
	assert.Equal(t, 1, store.Len())

	assert.Equal(t, []string{
		"How much is 3+4?",
		"How much is 10+2?",
		"The right answer was 12",
		"Game finished after 1.50 seconds! Score: 2",
		"Insert player name",
	}, player.shown)

	assert.Equal(t, []bool{true, false}, observer.answered)
	require.Len(t, observer.finished, 1)
	assert.Equal(t, record.ID, observer.finished[0].ID)
}

func TestPlayRoundDefaultsMissingName(t *testing.T) {
	service, _ := newTestService(nil, 1, 1)
	player := &fakePlayer{answers: []int{5}}

	record, err := service.PlayRound(context.Background(), domain.Addition, domain.Easy, player)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPlayerName, record.PlayerName)
}

func TestPlayRoundStopsWhenInputEnds(t *testing.T) {
	service, store := newTestService(nil, 1, 1)
	player := &fakePlayer{}

	_, err := service.PlayRound(context.Background(), domain.Addition, domain.Easy, player)
	assert.ErrorIs(t, err, io.EOF)
	assert.Zero(t, store.Len())
}

func TestPlayRoundAbortsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	service, store := newTestService(nil, 1, 1, 1, 1)
	player := &fakePlayer{answers: []int{2, 2}, onRead: cancel}

	_, err := service.PlayRound(ctx, domain.Addition, domain.Easy, player)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Zero(t, store.Len())
}

func TestPlayRoundRejectsUnknownDifficulty(t *testing.T) {
	service, _ := newTestService(nil)
	_, err := service.PlayRound(context.Background(), domain.Addition, domain.Difficulty(9), &fakePlayer{})
	assert.ErrorIs(t, err, domain.ErrInvalidDifficulty)
}

func TestLeaderboardIsSortedAfterRounds(t *testing.T) {
	ctx := context.Background()
	// round 1: 1+1 right then 0+0 wrong; round 2: wrong immediately
	service, _ := newTestService(nil, 1, 1, 0, 0, 4, 4)

	first, err := service.PlayRound(ctx, domain.Addition, domain.Easy, &fakePlayer{answers: []int{2, 9}, name: "A", hasName: true})
	require.NoError(t, err)
	second, err := service.PlayRound(ctx, domain.Addition, domain.Easy, &fakePlayer{answers: []int{0}, name: "B", hasName: true})
	require.NoError(t, err)

	board, err := service.Leaderboard(ctx)
	require.NoError(t, err)
	require.Len(t, board, 2)
	assert.Equal(t, first.ID, board[0].ID)
	assert.Equal(t, second.ID, board[1].ID)
}
