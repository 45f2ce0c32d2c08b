package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"math-quiz-game/internal/domain"
)

func TestCalcScore(t *testing.T) {
	tests := []struct {
		op   domain.Operation
		diff domain.Difficulty
		want int
	}{
		{domain.Addition, domain.Easy, 2},
		{domain.Subtraction, domain.Medium, 6},
		{domain.Multiplication, domain.Hard, 12},
		{domain.Division, domain.Hard, 16},
		{domain.Division, domain.Easy, 8},
	}
	for _, tt := range tests {
		t.Run(tt.op.String()+"/"+tt.diff.String(), func(t *testing.T) {
			got, err := CalcScore(tt.op, tt.diff)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalcScoreRejectsInvalidInput(t *testing.T) {
	_, err := CalcScore(domain.Random, domain.Easy)
	assert.ErrorIs(t, err, domain.ErrInvalidOperation)

	_, err = CalcScore(domain.Addition, domain.Difficulty(7))
	assert.ErrorIs(t, err, domain.ErrInvalidDifficulty)
}

func TestConfiguredMultipliers(t *testing.T) {
	tiers := DefaultTiers()
	tiers[domain.Easy] = Tier{Magnitude: 20, Multiplier: 10}
	got, err := tiers.Score(domain.Subtraction, domain.Easy)
	require.NoError(t, err)
	assert.Equal(t, 20, got)
}

func TestTiersValidate(t *testing.T) {
	require.NoError(t, DefaultTiers().Validate())

	tiers := DefaultTiers()
	tiers[domain.Medium] = Tier{Magnitude: 1, Multiplier: 3}
	assert.ErrorIs(t, tiers.Validate(), domain.ErrDegenerateRange)

	tiers = DefaultTiers()
	delete(tiers, domain.Hard)
	assert.ErrorIs(t, tiers.Validate(), domain.ErrInvalidDifficulty)
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		op          domain.Operation
		left, right int
		want        int
		symbol      string
	}{
		{domain.Addition, 3, 4, 7, "+"},
		{domain.Subtraction, 4, 3, 1, "-"},
		{domain.Multiplication, 5, 6, 30, "*"},
		{domain.Division, 10, 2, 5, "/"},
	}
	for _, tt := range tests {
		got, err := Evaluate(tt.op, tt.left, tt.right)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.op.String())

		symbol, err := Symbol(tt.op)
		require.NoError(t, err)
		assert.Equal(t, tt.symbol, symbol)
	}
}

func TestEvaluateRejectsRandom(t *testing.T) {
	_, err := Evaluate(domain.Random, 1, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidOperation)

	_, err = Symbol(domain.Operation(99))
	assert.ErrorIs(t, err, domain.ErrInvalidOperation)

	_, err = Evaluate(domain.Division, 4, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidOperation)
}
