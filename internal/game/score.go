package game

import (
	"fmt"

	"math-quiz-game/internal/domain"
)

var defaultTiers = DefaultTiers()

// CalcScore returns the points for one correct answer using the default tiers.
func CalcScore(op domain.Operation, d domain.Difficulty) (int, error) {
	return defaultTiers.Score(op, d)
}

// Score returns (ordinal(op)+1) * multiplier(d).
func (t Tiers) Score(op domain.Operation, d domain.Difficulty) (int, error) {
	if !op.Concrete() {
		return 0, fmt.Errorf("%w: cannot score %v", domain.ErrInvalidOperation, op)
	}
	multiplier, err := t.Multiplier(d)
	if err != nil {
		return 0, err
	}
	return (int(op) + 1) * multiplier, nil
}
