package domain

import "errors"

var (
	// ErrInvalidOperation is returned when Random or an unknown value reaches evaluation or scoring.
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrInvalidDifficulty is returned for a difficulty outside the three tiers.
	ErrInvalidDifficulty = errors.New("invalid difficulty")
	// ErrDegenerateRange indicates a magnitude too small to draw operands from.
	ErrDegenerateRange = errors.New("degenerate operand range")
	// ErrRoundState is returned when a round operation is called in the wrong state.
	ErrRoundState = errors.New("round is not in the required state")
)
