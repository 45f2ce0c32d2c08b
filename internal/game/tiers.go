package game

import (
	"fmt"

	"math-quiz-game/internal/domain"
)

// MinMagnitude is the smallest magnitude that still leaves a divisor in [1, magnitude).
const MinMagnitude = 2

// Tier carries the two settings keyed by a difficulty tag.
type Tier struct {
	Magnitude  int
	Multiplier int
}

// Tiers maps each difficulty to its operand magnitude and score multiplier.
type Tiers map[domain.Difficulty]Tier

// DefaultTiers returns the stock table: Easy 50/x2, Medium 100/x3, Hard 500/x4.
func DefaultTiers() Tiers {
	return Tiers{
		domain.Easy:   {Magnitude: 50, Multiplier: 2},
		domain.Medium: {Magnitude: 100, Multiplier: 3},
		domain.Hard:   {Magnitude: 500, Multiplier: 4},
	}
}

// Lookup returns the tier for d.
func (t Tiers) Lookup(d domain.Difficulty) (Tier, error) {
	if !d.Valid() {
		return Tier{}, fmt.Errorf("%w: %v", domain.ErrInvalidDifficulty, d)
	}
	tier, ok := t[d]
	if !ok {
		return Tier{}, fmt.Errorf("%w: %v not configured", domain.ErrInvalidDifficulty, d)
	}
	return tier, nil
}

// Magnitude returns the operand bound for d.
func (t Tiers) Magnitude(d domain.Difficulty) (int, error) {
	tier, err := t.Lookup(d)
	if err != nil {
		return 0, err
	}
	return tier.Magnitude, nil
}

// Multiplier returns the score multiplier for d.
func (t Tiers) Multiplier(d domain.Difficulty) (int, error) {
	tier, err := t.Lookup(d)
	if err != nil {
		return 0, err
	}
	return tier.Multiplier, nil
}

// Validate checks every tier is present with a usable magnitude and a positive multiplier.
func (t Tiers) Validate() error {
	for _, d := range domain.Difficulties {
		tier, err := t.Lookup(d)
		if err != nil {
			return err
		}
		if tier.Magnitude < MinMagnitude {
			return fmt.Errorf("%w: %v magnitude %d", domain.ErrDegenerateRange, d, tier.Magnitude)
		}
		if tier.Multiplier < 1 {
			return fmt.Errorf("%w: %v multiplier %d", domain.ErrInvalidDifficulty, d, tier.Multiplier)
		}
	}
	return nil
}
