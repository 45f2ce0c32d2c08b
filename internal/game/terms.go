package game

import (
	"fmt"

	"math-quiz-game/internal/domain"
)

// Source is the randomness the generator draws from. *rand.Rand satisfies it.
type Source interface {
	// Intn returns a value in [0, n). n must be positive.
	Intn(n int) int
}

// GenerateTerms draws an operand pair for op bounded by magnitude.
//
// The left operand is uniform in [0, magnitude). For division the right operand
// is uniform over the divisors of left within [1, magnitude), which is the
// distribution rejection sampling would give without the unbounded loop. Other
// operations draw right from [0, magnitude/5). Subtraction pairs are swapped
// afterwards so the result is never negative.
func GenerateTerms(rnd Source, op domain.Operation, magnitude int) (domain.TermPair, error) {
	if !op.Concrete() {
		return domain.TermPair{}, fmt.Errorf("%w: cannot generate terms for %v", domain.ErrInvalidOperation, op)
	}
	if magnitude < MinMagnitude {
		return domain.TermPair{}, fmt.Errorf("%w: magnitude %d", domain.ErrDegenerateRange, magnitude)
	}

	left := rnd.Intn(magnitude)

	var right int
	switch op {
	case domain.Division:
		divisors := divisorsBelow(left, magnitude)
		right = divisors[rnd.Intn(len(divisors))]
	default:
		// magnitudes 2..4 leave an empty range; zero is the only sensible operand there
		if bound := magnitude / 5; bound > 0 {
			right = rnd.Intn(bound)
		}
	}

	if op == domain.Subtraction && left < right {
		left, right = right, left
	}
	return domain.TermPair{Left: left, Right: right}, nil
}

// divisorsBelow lists every d in [1, limit) with n%d == 0. Zero is divisible by all of them.
// The result always contains 1 when limit >= 2.
func divisorsBelow(n, limit int) []int {
	divisors := make([]int, 0, 16)
	for d := 1; d < limit; d++ {
		if n%d == 0 {
			divisors = append(divisors, d)
		}
	}
	return divisors
}

// ResolveRandomOperation picks one of the four concrete operations uniformly.
func ResolveRandomOperation(rnd Source) domain.Operation {
	return domain.ConcreteOperations[rnd.Intn(len(domain.ConcreteOperations))]
}

// Generator binds a randomness source to a difficulty table.
type Generator struct {
	rnd   Source
	tiers Tiers
}

func NewGenerator(rnd Source, tiers Tiers) *Generator {
	return &Generator{rnd: rnd, tiers: tiers}
}

// Terms generates a pair for op at difficulty d.
func (g *Generator) Terms(op domain.Operation, d domain.Difficulty) (domain.TermPair, error) {
	magnitude, err := g.tiers.Magnitude(d)
	if err != nil {
		return domain.TermPair{}, err
	}
	return GenerateTerms(g.rnd, op, magnitude)
}

// Resolve returns mode unchanged unless it is Random, in which case a concrete
// operation is drawn.
func (g *Generator) Resolve(mode domain.Operation) domain.Operation {
	if mode == domain.Random {
		return ResolveRandomOperation(g.rnd)
	}
	return mode
}
