package game

import (
	"fmt"

	"math-quiz-game/internal/domain"
)

// Evaluate applies op to the operands. Division is exact integer division; the
// generator guarantees right divides left.
func Evaluate(op domain.Operation, left, right int) (int, error) {
	switch op {
	case domain.Addition:
		return left + right, nil
	case domain.Subtraction:
		return left - right, nil
	case domain.Multiplication:
		return left * right, nil
	case domain.Division:
		if right == 0 {
			return 0, fmt.Errorf("%w: division by zero", domain.ErrInvalidOperation)
		}
		return left / right, nil
	}
	return 0, fmt.Errorf("%w: %v", domain.ErrInvalidOperation, op)
}

// Symbol returns the operator shown in a question.
func Symbol(op domain.Operation) (string, error) {
	switch op {
	case domain.Addition:
		return "+", nil
	case domain.Subtraction:
		return "-", nil
	case domain.Multiplication:
		return "*", nil
	case domain.Division:
		return "/", nil
	}
	return "", fmt.Errorf("%w: %v", domain.ErrInvalidOperation, op)
}
