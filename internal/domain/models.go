package domain

import (
	"fmt"
	"strings"
	"time"
)

// Operation selects the arithmetic applied to a question.
type Operation int

const (
	Addition Operation = iota
	Subtraction
	Multiplication
	Division
	// Random is a round mode only; each question resolves it to one of the others.
	Random
)

// ConcreteOperations lists the operations a question can actually use, in ordinal order.
var ConcreteOperations = [...]Operation{Addition, Subtraction, Multiplication, Division}

func (o Operation) String() string {
	switch o {
	case Addition:
		return "Addition"
	case Subtraction:
		return "Subtraction"
	case Multiplication:
		return "Multiplication"
	case Division:
		return "Division"
	case Random:
		return "Random"
	}
	return fmt.Sprintf("Operation(%d)", int(o))
}

// Concrete reports whether o can be evaluated.
func (o Operation) Concrete() bool {
	return o >= Addition && o <= Division
}

// Valid reports whether o is a known round mode (concrete or Random).
func (o Operation) Valid() bool {
	return o >= Addition && o <= Random
}

// Difficulty is a tier tag. The magnitude and score multiplier attached to each
// tier live in separate lookup tables (see game.Tiers).
type Difficulty int

const (
	Easy Difficulty = iota + 1
	Medium
	Hard
)

// Difficulties lists the tiers in menu order.
var Difficulties = [...]Difficulty{Easy, Medium, Hard}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	}
	return fmt.Sprintf("Difficulty(%d)", int(d))
}

// Valid reports whether d is one of the three tiers.
func (d Difficulty) Valid() bool {
	return d >= Easy && d <= Hard
}

func (d Difficulty) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDifficulty, int(d))
	}
	return []byte(strings.ToLower(d.String())), nil
}

func (d *Difficulty) UnmarshalText(text []byte) error {
	parsed, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDifficulty maps a case-insensitive tier name to its Difficulty.
func ParseDifficulty(name string) (Difficulty, error) {
	for _, d := range Difficulties {
		if strings.EqualFold(name, d.String()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDifficulty, name)
}

// TermPair holds the two operands of a question.
type TermPair struct {
	Left  int `json:"left"`
	Right int `json:"right"`
}

// Question is a single prompt presented to the player.
type Question struct {
	Operation Operation
	Terms     TermPair
	Symbol    string
}

// Prompt renders the question text shown to the player.
func (q Question) Prompt() string {
	return fmt.Sprintf("How much is %d%s%d?", q.Terms.Left, q.Symbol, q.Terms.Right)
}

// DefaultPlayerName is recorded when the player leaves the name blank.
const DefaultPlayerName = "Anonymous"

// RoundRecord is the immutable result of a finished round.
type RoundRecord struct {
	ID          string        `json:"id"`
	Score       int           `json:"score"`
	Difficulty  Difficulty    `json:"difficulty"`
	Mode        Operation     `json:"mode"`
	PlayerName  string        `json:"playerName"`
	ElapsedTime time.Duration `json:"elapsedTime"`
	FinishedAt  time.Time     `json:"finishedAt"`
}

// AnswerResult summarizes the outcome of one answered question.
type AnswerResult struct {
	Correct    bool `json:"correct"`
	Expected   int  `json:"expected"`
	Awarded    int  `json:"awarded"`
	TotalScore int  `json:"totalScore"`
}
