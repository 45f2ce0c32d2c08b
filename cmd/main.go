package main

import (
	"os"

	"math-quiz-game/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
