package console

import (
	"fmt"
	"time"

	"math-quiz-game/internal/domain"
)

const nameWidth = 20

// FormatEntry renders one leaderboard line, e.g.
//
//	 1. Alice                --    16 (Hard) -- 01:05
func FormatEntry(rank int, record domain.RoundRecord) string {
	return fmt.Sprintf("%2d. %-*s -- %5d (%s) -- %s",
		rank, nameWidth, truncate(record.PlayerName, nameWidth), record.Score, record.Difficulty, FormatElapsed(record.ElapsedTime))
}

// FormatElapsed renders the minutes and seconds components as mm:ss. Hours are dropped.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	minutes := int(d/time.Minute) % 60
	seconds := int(d/time.Second) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width])
}
