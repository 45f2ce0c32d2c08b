package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"math-quiz-game/internal/app"
	"math-quiz-game/internal/game"
	"math-quiz-game/internal/infra/memory"
)

type queueSource struct {
	values []int
}

func (s *queueSource) Intn(n int) int {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[0]
	s.values = s.values[1:]
	return v % n
}

func newTestMenu(input string, out io.Writer, values ...int) (*Menu, *memory.LeaderboardStore) {
	store := memory.NewLeaderboardStore()
	tiers := game.DefaultTiers()
	gen := game.NewGenerator(&queueSource{values: values}, tiers)
	fixed := time.Date(2024, 11, 22, 10, 0, 0, 0, time.UTC)
	service := app.NewGameService(store, gen, tiers, nil, nil).WithClock(func() time.Time { return fixed })

	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewMenu(New(strings.NewReader(input), out), service, log), store
}

func TestMenuPlaysRoundAndShowsHighscores(t *testing.T) {
	input := strings.Join([]string{
		"1",     // new game
		"1",     // addition
		"7",     // invalid difficulty
		"1",     // easy
		"abc",   // ignored
		"5",     // 2+3
		"0",     // 4+4, wrong
		"Alice", // name
		"0",     // back to main menu
		"2",     // highscores
		"",      // continue
		"0",     // exit
	}, "\n") + "\n"

	var out bytes.Buffer
	menu, store := newTestMenu(input, &out, 2, 3, 4, 4)
	if err := menu.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if store.Len() != 1 {
		t.Fatalf("expected one recorded round, got %d", store.Len())
	}

	text := out.String()
	for _, want := range []string{
		"Welcome to the Math Game app.",
		"Invalid option.",
		"How much is 2+3?",
		"How much is 4+4?",
		"The right answer was 8",
		"Game finished after 0.00 seconds! Score: 2",
		" 1. Alice                --     2 (Easy) -- 00:00",
		"Goodbye!",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, text)
		}
	}
}

func TestMenuEmptyHighscores(t *testing.T) {
	var out bytes.Buffer
	menu, _ := newTestMenu("2\n\n0\n", &out)
	if err := menu.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "Nothing here yet...") {
		t.Fatalf("expected empty leaderboard notice, got:\n%s", out.String())
	}
}

func TestMenuExitsCleanlyWhenInputEnds(t *testing.T) {
	var out bytes.Buffer
	menu, store := newTestMenu("1\n3\n2\n", &out, 5, 5)
	if err := menu.Run(context.Background()); err != nil {
		t.Fatalf("expected clean exit on EOF, got %v", err)
	}
	if store.Len() != 0 {
		t.Fatalf("unfinished round must not be recorded")
	}
}

func TestMenuStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	menu, _ := newTestMenu("0\n", io.Discard)
	if err := menu.Run(ctx); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestMenuLogsSelections(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	store := memory.NewLeaderboardStore()
	tiers := game.DefaultTiers()
	service := app.NewGameService(store, game.NewGenerator(&queueSource{}, tiers), tiers, nil, nil)
	menu := NewMenu(New(strings.NewReader("9\n2\n\n0\n"), io.Discard), service, log)

	if err := menu.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	var messages []string
	for _, entry := range hook.AllEntries() {
		messages = append(messages, entry.Message)
	}
	got := strings.Join(messages, "|")
	if got != "invalid main menu option|highscores shown" {
		t.Fatalf("unexpected log entries: %s", got)
	}
	if hook.Entries[0].Data["selection"] != 9 {
		t.Fatalf("expected selection field, got %v", hook.Entries[0].Data)
	}
}
