package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"math-quiz-game/internal/app"
	"math-quiz-game/internal/domain"
)

// Menu drives the interactive session: main menu, game selection and highscores.
type Menu struct {
	console *Console
	service *app.GameService
	log     logrus.FieldLogger
}

func NewMenu(console *Console, service *app.GameService, log logrus.FieldLogger) *Menu {
	return &Menu{console: console, service: service, log: log}
}

// Run loops on the main menu until the player exits or the input ends.
func (m *Menu) Run(ctx context.Context) error {
	m.console.Show("Welcome to the Math Game app.")
	err := m.mainMenu(ctx)
	if errors.Is(err, io.EOF) {
		m.log.Debug("input closed, leaving menu")
		return nil
	}
	return err
}

func (m *Menu) mainMenu(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		m.console.Show("")
		m.console.Show("Select an option:")
		m.console.Show("1. Start a new game")
		m.console.Show("2. See Highscores (session)")
		m.console.Show("0. Exit")

		selection, err := m.console.ReadInteger()
		if err != nil {
			return err
		}
		switch selection {
		case 1:
			if err := m.gameMenu(ctx); err != nil {
				return err
			}
		case 2:
			if err := m.showHighscores(ctx); err != nil {
				return err
			}
		case 0:
			m.console.Show("Goodbye!")
			return nil
		default:
			m.log.WithField("selection", selection).Debug("invalid main menu option")
			m.console.Show("Invalid option.")
		}
	}
}

func (m *Menu) gameMenu(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		m.console.Show("Select a game:")
		m.console.Show("1. Addition")
		m.console.Show("2. Subtraction")
		m.console.Show("3. Multiplication")
		m.console.Show("4. Division")
		m.console.Show("5. Random")
		m.console.Show("0. Main Menu")

		selection, err := m.console.ReadInteger()
		if err != nil {
			return err
		}
		switch {
		case selection == 0:
			return nil
		case selection >= 1 && selection <= 5:
			mode := domain.Operation(selection - 1)
			difficulty, err := m.readDifficulty()
			if err != nil {
				return err
			}
			m.log.WithFields(logrus.Fields{"mode": mode.String(), "difficulty": difficulty.String()}).Debug("game selected")
			if _, err := m.service.PlayRound(ctx, mode, difficulty, m.console); err != nil {
				return err
			}
		default:
			m.log.WithField("selection", selection).Debug("invalid game option")
			m.console.Show("Invalid option.")
		}
	}
}

func (m *Menu) readDifficulty() (domain.Difficulty, error) {
	m.console.Show("Select a difficulty:")
	for i, d := range domain.Difficulties {
		m.console.Show(fmt.Sprintf("%d. %s", i+1, d))
	}
	for {
		selection, err := m.console.ReadInteger()
		if err != nil {
			return 0, err
		}
		if selection >= 1 && selection <= len(domain.Difficulties) {
			return domain.Difficulties[selection-1], nil
		}
		m.log.WithField("selection", selection).Debug("invalid difficulty")
		m.console.Show("Invalid option.")
	}
}

func (m *Menu) showHighscores(ctx context.Context) error {
	board, err := m.service.Leaderboard(ctx)
	if err != nil {
		return err
	}
	m.log.WithField("entries", len(board)).Debug("highscores shown")
	if len(board) == 0 {
		m.console.Show("Nothing here yet...")
	}
	for i, record := range board {
		m.console.Show(FormatEntry(i+1, record))
	}
	m.console.Show("Press enter to continue.")
	m.console.ReadLine()
	return nil
}
