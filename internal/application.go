package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-board/internal/config"
	"github.com/rocketscienceinc/tictactoe-board/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-board/internal/tui"
	"github.com/rocketscienceinc/tictactoe-board/internal/usecase"
)

// RunApp - runs the dispatcher and the terminal host until the player quits or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config, opts ...tea.ProgramOption) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	gameManager := usecase.NewGameManager(logger, tictactoe.NewBoard(), usecase.NewScheduler(), usecase.Options{
		PresentationDelay: conf.PresentationDelay,
		Symbols:           conf.Symbols,
	})

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return gameManager.Run(groupCtx)
	})

	group.Go(func() error {
		for notification := range gameManager.Notifications() {
			log.Info("notification", "kind", notification.Kind, "player", notification.Player, "round", notification.Round)
		}
		return nil
	})

	model := tui.New(groupCtx, gameManager, gameManager.Frames(), conf.Symbols, tui.Theme{
		Accent:    lipgloss.Color(conf.Theme.Accent),
		Highlight: lipgloss.Color(conf.Theme.Highlight),
	})

	group.Go(func() error {
		defer cancel()

		log.Info("Starting terminal host")

		program := tea.NewProgram(model, append(programOptions(groupCtx, conf), opts...)...)
		if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("terminal host error: %w", err)
		}

		return nil
	})

	if err := group.Wait(); err != nil {
		return err
	}

	log.Info("Application stopped")

	return nil
}

func programOptions(ctx context.Context, conf *config.Config) []tea.ProgramOption {
	options := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithAltScreen(),
	}

	if !conf.DisableMouse {
		options = append(options, tea.WithMouseCellMotion())
	}

	return options
}
