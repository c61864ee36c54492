package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-board/internal/cell"
	"github.com/rocketscienceinc/tictactoe-board/internal/dialog"
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/rocketscienceinc/tictactoe-board/internal/pkg"
)

const (
	DefaultPresentationDelay = 500 * time.Millisecond

	defaultQueueSize        = 32
	defaultNotificationSize = 16
)

type gameBoard interface {
	HandleMove(row, col int) (entity.Outcome, error)
	Announce() (entity.Outcome, error)
	Reset()

	State() entity.GameState
	Phase() entity.Phase
	Outcome() entity.Outcome
}

// Frame is a render snapshot of everything the host displays.
type Frame struct {
	Round         string
	Cells         [entity.BoardSize][entity.BoardSize]cell.Cell
	Dialog        dialog.Dialog
	CurrentPlayer entity.Mark
	TurnCount     int
	Phase         entity.Phase
	Outcome       entity.Outcome
}

type Options struct {
	PresentationDelay time.Duration
	Symbols           entity.Symbols
	QueueSize         int
}

// GameManager owns the board and its cell and dialog mirrors. All of them are touched
// only from the Run loop; other goroutines talk to it through Dispatch.
type GameManager struct {
	logger    *slog.Logger
	board     gameBoard
	scheduler Scheduler

	delay   time.Duration
	symbols entity.Symbols

	round   string
	cells   [entity.BoardSize][entity.BoardSize]cell.Cell
	dialog  dialog.Dialog
	pending Timer

	queue         chan entity.Message
	frames        chan Frame
	notifications chan entity.Notification
	done          chan struct{}

	handlers map[entity.MessageKind]func(ctx context.Context, msg entity.Message) error
}

func NewGameManager(logger *slog.Logger, board gameBoard, scheduler Scheduler, opts Options) *GameManager {
	if opts.QueueSize <= 0 {
		opts.QueueSize = defaultQueueSize
	}

	if opts.Symbols == (entity.Symbols{}) {
		opts.Symbols = entity.DefaultSymbols()
	}

	manager := &GameManager{
		logger:    logger.With("component", "game_manager"),
		board:     board,
		scheduler: scheduler,

		delay:   opts.PresentationDelay,
		symbols: opts.Symbols,

		queue:         make(chan entity.Message, opts.QueueSize),
		frames:        make(chan Frame, 1),
		notifications: make(chan entity.Notification, defaultNotificationSize),
		done:          make(chan struct{}),

		handlers: make(map[entity.MessageKind]func(context.Context, entity.Message) error),
	}

	manager.handlers[entity.KindMoveRequested] = manager.handleMove
	manager.handlers[entity.KindOutcomeReached] = manager.handleOutcome
	manager.handlers[entity.KindResetRequested] = manager.handleReset
	manager.handlers[entity.KindOverlayDismissed] = manager.handleOverlayDismissed

	manager.startRound()

	return manager
}

// Frames - render snapshots. Only the latest unread frame is kept. Closed when Run returns.
func (that *GameManager) Frames() <-chan Frame {
	return that.frames
}

// Notifications - outcome and reset notifications for the host. Closed when Run returns.
func (that *GameManager) Notifications() <-chan entity.Notification {
	return that.notifications
}

// Dispatch - enqueues a message for the Run loop.
func (that *GameManager) Dispatch(ctx context.Context, msg entity.Message) error {
	select {
	case <-that.done:
		return apperror.ErrDispatcherClose
	default:
	}

	select {
	case that.queue <- msg:
		return nil
	case <-that.done:
		return apperror.ErrDispatcherClose
	case <-ctx.Done():
		return fmt.Errorf("failed to dispatch %s: %w", msg.Kind(), ctx.Err())
	}
}

// Run - processes messages until ctx is cancelled. It must be called once.
func (that *GameManager) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	defer func() {
		that.cancelPending()
		close(that.done)
		close(that.frames)
		close(that.notifications)
	}()

	log.Info("dispatcher started", "round", that.round)
	that.publishFrame()

	for {
		select {
		case <-ctx.Done():
			log.Info("dispatcher stopped")
			return nil
		case msg := <-that.queue:
			if err := that.process(ctx, msg); err != nil {
				log.Error("error processing message", "kind", msg.Kind(), "error", err)
			}
		}
	}
}

func (that *GameManager) process(ctx context.Context, msg entity.Message) error {
	handler, ok := that.handlers[msg.Kind()]
	if !ok {
		return fmt.Errorf("%w: %s", apperror.ErrUnknownMessage, msg.Kind())
	}

	return handler(ctx, msg)
}

func (that *GameManager) handleMove(_ context.Context, msg entity.Message) error {
	log := that.logger.With("method", "handleMove", "round", that.round)

	move, ok := msg.(entity.MoveRequested)
	if !ok {
		return fmt.Errorf("%w: %T", apperror.ErrUnknownMessage, msg)
	}

	player := that.board.State().CurrentPlayer

	outcome, err := that.board.HandleMove(move.Row, move.Col)
	if err != nil {
		if isIgnoredMove(err) {
			log.Debug("move ignored", "row", move.Row, "col", move.Col, "reason", err)
			return nil
		}

		return fmt.Errorf("failed to handle move: %w", err)
	}

	that.cells[move.Row][move.Col] = that.cells[move.Row][move.Col].WithSymbol(that.symbols.For(player))

	log.Debug("move applied", "row", move.Row, "col", move.Col, "player", player, "outcome", outcome.Kind)

	if outcome.IsTerminal() {
		that.schedule(that.round)
	}

	that.publishFrame()

	return nil
}

// isIgnoredMove reports rejections that are deliberate no-ops for the player.
func isIgnoredMove(err error) bool {
	return errors.Is(err, apperror.ErrCellOccupied) ||
		errors.Is(err, apperror.ErrOutcomePending) ||
		errors.Is(err, apperror.ErrGameFinished) ||
		errors.Is(err, apperror.ErrInvalidCell)
}

// schedule - delays the announcement so the final mark renders before the dialog.
func (that *GameManager) schedule(round string) {
	that.cancelPending()

	that.pending = that.scheduler.AfterFunc(that.delay, func() {
		select {
		case that.queue <- entity.OutcomeReached{Round: round}:
		case <-that.done:
		}
	})
}

func (that *GameManager) cancelPending() {
	if that.pending != nil {
		that.pending.Stop()
		that.pending = nil
	}
}

func (that *GameManager) handleOutcome(_ context.Context, msg entity.Message) error {
	log := that.logger.With("method", "handleOutcome", "round", that.round)

	reached, ok := msg.(entity.OutcomeReached)
	if !ok {
		return fmt.Errorf("%w: %T", apperror.ErrUnknownMessage, msg)
	}

	if reached.Round != that.round {
		log.Debug("stale outcome dropped", "stale_round", reached.Round)
		return nil
	}

	that.pending = nil

	outcome, err := that.board.Announce()
	if err != nil {
		if errors.Is(err, apperror.ErrNothingPending) {
			log.Debug("no outcome to announce")
			return nil
		}

		return fmt.Errorf("failed to announce outcome: %w", err)
	}

	that.dialog = dialog.ForOutcome(outcome, that.symbols)

	notification := entity.Notification{Kind: entity.NotifyTie, Round: that.round}
	if outcome.IsWin() {
		notification = entity.Notification{Kind: entity.NotifyPlayerWon, Player: outcome.Winner, Round: that.round}
	}

	log.Info("round finished", "outcome", outcome.Kind, "winner", outcome.Winner)

	that.notify(notification)
	that.publishFrame()

	return nil
}

func (that *GameManager) handleReset(_ context.Context, _ entity.Message) error {
	finished := that.round

	that.cancelPending()
	that.board.Reset()
	that.dialog = dialog.Closed()
	that.startRound()

	that.logger.Info("round reset", "method", "handleReset", "previous_round", finished, "round", that.round)

	that.notify(entity.Notification{Kind: entity.NotifyReset, Round: that.round})
	that.publishFrame()

	return nil
}

func (that *GameManager) handleOverlayDismissed(_ context.Context, _ entity.Message) error {
	if !that.dialog.IsOpen() {
		return nil
	}

	that.dialog = that.dialog.ClickOverlay()
	that.publishFrame()

	return nil
}

// startRound - clears every cell display and assigns a fresh round id.
func (that *GameManager) startRound() {
	that.round = pkg.GenerateRoundID()

	for row := range entity.BoardSize {
		for col := range entity.BoardSize {
			that.cells[row][col] = cell.New(row, col)
		}
	}
}

func (that *GameManager) snapshot() Frame {
	state := that.board.State()

	return Frame{
		Round:         that.round,
		Cells:         that.cells,
		Dialog:        that.dialog,
		CurrentPlayer: state.CurrentPlayer,
		TurnCount:     state.TurnCount,
		Phase:         that.board.Phase(),
		Outcome:       that.board.Outcome(),
	}
}

// publishFrame replaces any unread frame with the current snapshot.
func (that *GameManager) publishFrame() {
	frame := that.snapshot()

	select {
	case that.frames <- frame:
		return
	default:
	}

	select {
	case <-that.frames:
	default:
	}

	select {
	case that.frames <- frame:
	default:
		that.logger.Warn("frame dropped", "round", frame.Round)
	}
}

func (that *GameManager) notify(notification entity.Notification) {
	select {
	case that.notifications <- notification:
	default:
		that.logger.Warn("notification dropped", "kind", notification.Kind, "round", notification.Round)
	}
}
