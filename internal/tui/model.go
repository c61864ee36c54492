// Package tui hosts the board in a terminal. It renders frames published by the
// dispatcher and turns key presses and mouse clicks into messages.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-board/internal/cell"
	"github.com/rocketscienceinc/tictactoe-board/internal/dialog"
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/rocketscienceinc/tictactoe-board/internal/usecase"
)

const (
	title = "Tic-Tac-Toe"

	// boardTop is the first screen row of the board: the title and a blank line sit above it.
	boardTop = 2
)

type dispatcher interface {
	Dispatch(ctx context.Context, msg entity.Message) error
}

type (
	frameMsg        usecase.Frame
	framesClosedMsg struct{}
	dispatchErrMsg  struct{ err error }
)

type Theme struct {
	Accent    lipgloss.Color
	Highlight lipgloss.Color
}

type Model struct {
	ctx        context.Context
	dispatcher dispatcher
	frames     <-chan usecase.Frame
	symbols    entity.Symbols

	keys         keyMap
	cellStyles   cell.Styles
	dialogStyles dialog.Styles
	titleStyle   lipgloss.Style
	statusStyle  lipgloss.Style
	helpStyle    lipgloss.Style

	frame usecase.Frame
	ready bool
	focus entity.Coord
	err   error
}

func New(ctx context.Context, dispatcher dispatcher, frames <-chan usecase.Frame, symbols entity.Symbols, theme Theme) Model {
	return Model{
		ctx:        ctx,
		dispatcher: dispatcher,
		frames:     frames,
		symbols:    symbols,

		keys:         newKeyMap(),
		cellStyles:   cell.NewStyles(theme.Accent, theme.Highlight),
		dialogStyles: dialog.NewStyles(theme.Accent),
		titleStyle:   lipgloss.NewStyle().Bold(true).Foreground(theme.Accent),
		statusStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		helpStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

func (that Model) Init() tea.Cmd {
	return waitForFrame(that.frames)
}

func waitForFrame(frames <-chan usecase.Frame) tea.Cmd {
	return func() tea.Msg {
		frame, ok := <-frames
		if !ok {
			return framesClosedMsg{}
		}
		return frameMsg(frame)
	}
}

func (that Model) dispatch(msg entity.Message) tea.Cmd {
	return func() tea.Msg {
		if err := that.dispatcher.Dispatch(that.ctx, msg); err != nil {
			return dispatchErrMsg{err: err}
		}
		return nil
	}
}

func (that Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		that.frame = usecase.Frame(msg)
		that.ready = true
		return that, waitForFrame(that.frames)
	case framesClosedMsg:
		return that, tea.Quit
	case dispatchErrMsg:
		that.err = msg.err
		return that, nil
	case tea.KeyMsg:
		return that.handleKey(msg)
	case tea.MouseMsg:
		return that.handleMouse(msg)
	}

	return that, nil
}

func (that Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, that.keys.Quit) {
		return that, tea.Quit
	}

	if !that.ready {
		return that, nil
	}

	if that.frame.Dialog.IsOpen() {
		switch {
		case key.Matches(msg, that.keys.PlayAgain):
			_, reset := that.frame.Dialog.PlayAgain()
			return that, that.dispatch(reset)
		case key.Matches(msg, that.keys.Close):
			return that, that.dispatch(entity.OverlayDismissed{})
		}

		return that, nil
	}

	switch {
	case key.Matches(msg, that.keys.Up):
		that.focus.Row = max(0, that.focus.Row-1)
	case key.Matches(msg, that.keys.Down):
		that.focus.Row = min(entity.BoardSize-1, that.focus.Row+1)
	case key.Matches(msg, that.keys.Left):
		that.focus.Col = max(0, that.focus.Col-1)
	case key.Matches(msg, that.keys.Right):
		that.focus.Col = min(entity.BoardSize-1, that.focus.Col+1)
	case key.Matches(msg, that.keys.Activate):
		return that, that.dispatch(that.frame.Cells[that.focus.Row][that.focus.Col].Activate())
	case key.Matches(msg, that.keys.Reset):
		return that, that.dispatch(entity.ResetRequested{})
	}

	return that, nil
}

func (that Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !that.ready || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return that, nil
	}

	if that.frame.Dialog.IsOpen() {
		if that.dialogRect().contains(msg.X, msg.Y) {
			return that, nil
		}
		return that, that.dispatch(entity.OverlayDismissed{})
	}

	coord, ok := that.cellAt(msg.X, msg.Y)
	if !ok {
		return that, nil
	}

	that.focus = coord

	return that, that.dispatch(that.frame.Cells[coord.Row][coord.Col].Activate())
}

// cellSize is the rendered footprint of one cell, border included.
func (that Model) cellSize() (int, int) {
	rendered := cell.New(0, 0).View(that.cellStyles, cell.ViewState{})
	return lipgloss.Width(rendered), lipgloss.Height(rendered)
}

// cellAt maps a screen position to the cell drawn there.
func (that Model) cellAt(x, y int) (entity.Coord, bool) {
	width, height := that.cellSize()

	row, col := (y-boardTop)/height, x/width
	if y < boardTop || x < 0 || !entity.InBounds(row, col) {
		return entity.Coord{}, false
	}

	return entity.Coord{Row: row, Col: col}, true
}

func (that Model) dialogRect() rect {
	base := that.baseView()
	box := that.frame.Dialog.View(that.dialogStyles)

	return centered(lipgloss.Width(base), lipgloss.Height(base), lipgloss.Width(box), lipgloss.Height(box))
}

func (that Model) View() string {
	if !that.ready {
		return "Starting...\n"
	}

	base := that.baseView()
	if !that.frame.Dialog.IsOpen() {
		return base + "\n"
	}

	placement := that.dialogRect()

	return overlayAt(base, that.frame.Dialog.View(that.dialogStyles), placement.x, placement.y) + "\n"
}

func (that Model) baseView() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		that.titleStyle.Render(title),
		"",
		that.boardView(),
		"",
		that.statusStyle.Render(that.status()),
		that.helpView(),
	)
}

func (that Model) boardView() string {
	highlightLine := that.frame.Outcome.IsWin()
	focusVisible := !that.frame.Dialog.IsOpen() && that.frame.Phase == entity.PhaseAwaitingMove

	rows := make([]string, 0, entity.BoardSize)
	for row := range entity.BoardSize {
		cells := make([]string, 0, entity.BoardSize)
		for col := range entity.BoardSize {
			state := cell.ViewState{
				Focused:     focusVisible && that.focus == entity.Coord{Row: row, Col: col},
				Highlighted: highlightLine && that.frame.Outcome.Line.Contains(row, col),
			}
			cells = append(cells, that.frame.Cells[row][col].View(that.cellStyles, state))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (that Model) status() string {
	if that.err != nil {
		return fmt.Sprintf("error: %v", that.err)
	}

	switch that.frame.Phase {
	case entity.PhasePending:
		return fmt.Sprintf("Turn %d · deciding...", that.frame.TurnCount)
	case entity.PhaseFinished:
		if that.frame.Outcome.IsWin() {
			return fmt.Sprintf("%s won on turn %d · press r to play again", that.symbols.For(that.frame.Outcome.Winner), that.frame.TurnCount)
		}
		return "Tie · press r to play again"
	default:
		return fmt.Sprintf("Turn %d · %s to move", that.frame.TurnCount+1, that.symbols.For(that.frame.CurrentPlayer))
	}
}

func (that Model) helpView() string {
	bindings := that.keys.boardHelp()
	if that.frame.Dialog.IsOpen() {
		bindings = that.keys.dialogHelp()
	}

	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}

	return that.helpStyle.Render(strings.Join(parts, " • "))
}
