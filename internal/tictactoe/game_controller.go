package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

// Board is the authoritative owner of a round's state and the only place moves are validated.
type Board struct {
	state   entity.GameState
	phase   entity.Phase
	outcome entity.Outcome
}

func NewBoard() *Board {
	board := &Board{}
	board.Initialize()

	return board
}

// Initialize - empties the grid and hands the first move to PlayerOne.
func (that *Board) Initialize() {
	that.state = entity.NewGameState()
	that.phase = entity.PhaseAwaitingMove
	that.outcome = entity.Ongoing()
}

// Reset - starts a new round. Cell displays are cleared by whoever mirrors them.
func (that *Board) Reset() {
	that.Initialize()
}

// HandleMove - places the current player's mark at (row, col) and evaluates the outcome.
// Rejected moves leave the board untouched.
func (that *Board) HandleMove(row, col int) (entity.Outcome, error) {
	if err := that.validateMove(row, col); err != nil {
		return that.outcome, fmt.Errorf("move (%d, %d) rejected: %w", row, col, err)
	}

	player := that.state.CurrentPlayer

	that.state.Grid[row][col] = player
	that.state.MoveCounts[player]++
	that.state.TurnCount++

	that.updateGameStatus(player)

	return that.outcome, nil
}

// validateMove - checks if the move is allowed in the current phase.
func (that *Board) validateMove(row, col int) error {
	switch that.phase {
	case entity.PhasePending:
		return apperror.ErrOutcomePending
	case entity.PhaseFinished:
		return apperror.ErrGameFinished
	}

	if !entity.InBounds(row, col) {
		return apperror.ErrInvalidCell
	}

	if that.state.Grid[row][col] != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateGameStatus - checks the board after player's move.
func (that *Board) updateGameStatus(player entity.Mark) {
	if line, ok := that.WinningLine(player); ok {
		that.outcome = entity.Win(player, line)
		that.phase = entity.PhasePending
		return
	}

	if that.state.TurnCount == entity.MaxTurns {
		that.outcome = entity.Tie()
		that.phase = entity.PhasePending
		return
	}

	that.state.CurrentPlayer = player.Other()
}

// Announce - completes a pending terminal outcome. The board stays finished until reset.
func (that *Board) Announce() (entity.Outcome, error) {
	if that.phase != entity.PhasePending {
		return that.outcome, apperror.ErrNothingPending
	}

	that.phase = entity.PhaseFinished

	return that.outcome, nil
}

// CheckVictory - reports whether player owns a full row, column or diagonal.
func (that *Board) CheckVictory(player entity.Mark) bool {
	_, ok := that.WinningLine(player)
	return ok
}

// WinningLine returns the first line fully owned by player.
func (that *Board) WinningLine(player entity.Mark) (entity.Line, bool) {
	for _, line := range entity.Lines {
		if countOwned(that.state.Grid, line, player) == entity.BoardSize {
			return line, true
		}
	}

	return entity.Line{}, false
}

// countOwned counts consecutive cells of line owned by player, stopping at the first mismatch.
func countOwned(grid entity.Grid, line entity.Line, player entity.Mark) int {
	count := 0
	for _, coord := range line {
		if grid[coord.Row][coord.Col] != player {
			break
		}
		count++
	}

	return count
}

func (that *Board) State() entity.GameState {
	return that.state.Clone()
}

func (that *Board) Phase() entity.Phase {
	return that.phase
}

func (that *Board) Outcome() entity.Outcome {
	return that.outcome
}

func (that *Board) CurrentPlayer() entity.Mark {
	return that.state.CurrentPlayer
}

func (that *Board) TurnCount() int {
	return that.state.TurnCount
}

// Cell returns the mark at (row, col), or EmptyCell when out of range.
func (that *Board) Cell(row, col int) entity.Mark {
	if !entity.InBounds(row, col) {
		return entity.EmptyCell
	}

	return that.state.Grid[row][col]
}
