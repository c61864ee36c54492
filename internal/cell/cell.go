// Package cell renders one board position and turns activation into a move request.
// A Cell knows nothing about the rules; its symbol is assigned by the board owner.
package cell

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

const (
	Width  = 7
	Height = 3
)

type Cell struct {
	row    int
	col    int
	symbol string
}

func New(row, col int) Cell {
	return Cell{row: row, col: col}
}

func (that Cell) Row() int { return that.row }

func (that Cell) Col() int { return that.col }

func (that Cell) Symbol() string { return that.symbol }

func (that Cell) IsEmpty() bool { return that.symbol == "" }

// WithSymbol returns a copy displaying symbol.
func (that Cell) WithSymbol(symbol string) Cell {
	that.symbol = symbol
	return that
}

func (that Cell) Cleared() Cell {
	return that.WithSymbol("")
}

// Activate - raises a move request for this cell's coordinate.
func (that Cell) Activate() entity.MoveRequested {
	return entity.MoveRequested{Row: that.row, Col: that.col}
}

// Grid builds the nine cells of a board, each displaying its mark.
func Grid(grid entity.Grid, symbols entity.Symbols) [entity.BoardSize][entity.BoardSize]Cell {
	var cells [entity.BoardSize][entity.BoardSize]Cell
	for row := range entity.BoardSize {
		for col := range entity.BoardSize {
			cells[row][col] = New(row, col).WithSymbol(symbols.For(grid[row][col]))
		}
	}

	return cells
}

type Styles struct {
	Normal      lipgloss.Style
	Focused     lipgloss.Style
	Highlighted lipgloss.Style
}

func NewStyles(accent, highlight lipgloss.Color) Styles {
	base := lipgloss.NewStyle().
		Width(Width).
		Height(Height).
		Align(lipgloss.Center, lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Bold(true)

	return Styles{
		Normal:      base.BorderForeground(lipgloss.Color("240")),
		Focused:     base.BorderForeground(accent),
		Highlighted: base.BorderForeground(highlight).Foreground(highlight),
	}
}

type ViewState struct {
	Focused     bool
	Highlighted bool
}

// View - renders the cell. Highlight wins over focus.
func (that Cell) View(styles Styles, state ViewState) string {
	style := styles.Normal
	switch {
	case state.Highlighted:
		style = styles.Highlighted
	case state.Focused:
		style = styles.Focused
	}

	return style.Render(that.symbol)
}
