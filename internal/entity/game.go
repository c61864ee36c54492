package entity

import (
	"fmt"
	"maps"
)

const (
	BoardSize = 3
	MaxTurns  = BoardSize * BoardSize

	DefaultPlayerOneSymbol = "X"
	DefaultPlayerTwoSymbol = "O"
)

// Mark is the occupancy of a single grid cell. The two player values double as player identities.
type Mark int

const (
	EmptyCell Mark = iota
	PlayerOne
	PlayerTwo
)

func (that Mark) String() string {
	switch that {
	case EmptyCell:
		return "empty"
	case PlayerOne:
		return "player_one"
	case PlayerTwo:
		return "player_two"
	default:
		return fmt.Sprintf("mark(%d)", int(that))
	}
}

// Other returns the opponent of a player mark.
func (that Mark) Other() Mark {
	if that == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

func (that Mark) IsPlayer() bool {
	return that == PlayerOne || that == PlayerTwo
}

type Grid [BoardSize][BoardSize]Mark

// InBounds reports whether (row, col) addresses a cell of the grid.
func InBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

type GameState struct {
	Grid          Grid         `json:"grid"`
	CurrentPlayer Mark         `json:"current_player"`
	TurnCount     int          `json:"turn_count"`
	MoveCounts    map[Mark]int `json:"move_counts"`
}

func NewGameState() GameState {
	return GameState{
		CurrentPlayer: PlayerOne,
		MoveCounts: map[Mark]int{
			PlayerOne: 0,
			PlayerTwo: 0,
		},
	}
}

// Clone returns a copy that shares no mutable data with the receiver.
func (that GameState) Clone() GameState {
	clone := that
	clone.MoveCounts = maps.Clone(that.MoveCounts)
	return clone
}

// Move is a single placement request. It is consumed as soon as it is applied.
type Move struct {
	Row    int
	Col    int
	Player Mark
}

// Symbols maps player marks to the text shown in a cell.
type Symbols struct {
	PlayerOne string `yaml:"player-one" env:"TICTACTOE_SYMBOL_PLAYER_ONE" env-default:"X"`
	PlayerTwo string `yaml:"player-two" env:"TICTACTOE_SYMBOL_PLAYER_TWO" env-default:"O"`
}

func DefaultSymbols() Symbols {
	return Symbols{PlayerOne: DefaultPlayerOneSymbol, PlayerTwo: DefaultPlayerTwoSymbol}
}

func (that Symbols) For(mark Mark) string {
	switch mark {
	case PlayerOne:
		return that.PlayerOne
	case PlayerTwo:
		return that.PlayerTwo
	default:
		return ""
	}
}
