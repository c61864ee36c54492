package entity

type OutcomeKind int

const (
	OutcomeOngoing OutcomeKind = iota
	OutcomeWin
	OutcomeTie
)

func (that OutcomeKind) String() string {
	switch that {
	case OutcomeWin:
		return "win"
	case OutcomeTie:
		return "tie"
	default:
		return "ongoing"
	}
}

type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Line is a row, column or diagonal of three cells.
type Line [BoardSize]Coord

// Lines lists every winning line: rows top to bottom, columns left to right, then both diagonals.
var Lines = func() []Line {
	lines := make([]Line, 0, 2*BoardSize+2)

	for row := range BoardSize {
		var line Line
		for col := range BoardSize {
			line[col] = Coord{Row: row, Col: col}
		}
		lines = append(lines, line)
	}

	for col := range BoardSize {
		var line Line
		for row := range BoardSize {
			line[row] = Coord{Row: row, Col: col}
		}
		lines = append(lines, line)
	}

	var diagonal, antiDiagonal Line
	for i := range BoardSize {
		diagonal[i] = Coord{Row: i, Col: i}
		antiDiagonal[i] = Coord{Row: i, Col: BoardSize - 1 - i}
	}

	return append(lines, diagonal, antiDiagonal)
}()

func (that Line) Contains(row, col int) bool {
	for _, coord := range that {
		if coord.Row == row && coord.Col == col {
			return true
		}
	}
	return false
}

// Outcome is computed after every accepted move and never stored between rounds.
type Outcome struct {
	Kind   OutcomeKind `json:"kind"`
	Winner Mark        `json:"winner,omitempty"`
	Line   Line        `json:"line,omitempty"`
}

func Ongoing() Outcome {
	return Outcome{Kind: OutcomeOngoing}
}

func Win(player Mark, line Line) Outcome {
	return Outcome{Kind: OutcomeWin, Winner: player, Line: line}
}

func Tie() Outcome {
	return Outcome{Kind: OutcomeTie}
}

func (that Outcome) IsTerminal() bool {
	return that.Kind == OutcomeWin || that.Kind == OutcomeTie
}

func (that Outcome) IsWin() bool {
	return that.Kind == OutcomeWin
}

func (that Outcome) IsTie() bool {
	return that.Kind == OutcomeTie
}

// Phase is the board's position in the round lifecycle.
type Phase int

const (
	PhaseAwaitingMove Phase = iota
	PhasePending
	PhaseFinished
)

func (that Phase) String() string {
	switch that {
	case PhasePending:
		return "pending"
	case PhaseFinished:
		return "finished"
	default:
		return "awaiting_move"
	}
}
