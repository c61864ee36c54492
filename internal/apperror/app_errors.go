package apperror

import "errors"

var (
	ErrGameFinished    = errors.New("game is already finished")
	ErrOutcomePending  = errors.New("outcome is pending announcement")
	ErrNothingPending  = errors.New("no outcome is pending")
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrInvalidCell     = errors.New("invalid cell index")
	ErrUnknownMessage  = errors.New("unknown message kind")
	ErrDispatcherClose = errors.New("dispatcher is not running")
)
