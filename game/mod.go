package game

import (
	"errors"
	"fmt"
)

var (
	// ErrShape is returned when the input grid is empty or its rows differ in length.
	ErrShape = errors.New("grid must be a non-empty rectangle")
	// ErrNegativeCount is returned when a cell holds fewer than zero counters.
	ErrNegativeCount = errors.New("cell counts must be non-negative")
	// ErrOutOfBounds is returned for coordinates outside the board.
	ErrOutOfBounds = errors.New("cell is out of bounds")
	// ErrIllegalMove is returned when removing a counter from an empty cell.
	ErrIllegalMove = errors.New("cell has no counter to remove")
)

// Move removes a single counter from the cell at (Row, Col).
type Move struct {
	Row int
	Col int
}

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
}

// Cell is a board position together with its counter count.
type Cell struct {
	Row   int
	Col   int
	Count int
}

// Transition is one legal move out of a state: the successor it produces, the
// move itself and the cost of playing it in the pre-move state.
type Transition struct {
	State *GridState
	Move  Move
	Cost  int
}

// StateKey is the exact identity of a state. Two states are equal iff their keys are.
type StateKey string

type StateHash uint64

// Evaluate scores a state for the player about to move. Higher is better.
type Evaluate func(*GridState) float64

// 8-neighbourhood, row-major around the centre cell
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}
