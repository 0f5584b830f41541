package game

import (
	"encoding/binary"
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/cespare/xxhash"
)

// GridState is a rows x cols board of counter counts. It is immutable once
// built: every move produces a new GridState.
type GridState struct {
	rows  int
	cols  int
	cells []int // row-major
}

// NewGridState builds a state from a rectangular matrix of non-negative counts.
// The input is deep-copied so later changes to it do not affect the state.
func NewGridState(grid [][]int) (*GridState, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, ErrShape
	}
	rows, cols := len(grid), len(grid[0])
	cells := make([]int, 0, rows*cols)
	for r, row := range grid {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", r, len(row), cols, ErrShape)
		}
		for c, count := range row {
			if count < 0 {
				return nil, fmt.Errorf("cell (%d,%d) holds %d: %w", r, c, count, ErrNegativeCount)
			}
		}
		cells = append(cells, row...)
	}
	return &GridState{rows: rows, cols: cols, cells: cells}, nil
}

// MustGridState is like NewGridState but panics on invalid input.
func MustGridState(grid [][]int) *GridState {
	gs, err := NewGridState(grid)
	if err != nil {
		panic(err)
	}
	return gs
}

func (gs *GridState) Rows() int { return gs.rows }
func (gs *GridState) Cols() int { return gs.cols }

// InBounds reports whether (r, c) lies on the board.
func (gs *GridState) InBounds(r, c int) bool {
	return r >= 0 && r < gs.rows && c >= 0 && c < gs.cols
}

func (gs *GridState) index(r, c int) int {
	return r*gs.cols + c
}

func (gs *GridState) checkBounds(r, c int) error {
	if !gs.InBounds(r, c) {
		return fmt.Errorf("(%d,%d) on a %dx%d board: %w", r, c, gs.rows, gs.cols, ErrOutOfBounds)
	}
	return nil
}

// At returns the number of counters at (r, c).
func (gs *GridState) At(r, c int) (int, error) {
	if err := gs.checkBounds(r, c); err != nil {
		return 0, err
	}
	return gs.cells[gs.index(r, c)], nil
}

// Grid returns a copy of the board as a matrix.
func (gs *GridState) Grid() [][]int {
	grid := make([][]int, gs.rows)
	for r := range grid {
		grid[r] = make([]int, gs.cols)
		copy(grid[r], gs.cells[r*gs.cols:(r+1)*gs.cols])
	}
	return grid
}

// Total returns the number of counters on the board.
func (gs *GridState) Total() int {
	total := 0
	for _, count := range gs.cells {
		total += count
	}
	return total
}

// IsEmpty reports whether no cell holds a counter.
func (gs *GridState) IsEmpty() bool {
	for _, count := range gs.cells {
		if count > 0 {
			return false
		}
	}
	return true
}

// ActiveCells returns the cells holding at least one counter in row-major order.
func (gs *GridState) ActiveCells() []Cell {
	var active []Cell
	for i, count := range gs.cells {
		if count > 0 {
			active = append(active, Cell{Row: i / gs.cols, Col: i % gs.cols, Count: count})
		}
	}
	return active
}

// MoveCost returns 1 plus the number of occupied neighbours of (r, c). The
// cell's own count is not considered.
func (gs *GridState) MoveCost(r, c int) (int, error) {
	if err := gs.checkBounds(r, c); err != nil {
		return 0, err
	}
	return gs.moveCost(r, c), nil
}

func (gs *GridState) moveCost(r, c int) int {
	cost := 1
	for _, d := range directions {
		nr, nc := r+d[0], c+d[1]
		if gs.InBounds(nr, nc) && gs.cells[gs.index(nr, nc)] > 0 {
			cost++
		}
	}
	return cost
}

// Moves yields one transition per occupied cell, in row-major order. The
// sequence can be ranged over any number of times.
func (gs *GridState) Moves() iter.Seq[Transition] {
	return func(yield func(Transition) bool) {
		for i, count := range gs.cells {
			if count == 0 {
				continue
			}
			r, c := i/gs.cols, i%gs.cols
			t := Transition{
				State: gs.decrement(i),
				Move:  Move{Row: r, Col: c},
				Cost:  gs.moveCost(r, c),
			}
			if !yield(t) {
				return
			}
		}
	}
}

// LegalMoves returns every legal move in row-major order.
func (gs *GridState) LegalMoves() []Move {
	var moves []Move
	for i, count := range gs.cells {
		if count > 0 {
			moves = append(moves, Move{Row: i / gs.cols, Col: i % gs.cols})
		}
	}
	return moves
}

// Play returns the state after removing one counter at m.
func (gs *GridState) Play(m Move) (*GridState, error) {
	if err := gs.checkBounds(m.Row, m.Col); err != nil {
		return nil, err
	}
	i := gs.index(m.Row, m.Col)
	if gs.cells[i] == 0 {
		return nil, fmt.Errorf("move %s: %w", m, ErrIllegalMove)
	}
	return gs.decrement(i), nil
}

func (gs *GridState) decrement(i int) *GridState {
	next := gs.Clone()
	next.cells[i]--
	return next
}

// Clone returns an independent copy of the state.
func (gs *GridState) Clone() *GridState {
	cells := make([]int, len(gs.cells))
	copy(cells, gs.cells)
	return &GridState{rows: gs.rows, cols: gs.cols, cells: cells}
}

// Key returns the canonical identity of the state: its shape followed by its
// counts in row-major order.
func (gs *GridState) Key() StateKey {
	buf := make([]byte, 0, 2*binary.MaxVarintLen64+len(gs.cells))
	buf = binary.AppendUvarint(buf, uint64(gs.rows))
	buf = binary.AppendUvarint(buf, uint64(gs.cols))
	for _, count := range gs.cells {
		buf = binary.AppendUvarint(buf, uint64(count))
	}
	return StateKey(buf)
}

// Hash returns a 64-bit digest of Key.
func (gs *GridState) Hash() StateHash {
	return StateHash(xxhash.Sum64String(string(gs.Key())))
}

// Equal reports whether both states hold the same counts on the same shape.
func (gs *GridState) Equal(other *GridState) bool {
	if other == nil || gs.rows != other.rows || gs.cols != other.cols {
		return false
	}
	for i, count := range gs.cells {
		if other.cells[i] != count {
			return false
		}
	}
	return true
}

func (gs *GridState) String() string {
	var sb strings.Builder
	for r := 0; r < gs.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < gs.cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(gs.cells[gs.index(r, c)]))
		}
	}
	return sb.String()
}
