package searcher

import (
	"fmt"

	"hinger/game"
)

// ApplyMoves plays moves in order starting from start and returns the final state.
func ApplyMoves(start *game.GridState, moves []game.Move) (*game.GridState, error) {
	current := start
	for i, m := range moves {
		next, err := current.Play(m)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i, err)
		}
		current = next
	}
	return current, nil
}

// PathCost sums the cost of each move, measured in the state it is played from.
func PathCost(start *game.GridState, moves []game.Move) (int, error) {
	total := 0
	current := start
	for i, m := range moves {
		cost, err := current.MoveCost(m.Row, m.Col)
		if err != nil {
			return 0, fmt.Errorf("move %d: %w", i, err)
		}
		next, err := current.Play(m)
		if err != nil {
			return 0, fmt.Errorf("move %d: %w", i, err)
		}
		total += cost
		current = next
	}
	return total, nil
}

// IsSafePath reports whether every state visited by moves, including start,
// has no hingers.
func IsSafePath(start *game.GridState, moves []game.Move) (bool, error) {
	if !start.IsSafe() {
		return false, nil
	}
	current := start
	for i, m := range moves {
		next, err := current.Play(m)
		if err != nil {
			return false, fmt.Errorf("move %d: %w", i, err)
		}
		if !next.IsSafe() {
			return false, nil
		}
		current = next
	}
	return true, nil
}
