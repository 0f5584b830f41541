package searcher

import (
	"hinger/game"

	"golang.org/x/exp/constraints"
)

// Heuristic estimates the remaining cost from state to goal.
type Heuristic func(state, goal *game.GridState) int

// Manhattan pairs the i-th occupied cell of state with the i-th occupied cell
// of goal (both in row-major order) and sums their Manhattan distances. Cells
// left without a partner add one each.
func Manhattan(state, goal *game.GridState) int {
	from := state.ActiveCells()
	to := goal.ActiveCells()

	total := 0
	for i := 0; i < min(len(from), len(to)); i++ {
		total += absDiff(from[i].Row, to[i].Row) + absDiff(from[i].Col, to[i].Col)
	}
	return total + absDiff(len(from), len(to))
}

func zero(_, _ *game.GridState) int {
	return 0
}

func absDiff[T constraints.Signed](x, y T) T {
	if x < y {
		return y - x
	}
	return x - y
}
