package searcher

import (
	"context"

	"hinger/game"
)

// DepthFirst explores the most recently discovered state first. It gives up
// (reporting no path) after the configured number of expansions.
func DepthFirst(ctx context.Context, start, goal *game.GridState, opts ...Option) (Path, bool, error) {
	s := newSettings(DFS, opts)
	if path, found, done := trivial(start, goal); done {
		return path, found, nil
	}

	goalKey := goal.Key()
	safe := safety{}
	visited := map[game.StateKey]struct{}{start.Key(): {}}
	stack := []pathNode{{state: start}}

	steps := 0
	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return Path{}, false, err
		}
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		steps++
		if steps > s.stepLimit {
			return Path{}, false, nil
		}
		s.metrics.AddExpansion()

		for t := range current.state.Moves() {
			s.metrics.AddGenerated(1)
			key := t.State.Key()
			if _, seen := visited[key]; seen || !safe.safe(t.State, key) {
				s.metrics.AddPruned()
				continue
			}
			visited[key] = struct{}{}

			next := pathNode{state: t.State, moves: extend(current.moves, t.Move), cost: current.cost + t.Cost}
			if key == goalKey {
				return Path{Moves: next.moves, Cost: next.cost}, true, nil
			}
			stack = append(stack, next)
		}
	}
	return Path{}, false, nil
}
