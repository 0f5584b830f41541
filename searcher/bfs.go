package searcher

import (
	"context"

	"hinger/game"
)

type pathNode struct {
	state *game.GridState
	moves []game.Move
	cost  int
}

// BreadthFirst expands states level by level, so the path it returns has the
// fewest moves among all safe paths (not necessarily the lowest cost).
func BreadthFirst(ctx context.Context, start, goal *game.GridState, opts ...Option) (Path, bool, error) {
	s := newSettings(BFS, opts)
	if path, found, done := trivial(start, goal); done {
		return path, found, nil
	}

	goalKey := goal.Key()
	safe := safety{}
	visited := map[game.StateKey]struct{}{start.Key(): {}}
	frontier := []pathNode{{state: start}}

	for len(frontier) > 0 {
		if err := ctx.Err(); err != nil {
			return Path{}, false, err
		}
		current := frontier[0]
		frontier = frontier[1:]
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
			frontier = append(frontier, next)
		}
	}
	return Path{}, false, nil
}
