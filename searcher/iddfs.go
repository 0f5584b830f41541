package searcher

import (
	"context"

	"hinger/game"
)

// IterativeDeepening runs depth-limited searches with limits 1, 2, ... up to
// the configured maximum and returns the first path found, which is therefore
// shortest in moves.
func IterativeDeepening(ctx context.Context, start, goal *game.GridState, opts ...Option) (Path, bool, error) {
	s := newSettings(IDDFS, opts)
	if path, found, done := trivial(start, goal); done {
		return path, found, nil
	}

	d := &deepening{
		settings: s,
		goalKey:  goal.Key(),
		safe:     safety{},
	}
	for limit := 1; limit <= s.maxDepth; limit++ {
		// Visited only holds the current branch, so a state abandoned at the
		// depth bound can be reached again through a shallower route.
		d.visited = map[game.StateKey]struct{}{start.Key(): {}}
		path, found, err := d.limited(ctx, start, limit, nil, 0)
		if err != nil || found {
			return path, found, err
		}
	}
	return Path{}, false, nil
}

type deepening struct {
	*settings
	goalKey game.StateKey
	safe    safety
	visited map[game.StateKey]struct{}
}

func (d *deepening) limited(ctx context.Context, current *game.GridState, depth int, moves []game.Move, cost int) (Path, bool, error) {
	if current.Key() == d.goalKey {
		return Path{Moves: moves, Cost: cost}, true, nil
	}
	if depth == 0 {
		return Path{}, false, nil
	}
	if err := ctx.Err(); err != nil {
		return Path{}, false, err
	}
	d.metrics.AddExpansion()

	for t := range current.Moves() {
		d.metrics.AddGenerated(1)
		key := t.State.Key()
		if _, seen := d.visited[key]; seen || !d.safe.safe(t.State, key) {
			d.metrics.AddPruned()
			continue
		}

		d.visited[key] = struct{}{}
		path, found, err := d.limited(ctx, t.State, depth-1, extend(moves, t.Move), cost+t.Cost)
		delete(d.visited, key)
		if err != nil || found {
			return path, found, err
		}
	}
	return Path{}, false, nil
}
