package searcher

import (
	"container/heap"
	"context"
	"slices"

	"hinger/game"
)

// HeuristicBestFirst is A* search guided by the Manhattan heuristic. It always
// expands the open state with the lowest cost-so-far plus estimate.
func HeuristicBestFirst(ctx context.Context, start, goal *game.GridState, opts ...Option) (Path, bool, error) {
	s := newSettings(AStar, opts)
	return bestFirst(ctx, s, start, goal, Manhattan)
}

// UniformCost expands states in order of cost-so-far. It handles boards with
// any number of counters per cell and returns the cheapest safe path.
func UniformCost(ctx context.Context, start, goal *game.GridState, opts ...Option) (Path, bool, error) {
	s := newSettings(MinCost, opts)
	return bestFirst(ctx, s, start, goal, zero)
}

func bestFirst(ctx context.Context, s *settings, start, goal *game.GridState, h Heuristic) (Path, bool, error) {
	if path, found, done := trivial(start, goal); done {
		return path, found, nil
	}

	var (
		goalKey  = goal.Key()
		startKey = start.Key()
		safe     = safety{}
		g        = map[game.StateKey]int{startKey: 0}
		cameFrom = map[game.StateKey]game.StateKey{}
		moveTo   = map[game.StateKey]game.Move{}
		closed   = map[game.StateKey]struct{}{}
		open     = &frontier{}
		seq      = 0
	)
	heap.Push(open, &entry{state: start, key: startKey, priority: h(start, goal)})

	for open.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return Path{}, false, err
		}
		current := heap.Pop(open).(*entry)
		if _, done := closed[current.key]; done || current.g > g[current.key] {
			continue // Stale entry
		}
		closed[current.key] = struct{}{}
		s.metrics.AddExpansion()

		if current.key == goalKey {
			return Path{Moves: reconstruct(cameFrom, moveTo, current.key), Cost: current.g}, true, nil
		}

		for t := range current.state.Moves() {
			s.metrics.AddGenerated(1)
			key := t.State.Key()
			if _, done := closed[key]; done {
				s.metrics.AddPruned()
				continue
			}
			cost := current.g + t.Cost
			if known, ok := g[key]; ok && cost >= known {
				s.metrics.AddPruned()
				continue
			}
			if !safe.safe(t.State, key) {
				s.metrics.AddPruned()
				continue
			}

			g[key] = cost
			cameFrom[key] = current.key
			moveTo[key] = t.Move
			seq++
			heap.Push(open, &entry{
				state:    t.State,
				key:      key,
				g:        cost,
				priority: cost + h(t.State, goal),
				seq:      seq,
			})
		}
	}
	return Path{}, false, nil
}

func reconstruct(cameFrom map[game.StateKey]game.StateKey, moveTo map[game.StateKey]game.Move, key game.StateKey) []game.Move {
	moves := []game.Move{}
	for {
		prev, ok := cameFrom[key]
		if !ok {
			break
		}
		moves = append(moves, moveTo[key])
		key = prev
	}
	slices.Reverse(moves)
	return moves
}
