// Package searcher finds safe paths between two boards: sequences of single
// counter removals in which every intermediate state is free of hingers.
//
// Five strategies share one contract (see SearchFunc). A path is only reported
// when both end points are safe. A start equal to the goal yields an empty path
// without expanding anything. Failing to find a path is not an error: the
// boolean result is false and the error is nil.
package searcher

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hinger/game"

	"github.com/rs/zerolog/log"
)

type Strategy string

const (
	BFS     Strategy = "bfs"
	DFS     Strategy = "dfs"
	IDDFS   Strategy = "iddfs"
	AStar   Strategy = "astar"
	MinCost Strategy = "mincost"
)

var ErrUnknownStrategy = errors.New("unknown path search strategy")

// Path is a sequence of moves together with its summed move cost.
type Path struct {
	Moves []game.Move
	Cost  int
}

func (p Path) Len() int {
	return len(p.Moves)
}

// SearchFunc looks for a safe path from start to goal. found is false when no
// path exists within the strategy's bound; err is only set when ctx is done.
type SearchFunc func(ctx context.Context, start, goal *game.GridState, opts ...Option) (path Path, found bool, err error)

var strategies = map[Strategy]SearchFunc{
	BFS:     BreadthFirst,
	DFS:     DepthFirst,
	IDDFS:   IterativeDeepening,
	AStar:   HeuristicBestFirst,
	MinCost: UniformCost,
}

// Strategies lists every supported strategy in a fixed order.
func Strategies() []Strategy {
	return []Strategy{BFS, DFS, IDDFS, AStar, MinCost}
}

// ParseStrategy maps a case-insensitive name onto a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	strategy := Strategy(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := strategies[strategy]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return strategy, nil
}

// Search dispatches to the named strategy.
func Search(ctx context.Context, strategy Strategy, start, goal *game.GridState, opts ...Option) (Path, bool, error) {
	search, ok := strategies[strategy]
	if !ok {
		return Path{}, false, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}

	path, found, err := search(ctx, start, goal, opts...)
	if err != nil {
		return Path{}, false, err
	}
	if found {
		log.Debug().Msgf("%s found a path of %d moves with cost %d", strategy, path.Len(), path.Cost)
	} else {
		log.Debug().Msgf("%s found no path", strategy)
	}
	return path, found, nil
}

// trivial settles the cases every strategy answers without expanding: an
// unsafe end point, mismatched shapes, or start equal to goal.
func trivial(start, goal *game.GridState) (path Path, found bool, done bool) {
	if !start.IsSafe() || !goal.IsSafe() {
		return Path{}, false, true
	}
	if start.Rows() != goal.Rows() || start.Cols() != goal.Cols() {
		return Path{}, false, true
	}
	if start.Key() == goal.Key() {
		return Path{Moves: []game.Move{}}, true, true
	}
	return Path{}, false, false
}

// extend returns a new slice holding moves followed by m.
func extend(moves []game.Move, m game.Move) []game.Move {
	next := make([]game.Move, len(moves), len(moves)+1)
	copy(next, moves)
	return append(next, m)
}

// safety memoizes IsSafe per state key for the duration of one search.
type safety map[game.StateKey]bool

func (s safety) safe(state *game.GridState, key game.StateKey) bool {
	if ok, cached := s[key]; cached {
		return ok
	}
	ok := state.IsSafe()
	s[key] = ok
	return ok
}
