package searcher

import (
	"context"
	"testing"

	"hinger/experiments/metrics"
	"hinger/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

var block = [][]int{
	{1, 1, 0},
	{1, 1, 0},
	{0, 0, 0},
}

type scenario struct {
	name     string
	start    [][]int
	goal     [][]int
	wantLen  int
	wantCost int
}

// Every safe path in these scenarios has the same length and cost.
var uniformScenarios = []scenario{
	{
		name:     "block to corner",
		start:    block,
		goal:     [][]int{{1, 1, 0}, {1, 0, 0}, {0, 0, 0}},
		wantLen:  1,
		wantCost: 4,
	},
	{
		name:     "block to diagonal",
		start:    block,
		goal:     [][]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 0}},
		wantLen:  2,
		wantCost: 7,
	},
	{
		name:     "block to empty",
		start:    block,
		goal:     [][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}},
		wantLen:  4,
		wantCost: 10,
	},
	{
		name:     "stacked block",
		start:    [][]int{{2, 2, 0}, {2, 2, 0}, {0, 0, 0}},
		goal:     block,
		wantLen:  4,
		wantCost: 16,
	},
	{
		name:     "two regions",
		start:    [][]int{{1, 1, 0}, {1, 1, 0}, {0, 0, 0}, {1, 2, 1}},
		goal:     [][]int{{1, 1, 0}, {1, 0, 0}, {0, 0, 0}, {1, 0, 0}},
		wantLen:  4,
		wantCost: 10,
	},
}

func requireValidPath(t *testing.T, start, goal *game.GridState, path Path) {
	t.Helper()
	end, err := ApplyMoves(start, path.Moves)
	require.NoError(t, err)
	require.True(t, end.Equal(goal), "Path should end at the goal, got:\n%s", end)

	safe, err := IsSafePath(start, path.Moves)
	require.NoError(t, err)
	require.True(t, safe, "Every state on the path should be safe")

	cost, err := PathCost(start, path.Moves)
	require.NoError(t, err)
	require.Equal(t, cost, path.Cost, "Reported cost should match the replayed cost")
}

func TestSearchUniformScenarios(t *testing.T) {
	for _, sc := range uniformScenarios {
		start := game.MustGridState(sc.start)
		goal := game.MustGridState(sc.goal)
		require.True(t, start.IsSafe(), sc.name)
		require.True(t, goal.IsSafe(), sc.name)

		for _, strategy := range Strategies() {
			t.Run(sc.name+"/"+string(strategy), func(t *testing.T) {
				path, found, err := Search(context.Background(), strategy, start, goal)
				require.NoError(t, err)
				require.True(t, found)
				require.Equal(t, sc.wantLen, path.Len())
				require.Equal(t, sc.wantCost, path.Cost)
				requireValidPath(t, start, goal, path)
			})
		}
	}
}

func TestSearchSingleRemoval(t *testing.T) {
	start := game.MustGridState(block)
	goal := game.MustGridState([][]int{{1, 1, 0}, {1, 0, 0}, {0, 0, 0}})
	cost, err := start.MoveCost(1, 1)
	require.NoError(t, err)

	for _, strategy := range []Strategy{BFS, AStar, MinCost} {
		path, found, err := Search(context.Background(), strategy, start, goal)
		require.NoError(t, err)
		require.True(t, found, strategy)
		require.Equal(t, []game.Move{{Row: 1, Col: 1}}, path.Moves, strategy)
		require.Equal(t, cost, path.Cost, strategy)
	}
}

func TestSearchStartEqualsGoal(t *testing.T) {
	empty := [][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}
	for _, strategy := range Strategies() {
		t.Run(string(strategy), func(t *testing.T) {
			collector := metrics.NewCollector()
			path, found, err := Search(context.Background(), strategy,
				game.MustGridState(empty), game.MustGridState(empty), WithMetrics(collector))
			require.NoError(t, err)
			require.True(t, found)
			require.NotNil(t, path.Moves)
			require.Empty(t, path.Moves)
			require.Zero(t, path.Cost)
			require.Zero(t, collector.Complete().Expansions, "Nothing should be expanded")
		})
	}
}

func TestSearchNoPath(t *testing.T) {
	cases := []struct {
		name  string
		start [][]int
		goal  [][]int
	}{
		{
			name:  "goal holds more counters",
			start: [][]int{{1, 1}, {1, 1}},
			goal:  [][]int{{2, 1}, {1, 1}},
		},
		{
			name:  "unsafe start",
			start: [][]int{{1, 1, 1}},
			goal:  [][]int{{0, 0, 0}},
		},
		{
			name:  "unsafe goal",
			start: [][]int{{1, 1, 1}, {1, 1, 1}},
			goal:  [][]int{{1, 1, 1}, {0, 0, 0}},
		},
		{
			name:  "different shapes",
			start: [][]int{{1, 1}, {1, 1}},
			goal:  [][]int{{0, 0, 0}},
		},
		{
			name:  "goal only reachable through a hinger",
			start: [][]int{{1, 1, 1}, {0, 1, 0}},
			goal:  [][]int{{1, 0, 1}, {0, 0, 0}},
		},
	}
	for _, tc := range cases {
		for _, strategy := range Strategies() {
			t.Run(tc.name+"/"+string(strategy), func(t *testing.T) {
				path, found, err := Search(context.Background(), strategy,
					game.MustGridState(tc.start), game.MustGridState(tc.goal))
				require.NoError(t, err)
				require.False(t, found)
				require.Empty(t, path.Moves)
			})
		}
	}
}

func TestSearchUnknownStrategy(t *testing.T) {
	start := game.MustGridState(block)
	_, _, err := Search(context.Background(), Strategy("greedy"), start, start)
	require.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestParseStrategy(t *testing.T) {
	got, err := ParseStrategy(" BFS ")
	require.NoError(t, err)
	require.Equal(t, BFS, got)

	got, err = ParseStrategy("MinCost")
	require.NoError(t, err)
	require.Equal(t, MinCost, got)

	_, err = ParseStrategy("a*")
	require.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestSearchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := game.MustGridState(block)
	goal := game.MustGridState([][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}})
	for _, strategy := range Strategies() {
		_, found, err := Search(ctx, strategy, start, goal)
		require.ErrorIs(t, err, context.Canceled, strategy)
		require.False(t, found, strategy)
	}
}

func TestSearchBounds(t *testing.T) {
	start := game.MustGridState(block)
	goal := game.MustGridState([][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}})

	t.Run("depth-first gives up after the step limit", func(t *testing.T) {
		_, found, err := DepthFirst(context.Background(), start, goal, WithStepLimit(1))
		require.NoError(t, err)
		require.False(t, found)
	})

	t.Run("iterative deepening gives up past the depth ceiling", func(t *testing.T) {
		_, found, err := IterativeDeepening(context.Background(), start, goal, WithMaxDepth(3))
		require.NoError(t, err)
		require.False(t, found)

		path, found, err := IterativeDeepening(context.Background(), start, goal, WithMaxDepth(4))
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, 4, path.Len())
	})

	t.Run("non-positive options keep the defaults", func(t *testing.T) {
		s := newSettings(DFS, []Option{WithStepLimit(0), WithMaxDepth(-1), WithMetrics(nil)})
		require.Equal(t, DefaultStepLimit, s.stepLimit)
		require.Equal(t, DefaultMaxDepth, s.maxDepth)
		require.NotNil(t, s.metrics)
	})
}

func TestSearchMetrics(t *testing.T) {
	start := game.MustGridState(block)
	goal := game.MustGridState([][]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 0}})

	for _, strategy := range Strategies() {
		collector := metrics.NewCollector()
		_, found, err := Search(context.Background(), strategy, start, goal, WithMetrics(collector))
		require.NoError(t, err)
		require.True(t, found)

		metric := collector.Complete()
		require.Equal(t, string(strategy), metric.Strategy)
		require.Positive(t, metric.Expansions, strategy)
		require.GreaterOrEqual(t, metric.Generated, metric.Pruned, strategy)
	}
}

// randomReachable plays a few random safe moves from start.
func randomReachable(rng *rand.Rand, start *game.GridState, steps int) *game.GridState {
	current := start
	for i := 0; i < steps; i++ {
		var safe []*game.GridState
		for tr := range current.Moves() {
			if tr.State.IsSafe() {
				safe = append(safe, tr.State)
			}
		}
		if len(safe) == 0 {
			break
		}
		current = safe[rng.Intn(len(safe))]
	}
	return current
}

func TestMinCostIsCheapest(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	checked := 0
	for i := 0; i < 40; i++ {
		grid := make([][]int, 2)
		for r := range grid {
			grid[r] = make([]int, 3)
			for c := range grid[r] {
				grid[r][c] = rng.Intn(3)
			}
		}
		start := game.MustGridState(grid)
		if !start.IsSafe() {
			continue
		}
		goal := randomReachable(rng, start, 1+rng.Intn(4))

		best, found, err := UniformCost(context.Background(), start, goal)
		require.NoError(t, err)
		require.True(t, found, "Goal was reached by safe moves:\n%s\n->\n%s", start, goal)
		requireValidPath(t, start, goal, best)
		checked++

		bfs, _, err := BreadthFirst(context.Background(), start, goal)
		require.NoError(t, err)

		for _, strategy := range Strategies() {
			path, found, err := Search(context.Background(), strategy, start, goal)
			require.NoError(t, err)
			if !found {
				continue
			}
			requireValidPath(t, start, goal, path)
			require.LessOrEqual(t, best.Cost, path.Cost, "%s beat mincost", strategy)
			if strategy == IDDFS {
				require.Equal(t, bfs.Len(), path.Len(), "Iterative deepening should match breadth-first length")
			}
			require.GreaterOrEqual(t, path.Len(), bfs.Len(), "%s found a shorter path than breadth-first", strategy)
		}
	}
	require.Positive(t, checked)
}

func TestManhattan(t *testing.T) {
	start := game.MustGridState(block)

	cases := []struct {
		name string
		goal [][]int
		want int
	}{
		{"identical", block, 0},
		{"one fewer cell", [][]int{{1, 1, 0}, {1, 0, 0}, {0, 0, 0}}, 1},
		{"diagonal", [][]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 0}}, 3},
		{"empty", [][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}, 4},
		{"shifted", [][]int{{0, 0, 0}, {0, 1, 1}, {0, 1, 1}}, 8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Manhattan(start, game.MustGridState(tc.goal)))
		})
	}
}

func TestPathHelpers(t *testing.T) {
	start := game.MustGridState(block)

	_, err := ApplyMoves(start, []game.Move{{Row: 2, Col: 2}})
	require.ErrorIs(t, err, game.ErrIllegalMove)

	_, err = PathCost(start, []game.Move{{Row: 5, Col: 0}})
	require.ErrorIs(t, err, game.ErrOutOfBounds)

	safe, err := IsSafePath(game.MustGridState([][]int{{1, 1, 1, 1}}), []game.Move{{Row: 0, Col: 0}})
	require.NoError(t, err)
	require.False(t, safe)
}
