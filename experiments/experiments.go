package experiments

import (
	"context"
	"fmt"
	"math"
	"time"

	"hinger/agent"
	"hinger/engine"
	"hinger/experiments/metrics"
	"hinger/game"
	"hinger/searcher"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
)

const (
	NumGames = 10 // Per match up
)

// MatchBoard is the default starting board for agent match ups.
var MatchBoard = [][]int{
	{1, 2, 0, 1, 1},
	{0, 1, 1, 0, 2},
	{2, 0, 1, 1, 0},
	{1, 1, 0, 2, 1},
}

type PathConfig struct {
	Strategies []searcher.Strategy // all strategies when empty
	StepLimit  int
	MaxDepth   int
}

type MatchConfig struct {
	Depth    int
	Games    int
	Seed     uint64
	Board    [][]int
	Evaluate game.Evaluate
}

// ComparePaths runs every configured strategy on the same start and goal
// concurrently. Records keep the order of the strategies.
func ComparePaths(ctx context.Context, scenario string, start, goal *game.GridState, cfg PathConfig) ([]metrics.PathRecord, error) {
	strategies := cfg.Strategies
	if len(strategies) == 0 {
		strategies = searcher.Strategies()
	}

	records := make([]metrics.PathRecord, len(strategies))
	g, ctx := errgroup.WithContext(ctx)
	for i, strategy := range strategies {
		g.Go(func() error {
			collector := metrics.NewCollector()
			path, found, err := searcher.Search(ctx, strategy, start, goal,
				searcher.WithStepLimit(cfg.StepLimit),
				searcher.WithMaxDepth(cfg.MaxDepth),
				searcher.WithMetrics(collector))
			if err != nil {
				return fmt.Errorf("%s on %q: %w", strategy, scenario, err)
			}
			records[i] = metrics.PathRecord{
				Scenario:     scenario,
				Found:        found,
				Length:       path.Len(),
				Cost:         path.Cost,
				SearchMetric: collector.Complete(),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}

// Summarize groups records by strategy, in order of first appearance.
func Summarize(records []metrics.PathRecord) []metrics.Summary {
	groups := lo.GroupBy(records, func(r metrics.PathRecord) string { return r.Strategy })
	order := lo.Uniq(lo.Map(records, func(r metrics.PathRecord, _ int) string { return r.Strategy }))

	return lo.Map(order, func(strategy string, _ int) metrics.Summary {
		group := groups[strategy]
		expansions := lo.Map(group, func(r metrics.PathRecord, _ int) float64 { return float64(r.Expansions) })
		durations := lo.Map(group, func(r metrics.PathRecord, _ int) float64 { return float64(r.Duration) })
		found := lo.Filter(group, func(r metrics.PathRecord, _ int) bool { return r.Found })

		meanExp, stdExp := meanStdDev(expansions)
		meanDur, stdDur := meanStdDev(durations)
		summary := metrics.Summary{
			Strategy:       strategy,
			Runs:           len(group),
			Found:          len(found),
			MeanExpansions: meanExp,
			StdExpansions:  stdExp,
			MeanDuration:   time.Duration(meanDur),
			StdDuration:    time.Duration(stdDur),
		}
		if len(found) > 0 {
			summary.MeanCost = stat.Mean(lo.Map(found, func(r metrics.PathRecord, _ int) float64 { return float64(r.Cost) }), nil)
		}
		return summary
	})
}

// meanStdDev reports a zero deviation for fewer than two samples.
func meanStdDev(x []float64) (float64, float64) {
	if len(x) == 0 {
		return 0, 0
	}
	mean, std := stat.MeanStdDev(x, nil)
	if math.IsNaN(std) {
		std = 0
	}
	return mean, std
}

// RunPathExperiment compares the strategies on each scenario and stores the
// records and their summary under root.
func RunPathExperiment(ctx context.Context, scenarios []Scenario, cfg PathConfig, root string) ([]metrics.Summary, error) {
	log.Info().Msgf("starting path experiment over %d scenarios...", len(scenarios))

	var records []metrics.PathRecord
	for i, sc := range scenarios {
		start, goal, err := sc.States()
		if err != nil {
			return nil, err
		}
		log.Info().Msgf("starting scenario %d of %d: %s", i+1, len(scenarios), sc.Name)

		scenarioRecords, err := ComparePaths(ctx, sc.Name, start, goal, cfg)
		if err != nil {
			return nil, err
		}
		for _, r := range scenarioRecords {
			if r.Found {
				log.Info().Msgf("%-8s | found | length %d | cost %d | %d expansions", r.Strategy, r.Length, r.Cost, r.Expansions)
			} else {
				log.Info().Msgf("%-8s | no path | %d expansions", r.Strategy, r.Expansions)
			}
		}
		records = append(records, scenarioRecords...)
	}
	summaries := Summarize(records)

	writer, err := metrics.NewWriter(root, "paths")
	if err != nil {
		return nil, err
	}
	if err := writer.WritePathRecords(records); err != nil {
		return nil, err
	}
	log.Info().Msg("stored path records")
	if err := writer.WriteSummaries(summaries); err != nil {
		return nil, err
	}
	log.Info().Msgf("stored summaries in %s", writer.Dir())

	return summaries, nil
}

type contender struct {
	name  string
	build func(seq int) engine.Player
}

func (cfg MatchConfig) contenders() []contender {
	newAgent := func(strategy agent.Strategy) contender {
		name := string(strategy)
		return contender{name: name, build: func(int) engine.Player {
			return agent.NewAgent(name,
				agent.WithDepth(cfg.Depth),
				agent.WithModes(strategy),
				agent.WithEvaluation(cfg.Evaluate),
				agent.WithMetrics())
		}}
	}
	random := contender{name: "random", build: func(seq int) engine.Player {
		return engine.NewRandomPlayer("random", cfg.Seed+uint64(seq))
	}}
	return []contender{
		newAgent(agent.Minimax),
		newAgent(agent.AlphaBeta),
		random,
	}
}

// RunMatchExperiment plays every pairing of minimax, alpha-beta and a random
// player, alternating who starts, and stores game and move records under root.
func RunMatchExperiment(ctx context.Context, cfg MatchConfig, root string) ([]metrics.MatchRecord, error) {
	if cfg.Games <= 0 {
		cfg.Games = NumGames
	}
	if cfg.Board == nil {
		cfg.Board = MatchBoard
	}
	board, err := game.NewGridState(cfg.Board)
	if err != nil {
		return nil, fmt.Errorf("match board: %w", err)
	}

	contenders := cfg.contenders()
	var matchUps [][2]contender
	for i := range contenders {
		for j := i + 1; j < len(contenders); j++ {
			matchUps = append(matchUps, [2]contender{contenders[i], contenders[j]})
		}
	}

	log.Info().Msg("starting match experiment...")

	count := 0
	matchRecords := []metrics.MatchRecord{}
	moveRecords := []metrics.MoveRecord{}
	for mi, matchUp := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between %s and %s...", mi+1, len(matchUps), matchUp[0].name, matchUp[1].name)

		for i := 0; i < cfg.Games; i++ {
			count++
			first, second := matchUp[0], matchUp[1]
			if i%2 == 1 {
				first, second = second, first
			}

			e := engine.LocalEngine(board, []engine.Player{first.build(count), second.build(count)})
			result, gameMetric, err := e.Run(ctx)
			if err != nil {
				return nil, err
			}

			matchRecords = append(matchRecords, metrics.MatchRecord{
				ID:         count,
				Agent1:     matchUp[0].name,
				Agent2:     matchUp[1].name,
				Reason:     string(result.Reason),
				GameMetric: gameMetric,
			})
			for _, mm := range result.Moves {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}
			log.Info().Msgf("completed matchup %d of %d game %d: %s", mi+1, len(matchUps), i+1, result)
		}
	}

	writer, err := metrics.NewWriter(root, "matches")
	if err != nil {
		return nil, err
	}
	if err := writer.WriteMatchRecords(matchRecords); err != nil {
		return nil, err
	}
	log.Info().Msg("stored match records")
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return nil, err
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())

	return matchRecords, nil
}
