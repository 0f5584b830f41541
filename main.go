package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"hinger/config"
	"hinger/experiments"
	"hinger/game"
	"hinger/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Optional YAML config file")
	experiment := flag.String("experiment", "paths", "Experiment to run: paths or matches")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("bad log level")
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch *experiment {
	case "paths":
		runPaths(ctx, cfg)
	case "matches":
		runMatches(ctx, cfg)
	default:
		log.Fatal().Msgf("unknown experiment %q", *experiment)
	}
}

func runPaths(ctx context.Context, cfg *config.Config) {
	pathConfig := experiments.PathConfig{
		StepLimit: cfg.StepLimit,
		MaxDepth:  cfg.MaxDepth,
	}
	if cfg.Strategy != "" {
		strategy, err := searcher.ParseStrategy(cfg.Strategy)
		if err != nil {
			log.Fatal().Err(err).Msg("bad strategy")
		}
		pathConfig.Strategies = []searcher.Strategy{strategy}
	}

	scenarios := experiments.Scenarios()
	if cfg.Scenarios != "" {
		f, err := os.Open(cfg.Scenarios)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open scenarios")
		}
		scenarios, err = experiments.LoadScenarios(f)
		f.Close()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load scenarios")
		}
	}

	summaries, err := experiments.RunPathExperiment(ctx, scenarios, pathConfig, cfg.OutputDir)
	if err != nil {
		log.Fatal().Err(err).Msg("path experiment failed")
	}
	for _, s := range summaries {
		log.Info().Msgf("%-8s | found %d/%d | mean expansions %.1f (sd %.1f) | mean duration %s",
			s.Strategy, s.Found, s.Runs, s.MeanExpansions, s.StdExpansions, s.MeanDuration)
	}
}

func runMatches(ctx context.Context, cfg *config.Config) {
	evaluate, err := game.ParseEvaluation(cfg.Evaluation)
	if err != nil {
		log.Fatal().Err(err).Msg("bad evaluation")
	}
	matchConfig := experiments.MatchConfig{
		Depth:    cfg.Depth,
		Games:    cfg.Games,
		Seed:     cfg.Seed,
		Evaluate: evaluate,
	}

	records, err := experiments.RunMatchExperiment(ctx, matchConfig, cfg.OutputDir)
	if err != nil {
		log.Fatal().Err(err).Msg("match experiment failed")
	}
	wins := map[string]int{}
	for _, r := range records {
		wins[r.Winner]++
	}
	draws := wins[""]
	delete(wins, "")
	log.Info().Msgf("played %d games: %d draws, wins %v", len(records), draws, wins)
}
