// Package agent chooses moves for a two-player game of counter removal by
// looking a fixed number of plies ahead with minimax or alpha-beta search.
//
// The player who removes the last counter of a hinger wins immediately; if
// the board empties without that happening the game is drawn. Search mirrors
// this rule: a child reached by removing a hinger is a win for the mover and
// is not searched further, and an empty board scores DrawScore. All other
// leaves are scored by the agent's evaluation function from the point of view
// of the maximizing (root) player.
package agent

import (
	"errors"
	"fmt"

	"hinger/experiments/metrics"
	"hinger/game"

	"github.com/rs/zerolog/log"
)

const (
	DefaultDepth = 3
	// WinScore dominates every heuristic value. Wins found closer to the root
	// score higher.
	WinScore  = 1e6
	DrawScore = 0.0
)

type Strategy string

const (
	Minimax   Strategy = "minimax"
	AlphaBeta Strategy = "alphabeta"
)

var (
	ErrUnknownStrategy = errors.New("unknown adversarial strategy")
	ErrNoMove          = errors.New("no legal move available")
)

// Decision is the outcome of a search. Found is false when the state has no
// legal move or the search was cut off at depth zero.
type Decision struct {
	Score float64
	Move  game.Move
	Found bool
}

type Option func(a *Agent)

type Agent struct {
	name       string
	depth      int
	evaluate   game.Evaluate
	modes      []Strategy
	metrics    metrics.Collector
	lastMetric metrics.SearchMetric
}

func WithDepth(depth int) Option {
	return func(a *Agent) {
		if depth > 0 {
			a.depth = depth
		}
	}
}

func WithEvaluation(evaluate game.Evaluate) Option {
	return func(a *Agent) {
		if evaluate != nil {
			a.evaluate = evaluate
		}
	}
}

// WithModes sets the strategies the agent supports; the first one is used by FindMove.
func WithModes(modes ...Strategy) Option {
	return func(a *Agent) {
		if len(modes) > 0 {
			a.modes = modes
		}
	}
}

func WithMetrics() Option {
	return func(a *Agent) {
		a.metrics = metrics.NewCollector()
	}
}

func NewAgent(name string, options ...Option) *Agent {
	a := &Agent{ // Default values
		name:     name,
		depth:    DefaultDepth,
		evaluate: game.EvaluateCrowding,
		modes:    []Strategy{Minimax, AlphaBeta},
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(a)
	}
	return a
}

func (a *Agent) Name() string {
	return a.name
}

func (a *Agent) Depth() int {
	return a.depth
}

func (a *Agent) Modes() []Strategy {
	return a.modes
}

func (a *Agent) String() string {
	return fmt.Sprintf("Agent name: %s, depth: %d, modes: %v", a.name, a.depth, a.modes)
}

// LastMetric returns the metrics of the most recent search. They are only
// collected when the agent was built WithMetrics.
func (a *Agent) LastMetric() metrics.SearchMetric {
	return a.lastMetric
}

// IsTerminal reports whether no move can be played from state. Wins are not a
// property of a state alone: they are detected on the move that removes a
// hinger (see game.IsWinningMove).
func IsTerminal(state *game.GridState) bool {
	return state.IsEmpty()
}

// Evaluate scores a non-winning leaf: DrawScore for an empty board, otherwise
// the agent's evaluation function.
func (a *Agent) Evaluate(state *game.GridState) float64 {
	if IsTerminal(state) {
		return DrawScore
	}
	return a.evaluate(state)
}

// Move searches the agent's configured depth with the given strategy.
func (a *Agent) Move(state *game.GridState, strategy Strategy) (Decision, error) {
	return a.decide(state, strategy, a.depth)
}

// FindMove returns the best move under the agent's first mode.
func (a *Agent) FindMove(state *game.GridState) (game.Move, error) {
	decision, err := a.Move(state, a.modes[0])
	if err != nil {
		return game.Move{}, err
	}
	if !decision.Found {
		return game.Move{}, ErrNoMove
	}
	return decision.Move, nil
}

// Decide runs a one-off search of the given depth.
func Decide(strategy Strategy, state *game.GridState, depth int, options ...Option) (Decision, error) {
	return NewAgent("decide", options...).decide(state, strategy, depth)
}

func (a *Agent) decide(state *game.GridState, strategy Strategy, depth int) (Decision, error) {
	a.metrics.Start(string(strategy))

	var decision Decision
	switch strategy {
	case Minimax:
		decision = a.Minimax(state, depth, true)
	case AlphaBeta:
		decision = a.AlphaBeta(state, negInf, posInf, depth, true)
	default:
		return Decision{}, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}

	a.lastMetric = a.metrics.Complete()
	if decision.Found {
		log.Debug().Msgf("%s chose %s with score %.2f using %s", a.name, decision.Move, decision.Score, strategy)
	}
	return decision, nil
}
