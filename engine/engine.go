package engine

import (
	"context"
	"errors"

	"hinger/experiments/metrics"
	"hinger/game"

	"golang.org/x/exp/rand"
)

var ErrNoLegalMove = errors.New("no legal move")

type Engine interface {
	// Run plays a game until a player wins, the board empties or ctx is done
	Run(ctx context.Context) (Result, metrics.GameMetric, error)
}

// Player picks a move for the side to move. An error forfeits the game.
type Player interface {
	Name() string
	FindMove(state *game.GridState) (game.Move, error)
}

// Instrumented players expose the metrics of their latest search.
type Instrumented interface {
	LastMetric() metrics.SearchMetric
}

type RandomPlayer struct {
	name string
	rng  *rand.Rand
}

func NewRandomPlayer(name string, seed uint64) *RandomPlayer {
	return &RandomPlayer{
		name: name,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (p *RandomPlayer) Name() string {
	return p.name
}

// FindMove picks uniformly among the legal moves. Hingers are not avoided.
func (p *RandomPlayer) FindMove(state *game.GridState) (game.Move, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, ErrNoLegalMove
	}
	return moves[p.rng.Intn(len(moves))], nil
}
