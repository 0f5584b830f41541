package engine

import (
	"context"
	"fmt"
	"time"

	"hinger/experiments/metrics"
	"hinger/game"

	"github.com/rs/zerolog/log"
)

// Reason explains how a game ended.
type Reason string

const (
	ReasonHinger  Reason = "hinger"  // the winner removed a hinger counter
	ReasonEmpty   Reason = "empty"   // the board emptied without a hinger removal
	ReasonForfeit Reason = "forfeit" // the loser failed to produce a legal move
)

type Update struct {
	Move  game.Move
	State *game.GridState
	Hash  game.StateHash
}

type Result struct {
	Winner  string // "" for a draw
	Reason  Reason
	Updates []Update
	Moves   []metrics.MoveMetric
}

func (r Result) IsDraw() bool {
	return r.Winner == ""
}

type LocalGame struct {
	State   *game.GridState
	Players []Player
}

func LocalEngine(state *game.GridState, players []Player) *LocalGame {
	if len(players) != 2 {
		panic("need exactly two players")
	}
	return &LocalGame{
		State:   state,
		Players: players,
	}
}

// Run alternates turns starting with the first player. The state is only
// advanced by moves the rules accept.
func (e *LocalGame) Run(ctx context.Context) (Result, metrics.GameMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.Players[0].Name(),
		StartTime:      time.Now(),
	}
	result := Result{}
	finish := func(winner string, reason Reason) (Result, metrics.GameMetric, error) {
		result.Winner = winner
		result.Reason = reason
		gameMetric.Winner = winner
		gameMetric.EndTime = time.Now()
		gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
		gameMetric.TotalMoves = len(result.Updates)
		log.Info().Msgf("game over after %d moves: winner=%q reason=%s", gameMetric.TotalMoves, winner, reason)
		return result, gameMetric, nil
	}

	log.Info().Msgf("%s is starting", e.Players[0].Name())

	turn := 0
	for {
		if e.State.IsEmpty() {
			return finish("", ReasonEmpty)
		}
		if err := ctx.Err(); err != nil {
			return result, gameMetric, err
		}

		mover := e.Players[turn%2]
		opponent := e.Players[(turn+1)%2]

		move, err := mover.FindMove(e.State)
		if err != nil {
			log.Warn().Msgf("%s failed to move: %v", mover.Name(), err)
			return finish(opponent.Name(), ReasonForfeit)
		}

		next, outcome, err := game.Resolve(e.State, move)
		if err != nil {
			log.Warn().Msgf("%s played %s: %v", mover.Name(), move, err)
			return finish(opponent.Name(), ReasonForfeit)
		}

		moveMetric := metrics.MoveMetric{
			Step:      turn + 1,
			Player:    mover.Name(),
			Move:      move.String(),
			StateHash: uint64(next.Hash()),
		}
		if instrumented, ok := mover.(Instrumented); ok {
			moveMetric.SearchMetric = instrumented.LastMetric()
		}
		result.Moves = append(result.Moves, moveMetric)
		result.Updates = append(result.Updates, Update{
			Move:  move,
			State: next,
			Hash:  next.Hash(),
		})
		log.Debug().Msgf("turn %d: %s played %s\n%s", turn+1, mover.Name(), move, next)

		e.State = next
		switch outcome {
		case game.MoverWins:
			return finish(mover.Name(), ReasonHinger)
		case game.Draw:
			return finish("", ReasonEmpty)
		}
		turn++
	}
}

func (r Result) String() string {
	if r.IsDraw() {
		return fmt.Sprintf("draw (%s) after %d moves", r.Reason, len(r.Updates))
	}
	return fmt.Sprintf("%s wins (%s) after %d moves", r.Winner, r.Reason, len(r.Updates))
}

var _ Engine = (*LocalGame)(nil)
