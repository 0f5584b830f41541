package agent

import (
	"math"

	"hinger/game"
)

var (
	negInf = math.Inf(-1)
	posInf = math.Inf(1)
)

// Minimax returns the best move for the side to move in state, searching depth
// plies. The first move reaching the best score wins ties.
func (a *Agent) Minimax(state *game.GridState, depth int, maximizing bool) Decision {
	a.metrics.AddExpansion()
	if depth <= 0 || IsTerminal(state) {
		return Decision{Score: a.Evaluate(state)}
	}

	hingers := hingerSet(state)
	best := Decision{Score: posInf}
	if maximizing {
		best.Score = negInf
	}
	for t := range state.Moves() {
		a.metrics.AddGenerated(1)
		var score float64
		if hingers[t.Move] {
			score = winFor(maximizing, depth)
		} else {
			score = a.Minimax(t.State, depth-1, !maximizing).Score
		}
		if !best.Found || improves(score, best.Score, maximizing) {
			best = Decision{Score: score, Move: t.Move, Found: true}
		}
	}
	return best
}

func improves(score, best float64, maximizing bool) bool {
	if maximizing {
		return score > best
	}
	return score < best
}

// winFor scores a hinger removal by the side to move with depth plies left.
func winFor(maximizing bool, depth int) float64 {
	score := WinScore + float64(depth)
	if maximizing {
		return score
	}
	return -score
}

func hingerSet(state *game.GridState) map[game.Move]bool {
	hingers := state.Hingers()
	set := make(map[game.Move]bool, len(hingers))
	for _, m := range hingers {
		set[m] = true
	}
	return set
}
