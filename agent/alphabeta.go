package agent

import (
	"hinger/game"
)

// thanks Wikipedia:
/**function alphabeta(node, depth, α, β, maximizingPlayer) is
    if depth = 0 or node is a terminal node then
        return the heuristic value of node
    if maximizingPlayer then
        value := −∞
        for each child of node do
            value := max(value, alphabeta(child, depth − 1, α, β, FALSE))
            α := max(α, value)
            if α ≥ β then
                break (* β cut-off *)
        return value
    else
        value := +∞
        for each child of node do
            value := min(value, alphabeta(child, depth − 1, α, β, TRUE))
            β := min(β, value)
            if β ≤ α then
                break (* α cut-off *)
        return value
**/

// AlphaBeta computes the same decision as Minimax while skipping siblings that
// cannot change the result. Call it with alpha = -Inf and beta = +Inf.
func (a *Agent) AlphaBeta(state *game.GridState, alpha, beta float64, depth int, maximizing bool) Decision {
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
			score = a.AlphaBeta(t.State, alpha, beta, depth-1, !maximizing).Score
		}
		if !best.Found || improves(score, best.Score, maximizing) {
			best = Decision{Score: score, Move: t.Move, Found: true}
		}

		if maximizing {
			alpha = max(alpha, best.Score)
			if alpha >= beta {
				a.metrics.AddPruned()
				break // β cut-off
			}
		} else {
			beta = min(beta, best.Score)
			if beta <= alpha {
				a.metrics.AddPruned()
				break // α cut-off
			}
		}
	}
	return best
}
