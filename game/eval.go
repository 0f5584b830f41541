package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

var ErrUnknownEvaluation = errors.New("unknown evaluation function")

var evaluations = map[string]Evaluate{
	"crowding": EvaluateCrowding,
	"mobility": EvaluateMobility,
}

// ParseEvaluation looks up an evaluation function by its case-insensitive name.
func ParseEvaluation(name string) (Evaluate, error) {
	evaluate, ok := evaluations[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEvaluation, name)
	}
	return evaluate, nil
}

// EvaluateCrowding weighs how contested the board is: the summed cost of every
// legal move, plus 2 per region, minus 3 per hinger.
func EvaluateCrowding(gs *GridState) float64 {
	active := gs.ActiveCells()
	totalCost := lo.SumBy(active, func(c Cell) int {
		return gs.moveCost(c.Row, c.Col)
	})
	return float64(totalCost + 2*gs.RegionCount() - 3*gs.HingerCount())
}

// EvaluateMobility rewards many regions and many moves that leave hingers
// alone. Hingers and leftover counters count against the position.
func EvaluateMobility(gs *GridState) float64 {
	hingers := gs.Hingers()
	single := lo.CountBy(gs.ActiveCells(), func(c Cell) bool {
		return c.Count == 1
	})
	active := len(gs.LegalMoves())
	quiet := active - len(hingers)

	return 2*float64(gs.RegionCount()) + float64(quiet) + 0.5*float64(active-single) -
		4*float64(len(hingers)) - 0.1*float64(gs.Total())
}
