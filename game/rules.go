package game

// Outcome of a single move under the match rules.
type Outcome int

const (
	// Continue means the game goes on with the other player to move.
	Continue Outcome = iota
	// MoverWins means the move removed a hinger counter.
	MoverWins
	// Draw means the move emptied the board without hitting a hinger.
	Draw
)

func (o Outcome) String() string {
	switch o {
	case MoverWins:
		return "win"
	case Draw:
		return "draw"
	default:
		return "continue"
	}
}

// IsWinningMove reports whether playing m on gs removes a hinger counter, which
// wins the game for the mover.
func IsWinningMove(gs *GridState, m Move) (bool, error) {
	return gs.IsHinger(m.Row, m.Col)
}

// Resolve plays m on gs and classifies the result. A hinger removal wins even
// if it also empties the board.
func Resolve(gs *GridState, m Move) (*GridState, Outcome, error) {
	win, err := IsWinningMove(gs, m)
	if err != nil {
		return nil, Continue, err
	}
	next, err := gs.Play(m)
	if err != nil {
		return nil, Continue, err
	}
	switch {
	case win:
		return next, MoverWins, nil
	case next.IsEmpty():
		return next, Draw, nil
	default:
		return next, Continue, nil
	}
}
