package searcher

import (
	"colorwars/game"
	"math"
)

// Score bounds used as the initial alpha-beta window. Evaluations never reach them.
const (
	NegInf = math.MinInt
	PosInf = math.MaxInt
)

// Adversary picks the rival that minimizing plies play for. The search is
// two-sided, so with more than two players one rival has to stand in for all.
type Adversary interface {
	Name() string
	Pick(board *game.Board, player game.PlayerID, players int) game.PlayerID
}

// Decision is the outcome of a root search.
type Decision struct {
	Move       game.Move
	Score      int
	AllowEmpty bool // the move targets an empty cell under the first-move exception
}
