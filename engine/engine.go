package engine

import (
	"colorwars/experiments/metrics"
	"colorwars/game"
	"errors"
)

var ErrNoAgents = errors.New("no agents")

type Runner interface {
	// Run plays a game till there's a winner or the turn cap is reached
	Run() (winner game.PlayerID, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}

// Agent decides for one seat of a match. Agents only read the board, the
// engine applies their choices.
type Agent interface {
	// Place picks a starting cell. False when no cell is free.
	Place(board *game.Board, player game.PlayerID) (game.Move, bool)
	// Play picks an in-game move. False when player has no move.
	Play(board *game.Board, player game.PlayerID) (game.Move, metrics.SearchMetric, bool)
}
