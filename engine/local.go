package engine

import (
	"colorwars/experiments/metrics"
	"colorwars/game"
	"colorwars/meta"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

type Option func(e *Engine)

var _ Runner = (*Engine)(nil)

// Engine runs a match between agents in process.
type Engine struct {
	Match    *game.Match // nil until Run
	agents   []Agent     // agents[i] plays player i+1
	size     int
	maxTurns int
}

// WithMaxTurns caps the in-game moves before the game is called a draw.
func WithMaxTurns(turns int) Option {
	return func(e *Engine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

func LocalEngine(agents []Agent, size int, options ...Option) *Engine {
	e := &Engine{
		agents:   agents,
		size:     size,
		maxTurns: meta.MaxTurns,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the entire game from placement until a winner is found or the
// turn cap is reached, in which case the winner is game.NoPlayer.
func (e *Engine) Run() (game.PlayerID, metrics.GameMetric, []metrics.MoveMetric, error) {
	if len(e.agents) == 0 {
		return game.NoPlayer, metrics.GameMetric{}, nil, ErrNoAgents
	}
	match, err := game.NewMatch(e.size, len(e.agents))
	if err != nil {
		return game.NoPlayer, metrics.GameMetric{}, nil, fmt.Errorf("failed to start match: %w", err)
	}
	e.Match = match

	gameMetric := metrics.GameMetric{
		Players:   match.Players,
		BoardSize: e.size,
		StartTime: time.Now(),
	}
	log.Info().Msgf("starting %d-player game on a %dx%d board", match.Players, e.size, e.size)

	for match.Phase == game.PlacementPhase {
		player := match.Current
		m, ok := e.agents[player-1].Place(match.Board, player)
		if !ok {
			return game.NoPlayer, gameMetric, nil, fmt.Errorf("%w: player %d has nowhere to place", game.ErrInvalidMove, player)
		}
		if err := match.Place(m); err != nil {
			return game.NoPlayer, gameMetric, nil, fmt.Errorf("failed placement: %w", err)
		}
		log.Debug().Int("player", int(player)).Int("x", m.X).Int("y", m.Y).Msg("placed")
	}

	var moveMetrics []metrics.MoveMetric
	for match.Phase == game.PlayPhase && match.Turn < e.maxTurns {
		player := match.Current
		m, search, ok := e.agents[player-1].Play(match.Board, player)
		if !ok {
			// Rotation only lands on players owning a cell, who always have a move
			return game.NoPlayer, gameMetric, moveMetrics, fmt.Errorf("%w: player %d found no move", game.ErrInvalidMove, player)
		}
		if err := match.Play(m); err != nil {
			return game.NoPlayer, gameMetric, moveMetrics, fmt.Errorf("failed turn %d: %w", match.Turn+1, err)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         match.Turn,
			Player:       int(player),
			X:            m.X,
			Y:            m.Y,
			SearchMetric: search,
		})
		log.Debug().
			Int("turn", match.Turn).
			Int("player", int(player)).
			Int("x", m.X).
			Int("y", m.Y).
			Uint64("hash", uint64(match.Board.Hash())).
			Msg("played")
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.Winner = int(match.Winner)
	gameMetric.TotalMoves = match.Turn

	if match.Winner != game.NoPlayer {
		log.Info().Msgf("game ended after %d turns with winner: player %d", match.Turn, match.Winner)
	} else {
		log.Info().Msgf("stopped after %d turns (no winner yet)", match.Turn)
	}
	return match.Winner, gameMetric, moveMetrics, nil
}
