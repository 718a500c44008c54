package searcher

import (
	"colorwars/experiments/metrics"
	"colorwars/game"
	"colorwars/meta"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Option func(b *Bot)

// Bot picks moves with depth-limited minimax and alpha-beta pruning. A Bot
// is not safe for concurrent use.
type Bot struct {
	players   int
	depth     int
	adversary Adversary
	pruning   bool
	cache     *Cache
	metrics   metrics.Collector
	report    metrics.SearchMetric
}

func WithDepth(depth int) Option {
	return func(b *Bot) {
		if depth > 0 {
			b.depth = depth
		}
	}
}

func WithAdversary(adversary Adversary) Option {
	return func(b *Bot) {
		if adversary != nil {
			b.adversary = adversary
		}
	}
}

// WithCache shares a transposition cache between bots.
func WithCache(cache *Cache) Option {
	return func(b *Bot) {
		if cache != nil {
			b.cache = cache
		}
	}
}

// WithoutPruning searches every branch. Results are identical, only slower.
func WithoutPruning() Option {
	return func(b *Bot) {
		b.pruning = false
	}
}

func NewBot(players int, options ...Option) *Bot {
	if players < game.MinPlayers || players > game.MaxPlayers {
		panic(fmt.Sprintf("bot needs %d to %d players, got %d", game.MinPlayers, game.MaxPlayers, players))
	}
	b := &Bot{ // Default values
		players:   players,
		depth:     meta.SearchDepth,
		adversary: NextRival,
		pruning:   true,
		cache:     NewCache(),
		metrics:   metrics.NewCollector(),
	}
	for _, option := range options {
		option(b)
	}
	return b
}

// ChooseMove searches the board for player without modifying it. It returns
// false when player has no move at all.
func (b *Bot) ChooseMove(board *game.Board, player game.PlayerID) (Decision, bool) {
	opponent := b.adversary.Pick(board, player, b.players)
	// A player without cells has not moved yet and may take an empty cell.
	allowEmpty := board.HasLost(player)

	b.metrics.Start(b.depth, b.adversary.Name(), b.pruning)
	score, move, found := b.alphaBeta(board, player, opponent, b.depth, true, NegInf, PosInf, allowEmpty)
	b.report = b.metrics.Complete(score, b.cache.Len())

	log.Debug().
		Int("player", int(player)).
		Int("opponent", int(opponent)).
		Bool("found", found).
		Int("x", move.X).
		Int("y", move.Y).
		Int("score", score).
		Int("explored", b.report.Explored).
		Int("pruned", b.report.Pruned).
		Int("cache_hits", b.report.CacheHits).
		Msg("search complete")

	if !found {
		return Decision{}, false
	}
	return Decision{Move: move, Score: score, AllowEmpty: allowEmpty}, true
}

// Play searches for player and applies the chosen move to board. It reports
// whether a move was applied.
func (b *Bot) Play(board *game.Board, player game.PlayerID) bool {
	decision, ok := b.ChooseMove(board, player)
	if !ok {
		return false
	}
	return board.ApplyMove(decision.Move, player, decision.AllowEmpty)
}

// ClearCache drops every memoized position.
func (b *Bot) ClearCache() {
	b.cache.Clear()
}

func (b *Bot) CacheSize() int {
	return b.cache.Len()
}

// Report returns the statistics of the last search.
func (b *Bot) Report() metrics.SearchMetric {
	return b.report
}

func (b *Bot) Depth() int {
	return b.depth
}

func (b *Bot) Adversary() Adversary {
	return b.adversary
}
