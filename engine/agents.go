package engine

import (
	"colorwars/experiments/metrics"
	"colorwars/game"
	"colorwars/searcher"

	"golang.org/x/exp/rand"
)

// BotAgent plays with the alpha-beta searcher and places at random.
type BotAgent struct {
	Bot *searcher.Bot
	rng *rand.Rand
}

func NewBotAgent(bot *searcher.Bot, seed uint64) *BotAgent {
	return &BotAgent{
		Bot: bot,
		rng: rand.New(rand.NewSource(seed)),
	}
}

func (a *BotAgent) Place(board *game.Board, player game.PlayerID) (game.Move, bool) {
	return randomMove(a.rng, freeCells(board))
}

func (a *BotAgent) Play(board *game.Board, player game.PlayerID) (game.Move, metrics.SearchMetric, bool) {
	decision, ok := a.Bot.ChooseMove(board, player)
	return decision.Move, a.Bot.Report(), ok
}

// RandomAgent plays a uniformly random owned cell.
type RandomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(seed uint64) *RandomAgent {
	return &RandomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent) Place(board *game.Board, player game.PlayerID) (game.Move, bool) {
	return randomMove(a.rng, freeCells(board))
}

func (a *RandomAgent) Play(board *game.Board, player game.PlayerID) (game.Move, metrics.SearchMetric, bool) {
	var owned []game.Move
	for _, m := range board.LegalMoves(player) {
		if cell, _ := board.At(m); cell.Owner == player {
			owned = append(owned, m)
		}
	}
	m, ok := randomMove(a.rng, owned)
	return m, metrics.SearchMetric{}, ok
}

func freeCells(board *game.Board) []game.Move {
	var free []game.Move
	for x := 0; x < board.Size(); x++ {
		for y := 0; y < board.Size(); y++ {
			m := game.Move{X: x, Y: y}
			if cell, _ := board.At(m); cell.Owner == game.NoPlayer {
				free = append(free, m)
			}
		}
	}
	return free
}

func randomMove(rng *rand.Rand, moves []game.Move) (game.Move, bool) {
	if len(moves) == 0 {
		return game.Move{}, false
	}
	return moves[rng.Intn(len(moves))], true
}
