package searcher

import (
	"colorwars/game"
	"fmt"
)

var (
	// NextRival plays against the next surviving player in turn order. With
	// two players this is always the other player.
	NextRival Adversary = nextRival{}
	// StrongestRival plays against the surviving rival holding the most
	// tokens, ties going to whoever moves first after the acting player.
	StrongestRival Adversary = strongestRival{}
)

var adversaries = map[string]Adversary{
	NextRival.Name():      NextRival,
	StrongestRival.Name(): StrongestRival,
}

// ParseAdversary looks up an adversary policy by name.
func ParseAdversary(name string) (Adversary, error) {
	a, ok := adversaries[name]
	if !ok {
		return nil, fmt.Errorf("unknown adversary %q", name)
	}
	return a, nil
}

type nextRival struct{}

func (nextRival) Name() string { return "next" }

func (nextRival) Pick(board *game.Board, player game.PlayerID, players int) game.PlayerID {
	for _, rival := range rivals(player, players) {
		if !board.HasLost(rival) {
			return rival
		}
	}
	return fallbackRival(player, players)
}

type strongestRival struct{}

func (strongestRival) Name() string { return "strongest" }

func (strongestRival) Pick(board *game.Board, player game.PlayerID, players int) game.PlayerID {
	best := game.NoPlayer
	bestTokens := -1
	for _, rival := range rivals(player, players) {
		if board.HasLost(rival) {
			continue
		}
		if tokens := board.TotalTokens(rival); tokens > bestTokens {
			best = rival
			bestTokens = tokens
		}
	}
	if best == game.NoPlayer {
		return fallbackRival(player, players)
	}
	return best
}

// rivals lists the other players in turn order starting after player.
func rivals(player game.PlayerID, players int) []game.PlayerID {
	out := make([]game.PlayerID, 0, players-1)
	for i := 1; i < players; i++ {
		out = append(out, game.PlayerID((int(player)-1+i)%players+1))
	}
	return out
}

func fallbackRival(player game.PlayerID, players int) game.PlayerID {
	return game.PlayerID(int(player)%players + 1)
}
