package searcher

import "colorwars/game"

// Evaluate scores the board from player's point of view against opponent:
// the token difference, plus weights for loaded cells and chain potential,
// minus a penalty when opponent holds several cells ready to explode.
func Evaluate(board *game.Board, player, opponent game.PlayerID) int {
	base := board.TotalTokens(player) - board.TotalTokens(opponent)

	bonus := 0
	malus := 0
	threats := 0
	size := board.Size()
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			m := game.Move{X: x, Y: y}
			cell, _ := board.At(m)
			if cell.Owner == game.NoPlayer {
				continue
			}

			weight := cellWeight(cell.Count)
			switch cell.Owner {
			case player:
				bonus += weight
			case opponent:
				malus += weight
			}

			if cell.Count != game.CriticalCount-1 {
				continue
			}
			// Ready cells of any rival, not only opponent, count against us.
			chain := ChainBonus * sameOwnerNeighbors(board, m, cell.Owner)
			if cell.Owner == player {
				bonus += chain
			} else {
				malus += chain
			}
			if cell.Owner == opponent {
				threats++
			}
		}
	}

	if threats > 1 {
		malus += ThreatPenalty * threats
	}

	return base + bonus - malus
}

func cellWeight(count int) int {
	switch {
	case count == 3:
		return ReadyBonus
	case count == 2:
		return LoadedBonus
	case count >= 1:
		return HeldBonus
	default:
		return 0
	}
}

func sameOwnerNeighbors(board *game.Board, m game.Move, owner game.PlayerID) int {
	count := 0
	for _, n := range board.Neighbors(m) {
		cell, _ := board.At(n)
		if cell.Owner == owner && cell.Count > 0 {
			count++
		}
	}
	return count
}
