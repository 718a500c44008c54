package searcher

import "colorwars/game"

// alphaBeta returns the minimax score of board for player against opponent,
// searched depth plies deep, and the move reaching it. Scores fall outside
// (alpha, beta) only as bounds (fail-soft). found is false at leaves.
func (b *Bot) alphaBeta(board *game.Board, player, opponent game.PlayerID, depth int, maximizing bool, alpha, beta int, allowEmpty bool) (int, game.Move, bool) {
	if depth == 0 {
		return Evaluate(board, player, opponent), game.Move{}, false
	}

	key := cacheKey{
		fingerprint: board.Fingerprint(),
		player:      player,
		opponent:    opponent,
		depth:       depth,
		maximizing:  maximizing,
		allowEmpty:  allowEmpty,
	}
	if e, ok := b.cache.lookup(key); ok && e.usable(alpha, beta) {
		b.metrics.AddCacheHit()
		return e.score, e.move, e.found
	}

	mover := player
	if !maximizing {
		mover = opponent
	}
	moves := playableMoves(board, mover, allowEmpty)
	if len(moves) == 0 {
		score := Evaluate(board, player, opponent)
		b.cache.store(key, cacheEntry{score: score, bound: exact})
		return score, game.Move{}, false
	}

	windowAlpha, windowBeta := alpha, beta
	best := PosInf
	if maximizing {
		best = NegInf
	}
	var bestMove game.Move
	found := false

	for _, move := range moves {
		child := board.Clone()
		if !child.ApplyMove(move, mover, allowEmpty) {
			continue
		}
		b.metrics.AddExplored()

		// Only the root may play onto an empty cell.
		score, _, _ := b.alphaBeta(child, player, opponent, depth-1, !maximizing, alpha, beta, false)

		if maximizing {
			if score > best {
				best, bestMove, found = score, move, true
			}
			alpha = max(alpha, best)
		} else {
			if score < best {
				best, bestMove, found = score, move, true
			}
			beta = min(beta, best)
		}

		if b.pruning && beta <= alpha {
			b.metrics.AddPruned()
			break
		}
	}

	if !found {
		score := Evaluate(board, player, opponent)
		b.cache.store(key, cacheEntry{score: score, bound: exact})
		return score, game.Move{}, false
	}

	entry := cacheEntry{score: best, move: bestMove, found: true, bound: exact}
	if b.pruning {
		if best <= windowAlpha {
			entry.bound = upperBound
		} else if best >= windowBeta {
			entry.bound = lowerBound
		}
	}
	b.cache.store(key, entry)
	return best, bestMove, true
}

// playableMoves filters the legal moves down to those mover can apply.
func playableMoves(board *game.Board, mover game.PlayerID, allowEmpty bool) []game.Move {
	moves := board.LegalMoves(mover)
	if allowEmpty {
		return moves
	}
	owned := moves[:0]
	for _, m := range moves {
		if cell, _ := board.At(m); cell.Owner == mover {
			owned = append(owned, m)
		}
	}
	return owned
}
