package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func totalBoardTokens(b *Board) int {
	total := 0
	for p := PlayerID(1); p <= MaxPlayers; p++ {
		total += b.TotalTokens(p)
	}
	return total
}

func TestNewBoard(t *testing.T) {
	t.Run("every cell starts unowned and empty", func(t *testing.T) {
		b := NewBoard(10)

		require.Equal(t, 10, b.Size())
		for x := 0; x < 10; x++ {
			for y := 0; y < 10; y++ {
				cell, ok := b.At(Move{x, y})
				require.True(t, ok)
				require.Equal(t, Cell{}, cell)
			}
		}
	})

	t.Run("clamps non-positive sizes", func(t *testing.T) {
		require.Equal(t, 1, NewBoard(0).Size())
		require.Equal(t, 1, NewBoard(-3).Size())
	})
}

func TestPlaceInitial(t *testing.T) {
	t.Run("placing on an unowned cell sets the initial count", func(t *testing.T) {
		b := NewBoard(5)

		require.True(t, b.PlaceInitial(Move{2, 3}, 1))

		cell, _ := b.At(Move{2, 3})
		require.Equal(t, Cell{Owner: 1, Count: InitialCount}, cell)
	})

	t.Run("placing on an owned cell fails and leaves it unchanged", func(t *testing.T) {
		b := NewBoard(5)
		require.True(t, b.PlaceInitial(Move{2, 3}, 1))

		require.False(t, b.PlaceInitial(Move{2, 3}, 2), "Rival cannot take an owned cell")
		require.False(t, b.PlaceInitial(Move{2, 3}, 1), "Owner cannot place twice on the same cell")

		cell, _ := b.At(Move{2, 3})
		require.Equal(t, Cell{Owner: 1, Count: InitialCount}, cell)
	})

	t.Run("rejects out-of-bounds coordinates and invalid players", func(t *testing.T) {
		b := NewBoard(3)
		before := b.Fingerprint()

		require.False(t, b.PlaceInitial(Move{3, 0}, 1))
		require.False(t, b.PlaceInitial(Move{0, -1}, 1))
		require.False(t, b.PlaceInitial(Move{0, 0}, NoPlayer))
		require.False(t, b.PlaceInitial(Move{0, 0}, MaxPlayers+1))
		require.Equal(t, before, b.Fingerprint())
	})
}

func TestApplyMove(t *testing.T) {
	t.Run("rejects a cell owned by another player", func(t *testing.T) {
		b := NewBoard(4)
		require.True(t, b.Set(Move{1, 1}, Cell{Owner: 2, Count: 1}))
		before := b.Fingerprint()

		require.False(t, b.ApplyMove(Move{1, 1}, 1, true))
		require.Equal(t, before, b.Fingerprint())
	})

	t.Run("empty cells need the first-move permission", func(t *testing.T) {
		b := NewBoard(4)

		require.False(t, b.ApplyMove(Move{0, 0}, 1, false))
		cell, _ := b.At(Move{0, 0})
		require.Equal(t, Cell{}, cell)

		require.True(t, b.ApplyMove(Move{0, 0}, 1, true))
		cell, _ = b.At(Move{0, 0})
		require.Equal(t, Cell{Owner: 1, Count: 1}, cell)
	})

	t.Run("stacking on an own cell adds exactly one token", func(t *testing.T) {
		for count := 1; count < InitialCount; count++ {
			b := NewBoard(4)
			require.True(t, b.Set(Move{2, 2}, Cell{Owner: 1, Count: count}))
			require.True(t, b.Set(Move{0, 0}, Cell{Owner: 2, Count: 2}))
			before := totalBoardTokens(b)

			require.True(t, b.ApplyMove(Move{2, 2}, 1, false))

			cell, _ := b.At(Move{2, 2})
			require.Equal(t, Cell{Owner: 1, Count: count + 1}, cell)
			require.Equal(t, before+1, totalBoardTokens(b))
		}
	})

	t.Run("a cell at three explodes onto its neighbors", func(t *testing.T) {
		b := NewBoard(5)
		center := Move{2, 2}
		require.True(t, b.Set(center, Cell{Owner: 1, Count: 3}))
		require.True(t, b.Set(Move{1, 2}, Cell{Owner: 2, Count: 2}))
		require.True(t, b.Set(Move{2, 1}, Cell{Owner: 1, Count: 1}))

		require.True(t, b.ApplyMove(center, 1, false))

		cell, _ := b.At(center)
		require.Equal(t, Cell{}, cell, "Exploding cell should be emptied")
		expected := map[Move]Cell{
			{1, 2}: {Owner: 1, Count: 3},
			{2, 1}: {Owner: 1, Count: 2},
			{3, 2}: {Owner: 1, Count: 1},
			{2, 3}: {Owner: 1, Count: 1},
		}
		for m, want := range expected {
			got, _ := b.At(m)
			require.Equal(t, want, got, "neighbor %v", m)
		}
	})

	t.Run("an interior explosion redistributes tokens without creating any", func(t *testing.T) {
		b := NewBoard(5)
		require.True(t, b.Set(Move{2, 2}, Cell{Owner: 1, Count: 3}))
		require.True(t, b.Set(Move{4, 4}, Cell{Owner: 2, Count: 1}))
		before := totalBoardTokens(b)

		require.True(t, b.ApplyMove(Move{2, 2}, 1, false))

		require.Equal(t, before+1-CriticalCount+4, totalBoardTokens(b))
	})

	t.Run("a corner explosion loses the tokens that fall off the board", func(t *testing.T) {
		b := NewBoard(3)
		require.True(t, b.Set(Move{0, 0}, Cell{Owner: 1, Count: 3}))
		before := totalBoardTokens(b)

		affected, ok := b.ApplyMoveTrace(Move{0, 0}, 1, false)

		require.True(t, ok)
		require.ElementsMatch(t, []Move{{1, 0}, {0, 1}}, affected)
		require.Equal(t, before+1-CriticalCount+2, totalBoardTokens(b))
	})

	t.Run("explosions chain into neighbors that reach the critical count", func(t *testing.T) {
		b := NewBoard(3)
		require.True(t, b.Set(Move{0, 0}, Cell{Owner: 1, Count: 3}))
		require.True(t, b.Set(Move{1, 0}, Cell{Owner: 2, Count: 3}))

		affected, ok := b.ApplyMoveTrace(Move{0, 0}, 1, false)

		require.True(t, ok)
		require.Greater(t, len(affected), 2, "Second explosion should be traced")
		captured, _ := b.At(Move{2, 0})
		require.Equal(t, Cell{Owner: 1, Count: 1}, captured)
		captured, _ = b.At(Move{1, 1})
		require.Equal(t, Cell{Owner: 1, Count: 1}, captured)
		require.True(t, b.HasLost(2), "Rival's only cell was captured and exploded")
	})

	t.Run("a full board of one player settles", func(t *testing.T) {
		b := NewBoard(6)
		for x := 0; x < 6; x++ {
			for y := 0; y < 6; y++ {
				require.True(t, b.Set(Move{x, y}, Cell{Owner: 1, Count: 3}))
			}
		}

		require.True(t, b.ApplyMove(Move{2, 3}, 1, false))

		for x := 0; x < 6; x++ {
			for y := 0; y < 6; y++ {
				cell, _ := b.At(Move{x, y})
				require.Less(t, cell.Count, CriticalCount)
				if cell.Owner == NoPlayer {
					require.Zero(t, cell.Count)
				}
			}
		}
	})

	t.Run("rejects out-of-bounds coordinates", func(t *testing.T) {
		b := NewBoard(2)
		before := b.Fingerprint()

		require.False(t, b.ApplyMove(Move{2, 0}, 1, true))
		require.False(t, b.ApplyMove(Move{-1, 1}, 1, true))
		require.Equal(t, before, b.Fingerprint())
	})
}

func TestLegalMoves(t *testing.T) {
	t.Run("lists own and unowned cells in x-major order", func(t *testing.T) {
		b := NewBoard(2)
		require.True(t, b.Set(Move{0, 1}, Cell{Owner: 2, Count: 1}))
		require.True(t, b.Set(Move{1, 0}, Cell{Owner: 1, Count: 2}))

		require.Equal(t, []Move{{0, 0}, {1, 0}, {1, 1}}, b.LegalMoves(1))
		require.Equal(t, []Move{{0, 0}, {0, 1}, {1, 1}}, b.LegalMoves(2))
	})
}

func TestHasLostAndTotals(t *testing.T) {
	t.Run("a player has lost iff no cell is theirs", func(t *testing.T) {
		b := NewBoard(3)
		require.True(t, b.HasLost(1))

		require.True(t, b.PlaceInitial(Move{1, 1}, 1))
		require.False(t, b.HasLost(1))
		require.True(t, b.HasLost(2))
	})

	t.Run("tokens and cells are counted per owner", func(t *testing.T) {
		b := NewBoard(3)
		require.True(t, b.Set(Move{0, 0}, Cell{Owner: 1, Count: 3}))
		require.True(t, b.Set(Move{0, 1}, Cell{Owner: 1, Count: 2}))
		require.True(t, b.Set(Move{2, 2}, Cell{Owner: 2, Count: 1}))

		require.Equal(t, 5, b.TotalTokens(1))
		require.Equal(t, 1, b.TotalTokens(2))
		require.Equal(t, 2, b.OwnedCells(1))
		require.Zero(t, b.TotalTokens(3))
	})
}

func TestFingerprint(t *testing.T) {
	t.Run("boards with equal cells share a fingerprint regardless of history", func(t *testing.T) {
		direct := NewBoard(3)
		require.True(t, direct.Set(Move{1, 1}, Cell{Owner: 1, Count: 2}))

		played := NewBoard(3)
		require.True(t, played.ApplyMove(Move{1, 1}, 1, true))
		require.True(t, played.ApplyMove(Move{1, 1}, 1, false))

		require.Equal(t, direct.Fingerprint(), played.Fingerprint())
		require.Equal(t, direct.Hash(), played.Hash())
		require.Equal(t, direct.Fingerprint(), direct.Fingerprint())
	})

	t.Run("any differing cell changes the fingerprint", func(t *testing.T) {
		a := NewBoard(3)
		require.True(t, a.Set(Move{1, 1}, Cell{Owner: 1, Count: 2}))
		byCount := a.Clone()
		require.True(t, byCount.Set(Move{1, 1}, Cell{Owner: 1, Count: 3}))
		byOwner := a.Clone()
		require.True(t, byOwner.Set(Move{1, 1}, Cell{Owner: 2, Count: 2}))
		byPosition := NewBoard(3)
		require.True(t, byPosition.Set(Move{1, 2}, Cell{Owner: 1, Count: 2}))

		require.NotEqual(t, a.Fingerprint(), byCount.Fingerprint())
		require.NotEqual(t, a.Fingerprint(), byOwner.Fingerprint())
		require.NotEqual(t, a.Fingerprint(), byPosition.Fingerprint())
	})
}

func TestClone(t *testing.T) {
	t.Run("mutating a clone leaves the source board untouched", func(t *testing.T) {
		b := NewBoard(3)
		require.True(t, b.PlaceInitial(Move{0, 0}, 1))
		clone := b.Clone()

		require.True(t, clone.ApplyMove(Move{0, 0}, 1, false))

		cell, _ := b.At(Move{0, 0})
		require.Equal(t, Cell{Owner: 1, Count: InitialCount}, cell)
		require.NotEqual(t, b.Fingerprint(), clone.Fingerprint())
	})
}

func TestSet(t *testing.T) {
	t.Run("refuses cells that break the settled invariants", func(t *testing.T) {
		b := NewBoard(2)

		require.False(t, b.Set(Move{0, 0}, Cell{Owner: NoPlayer, Count: 1}))
		require.False(t, b.Set(Move{0, 0}, Cell{Owner: 1, Count: CriticalCount}))
		require.False(t, b.Set(Move{0, 0}, Cell{Owner: 1, Count: 0}))
		require.False(t, b.Set(Move{0, 0}, Cell{Owner: MaxPlayers + 1, Count: 1}))
		require.False(t, b.Set(Move{5, 0}, Cell{Owner: 1, Count: 1}))
		require.True(t, b.Set(Move{0, 0}, Cell{}))
	})
}
