package searcher

import (
	"colorwars/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func boardWith(t *testing.T, size int, cells map[game.Move]game.Cell) *game.Board {
	t.Helper()
	b := game.NewBoard(size)
	for m, c := range cells {
		require.True(t, b.Set(m, c), "cannot set %v to %+v", m, c)
	}
	return b
}

func TestEvaluate(t *testing.T) {
	t.Run("empty board is neutral", func(t *testing.T) {
		require.Zero(t, Evaluate(game.NewBoard(4), 1, 2))
	})

	t.Run("adds token difference and per-count weights", func(t *testing.T) {
		b := boardWith(t, 5, map[game.Move]game.Cell{
			{X: 0, Y: 0}: {Owner: 1, Count: 1},
			{X: 4, Y: 4}: {Owner: 1, Count: 2},
			{X: 2, Y: 2}: {Owner: 2, Count: 1},
		})

		// base 3-1, bonus 2+5, malus 2
		require.Equal(t, 2+HeldBonus+LoadedBonus-HeldBonus, Evaluate(b, 1, 2))
	})

	t.Run("rewards ready cells with loaded neighbors", func(t *testing.T) {
		b := boardWith(t, 5, map[game.Move]game.Cell{
			{X: 2, Y: 2}: {Owner: 1, Count: 3},
			{X: 2, Y: 1}: {Owner: 1, Count: 1},
			{X: 1, Y: 2}: {Owner: 1, Count: 2},
			{X: 4, Y: 4}: {Owner: 2, Count: 1},
		})

		// base 6-1, bonus 15+2+5 + chain 2*3, malus 2
		require.Equal(t, 5+ReadyBonus+HeldBonus+LoadedBonus+2*ChainBonus-HeldBonus, Evaluate(b, 1, 2))
	})

	t.Run("one ready rival cell is not yet a threat", func(t *testing.T) {
		b := boardWith(t, 5, map[game.Move]game.Cell{
			{X: 0, Y: 0}: {Owner: 2, Count: 3},
		})

		require.Equal(t, -3-ReadyBonus, Evaluate(b, 1, 2))
	})

	t.Run("penalizes several ready rival cells", func(t *testing.T) {
		b := boardWith(t, 5, map[game.Move]game.Cell{
			{X: 0, Y: 0}: {Owner: 2, Count: 3},
			{X: 4, Y: 4}: {Owner: 2, Count: 3},
		})

		require.Equal(t, -6-2*ReadyBonus-2*ThreatPenalty, Evaluate(b, 1, 2))
	})

	t.Run("third-player chains count against the player but their tokens do not", func(t *testing.T) {
		b := boardWith(t, 5, map[game.Move]game.Cell{
			{X: 2, Y: 2}: {Owner: 3, Count: 3},
			{X: 2, Y: 3}: {Owner: 3, Count: 1},
		})

		require.Equal(t, -ChainBonus, Evaluate(b, 1, 2))
	})

	t.Run("is antisymmetric for two players without threats", func(t *testing.T) {
		b := boardWith(t, 4, map[game.Move]game.Cell{
			{X: 0, Y: 0}: {Owner: 1, Count: 3},
			{X: 0, Y: 1}: {Owner: 1, Count: 2},
			{X: 3, Y: 3}: {Owner: 2, Count: 1},
			{X: 3, Y: 2}: {Owner: 2, Count: 2},
		})

		require.Equal(t, -Evaluate(b, 1, 2), Evaluate(b, 2, 1))
	})
}
