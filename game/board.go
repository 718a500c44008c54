package game

import (
	"encoding/binary"
	"hash/fnv"
	"strconv"
	"strings"
)

// Cell is one grid square. An unowned cell always holds zero tokens.
type Cell struct {
	Owner PlayerID
	Count int
}

// Board is a square grid of cells, mutated in place by moves and explosions.
// A board belongs to a single holder; search works on clones.
type Board struct {
	size  int
	cells []Cell // indexed by x*size + y
}

// NewBoard creates an empty board of the given side length.
func NewBoard(size int) *Board {
	if size < 1 {
		size = 1
	}
	return &Board{
		size:  size,
		cells: make([]Cell, size*size),
	}
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) InBounds(m Move) bool {
	return m.X >= 0 && m.X < b.size && m.Y >= 0 && m.Y < b.size
}

func (b *Board) index(m Move) int {
	return m.X*b.size + m.Y
}

// At returns the cell at m, or false when m is off the board.
func (b *Board) At(m Move) (Cell, bool) {
	if !b.InBounds(m) {
		return Cell{}, false
	}
	return b.cells[b.index(m)], true
}

// Set overwrites the cell at m with a settled cell, for setting up positions.
// Unowned cells must be empty and counts must stay below CriticalCount.
func (b *Board) Set(m Move, c Cell) bool {
	if !b.InBounds(m) || c.Count < 0 || c.Count >= CriticalCount {
		return false
	}
	if c.Owner == NoPlayer && c.Count != 0 {
		return false
	}
	if c.Owner != NoPlayer && (!c.Owner.Valid() || c.Count == 0) {
		return false
	}
	b.cells[b.index(m)] = c
	return true
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{size: b.size, cells: cells}
}

// Neighbors returns the orthogonal in-bounds neighbors of m.
func (b *Board) Neighbors(m Move) []Move {
	neighbors := make([]Move, 0, 4)
	for _, n := range []Move{{m.X - 1, m.Y}, {m.X + 1, m.Y}, {m.X, m.Y - 1}, {m.X, m.Y + 1}} {
		if b.InBounds(n) {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// PlaceInitial claims an unowned cell for player with InitialCount tokens.
func (b *Board) PlaceInitial(m Move, player PlayerID) bool {
	if !b.InBounds(m) || !player.Valid() {
		return false
	}
	cell := &b.cells[b.index(m)]
	if cell.Owner != NoPlayer {
		return false
	}
	cell.Owner = player
	cell.Count = InitialCount
	return true
}

// ApplyMove adds a token for player at m. Empty cells are only playable with
// allowEmpty, which is reserved for a player's first move. Returns false, with
// the board untouched, when the move is rejected.
func (b *Board) ApplyMove(m Move, player PlayerID, allowEmpty bool) bool {
	_, ok := b.ApplyMoveTrace(m, player, allowEmpty)
	return ok
}

// ApplyMoveTrace is ApplyMove that also returns every cell hit by the chain
// explosion, in the order they were hit.
func (b *Board) ApplyMoveTrace(m Move, player PlayerID, allowEmpty bool) ([]Move, bool) {
	if !b.InBounds(m) || !player.Valid() {
		return nil, false
	}
	cell := &b.cells[b.index(m)]
	if cell.Owner != NoPlayer && cell.Owner != player {
		return nil, false
	}
	if cell.Owner == NoPlayer {
		if !allowEmpty {
			return nil, false
		}
		cell.Owner = player
		cell.Count = 1
		return nil, true
	}

	cell.Count++
	if cell.Count < CriticalCount {
		return nil, true
	}
	*cell = Cell{}
	return b.explode(m, player), true
}

// explode spreads one token to each neighbor of origin, capturing it for
// player. Neighbors reaching CriticalCount are emptied and explode in turn.
// Tokens leak off the board edges, so the cascade always settles.
func (b *Board) explode(origin Move, player PlayerID) []Move {
	var affected []Move
	stack := []Move{origin}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, n := range b.Neighbors(current) {
			cell := &b.cells[b.index(n)]
			cell.Owner = player
			cell.Count++
			affected = append(affected, n)

			if cell.Count >= CriticalCount {
				*cell = Cell{}
				stack = append(stack, n)
			}
		}
	}
	return affected
}

// LegalMoves lists the cells owned by player or by nobody. Callers filter
// empty cells themselves unless the first-move exception applies.
func (b *Board) LegalMoves(player PlayerID) []Move {
	var moves []Move
	for x := 0; x < b.size; x++ {
		for y := 0; y < b.size; y++ {
			owner := b.cells[x*b.size+y].Owner
			if owner == NoPlayer || owner == player {
				moves = append(moves, Move{X: x, Y: y})
			}
		}
	}
	return moves
}

// HasLost reports whether player owns no cell. Only meaningful once the
// player has completed placement.
func (b *Board) HasLost(player PlayerID) bool {
	for _, cell := range b.cells {
		if cell.Owner == player {
			return false
		}
	}
	return true
}

// TotalTokens sums the tokens on every cell owned by player.
func (b *Board) TotalTokens(player PlayerID) int {
	total := 0
	for _, cell := range b.cells {
		if cell.Owner == player {
			total += cell.Count
		}
	}
	return total
}

// OwnedCells counts the cells owned by player.
func (b *Board) OwnedCells(player PlayerID) int {
	owned := 0
	for _, cell := range b.cells {
		if cell.Owner == player {
			owned++
		}
	}
	return owned
}

func (b *Board) Fingerprint() Fingerprint {
	buf := make([]byte, 0, 2*len(b.cells))
	for _, cell := range b.cells {
		buf = append(buf, byte(cell.Owner), byte(cell.Count))
	}
	return Fingerprint(buf)
}

func (b *Board) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(b.size))
	for _, cell := range b.cells {
		binary.Write(hasher, binary.LittleEndian, int64(cell.Owner))
		binary.Write(hasher, binary.LittleEndian, int64(cell.Count))
	}

	return StateHash(hasher.Sum64())
}

// String renders one row per y, cells as owner:count, "." for empty.
func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			cell := b.cells[x*b.size+y]
			if cell.Owner == NoPlayer {
				sb.WriteString(" . ")
				continue
			}
			sb.WriteString(strconv.Itoa(int(cell.Owner)))
			sb.WriteByte(':')
			sb.WriteString(strconv.Itoa(cell.Count))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
