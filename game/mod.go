package game

import "errors"

const (
	InitialCount  = 3 // tokens on a starting cell
	CriticalCount = 4 // a cell reaching this many tokens explodes
	MinPlayers    = 2
	MaxPlayers    = 4
)

// PlayerID identifies a player, 1..MaxPlayers. NoPlayer marks an unowned cell.
type PlayerID int

const NoPlayer PlayerID = 0

// Valid reports whether p can own a cell.
func (p PlayerID) Valid() bool {
	return p >= 1 && p <= MaxPlayers
}

// Move is a board coordinate.
type Move struct {
	X int
	Y int
}

// StateHash is a 64-bit digest of a board, for logs and records.
type StateHash uint64

// Fingerprint is the canonical encoding of every cell's (owner, count) pair.
// Two boards share a fingerprint iff all their cells are equal.
type Fingerprint string

var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrInvalidMove   = errors.New("invalid move")
	ErrWrongPhase    = errors.New("action not allowed in this phase")
)
