package game

import "fmt"

type Phase int

const (
	PlacementPhase Phase = iota
	PlayPhase
	OverPhase
)

func (p Phase) String() string {
	switch p {
	case PlacementPhase:
		return "placement"
	case PlayPhase:
		return "play"
	case OverPhase:
		return "over"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Match tracks a game from placement to the last surviving player.
type Match struct {
	Board   *Board
	Players int      // number of participants
	Current PlayerID // player to act
	Phase   Phase
	Winner  PlayerID // NoPlayer until the game is over
	Turn    int      // in-game moves played, placement excluded
}

// NewMatch starts a match in the placement phase with player 1 to act.
func NewMatch(size, players int) (*Match, error) {
	if players < MinPlayers || players > MaxPlayers {
		return nil, fmt.Errorf("%w: %d players, want %d to %d", ErrInvalidConfig, players, MinPlayers, MaxPlayers)
	}
	if size < 1 || size*size < players {
		return nil, fmt.Errorf("%w: board size %d cannot seat %d players", ErrInvalidConfig, size, players)
	}
	return &Match{
		Board:   NewBoard(size),
		Players: players,
		Current: 1,
		Phase:   PlacementPhase,
	}, nil
}

// Place claims the current player's starting cell. Once every player has
// placed, play starts with player 1.
func (mt *Match) Place(m Move) error {
	if mt.Phase != PlacementPhase {
		return fmt.Errorf("%w: place during %s", ErrWrongPhase, mt.Phase)
	}
	if !mt.Board.PlaceInitial(m, mt.Current) {
		return fmt.Errorf("%w: player %d cannot place at (%d,%d)", ErrInvalidMove, mt.Current, m.X, m.Y)
	}

	if int(mt.Current) == mt.Players {
		mt.Phase = PlayPhase
		mt.Current = 1
		return nil
	}
	mt.Current++
	return nil
}

// Play applies a move for the current player and ends the turn.
func (mt *Match) Play(m Move) error {
	_, err := mt.PlayTrace(m)
	return err
}

// PlayTrace is Play that also returns the cells hit by the explosion.
func (mt *Match) PlayTrace(m Move) ([]Move, error) {
	if mt.Phase != PlayPhase {
		return nil, fmt.Errorf("%w: play during %s", ErrWrongPhase, mt.Phase)
	}
	affected, ok := mt.Board.ApplyMoveTrace(m, mt.Current, false)
	if !ok {
		return nil, fmt.Errorf("%w: player %d cannot play at (%d,%d)", ErrInvalidMove, mt.Current, m.X, m.Y)
	}
	mt.EndTurn()
	return affected, nil
}

// EndTurn settles the game after a move was applied to Board by the current
// player: it declares a winner when one player is left, otherwise rotates.
func (mt *Match) EndTurn() {
	if mt.Phase != PlayPhase {
		return
	}
	mt.Turn++

	alive := mt.Alive()
	switch len(alive) {
	case 0:
		mt.Phase = OverPhase
		return
	case 1:
		mt.Phase = OverPhase
		mt.Winner = alive[0]
		return
	}
	mt.NextPlayer()
}

// NextPlayer moves Current to the next player still owning a cell. After one
// full round without finding one, Current is back where it started.
func (mt *Match) NextPlayer() PlayerID {
	for i := 0; i < mt.Players; i++ {
		mt.Current = mt.Current%PlayerID(mt.Players) + 1
		if !mt.Board.HasLost(mt.Current) {
			break
		}
	}
	return mt.Current
}

// Alive lists the players that still own at least one cell.
func (mt *Match) Alive() []PlayerID {
	var alive []PlayerID
	for p := PlayerID(1); int(p) <= mt.Players; p++ {
		if !mt.Board.HasLost(p) {
			alive = append(alive, p)
		}
	}
	return alive
}

// Scores returns every player's token total.
func (mt *Match) Scores() map[PlayerID]int {
	scores := make(map[PlayerID]int, mt.Players)
	for p := PlayerID(1); int(p) <= mt.Players; p++ {
		scores[p] = mt.Board.TotalTokens(p)
	}
	return scores
}
