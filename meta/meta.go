// meta/meta.go
package meta

import "time"

// BoardSize is the default side length of the square board.
const BoardSize = 10

// SearchDepth is the default number of plies explored by the search bot.
const SearchDepth = 3

// MaxTurns caps a headless game so a stalled match cannot run forever.
const MaxTurns = 500

// BotDelay paces bot turns in the terminal UI.
const BotDelay = 500 * time.Millisecond

// GamesPerMatchup is the default number of games played per experiment matchup.
const GamesPerMatchup = 10
