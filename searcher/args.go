package searcher

// Evaluation weights
const (
	ReadyBonus    = 15 // cell at three tokens, one move from exploding
	LoadedBonus   = 5  // cell at two tokens
	HeldBonus     = 2  // cell at one token
	ChainBonus    = 3  // per same-owner neighbor of a ready cell
	ThreatPenalty = 10 // per ready rival cell, once the rival has more than one
)
