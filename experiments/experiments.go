package experiments

import (
	"colorwars/engine"
	"colorwars/experiments/metrics"
	"colorwars/game"
	"colorwars/meta"
	"colorwars/searcher"
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"
)

var ErrUnknownExperiment = errors.New("unknown experiment")

// Config sets the scale of an experiment run.
type Config struct {
	Games int    // per matchup
	Size  int    // board side length
	Dir   string // output root
	Seed  uint64
}

func DefaultConfig() Config {
	return Config{
		Games: meta.GamesPerMatchup,
		Size:  meta.BoardSize,
		Dir:   "experiments",
		Seed:  1,
	}
}

var experiments = map[string]func(Config) error{
	"depth":     RunDepthExperiment,
	"adversary": RunAdversaryExperiment,
	"pruning":   RunPruningExperiment,
}

// Names lists the experiments Run accepts.
func Names() []string {
	names := make([]string, 0, len(experiments))
	for name := range experiments {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Run(name string, cfg Config) error {
	run, ok := experiments[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownExperiment, name)
	}
	return run(cfg)
}

// RunDepthExperiment pairs deeper bots against a one-ply baseline.
func RunDepthExperiment(cfg Config) error {
	baseline := metrics.AgentConfig{ID: 0, Kind: "bot", Depth: 1, Adversary: searcher.NextRival.Name(), Pruning: true}
	depthConfigs := []metrics.AgentConfig{
		{ID: 1, Kind: "random"},
		{ID: 2, Kind: "bot", Depth: 2, Adversary: baseline.Adversary, Pruning: true},
		{ID: 3, Kind: "bot", Depth: 3, Adversary: baseline.Adversary, Pruning: true},
	}

	matchUps := [][]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}
	return runExperiment("depth", cfg, append(depthConfigs, baseline), matchUps)
}

// RunAdversaryExperiment compares adversary policies in three and four
// player games, where they actually differ.
func RunAdversaryExperiment(cfg Config) error {
	next := metrics.AgentConfig{ID: 1, Kind: "bot", Depth: 2, Adversary: searcher.NextRival.Name(), Pruning: true}
	strongest := metrics.AgentConfig{ID: 2, Kind: "bot", Depth: 2, Adversary: searcher.StrongestRival.Name(), Pruning: true}
	random := metrics.AgentConfig{ID: 3, Kind: "random"}

	matchUps := [][]metrics.AgentConfig{
		{next, strongest, random},
		{next, strongest, next, strongest},
	}
	return runExperiment("adversary", cfg, []metrics.AgentConfig{next, strongest, random}, matchUps)
}

// RunPruningExperiment plays pruned against exhaustive search at equal
// depth. Both pick the same moves, so only the search cost differs.
func RunPruningExperiment(cfg Config) error {
	pruned := metrics.AgentConfig{ID: 1, Kind: "bot", Depth: meta.SearchDepth, Adversary: searcher.NextRival.Name(), Pruning: true}
	exhaustive := pruned
	exhaustive.ID = 2
	exhaustive.Pruning = false

	matchUps := [][]metrics.AgentConfig{{pruned, exhaustive}}
	return runExperiment("pruning", cfg, []metrics.AgentConfig{pruned, exhaustive}, matchUps)
}

func runExperiment(name string, cfg Config, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) error {
	// Run a number of games for each matchup
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchUp := range matchUps {
		log.Info().Msgf("starting matchup %d of %d with agents %+v...", mi+1, len(matchUps), matchUp)

		for i := 0; i < cfg.Games; i++ {
			// Rotate seats so no agent always moves first
			seats := rotate(matchUp, i)
			count++

			winner, gameMetric, moveMetrics, err := runGame(cfg, seats, cfg.Seed+uint64(count)*uint64(len(seats)))
			if err != nil {
				return fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}

			ids := make([]int, len(seats))
			for si, seat := range seats {
				ids[si] = seat.ID
			}
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agents:     ids,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: player %d", mi+1, len(matchUps), i+1, winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(cfg.Dir, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return err
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return err
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored move records")
	return nil
}

// runGame plays one game with seats[i] controlling player i+1.
func runGame(cfg Config, seats []metrics.AgentConfig, seed uint64) (game.PlayerID, metrics.GameMetric, []metrics.MoveMetric, error) {
	agents := make([]engine.Agent, len(seats))
	for i, seat := range seats {
		agent, err := newAgent(seat, len(seats), seed+uint64(i))
		if err != nil {
			return game.NoPlayer, metrics.GameMetric{}, nil, err
		}
		agents[i] = agent
	}
	return engine.LocalEngine(agents, cfg.Size).Run()
}

func newAgent(config metrics.AgentConfig, players int, seed uint64) (engine.Agent, error) {
	switch config.Kind {
	case "random":
		return engine.NewRandomAgent(seed), nil
	case "bot":
		return engine.NewBotAgent(createBot(config, players), seed), nil
	default:
		return nil, fmt.Errorf("unknown agent kind %q", config.Kind)
	}
}

func createBot(config metrics.AgentConfig, players int) *searcher.Bot {
	options := []searcher.Option{}

	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if adversary, err := searcher.ParseAdversary(config.Adversary); err == nil {
		options = append(options, searcher.WithAdversary(adversary))
	}
	if !config.Pruning {
		options = append(options, searcher.WithoutPruning())
	}

	return searcher.NewBot(players, options...)
}

func rotate(seats []metrics.AgentConfig, by int) []metrics.AgentConfig {
	rotated := make([]metrics.AgentConfig, len(seats))
	for i := range seats {
		rotated[i] = seats[(i+by)%len(seats)]
	}
	return rotated
}
