package main

import (
	"colorwars/experiments"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	defaults := experiments.DefaultConfig()

	name := flag.String("experiment", "depth", "Experiment to run: "+strings.Join(experiments.Names(), ", "))
	games := flag.Int("games", defaults.Games, "Number of games per matchup")
	size := flag.Int("size", defaults.Size, "Board side length")
	out := flag.String("out", defaults.Dir, "Directory receiving the experiment records")
	seed := flag.Uint64("seed", defaults.Seed, "Seed of the agents' random sources")
	level := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level %q: %v\n", *level, err)
		os.Exit(2)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := experiments.Config{
		Games: *games,
		Size:  *size,
		Dir:   *out,
		Seed:  *seed,
	}
	if err := experiments.Run(*name, cfg); err != nil {
		log.Fatal().Err(err).Str("experiment", *name).Msg("experiment failed")
	}
}
