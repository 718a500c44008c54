package main

import (
	"colorwars/searcher"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	defaults := defaultSettings()

	size := flag.Int("size", defaults.size, "Board side length")
	depth := flag.Int("depth", defaults.depth, "Search depth of the bots")
	adversary := flag.String("adversary", defaults.adversary.Name(), "Rival the bots search against: next or strongest")
	seed := flag.Uint64("seed", defaults.seed, "Seed for bot placements")
	delay := flag.Duration("delay", defaults.botDelay, "Pause before each bot turn")
	logFile := flag.String("log-file", "colorwars.log", "File receiving the logs")
	level := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	rival, err := searcher.ParseAdversary(*adversary)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level %q: %v\n", *level, err)
		os.Exit(2)
	}

	// The screen belongs to the UI, logs go to a file
	f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(f).With().Timestamp().Logger()

	s := settings{
		size:      *size,
		depth:     *depth,
		adversary: rival,
		seed:      *seed,
		botDelay:  *delay,
	}
	p := tea.NewProgram(newModel(s), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error().Err(err).Msg("ui failed")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
