package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"

	"janggi/internal/session"
)

type config struct {
	Games    int
	MaxMoves int
	Seed     int64
	LogDir   string
	Level    string
}

func parseFlags() config {
	var cfg config
	flag.IntVar(&cfg.Games, "games", 10, "number of games to play")
	flag.IntVar(&cfg.MaxMoves, "maxmoves", 400, "max plies per game before it is scored unfinished")
	flag.Int64Var(&cfg.Seed, "seed", time.Now().UnixNano(), "random seed")
	flag.StringVar(&cfg.LogDir, "logdir", "", "directory for <game-id>.moves files, empty to disable")
	flag.StringVar(&cfg.Level, "level", "warn", "log level (debug, info, warn, error)")
	flag.Parse()
	return cfg
}

func main() {
	cfg := parseFlags()
	log.SetHandler(cli.New(os.Stderr))
	lvl, err := log.ParseLevel(cfg.Level)
	if err != nil {
		log.WithError(err).WithField("level", cfg.Level).Fatal("invalid log level")
	}
	log.SetLevel(lvl)

	m := session.NewManager(session.Config{LogDir: cfg.LogDir})
	rng := rand.New(rand.NewSource(cfg.Seed))

	var tally Tally
	start := time.Now()
	for n := 0; n < cfg.Games; n++ {
		res, err := playGame(m, rng, cfg.MaxMoves)
		if err != nil {
			log.WithError(err).WithField("game", n+1).Fatal("selfplay failed")
		}
		tally.Add(res)
		fmt.Printf("Game %d: %s after %d plies\n", n+1, res.Status, res.Plies)
	}
	elapsed := time.Since(start)

	fmt.Printf("\n=== Final Score (seed %d) ===\n", cfg.Seed)
	fmt.Printf("Blue: %d\nRed: %d\nUnfinished: %d\n", tally.BlueWon, tally.RedWon, tally.Unfinished)
	if l, err := tally.LengthStats(); err != nil {
		log.WithError(err).Warn("no game lengths")
	} else {
		fmt.Printf("Plies: mean %.1f, median %.1f, p80 %.1f, max %.0f\n", l.Mean, l.Median, l.P80, l.Max)
	}
	if elapsed > 0 {
		fmt.Printf("%d plies in %v (%.0f plies/s)\n", tally.Plies, elapsed, float64(tally.Plies)/elapsed.Seconds())
	}
}
