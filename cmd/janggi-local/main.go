package main

import (
	"flag"
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"

	"janggi/internal/session"
)

type config struct {
	LogDir   string
	Position string
	Level    string
}

func parseFlags() config {
	var cfg config
	flag.StringVar(&cfg.LogDir, "logdir", ".", "directory for <game-id>.moves files, empty to disable")
	flag.StringVar(&cfg.Position, "position", "", "start position, empty for the standard setup")
	flag.StringVar(&cfg.Level, "level", "info", "log level (debug, info, warn, error)")
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
	s, err := m.NewGame(cfg.Position)
	if err != nil {
		log.WithError(err).Fatal("failed to start game")
	}

	runErr := run(os.Stdin, os.Stdout, m, s.ID)
	if err := m.CloseAll(); err != nil {
		log.WithError(err).Error("close games")
	}
	if runErr != nil {
		log.WithError(runErr).Fatal("error")
	}
}
