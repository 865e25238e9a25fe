package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"

	"janggi/internal/janggi"
)

type config struct {
	Path     string
	Position string
	Level    string
}

func parseFlags() config {
	var cfg config
	flag.StringVar(&cfg.Position, "position", "", "start position the log was recorded from")
	flag.StringVar(&cfg.Level, "level", "info", "log level (debug, info, warn, error)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <file.moves>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	cfg.Path = flag.Arg(0)
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
	if cfg.Path == "" {
		flag.Usage()
		os.Exit(2)
	}

	f, err := os.Open(cfg.Path)
	if err != nil {
		log.WithError(err).Fatal("open move log")
	}
	defer f.Close()

	moves, err := janggi.ParseMoveLog(f)
	if err != nil {
		log.WithError(err).WithField("path", cfg.Path).Fatal("parse move log")
	}

	g := janggi.NewGame()
	if cfg.Position != "" {
		if g, err = janggi.DecodePosition(cfg.Position); err != nil {
			log.WithError(err).Fatal("decode position")
		}
	}

	n, err := replay(g, moves)
	b := g.Board()
	fmt.Print(b.String())
	fmt.Printf("%s after %d moves, %s to move\n", g.Status(), n, g.Turn())
	if err != nil {
		log.WithError(err).Fatal("replay stopped")
	}
}
