package main

import (
	"flag"
	"fmt"
	"os"

	"janggi/internal/janggi"
	"janggi/internal/render"
)

func main() {
	position := flag.String("position", "", "position to inspect, empty for the standard setup")
	svgOut := flag.String("svg", "", "also write the board as SVG to this file")
	from := flag.String("from", "", "square whose destinations are listed and highlighted")
	flag.Parse()

	g := janggi.NewGame()
	if *position != "" {
		var err error
		if g, err = janggi.DecodePosition(*position); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	b := g.Board()
	fmt.Print(b.String())
	fmt.Println("FEN:", g.Encode())
	fmt.Println("Turn:", g.Turn())
	for _, team := range []janggi.Team{janggi.Blue, janggi.Red} {
		fmt.Printf("%s: %d pieces, %d legal moves, in check: %v\n",
			team, len(g.Pieces(team)), len(g.LegalMoves(team)), g.IsInCheck(team))
	}

	var dests []janggi.Square
	if *from != "" {
		sq, err := janggi.ParseSquare(*from)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		dests = g.DestinationsFrom(sq)
		fmt.Printf("%s ->", sq)
		for _, d := range dests {
			fmt.Printf(" %s", d)
		}
		fmt.Println()
	}

	if *svgOut != "" {
		f, err := os.Create(*svgOut)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		render.WriteSVG(f, b, dests)
		if err := f.Close(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}
