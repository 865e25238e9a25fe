package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"janggi/internal/janggi"
)

// TestCase 一个局面和当前行棋方的全部合法落点，给其他实现做对照
type TestCase struct {
	Position string              `json:"position"`
	Turn     string              `json:"turn"`
	InCheck  bool                `json:"in_check"`
	Moves    map[string][]string `json:"moves"`
	Played   string              `json:"played"`
	Status   string              `json:"status"`
}

func main() {
	numGames := flag.Int("games", 10, "number of random games")
	maxMoves := flag.Int("maxmoves", 300, "max plies per game")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	out := flag.String("out", "move_gen_test_data.json", "output file")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	var testCases []TestCase

	for n := 0; n < *numGames; n++ {
		g := janggi.NewGame()
		for ply := 0; ply < *maxMoves && g.Status() == janggi.Unfinished; ply++ {
			turn := g.Turn()
			legalMoves := g.LegalMoves(turn)

			tc := TestCase{
				Position: g.Encode(),
				Turn:     turn.String(),
				InCheck:  g.IsInCheck(turn),
				Moves:    make(map[string][]string),
			}
			for _, mv := range legalMoves {
				from := mv.From.String()
				tc.Moves[from] = append(tc.Moves[from], mv.To.String())
			}

			// 无子可动时停着
			var chosen janggi.Move
			if len(legalMoves) == 0 {
				gen := g.GeneralSquare(turn)
				chosen = janggi.Move{From: gen, To: gen}
			} else {
				chosen = legalMoves[rng.Intn(len(legalMoves))]
			}
			if err := g.Play(turn, chosen.From, chosen.To); err != nil {
				fmt.Fprintf(os.Stderr, "game %d ply %d: %s rejected: %v\n", n+1, ply, chosen, err)
				os.Exit(1)
			}
			tc.Played = chosen.String()
			tc.Status = g.Status().String()
			testCases = append(testCases, tc)
		}
	}

	file, err := json.MarshalIndent(testCases, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, file, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("Generated %d test cases from %d random games (seed %d) to %s\n", len(testCases), *numGames, *seed, *out)
}
