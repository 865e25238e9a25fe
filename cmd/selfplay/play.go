package main

import (
	"fmt"
	"math/rand"

	"github.com/montanaflynn/stats"

	"janggi/internal/janggi"
	"janggi/internal/session"
)

type Result struct {
	ID     string
	Status string
	Plies  int
}

type Tally struct {
	BlueWon, RedWon, Unfinished int
	Plies                       int
	Lengths                     []int
}

func (t *Tally) Add(r Result) {
	t.Plies += r.Plies
	t.Lengths = append(t.Lengths, r.Plies)
	switch r.Status {
	case janggi.BlueWon.String():
		t.BlueWon++
	case janggi.RedWon.String():
		t.RedWon++
	default:
		t.Unfinished++
	}
}

// Lengths 对局长度的统计
type Lengths struct {
	Mean, Median, P80, Max float64
}

func (t *Tally) LengthStats() (Lengths, error) {
	data := stats.LoadRawData(t.Lengths)
	var l Lengths
	var err error
	if l.Mean, err = stats.Mean(data); err != nil {
		return Lengths{}, err
	}
	if l.Median, err = stats.Median(data); err != nil {
		return Lengths{}, err
	}
	if l.P80, err = stats.Percentile(data, 80); err != nil {
		return Lengths{}, err
	}
	if l.Max, err = stats.Max(data); err != nil {
		return Lengths{}, err
	}
	return l, nil
}

// playGame 双方都随机选合法走法；无子可动就停着
func playGame(m *session.Manager, rng *rand.Rand, maxMoves int) (Result, error) {
	s, err := m.NewGame("")
	if err != nil {
		return Result{}, err
	}
	defer m.Close(s.ID)

	st, err := m.State(s.ID)
	if err != nil {
		return Result{}, err
	}
	for ply := 0; ply < maxMoves && st.Status == janggi.Unfinished.String(); ply++ {
		g, err := janggi.DecodePosition(st.Position)
		if err != nil {
			return Result{}, err
		}
		turn := g.Turn()
		moves := g.LegalMoves(turn)
		mv := janggi.Move{From: g.GeneralSquare(turn), To: g.GeneralSquare(turn)}
		if len(moves) > 0 {
			mv = moves[rng.Intn(len(moves))]
		}

		res, err := m.Move(s.ID, mv.From.String(), mv.To.String())
		if err != nil {
			return Result{}, err
		}
		if !res.Accepted {
			return Result{}, fmt.Errorf("ply %d: %s rejected: %s", ply+1, mv, res.Reason)
		}
		st = res.State
	}
	return Result{ID: s.ID, Status: st.Status, Plies: len(st.History)}, nil
}
