package main

import (
	"fmt"

	"github.com/apex/log"

	"janggi/internal/janggi"
)

// replay 依次交给当前行棋方执行，返回成功的步数；遇到第一步被拒绝就停
func replay(g *janggi.Game, moves []janggi.Move) (int, error) {
	for i, mv := range moves {
		team := g.Turn()
		if err := g.Play(team, mv.From, mv.To); err != nil {
			return i, fmt.Errorf("move %d %s by %s: %w", i+1, mv, team, err)
		}
		log.WithFields(log.Fields{
			"ply":    i + 1,
			"team":   team.String(),
			"move":   mv.String(),
			"status": g.Status().String(),
		}).Debug("replayed")
	}
	return len(moves), nil
}
