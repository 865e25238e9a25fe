package session

import (
	"os"
	"sync"
	"time"

	"github.com/apex/log"

	"janggi/internal/janggi"
)

// Session 一局棋。所有对 Game 的访问都要先拿 mu。
type Session struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time

	mu      sync.Mutex
	game    *janggi.Game
	logFile *os.File
	logger  *log.Entry
	closed  bool
}

// State 对外展示的快照
type State struct {
	ID       string   `json:"id"`
	Position string   `json:"position"`
	Turn     string   `json:"turn"`
	Status   string   `json:"status"`
	InCheck  bool     `json:"in_check"`
	History  []string `json:"history"`
	Board    string   `json:"board"`
}

// MoveResult 走子结果；Reason 只在被拒绝时有值
type MoveResult struct {
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason,omitempty"`
	State    State  `json:"state"`
}

// snapshot 调用方持有 s.mu
func (s *Session) snapshot() State {
	g := s.game
	hist := g.History()
	moves := make([]string, len(hist))
	for i, mv := range hist {
		moves[i] = mv.String()
	}
	b := g.Board()
	return State{
		ID:       s.ID,
		Position: g.Encode(),
		Turn:     g.Turn().String(),
		Status:   g.Status().String(),
		InCheck:  g.IsInCheck(g.Turn()),
		History:  moves,
		Board:    b.String(),
	}
}
