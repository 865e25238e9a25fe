package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/apex/log"
	"github.com/google/uuid"

	"janggi/internal/janggi"
)

var (
	ErrNotFound = errors.New("game not found")
	ErrClosed   = errors.New("game is closed")
)

// Config LogDir 为空时不写走子记录文件
type Config struct {
	LogDir string
}

type Manager struct {
	cfg Config

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager(cfg Config) *Manager {
	return &Manager{cfg: cfg, sessions: make(map[string]*Session)}
}

// NewGame 开一局新棋；position 为空时用标准开局
func (m *Manager) NewGame(position string) (*Session, error) {
	g := janggi.NewGame()
	if position != "" {
		var err error
		if g, err = janggi.DecodePosition(position); err != nil {
			return nil, fmt.Errorf("new game: %w", err)
		}
	}

	id := uuid.NewString()
	s := &Session{
		ID:        id,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		game:      g,
		logger:    log.WithField("game", id),
	}

	if m.cfg.LogDir != "" {
		path := filepath.Join(m.cfg.LogDir, id+".moves")
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open move log: %w", err)
		}
		s.logFile = f
		g.SetMoveLog(f)
		s.logger = s.logger.WithField("moveLog", path)
	}

	m.mu.Lock()
	m.sessions[id] = s
	m.mu.Unlock()

	s.logger.WithField("position", g.Encode()).Info("game created")
	return s, nil
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// IDs 当前所有未关闭的对局
func (m *Manager) IDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return ids
}

// Move 由当前行棋方走 from->to。记法错误返回 error，走法不合法只是 Accepted=false。
func (m *Manager) Move(id, from, to string) (MoveResult, error) {
	s, err := m.Get(id)
	if err != nil {
		return MoveResult{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return MoveResult{}, ErrClosed
	}

	f, err := janggi.ParseSquare(from)
	if err != nil {
		return MoveResult{}, err
	}
	t, err := janggi.ParseSquare(to)
	if err != nil {
		return MoveResult{}, err
	}

	team := s.game.Turn()
	entry := s.logger.WithFields(log.Fields{
		"team": team.String(),
		"move": janggi.Move{From: f, To: t}.String(),
	})
	if err := s.game.Play(team, f, t); err != nil {
		entry.WithError(err).Warn("move rejected")
		return MoveResult{Reason: err.Error(), State: s.snapshot()}, nil
	}
	s.UpdatedAt = time.Now()

	if err := s.game.MoveLogErr(); err != nil {
		entry.WithError(err).Error("write move log")
	}
	st := s.snapshot()
	entry.WithField("status", st.Status).Info("move accepted")
	return MoveResult{Accepted: true, State: st}, nil
}

// Destinations sq 上棋子当前的合法落点
func (m *Manager) Destinations(id, square string) ([]string, error) {
	s, err := m.Get(id)
	if err != nil {
		return nil, err
	}
	sq, err := janggi.ParseSquare(square)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrClosed
	}
	dests := s.game.DestinationsFrom(sq)
	out := make([]string, len(dests))
	for i, d := range dests {
		out[i] = d.String()
	}
	return out, nil
}

func (m *Manager) State(id string) (State, error) {
	s, err := m.Get(id)
	if err != nil {
		return State{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return State{}, ErrClosed
	}
	return s.snapshot(), nil
}

// Close 移除对局并关闭走子记录文件
func (m *Manager) Close(id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if !ok {
		return ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.game.SetMoveLog(nil)
	if s.logFile == nil {
		s.logger.Info("game closed")
		return nil
	}
	if err := s.logFile.Close(); err != nil {
		s.logger.WithError(err).Error("close move log")
		return fmt.Errorf("close move log: %w", err)
	}
	s.logger.Info("game closed")
	return nil
}

// CloseAll 退出前调用
func (m *Manager) CloseAll() error {
	var errs []error
	for _, id := range m.IDs() {
		if err := m.Close(id); err != nil && !errors.Is(err, ErrNotFound) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
