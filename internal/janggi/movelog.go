package janggi

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrInvalidMoveLog = errors.New("invalid move log line")

// MoveLog 只追加的走子记录，一行一步 "from->to"。
// 写失败后记住第一个错误，后面的写入全部忽略。
type MoveLog struct {
	w   io.Writer
	err error
}

func NewMoveLog(w io.Writer) *MoveLog {
	return &MoveLog{w: w}
}

func (l *MoveLog) Append(from, to Square) {
	if l == nil || l.err != nil {
		return
	}
	_, l.err = fmt.Fprintf(l.w, "%s->%s\n", from, to)
}

func (l *MoveLog) Err() error {
	if l == nil {
		return nil
	}
	return l.err
}

// ParseMoveLog 读回 MoveLog 写出的内容，空行跳过
func ParseMoveLog(r io.Reader) ([]Move, error) {
	var moves []Move
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		mv, err := ParseMove(text)
		if err != nil {
			return moves, fmt.Errorf("line %d: %w", line, err)
		}
		moves = append(moves, mv)
	}
	return moves, sc.Err()
}

// ParseMove 解析 "e7->e6"
func ParseMove(s string) (Move, error) {
	from, to, ok := strings.Cut(s, "->")
	if !ok {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidMoveLog, s)
	}
	f, err := ParseSquare(strings.TrimSpace(from))
	if err != nil {
		return Move{}, err
	}
	t, err := ParseSquare(strings.TrimSpace(to))
	if err != nil {
		return Move{}, err
	}
	return Move{From: f, To: t}, nil
}
