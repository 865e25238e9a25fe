package janggi

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// 简单 FEN-like：10 行用“/”隔开（第 0 行是红方底线），空位用数字压缩；
// 空格后 b/r 表示轮到蓝方/红方
func (g *Game) Encode() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for c := 0; c < Cols; c++ {
			id := g.board.Squares[indexOf(r, c)]
			if id == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(pieceToChar(g.board.Pieces[id]))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	if g.turn == Red {
		sb.WriteByte('r')
	} else {
		sb.WriteByte('b')
	}
	return sb.String()
}

var ErrInvalidFEN = errors.New("invalid FEN")

type placement struct {
	team Team
	kind Kind
	sq   Square
}

// DecodePosition 从 Encode 的格式恢复一局棋。
// 每方必须恰好一个将，将和士必须在自己的九宫内。
func DecodePosition(fen string) (*Game, error) {
	parts := strings.Fields(fen)
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: want \"<rows> <b|r>\"", ErrInvalidFEN)
	}
	rows := strings.Split(parts[0], "/")
	if len(rows) != Rows {
		return nil, fmt.Errorf("%w: %d rows", ErrInvalidFEN, len(rows))
	}

	var found []placement
	var generals [2]int
	for r, row := range rows {
		c := 0
		for _, ch := range row {
			if c >= Cols {
				return nil, fmt.Errorf("%w: row %d too long", ErrInvalidFEN, r+1)
			}
			if ch >= '1' && ch <= '9' {
				c += int(ch - '0')
				continue
			}
			kind, ok := letterToKind[unicode.ToLower(ch)]
			if !ok {
				return nil, fmt.Errorf("%w: unknown piece %q", ErrInvalidFEN, ch)
			}
			team := Red
			if unicode.IsUpper(ch) {
				team = Blue
			}
			if (kind == General || kind == Guard) && !InPalace(team, r, c) {
				return nil, fmt.Errorf("%w: %s %s outside palace at %s", ErrInvalidFEN, team, kind, indexOf(r, c))
			}
			if kind == General {
				generals[team]++
			}
			found = append(found, placement{team: team, kind: kind, sq: indexOf(r, c)})
			c++
		}
		if c != Cols {
			return nil, fmt.Errorf("%w: row %d has %d columns", ErrInvalidFEN, r+1, c)
		}
	}
	if generals[Blue] != 1 || generals[Red] != 1 {
		return nil, fmt.Errorf("%w: each team needs exactly one general", ErrInvalidFEN)
	}
	if len(found) > MaxPieces {
		return nil, fmt.Errorf("%w: %d pieces", ErrInvalidFEN, len(found))
	}

	var turn Team
	switch parts[1] {
	case "b":
		turn = Blue
	case "r":
		turn = Red
	default:
		return nil, fmt.Errorf("%w: side to move %q", ErrInvalidFEN, parts[1])
	}

	// 和开局一样先编蓝方再编红方
	var b Board
	for _, team := range []Team{Blue, Red} {
		for _, pl := range found {
			if pl.team == team {
				b.add(pl.team, pl.kind, pl.sq)
			}
		}
	}
	return newGame(b, turn), nil
}
