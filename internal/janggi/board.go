package janggi

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	Rows       = 10
	Cols       = 9
	NumSquares = Rows * Cols

	// MaxPieces 开局每方 16 子
	MaxPieces = 32
)

// Square = row*Cols + col；row 0 是红方底线，row 9 是蓝方底线
type Square int

const NoSquare Square = -1

func indexOf(row, col int) Square { return Square(row*Cols + col) }
func rowOf(sq Square) int          { return int(sq) / Cols }
func colOf(sq Square) int          { return int(sq) % Cols }

// SquareAt 由行列得到格子；越界返回 NoSquare
func SquareAt(row, col int) Square {
	if !onBoard(row, col) {
		return NoSquare
	}
	return indexOf(row, col)
}

func (sq Square) Row() int { return rowOf(sq) }
func (sq Square) Col() int { return colOf(sq) }

// Valid 是否在盘内
func (sq Square) Valid() bool { return sq >= 0 && sq < NumSquares }

func onBoard(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

func OnBoard(row, col int) bool { return onBoard(row, col) }

var (
	orthoDirs = [4][2]int{{-1, 0}, {+1, 0}, {0, -1}, {0, +1}}
	diagDirs  = [4][2]int{{-1, -1}, {-1, +1}, {+1, -1}, {+1, +1}}
)

// Board 棋盘格子只存棋子编号，棋子本身放在 Pieces 里。
// 格子内容和棋子位置只能通过 place/lift/relocate 一起改。
type Board struct {
	Squares [NumSquares]PieceID
	Pieces  [MaxPieces + 1]Piece // 下标 0 不用
	count   int
	hash    uint64
}

// At 返回 sq 上的棋子编号，空格为 NoPiece
func (b *Board) At(sq Square) PieceID {
	if !sq.Valid() {
		return NoPiece
	}
	return b.Squares[sq]
}

func (b *Board) teamAt(sq Square) Team {
	id := b.Squares[sq]
	if id == NoPiece {
		return NoTeam
	}
	return b.Pieces[id].Team
}

// Hash 当前盘面的 Zobrist 值（增量维护）
func (b *Board) Hash() uint64 { return b.hash }

// add 新建一个棋子放到 sq（只在开局/解析局面时用）
func (b *Board) add(team Team, kind Kind, sq Square) PieceID {
	if b.count >= MaxPieces {
		panic("janggi: too many pieces")
	}
	b.count++
	id := PieceID(b.count)
	b.Pieces[id] = Piece{Team: team, Kind: kind, Square: NoSquare}
	b.place(id, sq)
	return id
}

func (b *Board) place(id PieceID, sq Square) {
	if b.Squares[sq] != NoPiece {
		panic("janggi: place on occupied square " + sq.String())
	}
	p := &b.Pieces[id]
	b.Squares[sq] = id
	p.Square = sq
	b.hash ^= pieceHashKey(p.Team, p.Kind, sq)
}

// lift 把棋子从盘上拿起（被吃），返回原来的位置
func (b *Board) lift(id PieceID) Square {
	p := &b.Pieces[id]
	sq := p.Square
	if b.Squares[sq] != id {
		panic("janggi: board and piece location diverged at " + sq.String())
	}
	b.Squares[sq] = NoPiece
	p.Square = NoSquare
	b.hash ^= pieceHashKey(p.Team, p.Kind, sq)
	return sq
}

func (b *Board) relocate(id PieceID, to Square) {
	b.lift(id)
	b.place(id, to)
}

var letterToKind = map[rune]Kind{
	'g': General,
	'a': Guard,
	's': Soldier,
	'r': Chariot,
	'c': Cannon,
	'h': Horse,
	'e': Elephant,
}

func kindToLetter(k Kind) rune {
	for ch, v := range letterToKind {
		if v == k {
			return ch
		}
	}
	return '?'
}

// 大写蓝方，小写红方
func pieceToChar(p Piece) rune {
	ch := kindToLetter(p.Kind)
	if p.Team == Blue {
		return unicode.ToUpper(ch)
	}
	return ch
}

func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("   a b c d e f g h i\n")
	for r := 0; r < Rows; r++ {
		fmt.Fprintf(&sb, "%2d", r+1)
		for c := 0; c < Cols; c++ {
			sb.WriteByte(' ')
			id := b.Squares[indexOf(r, c)]
			if id == NoPiece {
				sb.WriteByte('.')
				continue
			}
			sb.WriteRune(pieceToChar(b.Pieces[id]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// 开局摆法（行 0 在上，红方）
const initialBoardString = `reha.aehr
....g....
.c.....c.
s.s.s.s.s
.........
.........
S.S.S.S.S
.C.....C.
....G....
REHA.AEHR`

func parseInitialBoard() Board {
	var b Board
	lines := strings.Split(initialBoardString, "\n")
	if len(lines) != Rows {
		panic("initialBoardString 行数不为 10")
	}
	// 先摆蓝方再摆红方，编号稳定：蓝 1..16，红 17..32
	for _, team := range []Team{Blue, Red} {
		for r, line := range lines {
			if len(line) != Cols {
				panic("initialBoardString 列数不为 9")
			}
			for c, ch := range line {
				if ch == '.' {
					continue
				}
				t := Red
				if unicode.IsUpper(ch) {
					t = Blue
				}
				if t != team {
					continue
				}
				k, ok := letterToKind[unicode.ToLower(ch)]
				if !ok {
					panic("unknown piece letter: " + string(ch))
				}
				b.add(t, k, indexOf(r, c))
			}
		}
	}
	return b
}
