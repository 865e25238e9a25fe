package janggi

// jump 终点偏移 + 蹩腿格偏移（沿长边走一步）
type jump struct {
	Dr, Dc int
	Br, Bc int
}

// 马 8 种日字
var horseJumps = [8]jump{
	{-2, -1, -1, 0},
	{-2, +1, -1, 0},
	{-1, -2, 0, -1},
	{-1, +2, 0, +1},
	{+1, -2, 0, -1},
	{+1, +2, 0, +1},
	{+2, -1, +1, 0},
	{+2, +1, +1, 0},
}

// 象 8 种，和马同样只看一个蹩腿格
var elephantJumps = [8]jump{
	{-3, -2, -1, 0},
	{-3, +2, -1, 0},
	{-2, -3, 0, -1},
	{-2, +3, 0, +1},
	{+2, -3, 0, -1},
	{+2, +3, 0, +1},
	{+3, -2, +1, 0},
	{+3, +2, +1, 0},
}

func jumpsFor(k Kind) []jump {
	switch k {
	case Horse:
		return horseJumps[:]
	case Elephant:
		return elephantJumps[:]
	}
	return nil
}

func genJumpMoves(b *Board, from Square, team Team, table []jump, dests *[]Square) {
	row, col := rowOf(from), colOf(from)
	for _, m := range table {
		r := row + m.Dr
		c := col + m.Dc
		if !onBoard(r, c) {
			continue
		}
		if b.Squares[indexOf(row+m.Br, col+m.Bc)] != NoPiece {
			continue // 蹩腿
		}
		to := indexOf(r, c)
		if b.teamAt(to) != team {
			*dests = append(*dests, to)
		}
	}
}

// legSquare 从 from 跳到 to 时的蹩腿格；不是该兵种的跳法返回 NoSquare
func legSquare(k Kind, from, to Square) Square {
	dr, dc := rowOf(to)-rowOf(from), colOf(to)-colOf(from)
	for _, m := range jumpsFor(k) {
		if m.Dr == dr && m.Dc == dc {
			return indexOf(rowOf(from)+m.Br, colOf(from)+m.Bc)
		}
	}
	return NoSquare
}
