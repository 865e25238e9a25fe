package janggi

import "slices"

// 将军的几种形状：贴身（将、士、卒）、直线（车、包）、跳（马、象）
type attackShape int8

const (
	shapeAdjacent attackShape = iota
	shapeLine
	shapeJump
)

func shapeOf(k Kind) attackShape {
	switch k {
	case Chariot, Cannon:
		return shapeLine
	case Horse, Elephant:
		return shapeJump
	default:
		return shapeAdjacent
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// lineBetween from 和 to 之间（不含两端）的格子。
// 两点不在同一行、列或斜线上时返回 nil。
func lineBetween(from, to Square) []Square {
	dr, dc := rowOf(to)-rowOf(from), colOf(to)-colOf(from)
	if dr != 0 && dc != 0 && abs(dr) != abs(dc) {
		return nil
	}
	sr, sc := sign(dr), sign(dc)
	var out []Square
	r, c := rowOf(from)+sr, colOf(from)+sc
	for r != rowOf(to) || c != colOf(to) {
		out = append(out, indexOf(r, c))
		r += sr
		c += sc
	}
	return out
}

// interposeSquares 能化解 checker 对 target 将军的格子。
// 直线型返回两者之间所有格子（包括炮架所在格），跳型返回蹩腿格。
func (g *Game) interposeSquares(checker PieceID, target Square) []Square {
	p := g.board.Pieces[checker]
	switch shapeOf(p.Kind) {
	case shapeLine:
		return lineBetween(p.Square, target)
	case shapeJump:
		if leg := legSquare(p.Kind, p.Square, target); leg != NoSquare {
			return []Square{leg}
		}
	}
	return nil
}

// IsCheckmate team 已被将军时判断是否被将死：将走不开、吃不掉、挡不住。
// 每个候选都用试走确认走后不再被将军。
func (g *Game) IsCheckmate(team Team) bool {
	if g.checkersTeam != team {
		g.IsInCheck(team)
	}
	checkers := slices.Clone(g.checkers)
	if len(checkers) == 0 {
		return false
	}
	gen := g.general(team)
	if gen == NoPiece {
		return false
	}
	genSq := g.board.Pieces[gen].Square

	// 1. 将自己走开
	for _, to := range g.destinations(gen) {
		if g.legal(team, genSq, to) {
			return false
		}
	}

	defenders := slices.Clone(g.registry[team])
	canReach := func(sq Square) bool {
		for _, id := range defenders {
			if id == gen {
				continue
			}
			from := g.board.Pieces[id].Square
			if slices.Contains(g.destinations(id), sq) && g.legal(team, from, sq) {
				return true
			}
		}
		return false
	}

	for _, c := range checkers {
		// 2. 吃掉将军的子
		if canReach(g.board.Pieces[c].Square) {
			return false
		}

		// 3. 垫子；包的炮架是自己的子时也可以把它挪开
		for _, sq := range g.interposeSquares(c, genSq) {
			occupant := g.board.Squares[sq]
			if occupant != NoPiece && g.board.Pieces[occupant].Team == team {
				for _, to := range g.destinations(occupant) {
					if g.legal(team, sq, to) {
						return false
					}
				}
				continue
			}
			if canReach(sq) {
				return false
			}
		}
	}
	return true
}
