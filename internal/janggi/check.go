package janggi

import "slices"

// IsInCheck 判断 team 的将是否被将军，并记下所有正在将军的子（供 IsCheckmate 使用）。
// 对方每个子的落点都按当前盘面重新计算。
func (g *Game) IsInCheck(team Team) bool {
	g.checkers = g.checkersOf(team)
	g.checkersTeam = team
	return len(g.checkers) > 0
}

// Checkers 最近一次 IsInCheck 记下的将军子
func (g *Game) Checkers() []PieceID { return slices.Clone(g.checkers) }

func (g *Game) general(team Team) PieceID {
	if team != Blue && team != Red {
		return NoPiece
	}
	for _, id := range g.registry[team] {
		if g.board.Pieces[id].Kind == General {
			return id
		}
	}
	return NoPiece
}

func (g *Game) checkersOf(team Team) []PieceID {
	gen := g.general(team)
	if gen == NoPiece {
		return nil
	}
	target := g.board.Pieces[gen].Square
	var out []PieceID
	for _, id := range g.registry[team.Opponent()] {
		p := &g.board.Pieces[id]
		if slices.Contains(legalDestinations(&g.board, p.Kind, p.Team, p.Square), target) {
			out = append(out, id)
		}
	}
	return out
}

// GeneralSquare team 的将所在格；停着就是在这里原地走一步
func (g *Game) GeneralSquare(team Team) Square {
	id := g.general(team)
	if id == NoPiece {
		return NoSquare
	}
	return g.board.Pieces[id].Square
}
