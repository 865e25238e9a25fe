package janggi

// legalDestinations 只看盘面的走法生成，不考虑走后自己是否被将军。
// 将的“不走进被攻击格”过滤在 Game.destinations 里做。
func legalDestinations(b *Board, kind Kind, team Team, from Square) []Square {
	if !from.Valid() {
		return nil
	}
	var dests []Square
	switch kind {
	case General, Guard:
		genPalaceMoves(b, from, team, &dests)
	case Soldier:
		genSoldierMoves(b, from, team, &dests)
	case Chariot:
		genChariotMoves(b, from, team, &dests)
	case Cannon:
		genCannonMoves(b, from, team, &dests)
	case Horse, Elephant:
		genJumpMoves(b, from, team, jumpsFor(kind), &dests)
	}
	return dests
}

// destinations 当前盘面下 id 的合法落点（每次重新计算）
func (g *Game) destinations(id PieceID) []Square {
	p := g.board.Pieces[id]
	dests := legalDestinations(&g.board, p.Kind, p.Team, p.Square)
	if p.Kind != General || len(dests) == 0 {
		return dests
	}
	attacked := g.attackedSquares(p.Team.Opponent())
	out := dests[:0]
	for _, to := range dests {
		if !attacked[to] {
			out = append(out, to)
		}
	}
	return out
}

// attackedSquares by 这一方所有棋子（不带将的安全过滤）能到达的格子
func (g *Game) attackedSquares(by Team) *[NumSquares]bool {
	var out [NumSquares]bool
	for _, id := range g.registry[by] {
		p := &g.board.Pieces[id]
		for _, to := range legalDestinations(&g.board, p.Kind, p.Team, p.Square) {
			out[to] = true
		}
	}
	return &out
}

// refreshAll 任何真实走子之后，所有缓存一起作废重算
func (g *Game) refreshAll() {
	for _, team := range []Team{Blue, Red} {
		for _, id := range g.registry[team] {
			g.board.Pieces[id].dests = g.destinations(id)
		}
	}
}

// LegalMoves team 当前所有合法走法（不含停着）
func (g *Game) LegalMoves(team Team) []Move {
	if team != Blue && team != Red {
		return nil
	}
	var moves []Move
	for _, id := range append([]PieceID(nil), g.registry[team]...) {
		from := g.board.Pieces[id].Square
		for _, to := range g.destinations(id) {
			if g.legal(team, from, to) {
				moves = append(moves, Move{From: from, To: to})
			}
		}
	}
	return moves
}
