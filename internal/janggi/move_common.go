package janggi

// 将、士：九宫内一格；站在九宫斜线点上时可以斜走一格
func genPalaceMoves(b *Board, from Square, team Team, dests *[]Square) {
	row, col := rowOf(from), colOf(from)
	step := func(d [2]int) {
		r, c := row+d[0], col+d[1]
		if !InPalace(team, r, c) {
			return
		}
		to := indexOf(r, c)
		if b.teamAt(to) != team {
			*dests = append(*dests, to)
		}
	}
	for _, d := range orthoDirs {
		step(d)
	}
	if OnPalaceDiagonal(team, row, col) {
		for _, d := range diagDirs {
			step(d)
		}
	}
}

// 车：横竖任意格；在九宫斜线点上还可以沿斜线走
func genChariotMoves(b *Board, from Square, team Team, dests *[]Square) {
	for _, d := range orthoDirs {
		slide(b, from, team, d, false, dests)
	}
	if onAnyPalaceDiagonal(rowOf(from), colOf(from)) {
		for _, d := range diagDirs {
			slide(b, from, team, d, true, dests)
		}
	}
}

// slide 车的一条射线。对方的将不挡路：记为可达后继续往前扫
func slide(b *Board, from Square, team Team, d [2]int, diagonal bool, dests *[]Square) {
	r, c := rowOf(from)+d[0], colOf(from)+d[1]
	for onBoard(r, c) {
		if diagonal && !onAnyPalaceDiagonal(r, c) {
			break
		}
		to := indexOf(r, c)
		id := b.Squares[to]
		if id != NoPiece {
			p := &b.Pieces[id]
			if p.Team == team {
				break
			}
			*dests = append(*dests, to)
			if p.Kind != General {
				break
			}
		} else {
			*dests = append(*dests, to)
		}
		r += d[0]
		c += d[1]
	}
}

// 包：必须隔一个非包的子（炮架）才能走或吃；不能吃包，也不能用包当炮架
func genCannonMoves(b *Board, from Square, team Team, dests *[]Square) {
	for _, d := range orthoDirs {
		cannonLine(b, from, team, d, false, dests)
	}
	if onAnyPalaceDiagonal(rowOf(from), colOf(from)) {
		for _, d := range diagDirs {
			cannonLine(b, from, team, d, true, dests)
		}
	}
}

func cannonLine(b *Board, from Square, team Team, d [2]int, diagonal bool, dests *[]Square) {
	r, c := rowOf(from)+d[0], colOf(from)+d[1]
	screened := false
	for onBoard(r, c) {
		if diagonal && !onAnyPalaceDiagonal(r, c) {
			return
		}
		to := indexOf(r, c)
		id := b.Squares[to]
		if id == NoPiece {
			if screened {
				*dests = append(*dests, to)
			}
			r += d[0]
			c += d[1]
			continue
		}
		p := &b.Pieces[id]
		if p.Kind == Cannon {
			return
		}
		if !screened {
			// 找到炮架，跳过去
			screened = true
			r += d[0]
			c += d[1]
			continue
		}
		if p.Team != team {
			*dests = append(*dests, to)
		}
		return
	}
}
