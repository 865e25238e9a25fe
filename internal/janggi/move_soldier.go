package janggi

// 卒：前进或横走一格，不能后退。
// 站在任一九宫的斜线点上时，还可以沿斜线向前一格（只能落在同一九宫的斜线点上）。
func genSoldierMoves(b *Board, from Square, team Team, dests *[]Square) {
	row, col := rowOf(from), colOf(from)
	dir := soldierDir(team)

	try := func(r, c int) {
		if !onBoard(r, c) {
			return
		}
		to := indexOf(r, c)
		if b.teamAt(to) != team {
			*dests = append(*dests, to)
		}
	}

	try(row+dir, col)
	try(row, col-1)
	try(row, col+1)

	if !onAnyPalaceDiagonal(row, col) {
		return
	}
	palace := palaceOf(row, col)
	for _, dc := range []int{-1, +1} {
		r, c := row+dir, col+dc
		if OnPalaceDiagonal(palace, r, c) {
			try(r, c)
		}
	}
}
