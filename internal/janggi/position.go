package janggi

// 九宫：蓝方 7..9 行，红方 0..2 行，列都是 3..5
const (
	palaceMinCol = 3
	palaceMaxCol = 5
)

func palaceRows(team Team) (int, int) {
	if team == Red {
		return 0, 2
	}
	return Rows - 3, Rows - 1
}

// InPalace 是否在 team 的九宫内
func InPalace(team Team, row, col int) bool {
	if team != Blue && team != Red {
		return false
	}
	if col < palaceMinCol || col > palaceMaxCol {
		return false
	}
	lo, hi := palaceRows(team)
	return row >= lo && row <= hi
}

// OnPalaceDiagonal 九宫斜线上的五个点：四角 + 中心
func OnPalaceDiagonal(team Team, row, col int) bool {
	if !InPalace(team, row, col) {
		return false
	}
	lo, _ := palaceRows(team)
	dr, dc := row-(lo+1), col-(palaceMinCol+1)
	return dr*dr == dc*dc
}

func onAnyPalaceDiagonal(row, col int) bool {
	return OnPalaceDiagonal(Blue, row, col) || OnPalaceDiagonal(Red, row, col)
}

// palaceOf 返回该格子所在的九宫，不在任何九宫内返回 NoTeam
func palaceOf(row, col int) Team {
	switch {
	case InPalace(Blue, row, col):
		return Blue
	case InPalace(Red, row, col):
		return Red
	}
	return NoTeam
}

// 兵的前进方向：蓝向上(-1)，红向下(+1)
func soldierDir(team Team) int {
	if team == Blue {
		return -1
	}
	if team == Red {
		return +1
	}
	return 0
}
