package janggi

// Team 对局双方：蓝先红后
type Team int8

const (
	NoTeam Team = -1
	Blue   Team = 0
	Red    Team = 1
)

func (t Team) String() string {
	switch t {
	case Blue:
		return "Blue"
	case Red:
		return "Red"
	default:
		return "None"
	}
}

// Opponent 返回对方；NoTeam 的对方仍是 NoTeam
func (t Team) Opponent() Team {
	switch t {
	case Blue:
		return Red
	case Red:
		return Blue
	default:
		return NoTeam
	}
}

type Kind int8

const (
	KindNone Kind = iota
	General       // 將 / 漢
	Guard         // 士
	Soldier       // 卒 / 兵
	Chariot       // 車
	Cannon        // 包
	Horse         // 馬
	Elephant      // 象
)

var kindNames = [...]string{
	KindNone: "none",
	General:  "general",
	Guard:    "guard",
	Soldier:  "soldier",
	Chariot:  "chariot",
	Cannon:   "cannon",
	Horse:    "horse",
	Elephant: "elephant",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Status 对局状态，字符串形式与外部约定一致
type Status int8

const (
	Unfinished Status = iota
	BlueWon
	RedWon
)

func (s Status) String() string {
	switch s {
	case BlueWon:
		return "BLUE_WON"
	case RedWon:
		return "RED_WON"
	default:
		return "UNFINISHED"
	}
}

func wonBy(t Team) Status {
	if t == Blue {
		return BlueWon
	}
	return RedWon
}

// PieceID 棋子在 arena 里的稳定下标；0 表示空
type PieceID int8

const NoPiece PieceID = 0

// Piece 只记录自己的归属、兵种和位置。
// dests 是派生缓存，每次真实走子后整体刷新，不作为判断依据。
type Piece struct {
	Team   Team
	Kind   Kind
	Square Square
	dests  []Square
}

// Move 一步棋；From == To 表示停着
type Move struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}

func (m Move) String() string {
	return m.From.String() + "->" + m.To.String()
}

// IsPass 停着（原地不动，直接交换行棋方）
func (m Move) IsPass() bool { return m.From == m.To }
