package janggi

import (
	"errors"
	"fmt"
	"io"
	"slices"
)

// 走子被拒绝的原因。SubmitMove / MakeMove 只返回 false，Play 返回具体原因。
var (
	ErrGameOver           = errors.New("game is over")
	ErrNotYourTurn        = errors.New("not this team's turn")
	ErrNotYourPiece       = errors.New("no piece of the moving team on the source square")
	ErrIllegalDestination = errors.New("destination is not reachable")
	ErrSelfCheck          = errors.New("move leaves own general in check")
	ErrGeneralCapture     = errors.New("generals cannot be captured")
)

// Game 一局棋的全部可变状态。不是并发安全的，调用方需要自己串行化。
type Game struct {
	board    Board
	registry [2][]PieceID // 每方在盘上的棋子；被吃的直接删掉
	turn     Team
	status   Status

	checkers     []PieceID
	checkersTeam Team

	history []Move
	moveLog *MoveLog
}

// NewGame 标准开局，蓝方先走
func NewGame() *Game {
	return newGame(parseInitialBoard(), Blue)
}

func newGame(b Board, turn Team) *Game {
	g := &Game{
		board:        b,
		turn:         turn,
		status:       Unfinished,
		checkersTeam: NoTeam,
	}
	for id := PieceID(1); int(id) <= b.count; id++ {
		p := &g.board.Pieces[id]
		if p.Square != NoSquare {
			g.registry[p.Team] = append(g.registry[p.Team], id)
		}
	}
	g.refreshAll()
	return g
}

// SetMoveLog 之后每一步被接受的棋都会以 "from->to" 一行写入 w
func (g *Game) SetMoveLog(w io.Writer) {
	if w == nil {
		g.moveLog = nil
		return
	}
	g.moveLog = NewMoveLog(w)
}

// MoveLogErr 写走子记录时遇到的第一个错误
func (g *Game) MoveLogErr() error {
	if g.moveLog == nil {
		return nil
	}
	return g.moveLog.Err()
}

func (g *Game) Status() Status { return g.status }
func (g *Game) Turn() Team     { return g.turn }

// Board 返回盘面副本
func (g *Game) Board() Board { return g.board }

// Hash 盘面 + 行棋方
func (g *Game) Hash() uint64 {
	initZobrist()
	h := g.board.Hash()
	if g.turn == Red {
		h ^= zobristSide
	}
	return h
}

// History 已接受的走法（含停着）
func (g *Game) History() []Move { return slices.Clone(g.history) }

// PieceAt 返回 sq 上的棋子编号和棋子
func (g *Game) PieceAt(sq Square) (PieceID, Piece, bool) {
	id := g.board.At(sq)
	if id == NoPiece {
		return NoPiece, Piece{}, false
	}
	return id, g.board.Pieces[id], true
}

// Pieces team 当前在盘上的棋子编号
func (g *Game) Pieces(team Team) []PieceID {
	if team != Blue && team != Red {
		return nil
	}
	return slices.Clone(g.registry[team])
}

// LegalDestinations 重新计算 id 的落点；已被吃或不存在返回 nil
func (g *Game) LegalDestinations(id PieceID) []Square {
	if id <= NoPiece || int(id) > g.board.count || g.board.Pieces[id].Square == NoSquare {
		return nil
	}
	return g.destinations(id)
}

// DestinationsFrom 方便界面直接按格子查询
func (g *Game) DestinationsFrom(sq Square) []Square {
	return g.LegalDestinations(g.board.At(sq))
}

// CachedDestinations 上一次真实走子后缓存的落点，只作展示用
func (g *Game) CachedDestinations(id PieceID) []Square {
	if id <= NoPiece || int(id) > g.board.count {
		return nil
	}
	return slices.Clone(g.board.Pieces[id].dests)
}

// MakeMove 按记法走子。记法本身不合法时返回错误，走法不合法只返回 false。
func (g *Game) MakeMove(from, to string) (bool, error) {
	f, err := ParseSquare(from)
	if err != nil {
		return false, err
	}
	t, err := ParseSquare(to)
	if err != nil {
		return false, err
	}
	return g.SubmitMove(g.turn, f, t), nil
}

// SubmitMove 合法则执行并返回 true；任何拒绝都不改动状态
func (g *Game) SubmitMove(team Team, from, to Square) bool {
	return g.Play(team, from, to) == nil
}

// Play 同 SubmitMove，但返回拒绝原因
func (g *Game) Play(team Team, from, to Square) error {
	if err := g.checkMove(team, from, to); err != nil {
		return err
	}
	if from == to {
		g.turn = team.Opponent()
		g.record(from, to)
		return nil
	}

	g.apply(from, to)
	g.refreshAll()
	if err := g.verify(); err != nil {
		panic(err)
	}

	opp := team.Opponent()
	if g.IsInCheck(opp) && g.IsCheckmate(opp) {
		g.status = wonBy(team)
	} else {
		g.turn = opp
	}
	g.record(from, to)
	return nil
}

func (g *Game) record(from, to Square) {
	g.history = append(g.history, Move{From: from, To: to})
	g.moveLog.Append(from, to)
}

func (g *Game) checkMove(team Team, from, to Square) error {
	if g.status != Unfinished {
		return ErrGameOver
	}
	if team != g.turn {
		return ErrNotYourTurn
	}
	return g.validate(team, from, to)
}

// validate 不看轮次和对局状态的走法校验
func (g *Game) validate(team Team, from, to Square) error {
	if !from.Valid() || !to.Valid() {
		return ErrIllegalDestination
	}
	id := g.board.Squares[from]
	if id == NoPiece || g.board.Pieces[id].Team != team {
		return ErrNotYourPiece
	}
	if from == to {
		return nil
	}
	if !slices.Contains(g.destinations(id), to) {
		return ErrIllegalDestination
	}
	if target := g.board.Squares[to]; target != NoPiece && g.board.Pieces[target].Kind == General {
		return ErrGeneralCapture
	}
	if g.leavesInCheck(team, from, to) {
		return ErrSelfCheck
	}
	return nil
}

// legal 非停着的合法走法
func (g *Game) legal(team Team, from, to Square) bool {
	return from != to && g.validate(team, from, to) == nil
}

type undoRecord struct {
	id       PieceID
	from, to Square
	captured PieceID
	capIdx   int
}

// apply 吃子（若有）并移动棋子，返回还原所需的记录
func (g *Game) apply(from, to Square) undoRecord {
	id := g.board.Squares[from]
	u := undoRecord{id: id, from: from, to: to, captured: g.board.Squares[to], capIdx: -1}
	if u.captured != NoPiece {
		g.board.lift(u.captured)
		u.capIdx = g.unregister(u.captured)
	}
	g.board.relocate(id, to)
	return u
}

func (g *Game) revert(u undoRecord) {
	g.board.relocate(u.id, u.from)
	if u.captured != NoPiece {
		g.board.place(u.captured, u.to)
		t := g.board.Pieces[u.captured].Team
		g.registry[t] = slices.Insert(g.registry[t], u.capIdx, u.captured)
	}
}

func (g *Game) unregister(id PieceID) int {
	t := g.board.Pieces[id].Team
	i := slices.Index(g.registry[t], id)
	if i < 0 {
		panic(fmt.Sprintf("janggi: piece %d missing from %s registry", id, t))
	}
	g.registry[t] = slices.Delete(g.registry[t], i, i+1)
	return i
}

// trial 试走一步，fn 跑完立刻还原。中间状态不会暴露给任何其他调用。
func (g *Game) trial(from, to Square, fn func()) {
	before := g.board.Hash()
	u := g.apply(from, to)
	fn()
	g.revert(u)
	if g.board.Hash() != before {
		panic("janggi: trial move " + Move{From: from, To: to}.String() + " did not restore the board")
	}
}

func (g *Game) leavesInCheck(team Team, from, to Square) bool {
	var inCheck bool
	g.trial(from, to, func() {
		inCheck = len(g.checkersOf(team)) > 0
	})
	return inCheck
}

// verify 检查格子、棋子位置和两方名单三者一致
func (g *Game) verify() error {
	seen := 0
	for _, team := range []Team{Blue, Red} {
		for _, id := range g.registry[team] {
			p := &g.board.Pieces[id]
			if p.Team != team {
				return fmt.Errorf("janggi: piece %d listed for %s but belongs to %s", id, team, p.Team)
			}
			if !p.Square.Valid() || g.board.Squares[p.Square] != id {
				return fmt.Errorf("janggi: piece %d at %s does not match the board", id, p.Square)
			}
			seen++
		}
	}
	occupied := 0
	for _, id := range g.board.Squares {
		if id != NoPiece {
			occupied++
		}
	}
	if occupied != seen {
		return fmt.Errorf("janggi: %d occupied squares but %d registered pieces", occupied, seen)
	}
	return nil
}
