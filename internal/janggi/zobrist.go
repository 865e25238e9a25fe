package janggi

import "sync"

const zobristKinds = 8 // Kind 范围 [1..7]，0 保留不用

var (
	zobristOnce sync.Once

	zobristPieces [2][zobristKinds][NumSquares]uint64
	zobristSide   uint64
)

func initZobrist() {
	zobristOnce.Do(func() {
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}

		for team := 0; team < 2; team++ {
			for k := 1; k < zobristKinds; k++ {
				for sq := 0; sq < NumSquares; sq++ {
					zobristPieces[team][k][sq] = next()
				}
			}
		}
		zobristSide = next()
	})
}

func pieceHashKey(team Team, kind Kind, sq Square) uint64 {
	if !sq.Valid() || (team != Blue && team != Red) {
		return 0
	}
	if kind <= KindNone || int(kind) >= zobristKinds {
		return 0
	}
	initZobrist()
	return zobristPieces[team][kind][sq]
}

// CalculateHash 全量重算盘面哈希，用来核对增量值
func (b *Board) CalculateHash() uint64 {
	var h uint64
	for sq, id := range b.Squares {
		if id == NoPiece {
			continue
		}
		p := &b.Pieces[id]
		h ^= pieceHashKey(p.Team, p.Kind, Square(sq))
	}
	return h
}
