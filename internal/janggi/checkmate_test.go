package janggi

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func movesOf(t *testing.T, pairs ...string) []Move {
	t.Helper()
	out := make([]Move, 0, len(pairs))
	for _, p := range pairs {
		mv, err := ParseMove(p)
		require.NoError(t, err)
		out = append(out, mv)
	}
	return out
}

func TestCheckmateByMove(t *testing.T) {
	var buf bytes.Buffer
	g := mustDecode(t, "4g4/R8/8R/9/9/9/9/9/4G4/9 b")
	g.SetMoveLog(&buf)

	require.NoError(t, g.Play(Blue, sq(t, "i3"), sq(t, "i1")))
	assert.Equal(t, BlueWon, g.Status())
	assert.Equal(t, "BLUE_WON", g.Status().String())
	assert.Equal(t, Blue, g.Turn())
	assert.Equal(t, "i3->i1\n", buf.String())
	assert.True(t, g.IsCheckmate(Red))
	assert.Empty(t, g.LegalMoves(Red))

	// 终局后任何走法都拒绝
	assert.ErrorIs(t, g.Play(Blue, sq(t, "a2"), sq(t, "a3")), ErrGameOver)
	assert.ErrorIs(t, g.Play(Red, sq(t, "e1"), sq(t, "e1")), ErrGameOver)
	ok, err := g.MakeMove("e1", "e1")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Len(t, g.History(), 1)
}

func TestCheckNotMateWhenBlockable(t *testing.T) {
	g := mustDecode(t, "4g4/R4a3/8R/9/9/9/9/9/4G4/9 b")

	require.NoError(t, g.Play(Blue, sq(t, "i3"), sq(t, "i1")))
	assert.Equal(t, Unfinished, g.Status())
	assert.Equal(t, Red, g.Turn())
	assert.True(t, g.IsInCheck(Red))
	assert.False(t, g.IsCheckmate(Red))
	assert.Equal(t, movesOf(t, "f2->f1"), g.LegalMoves(Red))
	assertDests(t, g, "e1")
}

func TestCannonCheck(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		mate  bool
		moves []string
	}{
		{
			// 自己的卒当炮架，挪开就解将
			name:  "OwnScreenSteps",
			fen:   "4g4/9/4s4/9/4C4/9/9/9/4G4/3R1R3 r",
			moves: []string{"e3->d3", "e3->f3"},
		},
		{
			name: "EnemyScreen",
			fen:  "4g4/9/4S4/9/4C4/9/9/9/4G4/3R1R3 r",
			mate: true,
		},
		{
			// 车吃掉炮架后自己变成新的炮架
			name: "CaptureBecomesScreen",
			fen:  "4g4/9/r3S4/9/4C4/9/9/9/4G4/3R1R3 r",
			mate: true,
		},
		{
			name:  "InterposeBetweenCannonAndScreen",
			fen:   "4g4/9/4S4/r8/4C4/9/9/9/4G4/3R1R3 r",
			moves: []string{"a4->e4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustDecode(t, tt.fen)
			require.True(t, g.IsInCheck(Red))
			assert.Equal(t, tt.mate, g.IsCheckmate(Red))

			got := g.LegalMoves(Red)
			if tt.mate {
				assert.Empty(t, got)
				return
			}
			assert.ElementsMatch(t, movesOf(t, tt.moves...), got)
		})
	}
}

func TestIsCheckmateRefreshesCheckersForOtherTeam(t *testing.T) {
	g := mustDecode(t, "4g4/9/4S4/9/4C4/9/9/9/4G4/3R1R3 r")
	require.False(t, g.IsInCheck(Blue))
	assert.True(t, g.IsCheckmate(Red))
	assert.NotEmpty(t, g.Checkers())
}

func TestNotInCheckIsNotCheckmate(t *testing.T) {
	g := NewGame()
	assert.False(t, g.IsInCheck(Blue))
	assert.False(t, g.IsCheckmate(Blue))
	assert.Empty(t, g.Checkers())
}
