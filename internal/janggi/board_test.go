package janggi

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const startFEN = "reha1aehr/4g4/1c5c1/s1s1s1s1s/9/9/S1S1S1S1S/1C5C1/4G4/REHA1AEHR b"

func TestParseSquare(t *testing.T) {
	cases := []struct {
		in       string
		row, col int
	}{
		{"a1", 0, 0},
		{"e2", 1, 4},
		{"i1", 0, 8},
		{"e9", 8, 4},
		{"a10", 9, 0},
		{"i10", 9, 8},
	}
	for _, c := range cases {
		got, err := ParseSquare(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.row, got.Row(), c.in)
		assert.Equal(t, c.col, got.Col(), c.in)
		assert.Equal(t, c.in, got.String())
	}

	for _, bad := range []string{"", "e", "j1", "A1", "a0", "a11", "e2x", "a+1", "a-1", "e100"} {
		_, err := ParseSquare(bad)
		assert.ErrorIs(t, err, ErrInvalidNotation, "input %q", bad)
	}
}

func TestSquareNotationRoundTrip(t *testing.T) {
	for s := Square(0); s < NumSquares; s++ {
		back, err := ParseSquare(s.String())
		require.NoError(t, err)
		require.Equal(t, s, back)
	}
	assert.Equal(t, NoSquare, SquareAt(10, 0))
	assert.Equal(t, NoSquare, SquareAt(0, -1))
	assert.True(t, OnBoard(9, 8))
	assert.False(t, OnBoard(-1, 0))
	assert.False(t, OnBoard(0, 9))
	assert.Equal(t, "-", NoSquare.String())
}

func TestPalaceGeometry(t *testing.T) {
	assert.True(t, InPalace(Blue, 8, 4))
	assert.True(t, InPalace(Blue, 7, 3))
	assert.False(t, InPalace(Blue, 6, 4))
	assert.False(t, InPalace(Blue, 8, 2))
	assert.False(t, InPalace(Blue, 1, 4))
	assert.True(t, InPalace(Red, 0, 3))
	assert.True(t, InPalace(Red, 2, 5))
	assert.False(t, InPalace(Red, 3, 4))
	assert.False(t, InPalace(NoTeam, 1, 4))

	blueDiag := map[[2]int]bool{{7, 3}: true, {7, 5}: true, {8, 4}: true, {9, 3}: true, {9, 5}: true}
	for r := 7; r <= 9; r++ {
		for c := 3; c <= 5; c++ {
			assert.Equal(t, blueDiag[[2]int{r, c}], OnPalaceDiagonal(Blue, r, c), "blue %d,%d", r, c)
			assert.Equal(t, blueDiag[[2]int{r, c}], OnPalaceDiagonal(Red, r-7, c), "red %d,%d", r-7, c)
		}
	}
	assert.False(t, OnPalaceDiagonal(Red, 8, 4), "blue palace centre is not on red's diagonal")
}

func TestInitialPosition(t *testing.T) {
	g := NewGame()
	assert.Equal(t, startFEN, g.Encode())
	assert.Equal(t, Blue, g.Turn())
	assert.Equal(t, Unfinished, g.Status())
	assert.Len(t, g.Pieces(Blue), 16)
	assert.Len(t, g.Pieces(Red), 16)
	require.NoError(t, g.verify())

	b := g.Board()
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	require.Len(t, lines, Rows+1)
	assert.Equal(t, " 1 r e h a . a e h r", lines[1])
	assert.Equal(t, " 9 . . . . G . . . .", lines[9])
	assert.Equal(t, "10 R E H A . A E H R", lines[10])

	id, p, ok := g.PieceAt(sq(t, "e9"))
	require.True(t, ok)
	assert.Equal(t, General, p.Kind)
	assert.Equal(t, Blue, p.Team)
	assert.Equal(t, g.general(Blue), id)

	_, _, ok = g.PieceAt(sq(t, "e5"))
	assert.False(t, ok)
}

func TestLineBetween(t *testing.T) {
	assert.Equal(t, squares(t, "b1", "c1", "d1"), sorted(lineBetween(sq(t, "a1"), sq(t, "e1"))))
	assert.Equal(t, squares(t, "e3", "e4"), sorted(lineBetween(sq(t, "e5"), sq(t, "e2"))))
	assert.Equal(t, squares(t, "e2"), lineBetween(sq(t, "d1"), sq(t, "f3")))
	assert.Empty(t, lineBetween(sq(t, "e1"), sq(t, "e2")))
	assert.Nil(t, lineBetween(sq(t, "a1"), sq(t, "b3")))
}
