package janggi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashInitializedFromInitialAndFEN(t *testing.T) {
	g := NewGame()
	b := g.Board()
	if b.Hash() != b.CalculateHash() {
		t.Fatalf("initial hash mismatch: got=%d want=%d", b.Hash(), b.CalculateHash())
	}

	decoded := mustDecode(t, startFEN)
	assert.Equal(t, g.Hash(), decoded.Hash())

	red := mustDecode(t, startFEN[:len(startFEN)-1]+"r")
	assert.NotEqual(t, g.Hash(), red.Hash())
	assert.Equal(t, Red, red.Turn())
}

func TestMoveHashIncrementalMatchesFullRecompute(t *testing.T) {
	g := NewGame()
	for ply := 0; ply < 24 && g.Status() == Unfinished; ply++ {
		moves := g.LegalMoves(g.Turn())
		if len(moves) == 0 {
			return
		}
		mv := moves[len(moves)/2]
		require.NoError(t, g.Play(g.Turn(), mv.From, mv.To), "ply %d move %s", ply, mv)
		b := g.Board()
		if got, want := b.Hash(), b.CalculateHash(); got != want {
			t.Fatalf("hash mismatch at ply %d: got=%d want=%d move=%s", ply, got, want, mv)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, fen := range []string{
		startFEN,
		"4g4/R8/8R/9/9/9/9/9/4G4/9 b",
		"4g4/9/r3S4/9/4C4/9/9/9/4G4/3R1R3 r",
		"3ag4/4a4/9/9/9/9/9/9/3GA4/9 r",
	} {
		g := mustDecode(t, fen)
		assert.Equal(t, fen, g.Encode())
		b := g.Board()
		assert.Equal(t, b.CalculateHash(), b.Hash())
	}
}

func TestDecodePositionErrors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"MissingSide", "4g4/9/9/9/9/9/9/9/4G4/9"},
		{"BadSide", "4g4/9/9/9/9/9/9/9/4G4/9 w"},
		{"TooFewRows", "4g4/9/9/9/9/9/9/4G4/9 b"},
		{"RowTooLong", "4g5/9/9/9/9/9/9/9/4G4/9 b"},
		{"RowTooShort", "4g3/9/9/9/9/9/9/9/4G4/9 b"},
		{"UnknownPiece", "4g4/9/9/9/4x4/9/9/9/4G4/9 b"},
		{"NoRedGeneral", "9/9/9/9/9/9/9/9/4G4/9 b"},
		{"TwoBlueGenerals", "4g4/9/9/9/9/9/9/3G5/4G4/9 b"},
		{"GeneralOutsidePalace", "g8/9/9/9/9/9/9/9/4G4/9 b"},
		{"GuardOutsidePalace", "4g4/9/9/9/4A4/9/9/9/4G4/9 b"},
		{"GuardInEnemyPalace", "4g4/4A4/9/9/9/9/9/9/4G4/9 b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := DecodePosition(tt.fen)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, ErrInvalidFEN)
		})
	}
}
