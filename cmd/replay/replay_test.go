package main

import (
	"os"
	"strings"
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"janggi/internal/janggi"
)

func TestMain(m *testing.M) {
	log.SetHandler(discard.Default)
	os.Exit(m.Run())
}

func TestReplay(t *testing.T) {
	moves, err := janggi.ParseMoveLog(strings.NewReader("c7->c6\nc4->c5\ne9->e9\na4->a5\n"))
	require.NoError(t, err)

	g := janggi.NewGame()
	n, err := replay(g, moves)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, janggi.Blue, g.Turn())
	assert.Equal(t, moves, g.History())
}

func TestReplayStopsAtRejectedMove(t *testing.T) {
	moves, err := janggi.ParseMoveLog(strings.NewReader("c7->c6\nc6->c5\nc4->c5\n"))
	require.NoError(t, err)

	g := janggi.NewGame()
	n, err := replay(g, moves)
	assert.Equal(t, 1, n)
	assert.ErrorIs(t, err, janggi.ErrNotYourPiece)
	assert.Contains(t, err.Error(), "move 2 c6->c5 by Red")
}

func TestReplayFromPosition(t *testing.T) {
	g, err := janggi.DecodePosition("4g4/R8/8R/9/9/9/9/9/4G4/9 b")
	require.NoError(t, err)
	n, err := replay(g, []janggi.Move{{From: janggi.SquareAt(2, 8), To: janggi.SquareAt(0, 8)}})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, janggi.BlueWon, g.Status())
}
