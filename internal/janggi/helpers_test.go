package janggi

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func mustDecode(t *testing.T, fen string) *Game {
	t.Helper()
	g, err := DecodePosition(fen)
	require.NoError(t, err, "decode %q", fen)
	return g
}

func sq(t *testing.T, s string) Square {
	t.Helper()
	v, err := ParseSquare(s)
	require.NoError(t, err)
	return v
}

func squares(t *testing.T, names ...string) []Square {
	t.Helper()
	out := make([]Square, 0, len(names))
	for _, n := range names {
		out = append(out, sq(t, n))
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func sorted(in []Square) []Square {
	out := append([]Square{}, in...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func assertDests(t *testing.T, g *Game, from string, want ...string) {
	t.Helper()
	got := sorted(g.DestinationsFrom(sq(t, from)))
	if diff := cmp.Diff(squares(t, want...), got, cmp.Transformer("notation", func(s Square) string { return s.String() })); diff != "" {
		t.Errorf("destinations from %s mismatch (-want +got):\n%s", from, diff)
	}
}
