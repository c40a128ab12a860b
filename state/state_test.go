package state_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bitsearch/state"
)

func TestEncode(t *testing.T) {
	cases := []struct {
		name    string
		pattern string
		want    state.State
	}{
		{"Empty", "", 0},
		{"AllOff", "....", 0},
		{"MiddleTwo", ".##.", 0b0110},
		{"LowestBit", "#", 1},
		{"SparseSix", ".###.#", 0b101110},
		{"FullWidth", strings.Repeat("#", state.MaxWidth), ^state.State(0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := state.Encode(tc.pattern)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEncode_Errors(t *testing.T) {
	cases := []struct {
		name    string
		pattern string
	}{
		{"TooWide", strings.Repeat(".", state.MaxWidth+1)},
		{"BadChar", ".#x."},
		{"Space", ". #"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := state.Encode(tc.pattern)
			assert.ErrorIs(t, err, state.ErrInvalidEncoding)
		})
	}
}

func TestFromPositions(t *testing.T) {
	s, err := state.FromPositions(1, 3, 3)
	require.NoError(t, err)
	assert.Equal(t, state.State(0b1010), s)

	s, err = state.FromPositions()
	require.NoError(t, err)
	assert.Zero(t, s)

	_, err = state.FromPositions(0, state.MaxWidth)
	assert.ErrorIs(t, err, state.ErrInvalidEncoding)
	_, err = state.FromPositions(-1)
	assert.ErrorIs(t, err, state.ErrInvalidEncoding)
}

func TestApply_IsInvolution(t *testing.T) {
	s := state.State(0b1011_0010)
	op := state.State(0b0110_0111)
	once := state.Apply(s, op)
	assert.Equal(t, state.State(0b1101_0101), once)
	assert.Equal(t, s, state.Apply(once, op), "applying an operation twice restores the state")
}

func TestQueries(t *testing.T) {
	s, err := state.Encode("#..#.#")
	require.NoError(t, err)

	assert.True(t, s.Has(0))
	assert.False(t, s.Has(1))
	assert.True(t, s.Has(5))
	assert.False(t, s.Has(-1))
	assert.False(t, s.Has(state.MaxWidth))

	assert.Equal(t, 3, s.Count())
	assert.Equal(t, []int{0, 3, 5}, s.Positions())
	assert.Equal(t, "#..#.#", s.Pattern(6))
	assert.Equal(t, "#..#.#..", s.Pattern(8))

	assert.True(t, s.Contains(0b1001))
	assert.False(t, s.Contains(0b0011))
	assert.True(t, s.Contains(0))

	assert.Equal(t, s, s.With(3), "With is idempotent")
	assert.Equal(t, s|0b10, s.With(1))
	assert.Equal(t, s, s.With(state.MaxWidth))
}

func TestPatternRoundTrip(t *testing.T) {
	for _, p := range []string{"", ".", "#", ".##.", "...#.", ".###.#", "##########"} {
		s, err := state.Encode(p)
		require.NoError(t, err)
		assert.Equal(t, p, s.Pattern(len(p)))
	}
}
