// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ballot

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func buildBuffer(t *testing.T, ballots [][]Rank) *Buffer {
	t.Helper()
	enc := NewEncoder(len(ballots))
	for _, b := range ballots {
		require.NoError(t, enc.AddBallot(b...))
	}
	buf, err := enc.Finish()
	require.NoError(t, err)
	return buf
}

func TestBuffer_RoundTrip(t *testing.T) {
	buf := buildBuffer(t, [][]Rank{
		{Single(1), Single(2), Single(3)},
		{Single(2)},
		{},
	})

	require.Equal(t, 3, buf.Len())
	require.False(t, buf.IsBlank(0))
	require.False(t, buf.IsBlank(1))
	require.True(t, buf.IsBlank(2))

	require.True(t, buf.ContainsCandidate(0, 1))
	require.True(t, buf.ContainsCandidate(0, 2))
	require.True(t, buf.ContainsCandidate(0, 3))
	require.False(t, buf.ContainsCandidate(0, 4))
	require.False(t, buf.ContainsCandidate(2, 1))
}

func TestBuffer_TiedRanks(t *testing.T) {
	buf := buildBuffer(t, [][]Rank{
		{{1, 2}, {3}},
	})
	require.Equal(t, 1, buf.Len())
	require.True(t, buf.ContainsCandidate(0, 1))
	require.True(t, buf.ContainsCandidate(0, 2))
	require.True(t, buf.ContainsCandidate(0, 3))
}

func TestBuffer_MentionsMatchEncodedRows(t *testing.T) {
	buf := buildBuffer(t, [][]Rank{
		{Single(1), Single(2)},
		{Single(2), Single(3)},
		{},
	})
	mentions := CandidateMentions(buf)
	require.Equal(t, uint32(1), mentions[1])
	require.Equal(t, uint32(2), mentions[2])
	require.Equal(t, uint32(1), mentions[3])
}

func TestBuffer_CountBlanks(t *testing.T) {
	buf := buildBuffer(t, [][]Rank{
		{},
		{Single(1)},
		{},
	})
	require.Equal(t, 2, buf.CountBlanks())
}
