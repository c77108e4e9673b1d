// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ballot

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/tally/internal/idset"
)

func TestCompareByBallot(t *testing.T) {
	buf := buildBuffer(t, [][]Rank{
		{Single(1), Single(2), Single(3)},
		{Single(2)},
		{},
	})

	require.Greater(t, buf.CompareByBallot(0, 1, 2), 0)
	require.Less(t, buf.CompareByBallot(0, 2, 1), 0)
	require.Equal(t, CompareInfinite, buf.CompareByBallot(1, 2, 3))
	require.Equal(t, -CompareInfinite, buf.CompareByBallot(1, 3, 2))
	require.Equal(t, 0, buf.CompareByBallot(2, 1, 2))
}

func TestScanNthPreferences(t *testing.T) {
	buf := buildBuffer(t, [][]Rank{
		{Single(1), Single(2)},
		{Single(2), Single(1)},
		{Single(3)},
	})
	active := idset.Of(CandidateID(1), CandidateID(2), CandidateID(3))

	tally0, assign0 := buf.ScanNthPreferences(active, 0)
	require.Equal(t, 1, tally0[1])
	require.Equal(t, 1, tally0[2])
	require.Equal(t, 1, tally0[3])
	require.Equal(t, []CandidateID{1, 2, 3}, assign0)

	tally1, _ := buf.ScanNthPreferences(active, 1)
	require.Equal(t, 1, tally1[2])
	require.Equal(t, 1, tally1[1])
	require.Equal(t, 0, tally1[3])
}

func TestScanNthPreferences_SkipsInactive(t *testing.T) {
	buf := buildBuffer(t, [][]Rank{
		{Single(1), Single(2), Single(3)},
	})
	active := idset.Of(CandidateID(1), CandidateID(3))

	_, assign := buf.ScanNthPreferences(active, 1)
	require.Equal(t, CandidateID(3), assign[0])
}

func TestScanNextPreferences(t *testing.T) {
	buf := buildBuffer(t, [][]Rank{
		{Single(1), Single(2), Single(3)},
		{Single(2)},
	})
	active := idset.Of(CandidateID(1), CandidateID(2), CandidateID(3))

	_, assign := buf.ScanNextPreferences(active, 1)
	require.Equal(t, CandidateID(2), assign[0])
	require.Equal(t, CandidateID(0), assign[1])
}
