// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package boundary

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/tally/ballot"
	"github.com/luxfi/tally/result"
	"github.com/luxfi/tally/tiebreak"
)

func TestResolve_NoTieAtBoundary(t *testing.T) {
	sorted := []ballot.CandidateID{1, 2, 3}
	key := map[ballot.CandidateID]float64{1: 3, 2: 2, 3: 1}
	winners, tieResult := Resolve(sorted, 2, func(c ballot.CandidateID) float64 { return key[c] }, nil)
	require.Nil(t, tieResult)
	require.Equal(t, []ballot.CandidateID{1, 2}, winners)
}

func TestResolve_NEqualsLenReturnsAll(t *testing.T) {
	sorted := []ballot.CandidateID{1, 2}
	winners, tieResult := Resolve(sorted, 5, func(ballot.CandidateID) float64 { return 0 }, nil)
	require.Nil(t, tieResult)
	require.Equal(t, sorted, winners)
}

func TestResolve_NZeroReturnsNothing(t *testing.T) {
	sorted := []ballot.CandidateID{1, 2}
	winners, tieResult := Resolve(sorted, 0, func(ballot.CandidateID) float64 { return 0 }, nil)
	require.Nil(t, tieResult)
	require.Nil(t, winners)
}

func TestResolve_BoundaryTieWithoutBreakerNeedsOne(t *testing.T) {
	sorted := []ballot.CandidateID{1, 2, 3}
	key := map[ballot.CandidateID]float64{1: 5, 2: 1, 3: 1}
	_, tieResult := Resolve(sorted, 2, func(c ballot.CandidateID) float64 { return key[c] }, nil)
	require.NotNil(t, tieResult)
	require.Equal(t, result.StatusTieBreakerNeeded, tieResult.Status)
	require.ElementsMatch(t, []ballot.CandidateID{2, 3}, tieResult.TiedCandidates)
}

func TestResolve_BoundaryTieResolvedByBreaker(t *testing.T) {
	sorted := []ballot.CandidateID{1, 2, 3}
	key := map[ballot.CandidateID]float64{1: 5, 2: 1, 3: 1}
	tb := tiebreak.New([]ballot.CandidateID{3, 2, 1})

	winners, tieResult := Resolve(sorted, 2, func(c ballot.CandidateID) float64 { return key[c] }, tb)
	require.Nil(t, tieResult)
	require.Equal(t, []ballot.CandidateID{1, 3}, winners)
}

func TestResolve_IncompleteTieBreaker(t *testing.T) {
	sorted := []ballot.CandidateID{1, 2, 3}
	key := map[ballot.CandidateID]float64{1: 5, 2: 1, 3: 1}
	tb := tiebreak.New([]ballot.CandidateID{1, 2})

	_, tieResult := Resolve(sorted, 2, func(c ballot.CandidateID) float64 { return key[c] }, tb)
	require.NotNil(t, tieResult)
	require.Equal(t, result.StatusIncompleteTieBreaker, tieResult.Status)
	require.Equal(t, []ballot.CandidateID{3}, tieResult.Missing)
}
