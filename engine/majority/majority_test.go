// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package majority

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/tally/ballot"
	"github.com/luxfi/tally/result"
	"github.com/luxfi/tally/tiebreak"
)

func TestRun_TopNByMentions(t *testing.T) {
	candidates := []ballot.CandidateID{1, 2, 3, 4}
	mentions := map[ballot.CandidateID]uint32{1: 10, 2: 8, 3: 6, 4: 4}

	res := Run(2, candidates, mentions, nil)
	require.Equal(t, result.StatusSuccess, res.Status)
	require.Equal(t, []ballot.CandidateID{1, 2}, res.Winners)
	require.Equal(t, mentions, res.Mentions.Mentions)
}

func TestRun_BoundaryTieEscalates(t *testing.T) {
	candidates := []ballot.CandidateID{1, 2, 3}
	mentions := map[ballot.CandidateID]uint32{1: 10, 2: 5, 3: 5}

	res := Run(2, candidates, mentions, nil)
	require.Equal(t, result.StatusTieBreakerNeeded, res.Status)
	require.ElementsMatch(t, []ballot.CandidateID{2, 3}, res.TiedCandidates)
}

func TestRun_BoundaryTieResolvedByBreaker(t *testing.T) {
	candidates := []ballot.CandidateID{1, 2, 3}
	mentions := map[ballot.CandidateID]uint32{1: 10, 2: 5, 3: 5}
	tb := tiebreak.New([]ballot.CandidateID{3, 2, 1})

	res := Run(2, candidates, mentions, tb)
	require.Equal(t, result.StatusSuccess, res.Status)
	require.Equal(t, []ballot.CandidateID{1, 3}, res.Winners)
}
