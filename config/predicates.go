// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"sort"

	"github.com/luxfi/tally/ballot"
	"github.com/luxfi/tally/rational"
)

// PassesQuorum reports whether counts.Submitted/counts.Eligible passes
// the configured quorum.
func PassesQuorum(q Quorum, counts Counts) bool {
	ratio := rational.Of(counts.Submitted, counts.Eligible)
	return ratio.Passes(q.Threshold.Value, q.Threshold.Inclusive)
}

// PassesBlankLimit reports whether counts.Blank/counts.Submitted is
// within the configured blank limit. An election with zero submitted
// ballots trivially passes: there is nothing to be blank.
func PassesBlankLimit(limit BlankLimit, counts Counts) bool {
	if counts.Submitted == 0 {
		return true
	}
	ratio := rational.Of(counts.Blank, counts.Submitted)
	return ratio.Within(limit.Threshold.Value, limit.Threshold.Inclusive)
}

// FilterByMentions partitions candidates into included and excluded
// according to whether mentions(c)/ballotCount passes the mention
// threshold. Both slices are returned in ascending candidate-id order
// for determinism.
func FilterByMentions(mt MentionThreshold, candidates []ballot.CandidateID, mentions map[ballot.CandidateID]uint32, ballotCount int) (included, excluded []ballot.CandidateID) {
	for _, c := range candidates {
		ratio := rational.Of(int(mentions[c]), ballotCount)
		if ratio.Passes(mt.Threshold.Value, mt.Threshold.Inclusive) {
			included = append(included, c)
		} else {
			excluded = append(excluded, c)
		}
	}
	sort.Slice(included, func(i, j int) bool { return included[i] < included[j] })
	sort.Slice(excluded, func(i, j int) bool { return excluded[i] < excluded[j] })
	return included, excluded
}
