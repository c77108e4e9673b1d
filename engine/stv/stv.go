// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package stv

import (
	"sort"

	"github.com/luxfi/tally/ballot"
	"github.com/luxfi/tally/internal/idset"
	"github.com/luxfi/tally/result"
	"github.com/luxfi/tally/tiebreak"
)

// Run executes the Single Transferable Vote tabulation: Hagenbach-
// Bischoff quota elections, the fractional Gregory surplus transfer,
// and elimination with n-th preference descent, until max_winners seats
// are filled.
func Run(maxWinners int, candidates []ballot.CandidateID, buf *ballot.Buffer, tb *tiebreak.Breaker) *result.VoteResult {
	original := append([]ballot.CandidateID(nil), candidates...)
	sort.Slice(original, func(i, j int) bool { return original[i] < original[j] })

	if maxWinners >= len(original) {
		return &result.VoteResult{
			Status:  result.StatusSuccess,
			Winners: append([]ballot.CandidateID(nil), original...),
			STVEvents: []result.STVEvent{{
				Kind:    result.STVElectRest,
				Elected: append([]ballot.CandidateID(nil), original...),
			}},
		}
	}

	ballotCount := buf.Len()
	table := newVoteTable(original, ballotCount)

	allSet := idset.Of(original...)
	_, firstPrefs := buf.ScanNthPreferences(allSet, 0)
	for i, c := range firstPrefs {
		if c != 0 {
			table.values[c][i] = 1.0
		}
	}

	remaining := idset.Of(original...)
	var elected []ballot.CandidateID
	var events []result.STVEvent

	quota := float64(ballotCount) / float64(maxWinners+1)

	for {
		if len(elected)+remaining.Len() <= maxWinners {
			rest := sortedList(remaining)
			elected = append(elected, rest...)
			events = append(events, result.STVEvent{Kind: result.STVElectRest, Elected: rest})
			break
		}
		if len(elected) >= maxWinners {
			break
		}

		newly, tieResult := electByQuota(remaining, table, quota, maxWinners-len(elected), tb)
		if tieResult != nil {
			return tieResult
		}

		if len(newly) > 0 {
			events = append(events, result.STVEvent{
				Kind:    result.STVElectWithQuota,
				Elected: newly,
				Values:  snapshotValues(table, original),
				Quota:   quota,
			})
			for _, c := range newly {
				remaining.Remove(c)
				elected = append(elected, c)
			}
			for _, c := range newly {
				transferSurplus(buf, table, remaining, c, quota)
			}
			continue
		}

		loser, tieResult := chooseElimination(buf, remaining, table, original, tb)
		if tieResult != nil {
			return tieResult
		}
		transferAll(buf, table, remaining, loser)
		events = append(events, result.STVEvent{
			Kind:      result.STVEliminate,
			Candidate: loser,
			Values:    snapshotValues(table, original),
		})
		remaining.Remove(loser)
	}

	return &result.VoteResult{
		Status:    result.StatusSuccess,
		Winners:   elected,
		STVEvents: events,
	}
}

func sortedList(s idset.Set[ballot.CandidateID]) []ballot.CandidateID {
	out := s.List()
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
