// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tally

import (
	"sort"

	"github.com/luxfi/tally/ballot"
	"github.com/luxfi/tally/config"
	"github.com/luxfi/tally/result"
)

// MappedRank is one rank position of a mapped ballot: the set of
// candidate values tied at that rank, in the caller's own type.
type MappedRank[T comparable] []T

// MappedBallot is a full mapped ballot: an ordered sequence of ranks.
type MappedBallot[T comparable] []MappedRank[T]

// MappedMentionData mirrors result.MentionData with candidate ids
// remapped to the caller's type.
type MappedMentionData[T comparable] struct {
	Mentions           map[T]uint32
	IncludedByMentions []T
	ExcludedByMentions []T
}

// MappedRankedPairsRound mirrors result.RankedPairsRound with candidate
// ids remapped to the caller's type.
type MappedRankedPairsRound[T comparable] struct {
	Winner         T
	OrderedPairs   [][2]T
	LockGraphEdges [][2]T
}

// MappedSTVEvent mirrors result.STVEvent with candidate ids remapped to
// the caller's type.
type MappedSTVEvent[T comparable] struct {
	Kind      result.STVEventKind
	Elected   []T
	Candidate T
	Values    map[T]float64
	Quota     float64
}

// MappedVoteResult mirrors result.VoteResult with every candidate id
// remapped back to the caller's own type.
type MappedVoteResult[T comparable] struct {
	Status result.Status
	Counts result.Counts

	Winners   []T
	YesNo     *result.YesNoTally
	Mentions  *MappedMentionData[T]
	Rounds    []MappedRankedPairsRound[T]
	STVEvents []MappedSTVEvent[T]

	TiedCandidates []T
	TiedPairs      [][2]T
	Missing        []T
}

// RunMapped encodes ballots expressed over an arbitrary comparable
// candidate type, runs the election, and remaps the result back to that
// type. Yes/No and Yes/No/Blank elections require exactly two
// candidates; the first is mapped to ballot.NoID and the second to
// ballot.YesID, matching the bylaws' "No" / "Yes" ordering.
func RunMapped[T comparable](t *Tally, cfg config.Config, ballots []MappedBallot[T], eligible int, candidates []T, tieBreaker []T) (*MappedVoteResult[T], error) {
	if len(candidates) == 0 {
		return nil, result.ErrTooFewCandidates
	}
	isYesNo := cfg.Method == config.MethodYesNo || cfg.Method == config.MethodYesNoBlank
	if isYesNo && len(candidates) != 2 {
		return nil, result.ErrYesNoCandidateCount
	}

	idOf := make(map[T]ballot.CandidateID, len(candidates))
	valueOf := make(map[ballot.CandidateID]T, len(candidates))
	if isYesNo {
		idOf[candidates[0]] = ballot.NoID
		idOf[candidates[1]] = ballot.YesID
		valueOf[ballot.NoID] = candidates[0]
		valueOf[ballot.YesID] = candidates[1]
	} else {
		next := ballot.CandidateID(1)
		for _, c := range candidates {
			idOf[c] = next
			valueOf[next] = c
			next++
		}
	}

	mappedIDs := make([]ballot.CandidateID, 0, len(candidates))
	for _, c := range candidates {
		mappedIDs = append(mappedIDs, idOf[c])
	}
	sort.Slice(mappedIDs, func(i, j int) bool { return mappedIDs[i] < mappedIDs[j] })

	enc := ballot.NewEncoder(len(ballots))
	for _, mb := range ballots {
		ranks := make([]ballot.Rank, 0, len(mb))
		for _, rank := range mb {
			r := make(ballot.Rank, 0, len(rank))
			for _, v := range rank {
				id, ok := idOf[v]
				if !ok {
					return nil, result.ErrTooFewCandidates
				}
				r = append(r, id)
			}
			ranks = append(ranks, r)
		}
		if err := enc.AddBallot(ranks...); err != nil {
			return nil, err
		}
	}
	buf, err := enc.Finish()
	if err != nil {
		return nil, err
	}

	var tb []ballot.CandidateID
	for _, v := range tieBreaker {
		if id, ok := idOf[v]; ok {
			tb = append(tb, id)
		}
	}

	res := t.Run(cfg, buf, mappedIDs, eligible, tb)
	return remapResult(res, valueOf), nil
}

func remapResult[T comparable](res *result.VoteResult, valueOf map[ballot.CandidateID]T) *MappedVoteResult[T] {
	out := &MappedVoteResult[T]{
		Status:         res.Status,
		Counts:         res.Counts,
		Winners:        remapSlice(res.Winners, valueOf),
		YesNo:          res.YesNo,
		TiedCandidates: remapSlice(res.TiedCandidates, valueOf),
		TiedPairs:      remapPairs(res.TiedPairs, valueOf),
		Missing:        remapSlice(res.Missing, valueOf),
	}

	if res.Mentions != nil {
		out.Mentions = &MappedMentionData[T]{
			Mentions:           remapMap(res.Mentions.Mentions, valueOf),
			IncludedByMentions: remapSlice(res.Mentions.IncludedByMentions, valueOf),
			ExcludedByMentions: remapSlice(res.Mentions.ExcludedByMentions, valueOf),
		}
	}

	for _, r := range res.Rounds {
		out.Rounds = append(out.Rounds, MappedRankedPairsRound[T]{
			Winner:         valueOf[r.Winner],
			OrderedPairs:   remapPairs(r.OrderedPairs, valueOf),
			LockGraphEdges: remapPairs(r.LockGraphEdges, valueOf),
		})
	}

	for _, e := range res.STVEvents {
		out.STVEvents = append(out.STVEvents, MappedSTVEvent[T]{
			Kind:      e.Kind,
			Elected:   remapSlice(e.Elected, valueOf),
			Candidate: valueOf[e.Candidate],
			Values:    remapFloatMap(e.Values, valueOf),
			Quota:     e.Quota,
		})
	}

	return out
}

func remapSlice[T comparable](ids []ballot.CandidateID, valueOf map[ballot.CandidateID]T) []T {
	if ids == nil {
		return nil
	}
	out := make([]T, len(ids))
	for i, id := range ids {
		out[i] = valueOf[id]
	}
	return out
}

func remapPairs[T comparable](pairs [][2]ballot.CandidateID, valueOf map[ballot.CandidateID]T) [][2]T {
	if pairs == nil {
		return nil
	}
	out := make([][2]T, len(pairs))
	for i, p := range pairs {
		out[i] = [2]T{valueOf[p[0]], valueOf[p[1]]}
	}
	return out
}

func remapMap[T comparable](m map[ballot.CandidateID]uint32, valueOf map[ballot.CandidateID]T) map[T]uint32 {
	if m == nil {
		return nil
	}
	out := make(map[T]uint32, len(m))
	for id, v := range m {
		out[valueOf[id]] = v
	}
	return out
}

func remapFloatMap[T comparable](m map[ballot.CandidateID]float64, valueOf map[ballot.CandidateID]T) map[T]float64 {
	if m == nil {
		return nil
	}
	out := make(map[T]float64, len(m))
	for id, v := range m {
		out[valueOf[id]] = v
	}
	return out
}
