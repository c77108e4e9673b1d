// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rankedpairs

import (
	"sort"

	"github.com/luxfi/tally/ballot"
	"github.com/luxfi/tally/result"
	"github.com/luxfi/tally/tiebreak"
)

// Run executes the full Ranked Pairs pipeline: the fixed domain mention
// filter, pair graph construction, per-ballot application, per-edge
// winner resolution, then the round-by-round winner extraction loop.
// candidates must already have passed the dispatcher's configured
// mention filter; this engine additionally applies the method's own
// fixed half-ballot-count filter (spec §4.6 step 1).
func Run(maxWinners int, candidates []ballot.CandidateID, mentions map[ballot.CandidateID]uint32, buf *ballot.Buffer, tb *tiebreak.Breaker) *result.VoteResult {
	ballotCount := buf.Len()

	filtered := filterByHalfBallotCount(candidates, mentions, ballotCount)
	sort.Slice(filtered, func(i, j int) bool { return filtered[i] < filtered[j] })

	graph := newPairGraph(filtered)

	empty := 0
	for i := 0; i < ballotCount; i++ {
		if !graph.apply(buf, i) {
			empty++
		}
	}
	if empty*2 >= ballotCount {
		return &result.VoteResult{Status: result.StatusMajorityEmpty}
	}

	if tieResult := resolveEdgeWinners(graph, tb); tieResult != nil {
		return tieResult
	}

	active := make(map[ballot.CandidateID]bool, len(filtered))
	for _, c := range filtered {
		active[c] = true
	}

	target := maxWinners
	if len(filtered) < target {
		target = len(filtered)
	}

	var winners []ballot.CandidateID
	var rounds []result.RankedPairsRound

	for len(winners) < target {
		pairSet := activePairSet(graph, active)
		ordered, tieResult := orderPairs(pairSet, tb)
		if tieResult != nil {
			return tieResult
		}

		activeNodes := make([]ballot.CandidateID, 0, len(active))
		for c := range active {
			activeNodes = append(activeNodes, c)
		}
		lock := newLockGraph(activeNodes)
		for _, e := range ordered {
			lock.tryAddEdge(e.winner(), e.loser())
		}

		roots := lock.roots()
		sort.Slice(roots, func(i, j int) bool { return roots[i] < roots[j] })

		winner := roots[0]
		if len(roots) > 1 {
			var tieResult *result.VoteResult
			winner, tieResult = resolveDisjointRoots(lock, roots, tb)
			if tieResult != nil {
				return tieResult
			}
		}

		edgeList := lock.edgeList()
		sort.Slice(edgeList, func(i, j int) bool {
			if edgeList[i][0] != edgeList[j][0] {
				return edgeList[i][0] < edgeList[j][0]
			}
			return edgeList[i][1] < edgeList[j][1]
		})
		orderedPairs := make([][2]ballot.CandidateID, len(ordered))
		for i, e := range ordered {
			orderedPairs[i] = [2]ballot.CandidateID{e.winner(), e.loser()}
		}

		rounds = append(rounds, result.RankedPairsRound{
			Winner:         winner,
			OrderedPairs:   orderedPairs,
			LockGraphEdges: edgeList,
		})
		winners = append(winners, winner)
		delete(active, winner)
	}

	return &result.VoteResult{
		Status:  result.StatusSuccess,
		Winners: winners,
		Rounds:  rounds,
	}
}

func resolveDisjointRoots(lock *lockGraph, roots []ballot.CandidateID, tb *tiebreak.Breaker) (ballot.CandidateID, *result.VoteResult) {
	if tb == nil {
		var pairs [][2]ballot.CandidateID
		for i := 0; i < len(roots); i++ {
			for j := i + 1; j < len(roots); j++ {
				pairs = append(pairs, [2]ballot.CandidateID{roots[i], roots[j]})
			}
		}
		return 0, &result.VoteResult{Status: result.StatusTieBreakerNeeded, TiedPairs: pairs}
	}

	var missing []ballot.CandidateID
	for _, r := range roots {
		if _, ok := tb.Index(r); !ok {
			missing = append(missing, r)
		}
	}
	if len(missing) > 0 {
		return 0, &result.VoteResult{Status: result.StatusIncompleteTieBreaker, Missing: missing}
	}

	for i := 0; i < len(roots); i++ {
		for j := i + 1; j < len(roots); j++ {
			a, b := roots[i], roots[j]
			if tb.Prefers(a, b) {
				lock.forceAddEdge(a, b)
			} else {
				lock.forceAddEdge(b, a)
			}
		}
	}
	newRoots := lock.roots()
	if len(newRoots) != 1 {
		panic("rankedpairs: internal invariant violated: more than one root after tie-breaker insertion")
	}
	return newRoots[0], nil
}

func filterByHalfBallotCount(candidates []ballot.CandidateID, mentions map[ballot.CandidateID]uint32, ballotCount int) []ballot.CandidateID {
	var out []ballot.CandidateID
	for _, c := range candidates {
		if int(mentions[c])*2 >= ballotCount {
			out = append(out, c)
		}
	}
	return out
}

func resolveEdgeWinners(g *pairGraph, tb *tiebreak.Breaker) *result.VoteResult {
	keys := make([]pairKey, 0, len(g.edges))
	for k := range g.edges {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i][0] != keys[j][0] {
			return keys[i][0] < keys[j][0]
		}
		return keys[i][1] < keys[j][1]
	})

	for _, k := range keys {
		e := g.edges[k]
		if e.Ballots == 0 {
			continue
		}
		switch {
		case e.Diff > 0:
			e.LeftWon = true
		case e.Diff < 0:
			e.RightWon = true
		default:
			if tb == nil {
				return &result.VoteResult{Status: result.StatusTieBreakerNeeded, TiedPairs: [][2]ballot.CandidateID{{e.Right, e.Left}}}
			}
			li, lok := tb.Index(e.Left)
			ri, rok := tb.Index(e.Right)
			if !lok || !rok {
				var missing []ballot.CandidateID
				if !lok {
					missing = append(missing, e.Left)
				}
				if !rok {
					missing = append(missing, e.Right)
				}
				return &result.VoteResult{Status: result.StatusIncompleteTieBreaker, Missing: missing}
			}
			if li < ri {
				e.LeftWon = true
			} else {
				e.RightWon = true
			}
		}
	}
	return nil
}

func activePairSet(g *pairGraph, active map[ballot.CandidateID]bool) []*edge {
	var out []*edge
	for _, e := range g.edges {
		if e.Ballots == 0 {
			continue
		}
		if !active[e.Left] || !active[e.Right] {
			continue
		}
		out = append(out, e)
	}
	return out
}
