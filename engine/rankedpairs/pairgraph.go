// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package rankedpairs implements the Ranked Pairs (Tideman) tabulation
// method: pairwise majority graph, strengthened pair ordering, a
// cycle-avoiding lock graph, and round-by-round winner extraction.
package rankedpairs

import "github.com/luxfi/tally/ballot"

// pairKey identifies an unordered candidate pair, canonically ordered
// (smaller id, larger id).
type pairKey [2]ballot.CandidateID

func newPairKey(a, b ballot.CandidateID) pairKey {
	if a < b {
		return pairKey{a, b}
	}
	return pairKey{b, a}
}

// edge is one entry of the pairwise majority graph. Right is the
// numerically smaller id by convention, Left the larger.
type edge struct {
	Right, Left ballot.CandidateID
	Ballots     int
	Diff        int
	LeftWon     bool
	RightWon    bool
}

func (e *edge) winner() ballot.CandidateID {
	if e.LeftWon {
		return e.Left
	}
	return e.Right
}

func (e *edge) loser() ballot.CandidateID {
	if e.LeftWon {
		return e.Right
	}
	return e.Left
}

// pairGraph is the pairwise majority graph: one edge per unordered
// candidate pair.
type pairGraph struct {
	edges map[pairKey]*edge
}

func newPairGraph(candidates []ballot.CandidateID) *pairGraph {
	g := &pairGraph{edges: make(map[pairKey]*edge)}
	for i := 0; i < len(candidates); i++ {
		for j := i + 1; j < len(candidates); j++ {
			key := newPairKey(candidates[i], candidates[j])
			g.edges[key] = &edge{Right: key[0], Left: key[1]}
		}
	}
	return g
}

// apply adds ballot i's contribution to every pair's diff/ballots.
// Returns true if the ballot touched at least one pair.
func (g *pairGraph) apply(buf *ballot.Buffer, i int) (touched bool) {
	for _, e := range g.edges {
		cmp := buf.CompareByBallot(i, e.Left, e.Right)
		if cmp == 0 {
			continue
		}
		touched = true
		e.Ballots++
		if cmp > 0 {
			e.Diff++
		} else {
			e.Diff--
		}
	}
	return touched
}
