// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package stv implements Single Transferable Vote tabulation using the
// Hagenbach-Bischoff quota and the fractional Gregory transfer.
// Elimination ties are broken by n-th preference descent, then by the
// external tie-breaker; election-overflow ties at the seat boundary go
// straight to the external tie-breaker via the shared boundary step,
// without n-th preference descent.
package stv

import "github.com/luxfi/tally/ballot"

// voteTable is the candidates x ballots table of vote values: the
// STV vote-value table from spec §3, modeled as a sparse-by-candidate
// map of per-ballot floats the way the teacher's bag models sparse
// integer counts, generalized here to fractional values.
type voteTable struct {
	values map[ballot.CandidateID][]float64
}

func newVoteTable(candidates []ballot.CandidateID, ballotCount int) *voteTable {
	t := &voteTable{values: make(map[ballot.CandidateID][]float64, len(candidates))}
	for _, c := range candidates {
		t.values[c] = make([]float64, ballotCount)
	}
	return t
}

// value returns the candidate's current vote value: the row sum.
func (t *voteTable) value(c ballot.CandidateID) float64 {
	sum := 0.0
	for _, v := range t.values[c] {
		sum += v
	}
	return sum
}

// snapshotValues returns a deep copy of every tracked candidate's
// current value, for attaching to an event.
func snapshotValues(t *voteTable, candidates []ballot.CandidateID) map[ballot.CandidateID]float64 {
	out := make(map[ballot.CandidateID]float64, len(candidates))
	for _, c := range candidates {
		out[c] = t.value(c)
	}
	return out
}
