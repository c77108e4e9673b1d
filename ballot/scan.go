// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ballot

import "github.com/luxfi/tally/internal/idset"

// CompareInfinite is the sentinel magnitude CompareByBallot returns when
// exactly one of the two candidates appears on the ballot.
const CompareInfinite = 1 << 30

// CountBlanks counts ballots whose rank list is empty.
func (b *Buffer) CountBlanks() int {
	n := b.Len()
	count := 0
	for i := 0; i < n; i++ {
		if b.IsBlank(i) {
			count++
		}
	}
	return count
}

// CompareByBallot walks ballot i, counting 0 separators as rank
// increments, and returns rank(b) - rank(a). Positive means a is
// preferred. If neither id appears, returns 0; if only a appears,
// returns +CompareInfinite; if only b appears, returns -CompareInfinite.
func (b *Buffer) CompareByBallot(i int, a, other CandidateID) int {
	rank := 0
	rankOfA, haveA := 0, false
	rankOfOther, haveOther := 0, false
	for _, w := range b.rows(i) {
		if w == 0 {
			rank++
			continue
		}
		id := CandidateID(w)
		if id == a && !haveA {
			rankOfA, haveA = rank, true
		}
		if id == other && !haveOther {
			rankOfOther, haveOther = rank, true
		}
		if haveA && haveOther {
			break
		}
	}
	switch {
	case !haveA && !haveOther:
		return 0
	case haveA && !haveOther:
		return CompareInfinite
	case !haveA && haveOther:
		return -CompareInfinite
	default:
		return rankOfOther - rankOfA
	}
}

// ScanNthPreferences returns, for each ballot, the tally of its (n+1)-th
// distinct active candidate id, plus a per-ballot assignment slice (0
// when no such preference exists on that ballot).
func (b *Buffer) ScanNthPreferences(active idset.Set[CandidateID], n int) (map[CandidateID]int, []CandidateID) {
	tally := make(map[CandidateID]int)
	assign := make([]CandidateID, b.Len())
	for i := 0; i < b.Len(); i++ {
		seen := 0
		for _, w := range b.rows(i) {
			if w == 0 {
				continue
			}
			id := CandidateID(w)
			if !active.Contains(id) {
				continue
			}
			if seen == n {
				assign[i] = id
				tally[id]++
				break
			}
			seen++
		}
	}
	return tally, assign
}

// ScanNextPreferences returns, for each ballot, the first active
// candidate id appearing strictly after given, plus a per-ballot
// assignment slice (0 when no such preference exists).
func (b *Buffer) ScanNextPreferences(active idset.Set[CandidateID], given CandidateID) (map[CandidateID]int, []CandidateID) {
	tally := make(map[CandidateID]int)
	assign := make([]CandidateID, b.Len())
	for i := 0; i < b.Len(); i++ {
		foundGiven := false
		for _, w := range b.rows(i) {
			if w == 0 {
				continue
			}
			id := CandidateID(w)
			if !foundGiven {
				if id == given {
					foundGiven = true
				}
				continue
			}
			if active.Contains(id) {
				assign[i] = id
				tally[id]++
				break
			}
		}
	}
	return tally, assign
}
