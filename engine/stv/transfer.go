// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package stv

import (
	"github.com/luxfi/tally/ballot"
	"github.com/luxfi/tally/internal/idset"
)

// transferSurplus implements the Gregory transfer: the fraction f =
// (value - quota) / value of each of the elected candidate's ballots is
// moved to that ballot's next preference among remaining; the rest
// stays on the elected candidate. Ballots with no next preference among
// remaining keep their whole fraction, inert.
func transferSurplus(buf *ballot.Buffer, table *voteTable, remaining idset.Set[ballot.CandidateID], elected ballot.CandidateID, quota float64) {
	v := table.value(elected)
	if v <= quota {
		return
	}
	f := (v - quota) / v

	activeSet := idset.Of(remaining.List()...)
	_, next := buf.ScanNextPreferences(activeSet, elected)

	values := table.values[elected]
	for i, amt := range values {
		if amt == 0 {
			continue
		}
		dest := next[i]
		if dest == 0 {
			continue
		}
		transferred := amt * f
		values[i] = amt - transferred
		table.values[dest][i] += transferred
	}
}

// transferAll moves the eliminated candidate's entire value, ballot by
// ballot, to each ballot's next preference among the candidates still
// remaining after the elimination. Ballots with no such preference keep
// their fraction, inert.
func transferAll(buf *ballot.Buffer, table *voteTable, remaining idset.Set[ballot.CandidateID], loser ballot.CandidateID) {
	ids := make([]ballot.CandidateID, 0, remaining.Len())
	for c := range remaining {
		if c != loser {
			ids = append(ids, c)
		}
	}
	activeSet := idset.Of(ids...)
	_, next := buf.ScanNextPreferences(activeSet, loser)

	values := table.values[loser]
	for i, amt := range values {
		if amt == 0 {
			continue
		}
		dest := next[i]
		if dest == 0 {
			continue
		}
		table.values[dest][i] += amt
		values[i] = 0
	}
}
