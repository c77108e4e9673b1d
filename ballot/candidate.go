// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ballot implements the compact binary ballot buffer shared by
// every tabulation method, its encoder, and the scan primitives engines
// use to read it without allocating per ballot.
package ballot

import "fmt"

// CandidateID identifies a candidate on a ballot. Zero is reserved as a
// rank separator on the wire and is never a valid candidate id.
type CandidateID uint32

// NoID and YesID are the two candidate ids reserved for the Yes/No and
// Yes/No/Blank voting methods. Elections using any other method start
// assigning ids at 1 and never collide with these, because those
// elections ignore the reservation entirely.
const (
	NoID  CandidateID = 1
	YesID CandidateID = 2
)

// MaxCandidateID is the largest id the wire encoding can carry: ballot
// rows are stored as 16-bit words.
const MaxCandidateID = CandidateID(^uint16(0))

func validateCandidateID(id CandidateID) error {
	if id == 0 {
		return fmt.Errorf("%w: candidate id 0 is reserved as a rank separator", ErrInvalidRank)
	}
	if id > MaxCandidateID {
		return fmt.Errorf("%w: candidate id %d exceeds %d", ErrInvalidRank, id, MaxCandidateID)
	}
	return nil
}
