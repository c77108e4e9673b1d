// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ballot

import "errors"

var (
	// ErrInvalidRank is returned when a rank is empty or contains a
	// reserved or out-of-range candidate id.
	ErrInvalidRank = errors.New("ballot: invalid rank")

	// ErrBallotOverflow is returned when AddBallot is called more times
	// than the capacity declared to NewEncoder.
	ErrBallotOverflow = errors.New("ballot: declared ballot count exceeded")

	// ErrBallotCountMismatch is returned when Finish is called before
	// exactly the declared number of ballots has been added.
	ErrBallotCountMismatch = errors.New("ballot: declared ballot count not reached")
)
