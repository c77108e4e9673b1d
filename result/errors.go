// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package result

import "errors"

// Programmer errors (§7.1): fatal, never returned as a VoteResult.
var (
	// ErrTooFewCandidates is returned by the mapped entry when the
	// caller-supplied candidate list is empty, or a ballot references a
	// candidate value outside it.
	ErrTooFewCandidates = errors.New("tally: mapped entry requires at least one known candidate")

	// ErrYesNoCandidateCount is returned by the mapped entry when a
	// Yes/No(/Blank) election is given a candidate list other than
	// exactly two values.
	ErrYesNoCandidateCount = errors.New("tally: yes/no elections require exactly 2 candidates")
)
