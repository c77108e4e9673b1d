// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ballot

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateCandidateID_RejectsZero(t *testing.T) {
	err := validateCandidateID(0)
	require.ErrorIs(t, err, ErrInvalidRank)
}

func TestValidateCandidateID_RejectsOverflow(t *testing.T) {
	err := validateCandidateID(MaxCandidateID + 1)
	require.ErrorIs(t, err, ErrInvalidRank)
}

func TestValidateCandidateID_AcceptsInRange(t *testing.T) {
	require.NoError(t, validateCandidateID(1))
	require.NoError(t, validateCandidateID(MaxCandidateID))
}
