// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/tally/rational"
)

func mustThreshold(t *testing.T, num, den int64, inclusive bool) Threshold {
	t.Helper()
	r, err := rational.New(num, den)
	require.NoError(t, err)
	return Threshold{Value: r, Inclusive: inclusive}
}

func TestBuilder_YesNoRequiresMajority(t *testing.T) {
	_, err := NewBuilder(MethodYesNo).
		WithQuorum(Quorum{Threshold: mustThreshold(t, 1, 2, true)}).
		Build()
	require.Error(t, err)
}

func TestBuilder_YesNoSucceedsWithMajority(t *testing.T) {
	cfg, err := NewBuilder(MethodYesNo).
		WithQuorum(Quorum{Threshold: mustThreshold(t, 1, 2, true)}).
		WithMajority(Majority{
			Ballots:       mustThreshold(t, 1, 2, true),
			Voters:        mustThreshold(t, 1, 2, true),
			MustReachBoth: false,
		}).
		Build()
	require.NoError(t, err)
	require.Equal(t, MethodYesNo, cfg.Method)
}

func TestBuilder_ThresholdMajorityRequiresAllThree(t *testing.T) {
	_, err := NewBuilder(MethodThresholdMajority).
		WithQuorum(Quorum{Threshold: mustThreshold(t, 1, 2, true)}).
		WithBlankLimit(BlankLimit{Threshold: mustThreshold(t, 1, 10, true)}).
		Build()
	require.Error(t, err)

	cfg, err := NewBuilder(MethodThresholdMajority).
		WithQuorum(Quorum{Threshold: mustThreshold(t, 1, 2, true)}).
		WithBlankLimit(BlankLimit{Threshold: mustThreshold(t, 1, 10, true)}).
		WithMaxChoices(3).
		WithMentionThreshold(MentionThreshold{Threshold: mustThreshold(t, 1, 10, true)}).
		Build()
	require.NoError(t, err)
	require.Equal(t, 3, cfg.MaxChoices.NumChosen)
}

func TestBuilder_STVDoesNotRequireMentionThreshold(t *testing.T) {
	cfg, err := NewBuilder(MethodSTV).
		WithQuorum(Quorum{Threshold: mustThreshold(t, 1, 2, true)}).
		WithBlankLimit(BlankLimit{Threshold: mustThreshold(t, 1, 10, true)}).
		WithMaxChoices(2).
		Build()
	require.NoError(t, err)
	require.Nil(t, cfg.MentionThreshold)
}

func TestBuilder_UnknownMethod(t *testing.T) {
	_, err := NewBuilder(Method("bogus")).Build()
	require.Error(t, err)
}
