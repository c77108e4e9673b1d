// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package config holds the tagged election configuration record and the
// quorum/blank-ratio/mention-threshold predicates the dispatcher's gates
// check before routing to an engine. Every field of the configuration
// records carries both json and toml tags: JSON for callers loading
// configuration from JSON, TOML for cmd/tally's standalone configuration
// profiles. Counts is an in-memory triple and carries no tags.
package config

import "github.com/luxfi/tally/rational"

// Method identifies one of the five bylaws-enumerated voting methods.
type Method string

const (
	MethodYesNo             Method = "yes_no"
	MethodYesNoBlank        Method = "yes_no_blank"
	MethodThresholdMajority Method = "threshold_majority"
	MethodRankedPairs       Method = "ranked_pairs"
	MethodSTV               Method = "stv"
)

// Threshold pairs a rational value with an inclusiveness flag.
type Threshold struct {
	Value     rational.Rational `json:"value" toml:"value"`
	Inclusive bool              `json:"inclusive" toml:"inclusive"`
}

// Quorum gates whether enough of the eligible electorate voted at all.
// Required on every method.
type Quorum struct {
	Threshold Threshold `json:"threshold" toml:"threshold"`
}

// BlankLimit gates the fraction of submitted ballots that may be blank.
// Required on every non-Yes/No method.
type BlankLimit struct {
	Threshold Threshold `json:"threshold" toml:"threshold"`
}

// Majority configures the Yes/No and Yes/No/Blank pass tests.
type Majority struct {
	Ballots       Threshold `json:"ballots" toml:"ballots"`
	Voters        Threshold `json:"voters" toml:"voters"`
	MustReachBoth bool      `json:"must_reach_both" toml:"must_reach_both"`
}

// MaxChoices bounds the number of winners for Threshold Majority,
// Ranked Pairs and STV.
type MaxChoices struct {
	NumChosen int `json:"num_chosen" toml:"num_chosen"`
}

// MentionThreshold filters candidates by their mention ratio for
// Threshold Majority and Ranked Pairs.
type MentionThreshold struct {
	Threshold Threshold `json:"threshold" toml:"threshold"`
}

// Config is the tagged configuration record dispatched on Method.
type Config struct {
	Method           Method            `json:"method" toml:"method"`
	Quorum           Quorum            `json:"quorum" toml:"quorum"`
	BlankLimit       *BlankLimit       `json:"blank_limit,omitempty" toml:"blank_limit,omitempty"`
	Majority         *Majority         `json:"majority,omitempty" toml:"majority,omitempty"`
	MaxChoices       *MaxChoices       `json:"max_choices,omitempty" toml:"max_choices,omitempty"`
	MentionThreshold *MentionThreshold `json:"mention_threshold,omitempty" toml:"mention_threshold,omitempty"`
}

// Counts is the ballot-counts triple used by every predicate below.
type Counts struct {
	Submitted int
	Blank     int
	Eligible  int
}
