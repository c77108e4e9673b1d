// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package result defines the unified, tagged VoteResult returned by the
// dispatcher for every voting method, and the sentinel errors that
// distinguish programmer errors from data-dependent outcomes.
package result

import "github.com/luxfi/tally/ballot"

// Status tags the shape of a VoteResult.
type Status string

const (
	StatusSuccess              Status = "success"
	StatusTieBreakerNeeded     Status = "tie_breaker_needed"
	StatusIncompleteTieBreaker Status = "incomplete_tie_breaker"
	StatusMajorityEmpty        Status = "majority_empty"
	StatusNoQuorum             Status = "no_quorum"
	StatusTooManyBlanks        Status = "too_many_blanks"
)

// Counts mirrors the ballot-counts triple attached to every result.
type Counts struct {
	Submitted int
	Blank     int
	Eligible  int
}

// YesNoTally carries the Yes/No(/Blank) engine's tally and pass/fail.
type YesNoTally struct {
	Yes, No, Blank int
	BallotsPassed  bool
	VotersPassed   bool
	Passed         bool
}

// MentionData carries the mention tally and mention-filter partition
// attached to Threshold Majority and Ranked Pairs results.
type MentionData struct {
	Mentions           map[ballot.CandidateID]uint32
	IncludedByMentions []ballot.CandidateID
	ExcludedByMentions []ballot.CandidateID
}

// RankedPairsRound records one round of the Ranked Pairs round loop.
type RankedPairsRound struct {
	Winner         ballot.CandidateID
	OrderedPairs   [][2]ballot.CandidateID
	LockGraphEdges [][2]ballot.CandidateID
}

// STVEventKind tags one entry of an STV engine's event log.
type STVEventKind string

const (
	STVElectWithQuota STVEventKind = "elect_with_quota"
	STVEliminate      STVEventKind = "eliminate"
	STVElectRest      STVEventKind = "elect_rest"
)

// STVEvent is one chronological entry of an STV run.
type STVEvent struct {
	Kind      STVEventKind
	Elected   []ballot.CandidateID
	Candidate ballot.CandidateID
	Values    map[ballot.CandidateID]float64
	Quota     float64
}

// VoteResult is the tagged union returned by the dispatcher.
type VoteResult struct {
	Status Status
	Counts Counts

	// Populated on StatusSuccess, depending on method.
	Winners   []ballot.CandidateID
	YesNo     *YesNoTally
	Mentions  *MentionData
	Rounds    []RankedPairsRound
	STVEvents []STVEvent

	// Populated on StatusTieBreakerNeeded / StatusIncompleteTieBreaker.
	TiedCandidates []ballot.CandidateID
	TiedPairs      [][2]ballot.CandidateID
	Missing        []ballot.CandidateID
}
