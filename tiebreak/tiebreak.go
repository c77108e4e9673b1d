// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package tiebreak implements the externally supplied tie-breaker: a
// total preorder over candidate ids given as a sequence, most preferred
// first. It is consulted only for the ambiguous subset handed to it.
package tiebreak

import (
	"sort"

	"github.com/luxfi/tally/ballot"
)

// Breaker is an ordered sequence of candidate ids expressing a strict
// total preference, most preferred first. A nil *Breaker behaves as an
// absent tie-breaker.
type Breaker struct {
	index map[ballot.CandidateID]int
}

// New builds a Breaker from the supplied preference order, most
// preferred first.
func New(order []ballot.CandidateID) *Breaker {
	idx := make(map[ballot.CandidateID]int, len(order))
	for i, id := range order {
		idx[id] = i
	}
	return &Breaker{index: idx}
}

// Index returns id's position in the tie-breaker (lower = more
// preferred) and whether id is present at all.
func (b *Breaker) Index(id ballot.CandidateID) (int, bool) {
	if b == nil {
		return 0, false
	}
	i, ok := b.index[id]
	return i, ok
}

// Order sorts ids by tie-breaker preference (most preferred first) and
// reports any ids absent from the tie-breaker sequence. If any are
// missing, ordered is nil.
func (b *Breaker) Order(ids []ballot.CandidateID) (ordered []ballot.CandidateID, missing []ballot.CandidateID) {
	for _, id := range ids {
		if _, ok := b.Index(id); !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return nil, missing
	}

	ordered = append([]ballot.CandidateID(nil), ids...)
	sort.Slice(ordered, func(i, j int) bool {
		ii, _ := b.Index(ordered[i])
		jj, _ := b.Index(ordered[j])
		return ii < jj
	})
	return ordered, nil
}

// Prefers reports whether a is more preferred than other (lower index
// wins). Both must be present in the tie-breaker; callers check Index
// first.
func (b *Breaker) Prefers(a, other ballot.CandidateID) bool {
	ai, _ := b.Index(a)
	oi, _ := b.Index(other)
	return ai < oi
}
