// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ballot

// mentionTally is a Bag[CandidateID]-shaped counter: one increment per
// occurrence of a candidate id on any ballot.
type mentionTally struct {
	counts map[CandidateID]uint32
}

func newMentionTally() *mentionTally {
	return &mentionTally{counts: make(map[CandidateID]uint32)}
}

func (m *mentionTally) add(id CandidateID) {
	m.counts[id]++
}

// CandidateMentions returns the buffer's mentions table as a map,
// satisfying the round-trip invariant: for every id c, the count equals
// the exact number of nonzero occurrences of c in the ballot rows.
func CandidateMentions(b *Buffer) map[CandidateID]uint32 {
	table := b.mentionsTable()
	out := make(map[CandidateID]uint32, len(table))
	for _, entry := range table {
		out[CandidateID(entry[0])] = entry[1]
	}
	return out
}
