// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ballot

import (
	"encoding/binary"
	"fmt"
	"sort"
)

// Rank is a non-empty unordered set of candidate ids tied at one
// position on a ballot.
type Rank []CandidateID

// Single is a convenience constructor for a rank of one candidate.
func Single(id CandidateID) Rank {
	return Rank{id}
}

// Encoder appends ballots to a buffer under construction, maintaining a
// running mention tally, and emits the finalised buffer on Finish. An
// Encoder is owned by its caller until Finish returns; the returned
// Buffer is then read-only input to the engines.
type Encoder struct {
	declared int
	added    int
	rows     []uint16
	offsets  []uint32
	mentions *mentionTally
}

// NewEncoder reserves capacity for exactly n ballots.
func NewEncoder(n int) *Encoder {
	return &Encoder{
		declared: n,
		offsets:  make([]uint32, 0, n),
		mentions: newMentionTally(),
	}
}

func headerSize(n int) uint32 {
	return headerBallotCountSize + offsetSize*uint32(n) + mentionsOffsetFieldSize
}

// AddBallot appends one ballot. Rank index 0 is most preferred. A
// ballot with zero ranks is blank.
func (e *Encoder) AddBallot(ranks ...Rank) error {
	if e.added >= e.declared {
		return fmt.Errorf("%w: declared capacity is %d", ErrBallotOverflow, e.declared)
	}

	offset := headerSize(e.declared) + uint32(len(e.rows))*2
	e.offsets = append(e.offsets, offset)

	for i, rank := range ranks {
		if len(rank) == 0 {
			return fmt.Errorf("%w: rank %d is empty", ErrInvalidRank, i)
		}
		if i > 0 {
			e.rows = append(e.rows, 0)
		}
		for _, id := range rank {
			if err := validateCandidateID(id); err != nil {
				return err
			}
			e.rows = append(e.rows, uint16(id))
			e.mentions.add(id)
		}
	}
	e.added++
	return nil
}

// Finish writes the mentions table after aligning the cursor to 4 bytes,
// then returns the finalised, read-only buffer truncated to its exact
// used length.
func (e *Encoder) Finish() (*Buffer, error) {
	if e.added != e.declared {
		return nil, fmt.Errorf("%w: declared %d, added %d", ErrBallotCountMismatch, e.declared, e.added)
	}

	header := headerSize(e.declared)
	mentionsOffset := header + uint32(len(e.rows))*2

	buf := make([]byte, header, header+uint32(len(e.rows))*2+64)
	binary.NativeEndian.PutUint32(buf[0:4], uint32(e.declared))
	for i, off := range e.offsets {
		binary.NativeEndian.PutUint32(buf[4+4*i:8+4*i], off)
	}
	binary.NativeEndian.PutUint32(buf[4+4*e.declared:8+4*e.declared], mentionsOffset)

	for _, w := range e.rows {
		var word [2]byte
		binary.NativeEndian.PutUint16(word[:], w)
		buf = append(buf, word[:]...)
	}

	aligned := align4(mentionsOffset)
	for uint32(len(buf)) < aligned {
		buf = append(buf, 0)
	}

	ids := make([]CandidateID, 0, len(e.mentions.counts))
	for id := range e.mentions.counts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		var entry [8]byte
		binary.NativeEndian.PutUint32(entry[0:4], uint32(id))
		binary.NativeEndian.PutUint32(entry[4:8], e.mentions.counts[id])
		buf = append(buf, entry[:]...)
	}

	return &Buffer{data: buf}, nil
}
