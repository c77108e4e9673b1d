// Copyright (C) 2019-2026, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ballot

import "encoding/binary"

const (
	headerBallotCountSize   = 4
	offsetSize              = 4
	mentionsOffsetFieldSize = 4
	mentionEntrySize        = 8 // u32 candidate_id + u32 mentions
)

// Buffer is a finalised, read-only ballot buffer: a contiguous byte
// region holding N ranked ballots plus a per-candidate mention tally.
// Endianness follows the host; buffers are not portable across machines.
type Buffer struct {
	data []byte
}

// NewBuffer wraps a previously finalised byte region as a Buffer. The
// caller is responsible for ensuring data was produced by Encoder.Finish
// on this host.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: data}
}

// Len returns the number of ballots in the buffer.
func (b *Buffer) Len() int {
	return int(binary.NativeEndian.Uint32(b.data[0:4]))
}

func (b *Buffer) offset(i int) uint32 {
	return binary.NativeEndian.Uint32(b.data[4+4*i : 8+4*i])
}

func (b *Buffer) mentionsOffset() uint32 {
	n := b.Len()
	return binary.NativeEndian.Uint32(b.data[4+4*n : 8+4*n])
}

// span returns the byte range [start, end) of ballot i's row stream.
func (b *Buffer) span(i int) (start, end uint32) {
	n := b.Len()
	start = b.offset(i)
	if i == n-1 {
		end = b.mentionsOffset()
	} else {
		end = b.offset(i + 1)
	}
	return start, end
}

// rows returns ballot i's row stream as u16 words: 0 is a rank
// separator, nonzero is a candidate id.
func (b *Buffer) rows(i int) []uint16 {
	start, end := b.span(i)
	if end <= start {
		return nil
	}
	out := make([]uint16, 0, (end-start)/2)
	for off := start; off < end; off += 2 {
		out = append(out, binary.NativeEndian.Uint16(b.data[off:off+2]))
	}
	return out
}

// IsBlank reports whether ballot i has zero ranks.
func (b *Buffer) IsBlank(i int) bool {
	start, end := b.span(i)
	return start == end
}

// ContainsCandidate reports whether ballot i mentions id anywhere on it,
// irrespective of rank.
func (b *Buffer) ContainsCandidate(i int, id CandidateID) bool {
	for _, w := range b.rows(i) {
		if CandidateID(w) == id {
			return true
		}
	}
	return false
}

func align4(v uint32) uint32 {
	return (v + 3) &^ 3
}

// mentionsTable returns the raw (candidate id, count) pairs, in the
// ascending-id order the encoder wrote them in.
func (b *Buffer) mentionsTable() [][2]uint32 {
	off := align4(b.mentionsOffset())
	var out [][2]uint32
	for off+mentionEntrySize <= uint32(len(b.data)) {
		id := binary.NativeEndian.Uint32(b.data[off : off+4])
		count := binary.NativeEndian.Uint32(b.data[off+4 : off+8])
		out = append(out, [2]uint32{id, count})
		off += mentionEntrySize
	}
	return out
}
