// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scrypt

import (
	"github.com/pkg/errors"
)

// Segment is the part of the working buffer mixed by one unit. It is
// 2*r element blocks of 64 bytes. A Segment never has spare capacity, so
// appending to it cannot write into the next segment.
type Segment []byte

// Block returns element block j of the segment.
func (s Segment) Block(j int) []byte {
	return s[j*blockSize : (j+1)*blockSize : (j+1)*blockSize]
}

// Blocks returns the number of element blocks in the segment.
func (s Segment) Blocks() int { return len(s) / blockSize }

// Buffer is the scrypt working buffer B, viewed as p disjoint segments.
// It is owned by a single derivation.
type Buffer struct {
	b      []byte
	params Params
}

// NewBuffer views b as the working buffer for params. b is not copied and
// must be exactly params.BufferLen() bytes long.
func NewBuffer(b []byte, params Params) (*Buffer, error) {
	if !params.valid() {
		return nil, errors.Wrap(ErrInvalidParameter, "zero Params")
	}
	if len(b) != params.BufferLen() {
		return nil, errors.Wrapf(ErrInvalidParameter, "buffer is %d bytes, want %d", len(b), params.BufferLen())
	}
	return &Buffer{b: b, params: params}, nil
}

// Segment returns the view of segment i. Views for distinct indices never
// overlap.
func (b *Buffer) Segment(i int) (Segment, error) {
	if i < 0 || i >= b.params.p {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "segment %d of %d", i, b.params.p)
	}
	return b.segment(i), nil
}

func (b *Buffer) segment(i int) Segment {
	n := b.params.SegmentLen()
	return Segment(b.b[i*n : (i+1)*n : (i+1)*n])
}

// Partition splits the buffer into all p segments, in index order.
func (b *Buffer) Partition() []Segment {
	segs := make([]Segment, b.params.p)
	for i := range segs {
		segs[i] = b.segment(i)
	}
	return segs
}

// Bytes returns the whole buffer.
func (b *Buffer) Bytes() []byte { return b.b }

// Params returns the parameters the buffer was sized for.
func (b *Buffer) Params() Params { return b.params }

// Wipe zeroes the buffer.
func (b *Buffer) Wipe() { clear(b.b) }
