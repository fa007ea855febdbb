// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scrypt

import (
	"github.com/pkg/errors"
)

const maxInt = int(^uint(0) >> 1)

// blockSize is the size in bytes of one Salsa20/8 element block.
const blockSize = 64

// Params holds a validated scrypt cost triple. The zero value is not valid;
// use NewParams.
type Params struct {
	n, r, p int
}

// NewParams validates the scrypt cost parameters.
//
// N is a CPU/memory cost parameter, which must be a power of two greater than 1.
// r and p must be positive and satisfy r * p < 2³⁰. Sizes derived from the
// parameters must also fit in an int.
func NewParams(N, r, p int) (Params, error) {
	if N <= 1 || N&(N-1) != 0 {
		return Params{}, errors.Wrapf(ErrInvalidParameter, "N=%d must be > 1 and a power of 2", N)
	}
	if r <= 0 {
		return Params{}, errors.Wrapf(ErrInvalidParameter, "r=%d must be > 0", r)
	}
	if p <= 0 {
		return Params{}, errors.Wrapf(ErrInvalidParameter, "p=%d must be > 0", p)
	}
	if uint64(r)*uint64(p) >= 1<<30 || r > maxInt/128/p || r > maxInt/256 || N > maxInt/128/r {
		return Params{}, errors.Wrapf(ErrInvalidParameter, "N=%d r=%d p=%d are too large", N, r, p)
	}
	return Params{n: N, r: r, p: p}, nil
}

// N returns the CPU/memory cost parameter.
func (p Params) N() int { return p.n }

// R returns the block-size factor.
func (p Params) R() int { return p.r }

// P returns the parallelization factor, which is also the number of segments.
func (p Params) P() int { return p.p }

func (p Params) valid() bool { return p.n > 1 && p.r > 0 && p.p > 0 }

// ElementBlockCount is the number of 64-byte Salsa20/8 blocks in a segment.
func (p Params) ElementBlockCount() int { return 2 * p.r }

// SegmentLen is the size in bytes of one segment.
func (p Params) SegmentLen() int { return p.ElementBlockCount() * blockSize }

// BufferLen is the size in bytes of the working buffer holding all p segments.
func (p Params) BufferLen() int { return p.SegmentLen() * p.p }

// ScratchLen is the size in bytes of the V table a single mixing unit needs.
func (p Params) ScratchLen() int { return p.SegmentLen() * p.n }

// MemoryPerUnit is the scratch memory one mixing unit holds while it runs:
// the V table plus the X and Y working blocks.
func (p Params) MemoryPerUnit() int { return p.ScratchLen() + 2*p.SegmentLen() }

// PeakMemory estimates the memory a derivation holds when at most workers
// units run at the same time.
func (p Params) PeakMemory(workers int) int {
	if workers <= 0 || workers > p.p {
		workers = p.p
	}
	return p.BufferLen() + workers*p.MemoryPerUnit()
}
