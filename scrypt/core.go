// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scrypt

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/pkg/errors"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/salsa20/salsa"
)

// Core supplies the scrypt primitives the dispatcher runs around. Every
// method must be deterministic, and Mix must only touch seg and s.
type Core interface {
	// InitialStretch expands password and salt into length bytes of
	// working buffer.
	InitialStretch(password, salt []byte, length int) []byte
	// Mix runs the memory-hard mix over seg in place.
	Mix(seg Segment, s *Scratch, params Params) error
	// FinalStretch compresses the mixed buffer into the derived key.
	FinalStretch(password, mixed []byte, keyLen int) []byte
}

// Scratch is the private working memory of one mixing unit.
type Scratch struct {
	X, Y []byte // working and shuffle blocks, one segment each
	V    []byte // N segment-sized entries
}

// NewScratch allocates zeroed scratch memory sized for params.
func NewScratch(params Params) *Scratch {
	n := params.SegmentLen()
	xy := make([]byte, 2*n)
	return &Scratch{
		X: xy[:n:n],
		Y: xy[n:],
		V: make([]byte, params.ScratchLen()),
	}
}

func (s *Scratch) regions() [][]byte {
	return [][]byte{s.X, s.Y, s.V}
}

// Wipe zeroes the scratch memory.
func (s *Scratch) Wipe() {
	for _, b := range s.regions() {
		clear(b)
	}
}

// Salsa is the standard scrypt core: PBKDF2-HMAC-SHA256 with one iteration
// for both stretch steps and ROMix over Salsa20/8.
var Salsa Core = salsaCore{}

type salsaCore struct{}

func (salsaCore) InitialStretch(password, salt []byte, length int) []byte {
	return pbkdf2.Key(password, salt, 1, length, sha256.New)
}

func (salsaCore) FinalStretch(password, mixed []byte, keyLen int) []byte {
	return pbkdf2.Key(password, mixed, 1, keyLen, sha256.New)
}

func (salsaCore) Mix(seg Segment, s *Scratch, params Params) error {
	n := params.SegmentLen()
	if len(seg) != n || len(s.X) < n || len(s.Y) < n || len(s.V) < params.ScratchLen() {
		return errors.Errorf("segment of %d bytes does not match r=%d", len(seg), params.r)
	}
	smix(seg, params.r, params.n, s.V, s.X, s.Y)
	return nil
}

// blockCopy copies n bytes from src into dst.
func blockCopy(dst, src []byte, n int) {
	copy(dst, src[:n])
}

// blockXOR XORs bytes from dst with n bytes from src.
func blockXOR(dst, src []byte, n int) {
	for i, v := range src[:n] {
		dst[i] ^= v
	}
}

func blockMix(b, y []byte, r int) {
	var x [blockSize]byte

	blockCopy(x[:], b[(2*r-1)*blockSize:], blockSize)

	for i := 0; i < 2*r*blockSize; i += blockSize {
		blockXOR(x[:], b[i:], blockSize)
		salsa.Core208(&x, &x)
		blockCopy(y[i:], x[:], blockSize)
	}

	for i := 0; i < r; i++ {
		blockCopy(b[i*blockSize:], y[i*2*blockSize:], blockSize)
	}

	for i := 0; i < r; i++ {
		blockCopy(b[(i+r)*blockSize:], y[(i*2+1)*blockSize:], blockSize)
	}
}

func integer(b []byte, r int) uint64 {
	return binary.LittleEndian.Uint64(b[(2*r-1)*blockSize:])
}

func smix(b []byte, r, N int, v, x, y []byte) {
	n := 128 * r

	blockCopy(x, b, n)

	for i := 0; i < N; i++ {
		blockCopy(v[i*n:], x, n)
		blockMix(x, y, r)
	}

	for i := 0; i < N; i++ {
		j := int(integer(x, r) & uint64(N-1))
		blockXOR(x, v[j*n:], n)
		blockMix(x, y, r)
	}

	blockCopy(b, x, n)
}
