// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scrypt implements the scrypt key derivation function as defined in
// Colin Percival's paper "Stronger Key Derivation via Sequential Memory-Hard
// Functions" (http://www.tarsnap.com/scrypt/scrypt.pdf), running the p
// independent mixing computations in parallel.
//
// The working buffer of a derivation is split into p disjoint segments. Each
// segment is mixed by its own job with private scratch memory, so the jobs
// need no locking and the derived key is the same however they are
// scheduled. Jobs run on a jobqueue.Scheduler; see Deriver.
package scrypt

import (
	"github.com/parscrypt/parscrypt/jobqueue"
)

// DefaultPriority is the job priority used by Key.
const DefaultPriority = 0

var defaultDeriver = &Deriver{}

// Key derives a key from the password, salt, and cost parameters, returning
// a byte slice of length keyLen that can be used as cryptographic key.
//
// N is a CPU/memory cost parameter, which must be a power of two greater than 1.
// r and p must satisfy r * p < 2³⁰. If the parameters do not satisfy the
// limits, the function returns a nil byte slice and an error.
//
// For example, you can get a derived key for e.g. AES-256 (which needs a
// 32-byte key) by doing:
//
//	dk, err := scrypt.Key([]byte("some password"), salt, 32768, 8, 1, 32)
//
// The recommended parameters for interactive logins as of 2017 are N=32768, r=8
// and p=1. With p > 1 the mixing work is spread over the process-wide
// jobqueue.Default(). Remember to get a good random salt.
func Key(password, salt []byte, N, r, p, keyLen int) ([]byte, error) {
	params, err := NewParams(N, r, p)
	if err != nil {
		return nil, err
	}
	return defaultDeriver.Key(params, password, salt, keyLen, DefaultPriority)
}

// KeyParallel derives a keyLen-byte key on jobqueue.Default(), submitting
// the mixing units with the given priority.
func KeyParallel(params Params, password, salt []byte, keyLen, priority int) ([]byte, error) {
	return defaultDeriver.Key(params, password, salt, keyLen, priority)
}

// KeyParallelUnsalted is KeyParallel with an empty salt.
func KeyParallelUnsalted(params Params, password []byte, keyLen, priority int) ([]byte, error) {
	return defaultDeriver.KeyUnsalted(params, password, keyLen, priority)
}

// NewDeriver returns a Deriver running its units on sched with the Salsa
// core.
func NewDeriver(sched jobqueue.Scheduler) *Deriver {
	return &Deriver{Scheduler: sched, Core: Salsa}
}
