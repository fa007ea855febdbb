// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scrypt

import "sync"

var lockWarning sync.Once

// lockRegions pins regions in RAM and returns a func undoing it. Regions
// that cannot be locked, usually because of RLIMIT_MEMLOCK, are skipped
// and reported once per process.
func lockRegions(regions ...[]byte) (unlock func()) {
	locked := make([][]byte, 0, len(regions))
	for _, b := range regions {
		if err := lockMemory(b); err != nil {
			lockWarning.Do(func() {
				log.WithError(err).Warn("Could not lock scrypt memory; it may be swapped to disk")
			})
			continue
		}
		locked = append(locked, b)
	}
	return func() {
		for _, b := range locked {
			_ = unlockMemory(b)
		}
	}
}
