// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jobqueue

import (
	"context"
	"runtime"

	"golang.org/x/sync/semaphore"
)

// Spawner starts a goroutine per job and lets at most a fixed number of
// them run at once. Priorities are ignored.
type Spawner struct {
	sem *semaphore.Weighted
}

// NewSpawner returns a Spawner running at most limit jobs at a time. A
// non-positive limit means runtime.GOMAXPROCS(0).
func NewSpawner(limit int) *Spawner {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	return &Spawner{sem: semaphore.NewWeighted(int64(limit))}
}

func (s *Spawner) Submit(job Job, priority int) (Handle, error) {
	if job == nil {
		return nil, errNilJob
	}
	t := newTask(job, priority)
	go func() {
		// Acquire only fails when the context is done.
		_ = s.sem.Acquire(context.Background(), 1)
		defer s.sem.Release(1)
		t.run(log)
		t.complete()
	}()
	return t, nil
}
