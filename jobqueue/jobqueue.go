// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jobqueue schedules independent units of work and lets the caller
// wait for each of them.
//
// A Scheduler accepts a Job together with a priority, where a lower value
// means the job should run earlier, and returns a Handle whose Await blocks
// until the job has finished. Jobs are never cancelled once submitted.
//
// Queue is a fixed pool of workers draining a priority queue and is meant
// to be shared by a whole process (see Default). Inline runs every job on
// the submitting goroutine, and Spawner starts one goroutine per job with a
// bound on how many run at once.
package jobqueue

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	// ErrClosed is returned by Submit after the Queue has been closed.
	ErrClosed = errors.New("jobqueue: queue closed")

	// ErrJobPanicked is returned by Await when the job panicked.
	ErrJobPanicked = errors.New("jobqueue: job panicked")

	errNilJob = errors.New("jobqueue: nil job")
)

// Job is a unit of work.
type Job func() error

// Handle refers to a submitted Job.
type Handle interface {
	// Await blocks until the job has finished and returns its error.
	Await() error
}

// Scheduler runs submitted jobs. Submit must not wait for the job to run,
// except for schedulers that explicitly run jobs inline.
type Scheduler interface {
	Submit(job Job, priority int) (Handle, error)
}

var log logrus.FieldLogger

func init() {
	DisableLog()
}

// DisableLog disables all library log output.
func DisableLog() {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	log = l
}

// UseLogger sets the logger used by schedulers that were not given one
// explicitly.
func UseLogger(logger logrus.FieldLogger) {
	log = logger.WithField("pkg", "jobqueue")
}

// task is the Handle of every scheduler in this package.
type task struct {
	job      Job
	priority int
	seq      uint64
	index    int // heap index, maintained by taskHeap
	done     chan struct{}
	err      error
	panicked bool
}

func newTask(job Job, priority int) *task {
	return &task{
		job:      job,
		priority: priority,
		index:    -1,
		done:     make(chan struct{}),
	}
}

func (t *task) Await() error {
	<-t.done
	return t.err
}

// run executes the job once. Waiters are released by complete.
func (t *task) run(logger logrus.FieldLogger) {
	defer func() {
		if r := recover(); r != nil {
			t.panicked = true
			t.err = errors.Wrapf(ErrJobPanicked, "%v", r)
			logger.WithField("priority", t.priority).Errorf("Recovered from job panic: %v", r)
		}
	}()
	t.err = t.job()
}

func (t *task) complete() {
	close(t.done)
}
