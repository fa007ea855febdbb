// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jobqueue

import (
	"container/heap"
	"runtime"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Queue is a fixed pool of workers running jobs in priority order. Jobs of
// equal priority start in submission order. A Queue is safe for concurrent
// use.
type Queue struct {
	mu      sync.Mutex
	cond    *sync.Cond
	pending taskHeap
	seq     uint64
	closed  bool

	workers int
	wg      sync.WaitGroup
	metrics *Metrics
	log     logrus.FieldLogger
}

// Option configures a Queue.
type Option func(*Queue)

// WithMetrics makes the queue report to m.
func WithMetrics(m *Metrics) Option {
	return func(q *Queue) { q.metrics = m }
}

// WithLogger sets the logger the queue reports recovered panics to.
func WithLogger(l logrus.FieldLogger) Option {
	return func(q *Queue) { q.log = l }
}

// New starts a Queue with the given number of workers. A non-positive
// count means runtime.GOMAXPROCS(0).
func New(workers int, opts ...Option) *Queue {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	q := &Queue{workers: workers}
	for _, opt := range opts {
		opt(q)
	}
	if q.log == nil {
		q.log = log
	}
	q.cond = sync.NewCond(&q.mu)
	q.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go q.work()
	}
	return q
}

var (
	defaultOnce  sync.Once
	defaultQueue *Queue
)

// Default returns the process-wide Queue, starting it with
// runtime.GOMAXPROCS(0) workers on first use. It is never closed.
func Default() *Queue {
	defaultOnce.Do(func() {
		defaultQueue = New(0)
	})
	return defaultQueue
}

// Submit queues job. It returns ErrClosed once Close has been called.
func (q *Queue) Submit(job Job, priority int) (Handle, error) {
	if job == nil {
		return nil, errNilJob
	}
	t := newTask(job, priority)

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil, ErrClosed
	}
	t.seq = q.seq
	q.seq++
	heap.Push(&q.pending, t)
	q.metrics.submitted(len(q.pending))
	q.mu.Unlock()

	q.cond.Signal()
	return t, nil
}

// Workers returns the number of worker goroutines.
func (q *Queue) Workers() int { return q.workers }

// Len returns the number of jobs waiting for a worker.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Close stops accepting jobs and waits until every queued job has run.
// It must not be called from inside a job.
func (q *Queue) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.cond.Broadcast()
	q.wg.Wait()
}

func (q *Queue) work() {
	defer q.wg.Done()
	for {
		q.mu.Lock()
		for len(q.pending) == 0 && !q.closed {
			q.cond.Wait()
		}
		if len(q.pending) == 0 {
			q.mu.Unlock()
			return
		}
		t := heap.Pop(&q.pending).(*task)
		q.metrics.dequeued(len(q.pending))
		q.mu.Unlock()

		start := time.Now()
		t.run(q.log)
		q.metrics.finished(t, time.Since(start))
		t.complete()
	}
}
