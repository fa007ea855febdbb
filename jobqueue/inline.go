// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jobqueue

// Inline runs each job to completion inside Submit. The returned Handle is
// already done.
type Inline struct{}

func (Inline) Submit(job Job, priority int) (Handle, error) {
	if job == nil {
		return nil, errNilJob
	}
	t := newTask(job, priority)
	t.run(log)
	t.complete()
	return t, nil
}
