// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jobqueue_test

import (
	"fmt"

	"github.com/parscrypt/parscrypt/jobqueue"
)

func ExampleQueue() {
	q := jobqueue.New(2)
	defer q.Close()

	results := make([]int, 4)
	var handles []jobqueue.Handle
	for i := range results {
		i := i // per-iteration copy for Go < 1.22
		h, err := q.Submit(func() error {
			results[i] = i * i
			return nil
		}, 0)
		if err != nil {
			panic(err)
		}
		handles = append(handles, h)
	}
	for _, h := range handles {
		if err := h.Await(); err != nil {
			panic(err)
		}
	}
	fmt.Println(results)
	// Output: [0 1 4 9]
}
