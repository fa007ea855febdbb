// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package scrypt

func lockMemory(b []byte) error { return nil }

func unlockMemory(b []byte) error { return nil }
