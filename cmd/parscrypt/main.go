// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command parscrypt derives a key with scrypt and prints it in hex.
package main

import (
	"os"

	"github.com/parscrypt/parscrypt/cmd/parscrypt/cmd"
)

func main() {
	if err := cmd.RootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
