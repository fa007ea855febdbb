// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scrypt_test

import (
	"encoding/base64"
	"fmt"
	"log"

	"github.com/parscrypt/parscrypt/jobqueue"
	"github.com/parscrypt/parscrypt/scrypt"
)

func Example() {
	// DO NOT use this salt value; generate your own random salt. 8 bytes is
	// a good length.
	salt := []byte{0xc8, 0x28, 0xf2, 0x58, 0xa7, 0x6a, 0xad, 0x7b}

	dk, err := scrypt.Key([]byte("some password"), salt, 1<<15, 8, 1, 32)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(base64.StdEncoding.EncodeToString(dk))
	// Output: lGnMz8io0AUkfzn6Pls1qX20Vs7PGN6sbYQ2TQgY12M=
}

func ExampleDeriver() {
	q := jobqueue.New(4)
	defer q.Close()

	params, err := scrypt.NewParams(1024, 8, 16)
	if err != nil {
		log.Fatal(err)
	}
	d := scrypt.NewDeriver(q)
	dk, err := d.Key(params, []byte("password"), []byte("NaCl"), 16, 10)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%x\n", dk)
	// Output: fdbabe1c9d3472007856e7190d01e9fe
}
