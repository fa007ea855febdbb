// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scrypt

import (
	"io"

	"github.com/sirupsen/logrus"
)

// log is the package logger. It discards everything until UseLogger is
// called.
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

// UseLogger sets the logger the package writes to. It is not safe to call
// concurrently with a derivation.
func UseLogger(logger logrus.FieldLogger) {
	log = logger.WithField("pkg", "scrypt")
}
