// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := RootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootDerivesKey(t *testing.T) {
	out, _, err := execute(t, "password\n",
		"-N", "1024", "-r", "8", "-p", "16", "--keylen", "64", "--salt", "NaCl", "-w", "4", "--password-stdin")
	require.NoError(t, err)
	assert.Equal(t, "fdbabe1c9d3472007856e7190d01e9fe7c6ad7cbc8237830e77376634b373162"+
		"2eaf30d92e22a3886ff109279d9830dac727afb94a83ee6d8360cbdfa2cc0640\n", out)
}

func TestRootSaltHexAndEnv(t *testing.T) {
	t.Setenv("PARSCRYPT_KEYLEN", "16")
	t.Setenv("PARSCRYPT_SALT_HEX", "4e61436c") // "NaCl"

	out, _, err := execute(t, "password", "-N", "1024", "-r", "8", "-p", "16")
	require.NoError(t, err)
	assert.Equal(t, "fdbabe1c9d3472007856e7190d01e9fe\n", out)
}

func TestRootEmptyInputs(t *testing.T) {
	out, _, err := execute(t, "", "-N", "16", "-r", "1", "-p", "1", "-l", "64")
	require.NoError(t, err)
	assert.Equal(t, "77d6576238657b203b19ca42c18a0497f16b4844e3074ae8dfdffa3fede21442"+
		"fcd0069ded0948f8326a753a0fc81f17e8d3e0fb2e0d3628cf35e20c38d18906\n", out)
}

func TestRootMetrics(t *testing.T) {
	_, stderr, err := execute(t, "pw", "-N", "16", "-r", "1", "-p", "4", "--metrics")
	require.NoError(t, err)
	assert.Contains(t, stderr, "parscrypt_jobqueue_jobs_submitted_total 4")
	assert.Contains(t, stderr, `parscrypt_jobqueue_jobs_completed_total{result="ok"} 4`)
}

func TestRootRejectsBadParameters(t *testing.T) {
	_, _, err := execute(t, "pw", "-N", "1000")
	assert.Error(t, err)

	_, _, err = execute(t, "pw", "-N", "16", "--keylen", "0")
	assert.Error(t, err)

	_, _, err = execute(t, "pw", "-N", "16", "--salt-hex", "zz")
	assert.Error(t, err)
}
