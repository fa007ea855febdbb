// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scrypt

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParams(t *testing.T) {
	testCases := []struct {
		name    string
		N, r, p int
		wantErr bool
	}{
		{name: "Minimal", N: 2, r: 1, p: 1},
		{name: "Interactive", N: 32768, r: 8, p: 1},
		{name: "Parallel", N: 1024, r: 8, p: 16},
		{name: "NOne", N: 1, r: 1, p: 1, wantErr: true},
		{name: "NZero", N: 0, r: 1, p: 1, wantErr: true},
		{name: "NNegative", N: -16, r: 1, p: 1, wantErr: true},
		{name: "NNotPowerOfTwo", N: 1000, r: 1, p: 1, wantErr: true},
		{name: "RZero", N: 16, r: 0, p: 1, wantErr: true},
		{name: "RNegative", N: 16, r: -1, p: 1, wantErr: true},
		{name: "PZero", N: 16, r: 1, p: 0, wantErr: true},
		{name: "PNegative", N: 16, r: 1, p: -3, wantErr: true},
		{name: "RTimesPTooLarge", N: 16, r: 1 << 15, p: 1 << 15, wantErr: true},
		{name: "NTooLarge", N: 1 << 62, r: 8, p: 1, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			params, err := NewParams(tc.N, tc.r, tc.p)
			if tc.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidParameter), "got %v", err)
				assert.Equal(t, Params{}, params)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.N, params.N())
			assert.Equal(t, tc.r, params.R())
			assert.Equal(t, tc.p, params.P())
		})
	}
}

func TestParamsSizes(t *testing.T) {
	params, err := NewParams(1024, 8, 16)
	require.NoError(t, err)

	assert.Equal(t, 16, params.ElementBlockCount())
	assert.Equal(t, 1024, params.SegmentLen())
	assert.Equal(t, 16*1024, params.BufferLen())
	assert.Equal(t, 1024*1024, params.ScratchLen())
	assert.Equal(t, 1024*1024+2*1024, params.MemoryPerUnit())
	assert.Equal(t, params.BufferLen()+4*params.MemoryPerUnit(), params.PeakMemory(4))
	assert.Equal(t, params.BufferLen()+16*params.MemoryPerUnit(), params.PeakMemory(0))
	assert.Equal(t, params.PeakMemory(16), params.PeakMemory(64))
}
