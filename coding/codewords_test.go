// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unixdj/qrgen/coding"
)

func mustSegment(t *testing.T, s string) coding.Segment {
	t.Helper()
	seg, err := coding.NewSegment(s)
	require.NoError(t, err)
	return seg
}

func TestCodewords(t *testing.T) {
	t.Parallel()
	cw, err := coding.Codewords(1, coding.M, mustSegment(t, "HELLO WORLD"))
	require.NoError(t, err)
	assert.Equal(t, []byte{
		// data
		64, 180, 132, 84, 196, 196, 242, 5, 116, 245, 36, 196, 64, 236, 17, 236,
		// error correction
		12, 75, 207, 154, 137, 79, 101, 9, 151, 204,
	}, cw)
}

func TestCodewordsLength(t *testing.T) {
	t.Parallel()
	for _, v := range []coding.Version{1, 5, 9, 10, 27, 40} {
		for _, l := range levels {
			cw, err := coding.Codewords(v, l, mustSegment(t, "x"))
			require.NoError(t, err)
			assert.Len(t, cw, v.TotalBytes(), "%v-%v", v, l)
		}
	}
}

func TestCodewordsCapacity(t *testing.T) {
	t.Parallel()
	for _, tt := range []struct {
		v coding.Version
		l coding.Level
	}{
		{1, coding.L}, {1, coding.M}, {1, coding.H},
		{9, coding.Q}, {10, coding.Q}, {40, coding.L}, {40, coding.H},
	} {
		n := tt.v.MaxBytes(tt.l)
		_, err := coding.Codewords(tt.v, tt.l, mustSegment(t, strings.Repeat("a", n)))
		require.NoError(t, err, "%v-%v, %d bytes", tt.v, tt.l, n)

		_, err = coding.Codewords(tt.v, tt.l, mustSegment(t, strings.Repeat("a", n+1)))
		require.True(t, errors.Is(err, coding.ErrCapacity), "%v-%v, %d bytes", tt.v, tt.l, n+1)
		var ce *coding.CapacityError
		require.True(t, errors.As(err, &ce))
		assert.Equal(t, tt.v, ce.Version)
		assert.Equal(t, tt.l, ce.Level)
		assert.Equal(t, tt.v.DataBytes(tt.l)*8, ce.Capacity)
		assert.Greater(t, ce.Bits, ce.Capacity)
	}
}

func TestCodewordsOverflow(t *testing.T) {
	t.Parallel()
	_, err := coding.Codewords(1, coding.M, mustSegment(t, "HELLO WORLD HELLO"))
	var ce *coding.CapacityError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, 4+8+17*8, ce.Bits)
	assert.Equal(t, 128, ce.Capacity)
	assert.Contains(t, err.Error(), "version 1, level M")
}

func TestCodewordsDomain(t *testing.T) {
	t.Parallel()
	var de *coding.DomainError
	_, err := coding.Codewords(0, coding.M, mustSegment(t, "x"))
	assert.True(t, errors.As(err, &de))
	_, err = coding.Codewords(1, coding.Level(9), mustSegment(t, "x"))
	assert.True(t, errors.As(err, &de))
}
