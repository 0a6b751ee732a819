// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unixdj/qrgen/coding"
)

func TestMaskFunc(t *testing.T) {
	t.Parallel()
	// rows 0 to 5, columns 0 to 5 of each pattern, 1 = flipped
	want := [coding.NumMasks][6]string{
		{"101010", "010101", "101010", "010101", "101010", "010101"},
		{"111111", "000000", "111111", "000000", "111111", "000000"},
		{"100100", "100100", "100100", "100100", "100100", "100100"},
		{"100100", "001001", "010010", "100100", "001001", "010010"},
		{"111000", "111000", "000111", "000111", "111000", "111000"},
		{"111111", "100000", "100100", "101010", "100100", "100000"},
		{"111111", "111000", "110110", "101010", "101101", "100011"},
		{"101010", "000111", "100011", "010101", "111000", "011100"},
	}
	for m := range coding.Mask(coding.NumMasks) {
		f, err := m.Func()
		require.NoError(t, err)
		for i, row := range want[m] {
			for j, c := range row {
				assert.Equal(t, c == '1', f(i, j), "mask %v (%d, %d)", m, i, j)
			}
		}
	}
}

func TestMaskInvalid(t *testing.T) {
	t.Parallel()
	for _, m := range []coding.Mask{-1, 8} {
		assert.False(t, m.Valid())
		_, err := m.Func()
		var de *coding.DomainError
		assert.True(t, errors.As(err, &de), "mask %v", m)
	}
}
