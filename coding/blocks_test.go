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

// Total codewords per version.
var totalBytes = [coding.MaxVersion]int{
	26, 44, 70, 100, 134, 172, 196, 242, 292, 346,
	404, 466, 532, 581, 655, 733, 815, 901, 991, 1085,
	1156, 1258, 1364, 1474, 1588, 1706, 1828, 1921, 2051, 2185,
	2323, 2465, 2611, 2761, 2876, 3034, 3196, 3362, 3532, 3706,
}

// Data codewords per version and level (L, M, Q, H).
var dataBytes = [coding.MaxVersion][4]int{
	{19, 16, 13, 9}, {34, 28, 22, 16}, {55, 44, 34, 26},
	{80, 64, 48, 36}, {108, 86, 62, 46}, {136, 108, 76, 60},
	{156, 124, 88, 66}, {194, 154, 110, 86}, {232, 182, 132, 100},
	{274, 216, 154, 122}, {324, 254, 180, 140}, {370, 290, 206, 158},
	{428, 334, 244, 180}, {461, 365, 261, 197}, {523, 415, 295, 223},
	{589, 453, 325, 253}, {647, 507, 367, 283}, {721, 563, 397, 313},
	{795, 627, 445, 341}, {861, 669, 485, 385}, {932, 714, 512, 406},
	{1006, 782, 568, 442}, {1094, 860, 614, 464}, {1174, 914, 664, 514},
	{1276, 1000, 718, 538}, {1370, 1062, 754, 596}, {1468, 1128, 808, 628},
	{1531, 1193, 871, 661}, {1631, 1267, 911, 701}, {1735, 1373, 985, 745},
	{1843, 1455, 1033, 793}, {1955, 1541, 1115, 845}, {2071, 1631, 1171, 901},
	{2191, 1725, 1231, 961}, {2306, 1812, 1286, 986}, {2434, 1914, 1354, 1054},
	{2566, 1992, 1426, 1096}, {2702, 2102, 1502, 1142}, {2812, 2216, 1582, 1222},
	{2956, 2334, 1666, 1276},
}

var levels = []coding.Level{coding.L, coding.M, coding.Q, coding.H}

func TestBlocks(t *testing.T) {
	t.Parallel()
	for v := coding.MinVersion; v <= coding.MaxVersion; v++ {
		assert.Equal(t, totalBytes[v-1], v.TotalBytes(), "version %v", v)
		for _, l := range levels {
			blocks, err := coding.Blocks(v, l)
			require.NoError(t, err)
			total, data := 0, 0
			for i, b := range blocks {
				total += b.Total
				data += b.Data
				// all blocks have the same number of check codewords
				require.Equal(t, blocks[0].Check(), b.Check(), "%v-%v block %d", v, l, i)
				// shorter blocks come first
				if i > 0 {
					require.GreaterOrEqual(t, b.Data, blocks[i-1].Data)
				}
			}
			assert.Equal(t, totalBytes[v-1], total, "%v-%v", v, l)
			assert.Equal(t, dataBytes[v-1][l], data, "%v-%v", v, l)
			assert.Equal(t, data, v.DataBytes(l), "%v-%v", v, l)
		}
	}
}

func TestBlocksKnown(t *testing.T) {
	t.Parallel()
	blocks, err := coding.Blocks(5, coding.Q)
	require.NoError(t, err)
	assert.Equal(t, []coding.Block{{33, 15}, {33, 15}, {34, 16}, {34, 16}}, blocks)
	blocks, err = coding.Blocks(1, coding.M)
	require.NoError(t, err)
	assert.Equal(t, []coding.Block{{26, 16}}, blocks)
	assert.Equal(t, 10, blocks[0].Check())
}

func TestBlocksDomain(t *testing.T) {
	t.Parallel()
	var de *coding.DomainError
	_, err := coding.Blocks(0, coding.L)
	assert.True(t, errors.As(err, &de))
	_, err = coding.Blocks(41, coding.L)
	assert.True(t, errors.As(err, &de))
	_, err = coding.Blocks(1, coding.Level(7))
	assert.True(t, errors.As(err, &de))
	assert.Equal(t, 0, coding.Version(0).TotalBytes())
	assert.Equal(t, 0, coding.Version(1).DataBytes(coding.Level(-1)))
}

func TestMaxBytes(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 17, coding.Version(1).MaxBytes(coding.L))
	assert.Equal(t, 14, coding.Version(1).MaxBytes(coding.M))
	assert.Equal(t, 7, coding.Version(1).MaxBytes(coding.H))
	assert.Equal(t, 230, coding.Version(9).MaxBytes(coding.L))
	assert.Equal(t, 271, coding.Version(10).MaxBytes(coding.L))
	assert.Equal(t, 2953, coding.Version(40).MaxBytes(coding.L))
	assert.Equal(t, 1273, coding.Version(40).MaxBytes(coding.H))
	assert.Equal(t, 0, coding.Version(0).MaxBytes(coding.L))
}
