// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unixdj/qrgen/gf256"
)

func TestExpLog(t *testing.T) {
	t.Parallel()
	for x := 1; x < 256; x++ {
		l := gf256.Log(byte(x))
		require.GreaterOrEqual(t, l, 0)
		require.Less(t, l, 255)
		require.Equal(t, byte(x), gf256.Exp(l), "exp(log(%d))", x)
	}
}

func TestExpWraps(t *testing.T) {
	t.Parallel()
	for n := -1000; n <= 1000; n++ {
		m := n % 255
		if m < 0 {
			m += 255
		}
		require.Equal(t, gf256.Exp(m), gf256.Exp(n), "exp(%d)", n)
	}
	assert.Equal(t, byte(1), gf256.Exp(0))
	assert.Equal(t, byte(1), gf256.Exp(255))
	assert.Equal(t, byte(29), gf256.Exp(8))
	assert.Equal(t, byte(142), gf256.Exp(-1))
	assert.Equal(t, byte(193), gf256.Exp(300))
}

func TestLogZero(t *testing.T) {
	t.Parallel()
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(*gf256.DomainError)
		require.True(t, ok, "panic value %T", r)
		assert.Equal(t, "log", err.Op)
		assert.Contains(t, err.Error(), "out of domain")
	}()
	gf256.Log(0)
}

func TestMul(t *testing.T) {
	t.Parallel()
	for x := 0; x < 256; x++ {
		assert.Equal(t, byte(0), gf256.Mul(byte(x), 0))
		assert.Equal(t, byte(x), gf256.Mul(byte(x), 1))
		if x != 0 {
			assert.Equal(t, byte(1), gf256.Mul(byte(x), gf256.Inv(byte(x))))
		}
		for y := 0; y < 256; y += 17 {
			require.Equal(t, gf256.Mul(byte(x), byte(y)), gf256.Mul(byte(y), byte(x)))
		}
	}
	// α⁷·α = α⁸ = α⁴+α³+α²+1
	assert.Equal(t, byte(0x1d), gf256.Mul(0x80, 2))
}
