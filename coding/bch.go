// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "math/bits"

// BCH generator polynomials and the format information mask.
const (
	g15     = 0x537  // x¹⁰+x⁸+x⁵+x⁴+x²+x+1
	g18     = 0x1f25 // x¹²+x¹¹+x¹⁰+x⁹+x⁸+x⁵+x²+1
	g15Mask = 0x5412
)

// bchRem returns the remainder of d divided by the generator g.
func bchRem(d, g uint32) uint32 {
	gl := bits.Len32(g)
	for n := bits.Len32(d) - gl; n >= 0; n = bits.Len32(d) - gl {
		d ^= g << n
	}
	return d
}

// FormatBits returns the 15 bit format information for level l and
// mask m: the level code and mask followed by 10 BCH check bits,
// xored with the format mask.
func FormatBits(l Level, m Mask) uint32 {
	data := uint32(l.Code()<<3) | uint32(m&7)
	return (data<<10 | bchRem(data<<10, g15)) ^ g15Mask
}

// VersionBits returns the 18 bit version information for v: the
// version number followed by 12 BCH check bits.  Versions below 7
// carry no version information and VersionBits returns 0.
func VersionBits(v Version) uint32 {
	if v < 7 || !v.Valid() {
		return 0
	}
	data := uint32(v)
	return data<<12 | bchRem(data<<12, g18)
}
