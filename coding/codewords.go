// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "github.com/unixdj/qrgen/gf256"

// Pad codewords, alternated until the data capacity is filled.
var padBytes = [2]uint32{0xec, 0x11}

// Codewords encodes segs for a QR code with the given version and
// level and returns the final codeword sequence: data and error
// correction codewords of all blocks, interleaved.  If the data does
// not fit, Codewords returns a *CapacityError.
func Codewords(v Version, l Level, segs ...Segment) ([]byte, error) {
	blocks, err := Blocks(v, l)
	if err != nil {
		return nil, err
	}
	b := NewBits(v)
	for _, seg := range segs {
		if err := seg.Write(b, v); err != nil {
			return nil, err
		}
	}
	capacity := 0
	for _, blk := range blocks {
		capacity += blk.Data * 8
	}
	if b.Len() > capacity {
		return nil, &CapacityError{v, l, b.Len(), capacity}
	}
	b.AddPadding(capacity)
	return interleave(b.Bytes(), blocks), nil
}

// AddPadding appends the terminator, if there is room for it, then
// pads b with zero bits to a byte boundary and with pad codewords to
// capacity bits.
func (b *Bits) AddPadding(capacity int) {
	if b.Len()+4 <= capacity {
		b.Put(0, 4)
	}
	for b.Len()%8 != 0 {
		b.PutBit(false)
	}
	for i := 0; b.Len() < capacity; i ^= 1 {
		b.Put(padBytes[i], 8)
	}
}

// interleave splits data across blocks, computes the error correction
// codewords for each block and returns data codewords of all blocks
// interleaved by index followed by error correction codewords
// interleaved the same way.
func interleave(data []byte, blocks []Block) []byte {
	dc := make([][]byte, len(blocks))
	ec := make([][]byte, len(blocks))
	maxData, maxCheck, total := 0, 0, 0
	for i, blk := range blocks {
		dc[i], data = data[:blk.Data], data[blk.Data:]
		ec[i] = gf256.ECC(dc[i], blk.Check())
		maxData = max(maxData, blk.Data)
		maxCheck = max(maxCheck, blk.Check())
		total += blk.Total
	}
	out := make([]byte, 0, total)
	for j := 0; j < maxData; j++ {
		for _, d := range dc {
			if j < len(d) {
				out = append(out, d[j])
			}
		}
	}
	for j := 0; j < maxCheck; j++ {
		for _, e := range ec {
			if j < len(e) {
				out = append(out, e[j])
			}
		}
	}
	return out
}
