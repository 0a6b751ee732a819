// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Bits is an append-only bit buffer.  Bits are stored most
// significant bit first; the buffer grows by whole bytes.
type Bits struct {
	b    []byte
	nbit int
}

// NewBits returns Bits with enough capacity for a QR code of the
// given version.
func NewBits(v Version) *Bits {
	return &Bits{b: make([]byte, 0, v.TotalBytes())}
}

// Len returns the number of bits written.
func (b *Bits) Len() int { return b.nbit }

// At reports whether bit i is set.
func (b *Bits) At(i int) bool {
	return b.b[i>>3]>>(7&^i)&1 != 0
}

// Bytes returns the contents of b.  It panics unless a whole number
// of bytes has been written.
func (b *Bits) Bytes() []byte {
	if b.nbit%8 != 0 {
		panic("qr: fractional byte")
	}
	return b.b
}

// PutBit appends a single bit.
func (b *Bits) PutBit(bit bool) {
	if b.nbit&7 == 0 {
		b.b = append(b.b, 0)
	}
	if bit {
		b.b[len(b.b)-1] |= 0x80 >> (b.nbit & 7)
	}
	b.nbit++
}

// Put appends the low n bits of v, most significant first.
func (b *Bits) Put(v uint32, n int) {
	for i := n - 1; i >= 0; i-- {
		b.PutBit(v>>i&1 != 0)
	}
}
