// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"encoding/binary"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// A Mode is a 4 bit QR segment mode indicator.
type Mode byte

// ByteMode is the only supported encoding mode.
const ByteMode Mode = 0b0100

func (m Mode) String() string {
	if m == ByteMode {
		return "byte"
	}
	return fmt.Sprintf("mode %#04b", byte(m))
}

// CountBits returns the width of the character count field for mode m
// in a QR code with version v.
func CountBits(m Mode, v Version) (int, error) {
	if m != ByteMode {
		return 0, &DomainError{"count length mode", int(m)}
	}
	if !v.Valid() {
		return 0, &DomainError{"count length version", int(v)}
	}
	if v < 10 {
		return 8, nil
	}
	return 16, nil
}

// A Segment is a run of bytes encoded in byte mode.
type Segment struct {
	data []byte
}

// NewSegment returns a byte mode segment holding text.
// text must be valid UTF-8.
func NewSegment(text string) (Segment, error) {
	if !utf8.ValidString(text) {
		return Segment{}, fmt.Errorf("%w: %q is not UTF-8", ErrEncoding, text)
	}
	return Segment{[]byte(text)}, nil
}

// UTF16Segment returns a byte mode segment holding the UTF-8
// encoding of the UTF-16 text s.  Surrogate pairs are combined;
// unpaired surrogates are an error.
func UTF16Segment(s []uint16) (Segment, error) {
	b := make([]byte, 2*len(s))
	for i, u := range s {
		binary.BigEndian.PutUint16(b[2*i:], u)
	}
	t, err := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).
		NewDecoder().Bytes(b)
	if err != nil {
		return Segment{}, fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	// The decoder replaces unpaired surrogates with U+FFFD.
	if n, m := countRune(t, utf8.RuneError), countUnit(s, 0xfffd); n != m {
		return Segment{}, fmt.Errorf("%w: unpaired surrogate", ErrEncoding)
	}
	return Segment{t}, nil
}

func countRune(b []byte, r rune) int {
	n := 0
	for len(b) != 0 {
		c, sz := utf8.DecodeRune(b)
		if c == r {
			n++
		}
		b = b[sz:]
	}
	return n
}

func countUnit(s []uint16, u uint16) int {
	n := 0
	for _, v := range s {
		if v == u {
			n++
		}
	}
	return n
}

// Mode returns the mode indicator of seg.
func (seg Segment) Mode() Mode { return ByteMode }

// Len returns the length of seg in bytes.
func (seg Segment) Len() int { return len(seg.data) }

// Bytes returns a copy of the data in seg.
func (seg Segment) Bytes() []byte { return append([]byte(nil), seg.data...) }

// EncodedLength returns the length in bits of seg encoded for a QR
// code with version v, including the header.
func (seg Segment) EncodedLength(v Version) (int, error) {
	cb, err := CountBits(seg.Mode(), v)
	if err != nil {
		return 0, err
	}
	return 4 + cb + 8*len(seg.data), nil
}

// Write writes seg encoded for a QR code with version v to b: the
// mode indicator, the byte count and the bytes.
func (seg Segment) Write(b *Bits, v Version) error {
	cb, err := CountBits(seg.Mode(), v)
	if err != nil {
		return err
	}
	b.Put(uint32(seg.Mode()), 4)
	b.Put(uint32(len(seg.data)), cb)
	for _, c := range seg.data {
		b.Put(uint32(c), 8)
	}
	return nil
}
