// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bufio"
	"io"
	"strconv"
)

// EncodePBM writes a Portable Bit Map image displaying the code to w,
// for use with netpbm, Scale pixels per module.
func (c *Code) EncodePBM(w io.Writer) error {
	b := bufio.NewWriter(w)
	length := c.Size * c.Scale
	ls := strconv.Itoa(length)
	if _, err := b.WriteString("P4\n" + ls + " " + ls + "\n"); err != nil {
		return err
	}
	row := make([]byte, (length+7)/8)
	for y := 0; y < c.Size; y++ {
		pbmRow(row, c, y)
		for i := 0; i < c.Scale; i++ {
			if _, err := b.Write(row); err != nil {
				return err
			}
		}
	}
	return b.Flush()
}

// pbmRow packs row y of c into row, 1 bits for dark pixels.
func pbmRow(row []byte, c *Code, y int) {
	clear(row)
	for x := 0; x < c.Size*c.Scale; x++ {
		if c.Black(x/c.Scale, y) {
			row[x>>3] |= 0x80 >> (x & 7)
		}
	}
}
