// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
)

// Image returns an Image displaying the code, Scale pixels per module.
func (c *Code) Image() image.Image {
	return &codeImage{c}
}

// codeImage implements image.Image
type codeImage struct {
	*Code
}

var (
	whiteColor color.Color = color.Gray{0xFF}
	blackColor color.Color = color.Gray{0x00}
)

func (c *codeImage) Bounds() image.Rectangle {
	d := c.Size * c.Scale
	return image.Rect(0, 0, d, d)
}

func (c *codeImage) At(x, y int) color.Color {
	if x >= 0 && y >= 0 && c.Black(x/c.Scale, y/c.Scale) {
		return blackColor
	}
	return whiteColor
}

func (c *codeImage) ColorModel() color.Model {
	return color.GrayModel
}

// EncodePNG writes a PNG image displaying the code to w.
func (c *Code) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.Image())
}

// String returns the code drawn with Unicode half blocks, two rows of
// modules per line, for terminals with light text on a dark
// background.
func (c *Code) String() string { return c.Text(false) }

// Text returns the code drawn with Unicode half blocks.  If reverse
// is set, dark modules are drawn as blocks, for dark text on a light
// background.
func (c *Code) Text(reverse bool) string {
	blocks := [4]string{"█", "▀", "▄", " "}
	if reverse {
		blocks = [4]string{" ", "▄", "▀", "█"}
	}
	var b strings.Builder
	for y := 0; y < c.Size; y += 2 {
		for x := 0; x < c.Size; x++ {
			n := 0
			if c.Black(x, y) {
				n = 2
			}
			// past the last row nothing is drawn
			if y+1 < c.Size && c.Black(x, y+1) ||
				y+1 == c.Size && !reverse {
				n++
			}
			b.WriteString(blocks[n])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ASCII returns the code drawn with two characters per module, "##"
// for dark and spaces for light.
func (c *Code) ASCII() string {
	b := make([]byte, 0, (c.Size*2+1)*c.Size)
	for y := 0; y < c.Size; y++ {
		for x := 0; x < c.Size; x++ {
			if c.Black(x, y) {
				b = append(b, "##"...)
			} else {
				b = append(b, "  "...)
			}
		}
		b = append(b, '\n')
	}
	return string(b)
}
