// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "fmt"

// A Plan describes how to construct a QR code with a specific
// version, level and codeword sequence.
type Plan struct {
	Version Version // QR code version
	Level   Level   // QR error correction Level
	Size    int     // number of modules on a side

	codewords []byte
}

// NewPlan returns a Plan placing codewords, as returned by Codewords,
// in a QR code with the given version and level.
func NewPlan(v Version, l Level, codewords []byte) (*Plan, error) {
	if !v.Valid() {
		return nil, ErrVersion
	}
	if !l.Valid() {
		return nil, ErrLevel
	}
	if len(codewords) != v.TotalBytes() {
		return nil, &DomainError{"codeword count", len(codewords)}
	}
	return &Plan{
		Version:   v,
		Level:     l,
		Size:      v.Size(),
		codewords: codewords,
	}, nil
}

// Build constructs the code with mask m.  A trial build, used for
// mask evaluation, leaves format and version information light.
func (p *Plan) Build(m Mask, trial bool) (*Code, error) {
	mf, err := m.Func()
	if err != nil {
		return nil, err
	}
	g := newGrid(p.Size)
	g.setup(p.Version, p.Level, m, trial)
	g.place(p.codewords, mf)
	c := g.code()
	c.Version, c.Level, c.Mask = p.Version, p.Level, m
	return c, nil
}

// A cell is a module under construction.
type cell uint8

const (
	unset cell = iota
	light
	dark
)

// grid is a module matrix under construction, row major.
type grid struct {
	size  int
	cells []cell
}

func newGrid(size int) *grid {
	return &grid{size: size, cells: make([]cell, size*size)}
}

func (g *grid) at(row, col int) cell { return g.cells[row*g.size+col] }

func (g *grid) set(row, col int, isDark bool) {
	c := light
	if isDark {
		c = dark
	}
	g.cells[row*g.size+col] = c
}

// setup lays out function patterns: position and alignment boxes,
// timing, format and version information.
func (g *grid) setup(v Version, l Level, m Mask, trial bool) {
	g.finder(0, 0)
	g.finder(g.size-7, 0)
	g.finder(0, g.size-7)
	g.alignment(v.Alignment())
	g.timing()
	g.format(FormatBits(l, m), trial)
	if v >= 7 {
		g.version(VersionBits(v), trial)
	}
}

// finder draws a position box with its separator at upper left row,
// col.  The separator is clipped at the edges of the code.
func (g *grid) finder(row, col int) {
	for r := -1; r <= 7; r++ {
		if row+r < 0 || row+r >= g.size {
			continue
		}
		for c := -1; c <= 7; c++ {
			if col+c < 0 || col+c >= g.size {
				continue
			}
			g.set(row+r, col+c,
				0 <= r && r <= 6 && (c == 0 || c == 6) ||
					0 <= c && c <= 6 && (r == 0 || r == 6) ||
					2 <= r && r <= 4 && 2 <= c && c <= 4)
		}
	}
}

// alignment draws alignment boxes centred at each pair of pos,
// except where a position box is.
func (g *grid) alignment(pos []int) {
	for _, row := range pos {
		for _, col := range pos {
			if g.at(row, col) != unset {
				continue
			}
			for r := -2; r <= 2; r++ {
				for c := -2; c <= 2; c++ {
					g.set(row+r, col+c, r == -2 || r == 2 ||
						c == -2 || c == 2 || r == 0 && c == 0)
				}
			}
		}
	}
}

// timing draws the timing strips on row and column 6.
func (g *grid) timing() {
	for i := 8; i < g.size-8; i++ {
		if g.at(i, 6) == unset {
			g.set(i, 6, i%2 == 0)
		}
		if g.at(6, i) == unset {
			g.set(6, i, i%2 == 0)
		}
	}
}

// format writes the 15 format bits next to the position boxes, and
// the lonely dark module.  Trial builds reserve the modules light.
func (g *grid) format(fb uint32, trial bool) {
	n := g.size
	for i := 0; i < 15; i++ {
		bit := !trial && fb>>i&1 != 0
		// vertical
		switch {
		case i < 6:
			g.set(i, 8, bit)
		case i < 8:
			g.set(i+1, 8, bit)
		default:
			g.set(n-15+i, 8, bit)
		}
		// horizontal
		switch {
		case i < 8:
			g.set(8, n-i-1, bit)
		case i < 9:
			g.set(8, 15-i, bit)
		default:
			g.set(8, 14-i, bit)
		}
	}
	g.set(n-8, 8, !trial)
}

// version writes the 18 version bits in the 6x3 blocks next to the
// top right and bottom left position boxes.
func (g *grid) version(vb uint32, trial bool) {
	off := g.size - 11
	for i := 0; i < 18; i++ {
		bit := !trial && vb>>i&1 != 0
		g.set(i/3, i%3+off, bit)
		g.set(i%3+off, i/3, bit)
	}
}

// place writes the codeword bits into unset modules in zigzag order:
// two columns at a time, from the right, alternately upwards and
// downwards, skipping the vertical timing strip.  Bits past the end
// of codewords are zero.  Each bit is xored with the mask.
func (g *grid) place(codewords []byte, mask func(i, j int) bool) {
	n := g.size
	pos, inc, row := 0, -1, n-1
	for col := n - 1; col > 0; col -= 2 {
		if col == 6 {
			col--
		}
		for {
			for c := col; c > col-2; c-- {
				if g.at(row, c) != unset {
					continue
				}
				bit := false
				if i := pos >> 3; i < len(codewords) {
					bit = codewords[i]>>(7&^pos)&1 != 0
				}
				g.set(row, c, bit != mask(row, c))
				pos++
			}
			row += inc
			if row < 0 || row >= n {
				row -= inc
				inc = -inc
				break
			}
		}
	}
}

// code returns the finished code.  It panics if any module is unset.
func (g *grid) code() *Code {
	n := g.size
	stride := (n + 7) >> 3
	c := &Code{Size: n, Stride: stride, Bitmap: make([]byte, n*stride)}
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			switch g.at(row, col) {
			case unset:
				panic(fmt.Sprintf("qr: internal error: module (%d, %d) not set", row, col))
			case dark:
				c.Bitmap[row*stride+col>>3] |= 0x80 >> (col & 7)
			}
		}
	}
	return c
}

// A Code is a finished QR code: a square grid of modules.
type Code struct {
	Version Version // QR code version
	Level   Level   // QR error correction level
	Mask    Mask    // mask pattern
	Bitmap  []byte  // 1 is dark, 0 is light
	Size    int     // number of modules on a side
	Stride  int     // number of bytes per row
}

// IsDark reports whether the module at row, col is dark.  Modules
// outside the code are light.
func (c *Code) IsDark(row, col int) bool {
	return 0 <= row && row < c.Size && 0 <= col && col < c.Size &&
		c.Bitmap[row*c.Stride+col>>3]&(0x80>>(col&7)) != 0
}

// Black reports whether the module at x, y is dark.
func (c *Code) Black(x, y int) bool { return c.IsDark(y, x) }
