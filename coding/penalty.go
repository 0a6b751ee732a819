// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"math"

	"golang.org/x/sync/errgroup"
)

// Penalty points.
const (
	sameP    = 3  // module with more than 5 same-colour neighbours, plus 1 per extra
	boxP     = 3  // 2x2 box of one colour
	findP    = 40 // 1:1:3:1:1 dark-light-dark pattern
	balanceP = 10 // every 5% away from half dark
)

// Penalty returns the penalty for c used for choosing the mask, the
// sum of:
//
//   - for each module with n > 5 of its 8 neighbours the same
//     colour, 3 + n - 5;
//   - for each, possibly overlapping, 2x2 box of the same colour, 3;
//   - for each dark-light-dark-dark-dark-light-dark run in a row or
//     column, 40;
//   - |percentage of dark modules - 50| / 5 * 10.
func (c *Code) Penalty() float64 {
	n := c.Size
	p := 0

	// same-colour neighbours
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			same := 0
			d := c.IsDark(row, col)
			for r := max(row-1, 0); r <= min(row+1, n-1); r++ {
				for cc := max(col-1, 0); cc <= min(col+1, n-1); cc++ {
					if (r != row || cc != col) && c.IsDark(r, cc) == d {
						same++
					}
				}
			}
			if same > 5 {
				p += sameP + same - 5
			}
		}
	}

	// boxes
	for row := 0; row < n-1; row++ {
		for col := 0; col < n-1; col++ {
			d := c.IsDark(row, col)
			if c.IsDark(row+1, col) == d && c.IsDark(row, col+1) == d &&
				c.IsDark(row+1, col+1) == d {
				p += boxP
			}
		}
	}

	// finder-like patterns, horizontal and vertical
	for i := 0; i < n; i++ {
		for j := 0; j < n-6; j++ {
			if finderAt(func(k int) bool { return c.IsDark(i, j+k) }) {
				p += findP
			}
			if finderAt(func(k int) bool { return c.IsDark(j+k, i) }) {
				p += findP
			}
		}
	}

	// balance
	nd := 0
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if c.IsDark(row, col) {
				nd++
			}
		}
	}
	ratio := math.Abs(float64(100*nd)/float64(n)/float64(n)-50) / 5
	return float64(p) + ratio*balanceP
}

// finderAt reports whether modules 0 to 6 returned by dark form the
// pattern dark-light-dark-dark-dark-light-dark.
func finderAt(dark func(k int) bool) bool {
	return dark(0) && !dark(1) && dark(2) && dark(3) && dark(4) &&
		!dark(5) && dark(6)
}

// BestMask builds trial codes with each mask and returns the mask
// with the lowest penalty.  The trial builds run concurrently.
func (p *Plan) BestMask() (Mask, error) {
	var pen [NumMasks]float64
	var g errgroup.Group
	for m := range NumMasks {
		g.Go(func() error {
			c, err := p.Build(Mask(m), true)
			if err != nil {
				return err
			}
			pen[m] = c.Penalty()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return lowest(pen[:]), nil
}

// lowest returns the index of the smallest penalty.  Ties go to the
// lower index.
func lowest(pen []float64) Mask {
	best := 0
	for i := 1; i < len(pen); i++ {
		if pen[i] < pen[best] {
			best = i
		}
	}
	return Mask(best)
}
