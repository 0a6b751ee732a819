// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

// A Poly is a polynomial over GF(256).  Coefficients are stored
// highest degree first and the leading coefficient is never zero; the
// zero polynomial has no coefficients.  Operations on Poly never
// modify their operands.
type Poly struct {
	c []byte
}

// NewPoly returns the polynomial with coefficients c, highest degree
// first, multiplied by x**shift.  Leading zero coefficients are
// trimmed.  c is copied.
func NewPoly(c []byte, shift int) Poly {
	i := 0
	for i < len(c) && c[i] == 0 {
		i++
	}
	if i == len(c) {
		return Poly{}
	}
	p := make([]byte, len(c)-i+shift)
	copy(p, c[i:])
	return Poly{p}
}

// Len returns the number of coefficients of p, that is its degree
// plus one, or zero for the zero polynomial.
func (p Poly) Len() int { return len(p.c) }

// At returns the i'th coefficient of p, counting from the highest
// degree.
func (p Poly) At(i int) byte { return p.c[i] }

// Coeffs returns a copy of the coefficients of p.
func (p Poly) Coeffs() []byte { return append([]byte(nil), p.c...) }

// Multiply returns p·q.
func (p Poly) Multiply(q Poly) Poly {
	if len(p.c) == 0 || len(q.c) == 0 {
		return Poly{}
	}
	c := make([]byte, len(p.c)+len(q.c)-1)
	for i, a := range p.c {
		if a == 0 {
			continue
		}
		la := log[a]
		for j, b := range q.c {
			// zero terms contribute nothing; log(0) is undefined
			if b != 0 {
				c[i+j] ^= Exp(la + log[b])
			}
		}
	}
	return NewPoly(c, 0)
}

// Mod returns the remainder of the division of p by d.  If p is
// shorter than d, p is returned.  Mod panics with a *DomainError if d
// is the zero polynomial.
func (p Poly) Mod(d Poly) Poly {
	if len(d.c) == 0 {
		panic(&DomainError{"mod", 0})
	}
	inv := Inv(d.c[0])
	for len(p.c) >= len(d.c) {
		ratio := Mul(p.c[0], inv)
		c := p.Coeffs()
		for i, b := range d.c {
			c[i] ^= Mul(b, ratio)
		}
		p = NewPoly(c, 0)
	}
	return p
}

// Generator returns the Reed-Solomon generator polynomial with n
// check symbols: (x-α⁰)(x-α¹)...(x-αⁿ⁻¹).
func Generator(n int) Poly {
	g := Poly{[]byte{1}}
	for i := 0; i < n; i++ {
		g = g.Multiply(Poly{[]byte{1, Exp(i)}})
	}
	return g
}

// ECC returns the n Reed-Solomon check bytes for data: the remainder
// of data·xⁿ divided by the generator polynomial, left-padded with
// zeros to n bytes.
func ECC(data []byte, n int) []byte {
	rem := NewPoly(data, n).Mod(Generator(n))
	ec := make([]byte, n)
	copy(ec[n-rem.Len():], rem.c)
	return ec
}
