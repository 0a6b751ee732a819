// Copyright 2010 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gf256 implements arithmetic over the Galois Field GF(256)
// defined by the QR code polynomial x⁸+x⁴+x³+x²+1 (0x11d) with
// generator α = 2.
package gf256 // import "github.com/unixdj/qrgen/gf256"

import "fmt"

// Exponent and logarithm tables.  Filled in once by init and never
// written again.
var (
	exp [256]byte
	log [256]int // log[0] is unused
)

func init() {
	for i := 0; i < 8; i++ {
		exp[i] = 1 << i
	}
	// α⁸ = α⁴+α³+α²+1
	for i := 8; i < 256; i++ {
		exp[i] = exp[i-4] ^ exp[i-5] ^ exp[i-6] ^ exp[i-8]
	}
	for i := 0; i < 255; i++ {
		log[exp[i]] = i
	}
}

// A DomainError reports an argument outside the domain of a field
// operation.  With valid input it cannot happen.
type DomainError struct {
	Op string // operation
	N  int    // offending argument
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("gf256: %s(%d): argument out of domain", e.Op, e.N)
}

// Exp returns α**n.  Any integer n is accepted, the exponent is
// reduced modulo 255.
func Exp(n int) byte {
	if n %= 255; n < 0 {
		n += 255
	}
	return exp[n]
}

// Log returns the discrete logarithm of x, in the range [0, 254].
// Log panics with a *DomainError if x is 0.
func Log(x byte) int {
	if x == 0 {
		panic(&DomainError{"log", 0})
	}
	return log[x]
}

// Mul returns the product of x and y.
func Mul(x, y byte) byte {
	if x == 0 || y == 0 {
		return 0
	}
	return exp[(log[x]+log[y])%255]
}

// Inv returns the multiplicative inverse of x.
// Inv panics with a *DomainError if x is 0.
func Inv(x byte) byte {
	if x == 0 {
		panic(&DomainError{"inv", 0})
	}
	return exp[255-log[x]]
}
