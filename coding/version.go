// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements low-level QR coding details: the bit
// buffer, byte mode segments, Reed-Solomon blocks, module placement
// and mask selection.
package coding // import "github.com/unixdj/qrgen/coding"

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrLevel    = errors.New("qr: invalid level")
	ErrVersion  = errors.New("qr: invalid version")
	ErrCapacity = errors.New("qr: data exceeds capacity")
	ErrEncoding = errors.New("qr: invalid character encoding")
)

// A DomainError reports a lookup outside the static QR tables or an
// invalid mask.  With validated input it cannot happen.
type DomainError struct {
	Op    string // operation
	Value int    // offending value
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("qr: %s: %d out of range", e.Op, e.Value)
}

// A CapacityError is returned when the encoded data does not fit
// into a code of the given version and level.  It matches ErrCapacity.
type CapacityError struct {
	Version  Version
	Level    Level
	Bits     int // encoded length
	Capacity int // data capacity in bits
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("qr: cannot encode %d bits into %d-bit code (version %v, level %v)",
		e.Bits, e.Capacity, e.Version, e.Level)
}

func (e *CapacityError) Is(target error) bool { return target == ErrCapacity }

// A Version represents a QR version.
// The version specifies the size of the QR code:
// a QR code with version v has 4v+17 modules on a side.
// Versions run from 1 to 40: the larger the version,
// the more information the code can store.
type Version int

const (
	MinVersion Version = 1  // Minimum QR version
	MaxVersion Version = 40 // Maximum QR version
)

func (v Version) String() string { return strconv.Itoa(int(v)) }

// Valid reports whether v is a QR version.
func (v Version) Valid() bool { return MinVersion <= v && v <= MaxVersion }

// Size returns the number of modules on a side.
func (v Version) Size() int { return int(v)*4 + 17 }

// Alignment returns the row and column coordinates of alignment
// pattern centres.
func (v Version) Alignment() []int {
	if !v.Valid() {
		return nil
	}
	return alignTab[v-1]
}

// A Level represents a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota // 20% redundant
	M              // 38% redundant
	Q              // 55% redundant
	H              // 65% redundant
)

func (l Level) String() string {
	if l.Valid() {
		return "LMQH"[l : l+1]
	}
	return strconv.Itoa(int(l))
}

// Valid reports whether l is one of L, M, Q, H.
func (l Level) Valid() bool { return L <= l && l <= H }

// Code returns the two bit level indicator written into format
// information: L=01, M=00, Q=11, H=10.
func (l Level) Code() int { return int(l) ^ 1 }

// LevelCode returns the Level for a two bit level indicator.
func LevelCode(code int) Level { return Level(code&3 ^ 1) }

// ParseLevel returns the level named by s, one of "L", "M", "Q", "H"
// in either case.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "l", "L":
		return L, nil
	case "m", "M":
		return M, nil
	case "q", "Q":
		return Q, nil
	case "h", "H":
		return H, nil
	}
	return 0, fmt.Errorf("%w %q", ErrLevel, s)
}

// Alignment pattern centre coordinates for each version.
var alignTab = [MaxVersion][]int{
	{}, // 1
	{6, 18},
	{6, 22},
	{6, 26},
	{6, 30}, // 5
	{6, 34},
	{6, 22, 38},
	{6, 24, 42},
	{6, 26, 46},
	{6, 28, 50}, // 10
	{6, 30, 54},
	{6, 32, 58},
	{6, 34, 62},
	{6, 26, 46, 66},
	{6, 26, 48, 70}, // 15
	{6, 26, 50, 74},
	{6, 30, 54, 78},
	{6, 30, 56, 82},
	{6, 30, 58, 86},
	{6, 34, 62, 90}, // 20
	{6, 28, 50, 72, 94},
	{6, 26, 50, 74, 98},
	{6, 30, 54, 78, 102},
	{6, 28, 54, 80, 106},
	{6, 32, 58, 84, 110}, // 25
	{6, 30, 58, 86, 114},
	{6, 34, 62, 90, 118},
	{6, 26, 50, 74, 98, 122},
	{6, 30, 54, 78, 102, 126},
	{6, 26, 52, 78, 104, 130}, // 30
	{6, 30, 56, 82, 108, 134},
	{6, 34, 60, 86, 112, 138},
	{6, 30, 58, 86, 114, 142},
	{6, 34, 62, 90, 118, 146},
	{6, 30, 54, 78, 102, 126, 150}, // 35
	{6, 24, 50, 76, 102, 128, 154},
	{6, 28, 54, 80, 106, 132, 158},
	{6, 32, 58, 84, 110, 136, 162},
	{6, 26, 54, 82, 110, 138, 166},
	{6, 30, 58, 86, 114, 142, 170}, // 40
}
