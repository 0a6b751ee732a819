// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Encode returns a QR code with the given version and level holding
// segs, masked with the pattern of lowest penalty.  If the data does
// not fit, Encode returns a *CapacityError.
func Encode(v Version, l Level, segs ...Segment) (*Code, error) {
	cw, err := Codewords(v, l, segs...)
	if err != nil {
		return nil, err
	}
	p, err := NewPlan(v, l, cw)
	if err != nil {
		return nil, err
	}
	m, err := p.BestMask()
	if err != nil {
		return nil, err
	}
	return p.Build(m, false)
}
