// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qr encodes text as QR codes.

Text is encoded as UTF-8 in a single byte mode segment.  Encode tries
versions from the smallest allowed upwards and returns the first code
the text fits in, masked with the pattern of lowest penalty.  The
result is a module matrix queried with IsDark; the image, text and
PBM/PNG writers in this package are thin consumers of it.
*/
package qr // import "github.com/unixdj/qrgen"

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/unixdj/qrgen/coding"
)

// A Level denotes a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota // 20% redundant
	M              // 38% redundant
	Q              // 55% redundant
	H              // 65% redundant
)

func (l Level) String() string { return coding.Level(l).String() }

var (
	ErrLevel = coding.ErrLevel
	ErrNoFit = errors.New("qr: text too long to encode as QR")
)

// A NoFitError is returned when the text does not fit in any version
// of the allowed range.  It matches ErrNoFit.
type NoFitError struct {
	Min, Max coding.Version // version range tried
	Level    Level
	Bytes    int // length of the text in bytes
}

func (e *NoFitError) Error() string {
	return fmt.Sprintf("qr: %d bytes do not fit in versions %v to %v at level %v",
		e.Bytes, e.Min, e.Max, e.Level)
}

func (e *NoFitError) Is(target error) bool { return target == ErrNoFit }

type options struct {
	min, max coding.Version
	border   int
	scale    int
	log      *slog.Logger
}

// An Option configures Encode.
type Option func(*options)

// WithVersions limits the versions tried to min through max.  The
// range is clipped to 1 through 40.
func WithVersions(min, max int) Option {
	return func(o *options) {
		o.min = coding.Version(min)
		o.max = coding.Version(max)
	}
}

// WithQuietZone adds a light margin of n modules on every side.
func WithQuietZone(n int) Option {
	return func(o *options) { o.border = max(n, 0) }
}

// WithScale sets the number of image pixels per module used by
// Image, EncodePBM and EncodePNG.
func WithScale(n int) Option {
	return func(o *options) { o.scale = max(n, 1) }
}

// WithLogger sets a logger for debug messages about version search
// and mask selection.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.log = l }
}

// Encode returns a QR code holding text at the given error correction
// level.  If the text does not fit in any allowed version, Encode
// returns a *NoFitError.
func Encode(text string, level Level, opts ...Option) (*Code, error) {
	seg, err := coding.NewSegment(text)
	if err != nil {
		return nil, err
	}
	return EncodeSegment(seg, level, opts...)
}

// EncodeSegment is like Encode but takes a prepared segment.
func EncodeSegment(seg coding.Segment, level Level, opts ...Option) (*Code, error) {
	l := coding.Level(level)
	if !l.Valid() {
		return nil, ErrLevel
	}
	o := options{
		min:   coding.MinVersion,
		max:   coding.MaxVersion,
		scale: 8,
		log:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}
	o.min = max(o.min, coding.MinVersion)
	o.max = min(o.max, coding.MaxVersion)

	for v := o.min; v <= o.max; v++ {
		o.log.Debug("trying version", "version", v, "level", l, "bytes", seg.Len())
		c, err := coding.Encode(v, l, seg)
		if errors.Is(err, coding.ErrCapacity) {
			o.log.Debug("version too small", "error", err)
			continue
		} else if err != nil {
			return nil, err
		}
		o.log.Debug("encoded", "version", v, "level", l, "mask", c.Mask)
		return &Code{
			Version: c.Version,
			Level:   level,
			Mask:    c.Mask,
			Size:    c.Size + 2*o.border,
			Border:  o.border,
			Scale:   o.scale,
			code:    c,
		}, nil
	}
	return nil, &NoFitError{o.min, o.max, level, seg.Len()}
}

// A Code is a QR code: a square grid of modules, optionally
// surrounded by a quiet zone.
type Code struct {
	Version coding.Version // QR version
	Level   Level          // error correction level
	Mask    coding.Mask    // mask pattern
	Size    int            // number of modules on a side, quiet zone included
	Border  int            // quiet zone modules on each side
	Scale   int            // number of image pixels per module

	code *coding.Code
}

// IsDark reports whether the module at row, col is dark.  The quiet
// zone and everything outside the code is light.
func (c *Code) IsDark(row, col int) bool {
	return c.code.IsDark(row-c.Border, col-c.Border)
}

// Black returns true if the module at (x,y) is black.
func (c *Code) Black(x, y int) bool { return c.IsDark(y, x) }

// Symbol returns the code without the quiet zone.
func (c *Code) Symbol() *coding.Code { return c.code }
