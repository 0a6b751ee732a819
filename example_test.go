// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr_test

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	qr "github.com/unixdj/qrgen"
)

func ExampleEncode() {
	c, err := qr.Encode("HELLO WORLD", qr.M)
	if err != nil {
		log.Fatalln(err)
	}
	fmt.Println("version", c.Version, "level", c.Level, "mask", c.Mask)
	fmt.Print(c.ASCII()[:42*3+3])
	// Output:
	// version 1 level M mask 3
	// ##############  ##      ##  ##############
	// ##          ##  ##      ##  ##          ##
	// ##  ######  ##              ##  ######  ##
}

func ExampleEncode_noFit() {
	_, err := qr.Encode(strings.Repeat("a", 100), qr.H, qr.WithVersions(1, 5))
	fmt.Println(errors.Is(err, qr.ErrNoFit))
	fmt.Println(err)
	// Output:
	// true
	// qr: 100 bytes do not fit in versions 1 to 5 at level H
}

func ExampleCode_EncodePBM() {
	c, err := qr.Encode("https://github.com/unixdj/qrgen", qr.L,
		qr.WithQuietZone(4), qr.WithScale(4))
	if err != nil {
		log.Fatalln(err)
	}
	if err := c.EncodePBM(os.Stdout); err != nil {
		log.Fatalln(err)
	}
}
