// Copyright 2014, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package x931

import "math/bits"
import "encoding/binary"

// Counter is the 128-bit date/time vector DT. Arithmetic on it wraps modulo
// 2^128, so it can never grow wider than a block.
type Counter struct {
	hi, lo uint64
}

// MaxCounter is the largest representable counter value.
var MaxCounter = Counter{^uint64(0), ^uint64(0)}

// CounterFromBytes decodes a big-endian counter.
func CounterFromBytes(b [BlockSize]byte) Counter {
	return Counter{
		hi: binary.BigEndian.Uint64(b[:8]),
		lo: binary.BigEndian.Uint64(b[8:]),
	}
}

// Bytes returns the big-endian encoding of c.
func (c Counter) Bytes() (b [BlockSize]byte) {
	binary.BigEndian.PutUint64(b[:8], c.hi)
	binary.BigEndian.PutUint64(b[8:], c.lo)
	return b
}

// Next returns c+1. The successor of MaxCounter is zero.
func (c Counter) Next() Counter {
	lo, carry := bits.Add64(c.lo, 1, 0)
	hi, _ := bits.Add64(c.hi, 0, carry)
	return Counter{hi, lo}
}

// IsZero reports whether c is zero.
func (c Counter) IsZero() bool {
	return c.hi == 0 && c.lo == 0
}
