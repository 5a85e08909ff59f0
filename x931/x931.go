// Copyright 2014, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package x931 implements a deterministic pseudo-random byte generator
// following the ANSI X9.31 construction over a 128-bit block cipher.
//
// Each output block R is derived from the date/time counter DT and the
// running seed V as:
//
//	I = E(K, DT)
//	R = E(K, I ^ V)
//	V = E(K, R ^ I)
//
// after which DT is incremented. The output is fully reproducible from
// (K, V, DT) and is not suitable where secure randomness is required.
package x931

import "fmt"
import "math"
import "crypto/cipher"

// State is the mutable part of a generator. The key is held by the cipher
// and never changes.
type State struct {
	DT Counter
	V  [BlockSize]byte
}

// Generator produces the X9.31 block sequence. It is not safe for
// concurrent use.
type Generator struct {
	block  cipher.Block
	state  State
	blocks uint64

	buffer []byte // Unread tail of the last block handed out by Read
	last   [BlockSize]byte
}

// New returns a generator with DT at zero and V set to seed.
func New(block cipher.Block, seed []byte) (*Generator, error) {
	if len(seed) != BlockSize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrSeedSize, len(seed))
	}
	var st State
	copy(st.V[:], seed)
	return NewWithState(block, st)
}

// NewWithState returns a generator resuming from st.
func NewWithState(block cipher.Block, st State) (*Generator, error) {
	if block.BlockSize() != BlockSize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrBlockSize, block.BlockSize())
	}
	return &Generator{block: block, state: st}, nil
}

// State returns a copy of the current generator state.
func (g *Generator) State() State {
	return g.state
}

// Blocks returns the number of blocks generated so far.
func (g *Generator) Blocks() uint64 {
	return g.blocks
}

// NextBlock generates one block and advances DT and V.
func (g *Generator) NextBlock() (r [BlockSize]byte) {
	var i, t [BlockSize]byte

	dt := g.state.DT.Bytes()
	g.block.Encrypt(i[:], dt[:])
	g.state.DT = g.state.DT.Next()

	xorBlock(&t, &i, &g.state.V)
	g.block.Encrypt(r[:], t[:])

	xorBlock(&t, &r, &i)
	g.block.Encrypt(g.state.V[:], t[:])

	g.blocks++
	return r
}

// MaxSize is the largest size accepted by Generate.
const MaxSize = math.MaxInt - BlockSize

// Generate returns exactly size bytes. Blocks are generated whole and the
// tail of the final block is dropped, so consecutive calls are only
// equivalent to a single call when every size but the last is a multiple
// of BlockSize.
func (g *Generator) Generate(size int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSize, size)
	}
	if size > MaxSize {
		return nil, fmt.Errorf("%w: %d", ErrSizeTooLarge, size)
	}
	buf := make([]byte, size)
	for off := 0; off < size; off += BlockSize {
		r := g.NextBlock()
		copy(buf[off:], r[:])
	}
	return buf, nil
}

// Read fills buf with generator output. Unlike Generate, bytes of a partly
// consumed block are kept for the next call, so a stream of reads on a fresh
// generator yields the same bytes as one Generate of the total length.
// It never returns an error.
func (g *Generator) Read(buf []byte) (n int, err error) {
	for len(buf) > 0 {
		if len(g.buffer) == 0 {
			if len(buf) >= BlockSize {
				r := g.NextBlock()
				n += copy(buf, r[:])
				buf = buf[BlockSize:]
				continue
			}
			g.last = g.NextBlock()
			g.buffer = g.last[:]
		}
		cnt := copy(buf, g.buffer)
		g.buffer = g.buffer[cnt:]
		buf = buf[cnt:]
		n += cnt
	}
	return n, nil
}

func xorBlock(dst, a, b *[BlockSize]byte) {
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}
