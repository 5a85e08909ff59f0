// Copyright 2014, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package x931

import "errors"

var (
	ErrBlockSize     = errors.New("x931: cipher block size must be 16 bytes")
	ErrKeySize       = errors.New("x931: key must be 16 bytes")
	ErrSeedSize      = errors.New("x931: seed must be 16 bytes")
	ErrUnknownCipher = errors.New("x931: unknown cipher")
	ErrNegativeSize  = errors.New("x931: negative size")
	ErrSizeTooLarge  = errors.New("x931: size too large")
	ErrEncoding      = errors.New("x931: invalid encoding")
)
