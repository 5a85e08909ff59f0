// Copyright 2014, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package x931

import "fmt"
import "strings"
import "encoding/hex"

// Encoding selects how a seed or key string is turned into BlockSize bytes.
type Encoding int

const (
	// Decimal maps each of 16 characters '0'-'9' to one byte of value 0-9.
	Decimal Encoding = iota
	// Hex reads 32 hexadecimal characters, two per byte.
	Hex
	// Raw takes 16 bytes of the string as they are.
	Raw
)

var encodingNames = map[Encoding]string{
	Decimal: "decimal",
	Hex:     "hex",
	Raw:     "raw",
}

func (e Encoding) String() string {
	if name, ok := encodingNames[e]; ok {
		return name
	}
	return fmt.Sprintf("Encoding(%d)", int(e))
}

// ParseEncoding returns the encoding with the given name.
func ParseEncoding(name string) (Encoding, error) {
	for e, n := range encodingNames {
		if strings.EqualFold(n, name) {
			return e, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown encoding %q", ErrEncoding, name)
}

// DecodeError reports a seed or key string that does not match its encoding.
type DecodeError struct {
	Encoding Encoding
	Offset   int // Byte offset into the input, or -1 for a length error
	Reason   string
}

func (e *DecodeError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("x931: %v: %s", e.Encoding, e.Reason)
	}
	return fmt.Sprintf("x931: %v: offset %d: %s", e.Encoding, e.Offset, e.Reason)
}

func (e *DecodeError) Unwrap() error { return ErrEncoding }

// Decode converts s into exactly BlockSize bytes. Input of the wrong length
// is rejected, never padded or truncated.
func (e Encoding) Decode(s string) ([]byte, error) {
	switch e {
	case Decimal:
		if len(s) != BlockSize {
			return nil, e.lengthError(len(s), BlockSize)
		}
		b := make([]byte, BlockSize)
		for i := 0; i < len(s); i++ {
			c := s[i]
			if c < '0' || c > '9' {
				return nil, &DecodeError{e, i, fmt.Sprintf("%q is not a decimal digit", c)}
			}
			b[i] = c - '0'
		}
		return b, nil
	case Hex:
		if len(s) != 2*BlockSize {
			return nil, e.lengthError(len(s), 2*BlockSize)
		}
		b, err := hex.DecodeString(s)
		if err != nil {
			if ie, ok := err.(hex.InvalidByteError); ok {
				off := strings.IndexByte(s, byte(ie))
				return nil, &DecodeError{e, off, fmt.Sprintf("%q is not a hexadecimal digit", byte(ie))}
			}
			return nil, &DecodeError{e, -1, err.Error()}
		}
		return b, nil
	case Raw:
		if len(s) != BlockSize {
			return nil, e.lengthError(len(s), BlockSize)
		}
		return []byte(s), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrEncoding, e)
}

func (e Encoding) lengthError(got, want int) error {
	return &DecodeError{e, -1, fmt.Sprintf("got %d characters, want %d", got, want)}
}
