// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package x931

import "errors"
import "testing"
import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

func TestParseEncoding(t *testing.T) {
	for _, e := range []Encoding{Decimal, Hex, Raw} {
		got, err := ParseEncoding(e.String())
		require.NoError(t, err)
		assert.Equal(t, e, got)
	}

	got, err := ParseEncoding("HEX")
	require.NoError(t, err)
	assert.Equal(t, Hex, got)

	_, err = ParseEncoding("base64")
	assert.ErrorIs(t, err, ErrEncoding)
	assert.Equal(t, "Encoding(7)", Encoding(7).String())
}

func TestDecode(t *testing.T) {
	vectors := []struct {
		enc    Encoding
		input  string
		output []byte
		offset int // Expected DecodeError offset, if valid is false
		valid  bool
	}{{
		enc:    Decimal,
		input:  "0123456789012345",
		output: []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 0, 1, 2, 3, 4, 5},
		valid:  true,
	}, {
		enc:    Decimal,
		input:  "012345678901234",
		offset: -1,
	}, {
		enc:    Decimal,
		input:  "01234567890123456",
		offset: -1,
	}, {
		enc:    Decimal,
		input:  "0123456789a12345",
		offset: 10,
	}, {
		enc:    Decimal,
		input:  "",
		offset: -1,
	}, {
		enc:    Hex,
		input:  "000102030405060708090a0b0c0d0eff",
		output: []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 0xff},
		valid:  true,
	}, {
		enc:    Hex,
		input:  "000102030405060708090a0b0c0d0e",
		offset: -1,
	}, {
		enc:    Hex,
		input:  "000102030405060708090a0b0c0d0eZZ",
		offset: 30,
	}, {
		enc:    Raw,
		input:  "YELLOW SUBMARINE",
		output: []byte("YELLOW SUBMARINE"),
		valid:  true,
	}, {
		enc:    Raw,
		input:  "YELLOW",
		offset: -1,
	}}

	for i, v := range vectors {
		output, err := v.enc.Decode(v.input)
		if v.valid {
			assert.NoError(t, err, "test %d", i)
			assert.Equal(t, v.output, output, "test %d", i)
			continue
		}
		assert.Nil(t, output, "test %d", i)
		assert.ErrorIs(t, err, ErrEncoding, "test %d", i)
		var de *DecodeError
		if assert.True(t, errors.As(err, &de), "test %d", i) {
			assert.Equal(t, v.enc, de.Encoding, "test %d", i)
			assert.Equal(t, v.offset, de.Offset, "test %d", i)
		}
	}
}

func TestDecodeUnknown(t *testing.T) {
	_, err := Encoding(9).Decode("0123456789012345")
	assert.ErrorIs(t, err, ErrEncoding)
}
