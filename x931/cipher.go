// Copyright 2014, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package x931

import "fmt"
import "sort"
import "crypto/aes"
import "crypto/cipher"
import "golang.org/x/crypto/twofish"

// BlockSize is the only cipher block size the generator supports, in bytes.
// Keys are the same length.
const BlockSize = 16

var ciphers = map[string]func(key []byte) (cipher.Block, error){
	"aes":     aes.NewCipher,
	"twofish": newTwofish,
}

func newTwofish(key []byte) (cipher.Block, error) {
	c, err := twofish.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Ciphers returns the names accepted by NewCipher.
func Ciphers() []string {
	names := make([]string, 0, len(ciphers))
	for name := range ciphers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewCipher returns the named 128-bit block cipher keyed with key.
// The key must be exactly BlockSize bytes.
func NewCipher(name string, key []byte) (cipher.Block, error) {
	newCipher, ok := ciphers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCipher, name)
	}
	if len(key) != BlockSize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrKeySize, len(key))
	}
	block, err := newCipher(key)
	if err != nil {
		return nil, fmt.Errorf("x931: %s: %w", name, err)
	}
	return block, nil
}
