// Copyright 2014, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import "fmt"
import "os"
import "math"
import "errors"
import "strings"
import "github.com/dsnet/golib/unitconv"
import "github.com/spf13/pflag"
import "github.com/janmasarik/x931/x931"

const (
	envSeed = "X931_SEED"
	envKey  = "X931_KEY"
)

type config struct {
	out      string
	size     int64
	seed     []byte
	key      []byte
	encoding x931.Encoding
	cipher   string
	force    bool
	verbose  bool
}

type flags struct {
	out      *string
	size     *string
	seed     *string
	key      *string
	encoding *string
	cipher   *string
	force    *bool
	verbose  *bool
}

func newFlagSet(name string, handling pflag.ErrorHandling) (*pflag.FlagSet, *flags) {
	fs := pflag.NewFlagSet(name, handling)
	f := &flags{
		out:      fs.StringP("out", "o", "", "Path of output file, or - for standard output."),
		size:     fs.StringP("size", "n", "1337", "Number of bytes to generate (e.g. 1337, 4KiB)."),
		seed:     fs.StringP("seed", "s", "", "Seed (16 bytes once decoded). Defaults to $"+envSeed+"."),
		key:      fs.StringP("key", "k", "", "Key (16 bytes once decoded). Defaults to $"+envKey+"."),
		encoding: fs.StringP("encoding", "e", x931.Decimal.String(), "Seed and key encoding: decimal, hex or raw."),
		cipher:   fs.StringP("cipher", "c", "aes", "Block cipher: "+strings.Join(x931.Ciphers(), ", ")+"."),
		force:    fs.BoolP("force", "f", false, "Force output to terminal."),
		verbose:  fs.BoolP("verbose", "v", false, "Print a summary to standard error."),
	}
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", name)
		fs.PrintDefaults()
	}
	return fs, f
}

// parseConfig parses args and validates everything needed before the
// first block is generated. getenv supplies seed and key defaults.
func parseConfig(fs *pflag.FlagSet, f *flags, args []string, getenv func(string) string) (*config, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	cfg := &config{
		out:     *f.out,
		cipher:  *f.cipher,
		force:   *f.force,
		verbose: *f.verbose,
	}
	if cfg.out == "" {
		return nil, errors.New("output path is required")
	}

	size, err := parseSize(*f.size)
	if err != nil {
		return nil, err
	}
	cfg.size = size

	if cfg.encoding, err = x931.ParseEncoding(*f.encoding); err != nil {
		return nil, err
	}

	seed, key := *f.seed, *f.key
	if seed == "" {
		seed = getenv(envSeed)
	}
	if key == "" {
		key = getenv(envKey)
	}
	if seed == "" {
		return nil, fmt.Errorf("seed is required (--seed or $%s)", envSeed)
	}
	if key == "" {
		return nil, fmt.Errorf("key is required (--key or $%s)", envKey)
	}
	if cfg.seed, err = cfg.encoding.Decode(seed); err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	if cfg.key, err = cfg.encoding.Decode(key); err != nil {
		return nil, fmt.Errorf("key: %w", err)
	}

	// Resolve the cipher now so a bad name fails before any output is created.
	if _, err := x931.NewCipher(cfg.cipher, cfg.key); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parseSize accepts a byte count with an optional SI or IEC prefix
// (1337, 4k, 4Ki) and an optional trailing B.
func parseSize(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "-") {
		return 0, fmt.Errorf("size %s is negative", s)
	}
	cnt, err := unitconv.ParsePrefix(strings.TrimSuffix(s, "B"), unitconv.AutoParse)
	if err != nil || math.IsNaN(cnt) {
		return 0, fmt.Errorf("invalid size %q", s)
	}
	switch {
	case cnt < 0:
		return 0, fmt.Errorf("size %s is negative", s)
	case math.IsInf(cnt, 0) || cnt >= 1<<63:
		return 0, fmt.Errorf("size %s is too large", s)
	case cnt != math.Trunc(cnt):
		return 0, fmt.Errorf("size %s is not a whole number of bytes", s)
	}
	return int64(cnt), nil
}
