// Copyright 2014, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command x931rand writes a reproducible pseudo-random byte stream produced
// by the ANSI X9.31 generator.
package main

import "os"
import "fmt"
import "io"
import "time"
import "github.com/joho/godotenv"
import "github.com/spf13/pflag"
import "golang.org/x/crypto/ssh/terminal"
import "github.com/janmasarik/x931/x931"

const progressInterval = time.Second

func main() {
	// Seed and key may come from a .env file; a missing file is fine.
	_ = godotenv.Load()

	fs, f := newFlagSet(os.Args[0], pflag.ExitOnError)
	cfg, err := parseConfig(fs, f, os.Args[1:], os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n\n", err)
		fs.Usage()
		os.Exit(1)
	}

	if cfg.out == "-" && !cfg.force && terminal.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintf(os.Stderr, "Random data not written to terminal.\n\n")
		fs.Usage()
		os.Exit(1)
	}

	sum, err := run(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if cfg.verbose {
		sum.print(os.Stderr)
	}
}

// run generates cfg.size bytes into cfg.out.
func run(cfg *config) (summary, error) {
	sum := summary{
		out:      cfg.out,
		cipher:   cfg.cipher,
		encoding: cfg.encoding.String(),
		bytes:    cfg.size,
	}

	block, err := x931.NewCipher(cfg.cipher, cfg.key)
	if err != nil {
		return sum, err
	}
	gen, err := x931.New(block, cfg.seed)
	if err != nil {
		return sum, err
	}

	var r io.Reader = gen
	if cfg.verbose {
		r = newProgress(gen, os.Stderr, cfg.size, progressInterval)
	}

	start := time.Now()
	if cfg.out == "-" {
		err = writeStdout(r, cfg.size)
	} else {
		err = writeFile(cfg.out, r, cfg.size)
	}
	sum.elapsed = time.Since(start)
	sum.blocks = gen.Blocks()
	return sum, err
}
