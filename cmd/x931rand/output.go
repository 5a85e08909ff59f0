// Copyright 2014, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import "os"
import "io"
import "bufio"
import "errors"
import "syscall"
import "path/filepath"

// copyN writes exactly n bytes from r to w through a buffer.
func copyN(w io.Writer, r io.Reader, n int64) error {
	bw := bufio.NewWriter(w)
	if _, err := io.CopyN(bw, r, n); err != nil {
		return err
	}
	return bw.Flush()
}

// writeStdout copies n bytes to standard output. A closed pipe on the
// reading end is not an error.
func writeStdout(r io.Reader, n int64) error {
	err := copyN(os.Stdout, r, n)
	if errors.Is(err, syscall.EPIPE) {
		return nil
	}
	return err
}

// writeFile replaces path with exactly n bytes from r. The data goes to a
// temporary file in the same directory which is renamed over path only
// once it is complete and synced, so a failed run leaves path untouched.
// An existing file keeps its permissions; a new one is created 0644.
func writeFile(path string, r io.Reader, n int64) (err error) {
	mode := os.FileMode(0644)
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	}

	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()

	if err = copyN(f, r, n); err != nil {
		return err
	}
	if err = f.Chmod(mode); err != nil {
		return err
	}
	if err = f.Sync(); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}
