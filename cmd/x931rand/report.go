// Copyright 2014, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import "io"
import "fmt"
import "time"
import "github.com/dustin/go-humanize"
import "github.com/markkurossi/tabulate"

// summary describes one completed run.
type summary struct {
	out      string
	cipher   string
	encoding string
	bytes    int64
	blocks   uint64
	elapsed  time.Duration
}

func (s summary) rate() string {
	if s.elapsed <= 0 {
		return "-"
	}
	return humanize.IBytes(uint64(float64(s.bytes)/s.elapsed.Seconds())) + "/s"
}

func (s summary) print(w io.Writer) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Item").SetAlign(tabulate.ML)
	tab.Header("Value").SetAlign(tabulate.MR)

	add := func(label, value string) {
		row := tab.Row()
		row.Column(label)
		row.Column(value)
	}
	add("Output", s.out)
	add("Cipher", s.cipher)
	add("Encoding", s.encoding)
	add("Bytes", fmt.Sprintf("%s (%s)", humanize.Comma(s.bytes), humanize.IBytes(uint64(s.bytes))))
	add("Blocks", humanize.Comma(int64(s.blocks)))
	add("Time", s.elapsed.String())
	add("Rate", s.rate())

	tab.Print(w)
}
